package session

import (
	"context"

	"github.com/google/uuid"

	"github.com/muurk/csvtext/internal/binding"
	"github.com/muurk/csvtext/internal/compose"
	"github.com/muurk/csvtext/internal/dataset"
	"github.com/muurk/csvtext/internal/logging"
	"github.com/muurk/csvtext/internal/phone"
	"github.com/muurk/csvtext/internal/template"
)

// Observer is notified after every accepted cursor transition.
type Observer interface {
	Render(p Preview)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(p Preview)

// Render implements Observer.
func (f ObserverFunc) Render(p Preview) { f(p) }

// Option configures a Session.
type Option func(*Session)

// WithObserver registers an observer for transitions.
func WithObserver(o Observer) Option {
	return func(s *Session) { s.observer = o }
}

// WithID overrides the generated session id.
func WithID(id string) Option {
	return func(s *Session) { s.ID = id }
}

// Session is the single coordinator for one send session. It is not safe
// for concurrent use; callers serialise actions (the TUI update loop does).
type Session struct {
	ID string // Correlation id for logs

	data     *dataset.Dataset
	tpl      string
	bindings *binding.Map
	cursor   Cursor
	observer Observer
}

// New creates an empty session with no data and an empty template.
func New(opts ...Option) *Session {
	s := &Session{
		ID:       uuid.NewString(),
		data:     &dataset.Dataset{},
		bindings: binding.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the dataset wholesale, resets the cursor and clears
// bindings to columns the new data lacks. It returns the cleared variable
// names ("" for the phone slot). A nil dataset loads an empty one.
func (s *Session) Load(ds *dataset.Dataset) []string {
	if ds == nil {
		ds = &dataset.Dataset{}
	}
	s.data = ds
	s.cursor.Reset()

	cleared := s.bindings.SetColumns(ds.Columns)

	logging.LogDatasetLoaded(s.ID, ds.Source, len(ds.Rows), len(ds.Columns), len(ds.Warnings))
	for _, w := range ds.Warnings {
		logging.LogParseWarning(s.ID, w.Line, w.Message)
	}
	logging.LogBindingsDropped(s.ID, "reload", cleared)

	return cleared
}

// Dataset returns the loaded dataset.
func (s *Session) Dataset() *dataset.Dataset {
	return s.data
}

// SetTemplate stores tpl and re-detects its variables. Bindings for
// variables that disappeared are dropped silently; the list is returned
// for callers that want to mention it.
func (s *Session) SetTemplate(tpl string) (vars []string, dropped []string) {
	s.tpl = tpl
	vars = template.Extract(tpl)
	dropped = s.bindings.Sync(vars)
	logging.LogBindingsDropped(s.ID, "template", dropped)
	return vars, dropped
}

// Template returns the current template text.
func (s *Session) Template() string {
	return s.tpl
}

// Variables returns the detected variables in first-occurrence order.
func (s *Session) Variables() []string {
	return s.bindings.Variables()
}

// Bindings exposes the binding map for display. Mutate through Bind and
// BindPhone so errors use the session taxonomy.
func (s *Session) Bindings() *binding.Map {
	return s.bindings
}

// Bind maps variable to column; empty column unsets it.
func (s *Session) Bind(variable, column string) error {
	return fromBindingError(s.bindings.Set(variable, column))
}

// BindPhone chooses the phone column; empty unsets it.
func (s *Session) BindPhone(column string) error {
	return fromBindingError(s.bindings.SetPhone(column))
}

// AutoBind fills unset bindings from matching column names.
func (s *Session) AutoBind() int {
	return s.bindings.AutoBind()
}

// Ready returns nil when Start would succeed, or the precondition error it
// would return.
func (s *Session) Ready() error {
	if s.data.Len() == 0 {
		return NewPreconditionError(msgNoRows)
	}
	if len(s.bindings.Unbound()) > 0 {
		return NewPreconditionError(msgUnmapped)
	}
	if _, ok := s.bindings.Phone(); !ok {
		return NewPreconditionError(msgNoPhone)
	}
	return nil
}

// Start begins the session at the first row.
func (s *Session) Start() error {
	if err := s.Ready(); err != nil {
		return err
	}

	from := s.cursor.Index()
	s.cursor.Start(s.data.Len())
	s.transitioned("start", from)
	return nil
}

// Started reports whether the cursor is Active.
func (s *Session) Started() bool {
	return s.cursor.Active()
}

// State returns the cursor state.
func (s *Session) State() State {
	return s.cursor.State()
}

// Index returns the current row index.
func (s *Session) Index() int {
	return s.cursor.Index()
}

// Next advances one row. It returns false when the session is not active.
func (s *Session) Next() bool {
	from := s.cursor.Index()
	if !s.cursor.Next(s.data.Len()) {
		return false
	}
	s.transitioned("next", from)
	return true
}

// Prev retreats one row. It returns false when the session is not active.
func (s *Session) Prev() bool {
	from := s.cursor.Index()
	if !s.cursor.Prev() {
		return false
	}
	s.transitioned("prev", from)
	return true
}

// Jump moves to row index i, clamped to the dataset bounds.
func (s *Session) Jump(i int) bool {
	from := s.cursor.Index()
	if !s.cursor.Jump(i, s.data.Len()) {
		return false
	}
	s.transitioned("jump", from)
	return true
}

func (s *Session) transitioned(event string, from int) {
	logging.LogTransition(s.ID, event, from, s.cursor.Index(), s.data.Len())
	if s.observer == nil {
		return
	}
	if p, err := s.Preview(); err == nil {
		s.observer.Render(p)
	}
}

// RenderRow renders row i without touching the cursor. It returns the
// sanitized phone and message body; out of range rows render empty.
func (s *Session) RenderRow(i int) (phoneNumber, body string) {
	row := s.data.Row(i)
	body = template.Render(s.tpl, row, s.bindings)
	if col, ok := s.bindings.Phone(); ok {
		phoneNumber = phone.Sanitize(row[col])
	}
	return phoneNumber, body
}

// Preview renders the current row. It fails with a precondition error
// before Start.
func (s *Session) Preview() (Preview, error) {
	if !s.cursor.Active() {
		return Preview{}, NewPreconditionError(msgNotStarted)
	}

	i := s.cursor.Index()
	phoneNumber, body := s.RenderRow(i)
	return Preview{
		Index:   i,
		Total:   s.data.Len(),
		Phone:   phoneNumber,
		Message: body,
		RawRow:  rowJSON(s.data.Columns, s.data.Row(i)),
	}, nil
}

// Message returns the sanitized phone and rendered body for the current
// row. It fails before Start.
func (s *Session) Message() (phoneNumber, body string, err error) {
	if !s.cursor.Active() {
		return "", "", NewPreconditionError(msgNotStarted)
	}
	phoneNumber, body = s.RenderRow(s.cursor.Index())
	return phoneNumber, body, nil
}

// Open hands the current row's message to launcher. It fails with an
// empty phone error when the phone sanitizes to "". The cursor never moves.
func (s *Session) Open(ctx context.Context, launcher compose.Launcher) error {
	phoneNumber, body, err := s.Message()
	if err != nil {
		return err
	}

	row := s.cursor.Index() + 1
	if phoneNumber == "" {
		err := NewEmptyPhoneError(row)
		logging.LogHandoff(s.ID, "sms", s.cursor.Index(), err)
		return err
	}

	if err := launcher.Open(ctx, phoneNumber, body); err != nil {
		lErr := NewLaunchError(row, err)
		logging.LogHandoff(s.ID, "sms", s.cursor.Index(), lErr)
		return lErr
	}

	logging.LogHandoff(s.ID, "sms", s.cursor.Index(), nil)
	return nil
}

// Copy writes the current row's message body to clip. A failed write is
// returned as a clipboard error; session state is untouched either way.
func (s *Session) Copy(ctx context.Context, clip compose.Clipboard) error {
	_, body, err := s.Message()
	if err != nil {
		return err
	}

	err = WriteClipboard(ctx, clip, body)
	logging.LogHandoff(s.ID, "clipboard", s.cursor.Index(), err)
	return err
}

// WriteClipboard writes an already rendered body to clip and classifies
// the failure. It touches no session state, so it may run off the thread
// that owns the Session.
func WriteClipboard(ctx context.Context, clip compose.Clipboard, body string) error {
	if err := ctx.Err(); err != nil {
		return NewClipboardError(err)
	}
	if err := clip.WriteText(body); err != nil {
		return NewClipboardError(err)
	}
	return nil
}
