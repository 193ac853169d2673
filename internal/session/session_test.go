package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muurk/csvtext/internal/dataset"
)

type fakeLauncher struct {
	calls []string
	err   error
}

func (f *fakeLauncher) Open(_ context.Context, phone, body string) error {
	f.calls = append(f.calls, phone+"|"+body)
	return f.err
}

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteText(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

func contacts() *dataset.Dataset {
	return &dataset.Dataset{
		Columns: []string{"name", "phone"},
		Rows: []dataset.Row{
			{"name": "Ann", "phone": "555-0101"},
			{"name": "Bo", "phone": ""},
		},
		Source: "contacts.csv",
	}
}

func readySession(t *testing.T, opts ...Option) *Session {
	t.Helper()
	s := New(opts...)
	s.Load(contacts())
	s.SetTemplate("Hi {{name}}!")
	require.NoError(t, s.Bind("name", "name"))
	require.NoError(t, s.BindPhone("phone"))
	return s
}

func TestEndToEnd(t *testing.T) {
	s := readySession(t)

	require.NoError(t, s.Start())
	p, err := s.Preview()
	require.NoError(t, err)
	assert.Equal(t, "Hi Ann!", p.Message)
	assert.Equal(t, "5550101", p.Phone)
	assert.Equal(t, "1 / 2", p.Progress())

	launcher := &fakeLauncher{}
	require.NoError(t, s.Open(context.Background(), launcher))
	assert.Equal(t, []string{"5550101|Hi Ann!"}, launcher.calls)

	assert.True(t, s.Next())
	p, err = s.Preview()
	require.NoError(t, err)
	assert.Equal(t, "Hi Bo!", p.Message)
	assert.Equal(t, "", p.Phone)
	assert.Equal(t, "(empty)", p.PhoneDisplay())

	err = s.Open(context.Background(), launcher)
	require.Error(t, err)
	assert.True(t, IsEmptyPhoneError(err))
	assert.Len(t, launcher.calls, 1, "launcher must not be called for an empty phone")
	assert.Equal(t, 1, s.Index(), "failed open must not move the cursor")
	assert.Equal(t, "This row has an empty phone number.", UserMessage(err))
}

func TestStartPreconditions(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(s *Session)
		wantMsg string
	}{
		{
			name:    "No rows",
			setup:   func(s *Session) { s.SetTemplate("Hi") },
			wantMsg: msgNoRows,
		},
		{
			name: "Zero-row dataset",
			setup: func(s *Session) {
				s.Load(&dataset.Dataset{Columns: []string{"phone"}})
				_ = s.BindPhone("phone")
			},
			wantMsg: msgNoRows,
		},
		{
			name: "Unbound variable",
			setup: func(s *Session) {
				s.Load(contacts())
				s.SetTemplate("Hi {{name}} {{city}}")
				_ = s.Bind("name", "name")
				_ = s.BindPhone("phone")
			},
			wantMsg: msgUnmapped,
		},
		{
			name: "Phone unset",
			setup: func(s *Session) {
				s.Load(contacts())
				s.SetTemplate("Hi {{name}}")
				_ = s.Bind("name", "name")
			},
			wantMsg: msgNoPhone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			tt.setup(s)

			err := s.Start()
			require.Error(t, err)
			assert.True(t, IsPreconditionError(err), "got %v", err)
			assert.Equal(t, tt.wantMsg, UserMessage(err))
			assert.False(t, s.Started())
			assert.Equal(t, StateNotStarted, s.State())
		})
	}
}

func TestStartWithoutVariables(t *testing.T) {
	s := New()
	s.Load(contacts())
	s.SetTemplate("Office closed Friday.")
	require.NoError(t, s.BindPhone("phone"))

	require.NoError(t, s.Start())
	for i := 0; i < 2; i++ {
		_, body := s.RenderRow(i)
		assert.Equal(t, "Office closed Friday.", body)
	}
}

func TestCursorBounds(t *testing.T) {
	rows := make([]dataset.Row, 5)
	for i := range rows {
		rows[i] = dataset.Row{"phone": "1"}
	}
	s := New()
	s.Load(&dataset.Dataset{Columns: []string{"phone"}, Rows: rows})
	require.NoError(t, s.BindPhone("phone"))
	require.NoError(t, s.Start())

	n := len(rows)
	for i := 0; i < n; i++ {
		assert.True(t, s.Prev())
		assert.Equal(t, 0, s.Index())
	}

	for i := 0; i < n; i++ {
		assert.True(t, s.Next())
	}
	assert.Equal(t, n-1, s.Index())

	assert.True(t, s.Next())
	assert.Equal(t, n-1, s.Index(), "next at the last row is a no-op")

	assert.True(t, s.Jump(-3))
	assert.Equal(t, 0, s.Index())
	assert.True(t, s.Jump(99))
	assert.Equal(t, n-1, s.Index())
}

func TestNavigationIgnoredBeforeStart(t *testing.T) {
	s := readySession(t)

	assert.False(t, s.Next())
	assert.False(t, s.Prev())
	assert.False(t, s.Jump(1))
	assert.Equal(t, 0, s.Index())

	_, err := s.Preview()
	assert.True(t, IsPreconditionError(err))

	err = s.Open(context.Background(), &fakeLauncher{})
	assert.True(t, IsPreconditionError(err))

	err = s.Copy(context.Background(), &fakeClipboard{})
	assert.True(t, IsPreconditionError(err))
}

func TestReloadResets(t *testing.T) {
	s := readySession(t)
	require.NoError(t, s.Start())
	s.Next()

	cleared := s.Load(&dataset.Dataset{
		Columns: []string{"name", "mobile"},
		Rows:    []dataset.Row{{"name": "Cy", "mobile": "1"}},
	})

	assert.Equal(t, []string{""}, cleared, "phone binding to vanished column is cleared")
	assert.False(t, s.Started())
	assert.Equal(t, 0, s.Index())

	col, ok := s.Bindings().Lookup("name")
	assert.True(t, ok)
	assert.Equal(t, "name", col)

	assert.True(t, IsPreconditionError(s.Start()))
	require.NoError(t, s.BindPhone("mobile"))
	require.NoError(t, s.Start())
}

func TestSetTemplateKeepsBindings(t *testing.T) {
	s := readySession(t)

	vars, dropped := s.SetTemplate("Hello {{name}}, see you in {{city}}")
	assert.Equal(t, []string{"name", "city"}, vars)
	assert.Empty(t, dropped)

	col, ok := s.Bindings().Lookup("name")
	assert.True(t, ok)
	assert.Equal(t, "name", col)
	assert.Equal(t, []string{"city"}, s.Bindings().Unbound())

	_, dropped = s.SetTemplate("Plain")
	assert.Equal(t, []string{"name"}, dropped)
	assert.Empty(t, s.Variables())
}

func TestBindEmptyUnsets(t *testing.T) {
	s := readySession(t)
	require.NoError(t, s.Ready())

	require.NoError(t, s.Bind("name", ""))
	assert.Equal(t, []string{"name"}, s.Bindings().Unbound())
	assert.Equal(t, msgUnmapped, UserMessage(s.Ready()))

	require.NoError(t, s.Bind("name", "name"))
	require.NoError(t, s.BindPhone(""))
	_, ok := s.Bindings().Phone()
	assert.False(t, ok)
	assert.True(t, IsPreconditionError(s.Start()))
}

func TestBindErrors(t *testing.T) {
	s := readySession(t)

	err := s.Bind("name", "surname")
	assert.True(t, IsInvalidColumnError(err))

	err = s.Bind("ghost", "name")
	assert.True(t, IsUnknownVariableError(err))

	err = s.BindPhone("fax")
	assert.True(t, IsInvalidColumnError(err))

	col, _ := s.Bindings().Phone()
	assert.Equal(t, "phone", col, "rejected binding leaves the old one")
}

func TestCopy(t *testing.T) {
	s := readySession(t)
	require.NoError(t, s.Start())

	clip := &fakeClipboard{}
	require.NoError(t, s.Copy(context.Background(), clip))
	assert.Equal(t, "Hi Ann!", clip.text)

	failing := &fakeClipboard{err: errors.New("no display")}
	err := s.Copy(context.Background(), failing)
	require.Error(t, err)
	assert.True(t, IsClipboardError(err))
	assert.Equal(t, "Could not access clipboard.", UserMessage(err))
	assert.True(t, s.Started())
	assert.Equal(t, 0, s.Index())
}

func TestWriteClipboardCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	clip := &fakeClipboard{}
	err := WriteClipboard(ctx, clip, "x")
	assert.True(t, IsClipboardError(err))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, clip.text)
}

func TestOpenLaunchFailure(t *testing.T) {
	s := readySession(t)
	require.NoError(t, s.Start())

	boom := errors.New("xdg-open missing")
	err := s.Open(context.Background(), &fakeLauncher{err: boom})
	require.Error(t, err)
	assert.True(t, IsLaunchError(err))
	assert.ErrorIs(t, err, boom)
}

func TestOpenPlusOnlyPhone(t *testing.T) {
	s := New()
	s.Load(&dataset.Dataset{Columns: []string{"p"}, Rows: []dataset.Row{{"p": " + "}, {"p": " - "}}})
	s.SetTemplate("x")
	require.NoError(t, s.BindPhone("p"))
	require.NoError(t, s.Start())

	launcher := &fakeLauncher{}
	require.NoError(t, s.Open(context.Background(), launcher))
	assert.Equal(t, []string{"+|x"}, launcher.calls)

	s.Next()
	err := s.Open(context.Background(), launcher)
	assert.True(t, IsEmptyPhoneError(err), "punctuation-only phone sanitizes to empty")
	assert.Len(t, launcher.calls, 1)
}

func TestObserver(t *testing.T) {
	var seen []Preview
	s := readySession(t, WithObserver(ObserverFunc(func(p Preview) {
		seen = append(seen, p)
	})), WithID("fixed"))

	assert.Equal(t, "fixed", s.ID)

	s.Next() // ignored before start
	require.NoError(t, s.Start())
	s.Next()
	s.Next() // boundary still re-renders
	s.Prev()

	require.Len(t, seen, 4)
	assert.Equal(t, []int{0, 1, 1, 0}, []int{seen[0].Index, seen[1].Index, seen[2].Index, seen[3].Index})
	assert.True(t, seen[2].AtLast())
	assert.True(t, seen[3].AtFirst())
}

func TestPreviewRawRow(t *testing.T) {
	s := readySession(t)
	require.NoError(t, s.Start())

	p, err := s.Preview()
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"name\": \"Ann\",\n  \"phone\": \"555-0101\"\n}", p.RawRow)
	assert.Equal(t, 50, p.Percent())
	assert.InDelta(t, 0.5, p.Fraction(), 1e-9)
}

func TestPreviewRawRowKeepsMarkup(t *testing.T) {
	s := New()
	s.Load(&dataset.Dataset{Columns: []string{"note", "p"}, Rows: []dataset.Row{{"note": `A<b>&c "q"`, "p": "1"}}})
	s.SetTemplate("x")
	require.NoError(t, s.BindPhone("p"))
	require.NoError(t, s.Start())

	p, err := s.Preview()
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"note\": \"A<b>&c \\\"q\\\"\",\n  \"p\": \"1\"\n}", p.RawRow)
}

func TestNewGeneratesID(t *testing.T) {
	a, b := New(), New()
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}
