// Package tui implements the interactive csvtext wizard.
//
// The wizard walks through four screens, coordinated by AppModel:
//
//  1. Load: file path input and header toggle. Loading runs as a tea.Cmd
//     and the result replaces the session dataset.
//  2. Template: textarea editor with live variable chips and a preview
//     that highlights placeholders.
//  3. Mapping: one row per variable plus the phone slot. ←/→ cycles the
//     bound column, a auto-maps by name, enter starts the session.
//  4. Send: current row, sanitized phone, rendered message, the raw row
//     in a viewport and a progress bar. o opens the sms: link, c copies.
//
// Screens that already have their input (a file or template passed on the
// command line) are skipped.
//
// # Usage Example
//
//	app, err := tui.NewAppModel(tui.Options{Path: "contacts.csv"})
//	if err != nil {
//	    return err
//	}
//	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
//	    return err
//	}
//
// # State Management
//
// The session.Session is owned by AppModel and only touched from Update.
// Screen models hold a pointer to it and never mutate it from commands;
// clipboard writes receive the already rendered body.
//
// # Status Line
//
// Errors and confirmations appear as toasts in the footer and clear after
// two seconds. A newer toast is never cleared by an older timer.
package tui
