// Package ui renders styled, non-interactive output for csvtext commands.
//
// The interactive wizard lives in wizard/tui. Commands such as preview,
// vars and config print once and exit, using the components here:
//
//   - Header: command banner with ordered parameters
//   - Card: one rendered row (phone and message) for preview output
//   - Result: success, failure or warning boxes
//
// All components are written through a Printer, which fixes the output
// writer and width:
//
//	p := ui.NewPrinter(cmd.OutOrStdout())
//	p.PrintHeader("Preview", "csvtext preview contacts.csv", []ui.Field{
//	    {Key: "Rows", Value: "12"},
//	})
//	p.PrintCard(ui.Card{Title: "Row 1 / 12", Phone: "+15551234", Message: "Hi Ana"})
//
// # Logging Integration
//
// Logging is silent unless CSVTEXT_LOG_LEVEL is set, so this output is not
// interleaved with log lines.
package ui
