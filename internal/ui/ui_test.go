package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestClampWidth(t *testing.T) {
	tests := []struct {
		name  string
		width int
		err   error
		want  int
	}{
		{"Error falls back", 200, errors.New("not a tty"), MinTerminalWidth},
		{"Too narrow", 20, nil, MinTerminalWidth},
		{"Too wide", 300, nil, MaxContentWidth},
		{"In range", 80, nil, 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clampWidth(tt.width, tt.err); got != tt.want {
				t.Errorf("clampWidth() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHeaderKeepsParamOrder(t *testing.T) {
	out := NewHeader("preview", "csvtext preview a.csv", []Field{
		{Key: "Source", Value: "a.csv"},
		{Key: "Rows", Value: "3"},
		{Key: "Template", Value: "Hi {{name}}"},
	}).SetWidth(80).Render()

	if !strings.Contains(out, "PREVIEW") {
		t.Error("title should be upper-cased")
	}
	src := strings.Index(out, "Source")
	rows := strings.Index(out, "Rows")
	tpl := strings.Index(out, "Template")
	if !(src < rows && rows < tpl) {
		t.Errorf("params out of order:\n%s", out)
	}
}

func TestCardEmptyPhone(t *testing.T) {
	out := Card{Title: "Row 1 / 1", Message: "Hello", Width: 70}.Render()
	if !strings.Contains(out, "(empty)") {
		t.Errorf("empty phone should render placeholder:\n%s", out)
	}
	if !strings.Contains(out, "Hello") {
		t.Errorf("message missing:\n%s", out)
	}
}

func TestResultRender(t *testing.T) {
	tests := []struct {
		name   string
		result *Result
		want   []string
	}{
		{
			name:   "Success",
			result: NewSuccessResult("done", []Field{{Key: "Rows", Value: "2"}}),
			want:   []string{"SUCCESS", "done", "Rows", "2"},
		},
		{
			name:   "Failure",
			result: NewFailureResult("load failed", errors.New("boom"), []string{"check the path"}),
			want:   []string{"FAILED", "Error: boom", "check the path"},
		},
		{
			name:   "Warning",
			result: NewWarningResult("2 parse warnings", []string{"line 3: short row"}),
			want:   []string{"WARNING", "line 3: short row"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.result.SetWidth(80).Render()
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("Render() missing %q:\n%s", w, out)
				}
			}
		})
	}
}

func TestPrinterWritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf).SetWidth(70)
	p.PrintSuccess("ok", nil)
	p.PrintCard(Card{Title: "Row 1 / 1", Phone: "+1555", Message: "Hi"})

	if p.Width() != 70 {
		t.Errorf("Width() = %v, want 70", p.Width())
	}
	out := buf.String()
	if !strings.Contains(out, "SUCCESS") || !strings.Contains(out, "+1555") {
		t.Errorf("unexpected output:\n%s", out)
	}
}
