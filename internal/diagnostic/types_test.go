package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiagnostic_String(t *testing.T) {
	tests := []struct {
		name string
		d    Diagnostic
		want string
	}{
		{
			name: "message only",
			d:    Diagnostic{Message: "no directives"},
			want: "no directives",
		},
		{
			name: "full",
			d: Diagnostic{
				Code:    CodeMalformed,
				Message: "empty directive name",
				Pos:     "shape.go:12:1",
				Member:  "geo.Circle.Area",
			},
			want: "shape.go:12:1 geo.Circle.Area: [malformed-directive] empty directive name",
		},
		{
			name: "suggestions",
			d: Diagnostic{
				Code:        CodeNoMethod,
				Message:     "no method Aera",
				Member:      "geo.Circle.Aera",
				Suggestions: []string{"Area"},
			},
			want: "geo.Circle.Aera: [unknown-method] no method Aera (did you mean Area?)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.d.String())
		})
	}
}

func TestDiagnostics(t *testing.T) {
	var d Diagnostics

	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	d.AddWarning(CodeDuplicate, "duplicate", "", "")
	d.AddInfo("", "loaded", "", "")
	assert.True(t, d.IsValid())

	d.AddError(CodeMalformed, "bad", "a.go:1:1", "")
	d.Add(Diagnostic{Severity: DiagnosticError, Message: "worse"})

	var other Diagnostics
	other.AddWarning(CodeNotMethod, "not a method", "", "")
	d.Merge(other)

	assert.True(t, d.HasErrors())
	assert.Len(t, d.Warnings, 2)
	assert.Len(t, d.All(), 5)
	assert.Equal(t, DiagnosticError, d.All()[0].Severity)
	assert.EqualError(t, d.Error(), "a.go:1:1: [malformed-directive] bad; worse")
}

func TestDiagnosticSeverity_String(t *testing.T) {
	assert.Equal(t, "info", DiagnosticInfo.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(9).String())
}

func TestMemberName(t *testing.T) {
	assert.Equal(t, "geo.Circle.Area", MemberName("example.com/geo", "Circle", "Area"))
	assert.Equal(t, "Circle.Area", MemberName("", "Circle", "Area"))
}
