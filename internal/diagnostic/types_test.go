package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_AddAndMerge(t *testing.T) {
	var d Diagnostics
	d.Add(Diagnostic{
		Severity:    DiagnosticWarning,
		Code:        CodeAmbiguousMember,
		Message:     "matched 2 declarations",
		Declaration: "struct t_x",
		Member:      "t_a",
	})
	d.AddInfo(CodeCoreAlias, "synthesized double member", "struct t_x", "t_grZero")

	assert.True(t, d.IsValid())
	assert.False(t, d.HasErrors())
	require.NoError(t, d.Error())

	var other Diagnostics
	other.Add(Diagnostic{
		Severity:    DiagnosticError,
		Code:        CodeUnresolvedMember,
		Message:     "no declaration matches",
		Declaration: "struct t_y",
		Member:      "t_missing",
	})

	d.Merge(other)
	assert.True(t, d.HasErrors())
	assert.Len(t, d.Warnings, 1)
	assert.Len(t, d.Infos, 1)

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t, "[struct t_y] t_missing: [unresolved-union-member] no declaration matches", err.Error())
}

func TestDiagnostic_StringWithSuggestions(t *testing.T) {
	d := Diagnostic{
		Severity:    DiagnosticWarning,
		Code:        CodeUnresolvedMember,
		Message:     "no declaration matches",
		Member:      "t_raod",
		Suggestions: []string{"t_road", "t_roads"},
	}

	assert.Equal(t, "t_raod: [unresolved-union-member] no declaration matches (did you mean: t_road, t_roads?)", d.String())
}

func TestDiagnosticSeverity_String(t *testing.T) {
	assert.Equal(t, "info", DiagnosticInfo.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(42).String())
}
