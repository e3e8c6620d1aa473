package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunLintCleanDocument(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "clean.json",
		`{"style":"rest","short_description":"Adds.","meta":[{"kind":"param","arg_name":"x"},{"kind":"returns","type_name":"int"}]}`)

	require.NoError(t, RunLint(&LintConfig{InputPath: input, Format: "json"}))
}

func TestRunLintReportsViolations(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "broken.json",
		`{"style":"auto","meta":[{"kind":"param","args":["param"]}]}`)

	err := RunLint(&LintConfig{InputPath: input, Format: "json"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "docstring contract")
	assert.Contains(t, err.Error(), "auto")
	assert.Contains(t, err.Error(), "meta[0] param")
}

func TestRunLintYAML(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "doc.yml", "meta:\n  - kind: param\n    arg_name: ''\n")

	err := RunLint(&LintConfig{InputPath: input, Format: "yml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ArgName")
}

func TestRunLintUndecodableDocument(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "bad.json", `{"meta":[{"kind":"sidebar"}]}`)

	err := RunLint(&LintConfig{InputPath: input, Format: "json"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown fragment kind")
}

func TestRunLintUnsupportedFormat(t *testing.T) {
	err := RunLint(&LintConfig{InputPath: "-", Format: "ini"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ini")
}
