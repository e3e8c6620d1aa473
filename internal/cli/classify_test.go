package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunClassify(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runClassify(&out, []string{"Note", "yields", "bogus"}))

	expected := "Note: param -> param\n" +
		"Note: notes -> note\n" +
		"yields: yields -> returns (generator)\n" +
		"bogus: no match\n"
	assert.Equal(t, expected, out.String())
}

func TestClassifyCommand(t *testing.T) {
	cmd := newRootCommand()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"classify", "raises"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "raises: raises -> raises\n", out.String())
}

func TestClassifyCommandRequiresArgs(t *testing.T) {
	cmd := newRootCommand()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"classify"})

	assert.Error(t, cmd.Execute())
}
