package commands

import (
	"encoding/json"
	"testing"

	"github.com/codetech/vendus-go/internal/constants"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	root, stdout, _ := newTestRoot(t, "", NewVersionCommand("1.2.3", "abc123", "2026-01-01"))

	root.SetArgs([]string{"version"})
	require.NoError(t, root.Execute())
	assert.Contains(t, stdout.String(), "1.2.3")
	assert.Contains(t, stdout.String(), "abc123")

	stdout.Reset()
	viper.Set(outputKey, constants.FormatJSON)

	require.NoError(t, root.Execute())

	var info map[string]string
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &info))
	assert.Equal(t, map[string]string{"version": "1.2.3", "commit": "abc123", "built": "2026-01-01"}, info)
}

func TestValidateOutputFormat(t *testing.T) {
	t.Parallel()

	for _, format := range []string{"table", "json", "yaml"} {
		require.NoError(t, ValidateOutputFormat(format))
	}

	require.ErrorIs(t, ValidateOutputFormat("xml"), constants.ErrInvalidOutput)
}

func TestTitleCase(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Active", titleCase("active"))
	assert.Equal(t, NotAvailable, titleCase(""))
}
