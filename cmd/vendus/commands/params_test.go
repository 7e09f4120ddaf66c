package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/codetech/vendus-go/internal/constants"
	"github.com/codetech/vendus-go/pkg/vendus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fields   []string
		expected vendus.Params
		err      error
	}{
		{
			name:     "no fields",
			fields:   nil,
			expected: vendus.Params{},
		},
		{
			name:     "flat fields",
			fields:   []string{"name=ACME", "fiscal_id=500000000"},
			expected: vendus.Params{"name": "ACME", "fiscal_id": "500000000"},
		},
		{
			name:     "value containing equals",
			fields:   []string{"notes=a=b"},
			expected: vendus.Params{"notes": "a=b"},
		},
		{
			name:     "empty value",
			fields:   []string{"notes="},
			expected: vendus.Params{"notes": ""},
		},
		{
			name:   "dotted keys nest",
			fields: []string{"items.0.reference=P1", "items.0.qty=2", "items.1.reference=P2"},
			expected: vendus.Params{"items": vendus.Params{
				"0": vendus.Params{"reference": "P1", "qty": "2"},
				"1": vendus.Params{"reference": "P2"},
			}},
		},
		{
			name:   "missing equals",
			fields: []string{"name"},
			err:    constants.ErrInvalidFieldFormat,
		},
		{
			name:   "empty key",
			fields: []string{"=x"},
			err:    constants.ErrInvalidFieldFormat,
		},
		{
			name:   "empty segment",
			fields: []string{"items..qty=1"},
			err:    constants.ErrInvalidFieldPath,
		},
		{
			name:   "scalar then nested",
			fields: []string{"client=1", "client.name=x"},
			err:    constants.ErrInvalidFieldPath,
		},
		{
			name:   "nested then scalar",
			fields: []string{"client.name=x", "client=1"},
			err:    constants.ErrInvalidFieldPath,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			params, err := parseFields(tt.fields)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestParseFields_EncodesBracketNotation(t *testing.T) {
	t.Parallel()

	params, err := parseFields([]string{"type=FT", "items.0.qty=2", "items.0.reference=P1"})
	require.NoError(t, err)

	values := params.Values()
	assert.Equal(t, "2", values.Get("items[0][qty]"))
	assert.Equal(t, "P1", values.Get("items[0][reference]"))
	assert.Equal(t, "FT", values.Get("type"))
}

func TestLoadParamsFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		return path
	}

	t.Run("yaml mapping", func(t *testing.T) {
		t.Parallel()

		path := write("doc.yml", "type: FT\nitems:\n  - reference: P1\n    qty: 2\nclient:\n  name: ACME\n")

		params, err := loadParamsFile(path)
		require.NoError(t, err)
		assert.Equal(t, "FT", params["type"])
		assert.Equal(t, vendus.Params{"name": "ACME"}, params["client"])

		values := params.Values()
		assert.Equal(t, "P1", values.Get("items[0][reference]"))
		assert.Equal(t, "2", values.Get("items[0][qty]"))
		assert.Equal(t, "ACME", values.Get("client[name]"))
	})

	t.Run("json mapping", func(t *testing.T) {
		t.Parallel()

		path := write("client.json", `{"name":"ACME","send_email":true}`)

		params, err := loadParamsFile(path)
		require.NoError(t, err)
		assert.Equal(t, "1", params.Values().Get("send_email"))
	})

	t.Run("not a mapping", func(t *testing.T) {
		t.Parallel()

		path := write("list.yml", "- a\n- b\n")

		_, err := loadParamsFile(path)
		require.ErrorIs(t, err, constants.ErrInvalidParamsFile)
	})

	t.Run("empty file", func(t *testing.T) {
		t.Parallel()

		path := write("empty.yml", "")

		_, err := loadParamsFile(path)
		require.ErrorIs(t, err, constants.ErrInvalidParamsFile)
	})

	t.Run("directory", func(t *testing.T) {
		t.Parallel()

		_, err := loadParamsFile(dir)
		require.ErrorIs(t, err, constants.ErrNotRegularFile)
	})

	t.Run("traversal", func(t *testing.T) {
		t.Parallel()

		_, err := loadParamsFile("../secrets.yml")
		require.ErrorIs(t, err, constants.ErrDirectoryTraversalDetected)
	})
}

func TestBuildBodyParams(t *testing.T) {
	t.Parallel()

	_, err := buildBodyParams(nil, "")
	require.ErrorIs(t, err, constants.ErrNoFieldsSpecified)

	path := filepath.Join(t.TempDir(), "client.yml")
	require.NoError(t, os.WriteFile(path, []byte("name: ACME\nclient:\n  city: Lisboa\n"), 0o600))

	params, err := buildBodyParams([]string{"name=Other", "client.country=PT"}, path)
	require.NoError(t, err)
	assert.Equal(t, "Other", params["name"])
	assert.Equal(t, vendus.Params{"city": "Lisboa", "country": "PT"}, params["client"])
}
