package provider

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tableYAML = `header: [redirect_id, active, domain, slug, group1, group2, weights]
rows:
  - ["5", "TRUE", example.com, bar, "g1", "g2", "1,1"]
  - ["6", "FALSE", example.org, baz]
`

func writeTable(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rows.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestStaticProvider_FetchTable(t *testing.T) {
	p := NewStaticProvider(writeTable(t, tableYAML))

	table, err := p.FetchTable(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"redirect_id", "active", "domain", "slug", "group1", "group2", "weights"}, table.Header)
	assert.Equal(t, 2, table.Len())
	assert.Equal(t, []string{"6", "FALSE", "example.org", "baz"}, table.Rows[1])
}

func TestStaticProvider_Errors(t *testing.T) {
	_, err := NewStaticProvider("").FetchTable(context.Background())
	assert.ErrorIs(t, err, ErrMissingCredentials)

	_, err = NewStaticProvider(filepath.Join(t.TempDir(), "missing.yaml")).FetchTable(context.Background())
	assert.ErrorIs(t, err, ErrFetchFailed)

	_, err = NewStaticProvider(writeTable(t, "header: [unterminated")).FetchTable(context.Background())
	assert.ErrorIs(t, err, ErrFetchFailed)
}

func TestLoadStaticRows(t *testing.T) {
	rows, err := LoadStaticRows(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Nil(t, rows)

	rows, err = LoadStaticRows(writeTable(t, tableYAML))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"g1", "g2"}, rows[0].Groups)
	assert.False(t, rows[1].Active)
}
