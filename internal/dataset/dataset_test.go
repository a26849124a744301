package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "series.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	ds, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "noliquid-perp-v1", ds.Meta.Name)
	assert.Equal(t, "USD", ds.Currency())
	require.Len(t, ds.Months, 12)
	assert.Equal(t, "Jan 24", ds.Months[0].Month)
	assert.Equal(t, 1245.80, ds.Months[0].PnL)
	assert.Equal(t, -138.20, ds.Months[11].PnL)
}

func TestLoad_EmptyPathUsesDefault(t *testing.T) {
	ds, source, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultName, source)
	assert.Len(t, ds.Months, 12)
}

func TestLoad_File(t *testing.T) {
	path := writeTemp(t, `
meta:
  name: scenario
months:
  - { month: Jan, pnl: 100 }
  - { month: Feb, pnl: -50 }
  - { month: Mar, pnl: 30 }
`)

	ds, source, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, source)
	assert.Equal(t, "scenario", ds.Meta.Name)
	assert.Equal(t, "USD", ds.Currency(), "currency defaults to USD")

	records := ds.Records()
	require.Len(t, records, 3)
	assert.Equal(t, "Feb", records[1].Month)
	assert.Equal(t, -50.0, records[1].PnL)
}

func TestLoad_MissingFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParse_UnknownField(t *testing.T) {
	_, err := Parse([]byte(`
months:
  - { month: Jan, pnl: 100, pnL: 3 }
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode yaml")
}

func TestParse_Empty(t *testing.T) {
	_, err := Parse([]byte("meta:\n  name: empty\nmonths: []\n"))
	assert.ErrorIs(t, err, ErrEmptySeries)
}

func TestValidate_CollectsAllProblems(t *testing.T) {
	_, err := Parse([]byte(`
months:
  - { month: Jan, pnl: 1 }
  - { month: "  ", pnl: 2 }
  - { month: Jan, pnl: 3 }
  - { month: Apr, pnl: .nan }
  - { month: May, pnl: -.inf }
`))
	require.Error(t, err)

	errs := multierr.Errors(err)
	require.Len(t, errs, 4)
	assert.Contains(t, errs[0].Error(), "months[1]: month label is required")
	assert.Contains(t, errs[1].Error(), `duplicate month "Jan"`)
	assert.Contains(t, errs[2].Error(), "months[3]: pnl must be a finite number")
	assert.Contains(t, errs[3].Error(), "months[4]")
}

func TestHash(t *testing.T) {
	a, err := Default()
	require.NoError(t, err)
	b, err := Default()
	require.NoError(t, err)

	ha, err := a.Hash()
	require.NoError(t, err)
	hb, err := b.Hash()
	require.NoError(t, err)

	assert.Len(t, ha, 64)
	assert.Equal(t, ha, hb, "hash must be deterministic")

	b.Months[0].PnL += 0.01
	hc, err := b.Hash()
	require.NoError(t, err)
	assert.NotEqual(t, ha, hc, "hash must change with content")
}
