package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	t.Cleanup(func() {
		env, verbose, datasetPath = "", false, ""
		reportFormat = "text"
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func writeDataset(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "series.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDatasetCheck_Embedded(t *testing.T) {
	out, err := execute(t, "dataset", "check")
	require.NoError(t, err)

	assert.Contains(t, out, "embedded:default.yaml")
	assert.Contains(t, out, "12 (Jan 24 ~ Dec 24)")
	assert.Contains(t, out, "$6,646.50")
	assert.Contains(t, out, "Dataset is valid")
}

func TestDatasetCheck_File(t *testing.T) {
	path := writeDataset(t, `
meta:
  name: sample
  currency: EUR
months:
  - month: "Jan"
    pnl: 100
  - month: "Feb"
    pnl: -40
`)

	out, err := execute(t, "dataset", "check", path)
	require.NoError(t, err)
	assert.Contains(t, out, "sample")
	assert.Contains(t, out, "€60.00")
}

func TestDatasetCheck_Invalid(t *testing.T) {
	path := writeDataset(t, `
months:
  - month: "Jan"
    pnl: 1
  - month: "Jan"
    pnl: 2
`)

	out, err := execute(t, "dataset", "check", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate month")
	assert.Contains(t, out, "is invalid")
}

func TestReport_JSON(t *testing.T) {
	out, err := execute(t, "report", "--format", "json")
	require.NoError(t, err)

	var report map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Len(t, report["metrics"], 12)
	assert.Len(t, report["equity_curve"], 12)
}

func TestReport_Text(t *testing.T) {
	out, err := execute(t, "report")
	require.NoError(t, err)

	assert.Contains(t, out, "Backtest Analysis")
	assert.Contains(t, out, "Performance Rating")
}

func TestEnvFlagOverridesInvalidEnvironment(t *testing.T) {
	t.Setenv("ENV", "bogus")

	_, err := execute(t, "report", "--format", "json")
	require.Error(t, err)

	out, err := execute(t, "--env", "production", "report", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"equity_curve"`)
}

func TestReport_UnknownFormat(t *testing.T) {
	_, err := execute(t, "report", "--format", "xml")
	assert.Error(t, err)
}
