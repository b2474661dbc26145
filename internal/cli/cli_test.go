package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("DATASET_SOURCE", "embedded")
	t.Setenv("DATASET_PATH", "")

	FlagSource, FlagDataset, FlagDBPath, FlagLogLevel = "", "", "", 0
	exportOutput, exportZstd = "", false

	root := NewRootCommand()

	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestStatsCommand(t *testing.T) {
	out, err := run(t, "stats")
	require.NoError(t, err)

	assert.Contains(t, out, "Customers:        10")
	assert.Contains(t, out, "With coordinates: 8 (80%)")
	assert.Contains(t, out, "Wednesday  5")
	assert.NotContains(t, out, "Sunday")
}

func TestDayCommand(t *testing.T) {
	out, err := run(t, "day", "wednesday")
	require.NoError(t, err)
	assert.Contains(t, out, "100412")
	assert.Contains(t, out, "4 customers")
	assert.NotContains(t, out, "101022")

	out, err = run(t, "day", "Funday")
	require.NoError(t, err)
	assert.Contains(t, out, "0 customers")

	_, err = run(t, "day")
	assert.Error(t, err)
}

func TestSearchCommand(t *testing.T) {
	out, err := run(t, "search", "anderson")
	require.NoError(t, err)
	assert.Contains(t, out, "100904")
	assert.Contains(t, out, "1 customers")

	out, err = run(t, "search")
	require.NoError(t, err)
	assert.Contains(t, out, "10 customers")
}

func TestGetCommand(t *testing.T) {
	out, err := run(t, "get", "100412")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "100412", got["customer_number"])
	assert.NotEmpty(t, got["name"])

	_, err = run(t, "get", "999999")
	assert.ErrorContains(t, err, "not found")
}

func TestExportRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "customers.json.zst")

	_, err := run(t, "export", "--zstd", "-o", path)
	require.NoError(t, err)

	out, err := run(t, "--dataset", path, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Customers:        10")
	assert.Contains(t, out, "Wednesday  5")
}

func TestUnknownSourceFails(t *testing.T) {
	_, err := run(t, "--source", "mongo", "stats")
	assert.ErrorContains(t, err, "unknown DATASET_SOURCE")
}

func TestRootCommandFlags(t *testing.T) {
	root := NewRootCommand()

	for _, name := range []string{"source", "dataset", "db", "verbose"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(name), name)
	}
	assert.Equal(t, "s", root.PersistentFlags().Lookup("source").Shorthand)
	assert.Equal(t, "v", root.PersistentFlags().Lookup("verbose").Shorthand)

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"stats", "day", "search", "get", "export"}, names)
}

func TestVerboseFlagCounts(t *testing.T) {
	_, err := run(t, "-vv", "stats")
	require.NoError(t, err)
	assert.Equal(t, 2, FlagLogLevel)
	assert.Equal(t, "trace", logLevel())
}

func TestErrorsStayOffStdout(t *testing.T) {
	out, err := run(t, "get", "999999")
	require.Error(t, err)
	assert.Empty(t, out)
}
