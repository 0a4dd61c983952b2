package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/subsums"
	"github.com/npillmayer/subsums/numfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func tempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestPositionalNumbers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "subsums")
	defer teardown()

	t.Run("integers", func(t *testing.T) {
		out, _, err := execute(t, "1", "2", "3")
		require.NoError(t, err)
		assert.Equal(t, "0, 1, 2, 3, 3, 4, 5, 6\n", out)
	})
	t.Run("floats", func(t *testing.T) {
		out, _, err := execute(t, "0.5", "0.25")
		require.NoError(t, err)
		assert.Equal(t, "0, 0.25, 0.5, 0.75\n", out)
	})
	t.Run("skip and take", func(t *testing.T) {
		out, _, err := execute(t, "--skip", "2", "--take", "3", "1", "2", "3")
		require.NoError(t, err)
		assert.Equal(t, "2, 3, 3\n", out)
	})
	t.Run("narrow lines", func(t *testing.T) {
		out, _, err := execute(t, "--width", "10", "1", "2", "3")
		require.NoError(t, err)
		assert.Equal(t, "0, 1, 2,\n3, 3, 4,\n5, 6\n", out)
	})
}

func TestRangeInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "subsums")
	defer teardown()

	t.Run("take from large range", func(t *testing.T) {
		out, _, err := execute(t, "--range", "0:100", "--take", "5")
		require.NoError(t, err)
		assert.Equal(t, "0, 0, 1, 1, 2\n", out)
	})
	t.Run("count up to max", func(t *testing.T) {
		out, _, err := execute(t, "--range", "1:100", "--max", "6", "--count")
		require.NoError(t, err)
		assert.Equal(t, "14\n", out)
	})
	t.Run("ascending on huge range", func(t *testing.T) {
		out, _, err := execute(t, "--range", "0:1000000000", "--ascending", "--take", "5")
		require.NoError(t, err)
		assert.Equal(t, "0, 0, 1, 1, 2\n", out)
	})
	t.Run("timing report", func(t *testing.T) {
		out, errOut, err := execute(t, "--range", "1:4", "--time")
		require.NoError(t, err)
		assert.Equal(t, "0, 1, 2, 3, 3, 4, 5, 6\n", out)
		assert.Contains(t, errOut, "8 sums in")
		assert.Contains(t, errOut, "produced=8")
	})
}

func TestFileInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "subsums")
	defer teardown()

	path := tempFile(t, "numbers.txt", "# weights\n1, 2\n3\n")
	t.Run("sorted", func(t *testing.T) {
		out, _, err := execute(t, "--file", path)
		require.NoError(t, err)
		assert.Equal(t, "0, 1, 2, 3, 3, 4, 5, 6\n", out)
	})
	t.Run("ascending", func(t *testing.T) {
		out, _, err := execute(t, "--file", path, "--ascending", "--max", "3")
		require.NoError(t, err)
		assert.Equal(t, "0, 1, 2, 3, 3\n", out)
	})
	t.Run("syntax error", func(t *testing.T) {
		bad := tempFile(t, "bad.txt", "1 x 3\n")
		_, _, err := execute(t, "--file", bad)
		assert.ErrorIs(t, err, numfile.ErrSyntax)
	})
	t.Run("not ascending", func(t *testing.T) {
		unsorted := tempFile(t, "unsorted.txt", "3 1 2\n")
		_, _, err := execute(t, "--file", unsorted, "--ascending")
		assert.ErrorIs(t, err, subsums.ErrNotAscending)
	})
}

func TestHTMLInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "subsums")
	defer teardown()

	path := tempFile(t, "table.html", "<table><tr><td>2</td><td>1</td></tr></table><script>var x = 99;</script>")
	out, _, err := execute(t, "--html", path)
	require.NoError(t, err)
	assert.Equal(t, "0, 1, 2, 3\n", out)
}

func TestConfigFromEnvironmentAndFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "subsums")
	defer teardown()

	t.Run("environment", func(t *testing.T) {
		t.Setenv("SUBSUMS_TAKE", "2")
		out, _, err := execute(t, "--range", "0:10")
		require.NoError(t, err)
		assert.Equal(t, "0, 0\n", out)
	})
	t.Run("config file", func(t *testing.T) {
		cfg := tempFile(t, "subsums.yaml", "take: 3\nrange: \"1:5\"\n")
		out, _, err := execute(t, "--config", cfg)
		require.NoError(t, err)
		assert.Equal(t, "0, 1, 2\n", out)
	})
	t.Run("missing config file", func(t *testing.T) {
		_, _, err := execute(t, "--config", filepath.Join(t.TempDir(), "none.yaml"), "1")
		assert.Error(t, err)
	})
}

func TestUsageErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "subsums")
	defer teardown()

	for _, args := range [][]string{
		{},
		{"--range", "0:5", "1", "2"},
		{"--range", "5"},
		{"--range", "5:1"},
		{"one", "two"},
		{"--take", "-1", "1"},
		{"--trace", "verbose", "1"},
		{"--max", "6.5", "1", "2", "3"},
		{"--max", "-1", "1"},
	} {
		_, _, err := execute(t, args...)
		assert.ErrorIs(t, err, errUsage, "args %v", args)
	}
	_, _, err := execute(t, "--range", "1:30", "--frontier-limit", "100")
	assert.ErrorIs(t, err, subsums.ErrFrontierLimit)
	_, _, err = execute(t, "--file", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestAscendingPositionalNumbers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "subsums")
	defer teardown()

	out, _, err := execute(t, "--ascending", "1", "2", "3")
	require.NoError(t, err)
	assert.Equal(t, "0, 1, 2, 3, 3, 4, 5, 6\n", out)
	_, _, err = execute(t, "--ascending", "3", "1", "2")
	assert.ErrorIs(t, err, subsums.ErrNotAscending)
}

func TestMaxIsExactForLargeIntegers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "subsums")
	defer teardown()

	// sums are 0, 1, 2^53, 2^53+1; 2^53+1 is not representable as float64
	out, _, err := execute(t, "--max", "9007199254740992", "--count", "9007199254740992", "1")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)
	out, _, err = execute(t, "--max", "0.5", "0.5", "0.25")
	require.NoError(t, err)
	assert.Equal(t, "0, 0.25, 0.5\n", out)
}

func TestOverflowingInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "subsums")
	defer teardown()

	out, _, err := execute(t, "9223372036854775807", "1")
	assert.ErrorIs(t, err, subsums.ErrOverflow)
	assert.Equal(t, "0, 1\n", out)
}
