package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// runCLI executes the command tree against a temporary config directory.
func runCLI(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	t.Setenv("ARRANGE_OUTPUT", "")
	var out, errb bytes.Buffer
	full := append([]string{"--config-dir", t.TempDir()}, args...)
	code = run(full, strings.NewReader(stdin), &out, &errb)
	return code, out.String(), errb.String()
}

func TestVersion(t *testing.T) {
	code, out, _ := runCLI(t, "", "version")
	assert.Equal(t, exitSuccess, code)
	assert.Contains(t, out, "arrange v")
	assert.Contains(t, out, modulePath)
}

func TestCountFromStdin(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "no items", input: "0\n", want: "1\n"},
		{name: "single item", input: "1\n2\n", want: "1\n"},
		{name: "one and two units", input: "2\n2 3\n", want: "1\n"},
		{name: "two pairs", input: "2\n3 3\n", want: "2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, stderr := runCLI(t, tt.input, "count")
			require.Equal(t, exitSuccess, code, stderr)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestCountFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("3 2 2 2"), 0o644))

	code, out, stderr := runCLI(t, "", "count", path)
	require.Equal(t, exitSuccess, code, stderr)
	assert.Equal(t, "6\n", out)
}

func TestCountJSON(t *testing.T) {
	code, out, stderr := runCLI(t, "2 2 3", "--json", "count")
	require.Equal(t, exitSuccess, code, stderr)

	var got countResult
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.NotEmpty(t, got.RunID)
	assert.Equal(t, 3, got.Items)
	assert.Equal(t, [5]int{1, 1, 0, 0, 0}, got.Counts)
	assert.Equal(t, 1, got.Last)
	assert.Equal(t, uint32(1), got.Result)
}

func TestCountUserErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{name: "empty input", input: "", wantMsg: "missing item count"},
		{name: "code out of range", input: "2 2 7", wantMsg: "category code out of range"},
		{name: "short input", input: "4 2 2", wantMsg: "fewer codes than declared"},
		{name: "too many colours", input: "18 2 2 2 2 2 2 2 2 2 2 2 2 2 2 2 2 2 2", wantMsg: "slot count out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runCLI(t, tt.input, "count")
			assert.Equal(t, exitUserError, code)
			assert.Contains(t, stderr, tt.wantMsg)
		})
	}
}

func TestCountMissingFile(t *testing.T) {
	code, _, stderr := runCLI(t, "", "count", filepath.Join(t.TempDir(), "nope.txt"))
	assert.Equal(t, exitUserError, code)
	assert.Contains(t, stderr, "open input")
}

func TestEval(t *testing.T) {
	code, out, stderr := runCLI(t, "", "eval", "3", "0", "0", "0", "0", "--last", "2")
	require.Equal(t, exitSuccess, code, stderr)
	assert.Equal(t, "4\n", out)

	code, out, stderr = runCLI(t, "", "eval", "0", "2", "0", "0", "0")
	require.Equal(t, exitSuccess, code, stderr)
	assert.Equal(t, "2\n", out)
}

func TestEvalErrors(t *testing.T) {
	code, _, stderr := runCLI(t, "", "eval", "1", "x", "0", "0", "0")
	assert.Equal(t, exitUserError, code)
	assert.Contains(t, stderr, "slot b")

	code, _, stderr = runCLI(t, "", "eval", "1", "0", "0", "0", "0", "--last", "9")
	assert.Equal(t, exitUserError, code)
	assert.Contains(t, stderr, "marker out of range")

	code, _, _ = runCLI(t, "", "eval", "1", "0")
	assert.Equal(t, exitUserError, code)
}

func TestVerify(t *testing.T) {
	code, out, stderr := runCLI(t, "", "verify", "--max-items", "5")
	require.Equal(t, exitSuccess, code, stderr)
	assert.Contains(t, out, "up to 5 units, 0 mismatches")
}

func TestVerifyJSON(t *testing.T) {
	code, out, stderr := runCLI(t, "", "--json", "verify", "--max-items", "4")
	require.Equal(t, exitSuccess, code, stderr)

	var got verifyReport
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 4, got.MaxItems)
	assert.Positive(t, got.Checked)
	assert.Empty(t, got.Mismatches)
}

func TestVerifyLimit(t *testing.T) {
	code, _, stderr := runCLI(t, "", "verify", "--max-items", "40")
	assert.Equal(t, exitUserError, code)
	assert.Contains(t, stderr, "too many units")
}

func TestInitWritesConfig(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "conf")
	var out, errb bytes.Buffer

	code := run([]string{"--config-dir", dir, "init"}, strings.NewReader(""), &out, &errb)
	require.Equal(t, exitSuccess, code, errb.String())
	assert.Contains(t, out.String(), "Wrote")

	data, err := os.ReadFile(filepath.Join(dir, configFileExt))
	require.NoError(t, err)
	var cfg configFile
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, outputText, cfg.Output)
	assert.Equal(t, defaultVerifyMaxItems, cfg.VerifyMaxItems)
	assert.Equal(t, defaultLogLevel, cfg.LogLevel)

	out.Reset()
	code = run([]string{"--config-dir", dir, "init"}, strings.NewReader(""), &out, &errb)
	require.Equal(t, exitSuccess, code)
	assert.Contains(t, out.String(), "already exists")
}

func TestConfigSelectsJSONOutput(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileExt), []byte("output: json\n"), 0o644))

	var out, errb bytes.Buffer
	code := run([]string{"--config-dir", dir, "count"}, strings.NewReader("0"), &out, &errb)
	require.Equal(t, exitSuccess, code, errb.String())

	var got countResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, uint32(1), got.Result)
}

func TestConfigRejectsUnknownOutput(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileExt), []byte("output: xml\n"), 0o644))

	var out, errb bytes.Buffer
	code := run([]string{"--config-dir", dir, "count"}, strings.NewReader("0"), &out, &errb)
	assert.Equal(t, exitSysError, code)
	assert.Contains(t, errb.String(), "unknown output")
}

func TestConfigMaxItemsFromFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileExt), []byte("verify_max_items: 3\n"), 0o644))

	var out, errb bytes.Buffer
	code := run([]string{"--config-dir", dir, "verify"}, strings.NewReader(""), &out, &errb)
	require.Equal(t, exitSuccess, code, errb.String())
	assert.Contains(t, out.String(), "up to 3 units")
}

func TestVerboseLogsToStderr(t *testing.T) {
	code, out, stderr := runCLI(t, "1 2", "--verbose", "count")
	require.Equal(t, exitSuccess, code)
	assert.Equal(t, "1\n", out)
	assert.Contains(t, stderr, "memo table allocated")
}
