package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const passingScenario = `
name: divisors
description: "gcd and lcm agree with the usage examples"
run_id: run-divisors
calls:
  - call: gcd
    args: [48, 18]
    expect:
      value: 6
  - call: lcm
    args: [4, 6]
    expect:
      value: 12
`

const failingScenario = `
name: wrong
description: "Expects the wrong gcd"
calls:
  - call: gcd
    args: [48, 18]
    expect:
      value: 5
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestCheck_HarnessScenarios(t *testing.T) {
	out, errOut, code := run(t, "check", filepath.Join("..", "harness", "testdata", "scenarios"))
	assert.Equal(t, ExitSuccess, code, "stdout: %s stderr: %s", out, errOut)
	assert.Contains(t, out, "✓ fraction_basics")
	assert.Contains(t, out, "✓ sequences_and_time")
	assert.Contains(t, out, "Check Summary: 2 passed, 0 failed, 2 total")
}

func TestCheck_Failure(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "ok.yaml"), passingScenario)
	writeFile(t, filepath.Join(dir, "wrong.yaml"), failingScenario)

	out, _, code := run(t, "check", dir)
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, out, "✓ divisors")
	assert.Contains(t, out, "✗ wrong")
	assert.Contains(t, out, "calls[0] gcd: expected 5, got 6")
	assert.Contains(t, out, "1 passed, 1 failed, 2 total")
}

func TestCheck_JSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "ok.yaml"), passingScenario)
	writeFile(t, filepath.Join(dir, "wrong.yaml"), failingScenario)

	out, _, code := run(t, "check", dir, "--format", "json")
	assert.Equal(t, ExitFailure, code)

	var resp struct {
		Status string      `json:"status"`
		Data   CheckResult `json:"data"`
		Error  *CLIError   `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, 2, resp.Data.Total)
	assert.Equal(t, 1, resp.Data.Failed)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeCheckFailed, resp.Error.Code)
}

func TestCheck_Filter(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "ok.yaml"), passingScenario)
	writeFile(t, filepath.Join(dir, "wrong.yaml"), failingScenario)

	out, _, code := run(t, "check", dir, "--filter", "o*")
	assert.Equal(t, ExitSuccess, code)
	assert.Contains(t, out, "1 passed, 0 failed, 1 total")
	assert.NotContains(t, out, "wrong")
}

func TestCheck_GoldenRoundTrip(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "ok.yaml"), passingScenario)

	out, _, code := run(t, "check", dir, "--update")
	require.Equal(t, ExitSuccess, code, out)
	assert.Contains(t, out, "✓ divisors (golden updated)")

	goldenPath := filepath.Join(dir, "golden", "ok.golden")
	golden, err := os.ReadFile(goldenPath)
	require.NoError(t, err)
	assert.Contains(t, string(golden), `"run_id": "run-divisors"`)

	_, _, code = run(t, "check", dir)
	assert.Equal(t, ExitSuccess, code)

	writeFile(t, goldenPath, "{}")
	out, _, code = run(t, "check", dir)
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, out, "trace does not match golden file")
}

func TestCheck_LoadError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "broken.yaml"), "name: broken\n")

	out, _, code := run(t, "check", dir)
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, out, "✗ broken.yaml")
	assert.Contains(t, out, "failed to load scenario")
}

func TestCheck_MissingDir(t *testing.T) {
	_, errOut, code := run(t, "check", filepath.Join(t.TempDir(), "absent"))
	assert.Equal(t, ExitCommandError, code)
	assert.Contains(t, errOut, "Error [E005]: scenarios directory not found")
}

func TestCheck_Empty(t *testing.T) {
	out, _, code := run(t, "check", t.TempDir())
	assert.Equal(t, ExitSuccess, code)
	assert.Contains(t, out, "No scenarios found.")
}
