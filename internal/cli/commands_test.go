package cli

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/getkit/internal/testutil"
)

// run executes the full CLI and returns stdout, stderr and the exit code.
func run(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := Execute(args, &out, &errOut)
	return out.String(), errOut.String(), code
}

func TestCommands_TextOutput(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"fraction", []string{"fraction", "0.25"}, "1/4"},
		{"fraction repeating", []string{"fraction", "0.13", "--repeating", "1"}, "2/15"},
		{"fraction unsimplified", []string{"fraction", "2.50", "--no-simplify"}, "250/100"},
		{"fraction negative", []string{"fraction", "--", "-0.5"}, "-1/2"},
		{"base hex", []string{"base", "FF", "--from", "16"}, "255"},
		{"base binary", []string{"base", "255", "--to", "2"}, "11111111"},
		{"base zero", []string{"base", "0", "--to", "2"}, "0"},
		{"base64 encode", []string{"base", "hi", "--to", "64"}, "aGk="},
		{"base64 decode", []string{"base", "aGk=", "--from", "64"}, "hi"},
		{"gcd", []string{"gcd", "48", "18"}, "6"},
		{"lcm", []string{"lcm", "4", "6"}, "12"},
		{"intervals", []string{"intervals", "0", "10"}, "[0,5,10]"},
		{"intervals inner", []string{"intervals", "0", "10", "--steps", "3", "--no-edges"}, "[2.5,5,7.5]"},
		{"intervals vectors", []string{"intervals", "0,0", "2,4"}, "[[0,0],[1,2],[2,4]]"},
		{"pattern", []string{"pattern", "5", "1", "2"}, "[1,2,1,2,1]"},
		{"unique", []string{"unique", "3", "1", "3", "2", "1"}, "[3,1,2]"},
		{"unique words", []string{"unique", "a", "b", "a"}, `["a","b"]`},
		{"decimals", []string{"decimals", "3.125"}, "3"},
		{"decimals reads the number", []string{"decimals", "2.50"}, "1"},
		{"gcd leading zero", []string{"gcd", "010", "4"}, "2"},
		{"lcm leading zero", []string{"lcm", "010", "4"}, "20"},
		{"random leading zero", []string{"random", "08", "08"}, "8"},
		{"gcd wide", []string{"gcd", "99999999999999999999", "3"}, "3"},
		{"lcm wide", []string{"lcm", "123456789012345678901234567890", "2"}, "123456789012345678901234567890"},
		{"normalize", []string{"normalize", "Crème Brûlée"}, "Creme Brulee"},
		{"seeded random", []string{"random", "5", "5", "--seed", "11"}, "5"},
		{"call", []string{"call", "gcd", "12", "8"}, "4"},
		{"call list arg", []string{"call", "intervals", "[0,0]", "[2,4]", "1"}, "[[0,0],[1,2],[2,4]]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errOut, code := run(t, tt.args...)
			assert.Equal(t, ExitSuccess, code, "stderr: %s", errOut)
			assert.Equal(t, tt.want+"\n", out)
		})
	}
}

func TestCommands_Failures(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code string
	}{
		{"bad digit", []string{"base", "G", "--from", "16"}, ErrCodeInvalidArgument},
		{"bad base", []string{"base", "1", "--to", "99"}, ErrCodeInvalidArgument},
		{"empty numeral", []string{"base", ""}, ErrCodeInvalidArgument},
		{"overflow", []string{"lcm", "9223372036854775807", "2"}, ErrCodeOverflow},
		{"unknown function", []string{"call", "nope"}, ErrCodeNotFound},
		{"repeating too long", []string{"fraction", "0.5", "--repeating", "3"}, ErrCodeInvalidArgument},
		{"min above max", []string{"random", "9", "1"}, ErrCodeInvalidArgument},
		{"fractional operand", []string{"gcd", "12.9", "4"}, ErrCodeInvalidArgument},
		{"hex operand", []string{"lcm", "0x10", "4"}, ErrCodeInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, code := run(t, append(tt.args, "--format", "json")...)
			assert.Equal(t, ExitFailure, code)

			var resp CLIResponse
			require.NoError(t, json.Unmarshal([]byte(out), &resp), out)
			assert.Equal(t, "error", resp.Status)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.code, resp.Error.Code)
		})
	}
}

func TestCommands_JSONOutput(t *testing.T) {
	out, _, code := run(t, "fraction", "0.75", "--format", "json")
	require.Equal(t, ExitSuccess, code)
	assert.JSONEq(t, `{"status":"ok","data":{"numerator":3,"denominator":4}}`, out)
}

func TestCommands_WideOperandJSON(t *testing.T) {
	out, _, code := run(t, "gcd", "123456789012345678901234", "6", "--format", "json")
	require.Equal(t, ExitSuccess, code, out)
	assert.JSONEq(t, `{"status":"ok","data":2}`, out)
}

func TestRandomCommand_InRange(t *testing.T) {
	for i := 0; i < 20; i++ {
		out, _, code := run(t, "random", "1", "6", "--format", "json")
		require.Equal(t, ExitSuccess, code)

		var resp struct {
			Data int64 `json:"data"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &resp))
		assert.True(t, resp.Data >= 1 && resp.Data <= 6, "got %d", resp.Data)
	}
}

func TestRandomCommand_SeedIsReproducible(t *testing.T) {
	first, _, _ := run(t, "random", "1000000", "--seed", "42")
	second, _, _ := run(t, "random", "1000000", "--seed", "42")
	assert.Equal(t, first, second)
}

func TestTimeCommand(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{
		Format: "text",
		Clock:  testutil.NewSteppingClock(time.Date(2024, 1, 2, 13, 14, 15, 987_000_000, time.UTC), 0),
	}
	cmd := NewTimeCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "[13,14,15,987]\n", buf.String())
}

func TestMeasureCommand(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{
		Format: "json",
		Clock:  testutil.NewSteppingClock(time.Unix(0, 0).UTC(), 3*time.Millisecond),
	}
	cmd := NewMeasureCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"unique", "1", "1", "2"})

	require.NoError(t, cmd.Execute())
	assert.JSONEq(t, `{"status":"ok","data":{"elapsed_ms":3,"result":[1,2]}}`, buf.String())
}

func TestMeasureCommand_LogsPerfWhenVerbose(t *testing.T) {
	out, errOut, code := run(t, "measure", "gcd", "4", "2", "-v")
	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, out, `"result":2`)
	assert.Contains(t, errOut, "msg=perf")
	assert.Contains(t, errOut, `call measure ["gcd",4,2]`)
}

func TestMeasureCommand_PerfLogDisabled(t *testing.T) {
	t.Setenv("GETKIT_MEASURE_LOG", "false")

	_, errOut, code := run(t, "measure", "gcd", "4", "2", "-v")
	require.Equal(t, ExitSuccess, code)
	assert.NotContains(t, errOut, "msg=perf")
}

func TestListCommand(t *testing.T) {
	out, _, code := run(t, "list")
	require.Equal(t, ExitSuccess, code)

	for _, name := range []string{"base", "fraction", "gcd", "intervals", "measure", "unique"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "Greatest common divisor")
}

func TestListCommand_JSON(t *testing.T) {
	out, _, code := run(t, "list", "--format", "json")
	require.Equal(t, ExitSuccess, code)

	var resp struct {
		Status string         `json:"status"`
		Data   []FunctionInfo `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Data, 12)
	assert.Equal(t, "base", resp.Data[0].Name)
	assert.Equal(t, "<value> [from=10] [to=10]", resp.Data[0].Usage)
}

func TestParseArg(t *testing.T) {
	assert.Equal(t, float64(3), parseArg("3"))
	assert.Equal(t, 0.5, parseArg("0.5"))
	assert.Equal(t, true, parseArg("true"))
	assert.Equal(t, []any{float64(1), float64(2)}, parseArg("[1,2]"))
	assert.Equal(t, "FF", parseArg("FF"))
	assert.Equal(t, "010", parseArg("010"))
	assert.Equal(t, "null", parseArg("null"))
}
