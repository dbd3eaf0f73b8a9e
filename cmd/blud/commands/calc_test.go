package commands

import (
	"bufio"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/dyluth/blud/pkg/bloodtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestCalc(t *testing.T) {
	t.Run("default output", func(t *testing.T) {
		out, _, err := runCLI(t, "calc", "AB+", "AB+", "--config", missingConfig(t))
		require.NoError(t, err)

		assert.Contains(t, out, "Results for mother AB+ and father AB+")
		assert.Contains(t, out, "AB+: 37.50%\n")
		assert.Contains(t, out, "A-: 6.25%\n")
		assert.Contains(t, out, "O+: 0.00%\n")
	})

	t.Run("accepts lowercase input", func(t *testing.T) {
		out, _, err := runCLI(t, "calc", "a-", "b-", "--config", missingConfig(t))
		require.NoError(t, err)
		assert.Contains(t, out, "AB-: 25.00%\n")
		assert.Contains(t, out, "AB+: 0.00%\n")
	})

	t.Run("json output", func(t *testing.T) {
		out, _, err := runCLI(t, "calc", "O-", "O-", "-o", "json", "--config", missingConfig(t))
		require.NoError(t, err)

		var outcome bloodtype.Outcome
		require.NoError(t, json.Unmarshal([]byte(out), &outcome))
		assert.Equal(t, bloodtype.ONeg, outcome.Mother)
		assert.Equal(t, 100.0, outcome.Distribution[bloodtype.ONeg])
		assert.Equal(t, 0.0, outcome.Distribution[bloodtype.APos])
	})

	t.Run("table output", func(t *testing.T) {
		out, _, err := runCLI(t, "calc", "A+", "O-", "--output=table", "--config", missingConfig(t))
		require.NoError(t, err)
		assert.Contains(t, out, "37.50%")
		assert.Contains(t, out, "4 possible blood types")
	})

	t.Run("format from config", func(t *testing.T) {
		path := missingConfig(t)
		writeFile(t, path, "version: \"1.0\"\noutput:\n  format: json\n  precision: 0\n")

		out, _, err := runCLI(t, "calc", "A+", "B+", "--config", path)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "{"))
	})

	t.Run("flag overrides config", func(t *testing.T) {
		path := missingConfig(t)
		writeFile(t, path, "version: \"1.0\"\noutput:\n  format: json\n  precision: 1\n")

		out, _, err := runCLI(t, "calc", "AB+", "AB+", "-o", "default", "--config", path)
		require.NoError(t, err)
		assert.Contains(t, out, "AB+: 37.5%\n")
	})

	t.Run("invalid mother", func(t *testing.T) {
		_, errOut, err := runCLI(t, "calc", "C+", "A+", "--config", missingConfig(t))
		require.Error(t, err)
		assert.Equal(t, "invalid blood type", err.Error())
		assert.Contains(t, errOut, "Mother: C+")
		assert.Contains(t, errOut, "Valid blood types: A+, A-, B+, B-, AB+, AB-, O+, O-")
	})

	t.Run("invalid father", func(t *testing.T) {
		_, errOut, err := runCLI(t, "calc", "A+", "AB", "--config", missingConfig(t))
		require.Error(t, err)
		assert.Contains(t, errOut, "Father: AB")
	})

	t.Run("wrong argument count", func(t *testing.T) {
		_, errOut, err := runCLI(t, "calc", "A+", "--config", missingConfig(t))
		require.Error(t, err)
		assert.Equal(t, "expected two blood types", err.Error())
		assert.Contains(t, errOut, "blud calc A+ O-")
	})

	t.Run("invalid output format", func(t *testing.T) {
		_, errOut, err := runCLI(t, "calc", "A+", "A+", "-o", "jsonl", "--config", missingConfig(t))
		require.Error(t, err)
		assert.Equal(t, "invalid output format", err.Error())
		assert.Contains(t, errOut, "Valid formats: default, table, json")
	})
}

func TestCalcAll(t *testing.T) {
	t.Run("jsonl by default", func(t *testing.T) {
		out, _, err := runCLI(t, "calc", "--all", "--config", missingConfig(t))
		require.NoError(t, err)

		scanner := bufio.NewScanner(strings.NewReader(out))
		lines := 0
		for scanner.Scan() {
			var outcome bloodtype.Outcome
			require.NoError(t, json.Unmarshal(scanner.Bytes(), &outcome))
			assert.InDelta(t, 100.0, outcome.Distribution.Total(), 1e-9)
			lines++
		}
		assert.Equal(t, 64, lines)
	})

	t.Run("json array", func(t *testing.T) {
		out, _, err := runCLI(t, "calc", "--all", "-o", "json", "--config", missingConfig(t))
		require.NoError(t, err)

		var outcomes []bloodtype.Outcome
		require.NoError(t, json.Unmarshal([]byte(out), &outcomes))
		assert.Len(t, outcomes, 64)
	})

	t.Run("ignores configured single-result format", func(t *testing.T) {
		path := missingConfig(t)
		writeFile(t, path, "version: \"1.0\"\noutput:\n  format: table\n")

		out, _, err := runCLI(t, "calc", "--all", "--config", path)
		require.NoError(t, err)
		assert.Equal(t, 64, strings.Count(out, "\n"))
	})

	t.Run("rejects positional arguments", func(t *testing.T) {
		_, _, err := runCLI(t, "calc", "--all", "A+", "--config", missingConfig(t))
		require.Error(t, err)
		assert.Equal(t, "too many arguments", err.Error())
	})

	t.Run("filters by child", func(t *testing.T) {
		out, _, err := runCLI(t, "calc", "--all", "--child=O-", "--mother=A*", "--config", missingConfig(t))
		require.NoError(t, err)

		// A+ or A- mothers with any non-AB father
		assert.Equal(t, 12, strings.Count(out, "\n"))
	})

	t.Run("filters by minimum", func(t *testing.T) {
		out, _, err := runCLI(t, "calc", "--all", "--child=O+", "--min=50", "-o", "json", "--config", missingConfig(t))
		require.NoError(t, err)

		var outcomes []bloodtype.Outcome
		require.NoError(t, json.Unmarshal([]byte(out), &outcomes))
		require.Len(t, outcomes, 3)
		for _, o := range outcomes {
			assert.GreaterOrEqual(t, o.Distribution[bloodtype.OPos], 50.0)
		}
	})

	t.Run("min without child", func(t *testing.T) {
		_, _, err := runCLI(t, "calc", "--all", "--min=10", "--config", missingConfig(t))
		require.Error(t, err)
		assert.Equal(t, "--min requires --child", err.Error())
	})

	t.Run("invalid child", func(t *testing.T) {
		_, errOut, err := runCLI(t, "calc", "--all", "--child=Q", "--config", missingConfig(t))
		require.Error(t, err)
		assert.Contains(t, errOut, "Child: Q")
	})

	t.Run("malformed glob", func(t *testing.T) {
		_, _, err := runCLI(t, "calc", "--all", "--father=[A", "--config", missingConfig(t))
		require.Error(t, err)
		assert.Equal(t, "invalid filter", err.Error())
	})

	t.Run("filters without --all", func(t *testing.T) {
		_, _, err := runCLI(t, "calc", "A+", "A+", "--child=O+", "--config", missingConfig(t))
		require.Error(t, err)
		assert.Equal(t, "filters require --all", err.Error())
	})

	t.Run("rejects table format", func(t *testing.T) {
		_, _, err := runCLI(t, "calc", "--all", "-o", "table", "--config", missingConfig(t))
		require.Error(t, err)
		assert.Equal(t, "invalid output format", err.Error())
	})
}
