package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirphl/stock-technicals/internal/config"
)

const stockJSON = `{
  "_id": "ALK",
  "data": [
    {"date": "03.10.2026", "last_transaction": "21.600,00 ден.", "max_value": "21.800,00 ден.", "min_value": "21.400,00 ден.", "volume": "1.200"},
    {"date": "02.10.2026", "last_transaction": "21.500,00 ден.", "max_value": "21.700,00 ден.", "min_value": "21.300,00 ден.", "volume": "800"},
    {"date": "01.10.2026", "last_transaction": "21.450,00 ден.", "max_value": "21.600,00 ден.", "min_value": "21.200,00 ден.", "volume": "950"}
  ]
}`

func writeInput(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "records.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDecodeRecords(t *testing.T) {
	id, raws, err := decodeRecords([]byte(stockJSON))
	require.NoError(t, err)
	assert.Equal(t, "ALK", id)
	require.Len(t, raws, 3)
	assert.Equal(t, "21.600,00 ден.", raws[0].LastTransaction)

	id, raws, err = decodeRecords([]byte(`  [{"date": "x", "volume": "1"}]`))
	require.NoError(t, err)
	assert.Empty(t, id)
	assert.Len(t, raws, 1)

	_, _, err = decodeRecords([]byte(`{"data": 5}`))
	assert.Error(t, err)
}

func TestRunPeriods(t *testing.T) {
	cfg, err := config.Load([]string{"-input", writeInput(t, stockJSON)})
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, run(cfg, zerolog.Nop(), &out))

	var results map[string]map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out.Bytes(), &results))
	assert.Len(t, results, 3)
	for _, period := range []string{"day", "week", "month"} {
		require.Contains(t, results, period)
		assert.Contains(t, results[period], "overall_signal")
		assert.Contains(t, results[period], "ma_comparison")
	}
	assert.JSONEq(t, `21550`, string(results["day"]["sma"]))
}

func TestRunHistory(t *testing.T) {
	cfg, err := config.Load([]string{"-input", writeInput(t, stockJSON), "-history"})
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, run(cfg, zerolog.Nop(), &out))
	assert.JSONEq(t, `{
		"dates": ["01.10.2026", "02.10.2026", "03.10.2026"],
		"prices": [21450, 21500, 21600]
	}`, out.String())
}

func TestRunErrors(t *testing.T) {
	short := `[{"date": "d", "last_transaction": "21.600,00 ден.", "max_value": "21.600,00 ден.", "min_value": "21.600,00 ден.", "volume": "1"}]`
	cfg, err := config.Load([]string{"-input", writeInput(t, short)})
	require.NoError(t, err)
	assert.Error(t, run(cfg, zerolog.Nop(), &bytes.Buffer{}))

	malformed := `[
		{"date": "d0", "last_transaction": "abc,00 ден.", "max_value": "1,00 ден.", "min_value": "1,00 ден.", "volume": "1"},
		{"date": "d1", "last_transaction": "1,00 ден.", "max_value": "1,00 ден.", "min_value": "1,00 ден.", "volume": "1"}
	]`
	cfg, err = config.Load([]string{"-input", writeInput(t, malformed)})
	require.NoError(t, err)
	assert.Error(t, run(cfg, zerolog.Nop(), &bytes.Buffer{}))

	cfg, err = config.Load([]string{"-input", filepath.Join(t.TempDir(), "missing.json")})
	require.NoError(t, err)
	assert.Error(t, run(cfg, zerolog.Nop(), &bytes.Buffer{}))
}
