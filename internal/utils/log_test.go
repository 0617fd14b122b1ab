package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewLogger(&buf, "info", "json")
	require.NoError(t, err)

	log.Debug().Msg("hidden")
	log.Info().Str("stock", "ALK").Msg("analysed")
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"stock":"ALK"`)
	assert.Contains(t, out, `"app":"stock-technicals"`)

	buf.Reset()
	log, err = NewLogger(&buf, "debug", "console")
	require.NoError(t, err)
	log.Debug().Msg("visible")
	assert.Contains(t, buf.String(), "visible")

	_, err = NewLogger(&buf, "loud", "json")
	assert.Error(t, err)
	_, err = NewLogger(&buf, "info", "xml")
	assert.Error(t, err)
}
