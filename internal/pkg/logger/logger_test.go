package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestConfigure(t *testing.T) {
	var buf bytes.Buffer
	lgr := Configure(Config{Level: "WARN", Output: &buf})
	t.Cleanup(func() { Configure(Config{Level: InfoLevel}) })

	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	lgr.Info().Msg("hidden")
	Warn().Str("cardID", "12345678").Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"cardID":"12345678"`)
}

func TestParseFormat(t *testing.T) {
	assert.True(t, ParseFormat(" Text "))
	assert.False(t, ParseFormat("json"))
}
