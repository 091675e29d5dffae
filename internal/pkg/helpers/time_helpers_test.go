package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayWindow(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	// 2023-10-27 23:30 UTC is already the 28th in Tokyo.
	ts := time.Date(2023, 10, 27, 23, 30, 0, 0, time.UTC)

	start, end := DayWindow(ts, tokyo)

	assert.Equal(t, time.Date(2023, 10, 28, 0, 0, 0, 0, tokyo), start)
	assert.Equal(t, 24*time.Hour, end.Sub(start))

	utcStart, _ := DayWindow(ts, nil)
	assert.Equal(t, time.Date(2023, 10, 27, 0, 0, 0, 0, time.UTC), utcStart)
}

func TestLoadLocation(t *testing.T) {
	assert.Equal(t, time.UTC, LoadLocation(""))
	assert.Equal(t, time.UTC, LoadLocation("Mars/Olympus"))
	assert.Equal(t, "Asia/Tokyo", LoadLocation("Asia/Tokyo").String())
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 5*time.Second, ParseDuration("5s", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("soon", time.Minute))
}
