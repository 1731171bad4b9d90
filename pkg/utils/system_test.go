package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestServerLoad(t *testing.T) {
	load, capacity, healthy := ServerLoad(0.5, 0.5)
	assert.InDelta(t, 0.5, load, 1e-9)
	assert.InDelta(t, 0.5, capacity, 1e-9)
	assert.True(t, healthy)

	_, capacity, healthy = ServerLoad(0.95, 0.2)
	assert.False(t, healthy)
	assert.GreaterOrEqual(t, capacity, 0.0)

	_, _, healthy = ServerLoad(0.1, 0.96)
	assert.False(t, healthy)
}

func TestGetSystemMetrics_Bounded(t *testing.T) {
	cpuUsage, memoryUsage := GetSystemMetrics()
	assert.GreaterOrEqual(t, cpuUsage, 0.0)
	assert.LessOrEqual(t, cpuUsage, 1.0)
	assert.GreaterOrEqual(t, memoryUsage, 0.0)
	assert.LessOrEqual(t, memoryUsage, 1.0)
}

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2024, 3, 5, 7, 8, 9, 123456000, time.Local)
	assert.Equal(t, "2024-03-05T07:08:09.123456", FormatTimestamp(ts))
}

func TestProcessingTime(t *testing.T) {
	got := ProcessingTime(time.Now().Add(-1500 * time.Millisecond))
	assert.Regexp(t, `^1\.5\ds$`, got)
}

func TestContentHash(t *testing.T) {
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", ContentHash(""))
	assert.Len(t, ContentHash("blue sky!!"), 64)
	assert.NotEqual(t, ContentHash("a"), ContentHash("b"))
}
