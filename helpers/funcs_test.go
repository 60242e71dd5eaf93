package helpers

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestMean(t *testing.T) {
	assert.Equal(t, 2.0, Mean([]float64{1, 2, 3}))
	assert.Equal(t, 0.0, Mean(nil))
}

func TestPopulationStdDev(t *testing.T) {
	numbers := []float64{0.1, -0.1}
	assert.InDelta(t, 0.1, PopulationStdDev(numbers, Mean(numbers)), 1e-12)
	assert.Equal(t, 0.0, PopulationStdDev(nil, 0))
}

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 31.8681, RoundTo(31.868131868131865, 4))
	assert.Equal(t, -1.0, RoundTo(-1.00004, 4))
	assert.Equal(t, 1.5, RoundTo(1.45, 1))
}

func TestStringIntervalToSeconds(t *testing.T) {
	assert.Equal(t, 60, StringIntervalToSeconds("1m"))
	assert.Equal(t, 4*60*60, StringIntervalToSeconds("4h"))
	assert.Equal(t, 7*24*60*60, StringIntervalToSeconds("1w"))
	// unknown intervals fall back to a day
	assert.Equal(t, 24*60*60, StringIntervalToSeconds("huh"))
}
