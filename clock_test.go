package snowbench_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snowbench/snowbench"
)

func TestWallClockMonotonic(t *testing.T) {
	clock := snowbench.NewWallClock()

	prev, err := clock()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, prev, time.Duration(0))

	for i := 0; i < 100; i++ {
		cur, err := clock()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
}

func TestCPUClockMonotonic(t *testing.T) {
	clock, err := snowbench.NewCPUClock()
	require.NoError(t, err)

	prev, err := clock()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, prev, time.Duration(0))

	for i := 0; i < 10; i++ {
		cur, err := clock()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
}

func TestSystemClocks(t *testing.T) {
	clocks, err := snowbench.SystemClocks()
	require.NoError(t, err)
	require.NotNil(t, clocks.Wall)
	require.NotNil(t, clocks.CPU)

	wall, err := clocks.Wall()
	require.NoError(t, err)
	cpu, err := clocks.CPU()
	require.NoError(t, err)

	assert.GreaterOrEqual(t, wall, time.Duration(0))
	assert.GreaterOrEqual(t, cpu, time.Duration(0))
}
