package simulation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvqec/simulation"
)

func TestSplitTrials(t *testing.T) {
	tests := []struct {
		trials, parts int
		want          []int
	}{
		{10, 3, []int{3, 3, 4}},
		{11, 3, []int{3, 4, 4}},
		{12, 3, []int{4, 4, 4}},
		{2, 4, []int{0, 0, 1, 1}},
		{0, 2, []int{0, 0}},
		{7, 1, []int{7}},
	}
	for _, tc := range tests {
		got, err := simulation.SplitTrials(tc.trials, tc.parts)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%d over %d", tc.trials, tc.parts)
	}
	_, err := simulation.SplitTrials(-1, 2)
	require.ErrorIs(t, err, simulation.ErrInvalidTrials)
	_, err = simulation.SplitTrials(3, 0)
	require.ErrorIs(t, err, simulation.ErrInvalidPartition)
}

func TestResultLabel(t *testing.T) {
	assert.Equal(t, "results_1", simulation.ResultLabel(0, 9))
	assert.Equal(t, "results_01", simulation.ResultLabel(0, 10))
	assert.Equal(t, "results_10", simulation.ResultLabel(9, 10))
	assert.Equal(t, "results_007", simulation.ResultLabel(6, 120))
}

func TestPartition_Layout(t *testing.T) {
	// 2 nodes x 4 cores over 3 inputs: 2, 2 and 2+2 tasks.
	tasks, err := simulation.Partition(10, 2, 4, 3)
	require.NoError(t, err)
	require.Len(t, tasks, 8)

	wantInputs := []int{0, 0, 1, 1, 2, 2, 2, 2}
	wantTrials := []int{5, 5, 5, 5, 2, 2, 3, 3}
	for i, task := range tasks {
		assert.Equal(t, i, task.Index)
		assert.Equal(t, wantInputs[i], task.Input, "task %d", i)
		assert.Equal(t, wantTrials[i], task.Trials, "task %d", i)
		assert.Equal(t, simulation.ResultLabel(i, 8), task.Label)
	}
	assert.Equal(t, 3, tasks[7].Slot)
}

func TestPartition_Invariants(t *testing.T) {
	for trials := 0; trials <= 40; trials += 7 {
		for nodes := 1; nodes <= 3; nodes++ {
			for cores := 1; cores <= 5; cores++ {
				for inputs := 1; inputs <= nodes*cores; inputs++ {
					tasks, err := simulation.Partition(trials, nodes, cores, inputs)
					require.NoError(t, err)
					require.Len(t, tasks, nodes*cores)

					sum := make([]int, inputs)
					lo := make([]int, inputs)
					hi := make([]int, inputs)
					for i := range lo {
						lo[i] = trials + 1
					}
					prevInput := 0
					for _, task := range tasks {
						require.GreaterOrEqual(t, task.Input, prevInput, "inputs are contiguous")
						prevInput = task.Input
						sum[task.Input] += task.Trials
						lo[task.Input] = min(lo[task.Input], task.Trials)
						hi[task.Input] = max(hi[task.Input], task.Trials)
						if trials >= nodes*cores {
							require.Positive(t, task.Trials)
						}
					}
					for in := 0; in < inputs; in++ {
						require.Equal(t, trials, sum[in], "every trial of input %d assigned once", in)
						require.LessOrEqual(t, hi[in]-lo[in], 1, "balanced within one")
					}
				}
			}
		}
	}
}

func TestPartition_Errors(t *testing.T) {
	_, err := simulation.Partition(10, 1, 2, 3)
	require.ErrorIs(t, err, simulation.ErrTooFewTasks)
	_, err = simulation.Partition(10, 0, 2, 1)
	require.ErrorIs(t, err, simulation.ErrInvalidPartition)
	_, err = simulation.Partition(-1, 1, 1, 1)
	require.ErrorIs(t, err, simulation.ErrInvalidTrials)
}

func TestDeriveSeed(t *testing.T) {
	a := simulation.DeriveSeed(1, "run", 0)
	require.Equal(t, a, simulation.DeriveSeed(1, "run", 0))
	require.Positive(t, a)
	require.NotEqual(t, a, simulation.DeriveSeed(1, "run", 1))
	require.NotEqual(t, a, simulation.DeriveSeed(2, "run", 0))
	require.NotEqual(t, a, simulation.DeriveSeed(1, "other", 0))
}
