// SPDX-License-Identifier: MIT

package simulation

import (
	"fmt"
	"strconv"
)

// Task is one unit of a batch job: run Trials trials of input Input and
// write results under Label.
type Task struct {
	// Index is the global task number, node-major: node·cores + core.
	Index int
	Input int
	// Slot is the task's position among the tasks of its input.
	Slot   int
	Trials int
	// Label is the result directory name, e.g. results_07 for task 6 of 12.
	Label string
}

// SplitTrials divides trials between parts as evenly as possible. The
// remainder goes one by one to the last parts, so counts differ by at most
// one and never decrease.
func SplitTrials(trials, parts int) ([]int, error) {
	if trials < 0 {
		return nil, fmt.Errorf("SplitTrials(%d): %w", trials, ErrInvalidTrials)
	}
	if parts < 1 {
		return nil, fmt.Errorf("SplitTrials(parts=%d): %w", parts, ErrInvalidPartition)
	}
	base, rem := trials/parts, trials%parts
	out := make([]int, parts)
	for i := range out {
		out[i] = base
		if i >= parts-rem {
			out[i]++
		}
	}
	return out, nil
}

// ResultLabel returns "results_" followed by i+1 zero-padded to the width
// of nTasks.
func ResultLabel(i, nTasks int) string {
	width := len(strconv.Itoa(nTasks))
	return fmt.Sprintf("results_%0*d", width, i+1)
}

// Partition assigns nodes·cores tasks to inputs and splits trials within
// each input. Every input receives nTasks/inputs consecutive tasks; the
// last input also takes the nTasks%inputs leftover tasks. Each input's
// tasks together run exactly trials trials.
//
// Complexity: O(nodes·cores).
func Partition(trials, nodes, cores, inputs int) ([]Task, error) {
	// Stage 1 (Validate)
	if trials < 0 {
		return nil, fmt.Errorf("Partition: trials=%d: %w", trials, ErrInvalidTrials)
	}
	if nodes < 1 || cores < 1 || inputs < 1 {
		return nil, fmt.Errorf("Partition: nodes=%d cores=%d inputs=%d: %w", nodes, cores, inputs, ErrInvalidPartition)
	}
	nTasks := nodes * cores
	if nTasks < inputs {
		return nil, fmt.Errorf("Partition: %d tasks for %d inputs: %w", nTasks, inputs, ErrTooFewTasks)
	}

	// Stage 2: tasks per input, then trials per task.
	perInput := nTasks / inputs
	tasks := make([]Task, 0, nTasks)
	for in := 0; in < inputs; in++ {
		count := perInput
		if in == inputs-1 {
			count += nTasks % inputs
		}
		split, err := SplitTrials(trials, count)
		if err != nil {
			return nil, fmt.Errorf("Partition: input %d: %w", in, err)
		}
		for slot, n := range split {
			i := len(tasks)
			tasks = append(tasks, Task{
				Index:  i,
				Input:  in,
				Slot:   slot,
				Trials: n,
				Label:  ResultLabel(i, nTasks),
			})
		}
	}
	return tasks, nil
}
