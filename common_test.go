package smt

import (
	"testing"
)

func TestPartitionCoversAllIndices(t *testing.T) {
	jobs := partition(11, 3)

	if len(jobs) != 3 {
		t.Errorf("Expected 3 jobs, got %d", len(jobs))
	}

	if jobs[0].a != 0 {
		t.Errorf("First job should start at 0, starts at %d", jobs[0].a)
	}

	if jobs[len(jobs)-1].b != 11 {
		t.Errorf("Last job should end at 11, ends at %d", jobs[len(jobs)-1].b)
	}

	for i := 1; i < len(jobs); i++ {
		if jobs[i].a != jobs[i-1].b {
			t.Errorf("Jobs %d and %d are not contiguous: %v", i-1, i, jobs)
		}
	}
}

func TestPartitionSingleWorkerTakesEverything(t *testing.T) {
	jobs := partition(5, 1)

	if len(jobs) != 1 || jobs[0].a != 0 || jobs[0].b != 5 {
		t.Errorf("Single worker should scan the whole slice: %v", jobs)
	}
}
