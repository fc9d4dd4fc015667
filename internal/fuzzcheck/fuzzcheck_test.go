package fuzzcheck

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCollectsNoFailuresWhenAllPass(t *testing.T) {
	c := NewChecker()
	c.Register(Task{
		Label:      "always-passes",
		Check:      func(seed uint64) error { return nil },
		Iterations: 20,
	})

	report := c.Run(SeedSequence(1))
	assert.Equal(t, 20, report.TotalIterations)
	assert.Empty(t, report.Failures)
}

func TestRunCollectsFailures(t *testing.T) {
	c := NewChecker()
	c.Register(Task{
		Label: "fails-on-even-seed",
		Check: func(seed uint64) error {
			if seed%2 == 0 {
				return errors.New("even seed")
			}
			return nil
		},
		Iterations: 50,
	})

	report := c.Run(SeedSequence(7))
	assert.Equal(t, 50, report.TotalIterations)
	assert.NotEmpty(t, report.Failures)
	for _, f := range report.Failures {
		assert.Equal(t, "fails-on-even-seed", f.Label)
	}
}

func TestRunRecoversFromPanic(t *testing.T) {
	c := NewChecker()
	c.Register(Task{
		Label: "panics",
		Check: func(seed uint64) error {
			panic("boom")
		},
		Iterations: 1,
	})

	report := c.Run(SeedSequence(0))
	assert.Len(t, report.Failures, 1)
}

func TestSeedSequenceIsDeterministicAndDisjoint(t *testing.T) {
	gen := SeedSequence(42)
	seen := make(map[uint64]bool)
	var first []uint64
	for i := 0; i < 100; i++ {
		s := gen()
		assert.False(t, seen[s], "seed sequence repeated a value")
		seen[s] = true
		first = append(first, s)
	}

	replay := SeedSequence(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first[i], replay())
	}
}

func TestRunTracksSeedCoverage(t *testing.T) {
	c := NewChecker()
	c.Register(Task{
		Label:      "always-passes",
		Check:      func(seed uint64) error { return nil },
		Iterations: 500,
	})

	report := c.Run(SeedSequence(5))
	require.NotNil(t, report.Coverage)
	assert.True(t, report.Coverage.Count() > 1, "expected more than one seed bucket to be hit across 500 iterations")
}

func TestMultipleTasksRunConcurrently(t *testing.T) {
	c := NewChecker()
	c.Register(Task{Label: "a", Check: func(uint64) error { return nil }, Iterations: 10})
	c.Register(Task{Label: "b", Check: func(uint64) error { return nil }, Iterations: 10})

	report := c.Run(SeedSequence(3))
	assert.Equal(t, 20, report.TotalIterations)
}
