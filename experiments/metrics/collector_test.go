package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	clock := quartz.NewMock(t)
	c := NewCollector(clock)

	c.Start("minimax", 2)
	c.SetCandidates(4)
	for i := 0; i < 3; i++ {
		c.AddNode()
	}
	c.AddLeaf()
	clock.Advance(250 * time.Millisecond).MustWait(context.Background())

	m := c.Complete(17)

	require.Equal(t, SearchMetric{
		Mode:       "minimax",
		Depth:      2,
		Duration:   250 * time.Millisecond,
		Candidates: 4,
		Nodes:      3,
		Leaves:     1,
		Value:      17,
	}, m)

	t.Run("start resets the counters", func(t *testing.T) {
		c.Start("greedy", 0)
		m := c.Complete(0)
		require.Equal(t, "greedy", m.Mode)
		require.Zero(t, m.Nodes)
		require.Zero(t, m.Leaves)
		require.Zero(t, m.Duration)
	})
}

func TestDummyCollector(t *testing.T) {
	c := NewDummyCollector()
	c.Start("random", 0)
	c.AddNode()
	require.Equal(t, SearchMetric{}, c.Complete(5))
}
