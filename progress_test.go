package capclust

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingSink struct {
	levelStarts int
	iterations  []IterationInfo
	levelEnds   int
}

func (r *recordingSink) OnLevelStart(int, float64)      { r.levelStarts++ }
func (r *recordingSink) OnIteration(info IterationInfo) { r.iterations = append(r.iterations, info) }
func (r *recordingSink) OnLevelEnd(int, int)            { r.levelEnds++ }

func TestThrottledProgress(t *testing.T) {
	t.Run("caps iteration events", func(t *testing.T) {
		rec := &recordingSink{}
		throttled := NewThrottledProgress(rec, 1)

		throttled.OnLevelStart(0, 1000)
		for i := 0; i < 10000; i++ {
			throttled.OnIteration(IterationInfo{Level: 0, Iteration: i})
		}
		throttled.OnLevelEnd(0, 10000)

		// Burst size 1 at 1 event/s: only the first event passes in a tight loop.
		assert.Len(t, rec.iterations, 1)
		assert.Equal(t, 0, rec.iterations[0].Iteration)
	})

	t.Run("level events always pass", func(t *testing.T) {
		rec := &recordingSink{}
		throttled := NewThrottledProgress(rec, 1)

		for i := 0; i < 5; i++ {
			throttled.OnLevelStart(i, 100)
			throttled.OnLevelEnd(i, 1)
		}
		assert.Equal(t, 5, rec.levelStarts)
		assert.Equal(t, 5, rec.levelEnds)
	})
}

func TestNoopProgress(t *testing.T) {
	// Must not panic; it is the zero-config default.
	var sink ProgressSink = NoopProgress{}
	sink.OnLevelStart(0, 10)
	sink.OnIteration(IterationInfo{})
	sink.OnLevelEnd(0, 1)
}
