package ranks

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duelcore/rankhound/internal/models"
)

func TestAdmissionQueueBuffersBeforeReady(t *testing.T) {
	q := newAdmissionQueue()

	assert.True(t, q.Admit(&models.PendingUpdate{ID: "a"}))
	assert.True(t, q.Admit(&models.PendingUpdate{ID: "b"}))
	assert.Equal(t, 2, q.Depth())
}

func TestAdmissionQueueDrainsInArrivalOrder(t *testing.T) {
	q := newAdmissionQueue()
	q.Admit(&models.PendingUpdate{ID: "a"})
	q.Admit(&models.PendingUpdate{ID: "b"})
	q.Admit(&models.PendingUpdate{ID: "c"})

	drained := q.MarkReady()

	require.Len(t, drained, 3)
	assert.Equal(t, "a", drained[0].ID)
	assert.Equal(t, "b", drained[1].ID)
	assert.Equal(t, "c", drained[2].ID)
}

func TestAdmissionQueueRejectsAfterReady(t *testing.T) {
	q := newAdmissionQueue()
	q.MarkReady()

	assert.False(t, q.Admit(&models.PendingUpdate{ID: "late"}))
	assert.Equal(t, 0, q.Depth())
	assert.Empty(t, q.MarkReady())
}

func TestAdmissionQueueNeverDropsConcurrentAdmits(t *testing.T) {
	q := newAdmissionQueue()

	const writers = 16
	var wg sync.WaitGroup
	immediate := make([]int, writers)

	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			if !q.Admit(&models.PendingUpdate{ID: fmt.Sprintf("update-%d", n)}) {
				immediate[n] = 1
			}
		}(i)
	}

	drained := q.MarkReady()
	wg.Wait()

	// Every update is either in the drained batch or was told to process
	// immediately. None vanish in the handoff.
	immediateCount := 0
	for _, v := range immediate {
		immediateCount += v
	}
	assert.Equal(t, writers, len(drained)+immediateCount)
}
