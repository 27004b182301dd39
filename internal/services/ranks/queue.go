package ranks

import (
	"sync"

	"github.com/duelcore/rankhound/internal/models"
)

// admissionQueue gates externally triggered updates on engine readiness.
// The ready flag and the buffer share one mutex so an update can never
// slip into the buffer after readiness flips and be lost.
type admissionQueue struct {
	mu    sync.Mutex
	ready bool
	items []*models.PendingUpdate
}

func newAdmissionQueue() *admissionQueue {
	return &admissionQueue{}
}

// Admit buffers the update and reports true if the engine is not yet
// ready. Once ready it always reports false and buffers nothing.
func (q *admissionQueue) Admit(update *models.PendingUpdate) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.ready {
		return false
	}
	q.items = append(q.items, update)
	return true
}

// MarkReady flips the queue to ready and returns the buffered updates in
// arrival order. Subsequent calls return nil.
func (q *admissionQueue) MarkReady() []*models.PendingUpdate {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.ready = true
	items := q.items
	q.items = nil
	return items
}

// Depth returns the number of buffered updates
func (q *admissionQueue) Depth() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
