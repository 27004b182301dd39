package lock

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithLockSerializesSameKey(t *testing.T) {
	l := NewKeyedLock()

	const workers = 16
	counter := 0

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			err := l.WithLock("channel-a", func() error {
				counter++
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	require.Equal(t, workers, counter)
}

func TestDifferentKeysAreIndependent(t *testing.T) {
	l := NewKeyedLock()

	l.Lock("channel-a")
	defer l.Unlock("channel-a")

	done := make(chan struct{})
	go func() {
		l.Lock("channel-b")
		l.Unlock("channel-b")
		close(done)
	}()

	// Must not deadlock while channel-a is held.
	<-done
}
