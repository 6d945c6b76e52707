package rcsync

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var backends = []struct {
	name string
	new  func() mutex
}{
	{backendUnfair, func() mutex { return new(unfairMutex) }},
	{backendErrorCheck, func() mutex { return new(checkedMutex) }},
	{backendRecursive, func() mutex { return new(recursiveMutex) }},
}

// inGoroutine runs f on a fresh goroutine and waits for it.
func inGoroutine(f func()) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		f()
	}()
	<-done
}

func TestMutexExclusion(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			m := b.new()
			const (
				goroutines = 8
				iterations = 2000
			)
			var inside atomic.Int32
			counter := 0
			var wg sync.WaitGroup
			wg.Add(goroutines)
			for range goroutines {
				go func() {
					defer wg.Done()
					for range iterations {
						if err := m.lock(); err != nil {
							t.Errorf("lock: %v", err)
							return
						}
						if n := inside.Add(1); n != 1 {
							t.Errorf("%d goroutines in critical section", n)
						}
						counter++
						inside.Add(-1)
						if err := m.unlock(); err != nil {
							t.Errorf("unlock: %v", err)
							return
						}
					}
				}()
			}
			wg.Wait()
			if counter != goroutines*iterations {
				t.Fatalf("counter = %d, want %d", counter, goroutines*iterations)
			}
			require.NoError(t, m.destroy())
		})
	}
}

func TestMutexUnlockByNonOwner(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			m := b.new()
			require.ErrorIs(t, m.unlock(), errNotOwner, "unlock of a free lock")

			require.NoError(t, m.lock())
			var err error
			inGoroutine(func() { err = m.unlock() })
			require.ErrorIs(t, err, errNotOwner, "unlock from another goroutine")

			// The failed unlocks left the lock intact.
			require.NoError(t, m.unlock())
			require.NoError(t, m.destroy())
		})
	}
}

func TestMutexHandoff(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			m := b.new()
			require.NoError(t, m.lock())

			acquired := make(chan struct{})
			release := make(chan struct{})
			done := make(chan error, 1)
			go func() {
				if err := m.lock(); err != nil {
					done <- err
					return
				}
				close(acquired)
				<-release
				done <- m.unlock()
			}()

			select {
			case <-acquired:
				t.Fatal("second goroutine acquired a held lock")
			case <-time.After(50 * time.Millisecond):
			}
			require.NoError(t, m.unlock())
			select {
			case <-acquired:
			case <-time.After(5 * time.Second):
				t.Fatal("waiter was not woken by unlock")
			}
			close(release)
			require.NoError(t, <-done)
			require.NoError(t, m.destroy())
		})
	}
}

func TestPlainBackendsRejectRelock(t *testing.T) {
	for _, m := range []mutex{new(unfairMutex), new(checkedMutex)} {
		t.Run(m.name(), func(t *testing.T) {
			require.NoError(t, m.lock())
			require.ErrorIs(t, m.lock(), errDeadlock)
			require.NoError(t, m.unlock())
			require.ErrorIs(t, m.unlock(), errNotOwner, "the rejected relock must not need an unlock")
		})
	}
}

func TestUnfairMutexAssertOwner(t *testing.T) {
	m := new(unfairMutex)
	require.ErrorIs(t, m.assertOwner(), errNotOwned)
	require.NoError(t, m.lock())
	require.NoError(t, m.assertOwner())

	var err error
	inGoroutine(func() { err = m.assertOwner() })
	require.ErrorIs(t, err, errNotOwned)

	require.NoError(t, m.unlock())
	require.ErrorIs(t, m.assertOwner(), errNotOwned)
}

func TestPortableBackendsSkipAssertOwner(t *testing.T) {
	for _, m := range []mutex{new(checkedMutex), new(recursiveMutex)} {
		t.Run(m.name(), func(t *testing.T) {
			require.NoError(t, m.assertOwner(), "not held")
			require.NoError(t, m.lock())
			require.NoError(t, m.assertOwner(), "held")
			require.NoError(t, m.unlock())
		})
	}
}

func TestPortableBackendsDestroyWhileHeld(t *testing.T) {
	for _, m := range []mutex{new(checkedMutex), new(recursiveMutex)} {
		t.Run(m.name(), func(t *testing.T) {
			require.NoError(t, m.lock())
			require.ErrorIs(t, m.destroy(), errBusy)
			require.NoError(t, m.unlock())
			require.NoError(t, m.destroy())
		})
	}
}

func TestRecursiveMutexNesting(t *testing.T) {
	for _, depth := range []int{1, 2, 5} {
		m := new(recursiveMutex)
		for range depth {
			require.NoError(t, m.lock())
		}

		acquired := make(chan struct{})
		done := make(chan error, 1)
		go func() {
			if err := m.lock(); err != nil {
				done <- err
				return
			}
			close(acquired)
			done <- m.unlock()
		}()

		for i := range depth {
			select {
			case <-acquired:
				t.Fatalf("depth %d: acquired by another goroutine after %d unlocks", depth, i)
			case <-time.After(20 * time.Millisecond):
			}
			require.NoError(t, m.unlock())
		}
		select {
		case <-acquired:
		case <-time.After(5 * time.Second):
			t.Fatalf("depth %d: not acquired after %d unlocks", depth, depth)
		}
		require.NoError(t, <-done)
		require.ErrorIs(t, m.unlock(), errNotOwner, "depth %d: extra unlock", depth)
		require.NoError(t, m.destroy())
	}
}

func TestLockError(t *testing.T) {
	err := error(&lockError{Op: "unlock", Backend: backendUnfair, Err: errNotOwner})
	require.ErrorIs(t, err, errNotOwner)
	require.Equal(t, "unlock unfair: "+errNotOwner.Error(), err.Error())

	var le *lockError
	require.ErrorAs(t, err, &le)
	require.Equal(t, "unlock", le.Op)

	err = &lockError{Op: "dealloc", Err: errNotLive}
	require.Equal(t, "dealloc: "+errNotLive.Error(), err.Error())
}
