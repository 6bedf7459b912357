package queue_test

import (
	"sync"
	"testing"

	"github.com/randomizedcoder/phiqueue/internal/queue"
)

// TestQueue_ConcurrentPush_Panics verifies that the owner guard
// catches concurrent Push() calls.
//
// This test intentionally violates the single-owner contract to verify the guard works.
// Whether the calls overlap depends on scheduling; TestQueue_GuardRejectsOverlappingCalls
// covers the guard deterministically.
func TestQueue_ConcurrentPush_Panics(t *testing.T) {
	q := newQueue[int](t)

	// We need to catch the panic
	panicked := make(chan bool, 1)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					select {
					case panicked <- true:
					default:
					}
				}
			}()
			for j := 0; j < 1000; j++ {
				q.Push(n*1000 + j)
			}
		}(i)
	}

	wg.Wait()

	select {
	case <-panicked:
		t.Log("owner guard correctly detected concurrent Push()")
	default:
		// The goroutines may not have overlapped this time.
		t.Log("No panic detected (goroutines may not have overlapped)")
	}
}

// TestQueue_SingleOwner_Handoff tests the valid pattern: one goroutine at a
// time, with ownership handed over through a channel.
func TestQueue_SingleOwner_Handoff(t *testing.T) {
	q := newQueue[int](t)
	count := 10000
	handoff := make(chan *queue.Queue[int])
	done := make(chan struct{})

	go func() {
		defer close(done)
		owned := <-handoff
		for i := 0; i < count; i++ {
			if err := owned.Push(i); err != nil {
				t.Errorf("Push(%d) error: %v", i, err)
				return
			}
		}
		handoff <- owned
	}()

	handoff <- q
	q = <-handoff
	<-done

	for expected := 0; expected < count; expected++ {
		val, err := q.Pop()
		if err != nil {
			t.Fatalf("Pop() error at %d: %v", expected, err)
		}
		if val != expected {
			t.Errorf("FIFO violation: expected %d, got %d", expected, val)
		}
	}
}

func TestQueue_UseAfterDestroy(t *testing.T) {
	q := newQueue[int](t)
	q.Push(1)

	if err := q.Destroy(); err != nil {
		t.Fatalf("expected Destroy() = nil, got %v", err)
	}

	if err := q.Destroy(); err != queue.ErrDestroyed {
		t.Errorf("expected second Destroy() = ErrDestroyed, got %v", err)
	}
	if err := q.Push(2); err != queue.ErrDestroyed {
		t.Errorf("expected Push() = ErrDestroyed, got %v", err)
	}
	if _, err := q.Pop(); err != queue.ErrDestroyed {
		t.Errorf("expected Pop() = ErrDestroyed, got %v", err)
	}

	for name, fn := range map[string]func(){
		"Len": func() { q.Len() },
		"Cap": func() { q.Cap() },
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("expected %s() to panic on destroyed Queue", name)
				}
			}()
			fn()
		})
	}
}
