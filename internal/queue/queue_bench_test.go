package queue_test

import (
	"testing"

	"github.com/randomizedcoder/phiqueue/internal/queue"
)

// Sink variables to prevent compiler from eliminating benchmark loops
var sinkInt int
var sinkErr error

func mustNew(b *testing.B, opts ...queue.Option) *queue.Queue[int] {
	b.Helper()
	q, err := queue.New[int](opts...)
	if err != nil {
		b.Fatal(err)
	}
	return q
}

// Direct type benchmarks (true performance floor)

func BenchmarkQueue_Phi_PushPop_Direct(b *testing.B) {
	q := mustNew(b)
	b.ReportAllocs()
	b.ResetTimer()

	var val int
	var err error
	for i := 0; i < b.N; i++ {
		q.Push(i)
		val, err = q.Pop()
	}
	sinkInt = val
	sinkErr = err
}

func BenchmarkQueue_Ring_PushPop_Direct(b *testing.B) {
	q := queue.NewRing[int](16)
	b.ReportAllocs()
	b.ResetTimer()

	var val int
	var err error
	for i := 0; i < b.N; i++ {
		q.Push(i)
		val, err = q.Pop()
	}
	sinkInt = val
	sinkErr = err
}

func BenchmarkQueue_Channel_PushPop_Direct(b *testing.B) {
	q := queue.NewChannel[int](16)
	b.ReportAllocs()
	b.ResetTimer()

	var val int
	var err error
	for i := 0; i < b.N; i++ {
		q.Push(i)
		val, err = q.Pop()
	}
	sinkInt = val
	sinkErr = err
}

// Interface benchmarks (with dynamic dispatch overhead)

func BenchmarkQueue_Phi_PushPop_Interface(b *testing.B) {
	var q queue.FIFO[int] = mustNew(b)
	b.ReportAllocs()
	b.ResetTimer()

	var val int
	var err error
	for i := 0; i < b.N; i++ {
		q.Push(i)
		val, err = q.Pop()
	}
	sinkInt = val
	sinkErr = err
}

// Push-only benchmarks (growth dominated)

func BenchmarkQueue_Phi_Push(b *testing.B) {
	q := mustNew(b)
	b.ReportAllocs()
	b.ResetTimer()

	var err error
	for i := 0; i < b.N; i++ {
		err = q.Push(i)
	}
	sinkErr = err
}

func BenchmarkQueue_Ring_Push(b *testing.B) {
	q := queue.NewRing[int](16)
	b.ReportAllocs()
	b.ResetTimer()

	var err error
	for i := 0; i < b.N; i++ {
		err = q.Push(i)
	}
	sinkErr = err
}

// Sawtooth: fill to depth then drain, repeatedly (compaction dominated)

func benchSawtooth(b *testing.B, q queue.FIFO[int], depth int) {
	b.ReportAllocs()
	b.ResetTimer()

	var val int
	for i := 0; i < b.N; i++ {
		for j := 0; j < depth; j++ {
			q.Push(j)
		}
		for j := 0; j < depth; j++ {
			val, _ = q.Pop()
		}
	}
	sinkInt = val
}

func BenchmarkQueue_Phi_Sawtooth64(b *testing.B) {
	benchSawtooth(b, mustNew(b), 64)
}

func BenchmarkQueue_Ring_Sawtooth64(b *testing.B) {
	benchSawtooth(b, queue.NewRing[int](16), 64)
}
