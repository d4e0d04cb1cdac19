package executor

import (
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

// BenchmarkPool_Execute benchmarks job submission performance
func BenchmarkPool_Execute(b *testing.B) {
	pool := NewPool(4, quietLogger())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pool.Execute(func() {})
	}
	b.StopTimer()

	pool.Shutdown()
}

// BenchmarkPool_Drain benchmarks end-to-end throughput with different worker counts
func BenchmarkPool_Drain(b *testing.B) {
	workerCounts := []int{1, 2, 4, 8, 16}

	for _, workers := range workerCounts {
		b.Run(fmt.Sprintf("workers_%d", workers), func(b *testing.B) {
			logger := quietLogger()

			for i := 0; i < b.N; i++ {
				b.StopTimer()
				pool := NewPool(workers, logger)

				for j := 0; j < 100; j++ {
					pool.Execute(func() {
						// Simulate minimal work
						time.Sleep(100 * time.Microsecond)
					})
				}

				b.StartTimer()
				pool.Shutdown()
			}
		})
	}
}

// BenchmarkPool_Resize benchmarks grow and shrink cycles on an idle pool
func BenchmarkPool_Resize(b *testing.B) {
	pool := NewPool(2, quietLogger())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pool.Resize(8)
		pool.Resize(2)
	}
	b.StopTimer()

	pool.Shutdown()
}

// BenchmarkQueue benchmarks the underlying FIFO under a single producer
func BenchmarkQueue(b *testing.B) {
	b.Run("Push", func(b *testing.B) {
		q := newQueue()
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			q.push(message{})
		}
	})

	b.Run("PushPop", func(b *testing.B) {
		q := newQueue()
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			q.push(message{})
			q.pop()
		}
	})
}

// BenchmarkPool_Shutdown benchmarks drain latency with a queued backlog
func BenchmarkPool_Shutdown(b *testing.B) {
	logger := quietLogger()

	for i := 0; i < b.N; i++ {
		b.StopTimer()
		pool := NewPool(4, logger)

		for j := 0; j < 50; j++ {
			pool.Execute(func() {
				time.Sleep(time.Millisecond)
			})
		}

		b.StartTimer()
		pool.Shutdown()
	}
}
