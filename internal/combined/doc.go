// Package combined provides interaction benchmarks that drive the queue
// implementations through realistic mixes of operations.
//
// These benchmarks are more representative of real-world performance than the
// isolated micro-benchmarks in package queue, as they capture the cumulative
// cost of growth, compaction and the surrounding loop.
package combined
