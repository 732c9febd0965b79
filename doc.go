// Package csvmap provides a high-throughput, low-allocation CSV reader
// that memory-maps its input and yields zero-copy Row/Field views, with
// a parallel chunk-partitioned dispatcher for fan-out processing.
package csvmap
