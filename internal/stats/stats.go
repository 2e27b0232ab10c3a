// Package stats tracks run-level statistics for one mining invocation:
// wall-clock runtime, heap/alloc figures at completion, and counters for
// patterns found and FFI-list joins performed. It supplements the core
// engine (which tracks none of this on its own) the way the original
// miner's startTime/endTime/itemsCnt/joinsCnt bookkeeping did.
package stats

import (
	"runtime"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Run accumulates statistics across one Start/Stop window. The counters
// are safe for concurrent increment (the engine's parallel mining mode
// may call Join/Pattern from multiple goroutines).
type Run struct {
	startTime time.Time
	endTime   time.Time

	itemsCnt atomic.Int64
	joinsCnt atomic.Int64
}

// NewRun returns a Run with its start time recorded.
func NewRun() *Run {
	return &Run{startTime: time.Now()}
}

// Pattern records one emitted pattern.
func (r *Run) Pattern() { r.itemsCnt.Add(1) }

// Join records one FFI-list Construct call.
func (r *Run) Join() { r.joinsCnt.Add(1) }

// Stop records the end time. Call once, after mining completes.
func (r *Run) Stop() { r.endTime = time.Now() }

// Runtime returns the elapsed time between NewRun and Stop. Calling it
// before Stop returns the elapsed time so far.
func (r *Run) Runtime() time.Duration {
	end := r.endTime
	if end.IsZero() {
		end = time.Now()
	}
	return end.Sub(r.startTime)
}

// PatternCount returns the number of patterns emitted so far.
func (r *Run) PatternCount() int64 { return r.itemsCnt.Load() }

// JoinCount returns the number of FFI-list joins performed so far.
func (r *Run) JoinCount() int64 { return r.joinsCnt.Load() }

// MemoryStats is a snapshot of process heap/alloc figures. There is no
// portable USS/RSS reader in the standard library (that requires
// reading /proc or calling into a platform API neither the teacher
// repo nor the rest of the retrieved pack supplies), so this reports
// runtime.MemStats fields instead: HeapAlloc approximates USS (live
// heap bytes), Sys approximates RSS (total memory obtained from the
// OS).
type MemoryStats struct {
	HeapAllocBytes uint64
	SysBytes       uint64
}

// ReadMemory snapshots current process memory figures.
func ReadMemory() MemoryStats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemoryStats{HeapAllocBytes: m.HeapAlloc, SysBytes: m.Sys}
}

// LogSummary writes one structured log line summarizing the run.
func (r *Run) LogSummary(logger *zap.Logger) {
	mem := ReadMemory()
	logger.Info("mining run complete",
		zap.Duration("runtime", r.Runtime()),
		zap.Int64("patterns", r.PatternCount()),
		zap.Int64("joins", r.JoinCount()),
		zap.Uint64("heapAllocBytes", mem.HeapAllocBytes),
		zap.Uint64("sysBytes", mem.SysBytes),
	)
}
