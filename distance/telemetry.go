package distance

import "github.com/fulmenhq/seqdist/telemetry"

// telemetrySystem holds the optional telemetry system for distance
// operations. nil if telemetry is disabled (default).
var telemetrySystem *telemetry.System

// EnableTelemetry enables counter-only telemetry for kernel calls made
// through Apply.
//
// Counter-only, no histograms: per-pair kernel calls run in the innermost
// loop of a batch job, and timing every call would dominate the cost it is
// meant to measure. Apply counts each pair by kernel name and input-length
// bucket, and each failure by kernel name and error code; direct ApplyPair
// calls and pairwise.Run emit nothing through this switch.
func EnableTelemetry(sys *telemetry.System) {
	telemetrySystem = sys
}

// DisableTelemetry disables telemetry for distance operations.
func DisableTelemetry() {
	telemetrySystem = nil
}

func isTelemetryEnabled() bool {
	return telemetrySystem != nil
}

// emitCounter is a no-op when telemetry is disabled; emission is
// best-effort and never propagates an error back into a kernel call.
func emitCounter(name string, value float64, tags map[string]string) {
	if !isTelemetryEnabled() {
		return
	}
	_ = telemetrySystem.Counter(name, value, tags)
}

// lengthBucket categorizes sequence length for usage analysis.
func lengthBucket(s string) string {
	n := len([]rune(s))
	switch {
	case n == 0:
		return "empty"
	case n <= 10:
		return "tiny"
	case n <= 50:
		return "short"
	case n <= 200:
		return "medium"
	case n <= 1000:
		return "long"
	default:
		return "very_long"
	}
}

// emitKernelCounter records a kernel invocation, tagged by kernel name and
// the longer sequence's length bucket.
func emitKernelCounter(kernelName, a, b string) {
	bucket := lengthBucket(a)
	if len([]rune(b)) > len([]rune(a)) {
		bucket = lengthBucket(b)
	}
	emitCounter("distance.kernel.calls", 1, map[string]string{
		"kernel": kernelName,
		"bucket": bucket,
	})
}

// emitErrorCounter records a kernel failure, tagged by kernel name and
// error code.
func emitErrorCounter(kernelName, code string) {
	emitCounter("distance.kernel.errors", 1, map[string]string{
		"kernel": kernelName,
		"code":   code,
	})
}
