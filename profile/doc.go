// Package profile wires optional runtime profiling into ulc through
// [github.com/pkg/profile].
//
// Profiling is enabled at build time with the "pprof" build tag. In the
// default build every operation in this package is a no-op with zero
// runtime cost, and [Modes] returns nil.
//
// # Modes
//
// With the pprof tag, the following modes are available:
//
//   - allocs:    memory allocations (all)
//   - block:     blocking on synchronization primitives
//   - clock:     wall-clock
//   - cpu:       CPU
//   - goroutine: goroutine snapshots
//   - heap:      live heap allocations
//   - mem:       general memory
//   - mutex:     mutex contention
//   - thread:    OS thread creation
//   - trace:     execution trace
//
// # Usage
//
// A profiler is described by a [Config] and launched with
// [Config.Start]:
//
//	var cfg profile.Config = func() (string, string, bool) {
//		return "", "", false
//	}
//	cfg = profile.WithMode("cpu")(cfg)
//	cfg = profile.WithPath("/tmp/profiles")(cfg)
//	defer cfg.Start().Stop()
//
// The ulc command exposes this through its pprof flag group:
//
//	ulc --pprof-mode cpu --pprof-dir ./profiles eval input.ulc
//
// Profiles land in the output directory named after the mode
// (cpu.pprof, heap.pprof, ...) and are analyzed with the usual
// tooling:
//
//	go tool pprof ./ulc ./profiles/cpu.pprof
//	go tool pprof -http=: ./profiles/cpu.pprof
//
// The pprof build also imports [net/http/pprof], so an application that
// serves HTTP gets the /debug/pprof/ endpoints for free.
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
