// Package profile starts optional runtime profiling with
// [github.com/pkg/profile].
//
// Profiling is compiled in only with the "pprof" build tag:
//
//	go build -tags pprof .
//
// Without the tag [Modes] is empty and [Start] always returns a [Profiler]
// whose Stop does nothing, so callers need no build constraints of their own.
//
// # Modes
//
//   - allocs:    memory allocations (all allocations)
//   - block:     blocking on synchronization primitives
//   - clock:     wall-clock time
//   - cpu:       CPU time
//   - goroutine: goroutine stacks
//   - heap:      memory allocations (live objects)
//   - mem:       memory allocations (sampled)
//   - mutex:     mutex contention
//   - thread:    thread creation
//   - trace:     execution trace
//
// Profiles are written to the directory given by [WithPath]:
//
//	p := profile.Start(profile.WithMode("cpu"), profile.WithPath(dir))
//	defer p.Stop()
//
// Inspect the result with the pprof tool:
//
//	go tool pprof -http=: scopetab cpu.pprof
package profile
