// Package profile provides optional runtime profiling for the clip
// interpreter.
//
// Profiling integrates [github.com/pkg/profile] behind the "pprof" build
// tag. When built without the tag (the default), all operations are no-ops
// with zero runtime overhead.
//
// Build with profiling enabled:
//
//	go build -tags pprof .
//
// Then select a mode on the command line:
//
//	clip --pprof-mode cpu run script.clip
//	clip --pprof-mode heap --pprof-dir ./profiles run script.clip
//
// Profile files are written to the output directory with names matching the
// profiling mode (e.g., cpu.pprof, mem.pprof) and can be analyzed with
// go tool pprof. Use [Modes] to retrieve the list of supported modes
// programmatically.
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
