// Package cli contains the command line interface for clip.
//
// # Usage
//
// The CLI provides two subcommands, with run as the default:
//
//	clip run script.clip
//	clip repl
//
// # Configuration
//
// Defaults for any flag may be set in the configuration file, which is
// itself written in the clip language as a sequence of assignments:
//
//	= log_level "debug"
//	= log_format "json"
//	= log_pretty true
//
// Flag names with hyphens (e.g., "log-level") use underscores in the config
// file (e.g., "log_level"). Command-line flags override config file values.
// A JSON configuration file is also recognized alongside the clip one.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (text, json)
//   - --log-time-layout: Set timestamp format (RFC3339, RFC3339Nano, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Enable colorized pretty printing
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory
package cli
