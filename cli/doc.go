// Package cli contains the command line interface for ulc.
//
// # Usage
//
// The CLI provides logging and profiling configuration:
//
//	ulc --log-level=debug --pprof-mode=cpu
//
// # Commands
//
//   - eval: parse a source file and reduce each top-level term under one or
//     more reduction strategies (call-by-value, call-by-name, normal order)
//   - fmt: reprint a source file in native, JSON, YAML, or s-expression form
//   - repl: start an interactive session with completion and history
//   - init: write a configuration file populated with the current flag values
//
// # Configuration Loader
//
// The package includes a Kong configuration loader ([resolve]) that reads
// YAML config files and converts them to Kong flag values. A JSON config
// file with the same base name and a .json extension is also recognized.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time: Set timestamp format (RFC3339, RFC3339Nano, etc.)
//   - --log-caller: Include caller information in log output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//		go build -tags pprof -o ulc .
//
//	  - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//	    heap, mem, mutex, thread, trace)
//	  - --pprof-dir: Set profile output directory (default:
//
// ~/.cache/ulc/pprof)
//
// # Examples
//
//	# Debug logging with CPU profiling
//	ulc --log-level=debug --pprof-mode=cpu
//
//	# Text format with heap profiling
//	ulc --log-format=text --pprof-mode=heap
//
//	# Custom profile directory
//	ulc --pprof-mode=allocs --pprof-dir=/tmp/profiles
package cli
