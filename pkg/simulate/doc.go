// Package simulate replays cache workloads against the eviction policies in
// package cache and reports hit statistics per policy.
//
// A Trace is a named list of operations with a capacity. Traces can be read
// from YAML with LoadTrace or synthesised with Generate, which draws keys from
// a Zipf distribution so that a few keys are hot and most are cold.
//
//	name: warmup
//	capacity: 2
//	read_through: true
//	ops:
//	  - {op: get, key: a}
//	  - {op: set, key: b, value: "2"}
//	  - {op: delete, key: a}
//
// With read_through set, a get that misses is followed by a set of the same
// key, the way a cache in front of a slower store is normally used.
//
// Compare runs one trace against several policies and logs a summary line for
// each through the supplied *slog.Logger.
package simulate
