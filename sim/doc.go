// Package sim implements deadlock-avoidance resource accounting with the
// Banker's Algorithm.
//
// # Reading Guide
//
//   - vector.go, process.go: resource vectors, processes, safe sequences, references
//   - state.go: the state store (deep-copying setters, clone, resolver)
//   - safety.go: the safety algorithm
//   - request.go: resource requests with tentative grant and exact rollback
//   - engine.go: the Engine handle tying a State to an event log
//
// Progress events are appended to a trace.Log (sim/trace). A request clears
// the log when it ends; subscribe a trace.Recorder to keep the full trace.
//
// The engine is synchronous and single-caller. It has no locks.
package sim
