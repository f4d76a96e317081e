package sim

import (
	"github.com/sirupsen/logrus"

	"github.com/inference-sim/bankers-sim/sim/trace"
)

// Engine binds one State to one event Log and remembers the last safety verdict.
// Construct one per system with NewEngine; an Engine must be driven by a single
// caller, one operation at a time.
type Engine struct {
	state *State
	log   *trace.Log
	last  SafetyResult
}

// NewEngine creates an unconfigured engine appending to log.
// A nil log gets a fresh one.
func NewEngine(log *trace.Log) *Engine {
	if log == nil {
		log = trace.NewLog()
	}
	return &Engine{state: NewState(), log: log}
}

// SetProcesses replaces the process table with a deep copy of processes.
func (e *Engine) SetProcesses(processes []Process) (*Engine, error) {
	if _, err := e.state.SetProcesses(processes); err != nil {
		return e, err
	}
	e.last = SafetyResult{}
	return e, nil
}

// SetAvailable replaces the available vector with a copy of available.
func (e *Engine) SetAvailable(available ResourceVector) (*Engine, error) {
	if _, err := e.state.SetAvailable(available); err != nil {
		return e, err
	}
	e.last = SafetyResult{}
	return e, nil
}

// Configure replaces the whole state at once.
func (e *Engine) Configure(processes []Process, available ResourceVector) (*Engine, error) {
	if _, err := e.state.Configure(processes, available); err != nil {
		return e, err
	}
	e.last = SafetyResult{}
	return e, nil
}

// IsSafe runs the safety algorithm on the current state.
func (e *Engine) IsSafe() bool {
	logrus.WithField("trace", e.log.ID()).Debugf("checking safety of %d processes over %d resources",
		e.state.Len(), e.state.Resources())
	e.last = CheckSafety(e.state, e.log)
	return e.last.Safe
}

// Request asks for requested resources on behalf of the referenced process and
// reports whether they were granted. Errors mean the request was malformed.
func (e *Engine) Request(ref ProcessRef, requested ResourceVector) (bool, error) {
	res, err := e.RequestDetailed(ref, requested)
	return res.Granted, err
}

// RequestDetailed is Request with the full outcome.
func (e *Engine) RequestDetailed(ref ProcessRef, requested ResourceVector) (RequestResult, error) {
	logrus.WithField("trace", e.log.ID()).Debugf("request %v for process %s", requested, ref)
	res, err := Request(e.state, e.log, ref, requested)
	if err != nil {
		logrus.WithField("process", ref.String()).Warnf("request rejected: %v", err)
		return res, err
	}
	if res.Check != nil {
		e.last = *res.Check
	}
	return res, nil
}

// SafeSequence returns the sequence found by the last safety check, or nil.
func (e *Engine) SafeSequence() SafeSequence {
	if e.last.Sequence == nil {
		return nil
	}
	return append(SafeSequence{}, e.last.Sequence...)
}

// LastCheck returns the outcome of the last safety check.
func (e *Engine) LastCheck() SafetyResult {
	return e.last
}

// State returns a deep copy of the current state.
func (e *Engine) State() *State {
	return e.state.Clone()
}

// Log returns the event log the engine appends to.
func (e *Engine) Log() *trace.Log {
	return e.log
}

// Events returns the retained events.
func (e *Engine) Events() []trace.Event {
	return e.log.Events()
}

// ClearEvents discards the retained events.
func (e *Engine) ClearEvents() {
	e.log.Clear()
}
