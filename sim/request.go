package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/bankers-sim/sim/trace"
)

// RequestResult describes what a resource request did to the state.
type RequestResult struct {
	Granted    bool
	ID         int           // Resolved process id; -1 when resolution failed
	Reason     string        // Why the request was refused; empty when granted
	Check      *SafetyResult // Safety verdict; nil when validation refused the request
	RolledBack bool
}

// Request asks for resources on behalf of the process ref resolves to.
//
// The request is refused without touching the state when it exceeds the
// process's outstanding need or the available resources. Otherwise it is
// granted tentatively (available -= req, allocations += req, needs -= req),
// the safety algorithm runs on the mutated state, and an unsafe verdict
// undoes the grant exactly.
//
// Unknown references and malformed vectors return an error; they are caller
// faults and produce no events. Refusals are not errors.
//
// After ASSIGN_RESOURCES_END is appended the log is cleared, so the trace of a
// request is only visible to log observers.
func Request(s *State, log *trace.Log, ref ProcessRef, requested ResourceVector) (RequestResult, error) {
	result := RequestResult{ID: -1}
	id, err := s.Resolve(ref)
	if err != nil {
		return result, err
	}
	if err := requested.Validate(s.Resources()); err != nil {
		return result, fmt.Errorf("request for process %s: %w", ref, err)
	}
	result.ID = id
	req := requested.Clone()
	proc := &s.processes[id]

	emit(log, trace.KindAssignResourcesStart, trace.AssignStart{Ref: ref.String()})
	defer func() {
		emit(log, trace.KindAssignResourcesEnd, trace.AssignEnd{ID: id, Granted: result.Granted})
		if log != nil {
			log.Clear()
		}
	}()

	withinNeed := req.LessOrEqual(proc.Needs)
	emit(log, trace.KindNeedCheck, trace.Check{
		ID: id, Requested: []int(req.Clone()), Limit: []int(proc.Needs.Clone()), Satisfied: withinNeed,
	})
	if !withinNeed {
		result.Reason = fmt.Sprintf("request %s exceeds need %s", req, proc.Needs)
		logrus.Debugf("request for process %d refused: %s", id, result.Reason)
		return result, nil
	}

	withinAvailable := req.LessOrEqual(s.available)
	emit(log, trace.KindAvailableCheck, trace.Check{
		ID: id, Requested: []int(req.Clone()), Limit: []int(s.available.Clone()), Satisfied: withinAvailable,
	})
	if !withinAvailable {
		result.Reason = fmt.Sprintf("request %s exceeds available %s", req, s.available)
		logrus.Debugf("request for process %d refused: %s", id, result.Reason)
		return result, nil
	}

	s.available.Sub(req)
	proc.Allocations.Add(req)
	proc.Needs.Sub(req)
	emit(log, trace.KindPreAssignResources, trace.Assignment{ID: id, Requested: []int(req.Clone())})

	check := CheckSafety(s, log)
	result.Check = &check
	if check.Safe {
		result.Granted = true
		logrus.Debugf("request %s for process %d granted", req, id)
		return result, nil
	}

	s.available.Add(req)
	proc.Allocations.Sub(req)
	proc.Needs.Add(req)
	result.RolledBack = true
	result.Reason = "granting the request leaves the system unsafe"
	emit(log, trace.KindRollbackResources, trace.Assignment{ID: id, Requested: []int(req.Clone())})
	logrus.Debugf("request %s for process %d rolled back: unsafe", req, id)
	return result, nil
}
