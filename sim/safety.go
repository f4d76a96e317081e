package sim

import (
	"github.com/sirupsen/logrus"

	"github.com/inference-sim/bankers-sim/sim/trace"
)

// SafetyResult is the outcome of one run of the safety algorithm.
type SafetyResult struct {
	Safe      bool
	Sequence  SafeSequence   // Completion order; nil when unsafe
	Work      ResourceVector // Work vector after the last pass
	Processes []Process      // Scratch copy of the table, Finished flags as the check left them
	Passes    int            // Number of full passes over the table
}

// CheckSafety runs the Banker's safety algorithm against s and reports the verdict.
//
// The check works on a scratch copy of the process table: s, including the
// Finished flags of its processes, is never modified. Each pass probes every
// unfinished process in ascending id order; a process whose needs fit in the
// work vector finishes and returns its allocations to the work vector. Passes
// repeat until one finishes nobody. When log is non-nil the decisions are
// appended to it.
func CheckSafety(s *State, log *trace.Log) SafetyResult {
	processes := resetScratch(s.processes)
	work := s.available.Clone()
	if work == nil {
		work = make(ResourceVector, s.Resources())
	}
	var sequence SafeSequence
	emit(log, trace.KindCheckSafetyStart, nil)

	passes := 0
	for {
		passes++
		progressed := false
		for id := range processes {
			proc := &processes[id]
			if proc.Finished {
				continue
			}
			snapshot := []int(work.Clone())
			if proc.Needs.LessOrEqual(work) {
				proc.Finished = true
				work.Add(proc.Allocations)
				sequence = append(sequence, id)
				progressed = true
				emit(log, trace.KindMoveWorkVec, trace.MoveWorkVec{ID: id, Work: snapshot, Executable: true})
				emit(log, trace.KindProcessFinish, trace.ProcessFinish{ID: id})
			} else {
				emit(log, trace.KindMoveWorkVec, trace.MoveWorkVec{ID: id, Work: snapshot, Executable: false})
			}
		}
		if !progressed {
			break
		}
	}

	safe := true
	for _, p := range processes {
		if !p.Finished {
			safe = false
			break
		}
	}

	result := SafetyResult{Safe: safe, Work: work, Processes: processes, Passes: passes}
	if safe {
		if sequence == nil {
			sequence = SafeSequence{}
		}
		result.Sequence = sequence
		emit(log, trace.KindSeqFound, trace.SeqFound{Sequence: sequence.Format(processes)})
		logrus.Debugf("safety check: safe, sequence %s after %d passes", sequence.Format(processes), passes)
	} else {
		emit(log, trace.KindSeqNotFound, nil)
		logrus.Debugf("safety check: unsafe after %d passes, %d of %d processes finished",
			passes, len(sequence), len(processes))
	}
	emit(log, trace.KindCheckSafetyEnd, nil)
	return result
}

func emit(log *trace.Log, kind trace.Kind, payload any) {
	if log != nil {
		log.Append(kind, payload)
	}
}
