package trace

// TraceSummary aggregates statistics from a sequence of events.
type TraceSummary struct {
	TotalEvents      int
	SafetyChecks     int
	SafeVerdicts     int
	UnsafeVerdicts   int
	ExecutableProbes int
	BlockedProbes    int
	Requests         int
	Granted          int
	Rejected         int
	Rollbacks        int
	KindDistribution map[Kind]int // kind → count of events
}

// Summarize computes aggregate statistics from events.
// Safe for nil or empty input (returns zero-value fields).
func Summarize(events []Event) *TraceSummary {
	summary := &TraceSummary{
		KindDistribution: make(map[Kind]int),
	}
	summary.TotalEvents = len(events)

	for _, ev := range events {
		summary.KindDistribution[ev.Kind]++
		switch ev.Kind {
		case KindCheckSafetyStart:
			summary.SafetyChecks++
		case KindSeqFound:
			summary.SafeVerdicts++
		case KindSeqNotFound:
			summary.UnsafeVerdicts++
		case KindMoveWorkVec:
			if p, ok := ev.Payload.(MoveWorkVec); ok && p.Executable {
				summary.ExecutableProbes++
			} else {
				summary.BlockedProbes++
			}
		case KindAssignResourcesStart:
			summary.Requests++
		case KindRollbackResources:
			summary.Rollbacks++
		case KindAssignResourcesEnd:
			if p, ok := ev.Payload.(AssignEnd); ok && p.Granted {
				summary.Granted++
			} else {
				summary.Rejected++
			}
		}
	}

	return summary
}
