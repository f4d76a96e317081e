package trace

import "testing"

func TestSummarize_EmptyTrace_ZeroValues(t *testing.T) {
	// GIVEN no events
	// WHEN summarized
	summary := Summarize(nil)

	// THEN all counts are zero
	if summary.TotalEvents != 0 {
		t.Errorf("expected 0 total events, got %d", summary.TotalEvents)
	}
	if summary.SafetyChecks != 0 || summary.Requests != 0 {
		t.Error("expected 0 checks and requests")
	}
	if len(summary.KindDistribution) != 0 {
		t.Error("expected empty kind distribution")
	}
}

func TestSummarize_PopulatedTrace_CorrectCounts(t *testing.T) {
	// GIVEN a recorded request that was rolled back after an unsafe check
	l := NewLog()
	rec := &Recorder{}
	l.Subscribe(rec.Observe)
	l.Append(KindAssignResourcesStart, AssignStart{Ref: "1"})
	l.Append(KindNeedCheck, Check{ID: 1, Satisfied: true})
	l.Append(KindAvailableCheck, Check{ID: 1, Satisfied: true})
	l.Append(KindPreAssignResources, Assignment{ID: 1})
	l.Append(KindCheckSafetyStart, nil)
	l.Append(KindMoveWorkVec, MoveWorkVec{ID: 0, Executable: true})
	l.Append(KindProcessFinish, ProcessFinish{ID: 0})
	l.Append(KindMoveWorkVec, MoveWorkVec{ID: 1, Executable: false})
	l.Append(KindSeqNotFound, nil)
	l.Append(KindCheckSafetyEnd, nil)
	l.Append(KindRollbackResources, Assignment{ID: 1})
	l.Append(KindAssignResourcesEnd, AssignEnd{ID: 1, Granted: false})

	// WHEN summarized
	summary := Summarize(rec.Events)

	// THEN counts match
	if summary.TotalEvents != 12 {
		t.Errorf("expected 12 events, got %d", summary.TotalEvents)
	}
	if summary.SafetyChecks != 1 || summary.UnsafeVerdicts != 1 || summary.SafeVerdicts != 0 {
		t.Errorf("unexpected verdict counts: %+v", summary)
	}
	if summary.ExecutableProbes != 1 || summary.BlockedProbes != 1 {
		t.Errorf("expected 1 executable and 1 blocked probe, got %d and %d",
			summary.ExecutableProbes, summary.BlockedProbes)
	}
	if summary.Requests != 1 || summary.Rejected != 1 || summary.Granted != 0 || summary.Rollbacks != 1 {
		t.Errorf("unexpected request counts: %+v", summary)
	}
	if summary.KindDistribution[KindMoveWorkVec] != 2 {
		t.Errorf("expected 2 MOVE_WORKVEC, got %d", summary.KindDistribution[KindMoveWorkVec])
	}
}
