package trace

import (
	"fmt"
	"strings"
)

// Kind identifies the type of a progress event.
type Kind int

const (
	KindCheckSafetyStart Kind = iota
	KindMoveWorkVec
	KindProcessFinish
	KindSeqFound
	KindSeqNotFound
	KindCheckSafetyEnd
	KindAssignResourcesStart
	KindNeedCheck
	KindAvailableCheck
	KindPreAssignResources
	KindRollbackResources
	KindAssignResourcesEnd
)

var kindNames = map[Kind]string{
	KindCheckSafetyStart:     "CHECK_SAFETY_START",
	KindMoveWorkVec:          "MOVE_WORKVEC",
	KindProcessFinish:        "PROCESS_FINISH",
	KindSeqFound:             "SEQ_FOUND",
	KindSeqNotFound:          "SEQ_NOT_FOUND",
	KindCheckSafetyEnd:       "CHECK_SAFETY_END",
	KindAssignResourcesStart: "ASSIGN_RESOURCES_START",
	KindNeedCheck:            "NEED_CHECK",
	KindAvailableCheck:       "AVAILABLE_CHECK",
	KindPreAssignResources:   "PRE_ASSIGN_RESOURCES",
	KindRollbackResources:    "ROLLBACK_RESOURCES",
	KindAssignResourcesEnd:   "ASSIGN_RESOURCES_END",
}

// String returns the upper-case wire name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MoveWorkVec records one probe of a process against the work vector.
// Work is the work vector as it stood before the probe reclaimed anything.
type MoveWorkVec struct {
	ID         int
	Work       []int
	Executable bool
}

// ProcessFinish records a process marked finished by the safety check.
type ProcessFinish struct {
	ID int
}

// SeqFound carries the formatted safe sequence, e.g. "<1,3,4,0,2>".
type SeqFound struct {
	Sequence string
}

// AssignStart opens a resource request. Ref is the caller's reference as given.
type AssignStart struct {
	Ref string
}

// Check reports one validation step of a request.
// Limit is the process need for NEED_CHECK and the system availability for AVAILABLE_CHECK.
type Check struct {
	ID        int
	Requested []int
	Limit     []int
	Satisfied bool
}

// Assignment carries the resources tentatively granted to (or taken back from) a process.
type Assignment struct {
	ID        int
	Requested []int
}

// AssignEnd closes a resource request.
type AssignEnd struct {
	ID      int
	Granted bool
}

// Event is a single entry of the progress log.
// Payload is nil for kinds without data, otherwise one of the payload structs above.
type Event struct {
	Seq     int
	Kind    Kind
	Payload any
}

// String renders the event as "KIND key=value ..." in a stable field order.
func (e Event) String() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	switch p := e.Payload.(type) {
	case MoveWorkVec:
		fmt.Fprintf(&b, " id=%d work=%v executable=%t", p.ID, p.Work, p.Executable)
	case ProcessFinish:
		fmt.Fprintf(&b, " id=%d", p.ID)
	case SeqFound:
		fmt.Fprintf(&b, " sequence=%s", p.Sequence)
	case AssignStart:
		fmt.Fprintf(&b, " ref=%s", p.Ref)
	case Check:
		fmt.Fprintf(&b, " id=%d requested=%v limit=%v satisfied=%t", p.ID, p.Requested, p.Limit, p.Satisfied)
	case Assignment:
		fmt.Fprintf(&b, " id=%d requested=%v", p.ID, p.Requested)
	case AssignEnd:
		fmt.Fprintf(&b, " id=%d granted=%t", p.ID, p.Granted)
	}
	return b.String()
}
