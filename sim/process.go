package sim

import (
	"strconv"
	"strings"
)

// Process is one entry of the process table. Its index in the table is its stable id.
type Process struct {
	Name        string         `yaml:"name,omitempty"` // Optional display name, unique when set
	Needs       ResourceVector `yaml:"needs"`          // Outstanding demand
	Allocations ResourceVector `yaml:"allocations"`    // Currently held resources
	Finished    bool           `yaml:"-"`              // Scratch flag, only meaningful inside a safety check
}

// Clone returns a deep copy of the process.
func (p Process) Clone() Process {
	return Process{
		Name:        p.Name,
		Needs:       p.Needs.Clone(),
		Allocations: p.Allocations.Clone(),
		Finished:    p.Finished,
	}
}

// Label returns the display name, or the id when the process is unnamed.
func (p Process) Label(id int) string {
	if p.Name != "" {
		return p.Name
	}
	return strconv.Itoa(id)
}

func cloneProcesses(processes []Process) []Process {
	out := make([]Process, len(processes))
	for i, p := range processes {
		out[i] = p.Clone()
	}
	return out
}

// SafeSequence is a completion order of process ids proven feasible by a safety check.
type SafeSequence []int

// Format renders the sequence as "<a,b,c>" using each process's label.
func (s SafeSequence) Format(processes []Process) string {
	labels := make([]string, len(s))
	for i, id := range s {
		if id >= 0 && id < len(processes) {
			labels[i] = processes[id].Label(id)
		} else {
			labels[i] = strconv.Itoa(id)
		}
	}
	return "<" + strings.Join(labels, ",") + ">"
}

// ProcessRef identifies a process either by stable id or by display name.
type ProcessRef struct {
	id     int
	name   string
	byName bool
}

// ByID references the process at index id.
func ByID(id int) ProcessRef {
	return ProcessRef{id: id}
}

// ByName references the process with the given display name.
func ByName(name string) ProcessRef {
	return ProcessRef{name: name, byName: true}
}

// ParseRef treats s as an id when it parses as an integer and as a name otherwise.
func ParseRef(s string) ProcessRef {
	if id, err := strconv.Atoi(s); err == nil {
		return ByID(id)
	}
	return ByName(s)
}

// String returns the reference as the caller wrote it.
func (r ProcessRef) String() string {
	if r.byName {
		return r.name
	}
	return strconv.Itoa(r.id)
}
