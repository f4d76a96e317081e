package sim

import (
	"fmt"

	"golang.org/x/text/unicode/norm"
)

// State is the system state shared by the safety checker and the request handler:
// the process table and the vector of unallocated resources.
// Every setter deep-copies its input and every accessor returns a deep copy,
// so callers can never alias the vectors held here.
type State struct {
	processes    []Process
	available    ResourceVector
	hasAvailable bool
}

// NewState returns an empty, unconfigured state.
func NewState() *State {
	return &State{}
}

// SetProcesses replaces the process table. When the available vector is already
// set, every process vector must match its length. On error the state is unchanged.
func (s *State) SetProcesses(processes []Process) (*State, error) {
	want := -1
	if s.hasAvailable {
		want = len(s.available)
	}
	if err := validateProcesses(processes, want); err != nil {
		return s, err
	}
	s.processes = resetScratch(processes)
	return s, nil
}

// SetAvailable replaces the available vector. When processes are configured,
// its length must match theirs. On error the state is unchanged.
func (s *State) SetAvailable(available ResourceVector) (*State, error) {
	want := -1
	if len(s.processes) > 0 {
		want = len(s.processes[0].Needs)
	}
	if err := available.Validate(want); err != nil {
		return s, fmt.Errorf("available: %w", err)
	}
	s.available = append(ResourceVector{}, available...)
	s.hasAvailable = true
	return s, nil
}

// Configure replaces the process table and the available vector together,
// which allows the number of resource categories to change.
func (s *State) Configure(processes []Process, available ResourceVector) (*State, error) {
	if err := available.Validate(-1); err != nil {
		return s, fmt.Errorf("available: %w", err)
	}
	if err := validateProcesses(processes, len(available)); err != nil {
		return s, err
	}
	s.processes = resetScratch(processes)
	s.available = append(ResourceVector{}, available...)
	s.hasAvailable = true
	return s, nil
}

// Resources returns the number of resource categories R, or 0 when unconfigured.
func (s *State) Resources() int {
	if s.hasAvailable {
		return len(s.available)
	}
	if len(s.processes) > 0 {
		return len(s.processes[0].Needs)
	}
	return 0
}

// Len returns the number of processes.
func (s *State) Len() int {
	return len(s.processes)
}

// Processes returns a deep copy of the process table.
func (s *State) Processes() []Process {
	return cloneProcesses(s.processes)
}

// Process returns a deep copy of the process with the given id.
func (s *State) Process(id int) (Process, error) {
	if id < 0 || id >= len(s.processes) {
		return Process{}, fmt.Errorf("%w: id %d out of range [0, %d)", ErrUnknownProcess, id, len(s.processes))
	}
	return s.processes[id].Clone(), nil
}

// Available returns a copy of the unallocated resources.
func (s *State) Available() ResourceVector {
	return s.available.Clone()
}

// TotalResources returns available plus every allocation, per category.
// Successful requests never change it.
func (s *State) TotalResources() ResourceVector {
	total := make(ResourceVector, s.Resources())
	if s.hasAvailable {
		total.Add(s.available)
	}
	for _, p := range s.processes {
		total.Add(p.Allocations)
	}
	return total
}

// Clone returns an independent deep copy of the state.
func (s *State) Clone() *State {
	return &State{
		processes:    cloneProcesses(s.processes),
		available:    s.available.Clone(),
		hasAvailable: s.hasAvailable,
	}
}

// Resolve maps a reference to a process index. Names are compared in Unicode NFC form.
func (s *State) Resolve(ref ProcessRef) (int, error) {
	if !ref.byName {
		if ref.id < 0 || ref.id >= len(s.processes) {
			return -1, fmt.Errorf("%w: id %d out of range [0, %d)", ErrUnknownProcess, ref.id, len(s.processes))
		}
		return ref.id, nil
	}
	want := norm.NFC.String(ref.name)
	if want != "" {
		for i, p := range s.processes {
			if norm.NFC.String(p.Name) == want {
				return i, nil
			}
		}
	}
	return -1, fmt.Errorf("%w: no process named %q", ErrUnknownProcess, ref.name)
}

// validateProcesses checks that every vector has want entries (or the length of
// the first process's needs when want is negative) and that names are unique.
func validateProcesses(processes []Process, want int) error {
	if want < 0 && len(processes) > 0 {
		want = len(processes[0].Needs)
	}
	seen := make(map[string]int, len(processes))
	for i, p := range processes {
		if err := p.Needs.Validate(want); err != nil {
			return fmt.Errorf("process %d needs: %w", i, err)
		}
		if err := p.Allocations.Validate(want); err != nil {
			return fmt.Errorf("process %d allocations: %w", i, err)
		}
		if p.Name == "" {
			continue
		}
		name := norm.NFC.String(p.Name)
		if prev, dup := seen[name]; dup {
			return fmt.Errorf("%w: %q used by processes %d and %d", ErrDuplicateName, p.Name, prev, i)
		}
		seen[name] = i
	}
	return nil
}

func resetScratch(processes []Process) []Process {
	out := cloneProcesses(processes)
	for i := range out {
		out[i].Finished = false
	}
	return out
}
