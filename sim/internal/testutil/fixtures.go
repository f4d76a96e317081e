// Package testutil provides shared test infrastructure for the Banker's engine.
// It consolidates the reference scenarios and golden-trace assertion helpers
// used across the sim/ test packages.
package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/inference-sim/bankers-sim/sim"
	"github.com/inference-sim/bankers-sim/sim/trace"
)

// Scenario is a process table plus available vector used as a test fixture.
type Scenario struct {
	Processes []sim.Process
	Available sim.ResourceVector
}

// TextbookScenario is the classic five-process, three-resource example.
// It is safe with sequence <1,3,4,0,2>.
func TextbookScenario() Scenario {
	return Scenario{
		Processes: []sim.Process{
			{Needs: sim.ResourceVector{7, 4, 3}, Allocations: sim.ResourceVector{0, 1, 0}},
			{Needs: sim.ResourceVector{1, 2, 2}, Allocations: sim.ResourceVector{2, 0, 0}},
			{Needs: sim.ResourceVector{6, 0, 0}, Allocations: sim.ResourceVector{3, 0, 2}},
			{Needs: sim.ResourceVector{0, 1, 1}, Allocations: sim.ResourceVector{2, 1, 1}},
			{Needs: sim.ResourceVector{4, 3, 1}, Allocations: sim.ResourceVector{0, 0, 2}},
		},
		Available: sim.ResourceVector{3, 3, 2},
	}
}

// RequestScenario is a safe five-process state used to exercise requests.
// It is safe with sequence <3,4,0,1,2>.
func RequestScenario() Scenario {
	return Scenario{
		Processes: []sim.Process{
			{Needs: sim.ResourceVector{3, 4, 7}, Allocations: sim.ResourceVector{2, 1, 2}},
			{Needs: sim.ResourceVector{1, 3, 4}, Allocations: sim.ResourceVector{4, 0, 2}},
			{Needs: sim.ResourceVector{0, 0, 6}, Allocations: sim.ResourceVector{4, 0, 5}},
			{Needs: sim.ResourceVector{2, 2, 1}, Allocations: sim.ResourceVector{2, 0, 4}},
			{Needs: sim.ResourceVector{1, 1, 0}, Allocations: sim.ResourceVector{3, 1, 4}},
		},
		Available: sim.ResourceVector{2, 3, 3},
	}
}

// Named returns a copy of the scenario with processes named P0, P1, ...
func (s Scenario) Named() Scenario {
	out := Scenario{Available: s.Available.Clone()}
	for i, p := range s.Processes {
		p = p.Clone()
		p.Name = fmt.Sprintf("P%d", i)
		out.Processes = append(out.Processes, p)
	}
	return out
}

// NewEngine returns an engine configured with the scenario and a recorder
// subscribed to its log.
func (s Scenario) NewEngine(t *testing.T) (*sim.Engine, *trace.Recorder) {
	t.Helper()
	rec := &trace.Recorder{}
	log := trace.NewLog()
	log.Subscribe(rec.Observe)
	e, err := sim.NewEngine(log).Configure(s.Processes, s.Available)
	if err != nil {
		t.Fatalf("configure scenario: %v", err)
	}
	return e, rec
}

// RenderTrace renders events one per line in their String form.
func RenderTrace(events []trace.Event) []byte {
	var b strings.Builder
	for _, ev := range events {
		b.WriteString(ev.String())
		b.WriteString("\n")
	}
	return []byte(b.String())
}

// AssertGoldenTrace compares the rendered events against testdata/golden/{name}.golden
// in the calling package's directory.
//
// To regenerate golden files, run:
//
//	go test ./sim -update
func AssertGoldenTrace(t *testing.T, name string, events []trace.Event) {
	t.Helper()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, RenderTrace(events))
}
