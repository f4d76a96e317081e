package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/inference-sim/bankers-sim/sim"
	"github.com/inference-sim/bankers-sim/sim/trace"
)

// Colors
var (
	accent  = lipgloss.Color("#FF0000")
	muted   = lipgloss.Color("#666666")
	success = lipgloss.Color("#00CC66")
)

// Styles
var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	unsafeStyle  = lipgloss.NewStyle().Foreground(accent).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(muted)
	successStyle = lipgloss.NewStyle().Foreground(success).Bold(true)
	cellStyle    = lipgloss.NewStyle().Width(14)
)

func renderState(w io.Writer, s *sim.State) {
	fmt.Fprintln(w, titleStyle.Render("STATE"))
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		cellStyle.Render("process"), cellStyle.Render("needs"), cellStyle.Render("allocations"))
	fmt.Fprintln(w, mutedStyle.Render(header))
	for id, p := range s.Processes() {
		fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top,
			cellStyle.Render(p.Label(id)), cellStyle.Render(p.Needs.String()), cellStyle.Render(p.Allocations.String())))
	}
	fmt.Fprintf(w, "%s %s\n", mutedStyle.Render("available:"), s.Available())
}

func renderTrace(w io.Writer, events []trace.Event) {
	fmt.Fprintln(w, titleStyle.Render("TRACE"))
	for _, ev := range events {
		fmt.Fprintf(w, "  %s %s\n", mutedStyle.Render(fmt.Sprintf("%3d", ev.Seq)), ev)
	}
}

func renderVerdict(w io.Writer, safe bool, seq sim.SafeSequence, processes []sim.Process) {
	if safe {
		fmt.Fprintf(w, "%s %s\n", successStyle.Render("SAFE"), seq.Format(processes))
		return
	}
	fmt.Fprintln(w, unsafeStyle.Render("UNSAFE"))
}

func renderRequest(w io.Writer, ref sim.ProcessRef, requested sim.ResourceVector, res sim.RequestResult) {
	label := fmt.Sprintf("request %s %s:", ref, requested)
	if res.Granted {
		fmt.Fprintf(w, "%s %s\n", label, successStyle.Render("GRANTED"))
		return
	}
	fmt.Fprintf(w, "%s %s %s\n", label, unsafeStyle.Render("DENIED"), mutedStyle.Render("("+res.Reason+")"))
}

func renderSummary(w io.Writer, s *trace.TraceSummary) {
	fmt.Fprintln(w, titleStyle.Render("SUMMARY"))
	rows := []struct {
		name  string
		value int
	}{
		{"events", s.TotalEvents},
		{"safety checks", s.SafetyChecks},
		{"safe verdicts", s.SafeVerdicts},
		{"unsafe verdicts", s.UnsafeVerdicts},
		{"executable probes", s.ExecutableProbes},
		{"blocked probes", s.BlockedProbes},
		{"requests", s.Requests},
		{"granted", s.Granted},
		{"rejected", s.Rejected},
		{"rollbacks", s.Rollbacks},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "  %s %d\n", mutedStyle.Render(r.name+":"+strings.Repeat(" ", 18-len(r.name))), r.value)
	}
}
