package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"

	"github.com/inference-sim/bankers-sim/sim"
	"github.com/inference-sim/bankers-sim/sim/trace"
)

var (
	// CLI flags
	logLevel      string // Log verbosity level
	otelOut       string // File receiving OpenTelemetry spans; empty disables tracing
	scenarioPath  string // Scenario YAML file
	showTrace     bool   // Print the event trace of each operation
	showState     bool   // Print the process table before running
	showSummary   bool   // Print trace statistics at the end of `run`
	processRef    string // Process id or name for `request`
	requestVector []int  // Requested resources for `request`

	shutdownTracing = func(context.Context) error { return nil }
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:          "bankers-sim",
	Short:        "Banker's Algorithm deadlock-avoidance simulator",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", logLevel, err)
		}
		logrus.SetLevel(level)
		shutdown, err := initTracing(otelOut)
		if err != nil {
			return fmt.Errorf("initializing tracing: %w", err)
		}
		shutdownTracing = shutdown
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return shutdownTracing(cmd.Context())
	},
}

// session is one engine loaded from the scenario file with a recorder attached.
type session struct {
	scenario *Scenario
	engine   *sim.Engine
	recorder *trace.Recorder
}

func openSession(path string) (*session, error) {
	if path == "" {
		return nil, fmt.Errorf("--scenario is required")
	}
	sc, err := LoadScenario(path)
	if err != nil {
		return nil, err
	}
	rec := &trace.Recorder{}
	log := trace.NewLog()
	log.Subscribe(rec.Observe)
	e := sim.NewEngine(log)
	if err := sc.Apply(e); err != nil {
		return nil, err
	}
	logrus.Infof("Loaded scenario %s: %d processes, %d resource categories",
		path, len(sc.Processes), len(sc.Available))
	return &session{scenario: sc, engine: e, recorder: rec}, nil
}

// check runs a safety check and prints its outcome.
func (s *session) check(ctx context.Context, w io.Writer) bool {
	_, span := startSpan(ctx, "bankers.check_safety")
	s.recorder.Reset()
	safe := s.engine.IsSafe()
	span.SetAttributes(attribute.Bool("safe", safe))
	endSpan(span, nil)

	if showTrace {
		renderTrace(w, s.recorder.Events)
	}
	renderVerdict(w, safe, s.engine.SafeSequence(), s.engine.State().Processes())
	return safe
}

// request submits one request and prints its outcome.
func (s *session) request(ctx context.Context, w io.Writer, ref sim.ProcessRef, requested sim.ResourceVector) error {
	_, span := startSpan(ctx, "bankers.request",
		attribute.String("process", ref.String()),
		attribute.IntSlice("requested", []int(requested)))
	s.recorder.Reset()
	res, err := s.engine.RequestDetailed(ref, requested)
	span.SetAttributes(attribute.Bool("granted", res.Granted), attribute.Bool("rolled_back", res.RolledBack))
	endSpan(span, err)
	if err != nil {
		return err
	}

	if showTrace {
		renderTrace(w, s.recorder.Events)
	}
	renderRequest(w, ref, requested, res)
	return nil
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check whether the scenario state is safe",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(scenarioPath)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		if showState {
			renderState(w, s.engine.State())
		}
		s.check(cmd.Context(), w)
		return nil
	},
}

var requestCmd = &cobra.Command{
	Use:   "request",
	Short: "Request resources for one process and keep the grant only if the state stays safe",
	RunE: func(cmd *cobra.Command, args []string) error {
		if processRef == "" {
			return fmt.Errorf("--process is required")
		}
		s, err := openSession(scenarioPath)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		if showState {
			renderState(w, s.engine.State())
		}
		return s.request(cmd.Context(), w, sim.ParseRef(processRef), sim.ResourceVector(requestVector))
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Check the scenario state, then replay its requests in order",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(scenarioPath)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		var all []trace.Event
		if showState {
			renderState(w, s.engine.State())
		}
		s.check(cmd.Context(), w)
		all = append(all, s.recorder.Events...)
		for i, step := range s.scenario.Requests {
			if err := s.request(cmd.Context(), w, sim.ParseRef(step.Process), step.Resources); err != nil {
				return fmt.Errorf("requests[%d]: %w", i, err)
			}
			all = append(all, s.recorder.Events...)
		}
		if showState {
			renderState(w, s.engine.State())
		}
		if showSummary {
			renderSummary(w, trace.Summarize(all))
		}
		logrus.Info("Scenario complete.")
		return nil
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVar(&otelOut, "otel-out", "", "Write OpenTelemetry spans to this file (disabled when empty)")
	rootCmd.PersistentFlags().StringVar(&scenarioPath, "scenario", "", "Path to the scenario YAML file")
	rootCmd.PersistentFlags().BoolVar(&showTrace, "trace", true, "Print the event trace of each operation")
	rootCmd.PersistentFlags().BoolVar(&showState, "state", false, "Print the process table")

	requestCmd.Flags().StringVar(&processRef, "process", "", "Process id or name")
	requestCmd.Flags().IntSliceVar(&requestVector, "resources", nil, "Comma-separated requested resources, one per category")

	runCmd.Flags().BoolVar(&showSummary, "summary", false, "Print trace statistics at the end")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(requestCmd)
	rootCmd.AddCommand(runCmd)
}
