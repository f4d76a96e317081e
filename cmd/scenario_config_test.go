package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/bankers-sim/sim"
)

const textbookYAML = `
available: [3, 3, 2]
processes:
  - {needs: [7, 4, 3], allocations: [0, 1, 0]}
  - {needs: [1, 2, 2], allocations: [2, 0, 0]}
  - {needs: [6, 0, 0], allocations: [3, 0, 2]}
  - {needs: [0, 1, 1], allocations: [2, 1, 1]}
  - {needs: [4, 3, 1], allocations: [0, 0, 2]}
requests:
  - {process: 1, resources: [1, 0, 2]}
  - {process: 0, resources: [0, 2, 0]}
`

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadScenario_ValidFile_Parses(t *testing.T) {
	// GIVEN a scenario file
	path := writeScenario(t, textbookYAML)

	// WHEN loaded
	sc, err := LoadScenario(path)

	// THEN every section is decoded
	require.NoError(t, err)
	assert.Equal(t, sim.ResourceVector{3, 3, 2}, sc.Available)
	require.Len(t, sc.Processes, 5)
	assert.Equal(t, sim.ResourceVector{6, 0, 0}, sc.Processes[2].Needs)
	require.Len(t, sc.Requests, 2)
	assert.Equal(t, "1", sc.Requests[0].Process)
	assert.Equal(t, sim.ResourceVector{1, 0, 2}, sc.Requests[0].Resources)
}

func TestLoadScenario_MissingFile_Errors(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, err.Error(), "reading scenario")
}

func TestParseScenario_UnknownField_Rejected(t *testing.T) {
	// GIVEN a typo in a field name
	data := []byte("available: [1]\nprocesses:\n  - {needs: [1], alocations: [0]}\n")

	// WHEN parsed
	_, err := ParseScenario(data)

	// THEN strict parsing rejects it
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing scenario")
}

func TestParseScenario_FinishedFlag_NotConfigurable(t *testing.T) {
	data := []byte("available: [1]\nprocesses:\n  - {needs: [1], allocations: [0], finished: true}\n")

	_, err := ParseScenario(data)

	assert.Error(t, err)
}

func TestScenario_Validate(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"no available", "processes: []\n", "available"},
		{"missing needs", "available: [1]\nprocesses:\n  - {allocations: [0]}\n", "processes[0]: needs"},
		{"missing allocations", "available: [1]\nprocesses:\n  - {needs: [0]}\n", "processes[0]: allocations"},
		{"request without process", "available: [1]\nrequests:\n  - {resources: [1]}\n", "requests[0]: process"},
		{"request without resources", "available: [1]\nrequests:\n  - {process: P0}\n", "requests[0]: resources"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestScenario_Apply_LengthMismatch_Errors(t *testing.T) {
	// GIVEN a scenario whose process vectors disagree with available
	sc, err := ParseScenario([]byte("available: [1, 1]\nprocesses:\n  - {needs: [1], allocations: [0]}\n"))
	require.NoError(t, err)

	// WHEN applied to an engine
	err = sc.Apply(sim.NewEngine(nil))

	// THEN configuration fails fast
	assert.True(t, errors.Is(err, sim.ErrLengthMismatch), "got %v", err)
}

func TestExampleScenario_Loads(t *testing.T) {
	sc, err := LoadScenario(filepath.Join("..", "examples", "textbook.yaml"))
	require.NoError(t, err)

	e := sim.NewEngine(nil)
	require.NoError(t, sc.Apply(e))
	assert.True(t, e.IsSafe())
	assert.Equal(t, sim.SafeSequence{1, 3, 4, 0, 2}, e.SafeSequence())
}
