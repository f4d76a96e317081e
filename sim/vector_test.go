package sim_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inference-sim/bankers-sim/sim"
)

func TestResourceVector_LessOrEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b sim.ResourceVector
		want bool
	}{
		{"all smaller", sim.ResourceVector{1, 2, 2}, sim.ResourceVector{3, 3, 2}, true},
		{"equal", sim.ResourceVector{3, 3, 2}, sim.ResourceVector{3, 3, 2}, true},
		{"one category larger", sim.ResourceVector{7, 4, 3}, sim.ResourceVector{3, 3, 2}, false},
		{"length mismatch", sim.ResourceVector{1}, sim.ResourceVector{1, 1}, false},
		{"empty", sim.ResourceVector{}, sim.ResourceVector{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.LessOrEqual(tt.b); got != tt.want {
				t.Errorf("%v.LessOrEqual(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestResourceVector_AddSub_AreInverse(t *testing.T) {
	v := sim.ResourceVector{3, 3, 2}
	d := sim.ResourceVector{1, 0, 2}

	v.Sub(d)
	assert.Equal(t, sim.ResourceVector{2, 3, 0}, v)
	v.Add(d)
	assert.Equal(t, sim.ResourceVector{3, 3, 2}, v)
}

func TestResourceVector_Clone_IsIndependent(t *testing.T) {
	v := sim.ResourceVector{1, 2}
	c := v.Clone()
	c[0] = 9

	assert.Equal(t, 1, v[0])
	assert.Nil(t, sim.ResourceVector(nil).Clone())
}

func TestResourceVector_Validate(t *testing.T) {
	assert.NoError(t, sim.ResourceVector{0, 1}.Validate(2))
	assert.NoError(t, sim.ResourceVector{0, 1}.Validate(-1))

	err := sim.ResourceVector{0, 1}.Validate(3)
	assert.True(t, errors.Is(err, sim.ErrLengthMismatch), "got %v", err)

	err = sim.ResourceVector{0, -1}.Validate(2)
	assert.True(t, errors.Is(err, sim.ErrNegativeValue), "got %v", err)
}

func TestResourceVector_String(t *testing.T) {
	assert.Equal(t, "[3 3 2]", sim.ResourceVector{3, 3, 2}.String())
	assert.Equal(t, "[]", sim.ResourceVector{}.String())
}

func TestSafeSequence_Format_UsesNamesOrIDs(t *testing.T) {
	processes := []sim.Process{{Name: "editor"}, {}, {Name: "printer"}}

	assert.Equal(t, "<1,editor,printer>", sim.SafeSequence{1, 0, 2}.Format(processes))
	assert.Equal(t, "<>", sim.SafeSequence{}.Format(processes))
}

func TestParseRef(t *testing.T) {
	assert.Equal(t, sim.ByID(3), sim.ParseRef("3"))
	assert.Equal(t, sim.ByName("P3"), sim.ParseRef("P3"))
	assert.Equal(t, "P3", sim.ByName("P3").String())
	assert.Equal(t, "3", sim.ByID(3).String())
}
