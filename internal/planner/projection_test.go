package planner

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectUnreachableTarget(t *testing.T) {
	// 4.5*63 - 3.2*56 = 283.5 - 179.2 = 104.3 over 7 units.
	result, err := Project(State{
		CurrentCGPA:    3.2,
		CompletedUnits: 56,
		TargetCGPA:     4.5,
		Plan: []GradePlan{
			{Course: "MTH 301", Units: 3, TargetGrade: LetterA},
			{Course: "PHY 305", Units: 4, TargetGrade: LetterA},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 105, result.RequiredSemesterPoints)
	assert.InDelta(t, 14.9, result.RequiredAveragePoint, 0.01)
	assert.Equal(t, LetterA, result.ImpliedLetter)
	assert.Equal(t, OutlookOutOfReach, result.Outlook)
}

func TestProjectOnTrack(t *testing.T) {
	result, err := Project(State{
		CurrentCGPA:    4.0,
		CompletedUnits: 60,
		TargetCGPA:     4.1,
		Plan: []GradePlan{
			{Course: "CSC 401", Units: 10, TargetGrade: LetterB},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, OutlookOnTrack, result.Outlook)
	assert.Equal(t, LetterForPoints(result.RequiredAveragePoint), result.ImpliedLetter)
	// requiredSemesterPoints == ceil(target*(done+planned) - current*done)
	want := int(math.Ceil(4.1*70 - 4.0*60))
	assert.Equal(t, want, result.RequiredSemesterPoints)
}

func TestProjectTargetAlreadyExceeded(t *testing.T) {
	result, err := Project(State{
		CurrentCGPA:    4.8,
		CompletedUnits: 100,
		TargetCGPA:     3.0,
		Plan: []GradePlan{
			{Course: "GST 101", Units: 2, TargetGrade: LetterC},
		},
	})
	require.NoError(t, err)
	assert.Less(t, result.RequiredAveragePoint, 0.0)
	assert.Equal(t, LetterF, result.ImpliedLetter)
	assert.Equal(t, OutlookAlreadyMet, result.Outlook)
}

func TestProjectInvalidInputs(t *testing.T) {
	cases := []struct {
		name  string
		state State
	}{
		{"empty plan", State{CurrentCGPA: 3, CompletedUnits: 10, TargetCGPA: 4}},
		{"zero unit entry", State{
			CurrentCGPA: 3, CompletedUnits: 10, TargetCGPA: 4,
			Plan: []GradePlan{{Course: "X", Units: 0, TargetGrade: LetterA}},
		}},
		{"negative unit entry", State{
			CurrentCGPA: 3, CompletedUnits: 10, TargetCGPA: 4,
			Plan: []GradePlan{{Course: "X", Units: -1, TargetGrade: LetterA}},
		}},
		{"unknown target grade", State{
			CurrentCGPA: 3, CompletedUnits: 10, TargetCGPA: 4,
			Plan: []GradePlan{{Course: "X", Units: 3, TargetGrade: "Z"}},
		}},
		{"cgpa without history", State{
			CurrentCGPA: 3.2, CompletedUnits: 0, TargetCGPA: 4,
			Plan: []GradePlan{{Course: "X", Units: 3, TargetGrade: LetterA}},
		}},
		{"negative completed units", State{
			CurrentCGPA: 3.2, CompletedUnits: -5, TargetCGPA: 4,
			Plan: []GradePlan{{Course: "X", Units: 3, TargetGrade: LetterA}},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Project(tc.state)
			require.Error(t, err)
			var invalid *ErrInvalidInput
			assert.ErrorAs(t, err, &invalid)
		})
	}
}

func TestProjectFreshStart(t *testing.T) {
	// No history at all is consistent: zero CGPA over zero units.
	result, err := Project(State{
		TargetCGPA: 4.5,
		Plan: []GradePlan{
			{Course: "CSC 101", Units: 4, TargetGrade: LetterA},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 18, result.RequiredSemesterPoints)
	assert.InDelta(t, 4.5, result.RequiredAveragePoint, 1e-9)
	assert.Equal(t, LetterA, result.ImpliedLetter)
	assert.Equal(t, OutlookOnTrack, result.Outlook)
}
