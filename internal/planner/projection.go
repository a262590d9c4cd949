package planner

import (
	"fmt"
	"math"
)

// GradePlan is one planned course with a target letter grade.
type GradePlan struct {
	Course      string
	Units       float64
	TargetGrade Letter
}

// State captures the inputs of a CGPA projection. CGPA values live on
// the 0-5 scale but are not clamped here; supplying consistent figures
// is the caller's responsibility.
type State struct {
	CurrentCGPA    float64
	CompletedUnits float64
	TargetCGPA     float64
	Plan           []GradePlan
}

// Outlook classifies a projection relative to the attainable 0-5 band.
type Outlook string

const (
	// OutlookOnTrack means the required average falls inside the scale.
	OutlookOnTrack Outlook = "ON_TRACK"
	// OutlookAlreadyMet means the target is already exceeded; the
	// required average came out negative.
	OutlookAlreadyMet Outlook = "ALREADY_MET"
	// OutlookOutOfReach means the required average exceeds the maximum
	// attainable 5.0 this term.
	OutlookOutOfReach Outlook = "OUT_OF_REACH"
)

// Projection is the result of a CGPA goal computation.
type Projection struct {
	// RequiredSemesterPoints is rounded up to the next whole point for
	// display. RequiredAveragePoint stays unrounded so the letter
	// mapping sees the true value.
	RequiredSemesterPoints int
	RequiredAveragePoint   float64
	ImpliedLetter          Letter
	Outlook                Outlook
}

// ErrInvalidInput reports a projection request that cannot be computed.
type ErrInvalidInput struct {
	Reason string
}

func (e *ErrInvalidInput) Error() string {
	return fmt.Sprintf("invalid projection input: %s", e.Reason)
}

// Project computes the average grade points needed this term to reach
// the target cumulative CGPA. Pure function of its input.
func Project(state State) (Projection, error) {
	var plannedUnits float64
	for i, plan := range state.Plan {
		if plan.Units <= 0 {
			return Projection{}, &ErrInvalidInput{Reason: fmt.Sprintf("plan entry %d has no credit units", i)}
		}
		if _, err := PointsFor(plan.TargetGrade); err != nil {
			return Projection{}, &ErrInvalidInput{Reason: fmt.Sprintf("plan entry %d: %v", i, err)}
		}
		plannedUnits += plan.Units
	}
	if plannedUnits == 0 {
		return Projection{}, &ErrInvalidInput{Reason: "no planned course units"}
	}
	if state.CompletedUnits < 0 {
		return Projection{}, &ErrInvalidInput{Reason: "completed units must not be negative"}
	}
	// A nonzero CGPA with zero completed units describes no real history.
	if state.CompletedUnits == 0 && state.CurrentCGPA != 0 {
		return Projection{}, &ErrInvalidInput{Reason: "current CGPA given without completed units"}
	}

	totalCompletedPoints := state.CurrentCGPA * state.CompletedUnits
	targetTotalPoints := state.TargetCGPA * (state.CompletedUnits + plannedUnits)
	requiredSemesterPoints := targetTotalPoints - totalCompletedPoints
	requiredAverage := requiredSemesterPoints / plannedUnits

	outlook := OutlookOnTrack
	switch {
	case requiredAverage < 0:
		outlook = OutlookAlreadyMet
	case requiredAverage > gradePoints[LetterA]:
		outlook = OutlookOutOfReach
	}

	return Projection{
		RequiredSemesterPoints: int(math.Ceil(requiredSemesterPoints)),
		RequiredAveragePoint:   requiredAverage,
		ImpliedLetter:          LetterForPoints(requiredAverage),
		Outlook:                outlook,
	}, nil
}
