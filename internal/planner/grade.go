// Package planner holds the academic planning engine: grade-point
// projection, weekly timetable assembly, and month calendar grouping.
// Everything here is pure computation over explicit inputs; persistence
// and transport live in the service and repository layers.
package planner

import "fmt"

// Letter is a letter grade on the five-point scale.
type Letter string

const (
	LetterA Letter = "A"
	LetterB Letter = "B"
	LetterC Letter = "C"
	LetterD Letter = "D"
	LetterE Letter = "E"
	LetterF Letter = "F"
)

// gradePoints is the canonical letter -> point table.
var gradePoints = map[Letter]float64{
	LetterA: 5,
	LetterB: 4,
	LetterC: 3,
	LetterD: 2,
	LetterE: 1,
	LetterF: 0,
}

// ErrUnknownGrade reports a letter outside the A-F table.
type ErrUnknownGrade struct {
	Grade string
}

func (e *ErrUnknownGrade) Error() string {
	return fmt.Sprintf("unknown grade %q", e.Grade)
}

// PointsFor returns the point value for a letter grade.
func PointsFor(letter Letter) (float64, error) {
	points, ok := gradePoints[letter]
	if !ok {
		return 0, &ErrUnknownGrade{Grade: string(letter)}
	}
	return points, nil
}

// LetterForPoints maps an average point score down to a letter grade.
// Bands are centered on integer points: a score takes the highest letter
// whose threshold it meets, with F as the floor. Values strictly between
// 0 and 1 map to F, not E. Out-of-range scores are not clamped; anything
// at or above 4.5 is an A and anything below 1 is an F.
func LetterForPoints(p float64) Letter {
	switch {
	case p >= 4.5:
		return LetterA
	case p >= 3.5:
		return LetterB
	case p >= 2.5:
		return LetterC
	case p >= 1.5:
		return LetterD
	case p >= 1.0:
		return LetterE
	default:
		return LetterF
	}
}
