package dto

// ProjectionPlanEntry is one planned course in a CGPA projection request.
type ProjectionPlanEntry struct {
	Course      string  `json:"course"`
	Unit        float64 `json:"unit"`
	TargetGrade string  `json:"target_grade"`
}

// ProjectionRequest carries the live form inputs for a projection. The
// engine recomputes from these on every call; nothing derived is stored.
type ProjectionRequest struct {
	CurrentCGPA    float64               `json:"current_cgpa"`
	CompletedUnits float64               `json:"completed_units"`
	TargetCGPA     float64               `json:"target_cgpa"`
	Plan           []ProjectionPlanEntry `json:"plan"`
}

// ProjectionResponse reports what this term must deliver to hit the
// target. Outlook flags targets already met or out of reach so the
// client can render more than a bare letter.
type ProjectionResponse struct {
	PlannedUnits           float64 `json:"planned_units"`
	RequiredSemesterPoints int     `json:"required_semester_points"`
	RequiredAveragePoint   float64 `json:"required_average_point"`
	RequiredAverageGrade   string  `json:"required_average_grade"`
	Outlook                string  `json:"outlook"`
}
