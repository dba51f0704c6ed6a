package models

// Submission references its student and assignment by id only, so records
// pointing at unknown ids are kept and simply never match.
type Submission struct {
	StudentID    string
	AssignmentID string
	Percent      float64
}
