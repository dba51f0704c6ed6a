package models

// Student is one roster entry. Name is lowercased and is the lookup key,
// ID joins the student to submissions.
type Student struct {
	Name string
	ID   string
}
