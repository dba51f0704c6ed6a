package models

type Assignment struct {
	Name      string
	ID        string
	MaxPoints int
}
