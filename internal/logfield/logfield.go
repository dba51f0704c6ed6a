package lf

import (
	"github.com/docker/go-units"
	"go.uber.org/zap"
)

const (
	FieldModule         = "module"
	FieldRunID          = "run_id"
	FieldPath           = "path"
	FieldSize           = "size"
	FieldCount          = "count"
	FieldStudentName    = "student_name"
	FieldStudentID      = "student_id"
	FieldAssignmentName = "assignment_name"
	FieldAssignmentID   = "assignment_id"
)

func Module(module string) zap.Field {
	return zap.String(FieldModule, module)
}

func RunID(id string) zap.Field {
	return zap.String(FieldRunID, id)
}

func Path(path string) zap.Field {
	return zap.String(FieldPath, path)
}

// Size renders a byte count the way `ls -h` would.
func Size(bytes int64) zap.Field {
	return zap.String(FieldSize, units.HumanSize(float64(bytes)))
}

func Count(count int) zap.Field {
	return zap.Int(FieldCount, count)
}

func StudentName(name string) zap.Field {
	return zap.String(FieldStudentName, name)
}

func StudentID(id string) zap.Field {
	return zap.String(FieldStudentID, id)
}

func AssignmentName(name string) zap.Field {
	return zap.String(FieldAssignmentName, name)
}

func AssignmentID(id string) zap.Field {
	return zap.String(FieldAssignmentID, id)
}
