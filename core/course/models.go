package course

import (
	"github.com/meridianedu/portal/core"
)

type Course struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Code               string   `json:"code"` // duplicates allowed
	Teacher            string   `json:"teacher"`
	TeacherID          string   `json:"teacher_id"`
	Department         string   `json:"department"`
	Credits            int      `json:"credits"`
	EnrollmentPassword string   `json:"enrollment_password"` // plaintext shared secret, demo scope
	Description        string   `json:"description"`
	EnrolledStudents   []string `json:"enrolled_students"` // student ids, unique membership
}

func (c Course) IsEnrolled(studentID string) bool {
	for _, id := range c.EnrolledStudents {
		if id == studentID {
			return true
		}
	}
	return false
}

// NewCourse contains information needed to create a Course. Owner fields
// are stamped from the acting teacher, never taken as input.
type NewCourse struct {
	Name               string `json:"name" validate:"required"`
	Code               string `json:"code" validate:"required"`
	Department         string `json:"department" validate:"required"`
	Credits            int    `json:"credits" validate:"required,gt=0"`
	EnrollmentPassword string `json:"enrollment_password" validate:"required"`
	Description        string `json:"description"`
}

func (nc *NewCourse) Validate() error {
	nc.Name = core.CleanString(nc.Name)
	nc.Code = core.CleanString(nc.Code)
	nc.Department = core.CleanString(nc.Department)
	nc.Description = core.CleanString(nc.Description)
	return core.Validate.Struct(nc)
}

// NewID returns a fresh course id ("c…").
func NewID() string {
	return core.NewID("c")
}
