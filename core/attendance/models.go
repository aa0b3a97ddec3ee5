package attendance

import (
	"github.com/meridianedu/portal/core"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
)

var Statuses = []Status{StatusPresent, StatusAbsent, StatusLate}

func (s Status) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLate:
		return true
	}
	return false
}

// Record marks one student's attendance in one class meeting.
type Record struct {
	ID        string `json:"id"`
	StudentID string `json:"student_id"`
	CourseID  string `json:"course_id"`
	Date      string `json:"date"` // ISO YYYY-MM-DD
	Status    Status `json:"status"`
}

// NewRecord contains information needed to mark attendance. The date is
// stamped from the clock.
type NewRecord struct {
	StudentID string `json:"student_id" validate:"required"`
	CourseID  string `json:"course_id" validate:"required"`
	Status    Status `json:"status" validate:"required,attstatus"`
}

func (nr *NewRecord) Validate() error {
	nr.StudentID = core.CleanString(nr.StudentID)
	nr.CourseID = core.CleanString(nr.CourseID)
	return core.Validate.Struct(nr)
}

// Stats summarizes a student's attendance history. Rate counts late
// arrivals as attended.
type Stats struct {
	Total   int `json:"total"`
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Late    int `json:"late"`
	Rate    int `json:"rate"` // percentage, 0 when no records
}

// NewID returns a fresh record id ("a…").
func NewID() string {
	return core.NewID("a")
}
