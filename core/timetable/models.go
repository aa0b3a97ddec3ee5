package timetable

import (
	"github.com/meridianedu/portal/core"
)

// Days classes can be scheduled on. No Sunday classes.
var Days = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

func ValidDay(day string) bool {
	for _, d := range Days {
		if d == day {
			return true
		}
	}
	return false
}

// Entry is one timetable slot. CourseName, CourseCode and Teacher are
// snapshots taken at creation time; they are not kept in sync if the
// course is later changed.
type Entry struct {
	ID         string `json:"id"`
	CourseID   string `json:"course_id"`
	CourseName string `json:"course_name"`
	CourseCode string `json:"course_code"`
	Day        string `json:"day"`
	StartTime  string `json:"start_time"` // HH:MM
	EndTime    string `json:"end_time"`   // HH:MM; start < end expected but not enforced
	Room       string `json:"room"`
	Teacher    string `json:"teacher"`
}

// NewEntry contains information needed to schedule an Entry. The course
// snapshot fields are denormalized from the referenced course on creation.
type NewEntry struct {
	CourseID  string `json:"course_id" validate:"required"`
	Day       string `json:"day" validate:"required,weekday"`
	StartTime string `json:"start_time" validate:"required,hhmm"`
	EndTime   string `json:"end_time" validate:"required,hhmm"`
	Room      string `json:"room" validate:"required"`
}

func (ne *NewEntry) Validate() error {
	ne.CourseID = core.CleanString(ne.CourseID)
	ne.Day = core.CleanString(ne.Day)
	ne.Room = core.CleanString(ne.Room)
	return core.Validate.Struct(ne)
}

// NewID returns a fresh entry id ("tt…").
func NewID() string {
	return core.NewID("tt")
}
