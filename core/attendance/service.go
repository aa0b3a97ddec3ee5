package attendance

import (
	"errors"
	"math"
	"sort"
	"time"

	"github.com/meridianedu/portal/core"
	"github.com/meridianedu/portal/core/course"
	"github.com/meridianedu/portal/core/user"
)

var (
	nowFunc = time.Now // mockable

	// errors
	ErrNotEnrolled = errors.New("student is not enrolled in this course")
)

type (
	Repository interface {
		CreateRecord(r Record) (Record, error)
		QueryAllRecords() ([]Record, error)
	}

	Service struct {
		repo    Repository
		courses course.Repository
	}
)

func NewService(repo Repository, courses course.Repository) *Service {
	return &Service{repo: repo, courses: courses}
}

// Mark records attendance for one enrolled student of one of the acting
// teacher's own courses, dated today.
func (svc *Service) Mark(actor user.User, nr NewRecord) (Record, error) {
	if !actor.IsTeacher() {
		return Record{}, core.ErrNotAuthorized
	}
	if err := nr.Validate(); err != nil {
		return Record{}, err
	}
	crs, err := svc.courses.GetCourseByID(nr.CourseID)
	if err != nil {
		return Record{}, err
	}
	if crs.TeacherID != actor.ID {
		return Record{}, core.ErrNotAuthorized
	}
	if !crs.IsEnrolled(nr.StudentID) {
		return Record{}, ErrNotEnrolled
	}
	r := Record{
		ID:        NewID(),
		StudentID: nr.StudentID,
		CourseID:  nr.CourseID,
		Date:      nowFunc().UTC().Format("2006-01-02"),
		Status:    nr.Status,
	}
	return svc.repo.CreateRecord(r)
}

// ForStudent returns the student's history, most recent first. ISO dates
// sort lexicographically.
func (svc *Service) ForStudent(studentID string) ([]Record, error) {
	all, err := svc.repo.QueryAllRecords()
	if err != nil {
		return nil, err
	}
	records := make([]Record, 0, len(all))
	for _, r := range all {
		if r.StudentID == studentID {
			records = append(records, r)
		}
	}
	sort.SliceStable(records, func(i, j int) bool { return records[i].Date > records[j].Date })
	return records, nil
}

// StatsFor summarizes the student's attendance.
func (svc *Service) StatsFor(studentID string) (Stats, error) {
	records, err := svc.ForStudent(studentID)
	if err != nil {
		return Stats{}, err
	}
	var stats Stats
	stats.Total = len(records)
	for _, r := range records {
		switch r.Status {
		case StatusPresent:
			stats.Present++
		case StatusAbsent:
			stats.Absent++
		case StatusLate:
			stats.Late++
		}
	}
	if stats.Total > 0 {
		stats.Rate = int(math.Round(100 * float64(stats.Present+stats.Late) / float64(stats.Total)))
	}
	return stats, nil
}
