package timetable

import (
	"errors"
	"sort"
	"time"

	"github.com/meridianedu/portal/core"
	"github.com/meridianedu/portal/core/course"
	"github.com/meridianedu/portal/core/user"
)

var (
	nowFunc = time.Now // mockable

	// errors
	ErrNotFound = errors.New("timetable entry not found")
)

type (
	Repository interface {
		CreateEntry(e Entry) (Entry, error)
		QueryAllEntries() ([]Entry, error)
		GetEntryByID(id string) (Entry, error)
		DeleteEntry(id string) error
	}

	Service struct {
		repo    Repository
		courses course.Repository
	}
)

func NewService(repo Repository, courses course.Repository) *Service {
	return &Service{repo: repo, courses: courses}
}

// Add schedules an entry for one of the acting teacher's own courses.
// Ownership is re-validated here; the UI restricting the course picker is
// not enough against direct invocation. No overlap or double-booking
// detection is done.
func (svc *Service) Add(actor user.User, ne NewEntry) (Entry, error) {
	if !actor.IsTeacher() {
		return Entry{}, core.ErrNotAuthorized
	}
	if err := ne.Validate(); err != nil {
		return Entry{}, err
	}
	crs, err := svc.courses.GetCourseByID(ne.CourseID)
	if err != nil {
		return Entry{}, err
	}
	if crs.TeacherID != actor.ID {
		return Entry{}, core.ErrNotAuthorized
	}
	e := Entry{
		ID:         NewID(),
		CourseID:   crs.ID,
		CourseName: crs.Name,
		CourseCode: crs.Code,
		Day:        ne.Day,
		StartTime:  ne.StartTime,
		EndTime:    ne.EndTime,
		Room:       ne.Room,
		Teacher:    actor.Name,
	}
	return svc.repo.CreateEntry(e)
}

// Delete removes an entry. Ownership is derived through the entry's course;
// when the course has been deleted (no cascade), the teacher name captured
// in the entry snapshot decides instead, so orphans stay removable.
func (svc *Service) Delete(actor user.User, id string) error {
	e, err := svc.repo.GetEntryByID(id)
	if err != nil {
		return err
	}
	crs, err := svc.courses.GetCourseByID(e.CourseID)
	if err != nil {
		if err == course.ErrNotFound {
			if !actor.IsTeacher() || e.Teacher != actor.Name {
				return core.ErrNotAuthorized
			}
			return svc.repo.DeleteEntry(id)
		}
		return err
	}
	if crs.TeacherID != actor.ID {
		return core.ErrNotAuthorized
	}
	return svc.repo.DeleteEntry(id)
}

func (svc *Service) QueryAll() ([]Entry, error) {
	return svc.repo.QueryAllEntries()
}

// ForStudent returns the entries of every course the student is enrolled in.
func (svc *Service) ForStudent(studentID string) ([]Entry, error) {
	courses, err := svc.courses.QueryAllCourses()
	if err != nil {
		return nil, err
	}
	enrolled := make(map[string]bool, len(courses))
	for _, crs := range courses {
		if crs.IsEnrolled(studentID) {
			enrolled[crs.ID] = true
		}
	}
	return svc.filter(func(e Entry) bool { return enrolled[e.CourseID] })
}

// ForTeacher returns the entries of every course the teacher owns.
func (svc *Service) ForTeacher(teacherID string) ([]Entry, error) {
	courses, err := svc.courses.QueryAllCourses()
	if err != nil {
		return nil, err
	}
	owned := make(map[string]bool, len(courses))
	for _, crs := range courses {
		if crs.TeacherID == teacherID {
			owned[crs.ID] = true
		}
	}
	return svc.filter(func(e Entry) bool { return owned[e.CourseID] })
}

// TodayFor returns the student's classes for the current weekday, earliest
// first.
func (svc *Service) TodayFor(studentID string) ([]Entry, error) {
	entries, err := svc.ForStudent(studentID)
	if err != nil {
		return nil, err
	}
	return On(entries, nowFunc().Weekday().String()), nil
}

// On filters entries down to one day, ordered by start time ascending.
// HH:MM is fixed-width zero-padded, so plain string comparison is correct.
func On(entries []Entry, day string) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Day == day {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartTime < out[j].StartTime })
	return out
}

func (svc *Service) filter(keep func(Entry) bool) ([]Entry, error) {
	all, err := svc.repo.QueryAllEntries()
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(all))
	for _, e := range all {
		if keep(e) {
			entries = append(entries, e)
		}
	}
	return entries, nil
}
