package course

import (
	"errors"

	"github.com/meridianedu/portal/core"
	"github.com/meridianedu/portal/core/user"
)

var (
	// errors
	ErrNotFound        = errors.New("course not found")
	ErrAlreadyEnrolled = errors.New("already enrolled")
	ErrWrongPassword   = errors.New("incorrect enrollment password")
)

type (
	Repository interface {
		CreateCourse(crs Course) (Course, error)
		QueryAllCourses() ([]Course, error)
		GetCourseByID(id string) (Course, error)
		// UpdateEnrollment replaces the course roster wholesale.
		UpdateEnrollment(id string, studentIDs []string) (Course, error)
		DeleteCourse(id string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create registers a new course owned by the acting teacher.
func (svc *Service) Create(actor user.User, nc NewCourse) (Course, error) {
	if !actor.IsTeacher() {
		return Course{}, core.ErrNotAuthorized
	}
	if err := nc.Validate(); err != nil {
		return Course{}, err
	}
	crs := Course{
		ID:                 NewID(),
		Name:               nc.Name,
		Code:               nc.Code,
		Teacher:            actor.Name,
		TeacherID:          actor.ID,
		Department:         nc.Department,
		Credits:            nc.Credits,
		EnrollmentPassword: nc.EnrollmentPassword,
		Description:        nc.Description,
		EnrolledStudents:   []string{},
	}
	return svc.repo.CreateCourse(crs)
}

// Delete removes the course. Only the owning teacher may do so, even when
// invoked outside the UI. Timetable entries referencing the course are not
// cascaded; they become orphans.
func (svc *Service) Delete(actor user.User, id string) error {
	crs, err := svc.repo.GetCourseByID(id)
	if err != nil {
		return err
	}
	if crs.TeacherID != actor.ID {
		return core.ErrNotAuthorized
	}
	return svc.repo.DeleteCourse(id)
}

// Enroll adds the acting student to the course roster. The checks run in a
// fixed order: authorization, existence, prior enrollment, then the shared
// enrollment password (plain string equality).
func (svc *Service) Enroll(actor user.User, id, password string) error {
	if !actor.IsStudent() {
		return core.ErrNotAuthorized
	}
	crs, err := svc.repo.GetCourseByID(id)
	if err != nil {
		return err
	}
	if crs.IsEnrolled(actor.ID) {
		return ErrAlreadyEnrolled
	}
	if crs.EnrollmentPassword != password {
		return ErrWrongPassword
	}
	_, err = svc.repo.UpdateEnrollment(id, append(crs.EnrolledStudents, actor.ID))
	return err
}

// Unenroll removes the acting identity from the roster. Never an error:
// an anonymous caller, an unknown course or a student who was never
// enrolled all leave the state as-is.
func (svc *Service) Unenroll(actor user.User, id string) error {
	crs, err := svc.repo.GetCourseByID(id)
	if err != nil {
		if err == ErrNotFound {
			return nil
		}
		return err
	}
	if !crs.IsEnrolled(actor.ID) {
		return nil
	}
	roster := make([]string, 0, len(crs.EnrolledStudents)-1)
	for _, sid := range crs.EnrolledStudents {
		if sid != actor.ID {
			roster = append(roster, sid)
		}
	}
	_, err = svc.repo.UpdateEnrollment(id, roster)
	return err
}

func (svc *Service) QueryAll() ([]Course, error) {
	return svc.repo.QueryAllCourses()
}

func (svc *Service) GetByID(id string) (Course, error) {
	return svc.repo.GetCourseByID(id)
}

// EnrolledBy returns the courses the student is enrolled in.
func (svc *Service) EnrolledBy(studentID string) ([]Course, error) {
	return svc.filter(func(crs Course) bool { return crs.IsEnrolled(studentID) })
}

// AvailableTo returns the courses the student is not enrolled in.
func (svc *Service) AvailableTo(studentID string) ([]Course, error) {
	return svc.filter(func(crs Course) bool { return !crs.IsEnrolled(studentID) })
}

// OwnedBy returns the courses taught by the teacher.
func (svc *Service) OwnedBy(teacherID string) ([]Course, error) {
	return svc.filter(func(crs Course) bool { return crs.TeacherID == teacherID })
}

func (svc *Service) filter(keep func(Course) bool) ([]Course, error) {
	all, err := svc.repo.QueryAllCourses()
	if err != nil {
		return nil, err
	}
	courses := make([]Course, 0, len(all))
	for _, crs := range all {
		if keep(crs) {
			courses = append(courses, crs)
		}
	}
	return courses, nil
}
