package inmem

import (
	"github.com/meridianedu/portal/core/course"
)

type courseRepository struct {
	db *courseTable
}

func NewCourseRepository(db *DB) course.Repository {
	return &courseRepository{db: db.courses}
}

// cloneCourse keeps callers from aliasing the stored roster slice.
func cloneCourse(crs course.Course) course.Course {
	roster := make([]string, len(crs.EnrolledStudents))
	copy(roster, crs.EnrolledStudents)
	crs.EnrolledStudents = roster
	return crs
}

func (repo *courseRepository) CreateCourse(crs course.Course) (course.Course, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.rows = append(repo.db.rows, cloneCourse(crs))
	return crs, nil
}

func (repo *courseRepository) QueryAllCourses() ([]course.Course, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	courses := make([]course.Course, 0, len(repo.db.rows))
	for _, crs := range repo.db.rows {
		courses = append(courses, cloneCourse(crs))
	}
	return courses, nil
}

func (repo *courseRepository) GetCourseByID(id string) (course.Course, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, crs := range repo.db.rows {
		if crs.ID == id {
			return cloneCourse(crs), nil
		}
	}
	return course.Course{}, course.ErrNotFound
}

func (repo *courseRepository) UpdateEnrollment(id string, studentIDs []string) (course.Course, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for i, crs := range repo.db.rows {
		if crs.ID == id {
			roster := make([]string, len(studentIDs))
			copy(roster, studentIDs)
			repo.db.rows[i].EnrolledStudents = roster
			return cloneCourse(repo.db.rows[i]), nil
		}
	}
	return course.Course{}, course.ErrNotFound
}

func (repo *courseRepository) DeleteCourse(id string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for i, crs := range repo.db.rows {
		if crs.ID == id {
			repo.db.rows = append(repo.db.rows[:i], repo.db.rows[i+1:]...)
			return nil
		}
	}
	return course.ErrNotFound
}
