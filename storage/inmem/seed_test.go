package inmem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianedu/portal/core/notice"
	"github.com/meridianedu/portal/core/user"
)

func TestOpenSeeded(t *testing.T) {
	db, err := OpenSeeded()
	require.NoError(t, err)

	users, err := NewUserRepository(db).QueryAllUsers()
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "s1", users[0].ID)
	assert.Equal(t, "Alex Johnson", users[0].Name)
	assert.Equal(t, user.RoleStudent, users[0].Role)
	assert.Equal(t, user.RoleTeacher, users[1].Role)
	assert.Equal(t, "james@meridian.edu", users[2].Email)

	courses, err := NewCourseRepository(db).QueryAllCourses()
	require.NoError(t, err)
	require.Len(t, courses, 3)
	assert.Equal(t, "c1", courses[0].ID)
	assert.Equal(t, "CS201", courses[0].Code)
	assert.Equal(t, []string{"s1"}, courses[0].EnrolledStudents)
	assert.Equal(t, "t1", courses[0].TeacherID)
	assert.Empty(t, courses[1].EnrolledStudents)
	assert.Equal(t, []string{"s1"}, courses[2].EnrolledStudents)

	entries, err := NewTimetableRepository(db).QueryAllEntries()
	require.NoError(t, err)
	require.Len(t, entries, 6)
	assert.Equal(t, "tt1", entries[0].ID)
	assert.Equal(t, "Monday", entries[0].Day)
	assert.Equal(t, "09:00", entries[0].StartTime)

	notices, err := NewNoticeRepository(db).QueryAllNotices()
	require.NoError(t, err)
	require.Len(t, notices, 3)
	assert.Equal(t, "n1", notices[0].ID)
	assert.Equal(t, notice.PriorityHigh, notices[0].Priority)
	assert.Equal(t, "2026-02-14", notices[0].Date)

	records, err := NewAttendanceRepository(db).QueryAllRecords()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestOpenIsEmpty(t *testing.T) {
	db, err := Open()
	require.NoError(t, err)

	users, err := NewUserRepository(db).QueryAllUsers()
	require.NoError(t, err)
	assert.Empty(t, users)

	courses, err := NewCourseRepository(db).QueryAllCourses()
	require.NoError(t, err)
	assert.Empty(t, courses)
}

// mutating a returned course must not leak into the table
func TestCourseReadsAreCopies(t *testing.T) {
	db, err := OpenSeeded()
	require.NoError(t, err)
	repo := NewCourseRepository(db)

	crs, err := repo.GetCourseByID("c1")
	require.NoError(t, err)
	crs.EnrolledStudents[0] = "intruder"

	again, err := repo.GetCourseByID("c1")
	require.NoError(t, err)
	assert.Equal(t, []string{"s1"}, again.EnrolledStudents)
}
