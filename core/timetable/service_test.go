package timetable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianedu/portal/core"
	"github.com/meridianedu/portal/core/course"
	"github.com/meridianedu/portal/core/timetable"
	"github.com/meridianedu/portal/core/user"
	"github.com/meridianedu/portal/storage/inmem"
)

var (
	alex  = user.User{ID: "s1", Name: "Alex Johnson", Role: user.RoleStudent}
	sarah = user.User{ID: "t1", Name: "Dr. Sarah Mitchell", Role: user.RoleTeacher}
	james = user.User{ID: "t2", Name: "Prof. James Chen", Role: user.RoleTeacher}
)

func setup(t *testing.T) (*timetable.Service, *course.Service) {
	t.Helper()
	db, err := inmem.OpenSeeded()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	crsRepo := inmem.NewCourseRepository(db)
	return timetable.NewService(inmem.NewTimetableRepository(db), crsRepo), course.NewService(crsRepo)
}

func ids(entries []timetable.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID)
	}
	return out
}

func TestService_ForStudent(t *testing.T) {
	svc, _ := setup(t)

	// s1 is enrolled in c1 and c3 → tt1, tt2, tt4, tt5
	entries, err := svc.ForStudent("s1")
	require.NoError(t, err)
	assert.Equal(t, []string{"tt1", "tt2", "tt4", "tt5"}, ids(entries))

	// unenrolled student sees nothing
	entries, err = svc.ForStudent("s2")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestOn_ordering(t *testing.T) {
	svc, _ := setup(t)

	entries, err := svc.ForStudent("s1")
	require.NoError(t, err)

	monday := timetable.On(entries, "Monday")
	assert.Equal(t, []string{"tt1", "tt2"}, ids(monday), "ascending start time")

	assert.Empty(t, timetable.On(entries, "Saturday"))
}

func TestService_ForTeacher(t *testing.T) {
	svc, _ := setup(t)

	entries, err := svc.ForTeacher("t2")
	require.NoError(t, err)
	assert.Equal(t, []string{"tt3", "tt6"}, ids(entries))
}

func TestService_Add(t *testing.T) {
	svc, _ := setup(t)

	ne := timetable.NewEntry{
		CourseID:  "c1",
		Day:       "Saturday",
		StartTime: "14:00",
		EndTime:   "15:30",
		Room:      "Lab 2",
	}
	e, err := svc.Add(sarah, ne)
	require.NoError(t, err)

	// snapshot fields are denormalized from the course at creation time
	assert.Equal(t, "Data Structures & Algorithms", e.CourseName)
	assert.Equal(t, "CS201", e.CourseCode)
	assert.Equal(t, "Dr. Sarah Mitchell", e.Teacher)
	assert.NotEmpty(t, e.ID)

	all, err := svc.QueryAll()
	require.NoError(t, err)
	assert.Len(t, all, 7)
}

func TestService_Add_errors(t *testing.T) {
	svc, _ := setup(t)

	ok := timetable.NewEntry{CourseID: "c1", Day: "Monday", StartTime: "08:00", EndTime: "09:00", Room: "R1"}

	tests := []struct {
		name    string
		actor   user.User
		mutate  func(*timetable.NewEntry)
		wantErr error
	}{
		{name: "student actor", actor: alex, wantErr: core.ErrNotAuthorized},
		{name: "anonymous actor", actor: user.User{}, wantErr: core.ErrNotAuthorized},
		{name: "not the owner", actor: james, wantErr: core.ErrNotAuthorized},
		{name: "unknown course", actor: sarah, mutate: func(ne *timetable.NewEntry) { ne.CourseID = "c404" }, wantErr: course.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ne := ok
			if tt.mutate != nil {
				tt.mutate(&ne)
			}
			_, err := svc.Add(tt.actor, ne)
			assert.Equal(t, tt.wantErr, err)
		})
	}

	// validation failures
	for name, mutate := range map[string]func(*timetable.NewEntry){
		"bad day":       func(ne *timetable.NewEntry) { ne.Day = "Sunday" },
		"bad time":      func(ne *timetable.NewEntry) { ne.StartTime = "9am" },
		"unpadded time": func(ne *timetable.NewEntry) { ne.EndTime = "9:00" },
		"missing room":  func(ne *timetable.NewEntry) { ne.Room = "" },
	} {
		t.Run(name, func(t *testing.T) {
			ne := ok
			mutate(&ne)
			_, err := svc.Add(sarah, ne)
			assert.Error(t, err)
		})
	}
}

func TestService_Delete_ownership(t *testing.T) {
	svc, _ := setup(t)

	// tt1 references c1, owned by t1
	assert.Equal(t, core.ErrNotAuthorized, svc.Delete(james, "tt1"))
	assert.Equal(t, core.ErrNotAuthorized, svc.Delete(alex, "tt1"))

	require.NoError(t, svc.Delete(sarah, "tt1"))
	assert.Equal(t, timetable.ErrNotFound, svc.Delete(sarah, "tt1"))
}

func TestService_Delete_orphanedEntry(t *testing.T) {
	svc, courses := setup(t)

	// deleting a course does not cascade; its entries become orphans
	require.NoError(t, courses.Delete(sarah, "c1"))

	entries, err := svc.QueryAll()
	require.NoError(t, err)
	assert.Len(t, entries, 6, "entries survive course deletion")

	// ownership of orphans falls back to the snapshot teacher name
	assert.Equal(t, core.ErrNotAuthorized, svc.Delete(james, "tt1"))
	require.NoError(t, svc.Delete(sarah, "tt1"))
}
