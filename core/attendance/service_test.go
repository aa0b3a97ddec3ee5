package attendance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianedu/portal/core"
	"github.com/meridianedu/portal/core/attendance"
	"github.com/meridianedu/portal/core/course"
	"github.com/meridianedu/portal/core/user"
	"github.com/meridianedu/portal/storage/inmem"
)

var (
	alex  = user.User{ID: "s1", Name: "Alex Johnson", Role: user.RoleStudent}
	sarah = user.User{ID: "t1", Name: "Dr. Sarah Mitchell", Role: user.RoleTeacher}
	james = user.User{ID: "t2", Name: "Prof. James Chen", Role: user.RoleTeacher}
)

func setup(t *testing.T) *attendance.Service {
	t.Helper()
	db, err := inmem.OpenSeeded()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	return attendance.NewService(inmem.NewAttendanceRepository(db), inmem.NewCourseRepository(db))
}

func TestService_Mark(t *testing.T) {
	svc := setup(t)

	r, err := svc.Mark(sarah, attendance.NewRecord{StudentID: "s1", CourseID: "c1", Status: attendance.StatusPresent})
	require.NoError(t, err)
	assert.NotEmpty(t, r.ID)
	assert.Equal(t, attendance.StatusPresent, r.Status)
	assert.NotEmpty(t, r.Date)

	records, err := svc.ForStudent("s1")
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestService_Mark_errors(t *testing.T) {
	svc := setup(t)

	tests := []struct {
		name    string
		actor   user.User
		nr      attendance.NewRecord
		wantErr error
	}{
		{
			name:    "student actor",
			actor:   alex,
			nr:      attendance.NewRecord{StudentID: "s1", CourseID: "c1", Status: attendance.StatusPresent},
			wantErr: core.ErrNotAuthorized,
		},
		{
			name:    "not the owner",
			actor:   james,
			nr:      attendance.NewRecord{StudentID: "s1", CourseID: "c1", Status: attendance.StatusPresent},
			wantErr: core.ErrNotAuthorized,
		},
		{
			name:    "unknown course",
			actor:   sarah,
			nr:      attendance.NewRecord{StudentID: "s1", CourseID: "c404", Status: attendance.StatusPresent},
			wantErr: course.ErrNotFound,
		},
		{
			name:    "student not enrolled",
			actor:   james,
			nr:      attendance.NewRecord{StudentID: "s1", CourseID: "c2", Status: attendance.StatusPresent},
			wantErr: attendance.ErrNotEnrolled,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Mark(tt.actor, tt.nr)
			assert.Equal(t, tt.wantErr, err)
		})
	}

	_, err := svc.Mark(sarah, attendance.NewRecord{StudentID: "s1", CourseID: "c1", Status: "sick"})
	assert.Error(t, err, "unknown status should fail validation")
}

func TestService_StatsFor(t *testing.T) {
	svc := setup(t)

	stats, err := svc.StatsFor("s1")
	require.NoError(t, err)
	assert.Equal(t, attendance.Stats{}, stats, "no records yet")

	for _, status := range []attendance.Status{attendance.StatusPresent, attendance.StatusLate, attendance.StatusAbsent} {
		_, err := svc.Mark(sarah, attendance.NewRecord{StudentID: "s1", CourseID: "c1", Status: status})
		require.NoError(t, err)
	}

	stats, err = svc.StatsFor("s1")
	require.NoError(t, err)
	// late counts as attended: round(100 * 2/3) = 67
	assert.Equal(t, attendance.Stats{Total: 3, Present: 1, Absent: 1, Late: 1, Rate: 67}, stats)

	// other students are unaffected
	stats, err = svc.StatsFor("s2")
	require.NoError(t, err)
	assert.Zero(t, stats.Total)
}
