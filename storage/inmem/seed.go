package inmem

import (
	"github.com/meridianedu/portal/core/course"
	"github.com/meridianedu/portal/core/notice"
	"github.com/meridianedu/portal/core/timetable"
	"github.com/meridianedu/portal/core/user"
)

// seed loads the demo snapshot. The values are the portal's reference
// dataset and must not drift: tests and the demo walkthrough depend on
// them field for field.
func (db *DB) seed() {
	db.users.rows = []user.User{
		{ID: "s1", Name: "Alex Johnson", Email: "alex@meridian.edu", Role: user.RoleStudent, Department: "Computer Science"},
		{ID: "t1", Name: "Dr. Sarah Mitchell", Email: "sarah@meridian.edu", Role: user.RoleTeacher, Department: "Computer Science"},
		{ID: "t2", Name: "Prof. James Chen", Email: "james@meridian.edu", Role: user.RoleTeacher, Department: "Mathematics"},
	}

	db.courses.rows = []course.Course{
		{
			ID:                 "c1",
			Name:               "Data Structures & Algorithms",
			Code:               "CS201",
			Teacher:            "Dr. Sarah Mitchell",
			TeacherID:          "t1",
			Department:         "Computer Science",
			Credits:            4,
			EnrollmentPassword: "dsa2026",
			Description:        "Comprehensive study of fundamental data structures and algorithm design techniques.",
			EnrolledStudents:   []string{"s1"},
		},
		{
			ID:                 "c2",
			Name:               "Linear Algebra",
			Code:               "MATH301",
			Teacher:            "Prof. James Chen",
			TeacherID:          "t2",
			Department:         "Mathematics",
			Credits:            3,
			EnrollmentPassword: "linalg26",
			Description:        "Vectors, matrices, linear transformations, eigenvalues and eigenvectors.",
			EnrolledStudents:   []string{},
		},
		{
			ID:                 "c3",
			Name:               "Operating Systems",
			Code:               "CS305",
			Teacher:            "Dr. Sarah Mitchell",
			TeacherID:          "t1",
			Department:         "Computer Science",
			Credits:            4,
			EnrollmentPassword: "os2026",
			Description:        "Process management, memory management, file systems, and concurrency.",
			EnrolledStudents:   []string{"s1"},
		},
	}

	db.timetable.rows = []timetable.Entry{
		{ID: "tt1", CourseID: "c1", CourseName: "Data Structures & Algorithms", CourseCode: "CS201", Day: "Monday", StartTime: "09:00", EndTime: "10:30", Room: "Room 204", Teacher: "Dr. Sarah Mitchell"},
		{ID: "tt2", CourseID: "c3", CourseName: "Operating Systems", CourseCode: "CS305", Day: "Monday", StartTime: "11:00", EndTime: "12:30", Room: "Room 301", Teacher: "Dr. Sarah Mitchell"},
		{ID: "tt3", CourseID: "c2", CourseName: "Linear Algebra", CourseCode: "MATH301", Day: "Tuesday", StartTime: "10:00", EndTime: "11:30", Room: "Room 105", Teacher: "Prof. James Chen"},
		{ID: "tt4", CourseID: "c1", CourseName: "Data Structures & Algorithms", CourseCode: "CS201", Day: "Wednesday", StartTime: "09:00", EndTime: "10:30", Room: "Room 204", Teacher: "Dr. Sarah Mitchell"},
		{ID: "tt5", CourseID: "c3", CourseName: "Operating Systems", CourseCode: "CS305", Day: "Thursday", StartTime: "11:00", EndTime: "12:30", Room: "Room 301", Teacher: "Dr. Sarah Mitchell"},
		{ID: "tt6", CourseID: "c2", CourseName: "Linear Algebra", CourseCode: "MATH301", Day: "Friday", StartTime: "10:00", EndTime: "11:30", Room: "Room 105", Teacher: "Prof. James Chen"},
	}

	db.notices.rows = []notice.Notice{
		{
			ID:         "n1",
			Title:      "Mid-Semester Examinations Schedule",
			Content:    "Mid-semester examinations will be conducted from March 15 to March 22. Please check the examination portal for your individual schedule and room assignments.",
			Author:     "Dr. Sarah Mitchell",
			AuthorID:   "t1",
			Date:       "2026-02-14",
			Priority:   notice.PriorityHigh,
			Department: "Computer Science",
		},
		{
			ID:         "n2",
			Title:      "Guest Lecture on Machine Learning",
			Content:    "A guest lecture on 'Recent Advances in Machine Learning' will be held on February 20 at 2:00 PM in the Main Auditorium. All students are encouraged to attend.",
			Author:     "Prof. James Chen",
			AuthorID:   "t2",
			Date:       "2026-02-12",
			Priority:   notice.PriorityMedium,
			Department: "Mathematics",
		},
		{
			ID:         "n3",
			Title:      "Library Hours Extended",
			Content:    "The university library will remain open until 11:00 PM on weekdays during the examination period. Weekend hours will be 8:00 AM to 9:00 PM.",
			Author:     "Dr. Sarah Mitchell",
			AuthorID:   "t1",
			Date:       "2026-02-10",
			Priority:   notice.PriorityLow,
			Department: "Computer Science",
		},
	}

	// no seed attendance records
}
