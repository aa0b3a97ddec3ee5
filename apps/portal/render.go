package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/meridianedu/portal/core/attendance"
	"github.com/meridianedu/portal/core/course"
	"github.com/meridianedu/portal/core/notice"
	"github.com/meridianedu/portal/core/timetable"
)

func renderCourses(courses []course.Course) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Code", "Name", "Teacher", "Department", "Credits", "Enrolled"})

	for _, crs := range courses {
		table.Append([]string{
			crs.ID,
			crs.Code,
			crs.Name,
			crs.Teacher,
			crs.Department,
			strconv.Itoa(crs.Credits),
			strconv.Itoa(len(crs.EnrolledStudents)),
		})
	}
	table.Render()
}

func renderEntries(entries []timetable.Entry) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Course", "Time", "Room", "Teacher"})

	for _, e := range entries {
		table.Append([]string{
			e.ID,
			fmt.Sprintf("%s (%s)", e.CourseName, e.CourseCode),
			e.StartTime + " - " + e.EndTime,
			e.Room,
			e.Teacher,
		})
	}
	table.Render()
}

// renderWeek prints the entries grouped by day, skipping empty days,
// each day ordered by start time.
func renderWeek(entries []timetable.Entry) {
	for _, day := range timetable.Days {
		dayEntries := timetable.On(entries, day)
		if len(dayEntries) == 0 {
			continue
		}
		color.Yellow("\n%s", day)
		renderEntries(dayEntries)
	}
}

func renderNotices(notices []notice.Notice) {
	for _, n := range notices {
		switch n.Priority {
		case notice.PriorityHigh:
			color.Red("\n[%s] %s (%s)", n.Priority, n.Title, n.ID)
		case notice.PriorityMedium:
			color.Yellow("\n[%s] %s (%s)", n.Priority, n.Title, n.ID)
		default:
			fmt.Printf("\n[%s] %s (%s)\n", n.Priority, n.Title, n.ID)
		}
		fmt.Printf("%s\n", n.Content)
		fmt.Printf("By %s · %s · %s\n", n.Author, n.Date, n.Department)
	}
}

func renderRecords(records []attendance.Record, courseLabel func(string) string) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Date", "Course", "Status"})

	for _, r := range records {
		table.Append([]string{r.Date, courseLabel(r.CourseID), string(r.Status)})
	}
	table.Render()
}
