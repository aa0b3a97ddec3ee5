package main

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/meridianedu/portal/core/user"
)

func (cli *commandLine) studentMenu(usr user.User) {
	for {
		color.Cyan("\n--- Student Dashboard · %s ---", usr.Name)
		fmt.Println("1. Today's classes")
		fmt.Println("2. My courses")
		fmt.Println("3. Enroll in a course")
		fmt.Println("4. Unenroll from a course")
		fmt.Println("5. Weekly timetable")
		fmt.Println("6. Notice board")
		fmt.Println("7. Attendance")
		fmt.Println("8. Logout")

		switch cli.readChoice() {
		case "1":
			cli.showToday(usr)
		case "2":
			cli.showEnrolledCourses(usr)
		case "3":
			cli.enroll(usr)
		case "4":
			cli.unenroll(usr)
		case "5":
			cli.showStudentTimetable(usr)
		case "6":
			cli.showNotices()
		case "7":
			cli.showAttendance(usr)
		case "8":
			return
		default:
			color.Red("Invalid choice. Please try again.")
		}
	}
}

func (cli *commandLine) showToday(usr user.User) {
	entries, err := cli.timetable.TodayFor(usr.ID)
	if err != nil {
		cli.printErr(err)
		return
	}
	urgent, err := cli.notices.HighPriority()
	if err != nil {
		cli.printErr(err)
		return
	}

	color.Yellow("\nToday's Classes")
	if len(entries) == 0 {
		fmt.Println("No classes today.")
	} else {
		renderEntries(entries)
	}
	if len(urgent) > 0 {
		color.Yellow("\nHigh-Priority Notices")
		renderNotices(urgent)
	}
}

func (cli *commandLine) showEnrolledCourses(usr user.User) {
	courses, err := cli.courses.EnrolledBy(usr.ID)
	if err != nil {
		cli.printErr(err)
		return
	}
	color.Yellow("\nMy Courses")
	if len(courses) == 0 {
		fmt.Println("You are not enrolled in any course yet.")
		return
	}
	renderCourses(courses)
}

func (cli *commandLine) enroll(usr user.User) {
	available, err := cli.courses.AvailableTo(usr.ID)
	if err != nil {
		cli.printErr(err)
		return
	}
	if len(available) == 0 {
		fmt.Println("No courses available.")
		return
	}
	color.Yellow("\nAvailable Courses")
	renderCourses(available)

	id := cli.readLine("Course id: ")
	pwd := cli.readPassword("Enrollment password: ")
	if err := cli.courses.Enroll(usr, id, pwd); err != nil {
		cli.printErr(err)
		return
	}
	color.Green("Successfully enrolled.")
}

func (cli *commandLine) unenroll(usr user.User) {
	id := cli.readLine("Course id: ")
	if err := cli.courses.Unenroll(usr, id); err != nil {
		cli.printErr(err)
		return
	}
	color.Green("Done.")
}

func (cli *commandLine) showStudentTimetable(usr user.User) {
	entries, err := cli.timetable.ForStudent(usr.ID)
	if err != nil {
		cli.printErr(err)
		return
	}
	renderWeek(entries)
}

func (cli *commandLine) showNotices() {
	notices, err := cli.notices.QueryAll()
	if err != nil {
		cli.printErr(err)
		return
	}
	color.Yellow("\nNotice Board")
	if len(notices) == 0 {
		fmt.Println("No notices.")
		return
	}
	renderNotices(notices)
}

func (cli *commandLine) showAttendance(usr user.User) {
	stats, err := cli.attendance.StatsFor(usr.ID)
	if err != nil {
		cli.printErr(err)
		return
	}
	records, err := cli.attendance.ForStudent(usr.ID)
	if err != nil {
		cli.printErr(err)
		return
	}

	color.Yellow("\nAttendance")
	fmt.Printf("Present: %d  Absent: %d  Late: %d  Rate: %d%%\n",
		stats.Present, stats.Absent, stats.Late, stats.Rate)
	if len(records) == 0 {
		fmt.Println("No attendance records yet.")
		return
	}
	renderRecords(records, cli.courseLabel)
}

// courseLabel resolves a course id to "CODE - Name"; deleted courses keep
// their records, so fall back to a placeholder.
func (cli *commandLine) courseLabel(courseID string) string {
	crs, err := cli.courses.GetByID(courseID)
	if err != nil {
		return "Unknown Course"
	}
	return crs.Code + " - " + crs.Name
}
