package main

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/meridianedu/portal/core/attendance"
	"github.com/meridianedu/portal/core/course"
	"github.com/meridianedu/portal/core/notice"
	"github.com/meridianedu/portal/core/timetable"
	"github.com/meridianedu/portal/core/user"
)

func (cli *commandLine) teacherMenu(usr user.User) {
	for {
		color.Cyan("\n--- Teacher Dashboard · %s ---", usr.Name)
		fmt.Println("1. My courses")
		fmt.Println("2. Create course")
		fmt.Println("3. Delete course")
		fmt.Println("4. My timetable")
		fmt.Println("5. Add timetable entry")
		fmt.Println("6. Delete timetable entry")
		fmt.Println("7. My notices")
		fmt.Println("8. Post notice")
		fmt.Println("9. Delete notice")
		fmt.Println("10. Mark attendance")
		fmt.Println("11. Logout")

		switch cli.readChoice() {
		case "1":
			cli.showOwnedCourses(usr)
		case "2":
			cli.createCourse(usr)
		case "3":
			cli.deleteCourse(usr)
		case "4":
			cli.showTeacherTimetable(usr)
		case "5":
			cli.addEntry(usr)
		case "6":
			cli.deleteEntry(usr)
		case "7":
			cli.showOwnNotices(usr)
		case "8":
			cli.postNotice(usr)
		case "9":
			cli.deleteNotice(usr)
		case "10":
			cli.markAttendance(usr)
		case "11":
			return
		default:
			color.Red("Invalid choice. Please try again.")
		}
	}
}

func (cli *commandLine) showOwnedCourses(usr user.User) {
	courses, err := cli.courses.OwnedBy(usr.ID)
	if err != nil {
		cli.printErr(err)
		return
	}
	color.Yellow("\nMy Courses")
	if len(courses) == 0 {
		fmt.Println("You have not created any course yet.")
		return
	}
	renderCourses(courses)
}

func (cli *commandLine) createCourse(usr user.User) {
	nc := course.NewCourse{
		Name:               cli.readLine("Course name: "),
		Code:               cli.readLine("Course code: "),
		Department:         cli.readLine("Department: "),
		Credits:            cli.readInt("Credits: "),
		EnrollmentPassword: cli.readLine("Enrollment password: "),
		Description:        cli.readLine("Description: "),
	}
	crs, err := cli.courses.Create(usr, nc)
	if err != nil {
		cli.printErr(err)
		return
	}
	color.Green("Course %s created (id %s).", crs.Code, crs.ID)
}

func (cli *commandLine) deleteCourse(usr user.User) {
	id := cli.readLine("Course id: ")
	if err := cli.courses.Delete(usr, id); err != nil {
		cli.printErr(err)
		return
	}
	color.Green("Course deleted.")
}

func (cli *commandLine) showTeacherTimetable(usr user.User) {
	entries, err := cli.timetable.ForTeacher(usr.ID)
	if err != nil {
		cli.printErr(err)
		return
	}
	renderWeek(entries)
}

func (cli *commandLine) addEntry(usr user.User) {
	cli.showOwnedCourses(usr)
	ne := timetable.NewEntry{
		CourseID:  cli.readLine("Course id: "),
		Day:       cli.readLine("Day (Monday..Saturday): "),
		StartTime: cli.readLine("Start time (HH:MM): "),
		EndTime:   cli.readLine("End time (HH:MM): "),
		Room:      cli.readLine("Room: "),
	}
	e, err := cli.timetable.Add(usr, ne)
	if err != nil {
		cli.printErr(err)
		return
	}
	color.Green("Entry %s added for %s.", e.ID, e.CourseCode)
}

func (cli *commandLine) deleteEntry(usr user.User) {
	id := cli.readLine("Entry id: ")
	if err := cli.timetable.Delete(usr, id); err != nil {
		cli.printErr(err)
		return
	}
	color.Green("Entry deleted.")
}

func (cli *commandLine) showOwnNotices(usr user.User) {
	notices, err := cli.notices.AuthoredBy(usr.ID)
	if err != nil {
		cli.printErr(err)
		return
	}
	color.Yellow("\nMy Notices")
	if len(notices) == 0 {
		fmt.Println("You have not posted any notice yet.")
		return
	}
	renderNotices(notices)
}

func (cli *commandLine) postNotice(usr user.User) {
	nn := notice.NewNotice{
		Title:      cli.readLine("Title: "),
		Content:    cli.readLine("Content: "),
		Priority:   notice.Priority(cli.readLine("Priority (low/medium/high): ")),
		Department: cli.readLine("Department: "),
	}
	n, err := cli.notices.Post(usr, nn)
	if err != nil {
		cli.printErr(err)
		return
	}
	color.Green("Notice %s posted.", n.ID)
}

func (cli *commandLine) deleteNotice(usr user.User) {
	id := cli.readLine("Notice id: ")
	if err := cli.notices.Delete(usr, id); err != nil {
		cli.printErr(err)
		return
	}
	color.Green("Notice deleted.")
}

func (cli *commandLine) markAttendance(usr user.User) {
	cli.showOwnedCourses(usr)
	nr := attendance.NewRecord{
		CourseID:  cli.readLine("Course id: "),
		StudentID: cli.readLine("Student id: "),
		Status:    attendance.Status(cli.readLine("Status (present/absent/late): ")),
	}
	r, err := cli.attendance.Mark(usr, nr)
	if err != nil {
		cli.printErr(err)
		return
	}
	color.Green("Marked %s %s for %s.", r.StudentID, r.Status, r.Date)
}
