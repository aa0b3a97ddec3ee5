package main

import (
	"bufio"
	"fmt"
	"strconv"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/meridianedu/portal/core"
	"github.com/meridianedu/portal/core/attendance"
	"github.com/meridianedu/portal/core/course"
	"github.com/meridianedu/portal/core/notice"
	"github.com/meridianedu/portal/core/session"
	"github.com/meridianedu/portal/core/timetable"
	"github.com/meridianedu/portal/core/user"
)

var readPasswordFunc = term.ReadPassword // mockable

type commandLine struct {
	conf   *core.Config
	logger core.Logger
	in     *bufio.Scanner

	session    *session.Session
	users      *user.Service
	courses    *course.Service
	timetable  *timetable.Service
	notices    *notice.Service
	attendance *attendance.Service
}

func (cli *commandLine) run() {
	for {
		color.Cyan("\n=== %s ===", cli.conf.AppName)
		fmt.Println("1. Login")
		fmt.Println("2. Sign up")
		fmt.Println("3. Exit")

		switch cli.readChoice() {
		case "1":
			cli.login()
		case "2":
			cli.signup()
		case "3":
			color.Green("Goodbye!")
			return
		default:
			color.Red("Invalid choice. Please try again.")
		}
	}
}

func (cli *commandLine) login() {
	creds := user.Credentials{
		Role:     cli.readRole(),
		Email:    cli.readLine("Email: "),
		Password: cli.readPassword("Password: "),
	}

	time.Sleep(cli.conf.LoginDelay) // perceived-latency UX, nothing more

	usr, err := cli.session.Login(creds)
	if err != nil {
		cli.printErr(err)
		return
	}
	color.Green("Welcome back, %s!", usr.Name)
	cli.dashboard(usr)
}

func (cli *commandLine) signup() {
	nu := user.NewUser{
		Role:       cli.readRole(),
		Name:       cli.readLine("Full name: "),
		Email:      cli.readLine("Email: "),
		Department: cli.readLine("Department: "),
		Password:   cli.readPassword("Password: "),
	}

	time.Sleep(cli.conf.LoginDelay)

	usr, err := cli.session.Signup(nu)
	if err != nil {
		cli.printErr(err)
		return
	}
	color.Green("Account created. Welcome, %s!", usr.Name)
	cli.dashboard(usr)
}

// dashboard dispatches on the closed role set; the session stays
// authenticated until the user logs out.
func (cli *commandLine) dashboard(usr user.User) {
	defer cli.session.Logout()

	switch usr.Role {
	case user.RoleStudent:
		cli.studentMenu(usr)
	case user.RoleTeacher:
		cli.teacherMenu(usr)
	}
}

// prompts

func (cli *commandLine) readLine(prompt string) string {
	fmt.Print(prompt)
	if !cli.in.Scan() {
		return ""
	}
	return core.CleanString(cli.in.Text())
}

func (cli *commandLine) readChoice() string {
	return cli.readLine("\nEnter choice: ")
}

func (cli *commandLine) readPassword(prompt string) string {
	fmt.Print(prompt)
	pwd, err := readPasswordFunc(syscall.Stdin)
	fmt.Println()
	if err != nil {
		// not a terminal (piped input); fall back to a plain read
		return cli.readLine("")
	}
	return string(pwd)
}

func (cli *commandLine) readRole() user.Role {
	for {
		choice := cli.readLine("Role (1. Student / 2. Teacher): ")
		switch choice {
		case "1":
			return user.RoleStudent
		case "2":
			return user.RoleTeacher
		}
		color.Red("Invalid choice. Please try again.")
	}
}

func (cli *commandLine) readInt(prompt string) int {
	for {
		n, err := strconv.Atoi(cli.readLine(prompt))
		if err == nil {
			return n
		}
		color.Red("Please enter a number.")
	}
}

// printErr renders any operation error as a user-facing message; all of
// them are recoverable input errors, so there is no retry or fatal path.
func (cli *commandLine) printErr(err error) {
	switch origErr := errors.Cause(err).(type) {
	case validator.ValidationErrors:
		for _, vErr := range origErr {
			color.Red("%s: %s", vErr.Field(), vErr.Translate(core.Translator))
		}
	case *core.ValidationError:
		if len(origErr.Fields) > 0 {
			for _, fErr := range origErr.Fields {
				color.Red("%s: %s", fErr.Field, fErr.Error)
			}
			return
		}
		color.Red(origErr.Error())
	default:
		color.Red(err.Error())
	}
}
