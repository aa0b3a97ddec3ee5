package main

import (
	"bufio"
	"log"
	"os"

	"github.com/meridianedu/portal/core"
	"github.com/meridianedu/portal/core/attendance"
	"github.com/meridianedu/portal/core/course"
	"github.com/meridianedu/portal/core/notice"
	"github.com/meridianedu/portal/core/session"
	"github.com/meridianedu/portal/core/timetable"
	"github.com/meridianedu/portal/core/user"
	logsvc "github.com/meridianedu/portal/services/logger"
	"github.com/meridianedu/portal/storage/inmem"
)

func main() {
	defer os.Exit(0)

	conf := core.NewConfig()
	std := log.New(os.Stderr, "PORTAL : ", log.LstdFlags)
	logger := logsvc.NewConsoleLogger(std, conf)

	// set up the store; everything resets to the seed snapshot on restart
	var db *inmem.DB
	var err error
	if conf.SeedDemoData {
		db, err = inmem.OpenSeeded()
	} else {
		db, err = inmem.Open()
	}
	if err != nil {
		logger.Fatal("opening store", err)
	}

	crsRepo := inmem.NewCourseRepository(db)

	cli := &commandLine{
		conf:       conf,
		logger:     logger,
		in:         bufio.NewScanner(os.Stdin),
		users:      user.NewService(inmem.NewUserRepository(db), conf),
		courses:    course.NewService(crsRepo),
		timetable:  timetable.NewService(inmem.NewTimetableRepository(db), crsRepo),
		notices:    notice.NewService(inmem.NewNoticeRepository(db)),
		attendance: attendance.NewService(inmem.NewAttendanceRepository(db), crsRepo),
	}
	cli.session = session.New(cli.users)
	cli.run()
}
