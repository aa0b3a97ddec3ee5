// Package inmem is the portal's only storage backend: session-lifetime
// tables held in memory. Nothing is durable; reopening the DB resets
// everything to the seed snapshot.
//
// Tables are slice-backed because storage order is part of the contract:
// notices live most-recent-first and the seed collections are observed in
// their seeded order.
package inmem

import (
	"sync"

	"github.com/meridianedu/portal/core/attendance"
	"github.com/meridianedu/portal/core/course"
	"github.com/meridianedu/portal/core/notice"
	"github.com/meridianedu/portal/core/timetable"
	"github.com/meridianedu/portal/core/user"
)

type (
	DB struct {
		users      *userTable
		courses    *courseTable
		timetable  *entryTable
		notices    *noticeTable
		attendance *recordTable
	}

	userTable struct {
		rows  []user.User
		mutex sync.RWMutex
	}
	courseTable struct {
		rows  []course.Course
		mutex sync.RWMutex
	}
	entryTable struct {
		rows  []timetable.Entry
		mutex sync.RWMutex
	}
	noticeTable struct {
		rows  []notice.Notice
		mutex sync.RWMutex
	}
	recordTable struct {
		rows  []attendance.Record
		mutex sync.RWMutex
	}
)

// Open returns an empty DB.
func Open() (*DB, error) {
	db := &DB{
		users:      new(userTable),
		courses:    new(courseTable),
		timetable:  new(entryTable),
		notices:    new(noticeTable),
		attendance: new(recordTable),
	}
	return db, nil
}

// OpenSeeded returns a DB loaded with the demo snapshot.
func OpenSeeded() (*DB, error) {
	db, err := Open()
	if err != nil {
		return nil, err
	}
	db.seed()
	return db, nil
}
