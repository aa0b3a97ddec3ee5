package inmem

import (
	"github.com/meridianedu/portal/core/attendance"
)

type recordRepository struct {
	db *recordTable
}

func NewAttendanceRepository(db *DB) attendance.Repository {
	return &recordRepository{db: db.attendance}
}

func (repo *recordRepository) CreateRecord(r attendance.Record) (attendance.Record, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.rows = append(repo.db.rows, r)
	return r, nil
}

func (repo *recordRepository) QueryAllRecords() ([]attendance.Record, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	records := make([]attendance.Record, len(repo.db.rows))
	copy(records, repo.db.rows)
	return records, nil
}
