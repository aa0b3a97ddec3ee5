package inmem

import (
	"github.com/meridianedu/portal/core/timetable"
)

type entryRepository struct {
	db *entryTable
}

func NewTimetableRepository(db *DB) timetable.Repository {
	return &entryRepository{db: db.timetable}
}

func (repo *entryRepository) CreateEntry(e timetable.Entry) (timetable.Entry, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.rows = append(repo.db.rows, e)
	return e, nil
}

func (repo *entryRepository) QueryAllEntries() ([]timetable.Entry, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	entries := make([]timetable.Entry, len(repo.db.rows))
	copy(entries, repo.db.rows)
	return entries, nil
}

func (repo *entryRepository) GetEntryByID(id string) (timetable.Entry, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, e := range repo.db.rows {
		if e.ID == id {
			return e, nil
		}
	}
	return timetable.Entry{}, timetable.ErrNotFound
}

func (repo *entryRepository) DeleteEntry(id string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for i, e := range repo.db.rows {
		if e.ID == id {
			repo.db.rows = append(repo.db.rows[:i], repo.db.rows[i+1:]...)
			return nil
		}
	}
	return timetable.ErrNotFound
}
