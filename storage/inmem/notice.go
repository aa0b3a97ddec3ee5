package inmem

import (
	"github.com/meridianedu/portal/core/notice"
)

type noticeRepository struct {
	db *noticeTable
}

func NewNoticeRepository(db *DB) notice.Repository {
	return &noticeRepository{db: db.notices}
}

// CreateNotice prepends so the board stays most-recent-first without any
// read-time sorting.
func (repo *noticeRepository) CreateNotice(n notice.Notice) (notice.Notice, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.rows = append([]notice.Notice{n}, repo.db.rows...)
	return n, nil
}

func (repo *noticeRepository) QueryAllNotices() ([]notice.Notice, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	notices := make([]notice.Notice, len(repo.db.rows))
	copy(notices, repo.db.rows)
	return notices, nil
}

func (repo *noticeRepository) GetNoticeByID(id string) (notice.Notice, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, n := range repo.db.rows {
		if n.ID == id {
			return n, nil
		}
	}
	return notice.Notice{}, notice.ErrNotFound
}

func (repo *noticeRepository) DeleteNotice(id string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for i, n := range repo.db.rows {
		if n.ID == id {
			repo.db.rows = append(repo.db.rows[:i], repo.db.rows[i+1:]...)
			return nil
		}
	}
	return notice.ErrNotFound
}
