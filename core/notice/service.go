package notice

import (
	"errors"
	"time"

	"github.com/meridianedu/portal/core"
	"github.com/meridianedu/portal/core/user"
)

var (
	nowFunc = time.Now // mockable

	// errors
	ErrNotFound = errors.New("notice not found")
)

type (
	Repository interface {
		// CreateNotice prepends: storage order is most-recent-first and
		// reads never re-sort.
		CreateNotice(n Notice) (Notice, error)
		QueryAllNotices() ([]Notice, error)
		GetNoticeByID(id string) (Notice, error)
		DeleteNotice(id string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Post publishes a notice authored by the acting teacher, dated today
// (time of day discarded).
func (svc *Service) Post(actor user.User, nn NewNotice) (Notice, error) {
	if !actor.IsTeacher() {
		return Notice{}, core.ErrNotAuthorized
	}
	if err := nn.Validate(); err != nil {
		return Notice{}, err
	}
	n := Notice{
		ID:         NewID(),
		Title:      nn.Title,
		Content:    nn.Content,
		Author:     actor.Name,
		AuthorID:   actor.ID,
		Date:       nowFunc().UTC().Format("2006-01-02"),
		Priority:   nn.Priority,
		Department: nn.Department,
	}
	return svc.repo.CreateNotice(n)
}

// Delete removes a notice; only its author may do so.
func (svc *Service) Delete(actor user.User, id string) error {
	n, err := svc.repo.GetNoticeByID(id)
	if err != nil {
		return err
	}
	if n.AuthorID != actor.ID {
		return core.ErrNotAuthorized
	}
	return svc.repo.DeleteNotice(id)
}

func (svc *Service) QueryAll() ([]Notice, error) {
	return svc.repo.QueryAllNotices()
}

// HighPriority returns the notices flagged high, in board order.
func (svc *Service) HighPriority() ([]Notice, error) {
	return svc.filter(func(n Notice) bool { return n.Priority == PriorityHigh })
}

// AuthoredBy returns the notices posted by the teacher, in board order.
func (svc *Service) AuthoredBy(teacherID string) ([]Notice, error) {
	return svc.filter(func(n Notice) bool { return n.AuthorID == teacherID })
}

func (svc *Service) filter(keep func(Notice) bool) ([]Notice, error) {
	all, err := svc.repo.QueryAllNotices()
	if err != nil {
		return nil, err
	}
	notices := make([]Notice, 0, len(all))
	for _, n := range all {
		if keep(n) {
			notices = append(notices, n)
		}
	}
	return notices, nil
}
