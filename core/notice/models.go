package notice

import (
	"github.com/meridianedu/portal/core"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Notice is a board posting. Author is a name snapshot taken when posted;
// Date is the posting day (ISO YYYY-MM-DD) and never changes. Notices do
// not expire.
type Notice struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Author     string   `json:"author"`
	AuthorID   string   `json:"author_id"`
	Date       string   `json:"date"`
	Priority   Priority `json:"priority"`
	Department string   `json:"department"`
}

// NewNotice contains information needed to post a Notice. Author and date
// are stamped from the acting teacher and the clock.
type NewNotice struct {
	Title      string   `json:"title" validate:"required"`
	Content    string   `json:"content" validate:"required"`
	Priority   Priority `json:"priority" validate:"required,priority"`
	Department string   `json:"department" validate:"required"`
}

func (nn *NewNotice) Validate() error {
	nn.Title = core.CleanString(nn.Title)
	nn.Content = core.CleanString(nn.Content)
	nn.Department = core.CleanString(nn.Department)
	return core.Validate.Struct(nn)
}

// NewID returns a fresh notice id ("n…").
func NewID() string {
	return core.NewID("n")
}
