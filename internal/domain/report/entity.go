package report

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending  = "pending"
	StatusResolved = "resolved"
	StatusRejected = "rejected"
)

type Report struct {
	ID          uuid.UUID `json:"id"`
	ReporterID  uuid.UUID `json:"reporter_id"`
	TargetID    string    `json:"target_id"`
	TargetType  string    `json:"target_type"`
	Reason      string    `json:"reason"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func (r Report) SearchFields() []string {
	return []string{r.Reason, r.Description, r.TargetType, r.TargetID}
}

func (r Report) CategoryField() string { return r.Status }

// Reports are not located anywhere; a location constraint excludes them.
func (r Report) LocationField() string { return "" }

func (r Report) YearField() string {
	if r.CreatedAt.IsZero() {
		return ""
	}
	return strconv.Itoa(r.CreatedAt.Year())
}

func (r Report) Created() time.Time { return r.CreatedAt }
