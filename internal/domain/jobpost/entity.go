package jobpost

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

type JobPost struct {
	ID          uuid.UUID `json:"id"`
	CompanyID   uuid.UUID `json:"company_id"`
	Title       string    `json:"title"`
	CompanyName string    `json:"company_name"`
	Category    string    `json:"category"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	JobType     string    `json:"job_type"`
	Deadline    string    `json:"deadline"`
	CreatedAt   time.Time `json:"created_at"`
}

func (p JobPost) SearchFields() []string {
	return []string{p.Title, p.CompanyName, p.Description, p.Category}
}

func (p JobPost) CategoryField() string { return p.Category }

func (p JobPost) LocationField() string { return p.Location }

// YearField is the posting year.
func (p JobPost) YearField() string {
	if p.CreatedAt.IsZero() {
		return ""
	}
	return strconv.Itoa(p.CreatedAt.Year())
}
