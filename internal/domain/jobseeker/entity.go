package jobseeker

import (
	"time"

	"github.com/google/uuid"
)

type JobSeeker struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Profession string    `json:"profession"`
	Bio        string    `json:"bio"`
	Location   string    `json:"location"`
	Skills     string    `json:"skills"`
	CreatedAt  time.Time `json:"created_at"`
}

func (s JobSeeker) SearchFields() []string {
	return []string{s.Name, s.Email, s.Profession, s.Bio}
}

func (s JobSeeker) CategoryField() string { return s.Profession }

func (s JobSeeker) LocationField() string { return s.Location }

// Job seekers carry no year attribute, so any year bound excludes them.
func (s JobSeeker) YearField() string { return "" }
