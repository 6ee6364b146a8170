package company

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

type Company struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Industry    string    `json:"industry"`
	Website     string    `json:"website"`
	FoundedYear string    `json:"founded_year"`
	CreatedAt   time.Time `json:"created_at"`
}

func (c Company) SearchFields() []string {
	return []string{c.Name, c.Location, c.Description, c.Industry}
}

func (c Company) CategoryField() string { return c.Industry }

func (c Company) LocationField() string { return c.Location }

func (c Company) YearField() string { return c.FoundedYear }

// FoundedYearString keeps the stored representation for a numeric founding year.
func FoundedYearString(year int) string {
	if year <= 0 {
		return ""
	}
	return strconv.Itoa(year)
}
