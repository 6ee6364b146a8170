package dto

import (
	"time"

	"jobboard/internal/domain/company"
	"jobboard/internal/domain/jobpost"
	"jobboard/internal/domain/jobseeker"

	"github.com/google/uuid"
)

type CompanyResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Industry    string    `json:"industry"`
	Website     string    `json:"website"`
	FoundedYear string    `json:"founded_year"`
	CreatedAt   string    `json:"created_at"`
}

type JobSeekerResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Profession string    `json:"profession"`
	Bio        string    `json:"bio"`
	Location   string    `json:"location"`
	Skills     string    `json:"skills"`
	CreatedAt  string    `json:"created_at"`
}

type JobPostResponse struct {
	ID          uuid.UUID `json:"id"`
	CompanyID   uuid.UUID `json:"company_id"`
	Title       string    `json:"title"`
	CompanyName string    `json:"company_name"`
	Category    string    `json:"category"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	JobType     string    `json:"job_type"`
	Deadline    string    `json:"deadline"`
	PostedDate  string    `json:"posted_date"`
}

func NewCompanyResponse(c company.Company) CompanyResponse {
	return CompanyResponse{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		Location:    c.Location,
		Description: c.Description,
		Industry:    c.Industry,
		Website:     c.Website,
		FoundedYear: c.FoundedYear,
		CreatedAt:   formatTime(c.CreatedAt),
	}
}

func NewJobSeekerResponse(s jobseeker.JobSeeker) JobSeekerResponse {
	return JobSeekerResponse{
		ID:         s.ID,
		Name:       s.Name,
		Email:      s.Email,
		Profession: s.Profession,
		Bio:        s.Bio,
		Location:   s.Location,
		Skills:     s.Skills,
		CreatedAt:  formatTime(s.CreatedAt),
	}
}

func NewJobPostResponse(p jobpost.JobPost) JobPostResponse {
	return JobPostResponse{
		ID:          p.ID,
		CompanyID:   p.CompanyID,
		Title:       p.Title,
		CompanyName: p.CompanyName,
		Category:    p.Category,
		Location:    p.Location,
		Description: p.Description,
		JobType:     p.JobType,
		Deadline:    p.Deadline,
		PostedDate:  formatTime(p.CreatedAt),
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
