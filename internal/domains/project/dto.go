package project

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"portfolio-backend/internal/infrastructure/storage"
)

// UpsertRequest is the admin payload for creating or updating a
// project. The slug is derived from the title, never accepted from the
// client. Dates are ISO "2006-01-02".
type UpsertRequest struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	ShortDescription string `json:"short_description"`
	Category         string `json:"category"`
	Status           string `json:"status"`
	GithubURL        string `json:"github_url"`
	LiveURL          string `json:"live_url"`
	DemoURL          string `json:"demo_url"`
	Image            string `json:"image"`
	Technologies     string `json:"technologies"`
	IsFeatured       bool   `json:"is_featured"`
	IsCompleted      bool   `json:"is_completed"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
}

func (r UpsertRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Description, validation.Required),
		validation.Field(&r.Category,
			validation.Required,
			validation.In(CategoryWeb, CategoryMobile, CategoryDesktop,
				CategoryAPI, CategoryLibrary, CategoryOther),
		),
		validation.Field(&r.Status,
			validation.In(StatusInProgress, StatusCompleted, StatusArchived),
		),
		validation.Field(&r.StartDate, validation.Date(dateLayout)),
		validation.Field(&r.EndDate,
			validation.Date(dateLayout),
			validation.By(r.endNotBeforeStart),
		),
	)
}

func (r UpsertRequest) endNotBeforeStart(interface{}) error {
	if r.StartDate == "" || r.EndDate == "" {
		return nil
	}
	start, startErr := time.Parse(dateLayout, r.StartDate)
	end, endErr := time.Parse(dateLayout, r.EndDate)
	if startErr != nil || endErr != nil {
		return nil
	}
	if end.Before(start) {
		return errors.New("must not be before start_date")
	}
	return nil
}

type Response struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	Slug             string    `json:"slug"`
	Description      string    `json:"description"`
	ShortDescription string    `json:"short_description,omitempty"`
	Category         string    `json:"category"`
	Status           string    `json:"status"`
	GithubURL        string    `json:"github_url,omitempty"`
	LiveURL          string    `json:"live_url,omitempty"`
	DemoURL          string    `json:"demo_url,omitempty"`
	ImageURL         string    `json:"image_url,omitempty"`
	Technologies     string    `json:"technologies"`
	TechList         []string  `json:"tech_list"`
	IsFeatured       bool      `json:"is_featured"`
	IsCompleted      bool      `json:"is_completed"`
	StartDate        *string   `json:"start_date"`
	EndDate          *string   `json:"end_date"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Filter narrows the public listing. Empty fields mean no filtering on
// that dimension.
type Filter struct {
	Category string
	Status   string
	Featured *bool
}

const dateLayout = "2006-01-02"

func (r *UpsertRequest) ToModel() *Project {
	status := r.Status
	if status == "" {
		status = StatusCompleted
	}
	p := &Project{
		Title:            r.Title,
		Description:      r.Description,
		ShortDescription: r.ShortDescription,
		Category:         r.Category,
		Status:           status,
		GithubURL:        r.GithubURL,
		LiveURL:          r.LiveURL,
		DemoURL:          r.DemoURL,
		Image:            r.Image,
		Technologies:     r.Technologies,
		IsFeatured:       r.IsFeatured,
		IsCompleted:      r.IsCompleted,
	}
	if t, err := time.Parse(dateLayout, r.StartDate); err == nil && r.StartDate != "" {
		p.StartDate = &t
	}
	if t, err := time.Parse(dateLayout, r.EndDate); err == nil && r.EndDate != "" {
		p.EndDate = &t
	}
	return p
}

func ToResponse(p *Project, media storage.MediaResolver) *Response {
	resp := &Response{
		ID:               p.ID,
		Title:            p.Title,
		Slug:             p.Slug,
		Description:      p.Description,
		ShortDescription: p.ShortDescription,
		Category:         p.Category,
		Status:           p.Status,
		GithubURL:        p.GithubURL,
		LiveURL:          p.LiveURL,
		DemoURL:          p.DemoURL,
		Technologies:     p.Technologies,
		TechList:         p.TechList(),
		IsFeatured:       p.IsFeatured,
		IsCompleted:      p.IsCompleted,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
	if p.StartDate != nil {
		s := p.StartDate.Format(dateLayout)
		resp.StartDate = &s
	}
	if p.EndDate != nil {
		s := p.EndDate.Format(dateLayout)
		resp.EndDate = &s
	}
	if media != nil {
		resp.ImageURL = media.Resolve(p.Image)
	}
	return resp
}
