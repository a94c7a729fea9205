package profile

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"portfolio-backend/internal/infrastructure/storage"
)

// UpsertRequest is the admin payload for creating or updating the
// profile.
type UpsertRequest struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Bio      string `json:"bio"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Website  string `json:"website"`

	GithubURL    string `json:"github_url"`
	LinkedinURL  string `json:"linkedin_url"`
	TwitterURL   string `json:"twitter_url"`
	InstagramURL string `json:"instagram_url"`

	ProfileImage string `json:"profile_image"`
	ResumeFile   string `json:"resume_file"`

	MetaDescription string `json:"meta_description"`
}

func (r UpsertRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Bio, validation.Required),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Location, validation.Required),
		validation.Field(&r.Website, is.URL),
		validation.Field(&r.GithubURL, is.URL),
		validation.Field(&r.LinkedinURL, is.URL),
		validation.Field(&r.TwitterURL, is.URL),
		validation.Field(&r.InstagramURL, is.URL),
	)
}

// Response is the public wire shape. Media keys are resolved to URLs.
type Response struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Title    string    `json:"title"`
	Bio      string    `json:"bio"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone,omitempty"`
	Location string    `json:"location"`
	Website  string    `json:"website,omitempty"`

	GithubURL    string `json:"github_url,omitempty"`
	LinkedinURL  string `json:"linkedin_url,omitempty"`
	TwitterURL   string `json:"twitter_url,omitempty"`
	InstagramURL string `json:"instagram_url,omitempty"`

	ProfileImageURL string `json:"profile_image_url,omitempty"`
	ResumeURL       string `json:"resume_url,omitempty"`

	MetaDescription string `json:"meta_description,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToModel maps the request onto a fresh entity.
func (r *UpsertRequest) ToModel() *Profile {
	return &Profile{
		Name:            r.Name,
		Title:           r.Title,
		Bio:             r.Bio,
		Email:           r.Email,
		Phone:           r.Phone,
		Location:        r.Location,
		Website:         r.Website,
		GithubURL:       r.GithubURL,
		LinkedinURL:     r.LinkedinURL,
		TwitterURL:      r.TwitterURL,
		InstagramURL:    r.InstagramURL,
		ProfileImage:    r.ProfileImage,
		ResumeFile:      r.ResumeFile,
		MetaDescription: r.MetaDescription,
	}
}

// ToResponse maps the entity to its wire shape, resolving media keys.
func ToResponse(p *Profile, media storage.MediaResolver) *Response {
	resp := &Response{
		ID:              p.ID,
		Name:            p.Name,
		Title:           p.Title,
		Bio:             p.Bio,
		Email:           p.Email,
		Phone:           p.Phone,
		Location:        p.Location,
		Website:         p.Website,
		GithubURL:       p.GithubURL,
		LinkedinURL:     p.LinkedinURL,
		TwitterURL:      p.TwitterURL,
		InstagramURL:    p.InstagramURL,
		MetaDescription: p.MetaDescription,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
	if media != nil {
		resp.ProfileImageURL = media.Resolve(p.ProfileImage)
		resp.ResumeURL = media.Resolve(p.ResumeFile)
	}
	return resp
}
