package skill

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

type UpsertRequest struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Proficiency int    `json:"proficiency"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	IsFeatured  bool   `json:"is_featured"`
	SortOrder   int    `json:"sort_order"`
}

func (r UpsertRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Category,
			validation.Required,
			validation.In(CategoryFrontend, CategoryBackend, CategoryDatabase,
				CategoryDevops, CategoryTools, CategoryLanguages,
				CategoryFrameworks, CategoryOther),
		),
		validation.Field(&r.Proficiency,
			validation.Required.Error("must be between 1 and 100"),
			validation.Min(MinProficiency),
			validation.Max(MaxProficiency),
		),
	)
}

type Response struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Proficiency int       `json:"proficiency"`
	Icon        string    `json:"icon,omitempty"`
	Color       string    `json:"color,omitempty"`
	IsFeatured  bool      `json:"is_featured"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (r *UpsertRequest) ToModel() *Skill {
	return &Skill{
		Name:        r.Name,
		Category:    r.Category,
		Proficiency: r.Proficiency,
		Icon:        r.Icon,
		Color:       r.Color,
		IsFeatured:  r.IsFeatured,
		SortOrder:   r.SortOrder,
	}
}

func ToResponse(s *Skill) *Response {
	return &Response{
		ID:          s.ID,
		Name:        s.Name,
		Category:    s.Category,
		Proficiency: s.Proficiency,
		Icon:        s.Icon,
		Color:       s.Color,
		IsFeatured:  s.IsFeatured,
		SortOrder:   s.SortOrder,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// Filter narrows skill lists. Zero values mean "no filter"; unknown
// query values never reach here as anything but harmless strings.
type Filter struct {
	// Category matches case-insensitively as a substring.
	Category string
	Featured *bool
}
