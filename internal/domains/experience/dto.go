package experience

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// UpsertRequest is the admin payload. Dates are ISO "2006-01-02".
type UpsertRequest struct {
	Company        string `json:"company"`
	Position       string `json:"position"`
	Location       string `json:"location"`
	CompanyURL     string `json:"company_url"`
	EmploymentType string `json:"employment_type"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	IsCurrent      bool   `json:"is_current"`
	Description    string `json:"description"`
	SkillsUsed     string `json:"skills_used"`
	Achievements   string `json:"achievements"`
}

func (r UpsertRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Company, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Position, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.EmploymentType,
			validation.Required,
			validation.In(EmploymentFullTime, EmploymentPartTime,
				EmploymentContract, EmploymentInternship, EmploymentFreelance),
		),
		validation.Field(&r.StartDate, validation.Required, validation.Date(dateLayout)),
		validation.Field(&r.EndDate,
			validation.When(r.IsCurrent,
				validation.Empty.Error("must be absent for a current position"),
			),
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
	ID             uuid.UUID `json:"id"`
	Company        string    `json:"company"`
	Position       string    `json:"position"`
	Location       string    `json:"location,omitempty"`
	CompanyURL     string    `json:"company_url,omitempty"`
	EmploymentType string    `json:"employment_type"`
	StartDate      string    `json:"start_date"`
	EndDate        *string   `json:"end_date"`
	IsCurrent      bool      `json:"is_current"`
	Duration       string    `json:"duration"`
	Description    string    `json:"description,omitempty"`
	SkillsUsed     string    `json:"skills_used,omitempty"`
	Achievements   string    `json:"achievements,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

const dateLayout = "2006-01-02"

// ToModel maps the request onto a fresh entity. An unparseable start
// date is left at its zero value for validation to catch; an
// unparseable end date is treated as absent.
func (r *UpsertRequest) ToModel() *Experience {
	e := &Experience{
		Company:        r.Company,
		Position:       r.Position,
		Location:       r.Location,
		CompanyURL:     r.CompanyURL,
		EmploymentType: r.EmploymentType,
		IsCurrent:      r.IsCurrent,
		Description:    r.Description,
		SkillsUsed:     r.SkillsUsed,
		Achievements:   r.Achievements,
	}
	if t, err := time.Parse(dateLayout, r.StartDate); err == nil {
		e.StartDate = t
	}
	if r.EndDate != "" {
		if t, err := time.Parse(dateLayout, r.EndDate); err == nil {
			e.EndDate = &t
		}
	}
	return e
}

// ToResponse maps the entity to its wire shape, deriving the duration
// against now.
func ToResponse(e *Experience, now time.Time) *Response {
	resp := &Response{
		ID:             e.ID,
		Company:        e.Company,
		Position:       e.Position,
		Location:       e.Location,
		CompanyURL:     e.CompanyURL,
		EmploymentType: e.EmploymentType,
		StartDate:      e.StartDate.Format(dateLayout),
		IsCurrent:      e.IsCurrent,
		Duration:       e.Duration(now),
		Description:    e.Description,
		SkillsUsed:     e.SkillsUsed,
		Achievements:   e.Achievements,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
	if e.EndDate != nil {
		s := e.EndDate.Format(dateLayout)
		resp.EndDate = &s
	}
	return resp
}
