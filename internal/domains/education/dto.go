package education

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UpsertRequest is the admin payload. Dates are ISO "2006-01-02" and
// the grade uses the 4.0 GPA scale.
type UpsertRequest struct {
	Institution   string           `json:"institution"`
	Degree        string           `json:"degree"`
	FieldOfStudy  string           `json:"field_of_study"`
	EducationType string           `json:"education_type"`
	Description   string           `json:"description"`
	StartDate     string           `json:"start_date"`
	EndDate       string           `json:"end_date"`
	IsCompleted   bool             `json:"is_completed"`
	Grade         *decimal.Decimal `json:"grade"`
	CredentialURL string           `json:"credential_url"`
	SortOrder     int              `json:"sort_order"`
}

func (r UpsertRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Institution, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Degree, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.EducationType,
			validation.Required,
			validation.In(TypeDegree, TypeCertificate, TypeCourse, TypeBootcamp),
		),
		validation.Field(&r.StartDate, validation.Required, validation.Date(dateLayout)),
		validation.Field(&r.EndDate,
			validation.Date(dateLayout),
			validation.By(r.endNotBeforeStart),
		),
		validation.Field(&r.Grade, validation.By(r.gradeInBounds)),
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

func (r UpsertRequest) gradeInBounds(interface{}) error {
	if r.Grade == nil {
		return nil
	}
	if r.Grade.LessThan(minGrade) || r.Grade.GreaterThan(maxGrade) {
		return errors.New("must be between 0.00 and 4.00")
	}
	return nil
}

type Response struct {
	ID             uuid.UUID        `json:"id"`
	Institution    string           `json:"institution"`
	Degree         string           `json:"degree"`
	FieldOfStudy   string           `json:"field_of_study,omitempty"`
	EducationType  string           `json:"education_type"`
	Description    string           `json:"description,omitempty"`
	StartDate      string           `json:"start_date"`
	EndDate        *string          `json:"end_date"`
	IsCompleted    bool             `json:"is_completed"`
	Grade          *decimal.Decimal `json:"grade"`
	CredentialURL  string           `json:"credential_url,omitempty"`
	GraduationYear *int             `json:"graduation_year"`
	SortOrder      int              `json:"sort_order"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

const dateLayout = "2006-01-02"

func (r *UpsertRequest) ToModel() *Education {
	e := &Education{
		Institution:   r.Institution,
		Degree:        r.Degree,
		FieldOfStudy:  r.FieldOfStudy,
		EducationType: r.EducationType,
		Description:   r.Description,
		IsCompleted:   r.IsCompleted,
		Grade:         r.Grade,
		CredentialURL: r.CredentialURL,
		SortOrder:     r.SortOrder,
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

func ToResponse(e *Education) *Response {
	resp := &Response{
		ID:             e.ID,
		Institution:    e.Institution,
		Degree:         e.Degree,
		FieldOfStudy:   e.FieldOfStudy,
		EducationType:  e.EducationType,
		Description:    e.Description,
		StartDate:      e.StartDate.Format(dateLayout),
		IsCompleted:    e.IsCompleted,
		Grade:          e.Grade,
		CredentialURL:  e.CredentialURL,
		GraduationYear: e.GraduationYear(),
		SortOrder:      e.SortOrder,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
	if e.EndDate != nil {
		s := e.EndDate.Format(dateLayout)
		resp.EndDate = &s
	}
	return resp
}
