package education

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Valid education types.
const (
	TypeDegree      = "degree"
	TypeCertificate = "certificate"
	TypeCourse      = "course"
	TypeBootcamp    = "bootcamp"
)

// Grade bounds on the 4.0 GPA scale.
var (
	minGrade = decimal.Zero
	maxGrade = decimal.NewFromInt(4)
)

type Education struct {
	ID            uuid.UUID
	Institution   string
	Degree        string
	FieldOfStudy  string
	EducationType string
	Description   string
	StartDate     time.Time
	EndDate       *time.Time
	IsCompleted   bool
	Grade         *decimal.Decimal
	CredentialURL string
	SortOrder     int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// GraduationYear derives the year from the end date; ongoing studies
// have none.
func (e *Education) GraduationYear() *int {
	if e.EndDate == nil {
		return nil
	}
	y := e.EndDate.Year()
	return &y
}
