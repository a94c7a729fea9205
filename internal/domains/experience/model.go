package experience

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Valid employment types.
const (
	EmploymentFullTime   = "full_time"
	EmploymentPartTime   = "part_time"
	EmploymentContract   = "contract"
	EmploymentInternship = "internship"
	EmploymentFreelance  = "freelance"
)

type Experience struct {
	ID             uuid.UUID
	Company        string
	Position       string
	Location       string
	CompanyURL     string
	EmploymentType string
	StartDate      time.Time
	EndDate        *time.Time
	IsCurrent      bool
	Description    string
	SkillsUsed     string // comma separated
	Achievements   string // newline separated
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Duration renders the elapsed span in a compact human form. Ongoing
// positions measure up to the reference time.
func (e *Experience) Duration(ref time.Time) string {
	end := ref
	if e.EndDate != nil {
		end = *e.EndDate
	}

	days := int(end.Sub(e.StartDate).Hours() / 24)
	if days < 0 {
		days = 0
	}
	years := days / 365
	months := (days % 365) / 30

	var parts []string
	if years > 0 {
		parts = append(parts, fmt.Sprintf("%d yr", years))
	}
	if months > 0 {
		parts = append(parts, fmt.Sprintf("%d mo", months))
	}
	if len(parts) == 0 {
		return "Less than a month"
	}
	return strings.Join(parts, " ")
}
