package profile

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the single owner record behind the portfolio. The store
// accepts at most one row; consumers always read the first by creation
// order.
type Profile struct {
	ID       uuid.UUID
	Name     string
	Title    string
	Bio      string
	Email    string
	Phone    string
	Location string
	Website  string

	GithubURL    string
	LinkedinURL  string
	TwitterURL   string
	InstagramURL string

	// Object keys into the media store, not URLs.
	ProfileImage string
	ResumeFile   string

	MetaDescription string

	CreatedAt time.Time
	UpdatedAt time.Time
}
