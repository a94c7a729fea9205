package skill

import (
	"time"

	"github.com/google/uuid"
)

// Valid skill categories. The set mirrors the frontend's grouping.
const (
	CategoryFrontend   = "frontend"
	CategoryBackend    = "backend"
	CategoryDatabase   = "database"
	CategoryDevops     = "devops"
	CategoryTools      = "tools"
	CategoryLanguages  = "languages"
	CategoryFrameworks = "frameworks"
	CategoryOther      = "other"
)

// Proficiency bounds on the canonical 1-100 scale.
const (
	MinProficiency = 1
	MaxProficiency = 100
)

type Skill struct {
	ID          uuid.UUID
	Name        string
	Category    string
	Proficiency int
	Icon        string
	Color       string // hex, e.g. #3B82F6
	IsFeatured  bool
	SortOrder   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
