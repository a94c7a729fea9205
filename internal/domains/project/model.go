package project

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Valid project categories.
const (
	CategoryWeb     = "web"
	CategoryMobile  = "mobile"
	CategoryDesktop = "desktop"
	CategoryAPI     = "api"
	CategoryLibrary = "library"
	CategoryOther   = "other"
)

// Valid project statuses.
const (
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusArchived   = "archived"
)

type Project struct {
	ID               uuid.UUID
	Title            string
	Slug             string
	Description      string
	ShortDescription string
	Category         string
	Status           string
	GithubURL        string
	LiveURL          string
	DemoURL          string
	Image            string // object key, resolved to a URL at the edge
	Technologies     string // comma separated
	IsFeatured       bool
	IsCompleted      bool
	StartDate        *time.Time
	EndDate          *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TechList splits the stored comma-separated technologies into a clean
// slice, dropping empty segments.
func (p *Project) TechList() []string {
	if strings.TrimSpace(p.Technologies) == "" {
		return []string{}
	}
	parts := strings.Split(p.Technologies, ",")
	list := make([]string, 0, len(parts))
	for _, part := range parts {
		if t := strings.TrimSpace(part); t != "" {
			list = append(list, t)
		}
	}
	return list
}
