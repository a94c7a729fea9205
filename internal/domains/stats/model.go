package stats

import "time"

// Stats is the public aggregate snapshot of the portfolio.
type Stats struct {
	TotalProjects     int `json:"total_projects"`
	FeaturedProjects  int `json:"featured_projects"`
	TotalSkills       int `json:"total_skills"`
	TotalExperiences  int `json:"total_experiences"`
	TotalEducation    int `json:"total_education"`
	UnreadMessages    int `json:"unread_messages"`
	YearsOfExperience int `json:"years_of_experience"`
}

// YearsSince converts the earliest employment start into whole years
// of experience. A zero start means no recorded experience.
func YearsSince(earliestStart time.Time, now time.Time) int {
	if earliestStart.IsZero() || earliestStart.After(now) {
		return 0
	}
	return int(now.Sub(earliestStart).Hours() / 24 / 365)
}
