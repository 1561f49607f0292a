package entity

import "time"

// Doctor is a shared directory entry, visible to every authenticated user.
type Doctor struct {
	ID              int       `json:"id"`
	Name            string    `json:"name"`
	Specialization  string    `json:"specialization"`
	Phone           string    `json:"phone"`
	Email           string    `json:"email"`
	ExperienceYears int       `json:"experience_years"`
	CreatedAt       time.Time `json:"created_at"`
}
