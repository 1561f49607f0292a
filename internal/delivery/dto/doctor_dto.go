package dto

type CreateDoctorRequest struct {
	Name            string `json:"name" validate:"required"`
	Specialization  string `json:"specialization" validate:"required"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	ExperienceYears int    `json:"experience_years"`
}

// UpdateDoctorRequest follows the same split as UpdatePatientRequest:
// name and specialization skip zero values, the pointer fields skip only
// absent fields (0 is a valid experience_years update).
type UpdateDoctorRequest struct {
	Name            string  `json:"name"`
	Specialization  string  `json:"specialization"`
	Phone           *string `json:"phone"`
	Email           *string `json:"email"`
	ExperienceYears *int    `json:"experience_years"`
}
