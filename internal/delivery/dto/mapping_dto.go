package dto

// CreateMappingRequest ids are required as non-zero values; id 0 counts as
// missing.
type CreateMappingRequest struct {
	PatientID int    `json:"patient_id" validate:"required"`
	DoctorID  int    `json:"doctor_id" validate:"required"`
	Notes     string `json:"notes"`
}
