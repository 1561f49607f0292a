package entity

import "time"

const MappingStatusActive = "active"

// Mapping assigns a patient to a doctor. The (PatientID, DoctorID) pair is
// unique across all mappings; ownership is derived through the patient and
// never stored on the mapping itself.
type Mapping struct {
	ID        int       `json:"id"`
	PatientID int       `json:"patient_id"`
	DoctorID  int       `json:"doctor_id"`
	Notes     string    `json:"notes"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
