package entity

import "time"

// Patient is owned by the user that created it; CreatedBy is fixed at
// creation and never reassigned.
type Patient struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	Age            int       `json:"age"`
	Gender         string    `json:"gender"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address"`
	MedicalHistory string    `json:"medical_history"`
	CreatedBy      int       `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
}
