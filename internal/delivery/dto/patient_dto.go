package dto

type CreatePatientRequest struct {
	Name           string `json:"name" validate:"required"`
	Age            int    `json:"age" validate:"required"`
	Gender         string `json:"gender" validate:"required"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	MedicalHistory string `json:"medical_history"`
}

// UpdatePatientRequest distinguishes two merge rules. Name, age, and gender
// keep their stored value whenever the incoming value is the zero value, so
// "" or 0 cannot overwrite them. Phone, address, and medical_history are
// pointers: only a field absent from the JSON body is skipped, an explicit
// empty string is a real update.
type UpdatePatientRequest struct {
	Name           string  `json:"name"`
	Age            int     `json:"age"`
	Gender         string  `json:"gender"`
	Phone          *string `json:"phone"`
	Address        *string `json:"address"`
	MedicalHistory *string `json:"medical_history"`
}
