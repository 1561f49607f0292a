package repository

import (
	"healthcare-backend/internal/domain/entity"
	domainRepo "healthcare-backend/internal/domain/repository"
	"healthcare-backend/internal/infrastructure/memstore"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(s *memstore.Store, patient *entity.Patient) {
	patient.ID = s.NextPatientID()
	s.Patients = append(s.Patients, patient)
}

func (r *patientRepository) FindByIDAndOwner(s *memstore.Store, id, ownerID int) *entity.Patient {
	for _, patient := range s.Patients {
		if patient.ID == id && patient.CreatedBy == ownerID {
			return patient
		}
	}
	return nil
}

func (r *patientRepository) FindAllByOwner(s *memstore.Store, ownerID int) []*entity.Patient {
	patients := make([]*entity.Patient, 0)
	for _, patient := range s.Patients {
		if patient.CreatedBy == ownerID {
			patients = append(patients, patient)
		}
	}
	return patients
}

func (r *patientRepository) Delete(s *memstore.Store, id int) bool {
	for i, patient := range s.Patients {
		if patient.ID == id {
			s.Patients = append(s.Patients[:i], s.Patients[i+1:]...)
			return true
		}
	}
	return false
}
