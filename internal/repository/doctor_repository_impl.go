package repository

import (
	"healthcare-backend/internal/domain/entity"
	domainRepo "healthcare-backend/internal/domain/repository"
	"healthcare-backend/internal/infrastructure/memstore"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) Create(s *memstore.Store, doctor *entity.Doctor) {
	doctor.ID = s.NextDoctorID()
	s.Doctors = append(s.Doctors, doctor)
}

func (r *doctorRepository) FindByID(s *memstore.Store, id int) *entity.Doctor {
	for _, doctor := range s.Doctors {
		if doctor.ID == id {
			return doctor
		}
	}
	return nil
}

func (r *doctorRepository) FindAll(s *memstore.Store) []*entity.Doctor {
	doctors := make([]*entity.Doctor, 0, len(s.Doctors))
	doctors = append(doctors, s.Doctors...)
	return doctors
}

func (r *doctorRepository) Delete(s *memstore.Store, id int) bool {
	for i, doctor := range s.Doctors {
		if doctor.ID == id {
			s.Doctors = append(s.Doctors[:i], s.Doctors[i+1:]...)
			return true
		}
	}
	return false
}
