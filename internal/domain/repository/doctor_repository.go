package repository

import (
	"healthcare-backend/internal/domain/entity"
	"healthcare-backend/internal/infrastructure/memstore"
)

type DoctorRepository interface {
	Create(s *memstore.Store, doctor *entity.Doctor)
	FindByID(s *memstore.Store, id int) *entity.Doctor
	FindAll(s *memstore.Store) []*entity.Doctor
	Delete(s *memstore.Store, id int) bool
}
