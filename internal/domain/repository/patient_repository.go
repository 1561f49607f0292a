package repository

import (
	"healthcare-backend/internal/domain/entity"
	"healthcare-backend/internal/infrastructure/memstore"
)

// PatientRepository accesses the patient collection. Owner-scoped lookups
// treat records owned by someone else exactly like absent records.
type PatientRepository interface {
	Create(s *memstore.Store, patient *entity.Patient)
	FindByIDAndOwner(s *memstore.Store, id, ownerID int) *entity.Patient
	FindAllByOwner(s *memstore.Store, ownerID int) []*entity.Patient
	Delete(s *memstore.Store, id int) bool
}
