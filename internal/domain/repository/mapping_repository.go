package repository

import (
	"healthcare-backend/internal/domain/entity"
	"healthcare-backend/internal/infrastructure/memstore"
)

type MappingRepository interface {
	Create(s *memstore.Store, mapping *entity.Mapping)
	FindByID(s *memstore.Store, id int) *entity.Mapping
	FindByPair(s *memstore.Store, patientID, doctorID int) *entity.Mapping
	FindByPatientID(s *memstore.Store, patientID int) []*entity.Mapping
	FindByPatientIDs(s *memstore.Store, patientIDs map[int]struct{}) []*entity.Mapping
	Delete(s *memstore.Store, id int) bool
}
