package repository

import (
	"healthcare-backend/internal/domain/entity"
	domainRepo "healthcare-backend/internal/domain/repository"
	"healthcare-backend/internal/infrastructure/memstore"
)

type mappingRepository struct{}

func NewMappingRepository() domainRepo.MappingRepository {
	return &mappingRepository{}
}

func (r *mappingRepository) Create(s *memstore.Store, mapping *entity.Mapping) {
	mapping.ID = s.NextMappingID()
	s.Mappings = append(s.Mappings, mapping)
}

func (r *mappingRepository) FindByID(s *memstore.Store, id int) *entity.Mapping {
	for _, mapping := range s.Mappings {
		if mapping.ID == id {
			return mapping
		}
	}
	return nil
}

func (r *mappingRepository) FindByPair(s *memstore.Store, patientID, doctorID int) *entity.Mapping {
	for _, mapping := range s.Mappings {
		if mapping.PatientID == patientID && mapping.DoctorID == doctorID {
			return mapping
		}
	}
	return nil
}

func (r *mappingRepository) FindByPatientID(s *memstore.Store, patientID int) []*entity.Mapping {
	mappings := make([]*entity.Mapping, 0)
	for _, mapping := range s.Mappings {
		if mapping.PatientID == patientID {
			mappings = append(mappings, mapping)
		}
	}
	return mappings
}

func (r *mappingRepository) FindByPatientIDs(s *memstore.Store, patientIDs map[int]struct{}) []*entity.Mapping {
	mappings := make([]*entity.Mapping, 0)
	for _, mapping := range s.Mappings {
		if _, ok := patientIDs[mapping.PatientID]; ok {
			mappings = append(mappings, mapping)
		}
	}
	return mappings
}

func (r *mappingRepository) Delete(s *memstore.Store, id int) bool {
	for i, mapping := range s.Mappings {
		if mapping.ID == id {
			s.Mappings = append(s.Mappings[:i], s.Mappings[i+1:]...)
			return true
		}
	}
	return false
}
