package usecase

import (
	"context"
	"errors"
	"time"

	"healthcare-backend/internal/delivery/dto"
	"healthcare-backend/internal/domain/entity"
	"healthcare-backend/internal/domain/repository"
	"healthcare-backend/internal/infrastructure/memstore"

	"github.com/sirupsen/logrus"
)

var (
	ErrMappingNotFound      = errors.New("mapping not found")
	ErrMappingAlreadyExists = errors.New("this patient is already assigned to this doctor")
	ErrMappingAccessDenied  = errors.New("access denied")
)

// MappingUsecase links caller-owned patients to directory doctors. The
// (patient, doctor) pair is unique across all mappings, and a mapping's
// ownership is derived through its patient on every call, never stored.
type MappingUsecase interface {
	Create(ctx context.Context, ownerID int, req *dto.CreateMappingRequest) (*entity.Mapping, error)
	GetAllForOwner(ctx context.Context, ownerID int) ([]entity.Mapping, error)
	GetForPatient(ctx context.Context, ownerID, patientID int) ([]entity.Mapping, error)
	Delete(ctx context.Context, ownerID, mappingID int) error
}

type mappingUsecase struct {
	store       *memstore.Store
	log         *logrus.Logger
	mappingRepo repository.MappingRepository
	patientRepo repository.PatientRepository
	doctorRepo  repository.DoctorRepository
}

func NewMappingUsecase(
	store *memstore.Store,
	log *logrus.Logger,
	mappingRepo repository.MappingRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
) MappingUsecase {
	return &mappingUsecase{
		store:       store,
		log:         log,
		mappingRepo: mappingRepo,
		patientRepo: patientRepo,
		doctorRepo:  doctorRepo,
	}
}

func (u *mappingUsecase) Create(ctx context.Context, ownerID int, req *dto.CreateMappingRequest) (*entity.Mapping, error) {
	u.store.Lock()
	defer u.store.Unlock()

	// All checks precede the single insert; a failure leaves no partial
	// state. The patient lookup is owner-scoped, the doctor lookup is not.
	if u.patientRepo.FindByIDAndOwner(u.store, req.PatientID, ownerID) == nil {
		return nil, ErrPatientNotFound
	}
	if u.doctorRepo.FindByID(u.store, req.DoctorID) == nil {
		return nil, ErrDoctorNotFound
	}
	if u.mappingRepo.FindByPair(u.store, req.PatientID, req.DoctorID) != nil {
		return nil, ErrMappingAlreadyExists
	}

	mapping := &entity.Mapping{
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
		Notes:     req.Notes,
		Status:    entity.MappingStatusActive,
		CreatedAt: time.Now().UTC(),
	}
	u.mappingRepo.Create(u.store, mapping)

	out := *mapping
	return &out, nil
}

func (u *mappingUsecase) GetAllForOwner(ctx context.Context, ownerID int) ([]entity.Mapping, error) {
	u.store.RLock()
	defer u.store.RUnlock()

	// Recomputed join on every call: the owned patient id set, then every
	// mapping whose patient is in it.
	patientIDs := make(map[int]struct{})
	for _, patient := range u.patientRepo.FindAllByOwner(u.store, ownerID) {
		patientIDs[patient.ID] = struct{}{}
	}

	owned := u.mappingRepo.FindByPatientIDs(u.store, patientIDs)
	mappings := make([]entity.Mapping, 0, len(owned))
	for _, mapping := range owned {
		mappings = append(mappings, *mapping)
	}
	return mappings, nil
}

func (u *mappingUsecase) GetForPatient(ctx context.Context, ownerID, patientID int) ([]entity.Mapping, error) {
	u.store.RLock()
	defer u.store.RUnlock()

	if u.patientRepo.FindByIDAndOwner(u.store, patientID, ownerID) == nil {
		return nil, ErrPatientNotFound
	}

	forPatient := u.mappingRepo.FindByPatientID(u.store, patientID)
	mappings := make([]entity.Mapping, 0, len(forPatient))
	for _, mapping := range forPatient {
		mappings = append(mappings, *mapping)
	}
	return mappings, nil
}

func (u *mappingUsecase) Delete(ctx context.Context, ownerID, mappingID int) error {
	u.store.Lock()
	defer u.store.Unlock()

	// Unlike patient lookups, existence is observable here: an absent
	// mapping is 404, a mapping whose patient belongs to someone else is
	// 403.
	mapping := u.mappingRepo.FindByID(u.store, mappingID)
	if mapping == nil {
		return ErrMappingNotFound
	}

	if u.patientRepo.FindByIDAndOwner(u.store, mapping.PatientID, ownerID) == nil {
		return ErrMappingAccessDenied
	}

	u.mappingRepo.Delete(u.store, mappingID)
	return nil
}
