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

var ErrPatientNotFound = errors.New("patient not found")

// PatientUsecase scopes every lookup by owner: a patient created by another
// user is indistinguishable from one that does not exist.
type PatientUsecase interface {
	Create(ctx context.Context, ownerID int, req *dto.CreatePatientRequest) (*entity.Patient, error)
	GetAll(ctx context.Context, ownerID int) ([]entity.Patient, error)
	Get(ctx context.Context, ownerID, patientID int) (*entity.Patient, error)
	Update(ctx context.Context, ownerID, patientID int, req *dto.UpdatePatientRequest) (*entity.Patient, error)
	Delete(ctx context.Context, ownerID, patientID int) error
}

type patientUsecase struct {
	store       *memstore.Store
	log         *logrus.Logger
	patientRepo repository.PatientRepository
}

func NewPatientUsecase(
	store *memstore.Store,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
) PatientUsecase {
	return &patientUsecase{
		store:       store,
		log:         log,
		patientRepo: patientRepo,
	}
}

func (u *patientUsecase) Create(ctx context.Context, ownerID int, req *dto.CreatePatientRequest) (*entity.Patient, error) {
	patient := &entity.Patient{
		Name:           req.Name,
		Age:            req.Age,
		Gender:         req.Gender,
		Phone:          req.Phone,
		Address:        req.Address,
		MedicalHistory: req.MedicalHistory,
		CreatedBy:      ownerID,
		CreatedAt:      time.Now().UTC(),
	}

	u.store.Lock()
	u.patientRepo.Create(u.store, patient)
	u.store.Unlock()

	out := *patient
	return &out, nil
}

func (u *patientUsecase) GetAll(ctx context.Context, ownerID int) ([]entity.Patient, error) {
	u.store.RLock()
	defer u.store.RUnlock()

	owned := u.patientRepo.FindAllByOwner(u.store, ownerID)
	patients := make([]entity.Patient, 0, len(owned))
	for _, patient := range owned {
		patients = append(patients, *patient)
	}
	return patients, nil
}

func (u *patientUsecase) Get(ctx context.Context, ownerID, patientID int) (*entity.Patient, error) {
	u.store.RLock()
	defer u.store.RUnlock()

	patient := u.patientRepo.FindByIDAndOwner(u.store, patientID, ownerID)
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	out := *patient
	return &out, nil
}

func (u *patientUsecase) Update(ctx context.Context, ownerID, patientID int, req *dto.UpdatePatientRequest) (*entity.Patient, error) {
	u.store.Lock()
	defer u.store.Unlock()

	patient := u.patientRepo.FindByIDAndOwner(u.store, patientID, ownerID)
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	// Name, age, and gender keep their stored value when the incoming value
	// is zero; the pointer fields update whenever present in the body,
	// explicit "" included.
	if req.Name != "" {
		patient.Name = req.Name
	}
	if req.Age != 0 {
		patient.Age = req.Age
	}
	if req.Gender != "" {
		patient.Gender = req.Gender
	}
	if req.Phone != nil {
		patient.Phone = *req.Phone
	}
	if req.Address != nil {
		patient.Address = *req.Address
	}
	if req.MedicalHistory != nil {
		patient.MedicalHistory = *req.MedicalHistory
	}

	out := *patient
	return &out, nil
}

func (u *patientUsecase) Delete(ctx context.Context, ownerID, patientID int) error {
	u.store.Lock()
	defer u.store.Unlock()

	if u.patientRepo.FindByIDAndOwner(u.store, patientID, ownerID) == nil {
		return ErrPatientNotFound
	}

	u.patientRepo.Delete(u.store, patientID)
	return nil
}
