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

var ErrDoctorNotFound = errors.New("doctor not found")

// DoctorUsecase manages the shared directory: doctors carry no owner and
// are visible to every authenticated user.
type DoctorUsecase interface {
	Create(ctx context.Context, req *dto.CreateDoctorRequest) (*entity.Doctor, error)
	GetAll(ctx context.Context) ([]entity.Doctor, error)
	Get(ctx context.Context, doctorID int) (*entity.Doctor, error)
	Update(ctx context.Context, doctorID int, req *dto.UpdateDoctorRequest) (*entity.Doctor, error)
	Delete(ctx context.Context, doctorID int) error
}

type doctorUsecase struct {
	store      *memstore.Store
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
}

func NewDoctorUsecase(
	store *memstore.Store,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
) DoctorUsecase {
	return &doctorUsecase{
		store:      store,
		log:        log,
		doctorRepo: doctorRepo,
	}
}

func (u *doctorUsecase) Create(ctx context.Context, req *dto.CreateDoctorRequest) (*entity.Doctor, error) {
	doctor := &entity.Doctor{
		Name:            req.Name,
		Specialization:  req.Specialization,
		Phone:           req.Phone,
		Email:           req.Email,
		ExperienceYears: req.ExperienceYears,
		CreatedAt:       time.Now().UTC(),
	}

	u.store.Lock()
	u.doctorRepo.Create(u.store, doctor)
	u.store.Unlock()

	out := *doctor
	return &out, nil
}

func (u *doctorUsecase) GetAll(ctx context.Context) ([]entity.Doctor, error) {
	u.store.RLock()
	defer u.store.RUnlock()

	all := u.doctorRepo.FindAll(u.store)
	doctors := make([]entity.Doctor, 0, len(all))
	for _, doctor := range all {
		doctors = append(doctors, *doctor)
	}
	return doctors, nil
}

func (u *doctorUsecase) Get(ctx context.Context, doctorID int) (*entity.Doctor, error) {
	u.store.RLock()
	defer u.store.RUnlock()

	doctor := u.doctorRepo.FindByID(u.store, doctorID)
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	out := *doctor
	return &out, nil
}

func (u *doctorUsecase) Update(ctx context.Context, doctorID int, req *dto.UpdateDoctorRequest) (*entity.Doctor, error) {
	u.store.Lock()
	defer u.store.Unlock()

	doctor := u.doctorRepo.FindByID(u.store, doctorID)
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	// Same merge split as patients: zero-value skip for name and
	// specialization, presence skip for the rest, so 0 is a valid
	// experience_years update.
	if req.Name != "" {
		doctor.Name = req.Name
	}
	if req.Specialization != "" {
		doctor.Specialization = req.Specialization
	}
	if req.Phone != nil {
		doctor.Phone = *req.Phone
	}
	if req.Email != nil {
		doctor.Email = *req.Email
	}
	if req.ExperienceYears != nil {
		doctor.ExperienceYears = *req.ExperienceYears
	}

	out := *doctor
	return &out, nil
}

func (u *doctorUsecase) Delete(ctx context.Context, doctorID int) error {
	u.store.Lock()
	defer u.store.Unlock()

	if !u.doctorRepo.Delete(u.store, doctorID) {
		return ErrDoctorNotFound
	}
	return nil
}
