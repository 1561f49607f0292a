package usecase

import (
	"context"
	"errors"

	"healthcare-backend/internal/delivery/dto"
	"healthcare-backend/internal/domain/entity"
	"healthcare-backend/internal/domain/repository"
	"healthcare-backend/internal/infrastructure/memstore"
	"healthcare-backend/pkg/jwt"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailAlreadyExists = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	GetCurrentUser(ctx context.Context, userID int) (*dto.UserSummary, error)
}

type authUsecase struct {
	store      *memstore.Store
	log        *logrus.Logger
	userRepo   repository.UserRepository
	jwtService *jwt.JWTService
	bcryptCost int
}

func NewAuthUsecase(
	store *memstore.Store,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	jwtService *jwt.JWTService,
	bcryptCost int,
) AuthUsecase {
	return &authUsecase{
		store:      store,
		log:        log,
		userRepo:   userRepo,
		jwtService: jwtService,
		bcryptCost: bcryptCost,
	}
}

func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	// Hashing is the slow step; do it before taking the store lock. A
	// duplicate email just wastes one hash.
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), u.bcryptCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
	}

	u.store.Lock()
	defer u.store.Unlock()

	// Exact, case-sensitive email match.
	if existing := u.userRepo.FindByEmail(u.store, req.Email); existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	u.userRepo.Create(u.store, user)

	return &dto.RegisterResponse{
		Message: "User registered successfully",
		User: dto.UserSummary{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
	}, nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	u.store.RLock()
	user := u.userRepo.FindByEmail(u.store, req.Email)
	u.store.RUnlock()

	// Unknown email and wrong password are indistinguishable to the caller.
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := u.jwtService.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	return &dto.LoginResponse{
		Access: token,
		User: dto.UserSummary{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
	}, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID int) (*dto.UserSummary, error) {
	u.store.RLock()
	user := u.userRepo.FindByID(u.store, userID)
	u.store.RUnlock()

	if user == nil {
		return nil, ErrUserNotFound
	}

	return &dto.UserSummary{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}, nil
}
