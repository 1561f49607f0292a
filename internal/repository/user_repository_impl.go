package repository

import (
	"healthcare-backend/internal/domain/entity"
	domainRepo "healthcare-backend/internal/domain/repository"
	"healthcare-backend/internal/infrastructure/memstore"
)

type userRepository struct{}

func NewUserRepository() domainRepo.UserRepository {
	return &userRepository{}
}

func (r *userRepository) Create(s *memstore.Store, user *entity.User) {
	user.ID = s.NextUserID()
	s.Users = append(s.Users, user)
}

func (r *userRepository) FindByEmail(s *memstore.Store, email string) *entity.User {
	for _, user := range s.Users {
		if user.Email == email {
			return user
		}
	}
	return nil
}

func (r *userRepository) FindByID(s *memstore.Store, id int) *entity.User {
	for _, user := range s.Users {
		if user.ID == id {
			return user
		}
	}
	return nil
}
