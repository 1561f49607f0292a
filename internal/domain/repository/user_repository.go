package repository

import (
	"healthcare-backend/internal/domain/entity"
	"healthcare-backend/internal/infrastructure/memstore"
)

// UserRepository accesses the user collection. Callers hold the store lock
// for the duration of the operation; lookups return nil when no record
// matches.
type UserRepository interface {
	Create(s *memstore.Store, user *entity.User)
	FindByEmail(s *memstore.Store, email string) *entity.User
	FindByID(s *memstore.Store, id int) *entity.User
}
