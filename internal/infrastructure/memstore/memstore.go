package memstore

import (
	"sync"

	"healthcare-backend/internal/domain/entity"
)

// Store holds every record collection and id counter for the service. It is
// constructed once in bootstrap and injected into the repositories and
// usecases; tests build isolated instances. All state is volatile and lost
// when the process exits.
//
// The embedded RWMutex serializes whole usecase operations: a usecase takes
// the lock before its first read and releases it after its last mutation, so
// cross-entity checks (for example validating a patient and a doctor before
// inserting a mapping) observe a consistent snapshot.
type Store struct {
	sync.RWMutex

	Users    []*entity.User
	Patients []*entity.Patient
	Doctors  []*entity.Doctor
	Mappings []*entity.Mapping

	userSeq    int
	patientSeq int
	doctorSeq  int
	mappingSeq int
}

func New() *Store {
	return &Store{}
}

// The Next*ID methods must be called with the write lock held. Counters
// start at 1 and never reuse an id, deletions included.

func (s *Store) NextUserID() int {
	s.userSeq++
	return s.userSeq
}

func (s *Store) NextPatientID() int {
	s.patientSeq++
	return s.patientSeq
}

func (s *Store) NextDoctorID() int {
	s.doctorSeq++
	return s.doctorSeq
}

func (s *Store) NextMappingID() int {
	s.mappingSeq++
	return s.mappingSeq
}
