package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories bundles all repository instances for dependency injection
type Repositories struct {
	UserRepository             *UserRepository
	TimetableRepository        *TimetableRepository
	StudentTimetableRepository *StudentTimetableRepository
	TicketRepository           *TicketRepository
	VenueRepository            *VenueRepository
	BatchRepository            *BatchRepository
}

// NewRepositories creates a Repositories container backed by the given pool
func NewRepositories(pool *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:             NewUserRepository(pool),
		TimetableRepository:        NewTimetableRepository(pool),
		StudentTimetableRepository: NewStudentTimetableRepository(pool),
		TicketRepository:           NewTicketRepository(pool),
		VenueRepository:            NewVenueRepository(pool),
		BatchRepository:            NewBatchRepository(pool),
	}
}
