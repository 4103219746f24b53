package services

import (
	appauth "github.com/kerem/campusdesk/internal/app/auth"
	"github.com/kerem/campusdesk/internal/app/repositories"
	pkgauth "github.com/kerem/campusdesk/internal/pkg/auth"
	"github.com/kerem/campusdesk/internal/pkg/filestorage"
)

// Services bundles all service instances for dependency injection
type Services struct {
	AuthService             *AuthService
	TimetableService        *TimetableService
	StudentTimetableService *StudentTimetableService
	TicketService           *TicketService
	VenueService            *VenueService
	BatchService            *BatchService
}

// NewServices creates a Services container wired to the repositories
func NewServices(
	repos *repositories.Repositories,
	authz *appauth.Service,
	jwtService *pkgauth.JWTService,
	storage filestorage.FileStorage,
) *Services {
	return &Services{
		AuthService:             NewAuthService(repos.UserRepository, authz, jwtService),
		TimetableService:        NewTimetableService(repos.TimetableRepository, repos.UserRepository, authz),
		StudentTimetableService: NewStudentTimetableService(repos.StudentTimetableRepository, repos.UserRepository, authz),
		TicketService:           NewTicketService(repos.TicketRepository, storage),
		VenueService:            NewVenueService(repos.VenueRepository),
		BatchService:            NewBatchService(repos.BatchRepository),
	}
}
