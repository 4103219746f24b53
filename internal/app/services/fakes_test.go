package services

import (
	"context"
	"mime/multipart"
	"net/textproto"
	"time"

	"github.com/kerem/campusdesk/internal/app/models"
	"github.com/kerem/campusdesk/internal/app/models/dto"
	"github.com/kerem/campusdesk/internal/pkg/apperrors"
)

// In-memory stores used by the service tests

type fakeUserStore struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[int64]*models.User{}, nextID: 1}
}

func (s *fakeUserStore) add(user *models.User) *models.User {
	user.ID = s.nextID
	s.nextID++
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	s.users[user.ID] = user
	return user
}

func (s *fakeUserStore) CreateUser(_ context.Context, user *models.User) (*models.User, error) {
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return nil, apperrors.ErrEmailAlreadyExists
		}
	}
	return s.add(user), nil
}

func (s *fakeUserStore) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (s *fakeUserStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (s *fakeUserStore) ListUsers(_ context.Context) ([]*models.User, error) {
	users := make([]*models.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, user)
	}
	return users, nil
}

func (s *fakeUserStore) UpdateUser(_ context.Context, id int64, updates map[string]interface{}) error {
	user, ok := s.users[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	if email, ok := updates["email"].(string); ok {
		for _, existing := range s.users {
			if existing.ID != id && existing.Email == email {
				return apperrors.ErrEmailAlreadyExists
			}
		}
		user.Email = email
	}
	if password, ok := updates["password"].(string); ok {
		user.Password = password
	}
	if role, ok := updates["role"].(string); ok {
		user.Role = models.RoleType(role)
	}
	user.UpdatedAt = time.Now()
	return nil
}

func (s *fakeUserStore) DeleteUser(_ context.Context, id int64) error {
	if _, ok := s.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(s.users, id)
	return nil
}

type fakeTimetableStore struct {
	entries map[int64]*models.TimetableEntry
	nextID  int64
}

func newFakeTimetableStore() *fakeTimetableStore {
	return &fakeTimetableStore{entries: map[int64]*models.TimetableEntry{}, nextID: 1}
}

func (s *fakeTimetableStore) CreateEntry(_ context.Context, entry *models.TimetableEntry) (*models.TimetableEntry, error) {
	entry.ID = s.nextID
	s.nextID++
	entry.CreatedAt = time.Now()
	s.entries[entry.ID] = entry
	return entry, nil
}

func (s *fakeTimetableStore) GetEntryByID(_ context.Context, id int64) (*models.TimetableEntry, error) {
	entry, ok := s.entries[id]
	if !ok {
		return nil, apperrors.ErrTimetableEntryNotFound
	}
	return entry, nil
}

func (s *fakeTimetableStore) ListEntriesByUser(_ context.Context, userID int64) ([]*models.TimetableEntry, error) {
	var entries []*models.TimetableEntry
	for _, entry := range s.entries {
		if entry.UserID == userID {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func (s *fakeTimetableStore) DeleteEntry(_ context.Context, id int64) error {
	if _, ok := s.entries[id]; !ok {
		return apperrors.ErrTimetableEntryNotFound
	}
	delete(s.entries, id)
	return nil
}

type fakeStudentTimetableStore struct {
	entries map[int64]*models.StudentTimetableEntry
	nextID  int64
}

func newFakeStudentTimetableStore() *fakeStudentTimetableStore {
	return &fakeStudentTimetableStore{entries: map[int64]*models.StudentTimetableEntry{}, nextID: 1}
}

func (s *fakeStudentTimetableStore) CreateEntry(_ context.Context, entry *models.StudentTimetableEntry) (*models.StudentTimetableEntry, error) {
	entry.ID = s.nextID
	s.nextID++
	entry.CreatedAt = time.Now()
	entry.UpdatedAt = entry.CreatedAt
	s.entries[entry.ID] = entry
	return entry, nil
}

func (s *fakeStudentTimetableStore) GetEntryByID(_ context.Context, id int64) (*models.StudentTimetableEntry, error) {
	entry, ok := s.entries[id]
	if !ok {
		return nil, apperrors.ErrTimetableEntryNotFound
	}
	return entry, nil
}

func (s *fakeStudentTimetableStore) ListEntries(_ context.Context, filter *dto.StudentTimetableFilter) ([]*models.StudentTimetableEntry, error) {
	var entries []*models.StudentTimetableEntry
	for _, entry := range s.entries {
		if entry.UserID != filter.UserID {
			continue
		}
		if filter.Grade != "" && entry.Grade != filter.Grade {
			continue
		}
		if filter.Batch != "" && entry.Batch != filter.Batch {
			continue
		}
		if filter.Course != "" && entry.Course != filter.Course {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (s *fakeStudentTimetableStore) UpdateEntry(_ context.Context, id int64, updates map[string]interface{}) error {
	entry, ok := s.entries[id]
	if !ok {
		return apperrors.ErrTimetableEntryNotFound
	}
	if v, ok := updates["time_slot"].(string); ok {
		entry.Time = v
	}
	if v, ok := updates["day"].(string); ok {
		entry.Day = v
	}
	if v, ok := updates["teacher"].(string); ok {
		entry.Teacher = v
	}
	if v, ok := updates["subject"].(string); ok {
		entry.Subject = v
	}
	if v, ok := updates["venue"].(string); ok {
		entry.Venue = v
	}
	if v, ok := updates["grade"].(string); ok {
		entry.Grade = v
	}
	if v, ok := updates["batch"].(string); ok {
		entry.Batch = v
	}
	if v, ok := updates["course"].(string); ok {
		entry.Course = v
	}
	entry.UpdatedAt = time.Now()
	return nil
}

func (s *fakeStudentTimetableStore) DeleteEntry(_ context.Context, id int64) error {
	if _, ok := s.entries[id]; !ok {
		return apperrors.ErrTimetableEntryNotFound
	}
	delete(s.entries, id)
	return nil
}

type fakeTicketStore struct {
	tickets map[int64]*models.Ticket
	nextID  int64
}

func newFakeTicketStore() *fakeTicketStore {
	return &fakeTicketStore{tickets: map[int64]*models.Ticket{}, nextID: 1}
}

func (s *fakeTicketStore) CreateTicket(_ context.Context, ticket *models.Ticket) (*models.Ticket, error) {
	ticket.ID = s.nextID
	s.nextID++
	ticket.CreatedAt = time.Now()
	s.tickets[ticket.ID] = ticket
	return ticket, nil
}

func (s *fakeTicketStore) GetTicketByID(_ context.Context, id int64) (*models.Ticket, error) {
	ticket, ok := s.tickets[id]
	if !ok {
		return nil, apperrors.ErrTicketNotFound
	}
	return ticket, nil
}

func (s *fakeTicketStore) ListTickets(_ context.Context, offset, limit int) ([]*models.Ticket, error) {
	var tickets []*models.Ticket
	for _, ticket := range s.tickets {
		tickets = append(tickets, ticket)
	}
	if offset >= len(tickets) {
		return nil, nil
	}
	end := offset + limit
	if end > len(tickets) {
		end = len(tickets)
	}
	return tickets[offset:end], nil
}

func (s *fakeTicketStore) CountTickets(_ context.Context) (int64, error) {
	return int64(len(s.tickets)), nil
}

func (s *fakeTicketStore) UpdateTicket(_ context.Context, id int64, updates map[string]interface{}) error {
	ticket, ok := s.tickets[id]
	if !ok {
		return apperrors.ErrTicketNotFound
	}
	if v, ok := updates["name"].(string); ok {
		ticket.Name = v
	}
	if v, ok := updates["university_id"].(string); ok {
		ticket.UniversityID = v
	}
	if v, ok := updates["email"].(string); ok {
		ticket.Email = v
	}
	if v, ok := updates["contact_number"].(string); ok {
		ticket.ContactNumber = v
	}
	if v, ok := updates["department"].(string); ok {
		ticket.Department = v
	}
	if v, ok := updates["message"].(string); ok {
		ticket.Message = v
	}
	if v, ok := updates["attachment"].(string); ok {
		ticket.Attachment = &v
	}
	return nil
}

func (s *fakeTicketStore) DeleteTicket(_ context.Context, id int64) error {
	if _, ok := s.tickets[id]; !ok {
		return apperrors.ErrTicketNotFound
	}
	delete(s.tickets, id)
	return nil
}

type fakeVenueStore struct {
	venues map[int64]*models.Venue
	nextID int64
}

func newFakeVenueStore() *fakeVenueStore {
	return &fakeVenueStore{venues: map[int64]*models.Venue{}, nextID: 1}
}

func (s *fakeVenueStore) CreateVenue(_ context.Context, venue *models.Venue) (*models.Venue, error) {
	for _, existing := range s.venues {
		if existing.Name == venue.Name {
			return nil, apperrors.ErrVenueAlreadyExists
		}
	}
	venue.ID = s.nextID
	s.nextID++
	s.venues[venue.ID] = venue
	return venue, nil
}

func (s *fakeVenueStore) ListVenues(_ context.Context) ([]*models.Venue, error) {
	var venues []*models.Venue
	for _, venue := range s.venues {
		venues = append(venues, venue)
	}
	return venues, nil
}

type fakeBatchStore struct {
	batches map[int64]*models.Batch
	nextID  int64
}

func newFakeBatchStore() *fakeBatchStore {
	return &fakeBatchStore{batches: map[int64]*models.Batch{}, nextID: 1}
}

func (s *fakeBatchStore) CreateBatch(_ context.Context, batch *models.Batch) (*models.Batch, error) {
	batch.ID = s.nextID
	s.nextID++
	batch.CreatedAt = time.Now()
	s.batches[batch.ID] = batch
	return batch, nil
}

func (s *fakeBatchStore) ListBatches(_ context.Context) ([]*models.Batch, error) {
	var batches []*models.Batch
	for _, batch := range s.batches {
		batches = append(batches, batch)
	}
	return batches, nil
}

// fakeStorage records saved and deleted files without touching disk
type fakeStorage struct {
	saved   []string
	deleted []string
}

func (s *fakeStorage) SaveFile(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader == nil {
		return "", nil
	}
	path := "uploads/" + fileHeader.Filename
	s.saved = append(s.saved, path)
	return path, nil
}

func (s *fakeStorage) DeleteFile(filePath string) error {
	s.deleted = append(s.deleted, filePath)
	return nil
}

// fileHeader builds a multipart header carrying only the metadata the
// services inspect
func fileHeader(filename, contentType string) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: filename,
		Header:   textproto.MIMEHeader{"Content-Type": []string{contentType}},
	}
}
