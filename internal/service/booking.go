package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/wb-go/wbf/logger"

	"github.com/CAPTxTreeckle/Treeckle-3.0/internal/domain"
	"github.com/CAPTxTreeckle/Treeckle-3.0/internal/service/ports"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	venueRepo   ports.VenueRepo
	notifier    ports.BookingNotifier
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	venueRepo ports.VenueRepo,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		venueRepo:   venueRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// Create persists the requested ranges that survive overlap resolution as
// PENDING bookings and reports the losing ranges as dropped.
func (s *BookingService) Create(ctx context.Context, requester *domain.User, input domain.CreateBookingsInput) (*domain.CreateBookingsResult, error) {
	if len(input.DateTimeRanges) == 0 {
		return &domain.CreateBookingsResult{}, nil
	}

	for _, r := range input.DateTimeRanges {
		if !r.Start.Before(r.End) {
			return nil, fmt.Errorf("%w: booking start date/time must be before end date/time", domain.ErrValidation)
		}
	}

	venue, err := s.venueRepo.GetByID(ctx, requester.OrganizationID, input.VenueID)
	if err != nil {
		return nil, fmt.Errorf("get venue: %w", err)
	}

	formData := input.FormResponseData
	if formData == nil {
		formData = json.RawMessage("[]")
	}

	candidates := make([]*domain.Booking, 0, len(input.DateTimeRanges))
	for _, r := range input.DateTimeRanges {
		candidates = append(candidates, &domain.Booking{
			Title:            input.Title,
			BookerID:         requester.ID,
			VenueID:          venue.ID,
			StartDateTime:    r.Start.UTC(),
			EndDateTime:      r.End.UTC(),
			Status:           domain.BookingStatusPending,
			FormResponseData: formData,
			Booker:           requester,
			Venue:            venue,
		})
	}

	created, err := s.bookingRepo.CreateBatch(ctx, candidates)
	if err != nil {
		return nil, fmt.Errorf("create bookings: %w", err)
	}

	result := &domain.CreateBookingsResult{
		Created: created,
		Dropped: droppedRanges(input.DateTimeRanges, created),
	}

	s.logger.Info("bookings created",
		logger.Int("requested", len(input.DateTimeRanges)),
		logger.Int("created", len(created)),
		logger.Int("dropped", len(result.Dropped)),
		logger.Int64("venue_id", venue.ID),
		logger.Int64("booker_id", requester.ID),
	)

	if len(created) > 0 {
		go s.notifier.NotifyBookingsCreated(context.WithoutCancel(ctx), created)
	}

	return result, nil
}

// droppedRanges returns the requested ranges for which no booking was
// created, deduplicated on (start, end).
func droppedRanges(requested []domain.DateTimeInterval, created []*domain.Booking) []domain.DateTimeInterval {
	createdSet := make(map[[2]int64]struct{}, len(created))
	for _, b := range created {
		createdSet[[2]int64{b.StartDateTime.UnixMilli(), b.EndDateTime.UnixMilli()}] = struct{}{}
	}

	var dropped []domain.DateTimeInterval
	for _, r := range requested {
		key := [2]int64{r.Start.UnixMilli(), r.End.UnixMilli()}
		if _, ok := createdSet[key]; ok {
			continue
		}
		createdSet[key] = struct{}{}
		dropped = append(dropped, domain.DateTimeInterval{Start: r.Start.UTC(), End: r.End.UTC()})
	}

	return dropped
}

// Get returns one booking, visible only to its booker and organization
// admins. Bookings outside the requester's organization look nonexistent.
func (s *BookingService) Get(ctx context.Context, requester *domain.User, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if booking.Venue.OrganizationID != requester.OrganizationID {
		return nil, domain.ErrBookingNotFound
	}

	if requester.Role != domain.RoleAdmin && booking.BookerID != requester.ID {
		return nil, domain.ErrBookingNotFound
	}

	return booking, nil
}

func (s *BookingService) List(ctx context.Context, requester *domain.User, filter domain.BookingFilter) ([]*domain.Booking, error) {
	filter.OrganizationID = requester.OrganizationID
	return s.bookingRepo.List(ctx, filter)
}

// UpdateStatus applies one status action to one booking. Unlike the batch
// path it is strict: cancelled bookings, no-op transitions and permission
// violations are reported as errors. On approval the repository rejects
// every clashing pending booking within the same transaction; the returned
// slice holds every touched booking with a map of their prior statuses.
func (s *BookingService) UpdateStatus(ctx context.Context, requester *domain.User, bookingID int64, action domain.BookingStatusAction) ([]*domain.Booking, map[int64]domain.BookingStatus, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, nil, fmt.Errorf("get booking: %w", err)
	}

	if booking.Venue.OrganizationID != requester.OrganizationID {
		return nil, nil, domain.ErrBookingNotFound
	}

	if booking.Status == domain.BookingStatusCancelled {
		return nil, nil, domain.ErrCancelledBookingUpdate
	}

	if !canApplyAction(requester, booking, action) {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrNoBookingPermission, strings.ToLower(string(action)))
	}

	newStatus, err := booking.NextStatus(action)
	if err != nil {
		return nil, nil, err
	}

	updated, previous, err := s.bookingRepo.Transition(ctx, booking.ID, newStatus)
	if err != nil {
		return nil, nil, fmt.Errorf("transition booking: %w", err)
	}

	s.logger.Info("booking status updated",
		logger.Int64("booking_id", booking.ID),
		logger.String("action", string(action)),
		logger.Int("updated", len(updated)),
	)

	go s.notifier.NotifyBookingsUpdated(context.WithoutCancel(ctx), updated, previous)

	return updated, previous, nil
}

// UpdateStatuses applies a batch of status actions scoped to the requester's
// organization. The batch path is lenient: the first action per booking wins
// and later duplicates are ignored, while unknown bookings, cancelled
// bookings, no-op transitions and unauthorized actions are skipped without
// error. Everything that remains commits as one atomic unit.
func (s *BookingService) UpdateStatuses(ctx context.Context, requester *domain.User, actions []domain.BookingStatusActionInput) ([]*domain.Booking, map[int64]domain.BookingStatus, error) {
	seen := make(map[int64]struct{}, len(actions))
	deduped := make([]domain.BookingStatusActionInput, 0, len(actions))
	ids := make([]int64, 0, len(actions))
	for _, a := range actions {
		if _, ok := seen[a.BookingID]; ok {
			continue
		}
		seen[a.BookingID] = struct{}{}
		deduped = append(deduped, a)
		ids = append(ids, a.BookingID)
	}

	if len(deduped) == 0 {
		return nil, map[int64]domain.BookingStatus{}, nil
	}

	bookings, err := s.bookingRepo.List(ctx, domain.BookingFilter{
		OrganizationID: requester.OrganizationID,
		IDs:            ids,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("list bookings: %w", err)
	}

	byID := make(map[int64]*domain.Booking, len(bookings))
	for _, b := range bookings {
		byID[b.ID] = b
	}

	var changes []domain.StatusChange
	for _, a := range deduped {
		booking, ok := byID[a.BookingID]
		if !ok {
			continue
		}
		if booking.Status == domain.BookingStatusCancelled {
			continue
		}
		if !canApplyAction(requester, booking, a.Action) {
			continue
		}
		newStatus, err := booking.NextStatus(a.Action)
		if err != nil {
			continue
		}
		changes = append(changes, domain.StatusChange{BookingID: booking.ID, NewStatus: newStatus})
	}

	if len(changes) == 0 {
		return nil, map[int64]domain.BookingStatus{}, nil
	}

	updated, previous, err := s.bookingRepo.TransitionBatch(ctx, changes)
	if err != nil {
		return nil, nil, fmt.Errorf("transition bookings: %w", err)
	}

	s.logger.Info("booking statuses updated",
		logger.Int("requested", len(actions)),
		logger.Int("applied", len(changes)),
		logger.Int("updated", len(updated)),
	)

	if len(updated) > 0 {
		go s.notifier.NotifyBookingsUpdated(context.WithoutCancel(ctx), updated, previous)
	}

	return updated, previous, nil
}

func (s *BookingService) Delete(ctx context.Context, requester *domain.User, ids []int64) ([]*domain.Booking, error) {
	deleted, err := s.bookingRepo.DeleteByIDs(ctx, requester.OrganizationID, ids)
	if err != nil {
		return nil, fmt.Errorf("delete bookings: %w", err)
	}

	s.logger.Info("bookings deleted",
		logger.Int("count", len(deleted)),
		logger.Int64("organization_id", requester.OrganizationID),
	)

	return deleted, nil
}

func (s *BookingService) TotalCount(ctx context.Context) (int64, error) {
	return s.bookingRepo.CountAll(ctx)
}

func (s *BookingService) PendingCount(ctx context.Context, requester *domain.User) (int64, error) {
	return s.bookingRepo.CountByStatus(ctx, requester.OrganizationID, domain.BookingStatusPending)
}

// canApplyAction enforces the authorization contract: only the booker may
// cancel their own booking, every other action requires the admin role.
func canApplyAction(requester *domain.User, booking *domain.Booking, action domain.BookingStatusAction) bool {
	if action == domain.BookingActionCancel {
		return booking.BookerID == requester.ID
	}
	return requester.Role == domain.RoleAdmin
}
