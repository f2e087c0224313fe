package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/CAPTxTreeckle/Treeckle-3.0/internal/domain"
	"github.com/CAPTxTreeckle/Treeckle-3.0/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newBookingService(t *testing.T) (*mocks.MockBookingRepo, *mocks.MockVenueRepo, *mocks.MockBookingNotifier, *BookingService) {
	t.Helper()
	bookingRepo := mocks.NewMockBookingRepo(t)
	venueRepo := mocks.NewMockVenueRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	svc := NewBookingService(bookingRepo, venueRepo, notifier, newTestLogger(t))
	return bookingRepo, venueRepo, notifier, svc
}

func slot(startHour, endHour int) domain.DateTimeInterval {
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	return domain.DateTimeInterval{
		Start: day.Add(time.Duration(startHour) * time.Hour),
		End:   day.Add(time.Duration(endHour) * time.Hour),
	}
}

var (
	testAdmin    = &domain.User{ID: 1, OrganizationID: 1, Name: "Admin", Role: domain.RoleAdmin}
	testResident = &domain.User{ID: 2, OrganizationID: 1, Name: "Resident", Role: domain.RoleResident}
	testVenue    = &domain.Venue{ID: 10, OrganizationID: 1, Name: "Common Hall"}
)

// --- Create ---

func TestBookingService_Create_ReportsDroppedRanges(t *testing.T) {
	bookingRepo, venueRepo, notifier, svc := newBookingService(t)

	kept := slot(10, 12)
	lost := slot(11, 13)

	created := []*domain.Booking{{
		ID:            100,
		Title:         "Dance practice",
		BookerID:      testResident.ID,
		VenueID:       testVenue.ID,
		StartDateTime: kept.Start,
		EndDateTime:   kept.End,
		Status:        domain.BookingStatusPending,
		Booker:        testResident,
		Venue:         testVenue,
	}}

	venueRepo.EXPECT().GetByID(mock.Anything, int64(1), testVenue.ID).Return(testVenue, nil)
	bookingRepo.EXPECT().CreateBatch(mock.Anything, mock.Anything).Return(created, nil)
	notifier.EXPECT().NotifyBookingsCreated(mock.Anything, created).Return()

	result, err := svc.Create(context.Background(), testResident, domain.CreateBookingsInput{
		Title:          "Dance practice",
		VenueID:        testVenue.ID,
		DateTimeRanges: []domain.DateTimeInterval{kept, lost},
	})

	require.NoError(t, err)
	require.Len(t, result.Created, 1)
	require.Len(t, result.Dropped, 1)
	assert.Equal(t, lost.Start, result.Dropped[0].Start)
	assert.Equal(t, lost.End, result.Dropped[0].End)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Create_AllRangesSurvive(t *testing.T) {
	bookingRepo, venueRepo, notifier, svc := newBookingService(t)

	r1, r2 := slot(10, 12), slot(12, 14)
	created := []*domain.Booking{
		{ID: 100, StartDateTime: r1.Start, EndDateTime: r1.End},
		{ID: 101, StartDateTime: r2.Start, EndDateTime: r2.End},
	}

	venueRepo.EXPECT().GetByID(mock.Anything, int64(1), testVenue.ID).Return(testVenue, nil)
	bookingRepo.EXPECT().CreateBatch(mock.Anything, mock.Anything).Return(created, nil)
	notifier.EXPECT().NotifyBookingsCreated(mock.Anything, created).Return()

	result, err := svc.Create(context.Background(), testResident, domain.CreateBookingsInput{
		Title:          "Movie night",
		VenueID:        testVenue.ID,
		DateTimeRanges: []domain.DateTimeInterval{r1, r2},
	})

	require.NoError(t, err)
	assert.Len(t, result.Created, 2)
	assert.Empty(t, result.Dropped)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Create_EmptyRanges(t *testing.T) {
	_, _, _, svc := newBookingService(t)

	result, err := svc.Create(context.Background(), testResident, domain.CreateBookingsInput{
		Title:   "Nothing",
		VenueID: testVenue.ID,
	})

	require.NoError(t, err)
	assert.Empty(t, result.Created)
	assert.Empty(t, result.Dropped)
}

func TestBookingService_Create_InvalidRange(t *testing.T) {
	_, _, _, svc := newBookingService(t)

	_, err := svc.Create(context.Background(), testResident, domain.CreateBookingsInput{
		Title:          "Backwards",
		VenueID:        testVenue.ID,
		DateTimeRanges: []domain.DateTimeInterval{{Start: slot(12, 14).Start, End: slot(10, 12).Start}},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Create_VenueNotFound(t *testing.T) {
	_, venueRepo, _, svc := newBookingService(t)

	venueRepo.EXPECT().GetByID(mock.Anything, int64(1), int64(99)).Return(nil, domain.ErrVenueNotFound)

	_, err := svc.Create(context.Background(), testResident, domain.CreateBookingsInput{
		Title:          "Nowhere",
		VenueID:        99,
		DateTimeRanges: []domain.DateTimeInterval{slot(10, 12)},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrVenueNotFound)
}

func TestBookingService_Create_NoNotificationWhenNothingCreated(t *testing.T) {
	bookingRepo, venueRepo, _, svc := newBookingService(t)

	r := slot(10, 12)
	venueRepo.EXPECT().GetByID(mock.Anything, int64(1), testVenue.ID).Return(testVenue, nil)
	bookingRepo.EXPECT().CreateBatch(mock.Anything, mock.Anything).Return(nil, nil)

	result, err := svc.Create(context.Background(), testResident, domain.CreateBookingsInput{
		Title:          "Clashing",
		VenueID:        testVenue.ID,
		DateTimeRanges: []domain.DateTimeInterval{r},
	})

	require.NoError(t, err)
	assert.Empty(t, result.Created)
	require.Len(t, result.Dropped, 1)
}

// --- UpdateStatus ---

func pendingBooking(id int64, booker *domain.User) *domain.Booking {
	r := slot(10, 12)
	return &domain.Booking{
		ID:            id,
		Title:         "Practice",
		BookerID:      booker.ID,
		VenueID:       testVenue.ID,
		StartDateTime: r.Start,
		EndDateTime:   r.End,
		Status:        domain.BookingStatusPending,
		Booker:        booker,
		Venue:         testVenue,
	}
}

func TestBookingService_UpdateStatus_ApproveCascades(t *testing.T) {
	bookingRepo, _, notifier, svc := newBookingService(t)

	booking := pendingBooking(100, testResident)
	rejected := pendingBooking(101, testResident)
	rejected.Status = domain.BookingStatusRejected

	updated := []*domain.Booking{booking, rejected}
	previous := map[int64]domain.BookingStatus{
		100: domain.BookingStatusPending,
		101: domain.BookingStatusPending,
	}

	bookingRepo.EXPECT().GetByID(mock.Anything, int64(100)).Return(booking, nil)
	bookingRepo.EXPECT().Transition(mock.Anything, int64(100), domain.BookingStatusApproved).Return(updated, previous, nil)
	notifier.EXPECT().NotifyBookingsUpdated(mock.Anything, updated, previous).Return()

	got, prev, err := svc.UpdateStatus(context.Background(), testAdmin, 100, domain.BookingActionApprove)

	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, previous, prev)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_UpdateStatus_Clash(t *testing.T) {
	bookingRepo, _, _, svc := newBookingService(t)

	booking := pendingBooking(100, testResident)

	bookingRepo.EXPECT().GetByID(mock.Anything, int64(100)).Return(booking, nil)
	bookingRepo.EXPECT().Transition(mock.Anything, int64(100), domain.BookingStatusApproved).
		Return(nil, nil, domain.ErrClashingApprovedBookings)

	_, _, err := svc.UpdateStatus(context.Background(), testAdmin, 100, domain.BookingActionApprove)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrClashingApprovedBookings)
}

func TestBookingService_UpdateStatus_CancelledIsTerminal(t *testing.T) {
	bookingRepo, _, _, svc := newBookingService(t)

	booking := pendingBooking(100, testResident)
	booking.Status = domain.BookingStatusCancelled

	bookingRepo.EXPECT().GetByID(mock.Anything, int64(100)).Return(booking, nil)

	_, _, err := svc.UpdateStatus(context.Background(), testAdmin, 100, domain.BookingActionReject)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCancelledBookingUpdate)
}

func TestBookingService_UpdateStatus_NoOp(t *testing.T) {
	bookingRepo, _, _, svc := newBookingService(t)

	booking := pendingBooking(100, testResident)
	booking.Status = domain.BookingStatusApproved

	bookingRepo.EXPECT().GetByID(mock.Anything, int64(100)).Return(booking, nil)

	_, _, err := svc.UpdateStatus(context.Background(), testAdmin, 100, domain.BookingActionApprove)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSameBookingStatus)
}

func TestBookingService_UpdateStatus_ResidentCannotApprove(t *testing.T) {
	bookingRepo, _, _, svc := newBookingService(t)

	booking := pendingBooking(100, testResident)

	bookingRepo.EXPECT().GetByID(mock.Anything, int64(100)).Return(booking, nil)

	_, _, err := svc.UpdateStatus(context.Background(), testResident, 100, domain.BookingActionApprove)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoBookingPermission)
}

func TestBookingService_UpdateStatus_AdminCannotCancelOthers(t *testing.T) {
	bookingRepo, _, _, svc := newBookingService(t)

	booking := pendingBooking(100, testResident)

	bookingRepo.EXPECT().GetByID(mock.Anything, int64(100)).Return(booking, nil)

	_, _, err := svc.UpdateStatus(context.Background(), testAdmin, 100, domain.BookingActionCancel)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoBookingPermission)
}

func TestBookingService_UpdateStatus_BookerCancelsOwn(t *testing.T) {
	bookingRepo, _, notifier, svc := newBookingService(t)

	booking := pendingBooking(100, testResident)
	cancelled := pendingBooking(100, testResident)
	cancelled.Status = domain.BookingStatusCancelled

	updated := []*domain.Booking{cancelled}
	previous := map[int64]domain.BookingStatus{100: domain.BookingStatusPending}

	bookingRepo.EXPECT().GetByID(mock.Anything, int64(100)).Return(booking, nil)
	bookingRepo.EXPECT().Transition(mock.Anything, int64(100), domain.BookingStatusCancelled).Return(updated, previous, nil)
	notifier.EXPECT().NotifyBookingsUpdated(mock.Anything, updated, previous).Return()

	got, _, err := svc.UpdateStatus(context.Background(), testResident, 100, domain.BookingActionCancel)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.BookingStatusCancelled, got[0].Status)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_UpdateStatus_ForeignOrgLooksMissing(t *testing.T) {
	bookingRepo, _, _, svc := newBookingService(t)

	foreignVenue := &domain.Venue{ID: 20, OrganizationID: 2, Name: "Other Hall"}
	booking := pendingBooking(100, testResident)
	booking.Venue = foreignVenue

	bookingRepo.EXPECT().GetByID(mock.Anything, int64(100)).Return(booking, nil)

	_, _, err := svc.UpdateStatus(context.Background(), testAdmin, 100, domain.BookingActionApprove)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

// --- UpdateStatuses ---

func TestBookingService_UpdateStatuses_LenientSkips(t *testing.T) {
	bookingRepo, _, notifier, svc := newBookingService(t)

	approvable := pendingBooking(100, testResident)
	cancelledBooking := pendingBooking(101, testResident)
	cancelledBooking.Status = domain.BookingStatusCancelled
	noOp := pendingBooking(102, testResident)
	noOp.Status = domain.BookingStatusApproved

	bookingRepo.EXPECT().
		List(mock.Anything, domain.BookingFilter{OrganizationID: 1, IDs: []int64{100, 101, 102, 999}}).
		Return([]*domain.Booking{approvable, cancelledBooking, noOp}, nil)

	wantChanges := []domain.StatusChange{{BookingID: 100, NewStatus: domain.BookingStatusApproved}}
	updated := []*domain.Booking{approvable}
	previous := map[int64]domain.BookingStatus{100: domain.BookingStatusPending}

	bookingRepo.EXPECT().TransitionBatch(mock.Anything, wantChanges).Return(updated, previous, nil)
	notifier.EXPECT().NotifyBookingsUpdated(mock.Anything, updated, previous).Return()

	got, _, err := svc.UpdateStatuses(context.Background(), testAdmin, []domain.BookingStatusActionInput{
		{BookingID: 100, Action: domain.BookingActionApprove},
		{BookingID: 101, Action: domain.BookingActionApprove}, // cancelled, skipped
		{BookingID: 102, Action: domain.BookingActionApprove}, // no-op, skipped
		{BookingID: 999, Action: domain.BookingActionApprove}, // unknown, skipped
	})

	require.NoError(t, err)
	assert.Len(t, got, 1)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_UpdateStatuses_FirstActionPerBookingWins(t *testing.T) {
	bookingRepo, _, notifier, svc := newBookingService(t)

	booking := pendingBooking(100, testResident)

	bookingRepo.EXPECT().
		List(mock.Anything, domain.BookingFilter{OrganizationID: 1, IDs: []int64{100}}).
		Return([]*domain.Booking{booking}, nil)

	wantChanges := []domain.StatusChange{{BookingID: 100, NewStatus: domain.BookingStatusApproved}}
	updated := []*domain.Booking{booking}
	previous := map[int64]domain.BookingStatus{100: domain.BookingStatusPending}

	bookingRepo.EXPECT().TransitionBatch(mock.Anything, wantChanges).Return(updated, previous, nil)
	notifier.EXPECT().NotifyBookingsUpdated(mock.Anything, updated, previous).Return()

	_, _, err := svc.UpdateStatuses(context.Background(), testAdmin, []domain.BookingStatusActionInput{
		{BookingID: 100, Action: domain.BookingActionApprove},
		{BookingID: 100, Action: domain.BookingActionReject}, // duplicate id, ignored
	})

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_UpdateStatuses_UnauthorizedActionsSkipped(t *testing.T) {
	bookingRepo, _, _, svc := newBookingService(t)

	othersBooking := pendingBooking(100, testAdmin)

	bookingRepo.EXPECT().
		List(mock.Anything, domain.BookingFilter{OrganizationID: 1, IDs: []int64{100}}).
		Return([]*domain.Booking{othersBooking}, nil)

	got, prev, err := svc.UpdateStatuses(context.Background(), testResident, []domain.BookingStatusActionInput{
		{BookingID: 100, Action: domain.BookingActionApprove},
	})

	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Empty(t, prev)
}

func TestBookingService_UpdateStatuses_Empty(t *testing.T) {
	_, _, _, svc := newBookingService(t)

	got, prev, err := svc.UpdateStatuses(context.Background(), testAdmin, nil)

	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Empty(t, prev)
}

func TestBookingService_UpdateStatuses_BatchClashFailsWhole(t *testing.T) {
	bookingRepo, _, _, svc := newBookingService(t)

	b1 := pendingBooking(100, testResident)
	b2 := pendingBooking(101, testResident)

	bookingRepo.EXPECT().
		List(mock.Anything, domain.BookingFilter{OrganizationID: 1, IDs: []int64{100, 101}}).
		Return([]*domain.Booking{b1, b2}, nil)
	bookingRepo.EXPECT().TransitionBatch(mock.Anything, mock.Anything).
		Return(nil, nil, domain.ErrClashingApprovedBookings)

	_, _, err := svc.UpdateStatuses(context.Background(), testAdmin, []domain.BookingStatusActionInput{
		{BookingID: 100, Action: domain.BookingActionApprove},
		{BookingID: 101, Action: domain.BookingActionApprove},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrClashingApprovedBookings)
}

// --- Get / Delete / counts ---

func TestBookingService_Get_BookerSeesOwn(t *testing.T) {
	bookingRepo, _, _, svc := newBookingService(t)

	booking := pendingBooking(100, testResident)
	bookingRepo.EXPECT().GetByID(mock.Anything, int64(100)).Return(booking, nil)

	got, err := svc.Get(context.Background(), testResident, 100)

	require.NoError(t, err)
	assert.Equal(t, int64(100), got.ID)
}

func TestBookingService_Get_ResidentCannotSeeOthers(t *testing.T) {
	bookingRepo, _, _, svc := newBookingService(t)

	booking := pendingBooking(100, testAdmin)
	bookingRepo.EXPECT().GetByID(mock.Anything, int64(100)).Return(booking, nil)

	_, err := svc.Get(context.Background(), testResident, 100)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_Get_AdminSeesAnyInOrg(t *testing.T) {
	bookingRepo, _, _, svc := newBookingService(t)

	booking := pendingBooking(100, testResident)
	bookingRepo.EXPECT().GetByID(mock.Anything, int64(100)).Return(booking, nil)

	got, err := svc.Get(context.Background(), testAdmin, 100)

	require.NoError(t, err)
	assert.Equal(t, int64(100), got.ID)
}

func TestBookingService_List_ScopedToOrganization(t *testing.T) {
	bookingRepo, _, _, svc := newBookingService(t)

	bookingRepo.EXPECT().
		List(mock.Anything, domain.BookingFilter{OrganizationID: 1}).
		Return([]*domain.Booking{}, nil)

	// The caller-supplied organization is overwritten with the requester's.
	_, err := svc.List(context.Background(), testAdmin, domain.BookingFilter{OrganizationID: 42})

	require.NoError(t, err)
}

func TestBookingService_Delete_ScopedToOrganization(t *testing.T) {
	bookingRepo, _, _, svc := newBookingService(t)

	deleted := []*domain.Booking{pendingBooking(100, testResident)}
	bookingRepo.EXPECT().DeleteByIDs(mock.Anything, int64(1), []int64{100, 999}).Return(deleted, nil)

	got, err := svc.Delete(context.Background(), testAdmin, []int64{100, 999})

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestBookingService_Counts(t *testing.T) {
	bookingRepo, _, _, svc := newBookingService(t)

	bookingRepo.EXPECT().CountAll(mock.Anything).Return(int64(7), nil)
	bookingRepo.EXPECT().CountByStatus(mock.Anything, int64(1), domain.BookingStatusPending).Return(int64(3), nil)

	total, err := svc.TotalCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), total)

	pending, err := svc.PendingCount(context.Background(), testAdmin)
	require.NoError(t, err)
	assert.Equal(t, int64(3), pending)
}

func TestBookingService_Create_RepoError(t *testing.T) {
	bookingRepo, venueRepo, _, svc := newBookingService(t)

	venueRepo.EXPECT().GetByID(mock.Anything, int64(1), testVenue.ID).Return(testVenue, nil)
	bookingRepo.EXPECT().CreateBatch(mock.Anything, mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.Create(context.Background(), testResident, domain.CreateBookingsInput{
		Title:          "Broken",
		VenueID:        testVenue.ID,
		DateTimeRanges: []domain.DateTimeInterval{slot(10, 12)},
	})

	require.Error(t, err)
}
