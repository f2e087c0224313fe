package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/CAPTxTreeckle/Treeckle-3.0/internal/domain"
	"github.com/CAPTxTreeckle/Treeckle-3.0/internal/handler/dto"
	hmocks "github.com/CAPTxTreeckle/Treeckle-3.0/internal/handler/mocks"
	"github.com/CAPTxTreeckle/Treeckle-3.0/internal/middleware"
)

var (
	adminUser    = &domain.User{ID: 1, OrganizationID: 1, Name: "Admin", Email: "admin@example.com", Role: domain.RoleAdmin}
	residentUser = &domain.User{ID: 2, OrganizationID: 1, Name: "Resident", Email: "resident@example.com", Role: domain.RoleResident}
)

// setupRouter wires the handler behind a stub auth middleware that injects
// the given requester. A nil requester simulates an unauthenticated call.
func setupRouter(t *testing.T, requester *domain.User) (*hmocks.MockBookingSvc, *hmocks.MockVenueSvc, *hmocks.MockUserSvc, http.Handler) {
	t.Helper()
	bookingSvc := hmocks.NewMockBookingSvc(t)
	venueSvc := hmocks.NewMockVenueSvc(t)
	userSvc := hmocks.NewMockUserSvc(t)

	h := NewHandler(bookingSvc, venueSvc, userSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	api.GET("/bookings/totalcount", h.TotalBookingCount)

	authed := api.Group("")
	authed.Use(func(c *ginext.Context) {
		if requester != nil {
			c.Set(middleware.RequesterKey, requester)
		}
		c.Next()
	})
	{
		authed.POST("/bookings", h.CreateBookings)
		authed.GET("/bookings", h.ListBookings)
		authed.PATCH("/bookings", h.UpdateBookingStatuses)
		authed.DELETE("/bookings", h.DeleteBookings)
		authed.GET("/bookings/pendingcount", h.PendingBookingCount)
		authed.GET("/bookings/:id", h.GetBooking)
		authed.PATCH("/bookings/:id", h.UpdateBookingStatus)
		authed.POST("/venues", h.CreateVenue)
		authed.GET("/venues", h.ListVenues)
		authed.POST("/users", h.CreateUser)
		authed.GET("/users", h.ListUsers)
		authed.GET("/users/:id", h.GetUser)
	}

	return bookingSvc, venueSvc, userSvc, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// --- Bookings ---

func TestHandler_CreateBookings_Success(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t, residentUser)

	start := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)
	dropped := domain.DateTimeInterval{Start: end, End: end.Add(time.Hour)}

	result := &domain.CreateBookingsResult{
		Created: []*domain.Booking{{
			ID:            100,
			Title:         "Dance practice",
			StartDateTime: start,
			EndDateTime:   end,
			Status:        domain.BookingStatusPending,
			Booker:        residentUser,
		}},
		Dropped: []domain.DateTimeInterval{dropped},
	}

	bookingSvc.EXPECT().Create(mock.Anything, residentUser, mock.Anything).Return(result, nil)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", dto.CreateBookingsRequest{
		Title:   "Dance practice",
		VenueID: 10,
		DateTimeRanges: []dto.DateTimeRangeRequest{
			{StartDateTime: start.UnixMilli(), EndDateTime: end.UnixMilli()},
			{StartDateTime: dropped.Start.UnixMilli(), EndDateTime: dropped.End.UnixMilli()},
		},
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.CreateBookingsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Bookings, 1)
	require.Len(t, resp.Dropped, 1)
	assert.Equal(t, start.UnixMilli(), resp.Bookings[0].StartDateTime)
	assert.Equal(t, dropped.Start.UnixMilli(), resp.Dropped[0].StartDateTime)
}

func TestHandler_CreateBookings_Unauthenticated(t *testing.T) {
	_, _, _, r := setupRouter(t, nil)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", dto.CreateBookingsRequest{
		Title:   "No auth",
		VenueID: 10,
		DateTimeRanges: []dto.DateTimeRangeRequest{
			{StartDateTime: 1, EndDateTime: 2},
		},
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_CreateBookings_NoRanges(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t, residentUser)

	bookingSvc.EXPECT().Create(mock.Anything, residentUser, mock.Anything).
		Return(&domain.CreateBookingsResult{}, nil)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", dto.CreateBookingsRequest{
		Title:   "Nothing requested",
		VenueID: 10,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.CreateBookingsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Bookings)
	assert.Empty(t, resp.Dropped)
}

func TestHandler_CreateBookings_BadRequest(t *testing.T) {
	_, _, _, r := setupRouter(t, residentUser)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", map[string]any{"title": ""})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetBooking_InvalidID(t *testing.T) {
	_, _, _, r := setupRouter(t, residentUser)

	w := doJSON(t, r, http.MethodGet, "/api/bookings/abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetBooking_NotFound(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t, residentUser)

	bookingSvc.EXPECT().Get(mock.Anything, residentUser, int64(404)).Return(nil, domain.ErrBookingNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/bookings/404", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_UpdateBookingStatus_Conflict(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t, adminUser)

	bookingSvc.EXPECT().UpdateStatus(mock.Anything, adminUser, int64(100), domain.BookingActionApprove).
		Return(nil, nil, domain.ErrClashingApprovedBookings)

	w := doJSON(t, r, http.MethodPatch, "/api/bookings/100", dto.UpdateBookingStatusRequest{Action: "APPROVE"})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_UpdateBookingStatus_Forbidden(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t, residentUser)

	bookingSvc.EXPECT().UpdateStatus(mock.Anything, residentUser, int64(100), domain.BookingActionApprove).
		Return(nil, nil, domain.ErrNoBookingPermission)

	w := doJSON(t, r, http.MethodPatch, "/api/bookings/100", dto.UpdateBookingStatusRequest{Action: "APPROVE"})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_UpdateBookingStatus_Cancelled(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t, adminUser)

	bookingSvc.EXPECT().UpdateStatus(mock.Anything, adminUser, int64(100), domain.BookingActionReject).
		Return(nil, nil, domain.ErrCancelledBookingUpdate)

	w := doJSON(t, r, http.MethodPatch, "/api/bookings/100", dto.UpdateBookingStatusRequest{Action: "REJECT"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateBookingStatus_InvalidAction(t *testing.T) {
	_, _, _, r := setupRouter(t, adminUser)

	w := doJSON(t, r, http.MethodPatch, "/api/bookings/100", map[string]any{"action": "DESTROY"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateBookingStatuses_Success(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t, adminUser)

	updated := []*domain.Booking{{ID: 100, Status: domain.BookingStatusApproved}}
	previous := map[int64]domain.BookingStatus{100: domain.BookingStatusPending}

	bookingSvc.EXPECT().
		UpdateStatuses(mock.Anything, adminUser, []domain.BookingStatusActionInput{
			{BookingID: 100, Action: domain.BookingActionApprove},
		}).
		Return(updated, previous, nil)

	w := doJSON(t, r, http.MethodPatch, "/api/bookings", dto.UpdateBookingStatusesRequest{
		Actions: []dto.BookingStatusActionRequest{{BookingID: 100, Action: "APPROVE"}},
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, string(domain.BookingStatusApproved), resp[0].Status)
}

func TestHandler_DeleteBookings_RequiresAdmin(t *testing.T) {
	_, _, _, r := setupRouter(t, residentUser)

	w := doJSON(t, r, http.MethodDelete, "/api/bookings", dto.DeleteBookingsRequest{IDs: []int64{100}})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_DeleteBookings_Success(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t, adminUser)

	deleted := []*domain.Booking{{ID: 100, Status: domain.BookingStatusPending}}
	bookingSvc.EXPECT().Delete(mock.Anything, adminUser, []int64{100}).Return(deleted, nil)

	w := doJSON(t, r, http.MethodDelete, "/api/bookings", dto.DeleteBookingsRequest{IDs: []int64{100}})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_TotalBookingCount_Public(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t, nil)

	bookingSvc.EXPECT().TotalCount(mock.Anything).Return(int64(42), nil)

	w := doJSON(t, r, http.MethodGet, "/api/bookings/totalcount", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CountResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.Count)
}

func TestHandler_PendingBookingCount_RequiresAdmin(t *testing.T) {
	_, _, _, r := setupRouter(t, residentUser)

	w := doJSON(t, r, http.MethodGet, "/api/bookings/pendingcount", nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_ListBookings_ResidentSeesWholeOrganization(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t, residentUser)

	bookingSvc.EXPECT().
		List(mock.Anything, residentUser, mock.MatchedBy(func(f domain.BookingFilter) bool {
			return f.BookerID == nil
		})).
		Return([]*domain.Booking{}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/bookings", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ListBookings_BookerFilterPassedThrough(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t, residentUser)

	bookingSvc.EXPECT().
		List(mock.Anything, residentUser, mock.MatchedBy(func(f domain.BookingFilter) bool {
			return f.BookerID != nil && *f.BookerID == 7
		})).
		Return([]*domain.Booking{}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/bookings?booker_id=7", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ListBookings_InvalidStatusFilter(t *testing.T) {
	_, _, _, r := setupRouter(t, adminUser)

	w := doJSON(t, r, http.MethodGet, "/api/bookings?statuses=BOGUS", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Venues ---

func TestHandler_CreateVenue_RequiresAdmin(t *testing.T) {
	_, _, _, r := setupRouter(t, residentUser)

	w := doJSON(t, r, http.MethodPost, "/api/venues", dto.CreateVenueRequest{Name: "Hall"})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_CreateVenue_Success(t *testing.T) {
	_, venueSvc, _, r := setupRouter(t, adminUser)

	venue := &domain.Venue{ID: 10, OrganizationID: 1, Name: "Hall"}
	venueSvc.EXPECT().Create(mock.Anything, adminUser, mock.Anything).Return(venue, nil)

	w := doJSON(t, r, http.MethodPost, "/api/venues", dto.CreateVenueRequest{Name: "Hall"})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.VenueResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Hall", resp.Name)
}

func TestHandler_CreateVenue_DuplicateName(t *testing.T) {
	_, venueSvc, _, r := setupRouter(t, adminUser)

	venueSvc.EXPECT().Create(mock.Anything, adminUser, mock.Anything).Return(nil, domain.ErrVenueTaken)

	w := doJSON(t, r, http.MethodPost, "/api/venues", dto.CreateVenueRequest{Name: "Hall"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Users ---

func TestHandler_CreateUser_Success(t *testing.T) {
	_, _, userSvc, r := setupRouter(t, adminUser)

	user := &domain.User{ID: 3, OrganizationID: 1, Name: "New", Email: "new@example.com", Role: domain.RoleResident}
	userSvc.EXPECT().Create(mock.Anything, adminUser, mock.Anything).Return(user, nil)

	w := doJSON(t, r, http.MethodPost, "/api/users", dto.CreateUserRequest{Name: "New", Email: "new@example.com"})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_CreateUser_EmailTaken(t *testing.T) {
	_, _, userSvc, r := setupRouter(t, adminUser)

	userSvc.EXPECT().Create(mock.Anything, adminUser, mock.Anything).Return(nil, domain.ErrEmailTaken)

	w := doJSON(t, r, http.MethodPost, "/api/users", dto.CreateUserRequest{Name: "New", Email: "new@example.com"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetUser_Success(t *testing.T) {
	_, _, userSvc, r := setupRouter(t, residentUser)

	userSvc.EXPECT().Get(mock.Anything, residentUser, int64(1)).Return(adminUser, nil)

	w := doJSON(t, r, http.MethodGet, "/api/users/1", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, adminUser.ID, resp.ID)
}

func TestHandler_GetUser_NotFound(t *testing.T) {
	_, _, userSvc, r := setupRouter(t, residentUser)

	userSvc.EXPECT().Get(mock.Anything, residentUser, int64(9)).Return(nil, domain.ErrUserNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/users/9", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListUsers_Success(t *testing.T) {
	_, _, userSvc, r := setupRouter(t, residentUser)

	userSvc.EXPECT().List(mock.Anything, residentUser).Return([]*domain.User{adminUser, residentUser}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/users", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}
