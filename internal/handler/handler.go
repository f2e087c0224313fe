package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/wb-go/wbf/ginext"

	"github.com/CAPTxTreeckle/Treeckle-3.0/internal/domain"
	"github.com/CAPTxTreeckle/Treeckle-3.0/internal/handler/dto"
	"github.com/CAPTxTreeckle/Treeckle-3.0/internal/middleware"
)

type BookingSvc interface {
	Create(ctx context.Context, requester *domain.User, input domain.CreateBookingsInput) (*domain.CreateBookingsResult, error)
	Get(ctx context.Context, requester *domain.User, id int64) (*domain.Booking, error)
	List(ctx context.Context, requester *domain.User, filter domain.BookingFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, requester *domain.User, bookingID int64, action domain.BookingStatusAction) ([]*domain.Booking, map[int64]domain.BookingStatus, error)
	UpdateStatuses(ctx context.Context, requester *domain.User, actions []domain.BookingStatusActionInput) ([]*domain.Booking, map[int64]domain.BookingStatus, error)
	Delete(ctx context.Context, requester *domain.User, ids []int64) ([]*domain.Booking, error)
	TotalCount(ctx context.Context) (int64, error)
	PendingCount(ctx context.Context, requester *domain.User) (int64, error)
}

type VenueSvc interface {
	Create(ctx context.Context, requester *domain.User, input domain.CreateVenueInput) (*domain.Venue, error)
	Get(ctx context.Context, requester *domain.User, id int64) (*domain.Venue, error)
	List(ctx context.Context, requester *domain.User) ([]*domain.Venue, error)
}

type UserSvc interface {
	Create(ctx context.Context, requester *domain.User, input domain.CreateUserInput) (*domain.User, error)
	Get(ctx context.Context, requester *domain.User, id int64) (*domain.User, error)
	List(ctx context.Context, requester *domain.User) ([]*domain.User, error)
}

type Handler struct {
	bookingService BookingSvc
	venueService   VenueSvc
	userService    UserSvc
}

func NewHandler(bookingService BookingSvc, venueService VenueSvc, userService UserSvc) *Handler {
	return &Handler{
		bookingService: bookingService,
		venueService:   venueService,
		userService:    userService,
	}
}

// Bookings

func (h *Handler) CreateBookings(c *ginext.Context) {
	requester, ok := h.requester(c)
	if !ok {
		return
	}

	var req dto.CreateBookingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	ranges := make([]domain.DateTimeInterval, 0, len(req.DateTimeRanges))
	for _, r := range req.DateTimeRanges {
		ranges = append(ranges, domain.DateTimeInterval{
			Start: time.UnixMilli(r.StartDateTime).UTC(),
			End:   time.UnixMilli(r.EndDateTime).UTC(),
		})
	}

	input := domain.CreateBookingsInput{
		Title:            req.Title,
		VenueID:          req.VenueID,
		DateTimeRanges:   ranges,
		FormResponseData: req.FormResponseData,
	}

	result, err := h.bookingService.Create(c.Request.Context(), requester, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateBookingsResponse{
		Bookings: dto.ToBookingResponses(result.Created),
		Dropped:  dto.ToDateTimeRangeResponses(result.Dropped),
	})
}

func (h *Handler) GetBooking(c *ginext.Context) {
	requester, ok := h.requester(c)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := h.bookingService.Get(c.Request.Context(), requester, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) ListBookings(c *ginext.Context) {
	requester, ok := h.requester(c)
	if !ok {
		return
	}

	filter, err := bookingFilterFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	bookings, err := h.bookingService.List(c.Request.Context(), requester, filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponses(bookings))
}

func bookingFilterFromQuery(c *ginext.Context) (domain.BookingFilter, error) {
	var filter domain.BookingFilter

	if raw := c.Query("venue_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return filter, errors.New("invalid venue_id")
		}
		filter.VenueID = &id
	}

	if raw := c.Query("booker_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return filter, errors.New("invalid booker_id")
		}
		filter.BookerID = &id
	}

	if raw := c.Query("statuses"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			status := domain.BookingStatus(strings.ToUpper(strings.TrimSpace(s)))
			switch status {
			case domain.BookingStatusPending, domain.BookingStatusApproved,
				domain.BookingStatusRejected, domain.BookingStatusCancelled:
				filter.Statuses = append(filter.Statuses, status)
			default:
				return filter, errors.New("invalid status filter")
			}
		}
	}

	if raw := c.Query("start_date_time"); raw != "" {
		ms, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return filter, errors.New("invalid start_date_time")
		}
		t := time.UnixMilli(ms).UTC()
		filter.StartDateTime = &t
	}

	if raw := c.Query("end_date_time"); raw != "" {
		ms, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return filter, errors.New("invalid end_date_time")
		}
		t := time.UnixMilli(ms).UTC()
		filter.EndDateTime = &t
	}

	return filter, nil
}

func (h *Handler) UpdateBookingStatus(c *ginext.Context) {
	requester, ok := h.requester(c)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	updated, _, err := h.bookingService.UpdateStatus(
		c.Request.Context(), requester, id, domain.BookingStatusAction(req.Action),
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponses(updated))
}

func (h *Handler) UpdateBookingStatuses(c *ginext.Context) {
	requester, ok := h.requester(c)
	if !ok {
		return
	}

	var req dto.UpdateBookingStatusesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	actions := make([]domain.BookingStatusActionInput, 0, len(req.Actions))
	for _, a := range req.Actions {
		actions = append(actions, domain.BookingStatusActionInput{
			BookingID: a.BookingID,
			Action:    domain.BookingStatusAction(a.Action),
		})
	}

	updated, _, err := h.bookingService.UpdateStatuses(c.Request.Context(), requester, actions)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponses(updated))
}

func (h *Handler) DeleteBookings(c *ginext.Context) {
	requester, ok := h.requester(c)
	if !ok {
		return
	}
	if !h.requireAdmin(c, requester) {
		return
	}

	var req dto.DeleteBookingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	deleted, err := h.bookingService.Delete(c.Request.Context(), requester, req.IDs)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponses(deleted))
}

func (h *Handler) TotalBookingCount(c *ginext.Context) {
	count, err := h.bookingService.TotalCount(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CountResponse{Count: count})
}

func (h *Handler) PendingBookingCount(c *ginext.Context) {
	requester, ok := h.requester(c)
	if !ok {
		return
	}
	if !h.requireAdmin(c, requester) {
		return
	}

	count, err := h.bookingService.PendingCount(c.Request.Context(), requester)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CountResponse{Count: count})
}

// Venues

func (h *Handler) CreateVenue(c *ginext.Context) {
	requester, ok := h.requester(c)
	if !ok {
		return
	}
	if !h.requireAdmin(c, requester) {
		return
	}

	var req dto.CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateVenueInput{
		Name:          req.Name,
		Capacity:      req.Capacity,
		FormFieldData: req.FormFieldData,
	}

	venue, err := h.venueService.Create(c.Request.Context(), requester, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToVenueResponse(venue))
}

func (h *Handler) GetVenue(c *ginext.Context) {
	requester, ok := h.requester(c)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid venue id"})
		return
	}

	venue, err := h.venueService.Get(c.Request.Context(), requester, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVenueResponse(venue))
}

func (h *Handler) ListVenues(c *ginext.Context) {
	requester, ok := h.requester(c)
	if !ok {
		return
	}

	venues, err := h.venueService.List(c.Request.Context(), requester)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.VenueResponse, 0, len(venues))
	for _, v := range venues {
		resp = append(resp, dto.ToVenueResponse(v))
	}

	c.JSON(http.StatusOK, resp)
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	requester, ok := h.requester(c)
	if !ok {
		return
	}
	if !h.requireAdmin(c, requester) {
		return
	}

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateUserInput{
		Name:  req.Name,
		Email: req.Email,
		Role:  domain.Role(req.Role),
	}

	user, err := h.userService.Create(c.Request.Context(), requester, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) GetUser(c *ginext.Context) {
	requester, ok := h.requester(c)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	user, err := h.userService.Get(c.Request.Context(), requester, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	requester, ok := h.requester(c)
	if !ok {
		return
	}

	users, err := h.userService.List(c.Request.Context(), requester)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) requester(c *ginext.Context) (*domain.User, bool) {
	requester, ok := middleware.Requester(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
		return nil, false
	}
	return requester, true
}

func (h *Handler) requireAdmin(c *ginext.Context, requester *domain.User) bool {
	if requester.Role != domain.RoleAdmin {
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "admin role required"})
		return false
	}
	return true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrVenueNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrClashingApprovedBookings):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNoBookingPermission):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrCancelledBookingUpdate),
		errors.Is(err, domain.ErrSameBookingStatus),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrVenueTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
