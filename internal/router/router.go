package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateBookings(c *ginext.Context)
	GetBooking(c *ginext.Context)
	ListBookings(c *ginext.Context)
	UpdateBookingStatus(c *ginext.Context)
	UpdateBookingStatuses(c *ginext.Context)
	DeleteBookings(c *ginext.Context)
	TotalBookingCount(c *ginext.Context)
	PendingBookingCount(c *ginext.Context)
	CreateVenue(c *ginext.Context)
	GetVenue(c *ginext.Context)
	ListVenues(c *ginext.Context)
	CreateUser(c *ginext.Context)
	GetUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
}

func InitRouter(mode string, h Handler, auth ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")

	// The aggregate count is the landing page counter and stays public.
	api.GET("/bookings/totalcount", h.TotalBookingCount)

	authed := api.Group("")
	authed.Use(auth)
	{
		// Bookings
		authed.POST("/bookings", h.CreateBookings)
		authed.GET("/bookings", h.ListBookings)
		authed.PATCH("/bookings", h.UpdateBookingStatuses)
		authed.DELETE("/bookings", h.DeleteBookings)
		authed.GET("/bookings/pendingcount", h.PendingBookingCount)
		authed.GET("/bookings/:id", h.GetBooking)
		authed.PATCH("/bookings/:id", h.UpdateBookingStatus)

		// Venues
		authed.POST("/venues", h.CreateVenue)
		authed.GET("/venues", h.ListVenues)
		authed.GET("/venues/:id", h.GetVenue)

		// Users
		authed.POST("/users", h.CreateUser)
		authed.GET("/users", h.ListUsers)
		authed.GET("/users/:id", h.GetUser)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
