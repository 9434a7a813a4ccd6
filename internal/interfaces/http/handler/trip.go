package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/wanderplan/backend/internal/application/trip"
	"github.com/wanderplan/backend/internal/interfaces/http/router"
)

// CreateTripRequest is the request body for trip creation. Every field is
// optional; blanks are normalized server-side.
type CreateTripRequest struct {
	Destination string           `json:"destination"`
	StartDate   string           `json:"startDate"`
	EndDate     string           `json:"endDate"`
	Days        []trip.DayInput  `json:"days"`
}

// UpdateTripRequest is the request body for a partial trip update.
// Pointer fields distinguish "absent" from "set to zero value" so that an
// omitted field never clobbers stored data.
type UpdateTripRequest struct {
	Destination *string          `json:"destination"`
	StartDate   *string          `json:"startDate"`
	EndDate     *string          `json:"endDate"`
	Days        *[]trip.DayInput `json:"days"`
}

// TripHandler handles trip CRUD and the public share lookup
type TripHandler struct {
	BaseHandler
	tripService *trip.TripService
}

// NewTripHandler creates a new trip handler
func NewTripHandler(tripService *trip.TripService) *TripHandler {
	return &TripHandler{tripService: tripService}
}

// Routes returns the trip route group
func (h *TripHandler) Routes() *router.DomainGroup {
	group := router.NewDomainGroup("trips", "/trips")
	group.GET("", h.List)
	group.POST("", h.Create)
	group.GET("/public/:id", h.GetPublic)
	group.GET("/:id", h.Get)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
	return group
}

// Create creates a trip
func (h *TripHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.tripService.CreateTrip(c.Request.Context(), userID, trip.CreateTripInput{
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Days:        req.Days,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// List returns the user's trips, newest first
func (h *TripHandler) List(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	trips, err := h.tripService.ListTrips(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithCount(c, trips, len(trips))
}

// Get returns one of the user's trips
func (h *TripHandler) Get(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	tripID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid trip ID")
		return
	}

	result, err := h.tripService.GetTrip(c.Request.Context(), userID, tripID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// GetPublic returns a trip by share link, without authentication
func (h *TripHandler) GetPublic(c *gin.Context) {
	tripID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid trip ID")
		return
	}

	result, err := h.tripService.GetPublicTrip(c.Request.Context(), tripID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Update applies a partial update to one of the user's trips
func (h *TripHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	tripID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid trip ID")
		return
	}

	var req UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.tripService.UpdateTrip(c.Request.Context(), userID, tripID, trip.UpdateTripInput{
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Days:        req.Days,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Delete deletes a trip and the budgets referencing it
func (h *TripHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	tripID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid trip ID")
		return
	}

	if err := h.tripService.DeleteTrip(c.Request.Context(), userID, tripID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
