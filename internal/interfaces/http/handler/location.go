package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/wanderplan/backend/internal/application/geo"
	"github.com/wanderplan/backend/internal/interfaces/http/router"
)

// CreateLocationRequest is the request body for saving a map location.
// Lat and lng are pointers so a coordinate of 0 still satisfies the
// required binding.
type CreateLocationRequest struct {
	Title string   `json:"title"`
	Lat   *float64 `json:"lat" binding:"required"`
	Lng   *float64 `json:"lng" binding:"required"`
	Note  string   `json:"note"`
}

// UpdateLocationRequest is the request body for a partial location update
type UpdateLocationRequest struct {
	Title *string  `json:"title"`
	Lat   *float64 `json:"lat"`
	Lng   *float64 `json:"lng"`
	Note  *string  `json:"note"`
}

// AddPhotosRequest carries a batch of photo payloads to attach
type AddPhotosRequest struct {
	Photos []string `json:"photos"`
}

// AddTaskRequest is the request body for adding a checklist item
type AddTaskRequest struct {
	Text string `json:"text"`
}

// UpdateTaskRequest is the request body for a partial checklist-item update
type UpdateTaskRequest struct {
	Text *string `json:"text"`
	Done *bool   `json:"done"`
}

// LocationHandler handles saved map locations, their photos and checklists
type LocationHandler struct {
	BaseHandler
	locationService *geo.LocationService
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(locationService *geo.LocationService) *LocationHandler {
	return &LocationHandler{locationService: locationService}
}

// Routes returns the map-location route group
func (h *LocationHandler) Routes() *router.DomainGroup {
	group := router.NewDomainGroup("map", "/map/locations")
	group.GET("", h.List)
	group.POST("", h.Create)
	group.GET("/:id", h.Get)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
	group.POST("/:id/photos", h.AddPhotos)
	group.POST("/:id/tasks", h.AddTask)
	group.PATCH("/:id/tasks/:taskId", h.UpdateTask)
	group.DELETE("/:id/tasks/:taskId", h.RemoveTask)
	return group
}

// Create saves a new map location
func (h *LocationHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.locationService.CreateLocation(c.Request.Context(), userID, geo.CreateLocationInput{
		Title: req.Title,
		Lat:   *req.Lat,
		Lng:   *req.Lng,
		Note:  req.Note,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// List returns the user's saved locations
func (h *LocationHandler) List(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	locations, err := h.locationService.ListLocations(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithCount(c, locations, len(locations))
}

// Get returns one of the user's saved locations
func (h *LocationHandler) Get(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	locationID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid location ID")
		return
	}

	result, err := h.locationService.GetLocation(c.Request.Context(), userID, locationID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Update applies a partial update to a saved location
func (h *LocationHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	locationID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid location ID")
		return
	}

	var req UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.locationService.UpdateLocation(c.Request.Context(), userID, locationID, geo.UpdateLocationInput{
		Title: req.Title,
		Lat:   req.Lat,
		Lng:   req.Lng,
		Note:  req.Note,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Delete removes a saved location
func (h *LocationHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	locationID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid location ID")
		return
	}

	if err := h.locationService.DeleteLocation(c.Request.Context(), userID, locationID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// AddPhotos attaches photo payloads to a location
func (h *LocationHandler) AddPhotos(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	locationID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid location ID")
		return
	}

	var req AddPhotosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.locationService.AddPhotos(c.Request.Context(), userID, locationID, req.Photos)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// AddTask appends a checklist item to a location
func (h *LocationHandler) AddTask(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	locationID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid location ID")
		return
	}

	var req AddTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.locationService.AddTask(c.Request.Context(), userID, locationID, geo.AddTaskInput{
		Text: req.Text,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// UpdateTask patches one checklist item on a location
func (h *LocationHandler) UpdateTask(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	locationID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid location ID")
		return
	}
	taskID, ok := parseIDParam(c, "taskId")
	if !ok {
		h.BadRequest(c, "Invalid task ID")
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.locationService.UpdateTask(c.Request.Context(), userID, locationID, taskID, geo.UpdateTaskInput{
		Text: req.Text,
		Done: req.Done,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// RemoveTask deletes one checklist item from a location
func (h *LocationHandler) RemoveTask(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	locationID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid location ID")
		return
	}
	taskID, ok := parseIDParam(c, "taskId")
	if !ok {
		h.BadRequest(c, "Invalid task ID")
		return
	}

	if err := h.locationService.RemoveTask(c.Request.Context(), userID, locationID, taskID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
