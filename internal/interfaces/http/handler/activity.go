package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/wanderplan/backend/internal/application/activity"
	"github.com/wanderplan/backend/internal/interfaces/http/router"
)

// ActivityHandler serves curated activity recommendations
type ActivityHandler struct {
	BaseHandler
	recommendationService *activity.RecommendationService
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(recommendationService *activity.RecommendationService) *ActivityHandler {
	return &ActivityHandler{recommendationService: recommendationService}
}

// Routes returns the activity route group
func (h *ActivityHandler) Routes() *router.DomainGroup {
	group := router.NewDomainGroup("activities", "/activities")
	group.GET("/recommendations", h.Recommendations)
	return group
}

// Recommendations returns a curated activity mix for a destination
func (h *ActivityHandler) Recommendations(c *gin.Context) {
	result, err := h.recommendationService.Recommend(c.Request.Context(), c.Query("destination"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}
