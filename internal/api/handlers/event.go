package handlers

import (
	"net/http"

	"club-coordination-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// EventHandler handles HTTP requests for events
type EventHandler struct {
	eventService service.EventServiceInterface
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventService service.EventServiceInterface) *EventHandler {
	return &EventHandler{
		eventService: eventService,
	}
}

// CreateEvent handles POST /events
// @Summary Create an event
// @Description Create a club event, or a platform event when club_id is omitted
// @Tags events
// @Accept json
// @Produce json
// @Param event body service.CreateEventRequest true "Event data"
// @Success 201 {object} service.EventResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Caller may not create events here"
// @Failure 404 {object} ErrorResponse "Club not found"
// @Security BearerAuth
// @Router /events [post]
func (h *EventHandler) CreateEvent(c *gin.Context) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}

	var req service.CreateEventRequest
	if !bindJSON(c, &req) {
		return
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), actorID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, event)
}

// GetEvent handles GET /events/:id
// @Summary Get event by ID
// @Tags events
// @Produce json
// @Param id path string true "Event ID" format(uuid)
// @Success 200 {object} service.EventResponse
// @Failure 404 {object} ErrorResponse "Event not found"
// @Security BearerAuth
// @Router /events/{id} [get]
func (h *EventHandler) GetEvent(c *gin.Context) {
	eventID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	event, err := h.eventService.GetEvent(c.Request.Context(), eventID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// ListClubEvents handles GET /clubs/:id/events
// @Summary List a club's events
// @Tags events
// @Produce json
// @Param id path string true "Club ID" format(uuid)
// @Param limit query int false "Number of items to return" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} service.EventListResponse
// @Failure 404 {object} ErrorResponse "Club not found"
// @Security BearerAuth
// @Router /clubs/{id}/events [get]
func (h *EventHandler) ListClubEvents(c *gin.Context) {
	clubID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	limit, offset, ok := pagination(c)
	if !ok {
		return
	}

	events, err := h.eventService.ListClubEvents(c.Request.Context(), clubID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}
