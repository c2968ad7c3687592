package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"fusion-site/internal/services"
	"fusion-site/internal/status"

	"github.com/pocketbase/pocketbase/core"
)

type EventHandler struct {
	eventService *services.EventService
}

func NewEventHandler(eventService *services.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// ListEvents - GET /api/events, optionally narrowed by ?tag=
func (h *EventHandler) ListEvents(e *core.RequestEvent) error {
	tag := e.Request.URL.Query().Get("tag")

	events, err := h.eventService.ListEvents(e.Request.Context(), tag)
	if err != nil {
		slog.Error("list events", "tag", tag, "error", err)
		return e.JSON(http.StatusInternalServerError, errorBody("Failed to fetch events"))
	}
	return e.JSON(http.StatusOK, events)
}

// GetEvent - GET /api/events/{id}
func (h *EventHandler) GetEvent(e *core.RequestEvent) error {
	id := e.Request.PathValue("id")

	event, err := h.eventService.GetEvent(e.Request.Context(), id)
	if err != nil {
		if errors.Is(err, status.ErrEventNotFound) {
			return e.JSON(http.StatusNotFound, errorBody("Event not found"))
		}
		slog.Error("get event", "eventID", id, "error", err)
		return e.JSON(http.StatusInternalServerError, errorBody("Failed to fetch event"))
	}
	return e.JSON(http.StatusOK, event)
}

// ListTags - GET /api/tags
func (h *EventHandler) ListTags(e *core.RequestEvent) error {
	tags, err := h.eventService.Tags(e.Request.Context())
	if err != nil {
		slog.Error("list tags", "error", err)
		return e.JSON(http.StatusInternalServerError, errorBody("Failed to fetch tags"))
	}
	return e.JSON(http.StatusOK, tags)
}

func errorBody(msg string) map[string]string {
	return map[string]string{"error": msg}
}
