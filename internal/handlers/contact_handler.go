package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"fusion-site/internal/services"
	"fusion-site/models"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pocketbase/pocketbase/core"
)

type ContactHandler struct {
	contactService *services.ContactService
}

func NewContactHandler(contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// SubmitContact - POST /api/contact
func (h *ContactHandler) SubmitContact(e *core.RequestEvent) error {
	var req models.ContactRequest
	if err := e.BindBody(&req); err != nil {
		return e.JSON(http.StatusBadRequest, invalidForm(bindErrorDetails(err)))
	}

	msg, err := h.contactService.Submit(e.Request.Context(), req)
	if err != nil {
		var fieldErrs validation.Errors
		if errors.As(err, &fieldErrs) {
			return e.JSON(http.StatusBadRequest, invalidForm(fieldErrs))
		}
		slog.Error("submit contact message", "error", err)
		return e.JSON(http.StatusInternalServerError, errorBody("Failed to submit contact message"))
	}

	return e.JSON(http.StatusCreated, map[string]any{"success": true, "id": msg.ID})
}

func invalidForm(details any) map[string]any {
	return map[string]any{
		"error":   "Invalid form data",
		"details": details,
	}
}

// bindErrorDetails names the offending field when the body decoded but a value
// had the wrong type, and blames the body as a whole otherwise.
func bindErrorDetails(err error) map[string]string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return map[string]string{typeErr.Field: "must be a string"}
	}
	return map[string]string{"body": "must be a JSON object with name, email, subject and message"}
}
