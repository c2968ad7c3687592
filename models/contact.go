package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ContactRequest is the body accepted by the contact form endpoint.
type ContactRequest struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Subject string `json:"subject" form:"subject"`
	Message string `json:"message" form:"message"`
}

// Validate requires every field to be present. The returned error is a
// validation.Errors keyed by json field name.
func (r ContactRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Email, validation.Required),
		validation.Field(&r.Subject, validation.Required),
		validation.Field(&r.Message, validation.Required),
	)
}

// ContactMessage is a stored contact form submission.
type ContactMessage struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
