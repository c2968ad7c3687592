package models

import (
	"encoding/json"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvent_MarshalEmptySlices(t *testing.T) {
	event := Event{ID: "bare", Title: "Bare", Year: "2021"}

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, []any{}, raw["images"])
	assert.Equal(t, []any{}, raw["tags"])
	assert.Equal(t, float64(0), raw["order"])
}

func TestEvent_CloneDoesNotShare(t *testing.T) {
	event := Event{ID: "e", Images: []string{"a", "b"}, Tags: []string{"School"}}

	clone := event.Clone()
	clone.Images[0] = "changed"
	clone.Tags[0] = "Changed"

	assert.Equal(t, "a", event.Images[0])
	assert.Equal(t, "School", event.Tags[0])
}

func TestEvent_HasTag(t *testing.T) {
	event := Event{Tags: []string{"School", "Training"}}

	assert.True(t, event.HasTag("School"))
	assert.False(t, event.HasTag("school"))
	assert.False(t, Event{}.HasTag("School"))
}

func TestContactRequest_Validate(t *testing.T) {
	valid := ContactRequest{
		Name:    "Ada",
		Email:   "ada@example.org",
		Subject: "Summer school",
		Message: "When does registration open?",
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name  string
		edit  func(r *ContactRequest)
		field string
	}{
		{"missing name", func(r *ContactRequest) { r.Name = "" }, "name"},
		{"missing email", func(r *ContactRequest) { r.Email = "" }, "email"},
		{"missing subject", func(r *ContactRequest) { r.Subject = "" }, "subject"},
		{"missing message", func(r *ContactRequest) { r.Message = "" }, "message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.edit(&req)

			err := req.Validate()
			require.Error(t, err)

			var errs validation.Errors
			require.ErrorAs(t, err, &errs)
			assert.Len(t, errs, 1)
			assert.Contains(t, errs, tt.field)
		})
	}
}
