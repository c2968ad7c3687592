package models

import "encoding/json"

// Event is a past activity shown in the events gallery.
type Event struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Year        string   `json:"year"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Tags        []string `json:"tags"`
	Order       int      `json:"order"`
}

// HasTag reports whether tag is one of the event's tags.
func (e Event) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no slices with e. Nil image and tag
// lists come back empty.
func (e Event) Clone() Event {
	out := e
	out.Images = append(make([]string, 0, len(e.Images)), e.Images...)
	out.Tags = append(make([]string, 0, len(e.Tags)), e.Tags...)
	return out
}

// MarshalJSON always writes images and tags as arrays.
func (e Event) MarshalJSON() ([]byte, error) {
	type event Event
	return json.Marshal(event(e.Clone()))
}
