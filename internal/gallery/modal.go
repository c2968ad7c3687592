package gallery

import (
	"fmt"

	"fusion-site/models"
)

// Modal is the full-screen gallery opened from a card. Its index is its own
// and never touches the card carousel.
type Modal struct {
	event *models.Event
	index int
}

// Open selects event and rewinds to its first image.
func (m *Modal) Open(event models.Event) {
	e := event.Clone()
	m.event = &e
	m.index = 0
}

func (m *Modal) Close() {
	m.event = nil
	m.index = 0
}

func (m *Modal) IsOpen() bool { return m.event != nil }

func (m *Modal) Event() (models.Event, bool) {
	if m.event == nil {
		return models.Event{}, false
	}
	return m.event.Clone(), true
}

func (m *Modal) Index() int { return m.index }

func (m *Modal) len() int {
	if m.event == nil {
		return 0
	}
	return len(m.event.Images)
}

func (m *Modal) Next() {
	if n := m.len(); n > 0 {
		m.index = wrap(m.index+1, n)
	}
}

func (m *Modal) Prev() {
	if n := m.len(); n > 0 {
		m.index = wrap(m.index-1, n)
	}
}

// Select moves to image i, wrapping values outside the sequence.
func (m *Modal) Select(i int) {
	if n := m.len(); n > 0 {
		m.index = wrap(i, n)
	}
}

// NextIndex and PrevIndex report where Next and Prev would land.
func (m *Modal) NextIndex() int {
	if n := m.len(); n > 0 {
		return wrap(m.index+1, n)
	}
	return 0
}

func (m *Modal) PrevIndex() int {
	if n := m.len(); n > 0 {
		return wrap(m.index-1, n)
	}
	return 0
}

func (m *Modal) Current() (string, bool) {
	if m.len() == 0 {
		return "", false
	}
	return m.event.Images[m.index], true
}

// ShowNavigation is true when there is more than one image to page through.
func (m *Modal) ShowNavigation() bool { return m.len() > 1 }

// Counter renders the "3 / 5" position label.
func (m *Modal) Counter() string {
	if m.len() == 0 {
		return ""
	}
	return fmt.Sprintf("%d / %d", m.index+1, m.len())
}
