// Package gallery holds the state behind the events gallery: the per-card
// image carousel, the full-screen modal and the tag filter.
package gallery

import "time"

// DefaultInterval is the auto-advance period of a card carousel. The page
// hands it to the browser script, which calls the equivalent of Tick.
const DefaultInterval = 4 * time.Second

// State is the auto-advance state of a carousel.
type State int

const (
	Paused State = iota
	Playing
)

func (s State) String() string {
	if s == Playing {
		return "playing"
	}
	return "paused"
}

// Controls describes which affordances a carousel renders.
type Controls int

const (
	// ControlsNone renders a placeholder background.
	ControlsNone Controls = iota
	// ControlsSingle renders the one image with no controls.
	ControlsSingle
	// ControlsFull renders arrows and dot indicators.
	ControlsFull
)

// Carousel cycles through an event's images. It is not safe for concurrent
// use.
type Carousel struct {
	images  []string
	index   int
	hovered bool
}

func NewCarousel(images []string) *Carousel {
	c := &Carousel{}
	c.SetImages(images)
	return c
}

// SetImages replaces the image sequence and rewinds to the first image.
func (c *Carousel) SetImages(images []string) {
	c.images = append(make([]string, 0, len(images)), images...)
	c.index = 0
}

func (c *Carousel) Images() []string {
	return append([]string(nil), c.images...)
}

func (c *Carousel) Len() int { return len(c.images) }

func (c *Carousel) Index() int { return c.index }

func (c *Carousel) Hovered() bool { return c.hovered }

// Current returns the image at the current index.
func (c *Carousel) Current() (string, bool) {
	if len(c.images) == 0 {
		return "", false
	}
	return c.images[c.index], true
}

// State is Playing only while the card is not hovered and there is more
// than one image to cycle through.
func (c *Carousel) State() State {
	if !c.hovered && len(c.images) > 1 {
		return Playing
	}
	return Paused
}

func (c *Carousel) Controls() Controls {
	switch n := len(c.images); {
	case n == 0:
		return ControlsNone
	case n == 1:
		return ControlsSingle
	default:
		return ControlsFull
	}
}

// ControlsVisible reports whether arrows and dots are shown right now.
func (c *Carousel) ControlsVisible() bool {
	return c.hovered && c.Controls() == ControlsFull
}

func (c *Carousel) HoverEnter() { c.hovered = true }

func (c *Carousel) HoverLeave() { c.hovered = false }

// Next steps forward one image, wrapping at the end.
func (c *Carousel) Next() {
	if n := len(c.images); n > 0 {
		c.index = wrap(c.index+1, n)
	}
}

// Prev steps back one image, wrapping at the start.
func (c *Carousel) Prev() {
	if n := len(c.images); n > 0 {
		c.index = wrap(c.index-1, n)
	}
}

// Select jumps to image i. Out of range values are ignored.
func (c *Carousel) Select(i int) bool {
	if i < 0 || i >= len(c.images) {
		return false
	}
	c.index = i
	return true
}

// Tick is one auto-advance step. It only moves while Playing.
func (c *Carousel) Tick() bool {
	if c.State() != Playing {
		return false
	}
	c.Next()
	return true
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}
