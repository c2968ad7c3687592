// Package site renders the single-page marketing site.
package site

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"fusion-site/internal/gallery"
	"fusion-site/internal/shell"
	"fusion-site/models"
)

// Query is the page state carried in the URL so the page works without
// script: the active tag filter and the open modal gallery.
type Query struct {
	Tag       string
	GalleryID string
	Image     int
}

// ParseQuery reads tag, gallery and image from v. A bad image index is 0.
func ParseQuery(v url.Values) Query {
	q := Query{
		Tag:       v.Get("tag"),
		GalleryID: v.Get("gallery"),
	}
	if i, err := strconv.Atoi(v.Get("image")); err == nil {
		q.Image = i
	}
	return q
}

type Image struct {
	Src    string
	Alt    string
	Active bool
	Index  int
}

type Badge struct {
	Tag   string
	Class string
}

// Card is one event in the grid.
type Card struct {
	ID          string
	Title       string
	Year        string
	Description string
	Images      []Image
	Badges      []Badge
	Controls    string
	ShowDots    bool
	GalleryURL  string
	Delay       string
}

type Filter struct {
	Label  string
	Slug   string
	URL    string
	Active bool
}

// ModalView is the open full-screen gallery.
type ModalView struct {
	Title       string
	Year        string
	Description string
	Badges      []Badge
	Image       Image
	Counter     string
	Navigation  bool
	PrevURL     string
	NextURL     string
	CloseURL    string
}

type Page struct {
	Header           *shell.Header
	OrgShort         string
	OrgName          string
	Hero             shell.Hero
	AboutIntro       string
	Mission          string
	Features         []shell.Feature
	Filters          []Filter
	Cards            []Card
	Empty            bool
	ShowAllURL       string
	Modal            *ModalView
	Contact          shell.ContactInfo
	Copyright        string
	CarouselInterval int64
}

type Options struct {
	Theme            shell.Theme
	Now              time.Time
	CarouselInterval time.Duration
}

// BuildPage assembles the view for events under q.
func BuildPage(events []models.Event, q Query, opts Options) Page {
	interval := opts.CarouselInterval
	if interval <= 0 {
		interval = gallery.DefaultInterval
	}

	visible := gallery.FilterByTag(events, q.Tag)

	page := Page{
		Header:           shell.NewHeader(opts.Theme),
		OrgShort:         shell.OrgShort,
		OrgName:          shell.OrgName,
		Hero:             shell.HeroContent,
		AboutIntro:       shell.AboutIntro,
		Mission:          shell.Mission,
		Features:         shell.Features,
		Filters:          buildFilters(events, q.Tag),
		Cards:            make([]Card, 0, len(visible)),
		Empty:            len(visible) == 0,
		ShowAllURL:       pageURL(Query{}, "events"),
		Contact:          shell.Contact,
		Copyright:        shell.Copyright(opts.Now),
		CarouselInterval: interval.Milliseconds(),
	}

	for i, e := range visible {
		page.Cards = append(page.Cards, buildCard(e, i, q.Tag))
	}

	if q.GalleryID != "" {
		for _, e := range events {
			if e.ID == q.GalleryID {
				page.Modal = buildModal(e, q)
				break
			}
		}
	}
	return page
}

func buildFilters(events []models.Event, active string) []Filter {
	filters := []Filter{{
		Label:  "All Events",
		Slug:   "all",
		URL:    pageURL(Query{}, "events"),
		Active: active == "",
	}}
	for _, tag := range gallery.AllTags(events) {
		filters = append(filters, Filter{
			Label:  tag,
			Slug:   strings.ToLower(tag),
			URL:    pageURL(Query{Tag: tag}, "events"),
			Active: active == tag,
		})
	}
	return filters
}

func buildCard(e models.Event, position int, tag string) Card {
	carousel := gallery.NewCarousel(e.Images)

	card := Card{
		ID:          e.ID,
		Title:       e.Title,
		Year:        e.Year,
		Description: e.Description,
		Badges:      badges(e.Tags),
		Controls:    controlsName(carousel.Controls()),
		ShowDots:    carousel.Controls() == gallery.ControlsFull,
		GalleryURL:  pageURL(Query{Tag: tag, GalleryID: e.ID}, "events"),
		Delay:       fmt.Sprintf("%.1fs", float64(position)*0.1),
	}
	for i, src := range carousel.Images() {
		card.Images = append(card.Images, Image{
			Src:    src,
			Alt:    fmt.Sprintf("%s - Image %d", e.Title, i+1),
			Active: i == carousel.Index(),
			Index:  i,
		})
	}
	return card
}

func buildModal(e models.Event, q Query) *ModalView {
	var m gallery.Modal
	m.Open(e)
	m.Select(q.Image)

	view := &ModalView{
		Title:       e.Title,
		Year:        e.Year,
		Description: e.Description,
		Badges:      badges(e.Tags),
		Counter:     m.Counter(),
		Navigation:  m.ShowNavigation(),
		PrevURL:     pageURL(Query{Tag: q.Tag, GalleryID: e.ID, Image: m.PrevIndex()}, ""),
		NextURL:     pageURL(Query{Tag: q.Tag, GalleryID: e.ID, Image: m.NextIndex()}, ""),
		CloseURL:    pageURL(Query{Tag: q.Tag}, "events"),
	}
	if src, ok := m.Current(); ok {
		view.Image = Image{
			Src:    src,
			Alt:    fmt.Sprintf("%s - Image %d", e.Title, m.Index()+1),
			Active: true,
			Index:  m.Index(),
		}
	}
	return view
}

func badges(tags []string) []Badge {
	out := make([]Badge, 0, len(tags))
	for _, t := range tags {
		out = append(out, Badge{Tag: t, Class: gallery.TagClass(t)})
	}
	return out
}

func controlsName(c gallery.Controls) string {
	switch c {
	case gallery.ControlsNone:
		return "none"
	case gallery.ControlsSingle:
		return "single"
	default:
		return "full"
	}
}

func pageURL(q Query, anchor string) string {
	v := url.Values{}
	if q.Tag != "" {
		v.Set("tag", q.Tag)
	}
	if q.GalleryID != "" {
		v.Set("gallery", q.GalleryID)
		v.Set("image", strconv.Itoa(q.Image))
	}

	u := "/"
	if len(v) > 0 {
		u += "?" + v.Encode()
	}
	if anchor != "" {
		u += "#" + anchor
	}
	return u
}
