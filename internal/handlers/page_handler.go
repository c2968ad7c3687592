package handlers

import (
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"fusion-site/internal/services"
	"fusion-site/internal/shell"
	"fusion-site/internal/site"

	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
)

type PageHandler struct {
	eventService *services.EventService
	interval     time.Duration
	now          func() time.Time
}

func NewPageHandler(eventService *services.EventService, carouselInterval time.Duration) *PageHandler {
	return &PageHandler{
		eventService: eventService,
		interval:     carouselInterval,
		now:          time.Now,
	}
}

// Index - GET / renders the whole site for the current query and theme.
func (h *PageHandler) Index(e *core.RequestEvent) error {
	events, err := h.eventService.ListEvents(e.Request.Context(), "")
	if err != nil {
		slog.Error("page events", "error", err)
		return apis.NewInternalServerError("Failed to fetch events", nil)
	}

	page := site.BuildPage(events, site.ParseQuery(e.Request.URL.Query()), site.Options{
		Theme:            shell.ThemeFromRequest(e.Request),
		Now:              h.now(),
		CarouselInterval: h.interval,
	})

	body, err := site.Render(page)
	if err != nil {
		slog.Error("render page", "error", err)
		return apis.NewInternalServerError("Failed to render page", nil)
	}
	return e.HTML(http.StatusOK, string(body))
}

// ToggleTheme - POST /theme flips the persisted theme and goes back.
func (h *PageHandler) ToggleTheme(e *core.RequestEvent) error {
	theme := shell.NewHeader(shell.ThemeFromRequest(e.Request)).ToggleTheme()
	http.SetCookie(e.Response, shell.ThemeCookieFor(theme))
	return e.Redirect(http.StatusSeeOther, backTo(e.Request))
}

// backTo is the same-host referer, or the page root.
func backTo(r *http.Request) string {
	ref, err := url.Parse(r.Referer())
	if err != nil || ref.Host != r.Host || ref.Path == "" {
		return "/"
	}
	return ref.RequestURI()
}
