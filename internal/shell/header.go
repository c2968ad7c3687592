// Package shell describes the page chrome around the events gallery: the
// header, hero, about section and footer.
package shell

import "net/http"

// ScrollThreshold is how far, in pixels, the page scrolls before the header
// switches from transparent to opaque.
const ScrollThreshold = 50

// ThemeCookie persists the visitor's theme choice.
const ThemeCookie = "theme"

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme maps a stored preference to a theme. Anything other than
// "dark" is light.
func ParseTheme(v string) Theme {
	if Theme(v) == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

func (t Theme) IsDark() bool { return t == ThemeDark }

// ThemeFromRequest reads the persisted preference from r.
func ThemeFromRequest(r *http.Request) Theme {
	c, err := r.Cookie(ThemeCookie)
	if err != nil {
		return ThemeLight
	}
	return ParseTheme(c.Value)
}

// ThemeCookieFor builds the cookie that persists t.
func ThemeCookieFor(t Theme) *http.Cookie {
	return &http.Cookie{
		Name:     ThemeCookie,
		Value:    string(t),
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60,
		SameSite: http.SameSiteLaxMode,
	}
}

// Header is the fixed page header as rendered for one request. The scrolled
// style is applied in the browser once the page passes ScrollThreshold.
type Header struct {
	Theme           Theme
	NavItems        []NavItem
	ScrollThreshold int
}

func NewHeader(theme Theme) *Header {
	return &Header{
		Theme:           ParseTheme(string(theme)),
		NavItems:        NavItems,
		ScrollThreshold: ScrollThreshold,
	}
}

// ToggleTheme flips the theme and returns the value to persist.
func (h *Header) ToggleTheme() Theme {
	h.Theme = h.Theme.Toggle()
	return h.Theme
}
