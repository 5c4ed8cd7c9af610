package dashboard

import (
	"net/url"
)

// Page copy.
const (
	PageTitle        = "Sales & Product Performance"
	PageSubtitle     = "Real-time view of revenue, demand, and regional momentum."
	LoadingMessage   = "Loading dashboard…"
	ErrorMessage     = "Unable to load data. Check the API service."
	DefaultDateRange = "Last 90 days"
)

// State is the render state of the page; exactly one applies.
type State int

const (
	StateLoading State = iota
	StateError
	StateLoaded
)

func (s State) String() string {
	switch s {
	case StateError:
		return "error"
	case StateLoaded:
		return "loaded"
	default:
		return "loading"
	}
}

// UIState is the view state carried in the query string. It is never
// persisted.
type UIState struct {
	Theme       Theme
	SidebarOpen bool
}

// ParseUIState reads ?theme=dark&sidebar=collapsed. Unknown values fall back
// to light and open.
func ParseUIState(q url.Values) UIState {
	ui := UIState{Theme: ThemeLight, SidebarOpen: true}
	if Theme(q.Get("theme")) == ThemeDark {
		ui.Theme = ThemeDark
	}
	if q.Get("sidebar") == "collapsed" {
		ui.SidebarOpen = false
	}
	return ui
}

// WithTheme returns a copy using theme.
func (u UIState) WithTheme(theme Theme) UIState {
	u.Theme = theme
	return u
}

// WithSidebar returns a copy with the sidebar open or collapsed.
func (u UIState) WithSidebar(open bool) UIState {
	u.SidebarOpen = open
	return u
}

// URL encodes the state as a root-relative link, omitting defaults.
func (u UIState) URL() string {
	q := url.Values{}
	if u.Theme == ThemeDark {
		q.Set("theme", string(ThemeDark))
	}
	if !u.SidebarOpen {
		q.Set("sidebar", "collapsed")
	}
	if len(q) == 0 {
		return "/"
	}
	return "/?" + q.Encode()
}

// Page is the top-level view model. It owns the UI state and hands it down
// to the sidebar and charts.
type Page struct {
	State    State
	UI       UIState
	Title    string
	Subtitle string

	DateRange string
	Message   string

	Cards   []Card
	Charts  Charts
	Sidebar Sidebar

	ThemeIcon      string
	ThemeLabel     string
	ThemeToggleURL string
	RefreshURL     string
}

// NewPage returns a page in the loading state.
func NewPage(ui UIState) Page {
	p := Page{
		State:      StateLoading,
		UI:         ui,
		Title:      PageTitle,
		Subtitle:   PageSubtitle,
		DateRange:  DefaultDateRange,
		Message:    LoadingMessage,
		Sidebar:    NewSidebar(ui),
		RefreshURL: ui.URL(),
	}
	if ui.Theme == ThemeDark {
		p.ThemeIcon, p.ThemeLabel = "☀️", "Switch to light theme"
		p.ThemeToggleURL = ui.WithTheme(ThemeLight).URL()
	} else {
		p.ThemeIcon, p.ThemeLabel = "🌙", "Switch to dark theme"
		p.ThemeToggleURL = ui.WithTheme(ThemeDark).URL()
	}
	return p
}

// Dark reports whether the dark theme is active.
func (p Page) Dark() bool { return p.UI.Theme == ThemeDark }

// Fail moves the page to the error state. Nothing from a partial payload is
// kept.
func (p Page) Fail() Page {
	p.State = StateError
	p.Message = ErrorMessage
	p.Cards = nil
	p.Charts = Charts{}
	return p
}

// Load moves the page to the loaded state. A chart rendering failure is
// treated like a fetch failure.
func (p Page) Load(payload *Payload) (Page, error) {
	if payload == nil {
		return p.Fail(), ErrUnavailable
	}
	charts, err := RenderCharts(payload, p.UI.Theme)
	if err != nil {
		return p.Fail(), err
	}
	p.State = StateLoaded
	p.Message = ""
	p.Cards = BuildCards(payload)
	p.Charts = charts
	if payload.Filters != nil && payload.Filters.DateRange != nil {
		p.DateRange = *payload.Filters.DateRange
	}
	return p, nil
}
