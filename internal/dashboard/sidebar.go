package dashboard

// NavItem is a sidebar link. Links are in-page anchors with no routing.
type NavItem struct {
	ID    string
	Label string
	Icon  string
}

// Href is the anchor target.
func (n NavItem) Href() string { return "#" + n.ID }

// NavItems is the fixed navigation.
var NavItems = []NavItem{
	{ID: "dashboard", Label: "Dashboard", Icon: "📊"},
	{ID: "settings", Label: "Settings", Icon: "⚙️"},
}

// Sidebar is the view model of the navigation panel.
type Sidebar struct {
	Open        bool
	Dark        bool
	Items       []NavItem
	ToggleURL   string
	ToggleText  string
	ToggleLabel string
	// CloseURL backs the overlay; following it collapses the sidebar.
	CloseURL string
}

// NewSidebar derives the sidebar from the page UI state.
func NewSidebar(ui UIState) Sidebar {
	s := Sidebar{
		Open:      ui.SidebarOpen,
		Dark:      ui.Theme == ThemeDark,
		Items:     NavItems,
		ToggleURL: ui.WithSidebar(!ui.SidebarOpen).URL(),
		CloseURL:  ui.WithSidebar(false).URL(),
	}
	if s.Open {
		s.ToggleText, s.ToggleLabel = "<<", "Collapse sidebar"
	} else {
		s.ToggleText, s.ToggleLabel = ">>", "Expand sidebar"
	}
	return s
}

// Classes returns the CSS modifier classes of the panel.
func (s Sidebar) Classes() string {
	c := "sidebar sidebar--collapsed"
	if s.Open {
		c = "sidebar sidebar--open"
	}
	if s.Dark {
		c += " sidebar--dark"
	}
	return c
}
