package views

import (
	"strings"
)

// HomeState contains the state of the screen behind the overlay
type HomeState struct {
	Width      int
	Height     int
	Site       string
	LastOpened string
	Status     string
	HelpLine   string
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		popupRender: NewPopupRenderer(styles),
	}
}

// Styles returns the renderer's styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// RenderHome renders the screen shown when the overlay is closed
func (r *Renderer) RenderHome(s HomeState) string {
	st := r.styles
	content := &strings.Builder{}

	content.WriteString(st.Title.Render("sitesearch"))
	content.WriteString("\n")
	if s.Site != "" {
		content.WriteString(st.Subtitle.Render("Index: " + s.Site))
		content.WriteString("\n")
	}
	content.WriteString("\n")
	content.WriteString("Press ctrl+k or / to search the site.")
	content.WriteString("\n")

	if s.LastOpened != "" {
		content.WriteString("\n")
		content.WriteString(st.Dim.Render("Last opened: ") + s.LastOpened)
		content.WriteString("\n")
	}
	if s.Status != "" {
		content.WriteString(st.Status.Render(s.Status))
		content.WriteString("\n")
	}

	body := st.Main.Render(content.String())

	// Keep the help line on the last row
	if s.HelpLine != "" {
		used := strings.Count(body, "\n") + 1
		if pad := s.Height - used - 1; pad > 0 {
			body += strings.Repeat("\n", pad)
		}
		body += "\n" + st.Main.Copy().Padding(0, 2).Render(s.HelpLine)
	}
	return body
}

// RenderWithOverlay renders home with the search panel on top
func (r *Renderer) RenderWithOverlay(home HomeState, panel PanelState) string {
	return r.popupRender.RenderPopupOverlay(r.RenderHome(home), r.RenderPanel(panel), home.Width, home.Height)
}

// RenderPopup renders home with arbitrary content in a bordered popup on top
func (r *Renderer) RenderPopup(home HomeState, content string) string {
	popup := r.styles.Panel.Render(content)
	return r.popupRender.RenderPopupOverlay(r.RenderHome(home), popup, home.Width, home.Height)
}
