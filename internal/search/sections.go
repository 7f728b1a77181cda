package search

import "strings"

// Icon identifies how a section is pictured: a CSS class list for the site
// markup and a glyph for the terminal.
type Icon struct {
	Class string `toml:"class"`
	Glyph string `toml:"glyph"`
}

var (
	NoteIcon   = Icon{Class: "fa-regular fa-note-sticky", Glyph: "✎"}
	FolderIcon = Icon{Class: "fa-regular fa-folder-open", Glyph: "▸"}
	FileIcon   = Icon{Class: "fa-regular fa-file", Glyph: "•"}
)

// IconSet maps lowercase section names to icons
type IconSet map[string]Icon

// DefaultIcons returns the icons for the site's known sections
func DefaultIcons() IconSet {
	return IconSet{
		"blog":     NoteIcon,
		"posts":    NoteIcon,
		"projects": FolderIcon,
	}
}

// For returns the icon of a section, FileIcon when the section is unknown
func (s IconSet) For(section string) Icon {
	if icon, ok := s[strings.ToLower(strings.TrimSpace(section))]; ok {
		return icon
	}
	return FileIcon
}

// With returns a copy of the set with overrides applied. Empty fields in an
// override keep the existing value, or FileIcon's for new sections.
func (s IconSet) With(overrides map[string]Icon) IconSet {
	out := make(IconSet, len(s)+len(overrides))
	for k, v := range s {
		out[k] = v
	}
	for name, icon := range overrides {
		key := strings.ToLower(strings.TrimSpace(name))
		base, ok := out[key]
		if !ok {
			base = FileIcon
		}
		if icon.Class != "" {
			base.Class = icon.Class
		}
		if icon.Glyph != "" {
			base.Glyph = icon.Glyph
		}
		out[key] = base
	}
	return out
}
