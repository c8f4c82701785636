package theme

import "os"

// IconSet holds the glyphs drawn by the renderers.
type IconSet struct {
	Bars    string
	Times   string
	Success string
	Error   string
	Warning string
	Info    string
	Arrow   string
	Bullet  string
}

var nerdIcons = IconSet{
	Bars:    "󰍜", // md-menu (U+F035C)
	Times:   "󰅖", // md-close (U+F0156)
	Success: "󰄬", // md-check (U+F012C)
	Error:   "\uea87", // cod-error (U+EA87)
	Warning: "\uf071", // fa-warning (U+F071)
	Info:    "󰋼", // md-information (U+F02FC)
	Arrow:   "󰁔", // md-arrow_right (U+F0054)
	Bullet:  "\uf444", // oct-dot_fill (U+F444)
}

var asciiIcons = IconSet{
	Bars:    "=",
	Times:   "x",
	Success: "+",
	Error:   "!",
	Warning: "!",
	Info:    "i",
	Arrow:   ">",
	Bullet:  "*",
}

// Icons is the active icon set. WIDGETS_ICONS=ascii selects the ASCII set
// at startup; UseIcons changes it later.
var Icons = iconsFor(os.Getenv("WIDGETS_ICONS"))

// UseIcons selects "nerd" or "ascii" glyphs.
func UseIcons(name string) {
	Icons = iconsFor(name)
}

func iconsFor(name string) IconSet {
	if name == "ascii" {
		return asciiIcons
	}
	return nerdIcons
}

// ToggleIcon maps the sidebar toggle icon names to glyphs.
func (s IconSet) ToggleIcon(name string) string {
	if name == "times" {
		return s.Times
	}
	return s.Bars
}
