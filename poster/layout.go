package poster

import (
	"image/color"
	"path/filepath"
	"strings"
)

const (
	FontBold    = "Poppins-Bold.ttf"
	FontRegular = "Poppins-Regular.ttf"
)

var (
	white  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	yellow = color.RGBA{R: 252, G: 224, B: 9, A: 255}
)

// TextField places text with its top-left corner at X, Y.
type TextField struct {
	X     int
	Y     int
	Font  string
	Size  float64
	Color color.RGBA
}

// Layout holds the fixed pixel geometry of one template.
type Layout struct {
	ResultLabelText string
	ResultLabel     TextField
	ResultNumber    TextField
	Category        TextField
	Event           TextField
	// GeneralEventY replaces Event.Y when the category line is suppressed.
	GeneralEventY int
	WinnerName    TextField
	WinnerGroup   TextField
	// WinnerStep is the vertical distance between consecutive winners.
	WinnerStep int
}

func DefaultLayout() Layout {
	return Layout{
		ResultLabelText: "Result",
		ResultLabel:     TextField{X: 1500, Y: 1450, Font: FontBold, Size: 65, Color: white},
		ResultNumber:    TextField{X: 1550, Y: 1500, Font: FontBold, Size: 300, Color: white},
		Category:        TextField{X: 1750, Y: 1600, Font: FontRegular, Size: 80, Color: white},
		Event:           TextField{X: 1750, Y: 1700, Font: FontBold, Size: 105, Color: yellow},
		GeneralEventY:   1620,
		WinnerName:      TextField{X: 2100, Y: 2290, Font: FontBold, Size: 78, Color: white},
		WinnerGroup:     TextField{X: 2100, Y: 2385, Font: FontRegular, Size: 62, Color: white},
		WinnerStep:      450,
	}
}

// Fonts lists the font files the layout draws with.
func (l Layout) Fonts() []string {
	seen := make(map[string]bool)
	fonts := make([]string, 0, 2)
	for _, field := range []TextField{l.ResultLabel, l.ResultNumber, l.Category, l.Event, l.WinnerName, l.WinnerGroup} {
		if !seen[field.Font] {
			seen[field.Font] = true
			fonts = append(fonts, field.Font)
		}
	}
	return fonts
}

// Template is one poster variant: an image file and where text goes on it.
type Template struct {
	Id     string
	Layout Layout
}

// Stem is the template file name without extension, used in storage keys.
func (t Template) Stem() string {
	return strings.TrimSuffix(t.Id, filepath.Ext(t.Id))
}

// DefaultTemplates builds templates sharing the default layout, in the given order.
func DefaultTemplates(ids []string) []Template {
	templates := make([]Template, len(ids))
	for i, id := range ids {
		templates[i] = Template{Id: id, Layout: DefaultLayout()}
	}
	return templates
}
