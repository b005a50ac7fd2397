package view

import (
	"fmt"
	"net/url"

	"github.com/piresc/smartdustbin/internal/pkg/models"
	"github.com/piresc/smartdustbin/internal/utils"
)

// UserMarkerColor is the fill of the user position marker
const UserMarkerColor = "#3B82F6"

// Marker describes one map marker for a map widget
type Marker struct {
	DustbinID string
	Position  models.Location
	Title     string
	Color     string
	IconURL   string
	Size      int
	AnchorX   int
	AnchorY   int
}

// BuildMarkers returns one marker per displayed record, followed by the
// user marker when the user location is known
func BuildMarkers(display []*models.Dustbin, user *models.Location) []Marker {
	markers := make([]Marker, 0, len(display)+1)
	for _, d := range display {
		color := utils.FillLevelFor(d.FillPercentage).Color
		markers = append(markers, Marker{
			DustbinID: d.ID,
			Position:  d.Location(),
			Title:     d.Name,
			Color:     color,
			IconURL:   IconURL(DustbinMarkerSVG(color)),
			Size:      32,
			AnchorX:   16,
			AnchorY:   32,
		})
	}

	if user != nil {
		markers = append(markers, Marker{
			Position: *user,
			Title:    "Your Location",
			Color:    UserMarkerColor,
			IconURL:  IconURL(UserMarkerSVG()),
			Size:     24,
			AnchorX:  12,
			AnchorY:  12,
		})
	}
	return markers
}

// DustbinMarkerSVG draws a pin filled with color
func DustbinMarkerSVG(color string) string {
	return fmt.Sprintf(`<svg width="32" height="32" viewBox="0 0 32 32" fill="none" xmlns="http://www.w3.org/2000/svg">`+
		`<path d="M16 2C11.6 2 8 5.6 8 10C8 16 16 30 16 30S24 16 24 10C24 5.6 20.4 2 16 2Z" fill="%[1]s" stroke="white" stroke-width="2"/>`+
		`<circle cx="16" cy="10" r="4" fill="white"/>`+
		`<path d="M14 8L15 9L18 6" stroke="%[1]s" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"/>`+
		`</svg>`, color)
}

// UserMarkerSVG draws the user position dot
func UserMarkerSVG() string {
	return fmt.Sprintf(`<svg width="24" height="24" viewBox="0 0 24 24" fill="none" xmlns="http://www.w3.org/2000/svg">`+
		`<circle cx="12" cy="12" r="8" fill="%s" stroke="white" stroke-width="3"/>`+
		`<circle cx="12" cy="12" r="3" fill="white"/>`+
		`</svg>`, UserMarkerColor)
}

// IconURL embeds an SVG document in a data URL
func IconURL(svg string) string {
	return "data:image/svg+xml;charset=UTF-8," + url.PathEscape(svg)
}
