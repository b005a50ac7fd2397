package view

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/piresc/smartdustbin/internal/pkg/models"
	"github.com/piresc/smartdustbin/internal/utils"
	"github.com/piresc/smartdustbin/services/dashboard/usecase"
)

// NoResults is printed when the display set is empty
const NoResults = "No dustbins found"

const barWidth = 20

// FillBar draws a fixed width text gauge of a percentage
func FillBar(percentage float64) string {
	filled := int(percentage/100*barWidth + 0.5)
	if filled < 0 {
		filled = 0
	}
	if filled > barWidth {
		filled = barWidth
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", barWidth-filled) + "]"
}

// DistanceLabel is the short distance shown in the list, empty when unknown
func DistanceLabel(d *models.Dustbin) string {
	if d.Distance == nil {
		return ""
	}
	return fmt.Sprintf("%.1f km", *d.Distance)
}

// RenderList prints the display set as a table
func RenderList(w io.Writer, dustbins []*models.Dustbin) error {
	if len(dustbins) == 0 {
		_, err := fmt.Fprintln(w, NoResults)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tADDRESS\tFILL\t\tSTATUS\tDISTANCE")
	for _, d := range dustbins {
		level := utils.FillLevelFor(d.FillPercentage)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%g%%\t%s\t%s\n",
			d.ID, d.Name, d.Address, FillBar(d.FillPercentage), d.FillPercentage, level.Status, DistanceLabel(d))
	}
	return tw.Flush()
}

// RenderDetail prints the detail view of one record
func RenderDetail(w io.Writer, v *usecase.DetailView) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\n\n", v.Name)
	fmt.Fprintf(tw, "Location\t%s\n", v.Address)
	fmt.Fprintf(tw, "\t%s\n", v.DistanceText)
	fmt.Fprintf(tw, "Fill Level\t%s %g%%\n", FillBar(v.FillPercentage), v.FillPercentage)
	fmt.Fprintf(tw, "Status\t%s\n", v.Fill.Status)
	fmt.Fprintf(tw, "Type\t%s\n", v.Type)
	fmt.Fprintf(tw, "Capacity\t%s\n", v.Capacity)
	fmt.Fprintf(tw, "Last Updated\t%s\n", v.LastUpdated.Local().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(tw, "Directions\t%s\n", v.DirectionsURL)
	return tw.Flush()
}

// RenderStats prints the fill statistics
func RenderStats(w io.Writer, s *models.DustbinStats) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Total\t%d\n", s.Total)
	fmt.Fprintf(tw, "Empty\t%d\n", s.Empty)
	fmt.Fprintf(tw, "Low\t%d\n", s.Low)
	fmt.Fprintf(tw, "Medium\t%d\n", s.Medium)
	fmt.Fprintf(tw, "High\t%d\n", s.High)
	fmt.Fprintf(tw, "Average Fill\t%.1f%%\n", s.AverageFillLevel)
	return tw.Flush()
}
