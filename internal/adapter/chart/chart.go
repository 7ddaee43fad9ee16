// Package chart draws expense reports as images.
package chart

import (
	"errors"
	"fmt"
	"io"

	gochart "github.com/wcharczuk/go-chart/v2"

	"github.com/iho/budgetledger/internal/adapter/report"
	"github.com/iho/budgetledger/internal/domain"
)

// ErrNothingToPlot is returned when no category has a positive total.
var ErrNothingToPlot = errors.New("no positive expense totals to plot")

const (
	defaultWidth  = 1024
	defaultHeight = 640
)

// ExpensesPie renders a PNG pie chart of expense totals to w.
// Categories whose total is zero or negative cannot be drawn and are skipped.
func ExpensesPie(w io.Writer, totals []domain.CategoryTotal) error {
	values := make([]gochart.Value, 0, len(totals))
	for _, t := range totals {
		if !t.Total.IsPositive() {
			continue
		}
		values = append(values, gochart.Value{
			Label: fmt.Sprintf("%s: %s", report.Capitalize(t.Category), report.Money(t.Total)),
			Value: t.Total.InexactFloat64(),
		})
	}

	if len(values) == 0 {
		return ErrNothingToPlot
	}

	pie := gochart.PieChart{
		Title:  "Expenses by Category",
		Width:  defaultWidth,
		Height: defaultHeight,
		Values: values,
		Background: gochart.Style{
			Padding: gochart.Box{
				Top:    40,
				Left:   40,
				Right:  40,
				Bottom: 40,
			},
			FillColor: gochart.ColorWhite,
		},
	}

	if err := pie.Render(gochart.PNG, w); err != nil {
		return fmt.Errorf("failed to render expense chart: %w", err)
	}

	return nil
}
