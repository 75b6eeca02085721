package ui

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/langsalary/internal/models"
)

var tableHeader = []string{
	"Language",
	"Vacancies Found",
	"Vacancies Processed",
	"Average Salary",
}

// processedColumn is right-justified
const processedColumn = 2

// TableOptions controls how cell values are rendered
type TableOptions struct {
	GroupDigits bool
	Colorize    bool
}

// RenderTable renders the result as a double-bordered table titled with title.
// Rows follow the result's language order.
func RenderTable(result *models.AggregationResult, title string, opts TableOptions) (string, error) {
	entries := result.Entries()

	rows := make([][]string, 0, len(entries)+1)
	rows = append(rows, append([]string(nil), tableHeader...))
	for _, e := range entries {
		average := FormatSalary(e.Stat.AverageSalary, opts.GroupDigits)
		if opts.Colorize {
			average = ColorizeSalary(e.Stat.AverageSalary, opts.GroupDigits)
		}
		rows = append(rows, []string{
			e.Language,
			strconv.Itoa(e.Stat.VacanciesFound),
			strconv.Itoa(e.Stat.VacanciesProcessed),
			average,
		})
	}
	justifyRight(rows, processedColumn)

	table, err := pterm.DefaultTable.
		WithHasHeader().
		WithSeparator(" ║ ").
		WithHeaderRowSeparator("═").
		WithData(rows).
		Srender()
	if err != nil {
		return "", fmt.Errorf("failed to render table %q: %w", title, err)
	}

	return doubleBox(title).Sprint(table), nil
}

// doubleBox frames the table with double lines. pterm draws each corner
// string at the diagonally opposite corner, so the names are crossed here.
func doubleBox(title string) *pterm.BoxPrinter {
	return pterm.DefaultBox.
		WithTitle(title).
		WithHorizontalString("═").
		WithVerticalString("║").
		WithBottomRightCornerString("╔").
		WithBottomLeftCornerString("╗").
		WithTopRightCornerString("╚").
		WithTopLeftCornerString("╝")
}

func justifyRight(rows [][]string, column int) {
	width := 0
	for _, row := range rows {
		if w := len(row[column]); w > width {
			width = w
		}
	}
	for _, row := range rows {
		row[column] = fmt.Sprintf("%*s", width, row[column])
	}
}
