package ui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/muurk/selectkit/internal/selection"
)

// FormatValue renders an item value or key for display. Strings are quoted
// so "1" and 1 stay distinguishable; nil prints as null.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return strconv.Quote(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// RenderItemTable renders the normalized item list. The row at selected is
// highlighted and marked; pass -1 for no highlight.
func RenderItemTable(items []selection.Item, selected int, width int) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(MutedColor)).
		Headers("#", "LABEL", "VALUE", "KEY", "INPUT LABEL", "COLOR").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return TableHeaderStyle
			case row == selected:
				return TableSelectedStyle
			default:
				return TableCellStyle
			}
		})

	for i, item := range items {
		index := strconv.Itoa(i)
		if i == selected {
			index = SelectedMarker + " " + index
		}

		key := ""
		if item.Key != nil {
			key = FormatValue(item.Key)
		}

		t.Row(index, item.Label, FormatValue(item.Value), key, item.InputLabel, item.Color)
	}

	if width > 0 {
		t.Width(width)
	}
	return t.Render()
}
