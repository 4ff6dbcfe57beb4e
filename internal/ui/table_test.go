package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable_ColumnWidths(t *testing.T) {
	table := &Table{
		Headers: []string{"ID", "Title", "Category"},
		Rows: [][]string{
			{"abc123", "Water plants", "Home"},
			{"def456", "Quarterly budget review", "Finance"},
		},
	}

	widths := table.ColumnWidths()

	assert.Equal(t, 6, widths[0])  // "abc123" is longest in first column
	assert.Equal(t, 23, widths[1]) // "Quarterly budget review"
	assert.Equal(t, 8, widths[2])  // "Category" header is longest
}

func TestTable_ColumnWidths_MaxWidth(t *testing.T) {
	table := &Table{
		Headers:  []string{"ID", "Title"},
		Rows:     [][]string{{"a", "This is a very long title that should be truncated"}},
		MaxWidth: 20,
	}

	widths := table.ColumnWidths()

	assert.Equal(t, 2, widths[0])  // "ID" is longest
	assert.Equal(t, 20, widths[1]) // Capped at MaxWidth
}

func TestTable_Render(t *testing.T) {
	table := &Table{
		Headers: []string{"ID", "Title"},
		Rows: [][]string{
			{"1", "Walk the dog"},
			{"2", "Pay rent"},
		},
	}

	output := table.Render()

	assert.Contains(t, output, "ID")
	assert.Contains(t, output, "Title")
	assert.Contains(t, output, "Walk the dog")
	assert.Contains(t, output, "Pay rent")
	assert.Contains(t, output, "─")
}

func TestTable_Render_Empty(t *testing.T) {
	table := &Table{}

	assert.Empty(t, table.Render())
}

func TestTable_Render_Truncation(t *testing.T) {
	table := &Table{
		Headers:  []string{"Text"},
		Rows:     [][]string{{"This is way too long"}},
		MaxWidth: 10,
	}

	assert.Contains(t, table.Render(), "…")
}

func TestTable_Render_RowsHaveFewerColumns(t *testing.T) {
	table := &Table{
		Headers: []string{"ID", "Title", "Category"},
		Rows: [][]string{
			{"1", "Stretch"}, // Missing Category column
		},
	}

	output := table.Render()

	assert.Contains(t, output, "Stretch")
	lines := strings.Split(strings.TrimSpace(output), "\n")
	assert.Equal(t, 3, len(lines))
}

func TestTruncateID(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"abc123def456", "abc123"},
		{"short", "short"},
		{"", ""},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, TruncateID(tc.input))
	}
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "abc  ", padRight("abc", 5))
	assert.Equal(t, "hello", padRight("hello", 5))
	assert.Equal(t, "longer", padRight("longer", 3))
	assert.Equal(t, "   ", padRight("", 3))
}
