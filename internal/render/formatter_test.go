package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockBoard/internal/model"
)

func TestSparkline(t *testing.T) {
	values := []model.NullFloat{
		model.Float(1), model.Float(5), {}, model.Float(3),
	}
	got := Sparkline(values)
	runes := []rune(got)
	require.Len(t, runes, 4)
	assert.Equal(t, '▁', runes[0])
	assert.Equal(t, '█', runes[1])
	assert.Equal(t, '·', runes[2])

	// Constant series renders flat, not a division by zero.
	flat := Sparkline([]model.NullFloat{model.Float(2), model.Float(2)})
	assert.Equal(t, 2, len([]rune(flat)))
}

func TestFormatWatchlist_GridShape(t *testing.T) {
	table := make(model.SummaryTable, 7)
	for i := range table {
		table[i] = model.SummaryRow{
			Ticker:    "T" + string(rune('A'+i)),
			LastPrice: model.Float(10),
			ChangePct: model.Float(-1.5),
		}
	}

	out, err := FormatWatchlist(table, 3)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 3) // ceil(7/3) grid rows
	assert.Contains(t, lines[0], "TA")
	assert.Contains(t, lines[0], "▼")

	_, err = FormatWatchlist(table, 0)
	assert.Error(t, err)
}

func TestFormatCard_NullFields(t *testing.T) {
	card := formatCard(model.SummaryRow{Ticker: "AAA"})
	assert.Contains(t, card, "n/a")
}
