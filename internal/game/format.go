package game

import (
	"math"

	"github.com/dustin/go-humanize"
)

// FormatMoney renders a won amount with thousands separators.
func FormatMoney(v float64) string {
	n := int64(math.Round(v))
	if n < 0 {
		return "-₩" + humanize.Comma(-n)
	}
	return "₩" + humanize.Comma(n)
}
