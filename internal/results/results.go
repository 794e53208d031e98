// Package results derives totals, winners and percentages from tallies.
// Everything here is a pure function of its arguments.
package results

import (
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/campus-ballot/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// TotalVotes sums every count across all positions.
func TotalVotes(tallies []domain.Tally) int64 {
	var total int64
	for _, t := range tallies {
		total += PositionTotal(t)
	}
	return total
}

// PositionTotal sums the counts of one position.
func PositionTotal(t domain.Tally) int64 {
	var total int64
	for _, e := range t.Entries {
		total += e.Count
	}
	return total
}

// Winner returns the candidate with the highest count. On a tie the entry
// that comes first in the tally wins; normalized tallies follow catalog
// order, so the earliest listed candidate takes the tie. It reports false
// when nobody has voted for the position.
func Winner(t domain.Tally) (domain.TallyEntry, bool) {
	var (
		best  domain.TallyEntry
		found bool
	)
	for _, e := range t.Entries {
		if e.Count <= 0 {
			continue
		}
		if !found || e.Count > best.Count {
			best = e
			found = true
		}
	}
	return best, found
}

// Percentage returns count as a share of total, rounded half away from zero
// to one fractional digit. It is 0 when total is 0.
func Percentage(count, total int64) decimal.Decimal {
	if total <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(count).Mul(hundred).DivRound(decimal.NewFromInt(total), 1)
}
