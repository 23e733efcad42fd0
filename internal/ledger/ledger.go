// Package ledger implements the single aggregation routine behind every
// report: date-bounded filtering, ordering, running balances with
// per-group resets, and display-only search filtering. The legacy
// application reimplemented this walk once per report; here it exists
// exactly once.
package ledger

import (
	"sort"
	"strings"
	"time"

	"rentfolio/internal/dateutils"

	"github.com/shopspring/decimal"
)

// Entry is one debit-or-credit record feeding a ledger. Debit and Credit
// are mutually exclusive in every producing report; the aggregator does
// not enforce that, it just applies debit − credit.
type Entry struct {
	ID        string
	Date      time.Time
	Debit     decimal.Decimal
	Credit    decimal.Decimal
	GroupKey  string
	Label     string
	Detail    string
	Reference string
	Category  string
	Property  string
}

// Row is an Entry plus its running balance after ordering.
type Row struct {
	Entry
	Balance decimal.Decimal
}

// SortKey selects the ordering column when grouping is off.
type SortKey string

const (
	SortByDate   SortKey = "date"
	SortByAmount SortKey = "amount"
	SortByLabel  SortKey = "label"
)

// Options controls one aggregation pass.
type Options struct {
	// Start and End bound the report period. Zero values leave the side
	// unbounded. End is inclusive for the whole calendar day.
	Start time.Time
	End   time.Time

	// GroupBy orders rows by (GroupKey, Date) and resets the running
	// balance at each group boundary.
	GroupBy bool

	// SortKey and Descending order the rows when GroupBy is off.
	// Grouping always sorts ascending by (GroupKey, Date).
	SortKey    SortKey
	Descending bool

	// Search hides rows whose text fields do not match. It is applied
	// after balance computation: hidden rows still contribute to the
	// balances of the rows that remain visible.
	Search string
}

// Aggregate produces ordered ledger rows with running balances.
func Aggregate(entries []Entry, opts Options) []Row {
	filtered := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Date.IsZero() {
			continue
		}
		if !dateutils.InRange(e.Date, opts.Start, opts.End) {
			continue
		}
		filtered = append(filtered, e)
	}

	sortEntries(filtered, opts)

	rows := make([]Row, 0, len(filtered))
	running := decimal.Zero
	currentGroup := ""
	for i, e := range filtered {
		if opts.GroupBy && (i == 0 || e.GroupKey != currentGroup) {
			running = decimal.Zero
			currentGroup = e.GroupKey
		}
		running = running.Add(e.Debit).Sub(e.Credit)
		rows = append(rows, Row{Entry: e, Balance: running})
	}

	if opts.Search != "" {
		rows = filterRows(rows, opts.Search)
	}
	return rows
}

// sortEntries orders entries in place. Stable sorts keep the relative
// order of ties from the input sequence.
func sortEntries(entries []Entry, opts Options) {
	if opts.GroupBy {
		sort.SliceStable(entries, func(i, j int) bool {
			if entries[i].GroupKey != entries[j].GroupKey {
				return entries[i].GroupKey < entries[j].GroupKey
			}
			return entries[i].Date.Before(entries[j].Date)
		})
		return
	}

	less := func(i, j int) bool {
		switch opts.SortKey {
		case SortByAmount:
			ai := entries[i].Debit.Add(entries[i].Credit)
			aj := entries[j].Debit.Add(entries[j].Credit)
			return ai.LessThan(aj)
		case SortByLabel:
			return entries[i].Label < entries[j].Label
		default:
			return entries[i].Date.Before(entries[j].Date)
		}
	}
	if opts.Descending {
		sort.SliceStable(entries, func(i, j int) bool { return less(j, i) })
	} else {
		sort.SliceStable(entries, less)
	}
}

// filterRows applies free-text search over the row's display fields.
// Balances are computed before this runs and are never recalculated.
func filterRows(rows []Row, search string) []Row {
	q := strings.ToLower(strings.TrimSpace(search))
	if q == "" {
		return rows
	}
	out := rows[:0:0]
	for _, r := range rows {
		if rowMatches(r, q) {
			out = append(out, r)
		}
	}
	return out
}

func rowMatches(r Row, q string) bool {
	for _, field := range []string{r.Label, r.Detail, r.Reference, r.Category, r.Property, r.GroupKey} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// Totals sums the debit and credit columns of a set of rows.
func Totals(rows []Row) (debit, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	for _, r := range rows {
		debit = debit.Add(r.Debit)
		credit = credit.Add(r.Credit)
	}
	return debit, credit
}
