package format

import (
	"html"
	"time"

	"github.com/dustin/go-humanize"
)

// DefaultCurrency is the suffix appended to formatted prices.
const DefaultCurrency = "JPY"

// titleMax is the display cap for item titles.
const titleMax = 40

// Price renders a price with thousands grouping and a currency suffix.
// Zero and negative prices render as "Price N/A", matching how the backend
// reports listings without a price.
func Price(p int64) string {
	return PriceIn(p, DefaultCurrency)
}

// PriceIn is Price with an explicit currency suffix.
func PriceIn(p int64, currency string) string {
	if p <= 0 {
		return "Price N/A"
	}
	if currency == "" {
		currency = DefaultCurrency
	}
	return humanize.Comma(p) + " " + currency
}

// Count renders a stat counter with thousands grouping.
func Count(n int64) string {
	return humanize.Comma(n)
}

// dateLayouts are tried in order when parsing backend timestamps.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Date renders a backend timestamp as date plus hour:minute. Empty input
// renders as "N/A"; unparsable input is passed through verbatim.
func Date(s string) string {
	if s == "" {
		return "N/A"
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02 15:04")
		}
	}
	return s
}

// TruncateTitle caps a title at 40 runes, appending "..." when cut.
func TruncateTitle(s string) string {
	runes := []rune(s)
	if len(runes) <= titleMax {
		return s
	}
	return string(runes[:titleMax]) + "..."
}

// EscapeHTML entity-encodes backend-sourced text before it is interpolated
// into rendered markup. Item titles and search names come from scraped
// listings and are untrusted.
func EscapeHTML(s string) string {
	return html.EscapeString(s)
}
