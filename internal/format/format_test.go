package format

import (
	"strings"
	"testing"
)

func TestPrice(t *testing.T) {
	tests := []struct {
		name  string
		price int64
		want  string
	}{
		{
			name:  "zero price is not available",
			price: 0,
			want:  "Price N/A",
		},
		{
			name:  "negative price is not available",
			price: -5,
			want:  "Price N/A",
		},
		{
			name:  "small price has no separator",
			price: 980,
			want:  "980 JPY",
		},
		{
			name:  "thousands are grouped",
			price: 1000,
			want:  "1,000 JPY",
		},
		{
			name:  "millions are grouped",
			price: 1234567,
			want:  "1,234,567 JPY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Price(tt.price); got != tt.want {
				t.Errorf("Price(%d) = %q, want %q", tt.price, got, tt.want)
			}
		})
	}
}

func TestPriceIn(t *testing.T) {
	if got := PriceIn(2500, "USD"); got != "2,500 USD" {
		t.Errorf("PriceIn(2500, USD) = %q, want %q", got, "2,500 USD")
	}
	if got := PriceIn(2500, ""); got != "2,500 JPY" {
		t.Errorf("PriceIn with empty currency = %q, want default suffix", got)
	}
}

func TestCount(t *testing.T) {
	if got := Count(0); got != "0" {
		t.Errorf("Count(0) = %q, want %q", got, "0")
	}
	if got := Count(123456); got != "123,456" {
		t.Errorf("Count(123456) = %q, want %q", got, "123,456")
	}
}

func TestTruncateTitle(t *testing.T) {
	long := strings.Repeat("a", 50)

	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "empty title is verbatim",
			title: "",
			want:  "",
		},
		{
			name:  "short title is verbatim",
			title: "Nintendo Switch",
			want:  "Nintendo Switch",
		},
		{
			name:  "exactly forty runes is verbatim",
			title: strings.Repeat("b", 40),
			want:  strings.Repeat("b", 40),
		},
		{
			name:  "long title is cut at forty with ellipsis",
			title: long,
			want:  long[:40] + "...",
		},
		{
			name:  "multibyte titles are cut by rune",
			title: strings.Repeat("あ", 45),
			want:  strings.Repeat("あ", 40) + "...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateTitle(tt.title); got != tt.want {
				t.Errorf("TruncateTitle(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestEscapeHTML(t *testing.T) {
	got := EscapeHTML("<script>alert(1)</script>")
	if strings.ContainsAny(got, "<>") {
		t.Errorf("EscapeHTML left raw angle brackets: %q", got)
	}
	if !strings.Contains(got, "&lt;script&gt;") {
		t.Errorf("EscapeHTML did not entity-encode: %q", got)
	}
	if got := EscapeHTML("plain title"); got != "plain title" {
		t.Errorf("EscapeHTML altered safe text: %q", got)
	}
}

func TestDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "empty is not available",
			in:   "",
			want: "N/A",
		},
		{
			name: "rfc3339",
			in:   "2026-08-29T14:30:05Z",
			want: "2026-08-29 14:30",
		},
		{
			name: "bare datetime",
			in:   "2026-08-29 14:30:05",
			want: "2026-08-29 14:30",
		},
		{
			name: "unparsable passes through",
			in:   "yesterday",
			want: "yesterday",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Date(tt.in); got != tt.want {
				t.Errorf("Date(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
