package api

// StatsSnapshot is the periodic summary returned by GET /api/stats.
type StatsSnapshot struct {
	Database         DatabaseStats `json:"database"`
	TotalAPIRequests int64         `json:"total_api_requests"`
	UptimeFormatted  string        `json:"uptime_formatted"`
	Timestamp        string        `json:"timestamp"`
}

// DatabaseStats holds the backend's item and search counters.
type DatabaseStats struct {
	TotalItems     int64 `json:"total_items"`
	ActiveSearches int64 `json:"active_searches"`
}

// Item is a recently discovered listing.
type Item struct {
	Title      string `json:"title"`
	Price      int64  `json:"price"`
	ImageURL   string `json:"image_url"`
	SearchName string `json:"search_name"`
}

// Query is a saved search.
type Query struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	URL       string `json:"url"`
	Enabled   bool   `json:"enabled"`
	ItemCount int64  `json:"item_count"`
}

// TestResults reports what a search-URL test found.
type TestResults struct {
	ItemsFound   int64    `json:"items_found"`
	SampleTitles []string `json:"sample_titles"`
}

// ValidationResult is the outcome of POST /api/search/test. An invalid URL
// is a value, not an error: the caller needs Error and TestError even when
// Valid is false, and TestError may be set regardless of validity.
type ValidationResult struct {
	Valid       bool         `json:"valid"`
	TestResults *TestResults `json:"test_results"`
	Error       string       `json:"error"`
	TestError   string       `json:"test_error"`
}
