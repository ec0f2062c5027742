package dto

// MonthGroup is one calendar bucket of the feed, keyed like "January 2006".
// Images keep the relative order of the input sequence.
type MonthGroup struct {
	Month  string            `json:"month"`
	Images []ImageDescriptor `json:"images"`
}

// FeedPage is one page of the descending-timestamp image feed. NextCursor is
// opaque; an empty value means the feed is exhausted.
type FeedPage struct {
	Groups     []MonthGroup `json:"groups"`
	NextCursor string       `json:"next_cursor,omitempty"`
}
