package domain

// ListOptions carries the querying knobs for collection reads.
type ListOptions struct {
	// Search is matched case-insensitively against the entity's search
	// fields. Blank search matches everything.
	Search string
	// Filters maps querystring keys to required values. All non-empty
	// filters must match (case-insensitive exact comparison).
	Filters map[string]string
	// Sort is one of "date", "created_at", "-created_at". Anything else
	// leaves the collection order untouched.
	Sort string
	// Page is 1-based. Non-positive values mean page 1.
	Page int
	// Limit <= 0 means unpaginated (limit becomes the filtered total).
	Limit int
}

// ListResult is the collection read envelope: one page of records plus the
// pre-pagination total and the effective paging values.
type ListResult struct {
	Data  []Record `json:"data"`
	Total int      `json:"total"`
	Limit int      `json:"limit"`
	Page  int      `json:"page"`
}

// RelationSummary is the compact related-record projection attached under a
// record's computed relationships map. It carries a handful of scalars
// rather than the full record, so decoration can never embed cycles.
type RelationSummary struct {
	ID        string `json:"id"`
	Entity    string `json:"entity"`
	Name      string `json:"name"`
	Version   int64  `json:"version,omitempty"`
	Status    string `json:"status,omitempty"`
	Stage     string `json:"stage,omitempty"`
	Value     any    `json:"value,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}
