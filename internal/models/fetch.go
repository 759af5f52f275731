package models

// Row is a single store row keyed by column name.
type Row = map[string]any

// PageRequest describes a paginated store query.
type PageRequest struct {
	Table      string   `json:"table"`
	Columns    []string `json:"columns"`
	OrderBy    string   `json:"order_by"`
	Descending bool     `json:"descending"`
	MaxRows    int      `json:"max_rows"`
	PageSize   int      `json:"page_size"`
}

// ChunkRequest describes a set-membership store query split into batches.
type ChunkRequest struct {
	Table        string   `json:"table"`
	Columns      []string `json:"columns"`
	FilterColumn string   `json:"filter_column"`
	Values       []string `json:"values"`
	ChunkSize    int      `json:"chunk_size"`
	OrderBy      string   `json:"order_by,omitempty"`
	Descending   bool     `json:"descending,omitempty"`
}
