package domain

// Record is one warehouse row. Field keys are not fixed; they vary with the
// source table, so the only safe shape is a key/value map. The "id" field
// identifies a row for update/delete and plays no part in aggregation.
type Record map[string]interface{}

// ID returns the record's identity field as a string, or "" if absent.
func (r Record) ID() string {
	v, ok := r["id"]
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// Column describes one warehouse column: the underlying field key plus the
// human-readable label shown in table headers.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Snapshot is the at-most-N-row view of the tracked table that every
// report is computed from. No paging, no streaming.
type Snapshot struct {
	Columns []Column `json:"columns"`
	Rows    []Record `json:"rows"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

type SuccessResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
}
