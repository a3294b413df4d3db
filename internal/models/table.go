package models

// Table is the raw tabular payload returned by a provider: a header row
// naming the columns followed by data rows. Rows may be shorter than the
// header; missing cells read as empty.
type Table struct {
	Header []string   `json:"header" yaml:"header"`
	Rows   [][]string `json:"rows" yaml:"rows"`
}

// Len returns the number of data rows.
func (t Table) Len() int {
	return len(t.Rows)
}
