package pagecopy

import "strings"

// Record is one row of tabular data keyed by column name.
type Record map[string]string

// Table holds the records scraped from a data table.
type Table struct {
	// Columns lists the record keys in output order.
	Columns []string

	Records []Record
}

// Count returns the number of records in the table.
func (t *Table) Count() int {
	if t == nil {
		return 0
	}
	return len(t.Records)
}

// CSV formats the table as comma-separated text with a header line.
// Values containing a comma are wrapped in double quotes. Embedded quotes
// are not escaped. A nil table formats as "".
func (t *Table) CSV() string {
	if t == nil {
		return ""
	}

	lines := make([]string, 0, len(t.Records)+1)
	lines = append(lines, strings.Join(t.Columns, ","))
	for _, rec := range t.Records {
		fields := make([]string, len(t.Columns))
		for i, col := range t.Columns {
			fields[i] = quoteField(rec[col])
		}
		lines = append(lines, strings.Join(fields, ","))
	}

	return strings.Join(lines, "\n")
}

func quoteField(v string) string {
	if strings.Contains(v, ",") {
		return `"` + v + `"`
	}
	return v
}
