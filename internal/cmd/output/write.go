package output

import (
	"io"

	"github.com/agentstation/wdsquery/internal/cmd/table"
)

// Write renders data in the given format. Table formats use tabular, all
// others marshal data itself.
func Write(w io.Writer, format Format, tabular table.Data, data any) error {
	if format.IsTable() {
		return NewFormatter(FormatTable).Format(w, tabular)
	}
	return NewFormatter(format).Format(w, data)
}

// WriteAny renders data that has no dedicated table layout.
func WriteAny(w io.Writer, format Format, data any) error {
	return NewFormatter(format).Format(w, data)
}
