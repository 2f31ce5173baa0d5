package recorder

import (
	"strings"
	"time"

	"github.com/opcua-lads/labstreams/devicemodel"
)

// csvTimestampLayout is the ISO-8601 form used for CSV data rows.
const csvTimestampLayout = time.RFC3339

// renderCSV produces the delimited text for a header set and record list:
// a quoted header row ("Timestamp" then the track headers), then one row per
// record with the ISO-8601 timestamp followed by the values — strings
// quoted, numbers bare. Rows are CRLF-terminated. Embedded quote and comma
// characters in values are passed through unescaped.
func renderCSV(headers []string, records []Record) string {
	var sb strings.Builder

	sb.WriteString(`"Timestamp"`)
	for _, h := range headers {
		sb.WriteString(`,"`)
		sb.WriteString(h)
		sb.WriteString(`"`)
	}
	sb.WriteString("\r\n")

	for _, rec := range records {
		sb.WriteString(rec.Timestamp.Format(csvTimestampLayout))
		for _, v := range rec.Values {
			sb.WriteString(",")
			if v.Kind == devicemodel.KindNumeric {
				sb.WriteString(v.DisplayString())
			} else {
				sb.WriteString(`"`)
				sb.WriteString(v.DisplayString())
				sb.WriteString(`"`)
			}
		}
		sb.WriteString("\r\n")
	}

	return sb.String()
}
