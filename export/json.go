package export

import (
	"encoding/json"
	"time"

	"github.com/opcua-lads/labstreams/devicemodel"
	"github.com/opcua-lads/labstreams/errors"
	"github.com/opcua-lads/labstreams/recorder"
)

// jsonReport is the document shape of the JSON export kind.
type jsonReport struct {
	Recorders []jsonRecorder `json:"recorders"`
}

type jsonRecorder struct {
	ID      string       `json:"id"`
	Headers []string     `json:"headers"`
	Records []jsonRecord `json:"records"`
}

type jsonRecord struct {
	Timestamp time.Time `json:"timestamp"`
	Values    []any     `json:"values"`
}

// RenderJSON produces the JSON export document: one entry per recorder with
// its column labels and typed record values. Deterministic for a given
// recorder list.
func (e *Exporter) RenderJSON(recorders []recorder.RecordSet) ([]byte, error) {
	if len(recorders) == 0 {
		return nil, errors.WrapInvalid(errors.ErrEmptyRender,
			"Exporter", "RenderJSON", "building document")
	}

	report := jsonReport{Recorders: make([]jsonRecorder, 0, len(recorders))}
	for _, rec := range recorders {
		jr := jsonRecorder{
			ID:      rec.ID(),
			Headers: rec.Headers(),
			Records: make([]jsonRecord, 0, len(rec.Records())),
		}
		for _, record := range rec.Records() {
			values := make([]any, len(record.Values))
			for i, v := range record.Values {
				if v.Kind == devicemodel.KindNumeric {
					values[i] = v.Number
				} else {
					values[i] = v.Text
				}
			}
			jr.Records = append(jr.Records, jsonRecord{
				Timestamp: record.Timestamp,
				Values:    values,
			})
		}
		report.Recorders = append(report.Recorders, jr)
	}

	doc, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "Exporter", "RenderJSON", "marshaling document")
	}
	return doc, nil
}
