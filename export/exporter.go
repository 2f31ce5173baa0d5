package export

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/opcua-lads/labstreams/devicemodel"
	"github.com/opcua-lads/labstreams/errors"
	"github.com/opcua-lads/labstreams/recorder"
)

// Mime types recognized by WriteArtifact.
const (
	// MimeTypeXLSX selects the spreadsheet-workbook export kind.
	MimeTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	// MimeTypeJSON selects the JSON export kind.
	MimeTypeJSON = "application/json"
	// MimeTypeCSV identifies CSV artifacts produced from Recorder.CSVString.
	// The core yields the CSV string only; no file writer is implied.
	MimeTypeCSV = "text/csv"
)

// timestampCellFormat is the fixed date/time pattern applied to the first
// column of every data row in the workbook.
const timestampCellFormat = "yyyy-mm-dd hh:mm:ss"

// Exporter renders recorders into report artifacts. One Exporter per run:
// the destination-directory check-then-create sequence is not guarded
// against concurrent callers targeting the same new path.
type Exporter struct {
	logger  *slog.Logger
	metrics *exporterMetrics
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithLogger sets the exporter's structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Exporter) {
		e.logger = logger
	}
}

// WithMetrics attaches export metrics. Nil disables instrumentation.
func WithMetrics(metrics *exporterMetrics) Option {
	return func(e *Exporter) {
		e.metrics = metrics
	}
}

// New creates an Exporter.
func New(opts ...Option) *Exporter {
	e := &Exporter{logger: slog.Default()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Render produces a workbook with one sheet per recorder: a bold header row
// ("Timestamp" then the column labels), one data row per record with the
// timestamp formatted by the fixed pattern and the remaining cells left as
// typed values for the rendering layer.
func (e *Exporter) Render(recorders []recorder.RecordSet) (*excelize.File, error) {
	if len(recorders) == 0 {
		return nil, errors.WrapInvalid(errors.ErrEmptyRender,
			"Exporter", "Render", "building workbook")
	}

	f := excelize.NewFile()

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, errors.Wrap(err, "Exporter", "Render", "creating header style")
	}
	tsFormat := timestampCellFormat
	tsStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &tsFormat})
	if err != nil {
		return nil, errors.Wrap(err, "Exporter", "Render", "creating timestamp style")
	}

	used := make(map[string]struct{}, len(recorders))
	for i, rec := range recorders {
		sheet := sheetName(rec.ID(), i, used)
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, errors.Wrap(err, "Exporter", "Render", "creating sheet")
		}

		headers := append([]string{"Timestamp"}, rec.Headers()...)
		for col, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(col+1, 1)
			if err := f.SetCellValue(sheet, cell, h); err != nil {
				return nil, errors.Wrap(err, "Exporter", "Render", "writing header cell")
			}
		}
		lastHeader, _ := excelize.CoordinatesToCellName(len(headers), 1)
		if err := f.SetCellStyle(sheet, "A1", lastHeader, boldStyle); err != nil {
			return nil, errors.Wrap(err, "Exporter", "Render", "styling header row")
		}

		for row, record := range rec.Records() {
			tsCell, _ := excelize.CoordinatesToCellName(1, row+2)
			if err := f.SetCellValue(sheet, tsCell, record.Timestamp); err != nil {
				return nil, errors.Wrap(err, "Exporter", "Render", "writing timestamp cell")
			}
			if err := f.SetCellStyle(sheet, tsCell, tsCell, tsStyle); err != nil {
				return nil, errors.Wrap(err, "Exporter", "Render", "styling timestamp cell")
			}

			for col, v := range record.Values {
				cell, _ := excelize.CoordinatesToCellName(col+2, row+2)
				var typed any
				if v.Kind == devicemodel.KindNumeric {
					typed = v.Number
				} else {
					typed = v.Text
				}
				if err := f.SetCellValue(sheet, cell, typed); err != nil {
					return nil, errors.Wrap(err, "Exporter", "Render", "writing data cell")
				}
			}
		}
	}

	// Drop the implicit default sheet so the workbook holds exactly one
	// sheet per recorder.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		e.logger.Warn("could not remove default sheet", "error", err)
	}

	return f, nil
}

// sheetName sanitizes a recorder id into a legal worksheet name: the
// characters excel forbids are replaced and the result is capped at the
// 31-character sheet-name limit. "Sheet1" is reserved (the implicit default
// sheet is removed after rendering), and an id whose sanitized form
// collides with an earlier one gets an index suffix so every recorder keeps
// its own sheet. The caller threads the used set across one rendering pass.
func sheetName(id string, index int, used map[string]struct{}) string {
	name := id
	if name == "" {
		name = fmt.Sprintf("Recorder%d", index+1)
	} else {
		replacer := strings.NewReplacer(
			":", "_", "\\", "_", "/", "_", "?", "_", "*", "_", "[", "_", "]", "_")
		name = replacer.Replace(name)
		if len(name) > 31 {
			name = name[:31]
		}
	}

	if _, taken := used[name]; taken || name == "Sheet1" {
		suffix := fmt.Sprintf("_%d", index+1)
		if len(name)+len(suffix) > 31 {
			name = name[:31-len(suffix)]
		}
		name += suffix
	}

	used[name] = struct{}{}
	return name
}

// WriteArtifact renders the recorders in the kind selected by mimeType and
// writes exactly one physical artifact at dir/name, creating the directory
// when missing. The returned path is only valid on success; any I/O failure
// propagates to the caller as a hard error and no artifact path is
// returned.
func (e *Exporter) WriteArtifact(
	ctx context.Context,
	dir, name, mimeType string,
	recorders []recorder.RecordSet,
) (string, error) {
	var payload []byte

	switch mimeType {
	case MimeTypeXLSX:
		workbook, err := e.Render(recorders)
		if err != nil {
			return "", err
		}
		buf, err := workbook.WriteToBuffer()
		if err != nil {
			return "", errors.WrapFatal(err, "Exporter", "WriteArtifact",
				"serializing workbook")
		}
		payload = buf.Bytes()
	case MimeTypeJSON:
		doc, err := e.RenderJSON(recorders)
		if err != nil {
			return "", err
		}
		payload = doc
	default:
		return "", errors.WrapInvalid(errors.ErrUnknownMime,
			"Exporter", "WriteArtifact", "selecting export kind "+mimeType)
	}

	if err := ctx.Err(); err != nil {
		return "", errors.WrapTransient(err, "Exporter", "WriteArtifact",
			"checking cancellation")
	}

	// Check-then-create on the destination directory. Not guarded against
	// concurrent callers targeting the same new path; use one Exporter per
	// run.
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			e.metrics.incFailed()
			return "", errors.WrapFatal(
				fmt.Errorf("%w: %w", errors.ErrArtifactWrite, err),
				"Exporter", "WriteArtifact", "creating export directory")
		}
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		e.metrics.incFailed()
		return "", errors.WrapFatal(
			fmt.Errorf("%w: %w", errors.ErrArtifactWrite, err),
			"Exporter", "WriteArtifact", "writing artifact")
	}

	e.metrics.incWritten(mimeType)
	e.logger.Info("export artifact written",
		"path", path, "mime_type", mimeType, "bytes", len(payload))
	return path, nil
}
