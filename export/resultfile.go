package export

import (
	"os"
	"path/filepath"

	"github.com/opcua-lads/labstreams/devicemodel"
	"github.com/opcua-lads/labstreams/errors"
)

// ReferenceBinder re-attaches annotation edges onto a freshly created
// result-file descriptor. Satisfied by binder.Binder.
type ReferenceBinder interface {
	BindResultFile(node *devicemodel.Node)
}

// CreateResultFile creates a result-file descriptor under container with
// name, mime-type, and URL metadata, and attaches the already-materialized
// artifact content. Call it only after the artifact write succeeded: a
// missing or unreadable source is a hard error and no descriptor is
// created. An optional binder annotates the new descriptor and its
// variables.
func (e *Exporter) CreateResultFile(
	container *devicemodel.Node,
	displayName, sourcePath, mimeType string,
	refBinder ReferenceBinder,
) (*devicemodel.Node, error) {
	if container == nil {
		return nil, errors.WrapInvalid(errors.ErrMissingContent,
			"Exporter", "CreateResultFile", "checking container node")
	}

	content, err := os.ReadFile(sourcePath)
	if err != nil {
		return nil, errors.WrapFatal(err, "Exporter", "CreateResultFile",
			"reading materialized artifact")
	}

	abs, err := filepath.Abs(sourcePath)
	if err != nil {
		abs = sourcePath
	}

	file := devicemodel.NewNode(displayName, devicemodel.RoleResultFile)

	nameValue := &devicemodel.Value{Name: devicemodel.NameFileName, Kind: devicemodel.KindText}
	nameValue.Write(devicemodel.TextVariant(displayName))
	file.AddVariable(nameValue)

	mimeValue := &devicemodel.Value{Name: devicemodel.NameMimeType, Kind: devicemodel.KindText}
	mimeValue.Write(devicemodel.TextVariant(mimeType))
	file.AddVariable(mimeValue)

	urlValue := &devicemodel.Value{Name: devicemodel.NameURL, Kind: devicemodel.KindText}
	urlValue.Write(devicemodel.TextVariant("file://" + abs))
	file.AddVariable(urlValue)

	file.Attach(content)
	container.AddChild(file)

	if refBinder != nil {
		refBinder.BindResultFile(file)
	}

	e.logger.Info("result file registered",
		"container", container.Name, "file", displayName, "mime_type", mimeType)
	return file, nil
}
