package scene

import (
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/handoff/pkg/errors"
)

// ReadJSON decodes a document from r.
//
// The input must be a JSON object with a "nodes" array; "origin" defaults to
// (0, 0) and "page" may be omitted. ReadJSON does not validate geometry:
// missing bounding boxes are reported by [Extract] and degenerate pages by
// the measure package. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode document")
	}
	if doc.Nodes == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "document has no nodes array")
	}
	return &doc, nil
}

// ImportJSON reads the document stored at path.
func ImportJSON(path string) (*Document, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()

	doc, err := ReadJSON(f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}
	return doc, nil
}
