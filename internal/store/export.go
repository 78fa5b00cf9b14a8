package store

import (
	"os"
	"strings"

	"github.com/hamforge/hamforge/internal/metadata"
)

// WriteFile exports a document to an explicit path, bypassing the data
// directory and its ID scheme. The extension picks the encoding: .yaml
// and .yml produce YAML, everything else JSON.
func WriteFile(path string, doc metadata.Document) error {
	var data []byte
	var err error
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = doc.EncodeYAML()
	} else {
		data, err = doc.EncodeJSON()
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
