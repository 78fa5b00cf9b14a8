// Package metadata defines the portable document describing a constructed
// Hamiltonian: which model, on which Hilbert space, from which parameters,
// and whether it passed validation. Documents are pure data with
// deterministic JSON and YAML encodings, so repeated export of the same
// instance yields byte-identical output.
package metadata

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Validation status values carried by a document.
const (
	StatusUnchecked = "unchecked"
	StatusValid     = "valid"
	StatusInvalid   = "invalid"
)

// ErrBadDocument indicates a decoded document missing required fields or
// carrying an unknown validation status.
var ErrBadDocument = errors.New("metadata: malformed document")

// Document is the exported description of one Hamiltonian model instance.
type Document struct {
	Model             string             `json:"model" yaml:"model"`
	Domain            string             `json:"domain" yaml:"domain"`
	HilbertSpaceShape []int              `json:"hilbert_space_shape" yaml:"hilbert_space_shape"`
	Parameters        map[string]float64 `json:"parameters" yaml:"parameters"`
	ValidationStatus  string             `json:"validation_status" yaml:"validation_status"`
	Reason            string             `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// TotalDim is the product of the document's declared local dimensions.
func (d Document) TotalDim() int {
	n := 1
	for _, dim := range d.HilbertSpaceShape {
		n *= dim
	}
	return n
}

func (d Document) check() error {
	if d.Model == "" {
		return fmt.Errorf("%w: empty model tag", ErrBadDocument)
	}
	if len(d.HilbertSpaceShape) == 0 {
		return fmt.Errorf("%w: empty hilbert_space_shape", ErrBadDocument)
	}
	for _, dim := range d.HilbertSpaceShape {
		if dim < 1 {
			return fmt.Errorf("%w: non-positive dimension %d", ErrBadDocument, dim)
		}
	}
	switch d.ValidationStatus {
	case StatusUnchecked, StatusValid, StatusInvalid:
	default:
		return fmt.Errorf("%w: unknown validation status %q", ErrBadDocument, d.ValidationStatus)
	}
	return nil
}

// EncodeJSON renders the document as indented JSON. Map keys are emitted
// in sorted order, so the encoding is deterministic.
func (d Document) EncodeJSON() ([]byte, error) {
	if err := d.check(); err != nil {
		return nil, err
	}
	return json.MarshalIndent(d, "", "  ")
}

// EncodeYAML renders the document as YAML.
func (d Document) EncodeYAML() ([]byte, error) {
	if err := d.check(); err != nil {
		return nil, err
	}
	return yaml.Marshal(d)
}

// DecodeJSON parses and validates a JSON document.
func DecodeJSON(data []byte) (Document, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return Document{}, fmt.Errorf("metadata: %w", err)
	}
	if err := d.check(); err != nil {
		return Document{}, err
	}
	return d, nil
}

// DecodeYAML parses and validates a YAML document.
func DecodeYAML(data []byte) (Document, error) {
	var d Document
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Document{}, fmt.Errorf("metadata: %w", err)
	}
	if err := d.check(); err != nil {
		return Document{}, err
	}
	return d, nil
}
