package store

import (
	"encoding/json"
	"log/slog"
)

// exportDocument is the wire shape for export/import. RawMessage keys let
// import distinguish absent keys from empty ones.
type exportDocument struct {
	Templates    json.RawMessage `json:"templates,omitempty"`
	Recipients   json.RawMessage `json:"recipients,omitempty"`
	Certificates json.RawMessage `json:"certificates,omitempty"`
	Collections  json.RawMessage `json:"collections,omitempty"`
}

// ExportData serializes the four containers into a single JSON document.
func (s *Store) ExportData() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := State{
		Templates:    s.state.Templates,
		Recipients:   s.state.Recipients,
		Certificates: s.state.Certificates,
		Collections:  s.state.Collections,
	}
	if out.Templates == nil {
		out.Templates = []Template{}
	}
	if out.Recipients == nil {
		out.Recipients = []Recipient{}
	}
	if out.Certificates == nil {
		out.Certificates = []Certificate{}
	}
	if out.Collections == nil {
		out.Collections = []Collection{}
	}

	return json.Marshal(out)
}

// ImportData replaces the whole state from an exported document. Missing keys
// default to empty containers; references are not validated. A document that
// fails to parse leaves the state untouched.
func (s *Store) ImportData(data []byte) error {
	doc := new(exportDocument)
	if err := json.Unmarshal(data, doc); err != nil {
		slog.Error("Store import failed to parse document", "error", err)
		return err
	}

	next := State{
		Templates:    []Template{},
		Recipients:   []Recipient{},
		Certificates: []Certificate{},
		Collections:  []Collection{},
	}

	if doc.Templates != nil {
		if err := json.Unmarshal(doc.Templates, &next.Templates); err != nil {
			slog.Error("Store import failed to parse templates", "error", err)
			return err
		}
	}
	if doc.Recipients != nil {
		if err := json.Unmarshal(doc.Recipients, &next.Recipients); err != nil {
			slog.Error("Store import failed to parse recipients", "error", err)
			return err
		}
	}
	if doc.Certificates != nil {
		if err := json.Unmarshal(doc.Certificates, &next.Certificates); err != nil {
			slog.Error("Store import failed to parse certificates", "error", err)
			return err
		}
	}
	if doc.Collections != nil {
		if err := json.Unmarshal(doc.Collections, &next.Collections); err != nil {
			slog.Error("Store import failed to parse collections", "error", err)
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = next
	s.recomputeCurrentTemplate()
	s.persist()

	slog.Info("Store imported snapshot",
		"templates", len(next.Templates),
		"recipients", len(next.Recipients),
		"certificates", len(next.Certificates),
		"collections", len(next.Collections))
	return nil
}
