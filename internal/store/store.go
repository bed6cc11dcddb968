package store

import (
	"encoding/json"
	"log/slog"
	"sync"
)

// State is the persisted shape of the store: four ordered containers in one
// snapshot. Referential integrity across them is not enforced beyond the
// recipient-to-certificate delete cascade.
type State struct {
	Templates    []Template    `json:"templates"`
	Recipients   []Recipient   `json:"recipients"`
	Certificates []Certificate `json:"certificates"`
	Collections  []Collection  `json:"collections"`
}

// Store is the single source of truth for templates, recipients, certificates
// and collections. All mutation goes through its command methods, each of
// which persists the whole snapshot before returning.
type Store struct {
	mu                sync.Mutex
	state             State
	currentTemplateID string
	snap              *SnapshotStore
}

// New creates a store backed by the given snapshot store. A nil snapshot
// store keeps the state in memory only.
func New(snap *SnapshotStore) *Store {
	return &Store{snap: snap}
}

// Restore loads the persisted snapshot into the store. A missing snapshot is
// a fresh start, not an error.
func (s *Store) Restore() error {
	if s.snap == nil {
		return nil
	}

	data, err := s.snap.Load()
	if err != nil {
		return err
	}
	if data == nil {
		slog.Info("Store restore: no snapshot found, starting empty")
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := json.Unmarshal(data, &s.state); err != nil {
		return err
	}
	s.recomputeCurrentTemplate()

	slog.Info("Store restored from snapshot",
		"templates", len(s.state.Templates),
		"recipients", len(s.state.Recipients),
		"certificates", len(s.state.Certificates),
		"collections", len(s.state.Collections))
	return nil
}

// persist writes the whole state to the snapshot store. Persistence failures
// are logged and never roll back the in-memory mutation. Callers must hold
// the lock.
func (s *Store) persist() {
	if s.snap == nil {
		return
	}

	data, err := json.Marshal(s.state)
	if err != nil {
		slog.Error("Store persist marshal failed", "error", err)
		return
	}

	if err := s.snap.Save(data); err != nil {
		slog.Error("Store persist save failed", "error", err)
	}
}

func (s *Store) recomputeCurrentTemplate() {
	if len(s.state.Templates) > 0 {
		s.currentTemplateID = s.state.Templates[0].ID
	} else {
		s.currentTemplateID = ""
	}
}

// Templates

func (s *Store) AddTemplate(t Template) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	t.ID = NewEntityID()
	s.state.Templates = append(s.state.Templates, t)
	s.currentTemplateID = t.ID
	s.persist()
	return t.ID
}

// UpdateTemplate replaces the template wholesale, keeping only the ID. A
// missing ID is a silent no-op.
func (s *Store) UpdateTemplate(id string, t Template) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Templates {
		if s.state.Templates[i].ID == id {
			t.ID = id
			s.state.Templates[i] = t
			s.persist()
			return
		}
	}
}

// DeleteTemplate removes the template. Certificates already issued from it
// keep their dangling reference.
func (s *Store) DeleteTemplate(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.state.Templates[:0]
	for _, t := range s.state.Templates {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.state.Templates = kept
	if s.currentTemplateID == id {
		s.recomputeCurrentTemplate()
	}
	s.persist()
}

func (s *Store) Templates() []Template {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Template(nil), s.state.Templates...)
}

func (s *Store) TemplateByID(id string) (Template, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.state.Templates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

func (s *Store) CurrentTemplateID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentTemplateID
}

func (s *Store) SetCurrentTemplate(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentTemplateID = id
}

// Recipients

func (s *Store) AddRecipient(r Recipient) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	r.ID = NewEntityID()
	s.state.Recipients = append(s.state.Recipients, r)
	s.persist()
	return r.ID
}

func (s *Store) UpdateRecipient(id string, r Recipient) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Recipients {
		if s.state.Recipients[i].ID == id {
			r.ID = id
			s.state.Recipients[i] = r
			s.persist()
			return
		}
	}
}

// DeleteRecipient removes the recipient and cascades to every certificate
// issued to it.
func (s *Store) DeleteRecipient(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	keptRecipients := s.state.Recipients[:0]
	for _, r := range s.state.Recipients {
		if r.ID != id {
			keptRecipients = append(keptRecipients, r)
		}
	}
	s.state.Recipients = keptRecipients

	keptCerts := s.state.Certificates[:0]
	for _, c := range s.state.Certificates {
		if c.RecipientID != id {
			keptCerts = append(keptCerts, c)
		}
	}
	s.state.Certificates = keptCerts
	s.persist()
}

func (s *Store) Recipients() []Recipient {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Recipient(nil), s.state.Recipients...)
}

func (s *Store) RecipientByID(id string) (Recipient, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.state.Recipients {
		if r.ID == id {
			return r, true
		}
	}
	return Recipient{}, false
}

// Certificates

// AddCertificate appends the certificate, allocating a code when none is set.
func (s *Store) AddCertificate(c Certificate) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c.Code == "" {
		c.Code = NewCertificateCode()
	}
	s.state.Certificates = append(s.state.Certificates, c)
	s.persist()
	return c.Code
}

// UpdateCertificate applies a partial merge; unlike templates and recipients,
// certificate updates patch only the provided fields.
func (s *Store) UpdateCertificate(code string, patch CertificatePatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Certificates {
		if s.state.Certificates[i].Code != code {
			continue
		}

		c := &s.state.Certificates[i]
		if patch.RecipientID != nil {
			c.RecipientID = *patch.RecipientID
		}
		if patch.TemplateID != nil {
			c.TemplateID = *patch.TemplateID
		}
		if patch.VerificationURL != nil {
			c.VerificationURL = *patch.VerificationURL
		}
		if patch.QRCodeURL != nil {
			c.QRCodeURL = *patch.QRCodeURL
		}
		if patch.IssuedAt != nil {
			c.IssuedAt = *patch.IssuedAt
		}
		if patch.Status != nil {
			c.Status = *patch.Status
		}
		if patch.PDFURL != nil {
			c.PDFURL = *patch.PDFURL
		}
		s.persist()
		return
	}
}

func (s *Store) DeleteCertificate(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.state.Certificates[:0]
	for _, c := range s.state.Certificates {
		if c.Code != code {
			kept = append(kept, c)
		}
	}
	s.state.Certificates = kept
	s.persist()
}

func (s *Store) Certificates() []Certificate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Certificate(nil), s.state.Certificates...)
}

func (s *Store) CertificateByCode(code string) (Certificate, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.state.Certificates {
		if c.Code == code {
			return c, true
		}
	}
	return Certificate{}, false
}

// Collections

func (s *Store) AddCollection(col Collection) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	col.ID = NewEntityID()
	if col.Certificates == nil {
		col.Certificates = []Certificate{}
	}
	s.state.Collections = append(s.state.Collections, col)
	s.persist()
	return col.ID
}

func (s *Store) UpdateCollection(id string, col Collection) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Collections {
		if s.state.Collections[i].ID == id {
			col.ID = id
			col.CreatedAt = s.state.Collections[i].CreatedAt
			s.state.Collections[i] = col
			s.persist()
			return
		}
	}
}

func (s *Store) DeleteCollection(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.state.Collections[:0]
	for _, col := range s.state.Collections {
		if col.ID != id {
			kept = append(kept, col)
		}
	}
	s.state.Collections = kept
	s.persist()
}

func (s *Store) Collections() []Collection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Collection(nil), s.state.Collections...)
}

func (s *Store) CollectionByID(id string) (Collection, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, col := range s.state.Collections {
		if col.ID == id {
			return col, true
		}
	}
	return Collection{}, false
}

// AddCertificatesToCollection embeds copies of the named certificates into
// the collection, deduplicating by certificate code. Codes already present
// and codes with no matching certificate are skipped, so the call is
// idempotent.
func (s *Store) AddCertificatesToCollection(collectionID string, codes []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Collections {
		if s.state.Collections[i].ID != collectionID {
			continue
		}

		col := &s.state.Collections[i]
		member := make(map[string]bool, len(col.Certificates))
		for _, c := range col.Certificates {
			member[c.Code] = true
		}

		for _, code := range codes {
			if member[code] {
				continue
			}
			for _, c := range s.state.Certificates {
				if c.Code == code {
					col.Certificates = append(col.Certificates, c)
					member[code] = true
					break
				}
			}
		}
		s.persist()
		return
	}
}

// RemoveCertificatesFromCollection drops members by set difference on code.
func (s *Store) RemoveCertificatesFromCollection(collectionID string, codes []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	drop := make(map[string]bool, len(codes))
	for _, code := range codes {
		drop[code] = true
	}

	for i := range s.state.Collections {
		if s.state.Collections[i].ID != collectionID {
			continue
		}

		col := &s.state.Collections[i]
		kept := col.Certificates[:0]
		for _, c := range col.Certificates {
			if !drop[c.Code] {
				kept = append(kept, c)
			}
		}
		col.Certificates = kept
		s.persist()
		return
	}
}
