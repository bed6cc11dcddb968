package store_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunthewhat/cert-studio-api/internal/store"
)

func newStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(nil)
}

func TestAddTemplateBecomesCurrent(t *testing.T) {
	s := newStore(t)

	first := s.AddTemplate(store.Template{Name: "Course Completion"})
	assert.Equal(t, first, s.CurrentTemplateID())

	second := s.AddTemplate(store.Template{Name: "Attendance"})
	assert.Equal(t, second, s.CurrentTemplateID())
}

func TestUpdateTemplateReplacesWholesale(t *testing.T) {
	s := newStore(t)

	id := s.AddTemplate(store.Template{
		Name:          "Course Completion",
		BackgroundURL: "https://cdn.test/bg.png",
		Fields:        []store.Field{{Name: "recipient", Type: store.FieldText}},
	})

	s.UpdateTemplate(id, store.Template{Name: "Renamed"})

	tpl, found := s.TemplateByID(id)
	require.True(t, found)
	assert.Equal(t, id, tpl.ID, "ID survives a wholesale replace")
	assert.Equal(t, "Renamed", tpl.Name)
	assert.Empty(t, tpl.BackgroundURL, "unset fields are cleared, not merged")
	assert.Empty(t, tpl.Fields)
}

func TestUpdateTemplateUnknownIDIsNoOp(t *testing.T) {
	s := newStore(t)

	id := s.AddTemplate(store.Template{Name: "Course Completion"})
	s.UpdateTemplate("missing", store.Template{Name: "Renamed"})

	tpl, found := s.TemplateByID(id)
	require.True(t, found)
	assert.Equal(t, "Course Completion", tpl.Name)
	assert.Len(t, s.Templates(), 1)
}

func TestDeleteTemplateRecomputesCurrent(t *testing.T) {
	s := newStore(t)

	first := s.AddTemplate(store.Template{Name: "First"})
	second := s.AddTemplate(store.Template{Name: "Second"})
	require.Equal(t, second, s.CurrentTemplateID())

	s.DeleteTemplate(second)
	assert.Equal(t, first, s.CurrentTemplateID())

	s.DeleteTemplate(first)
	assert.Empty(t, s.CurrentTemplateID())
}

func TestDeleteRecipientCascadesCertificates(t *testing.T) {
	s := newStore(t)

	alice := s.AddRecipient(store.Recipient{Name: "Alice"})
	bob := s.AddRecipient(store.Recipient{Name: "Bob"})

	aliceCert := s.AddCertificate(store.Certificate{RecipientID: alice})
	bobCert := s.AddCertificate(store.Certificate{RecipientID: bob})

	s.DeleteRecipient(alice)

	_, found := s.RecipientByID(alice)
	assert.False(t, found)

	_, found = s.CertificateByCode(aliceCert)
	assert.False(t, found, "certificates of the deleted recipient are removed")

	_, found = s.CertificateByCode(bobCert)
	assert.True(t, found, "other recipients' certificates are untouched")
}

func TestAddCertificateAllocatesCode(t *testing.T) {
	s := newStore(t)

	code := s.AddCertificate(store.Certificate{RecipientID: "r1"})
	assert.Regexp(t, `^CERT-[0-9A-F]{12}$`, code)

	explicit := s.AddCertificate(store.Certificate{Code: "CERT-FIXEDCODE01"})
	assert.Equal(t, "CERT-FIXEDCODE01", explicit)
}

func TestUpdateCertificatePatchesOnlyProvidedFields(t *testing.T) {
	s := newStore(t)

	code := s.AddCertificate(store.Certificate{
		RecipientID:     "r1",
		TemplateID:      "t1",
		VerificationURL: "https://certs.test/verify/x",
		Status:          store.StatusPublished,
	})

	pdfURL := "https://cdn.test/x.pdf"
	s.UpdateCertificate(code, store.CertificatePatch{PDFURL: &pdfURL})

	cert, found := s.CertificateByCode(code)
	require.True(t, found)
	assert.Equal(t, pdfURL, cert.PDFURL)
	assert.Equal(t, "r1", cert.RecipientID, "untouched fields keep their values")
	assert.Equal(t, "t1", cert.TemplateID)
	assert.Equal(t, store.StatusPublished, cert.Status)
}

func TestCollectionMembershipIsIdempotent(t *testing.T) {
	s := newStore(t)

	first := s.AddCertificate(store.Certificate{RecipientID: "r1"})
	second := s.AddCertificate(store.Certificate{RecipientID: "r2"})

	colID := s.AddCollection(store.Collection{Name: "Spring Cohort"})

	s.AddCertificatesToCollection(colID, []string{first, second, first, "CERT-DOESNOTEXIST"})

	col, found := s.CollectionByID(colID)
	require.True(t, found)
	require.Len(t, col.Certificates, 2, "duplicates and unknown codes are skipped")

	// Repeating the call changes nothing.
	s.AddCertificatesToCollection(colID, []string{first, second})
	col, _ = s.CollectionByID(colID)
	assert.Len(t, col.Certificates, 2)

	s.RemoveCertificatesFromCollection(colID, []string{first, "CERT-DOESNOTEXIST"})
	col, _ = s.CollectionByID(colID)
	require.Len(t, col.Certificates, 1)
	assert.Equal(t, second, col.Certificates[0].Code)
}

func TestUpdateCollectionKeepsCreatedAt(t *testing.T) {
	s := newStore(t)

	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	colID := s.AddCollection(store.Collection{Name: "Spring Cohort", CreatedAt: created})

	s.UpdateCollection(colID, store.Collection{Name: "Renamed"})

	col, found := s.CollectionByID(colID)
	require.True(t, found)
	assert.Equal(t, "Renamed", col.Name)
	assert.Equal(t, created, col.CreatedAt)
}

func TestExportImportRoundTrip(t *testing.T) {
	source := newStore(t)

	tplID := source.AddTemplate(store.Template{Name: "Course Completion"})
	rcptID := source.AddRecipient(store.Recipient{Name: "Alice", Email: "alice@example.org"})
	code := source.AddCertificate(store.Certificate{RecipientID: rcptID, TemplateID: tplID})
	colID := source.AddCollection(store.Collection{Name: "Spring Cohort"})
	source.AddCertificatesToCollection(colID, []string{code})

	data, err := source.ExportData()
	require.NoError(t, err)

	target := newStore(t)
	require.NoError(t, target.ImportData(data))

	assert.Len(t, target.Templates(), 1)
	assert.Len(t, target.Recipients(), 1)
	assert.Len(t, target.Certificates(), 1)
	assert.Len(t, target.Collections(), 1)
	assert.Equal(t, tplID, target.CurrentTemplateID(), "current template is the first imported template")

	cert, found := target.CertificateByCode(code)
	require.True(t, found)
	assert.Equal(t, rcptID, cert.RecipientID)
}

func TestImportMissingKeysDefaultToEmpty(t *testing.T) {
	s := newStore(t)
	s.AddRecipient(store.Recipient{Name: "Leftover"})

	require.NoError(t, s.ImportData([]byte(`{"templates":[{"id":"t1","name":"Only"}]}`)))

	assert.Len(t, s.Templates(), 1)
	assert.Empty(t, s.Recipients(), "keys absent from the document import as empty")
	assert.Empty(t, s.Certificates())
	assert.Empty(t, s.Collections())
	assert.Equal(t, "t1", s.CurrentTemplateID())
}

func TestImportMalformedDocumentLeavesStateUntouched(t *testing.T) {
	s := newStore(t)
	rcptID := s.AddRecipient(store.Recipient{Name: "Alice"})

	assert.Error(t, s.ImportData([]byte(`{not json`)))
	assert.Error(t, s.ImportData([]byte(`{"templates":"not-a-list"}`)))

	_, found := s.RecipientByID(rcptID)
	assert.True(t, found)
}

func TestSnapshotPersistsAcrossReopen(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "snapshot")

	snap, err := store.OpenSnapshot(dir)
	require.NoError(t, err)

	s := store.New(snap)
	require.NoError(t, s.Restore())

	tplID := s.AddTemplate(store.Template{Name: "Course Completion"})
	rcptID := s.AddRecipient(store.Recipient{Name: "Alice"})
	code := s.AddCertificate(store.Certificate{RecipientID: rcptID, TemplateID: tplID})

	require.NoError(t, snap.Close())

	reopened, err := store.OpenSnapshot(dir)
	require.NoError(t, err)
	defer reopened.Close()

	restored := store.New(reopened)
	require.NoError(t, restored.Restore())

	assert.Equal(t, tplID, restored.CurrentTemplateID())
	cert, found := restored.CertificateByCode(code)
	require.True(t, found)
	assert.Equal(t, rcptID, cert.RecipientID)
}
