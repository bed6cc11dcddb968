// Package issuer orchestrates certificate issuance: synchronous local append
// into the state store, then an asynchronous pipeline persisting the database
// row, rendering the PDF and uploading it to object storage. Every pipeline
// outcome is observable through an explicit Task instead of fire-and-forget
// logging.
package issuer

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/sunthewhat/cert-studio-api/internal/storage"
	"github.com/sunthewhat/cert-studio-api/internal/store"
	"github.com/sunthewhat/cert-studio-api/type/shared/model"
)

// Remote pipelines run at most batchSize at a time during bulk issuance,
// sequentially across batches.
const batchSize = 3

// RecordStore persists issued-certificate rows in the relational database.
type RecordStore interface {
	Create(record *model.CertificateRecord) error
	SetPDFURL(code string, url string) error
}

// Renderer produces the certificate PDF bytes.
type Renderer interface {
	Render(ctx context.Context, tpl store.Template, rcpt store.Recipient, cert store.Certificate) ([]byte, error)
}

type Issuer struct {
	store      *store.Store
	records    RecordStore
	renderer   Renderer
	storage    storage.Client
	verifyHost string

	mu    sync.Mutex
	tasks map[string]*Task
}

func New(st *store.Store, records RecordStore, renderer Renderer, storageClient storage.Client, verifyHost string) *Issuer {
	return &Issuer{
		store:      st,
		records:    records,
		renderer:   renderer,
		storage:    storageClient,
		verifyHost: verifyHost,
		tasks:      make(map[string]*Task),
	}
}

// VerificationURL derives the public verification link for a certificate
// code. The URL is reconstructible from the code alone.
func (i *Issuer) VerificationURL(code string) string {
	return fmt.Sprintf("%s/verify/%s", i.verifyHost, code)
}

// Issue allocates a certificate for the recipient and template, appends it to
// local state synchronously and returns its code immediately. The returned
// Task resolves when the remote pipeline (row insert, render, upload, URL
// update) finishes. Remote failure never rolls back local state.
func (i *Issuer) Issue(recipientID string, templateID string) (string, *Task, error) {
	rcpt, ok := i.store.RecipientByID(recipientID)
	if !ok {
		return "", nil, fmt.Errorf("recipient %s not found", recipientID)
	}
	tpl, ok := i.store.TemplateByID(templateID)
	if !ok {
		return "", nil, fmt.Errorf("template %s not found", templateID)
	}

	cert := i.appendLocal(rcpt, tpl)
	task := i.register(cert.Code)

	go func() {
		task.finish(i.runPipeline(context.Background(), cert, rcpt, tpl))
	}()

	return cert.Code, task, nil
}

// BulkIssue appends certificates for every recipient synchronously, then
// processes the remote pipelines in batches of batchSize. The summary task
// resolves after the last batch; partial progress is readable from it while
// batches are in flight.
func (i *Issuer) BulkIssue(recipientIDs []string, templateID string) ([]string, *BulkTask, error) {
	tpl, ok := i.store.TemplateByID(templateID)
	if !ok {
		return nil, nil, fmt.Errorf("template %s not found", templateID)
	}

	type job struct {
		cert store.Certificate
		rcpt store.Recipient
	}

	codes := make([]string, 0, len(recipientIDs))
	jobs := make([]job, 0, len(recipientIDs))
	bulk := newBulkTask(len(recipientIDs))

	for _, recipientID := range recipientIDs {
		rcpt, ok := i.store.RecipientByID(recipientID)
		if !ok {
			slog.Warn("Bulk issue skipping unknown recipient", "recipient_id", recipientID)
			bulk.record("", fmt.Errorf("recipient %s not found", recipientID))
			continue
		}

		cert := i.appendLocal(rcpt, tpl)
		i.register(cert.Code)
		codes = append(codes, cert.Code)
		jobs = append(jobs, job{cert: cert, rcpt: rcpt})
	}

	go func() {
		for start := 0; start < len(jobs); start += batchSize {
			end := min(start+batchSize, len(jobs))

			var wg sync.WaitGroup
			for _, j := range jobs[start:end] {
				wg.Add(1)
				go func(j job) {
					defer wg.Done()
					err := i.runPipeline(context.Background(), j.cert, j.rcpt, tpl)
					bulk.record(j.cert.Code, err)
					if task := i.lookup(j.cert.Code); task != nil {
						task.finish(err)
					}
				}(j)
			}
			wg.Wait()
		}

		succeeded, failed := bulk.Progress()
		slog.Info("Bulk issuance completed",
			"template_id", templateID,
			"requested", len(recipientIDs),
			"succeeded", succeeded,
			"failed", failed)
		bulk.close()
	}()

	return codes, bulk, nil
}

// appendLocal performs the synchronous half of issuance: code allocation,
// verification URL derivation and the local state append.
func (i *Issuer) appendLocal(rcpt store.Recipient, tpl store.Template) store.Certificate {
	code := store.NewCertificateCode()
	verifyURL := i.VerificationURL(code)

	cert := store.Certificate{
		Code:            code,
		RecipientID:     rcpt.ID,
		TemplateID:      tpl.ID,
		VerificationURL: verifyURL,
		QRCodeURL:       verifyURL,
		IssuedAt:        time.Now(),
		Status:          store.StatusPublished,
	}

	i.store.AddCertificate(cert)
	return cert
}

// runPipeline persists the row, renders the PDF, uploads it and writes the
// resulting URL back to the row. The row survives a failed render or upload
// without a PDF URL.
func (i *Issuer) runPipeline(ctx context.Context, cert store.Certificate, rcpt store.Recipient, tpl store.Template) error {
	record := buildRecord(cert, rcpt, tpl)
	if err := i.records.Create(record); err != nil {
		slog.Error("Issuance failed to persist record", "code", cert.Code, "error", err)
		return fmt.Errorf("failed to persist certificate record: %w", err)
	}

	pdfBytes, err := i.renderer.Render(ctx, tpl, rcpt, cert)
	if err != nil {
		slog.Error("Issuance failed to render PDF", "code", cert.Code, "error", err)
		return fmt.Errorf("failed to render certificate PDF: %w", err)
	}

	pdfURL, err := storage.Upload(ctx, i.storage, storage.CertificateKey(cert.Code), pdfBytes, "application/pdf")
	if err != nil {
		slog.Error("Issuance failed to upload PDF", "code", cert.Code, "error", err)
		return fmt.Errorf("failed to upload certificate PDF: %w", err)
	}

	if err := i.records.SetPDFURL(cert.Code, pdfURL); err != nil {
		slog.Error("Issuance failed to update record PDF URL", "code", cert.Code, "error", err)
		return fmt.Errorf("failed to update certificate record: %w", err)
	}

	slog.Info("Certificate issued", "code", cert.Code, "pdf_url", pdfURL)
	return nil
}

func buildRecord(cert store.Certificate, rcpt store.Recipient, tpl store.Template) *model.CertificateRecord {
	course := rcpt.Course
	if course == "" {
		course = tpl.Name
	}

	// Date-only column; the clock part is dropped.
	issueDate := time.Date(
		cert.IssuedAt.Year(), cert.IssuedAt.Month(), cert.IssuedAt.Day(),
		0, 0, 0, 0, time.UTC)

	return &model.CertificateRecord{
		CertificateCode:     cert.Code,
		RecipientName:       rcpt.Name,
		RecipientEmail:      rcpt.Email,
		ExternalRecipientID: rcpt.ExternalID,
		CourseName:          course,
		TemplateID:          tpl.ID,
		IssueDate:           issueDate,
		QRPayload:           cert.QRCodeURL,
		Status:              cert.Status,
	}
}

func (i *Issuer) register(code string) *Task {
	task := newTask(code)
	i.mu.Lock()
	i.tasks[code] = task
	i.mu.Unlock()
	return task
}

func (i *Issuer) lookup(code string) *Task {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.tasks[code]
}

// TaskByCode returns the issuance task for a certificate code, if one was
// started in this process.
func (i *Issuer) TaskByCode(code string) (*Task, bool) {
	task := i.lookup(code)
	return task, task != nil
}
