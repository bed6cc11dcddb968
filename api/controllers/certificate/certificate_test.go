package certificate_controller_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	certificate_controller "github.com/sunthewhat/cert-studio-api/api/controllers/certificate"
	"github.com/sunthewhat/cert-studio-api/api/model/recordModel"
	"github.com/sunthewhat/cert-studio-api/internal/issuer"
	"github.com/sunthewhat/cert-studio-api/internal/store"
	"github.com/sunthewhat/cert-studio-api/type/payload"
)

type fakeRenderer struct {
	renderErr error
}

func (f *fakeRenderer) Render(ctx context.Context, tpl store.Template, rcpt store.Recipient, cert store.Certificate) ([]byte, error) {
	if f.renderErr != nil {
		return nil, f.renderErr
	}
	return []byte("%PDF-1.4 fake"), nil
}

type fakeStorage struct {
	objects map[string][]byte
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: make(map[string][]byte)}
}

func (f *fakeStorage) Create(ctx context.Context, key string, data []byte, contentType string) error {
	f.objects[key] = data
	return nil
}

func (f *fakeStorage) Update(ctx context.Context, key string, data []byte, contentType string) error {
	f.objects[key] = data
	return nil
}

func (f *fakeStorage) Get(ctx context.Context, key string) ([]byte, error) {
	return f.objects[key], nil
}

func (f *fakeStorage) Delete(ctx context.Context, key string) error { return nil }

func (f *fakeStorage) Exists(ctx context.Context, key string) bool {
	_, ok := f.objects[key]
	return ok
}

func (f *fakeStorage) PublicURL(key string) string { return "https://cdn.test/" + key }

type testEnv struct {
	app    *fiber.App
	store  *store.Store
	rcptID string
	tplID  string
}

func setup(t *testing.T, records *recordModel.MockRecordRepository) *testEnv {
	t.Helper()

	st := store.New(nil)
	tplID := st.AddTemplate(store.Template{Name: "Go Fundamentals"})
	rcptID := st.AddRecipient(store.Recipient{Name: "Alice", Email: "alice@example.org"})

	storageClient := newFakeStorage()
	iss := issuer.New(st, records, &fakeRenderer{}, storageClient, "https://certs.example.org")
	ctrl := certificate_controller.NewController(st, iss, records, storageClient)

	app := fiber.New()
	app.Get("/certificate", ctrl.GetAll)
	app.Get("/certificate/:code", ctrl.GetByCode)
	app.Post("/certificate/issue", ctrl.Issue)
	app.Post("/certificate/issue/bulk", ctrl.BulkIssue)
	app.Get("/certificate/generate/status/:code", ctrl.Status)
	app.Put("/certificate/:code", ctrl.Update)
	app.Delete("/certificate/:code", ctrl.Delete)

	return &testEnv{app: app, store: st, rcptID: rcptID, tplID: tplID}
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) (int, map[string]any) {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	parsed := make(map[string]any)
	require.NoError(t, json.Unmarshal(respBody, &parsed))
	return resp.StatusCode, parsed
}

func TestCertificateController_Issue(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		wantStatusCode int
		wantSuccess    bool
	}{
		{
			name: "successful issue",
			body: payload.IssueCertificatePayload{
				RecipientID: "VALID_RECIPIENT",
				TemplateID:  "VALID_TEMPLATE",
			},
			wantStatusCode: fiber.StatusOK,
			wantSuccess:    true,
		},
		{
			name: "unknown recipient",
			body: payload.IssueCertificatePayload{
				RecipientID: "missing",
				TemplateID:  "VALID_TEMPLATE",
			},
			wantStatusCode: fiber.StatusBadRequest,
			wantSuccess:    false,
		},
		{
			name:           "missing required fields",
			body:           map[string]string{"recipientId": "only-one-half"},
			wantStatusCode: fiber.StatusBadRequest,
			wantSuccess:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setup(t, recordModel.NewMockRecordRepository())

			// Placeholder IDs in the table resolve against the seeded state.
			if p, ok := tt.body.(payload.IssueCertificatePayload); ok {
				if p.RecipientID == "VALID_RECIPIENT" {
					p.RecipientID = env.rcptID
				}
				if p.TemplateID == "VALID_TEMPLATE" {
					p.TemplateID = env.tplID
				}
				tt.body = p
			}

			statusCode, parsed := postJSON(t, env.app, "/certificate/issue", tt.body)
			assert.Equal(t, tt.wantStatusCode, statusCode)
			assert.Equal(t, tt.wantSuccess, parsed["success"])

			if tt.wantSuccess {
				data := parsed["data"].(map[string]any)
				code := data["code"].(string)
				assert.NotEmpty(t, code)
				assert.Equal(t, "published", data["status"])
				assert.Equal(t, "https://certs.example.org/verify/"+code, data["verificationUrl"])
				assert.Equal(t, data["verificationUrl"], data["qrCodeUrl"])

				// The response is immediate; the certificate is already local.
				_, found := env.store.CertificateByCode(code)
				assert.True(t, found)
			}
		})
	}
}

func TestCertificateController_BulkIssue(t *testing.T) {
	env := setup(t, recordModel.NewMockRecordRepository())

	ids := []string{env.rcptID}
	for i := 0; i < 4; i++ {
		ids = append(ids, env.store.AddRecipient(store.Recipient{Name: "Bob"}))
	}
	ids = append(ids, "missing")

	statusCode, parsed := postJSON(t, env.app, "/certificate/issue/bulk", payload.BulkIssuePayload{
		RecipientIDs: ids,
		TemplateID:   env.tplID,
	})
	require.Equal(t, fiber.StatusOK, statusCode)
	require.Equal(t, true, parsed["success"])

	data := parsed["data"].(map[string]any)
	assert.Equal(t, float64(6), data["requested"])
	assert.Equal(t, float64(5), data["succeeded"])
	assert.Equal(t, float64(1), data["failed"])
	assert.Len(t, data["codes"].([]any), 5)
}

func TestCertificateController_Status(t *testing.T) {
	env := setup(t, recordModel.NewMockRecordRepository())

	statusCode, parsed := postJSON(t, env.app, "/certificate/issue", payload.IssueCertificatePayload{
		RecipientID: env.rcptID,
		TemplateID:  env.tplID,
	})
	require.Equal(t, fiber.StatusOK, statusCode)
	code := parsed["data"].(map[string]any)["code"].(string)

	// The pipeline with fake dependencies settles quickly; poll until it does.
	var status map[string]any
	for i := 0; i < 50; i++ {
		req := httptest.NewRequest("GET", "/certificate/generate/status/"+code, nil)
		resp, err := env.app.Test(req, -1)
		require.NoError(t, err)

		respBody, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(respBody, &status))

		if status["data"].(map[string]any)["finished"] == true {
			break
		}
		time.Sleep(time.Millisecond)
	}

	data := status["data"].(map[string]any)
	require.Equal(t, true, data["finished"])
	assert.Equal(t, true, data["success"])
}

func TestCertificateController_StatusUnknownCode(t *testing.T) {
	env := setup(t, recordModel.NewMockRecordRepository())

	req := httptest.NewRequest("GET", "/certificate/generate/status/CERT-UNKNOWN00000", nil)
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCertificateController_Delete(t *testing.T) {
	deleted := make([]string, 0, 1)
	records := recordModel.NewMockRecordRepository()
	records.DeleteFunc = func(code string) error {
		deleted = append(deleted, code)
		return nil
	}

	env := setup(t, records)
	code := env.store.AddCertificate(store.Certificate{RecipientID: env.rcptID})

	req := httptest.NewRequest("DELETE", "/certificate/"+code, nil)
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	_, found := env.store.CertificateByCode(code)
	assert.False(t, found)
	assert.Equal(t, []string{code}, deleted)
}
