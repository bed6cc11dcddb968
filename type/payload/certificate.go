package payload

import "github.com/sunthewhat/cert-studio-api/internal/store"

type IssueCertificatePayload struct {
	RecipientID string `json:"recipientId" validate:"required"`
	TemplateID  string `json:"templateId" validate:"required"`
}

type BulkIssuePayload struct {
	RecipientIDs []string `json:"recipientIds" validate:"required,min=1"`
	TemplateID   string   `json:"templateId" validate:"required"`
}

type UpdateCertificatePayload struct {
	Patch store.CertificatePatch `json:"patch"`
}

type BulkIssueResult struct {
	Codes     []string          `json:"codes"`
	Requested int               `json:"requested"`
	Succeeded int               `json:"succeeded"`
	Failed    int               `json:"failed"`
	Failures  map[string]string `json:"failures,omitempty"`
}
