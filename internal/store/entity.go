package store

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type FieldType string

const (
	FieldText FieldType = "text"
	FieldDate FieldType = "date"
	FieldQR   FieldType = "qr"
)

// Field is a single positioned element on a template. X and Y are percentage
// coordinates of the field's center relative to the template canvas.
type Field struct {
	Name        string    `json:"name"`
	Type        FieldType `json:"type"`
	X           float64   `json:"x"`
	Y           float64   `json:"y"`
	FontSize    float64   `json:"fontSize"`
	FontFamily  string    `json:"fontFamily"`
	Color       string    `json:"color"`
	DefaultText string    `json:"defaultText,omitempty"`
}

type Template struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	BackgroundURL string  `json:"backgroundUrl"`
	Fields        []Field `json:"fields"`
}

type Recipient struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Email            string            `json:"email,omitempty"`
	Course           string            `json:"course,omitempty"`
	ExternalID       string            `json:"externalId,omitempty"`
	CustomAttributes map[string]string `json:"customAttributes,omitempty"`
	IssueDate        time.Time         `json:"issueDate"`
}

const StatusPublished = "published"

type Certificate struct {
	Code            string    `json:"code"`
	RecipientID     string    `json:"recipientId"`
	TemplateID      string    `json:"templateId"`
	VerificationURL string    `json:"verificationUrl"`
	QRCodeURL       string    `json:"qrCodeUrl"`
	IssuedAt        time.Time `json:"issuedAt"`
	Status          string    `json:"status"`
	PDFURL          string    `json:"pdfUrl,omitempty"`
}

// Collection embeds copies of its member certificates, not references.
type Collection struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description,omitempty"`
	TemplateID   string        `json:"templateId,omitempty"`
	Certificates []Certificate `json:"certificates"`
	CreatedAt    time.Time     `json:"createdAt"`
}

// CertificatePatch carries a partial update; nil fields are left untouched.
type CertificatePatch struct {
	RecipientID     *string    `json:"recipientId,omitempty"`
	TemplateID      *string    `json:"templateId,omitempty"`
	VerificationURL *string    `json:"verificationUrl,omitempty"`
	QRCodeURL       *string    `json:"qrCodeUrl,omitempty"`
	IssuedAt        *time.Time `json:"issuedAt,omitempty"`
	Status          *string    `json:"status,omitempty"`
	PDFURL          *string    `json:"pdfUrl,omitempty"`
}

func NewEntityID() string {
	return uuid.New().String()
}

// NewCertificateCode allocates a human-readable certificate code. The code is
// the key for the database row, the object-storage object and the
// verification URL.
func NewCertificateCode() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return "CERT-" + raw[:12]
}
