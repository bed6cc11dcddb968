package model

import "time"

// CertificateRecord is the relational row kept for every issued certificate,
// keyed by the human-readable certificate code.
type CertificateRecord struct {
	CertificateCode      string    `gorm:"primaryKey;column:certificate_code" json:"certificate_code"`
	RecipientName        string    `gorm:"column:recipient_name" json:"recipient_name"`
	RecipientEmail       string    `gorm:"column:recipient_email" json:"recipient_email"`
	ExternalRecipientID  string    `gorm:"column:external_recipient_id" json:"external_recipient_id"`
	CourseName           string    `gorm:"column:course_name" json:"course_name"`
	TemplateID           string    `gorm:"column:template_id" json:"template_id"`
	IssueDate            time.Time `gorm:"column:issue_date;type:date" json:"issue_date"`
	QRPayload            string    `gorm:"column:qr_payload" json:"qr_payload"`
	Status               string    `gorm:"column:status" json:"status"`
	PDFURL               string    `gorm:"column:pdf_url" json:"pdf_url"`
	CreatedAt            time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (CertificateRecord) TableName() string {
	return "certificate_records"
}

type User struct {
	ID        string    `gorm:"primaryKey;column:id" json:"id"`
	Username  string    `gorm:"column:username;uniqueIndex" json:"username"`
	Password  string    `gorm:"column:password" json:"-"`
	Firstname string    `gorm:"column:firstname" json:"firstname"`
	Lastname  string    `gorm:"column:lastname" json:"lastname"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}
