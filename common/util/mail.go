package util

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"

	"github.com/sunthewhat/cert-studio-api/common"
)

func InitDialer() {
	dialer := gomail.NewDialer(*common.Config.MailHost, 587, *common.Config.MailUser, *common.Config.MailPass)
	common.Dialer = dialer
}

// SendCertificateMail delivers the rendered certificate PDF as an attachment.
func SendCertificateMail(recipientMail string, certificateCode string, pdfBytes []byte) error {
	// gomail attaches from disk, so stage the PDF in a uniquely named temp file
	tempName := fmt.Sprintf("Certificate_%s_%d.pdf", uuid.New().String(), time.Now().Unix())

	if err := os.WriteFile(tempName, pdfBytes, 0644); err != nil {
		slog.Error("SendCertificateMail failed to stage attachment", "error", err, "code", certificateCode)
		return err
	}
	defer os.Remove(tempName)

	mailer := gomail.NewMessage()
	mailer.SetHeader("From", *common.Config.MailUser)
	mailer.SetHeader("To", recipientMail)
	mailer.SetHeader("Subject", "Your Certificate")
	mailer.SetBody("text/html", `
		<p>Dear Recipient,</p>
		<p>Please find your certificate attached to this email.</p>
		<p>Best regards,<br>Certificate Studio Team</p>
	`)

	mailer.Attach(tempName, gomail.Rename("Certificate.pdf"), gomail.SetHeader(map[string][]string{
		"Content-Type": {"application/pdf"},
	}))

	if err := common.Dialer.DialAndSend(mailer); err != nil {
		slog.Error("Error Sending Mail", "error", err, "code", certificateCode)
		return err
	}

	slog.Info("Email sent successfully", "recipient", recipientMail, "code", certificateCode)
	return nil
}
