package renderer

import (
	"bytes"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	digitorus_pdf "github.com/digitorus/pdf"
	"github.com/digitorus/pdfsign/sign"
)

// Signer applies an optional PKCS#7 signature to rendered certificate PDFs.
type Signer struct {
	certificate *x509.Certificate
	privateKey  *rsa.PrivateKey
	enabled     bool
}

// NewSigner loads the signing certificate and key from the given paths. When
// enabled is false the signer passes PDFs through untouched.
func NewSigner(enabled bool, certPath string, keyPath string) (*Signer, error) {
	if !enabled {
		slog.Info("PDF signing disabled in configuration")
		return &Signer{enabled: false}, nil
	}

	if certPath == "" || keyPath == "" {
		return nil, fmt.Errorf("signing enabled but certificate or key path not configured")
	}

	certPEM, err := os.ReadFile(certPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read certificate file %s: %w", certPath, err)
	}

	certBlock, _ := pem.Decode(certPEM)
	if certBlock == nil {
		return nil, fmt.Errorf("failed to decode certificate PEM from %s", certPath)
	}

	certificate, err := x509.ParseCertificate(certBlock.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse certificate: %w", err)
	}

	keyPEM, err := os.ReadFile(keyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read private key file %s: %w", keyPath, err)
	}

	keyBlock, _ := pem.Decode(keyPEM)
	if keyBlock == nil {
		return nil, fmt.Errorf("failed to decode private key PEM from %s", keyPath)
	}

	privateKey, err := x509.ParsePKCS1PrivateKey(keyBlock.Bytes)
	if err != nil {
		// Try PKCS8 format as fallback
		key, err := x509.ParsePKCS8PrivateKey(keyBlock.Bytes)
		if err != nil {
			return nil, fmt.Errorf("failed to parse private key: %w", err)
		}
		var ok bool
		privateKey, ok = key.(*rsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("private key is not RSA format")
		}
	}

	slog.Info("Certificate signer initialized",
		"cert_subject", certificate.Subject.String(),
		"cert_expiry", certificate.NotAfter)

	return &Signer{
		certificate: certificate,
		privateKey:  privateKey,
		enabled:     true,
	}, nil
}

func (s *Signer) IsEnabled() bool {
	return s.enabled
}

// SignPDF signs the PDF in place. Signing failures fall back to the unsigned
// document rather than failing the issuance.
func (s *Signer) SignPDF(pdfBytes []byte, certificateCode string) ([]byte, error) {
	if !s.enabled {
		return pdfBytes, nil
	}

	if s.privateKey == nil || s.certificate == nil {
		slog.Error("Signer missing key material", "code", certificateCode)
		return pdfBytes, nil
	}
	if len(pdfBytes) == 0 {
		return pdfBytes, fmt.Errorf("empty PDF bytes")
	}

	signData := sign.SignData{
		Signature: sign.SignDataSignature{
			Info: sign.SignDataSignatureInfo{
				Name:     "Certificate Studio",
				Location: "Digital Certificate Platform",
				Reason:   fmt.Sprintf("Authenticity of certificate %s", certificateCode),
				Date:     time.Now(),
			},
			CertType:   sign.CertificationSignature,
			DocMDPPerm: sign.AllowFillingExistingFormFieldsAndSignaturesPerms,
		},
		Signer:      s.privateKey,
		Certificate: s.certificate,
	}

	inputReader := bytes.NewReader(pdfBytes)
	var outputBuffer bytes.Buffer

	var signingError error
	func() {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("Panic occurred during PDF signing", "panic", r, "code", certificateCode)
			}
		}()

		pdfReader, err := digitorus_pdf.NewReader(inputReader, int64(len(pdfBytes)))
		if err != nil {
			slog.Error("Failed to create PDF reader", "error", err, "code", certificateCode)
			signingError = err
			return
		}

		inputReader.Seek(0, io.SeekStart)

		signingError = sign.Sign(inputReader, &outputBuffer, pdfReader, int64(len(pdfBytes)), signData)
	}()

	if signingError != nil || outputBuffer.Len() == 0 {
		slog.Warn("PDF signing failed, returning unsigned PDF",
			"code", certificateCode,
			"error", signingError)
		return pdfBytes, nil
	}

	signedPDF := outputBuffer.Bytes()
	slog.Info("PDF signed",
		"code", certificateCode,
		"original_size", len(pdfBytes),
		"signed_size", len(signedPDF))

	return signedPDF, nil
}
