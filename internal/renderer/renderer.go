// Package renderer produces the per-recipient certificate PDF: the template
// background cover-fit onto a landscape page with positioned text, date and
// QR fields on top.
package renderer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/skip2/go-qrcode"

	"github.com/sunthewhat/cert-studio-api/internal/store"
)

const (
	// Logical template canvas the percentage field coordinates refer to.
	canvasWidth  = 1200.0
	canvasHeight = 848.0

	imageLoadTimeout = 10 * time.Second

	// Rendered side of a QR field in canvas units.
	qrSidePx = 100.0
)

type PDFRenderer struct {
	httpClient *http.Client
	signer     *Signer
}

func New(signer *Signer) *PDFRenderer {
	return &PDFRenderer{
		httpClient: &http.Client{Timeout: imageLoadTimeout},
		signer:     signer,
	}
}

// Render builds the one-page landscape PDF for the certificate. A background
// that fails to load (or times out) aborts the whole render.
func (r *PDFRenderer) Render(ctx context.Context, tpl store.Template, rcpt store.Recipient, cert store.Certificate) ([]byte, error) {
	background, imageType, err := r.fetchBackground(ctx, tpl.BackgroundURL)
	if err != nil {
		return nil, fmt.Errorf("failed to load template background: %w", err)
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pageW, pageH := pdf.GetPageSize()

	info := pdf.RegisterImageOptionsReader("background", gofpdf.ImageOptions{ImageType: imageType}, bytes.NewReader(background))
	if pdf.Err() {
		return nil, fmt.Errorf("failed to register background image: %w", pdf.Error())
	}

	// Cover-fit: scale uniformly to fully cover the page, center, crop the
	// overflow with a page clip.
	imgW, imgH := info.Extent()
	x, y, w, h := coverFit(imgW, imgH, pageW, pageH)
	pdf.ClipRect(0, 0, pageW, pageH, false)
	pdf.ImageOptions("background", x, y, w, h, false, gofpdf.ImageOptions{ImageType: imageType}, 0, "")
	pdf.ClipEnd()

	mmPerPx := pageW / canvasWidth

	for i, field := range tpl.Fields {
		cx := field.X / 100 * pageW
		cy := field.Y / 100 * pageH

		if field.Type == store.FieldQR {
			qrPNG, err := qrcode.Encode(cert.QRCodeURL, qrcode.Medium, 256)
			if err != nil {
				return nil, fmt.Errorf("failed to generate QR code: %w", err)
			}
			side := qrSidePx * mmPerPx
			name := fmt.Sprintf("qr-%d", i)
			pdf.RegisterImageOptionsReader(name, gofpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))
			pdf.ImageOptions(name, cx-side/2, cy-side/2, side, side, false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
			continue
		}

		text := ResolveFieldText(field, tpl, rcpt)
		if text == "" {
			continue
		}

		sizeMM := field.FontSize * mmPerPx
		sizePt := sizeMM * 72 / 25.4
		pdf.SetFont(mapFontFamily(field.FontFamily), "", sizePt)

		textW := pdf.GetStringWidth(text)
		baselineX := cx - textW/2
		baselineY := cy + sizeMM*0.35

		// Offset shadow keeps light text legible on busy backgrounds.
		pdf.SetTextColor(200, 200, 200)
		pdf.Text(baselineX+0.3, baselineY+0.3, text)

		red, green, blue := parseHexColor(field.Color)
		pdf.SetTextColor(red, green, blue)
		pdf.Text(baselineX, baselineY, text)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	if r.signer != nil && r.signer.IsEnabled() {
		signed, err := r.signer.SignPDF(buf.Bytes(), cert.Code)
		if err != nil {
			slog.Warn("Failed to sign PDF, keeping unsigned version", "error", err, "code", cert.Code)
			return buf.Bytes(), nil
		}
		return signed, nil
	}

	return buf.Bytes(), nil
}

func (r *PDFRenderer) fetchBackground(ctx context.Context, url string) ([]byte, string, error) {
	ctx, cancel := context.WithTimeout(ctx, imageLoadTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", err
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("unexpected status %d fetching %s", resp.StatusCode, url)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}

	imageType, err := detectImageType(data)
	if err != nil {
		return nil, "", err
	}
	return data, imageType, nil
}

func detectImageType(data []byte) (string, error) {
	switch http.DetectContentType(data) {
	case "image/png":
		return "PNG", nil
	case "image/jpeg":
		return "JPG", nil
	case "image/gif":
		return "GIF", nil
	default:
		return "", fmt.Errorf("unsupported background image format")
	}
}

// coverFit scales the image uniformly so it fully covers the page, centered
// on both axes. The overflow on the longer axis gets cropped.
func coverFit(imgW, imgH, pageW, pageH float64) (x, y, w, h float64) {
	scale := pageW / imgW
	if s := pageH / imgH; s > scale {
		scale = s
	}
	w = imgW * scale
	h = imgH * scale
	x = (pageW - w) / 2
	y = (pageH - h) / 2
	return x, y, w, h
}

// ResolveFieldText computes the display text of a non-QR field. Text fields
// resolve in a fixed priority order: the special-cased "recipient" and
// "course" names, then a named custom attribute, then the field default.
// Date fields format the recipient's issue date long-form.
func ResolveFieldText(field store.Field, tpl store.Template, rcpt store.Recipient) string {
	switch field.Type {
	case store.FieldDate:
		return rcpt.IssueDate.Format("January 2, 2006")
	case store.FieldText:
		switch field.Name {
		case "recipient":
			return rcpt.Name
		case "course":
			if rcpt.Course != "" {
				return rcpt.Course
			}
			return tpl.Name
		default:
			if value, ok := rcpt.CustomAttributes[field.Name]; ok {
				return value
			}
			return field.DefaultText
		}
	default:
		return ""
	}
}

func mapFontFamily(family string) string {
	switch strings.ToLower(family) {
	case "times", "times new roman", "georgia", "serif":
		return "Times"
	case "courier", "courier new", "monospace":
		return "Courier"
	default:
		return "Helvetica"
	}
}

// parseHexColor reads a #rrggbb color, falling back to black.
func parseHexColor(color string) (int, int, int) {
	color = strings.TrimPrefix(color, "#")
	if len(color) != 6 {
		return 0, 0, 0
	}

	value, err := strconv.ParseUint(color, 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return int(value >> 16 & 0xFF), int(value >> 8 & 0xFF), int(value & 0xFF)
}
