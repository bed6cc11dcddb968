package renderer

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunthewhat/cert-studio-api/internal/store"
)

func TestResolveFieldText(t *testing.T) {
	tpl := store.Template{Name: "Go Fundamentals"}
	rcpt := store.Recipient{
		Name:   "Alice",
		Course: "Advanced Go",
		CustomAttributes: map[string]string{
			"grade": "A+",
		},
		IssueDate: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}

	tests := []struct {
		name  string
		field store.Field
		rcpt  store.Recipient
		want  string
	}{
		{
			name:  "recipient name",
			field: store.Field{Name: "recipient", Type: store.FieldText},
			rcpt:  rcpt,
			want:  "Alice",
		},
		{
			name:  "course from recipient",
			field: store.Field{Name: "course", Type: store.FieldText},
			rcpt:  rcpt,
			want:  "Advanced Go",
		},
		{
			name:  "course falls back to template name",
			field: store.Field{Name: "course", Type: store.FieldText},
			rcpt:  store.Recipient{Name: "Alice"},
			want:  "Go Fundamentals",
		},
		{
			name:  "custom attribute",
			field: store.Field{Name: "grade", Type: store.FieldText, DefaultText: "N/A"},
			rcpt:  rcpt,
			want:  "A+",
		},
		{
			name:  "missing attribute uses default text",
			field: store.Field{Name: "grade", Type: store.FieldText, DefaultText: "N/A"},
			rcpt:  store.Recipient{Name: "Alice"},
			want:  "N/A",
		},
		{
			name:  "date formats long-form",
			field: store.Field{Name: "date", Type: store.FieldDate},
			rcpt:  rcpt,
			want:  "March 14, 2026",
		},
		{
			name:  "qr resolves to no text",
			field: store.Field{Name: "qr", Type: store.FieldQR},
			rcpt:  rcpt,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveFieldText(tt.field, tpl, tt.rcpt))
		})
	}
}

func TestCoverFit(t *testing.T) {
	tests := []struct {
		name         string
		imgW, imgH   float64
		wantX, wantY float64
		wantW, wantH float64
	}{
		{
			name: "image matches page aspect",
			imgW: 297, imgH: 210,
			wantX: 0, wantY: 0, wantW: 297, wantH: 210,
		},
		{
			name: "wide image crops horizontally",
			imgW: 594, imgH: 210,
			wantX: -148.5, wantY: 0, wantW: 594, wantH: 210,
		},
		{
			name: "tall image crops vertically",
			imgW: 297, imgH: 420,
			wantX: 0, wantY: -105, wantW: 297, wantH: 420,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, w, h := coverFit(tt.imgW, tt.imgH, 297, 210)
			assert.InDelta(t, tt.wantX, x, 0.001)
			assert.InDelta(t, tt.wantY, y, 0.001)
			assert.InDelta(t, tt.wantW, w, 0.001)
			assert.InDelta(t, tt.wantH, h, 0.001)
		})
	}
}

func TestMapFontFamily(t *testing.T) {
	assert.Equal(t, "Times", mapFontFamily("Times New Roman"))
	assert.Equal(t, "Times", mapFontFamily("georgia"))
	assert.Equal(t, "Courier", mapFontFamily("monospace"))
	assert.Equal(t, "Helvetica", mapFontFamily("Arial"))
	assert.Equal(t, "Helvetica", mapFontFamily(""))
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		r, g, b int
	}{
		{"#ff0000", 255, 0, 0},
		{"#00ff00", 0, 255, 0},
		{"0000ff", 0, 0, 255},
		{"#1a2b3c", 26, 43, 60},
		{"", 0, 0, 0},
		{"#fff", 0, 0, 0},
		{"#zzzzzz", 0, 0, 0},
	}

	for _, tt := range tests {
		r, g, b := parseHexColor(tt.in)
		assert.Equal(t, [3]int{tt.r, tt.g, tt.b}, [3]int{r, g, b}, "color %q", tt.in)
	}
}

func TestDetectImageType(t *testing.T) {
	imageType, err := detectImageType(encodePNG(t))
	require.NoError(t, err)
	assert.Equal(t, "PNG", imageType)

	_, err = detectImageType([]byte("definitely not an image"))
	assert.Error(t, err)
}

func TestRenderProducesPDF(t *testing.T) {
	background := encodePNG(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(background)
	}))
	defer server.Close()

	tpl := store.Template{
		Name:          "Go Fundamentals",
		BackgroundURL: server.URL + "/bg.png",
		Fields: []store.Field{
			{Name: "recipient", Type: store.FieldText, X: 50, Y: 40, FontSize: 48, FontFamily: "serif", Color: "#1a2b3c"},
			{Name: "date", Type: store.FieldDate, X: 50, Y: 60, FontSize: 24, Color: "#000000"},
			{Name: "qr", Type: store.FieldQR, X: 90, Y: 85},
		},
	}
	rcpt := store.Recipient{
		Name:      "Alice",
		IssueDate: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
	}
	cert := store.Certificate{
		Code:      "CERT-AB12CD34EF56",
		QRCodeURL: "https://certs.example.org/verify/CERT-AB12CD34EF56",
	}

	pdfBytes, err := New(nil).Render(context.Background(), tpl, rcpt, cert)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdfBytes, []byte("%PDF")))
}

func TestRenderBackgroundFailureAborts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	tpl := store.Template{BackgroundURL: server.URL + "/missing.png"}

	_, err := New(nil).Render(context.Background(), tpl, store.Recipient{}, store.Certificate{})
	assert.Error(t, err)
}

func encodePNG(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 60, 40))
	for x := 0; x < 60; x++ {
		for y := 0; y < 40; y++ {
			img.Set(x, y, color.RGBA{R: 240, G: 240, B: 255, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}
