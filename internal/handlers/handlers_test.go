package handlers

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/pixelbend/pixelbend/internal/colors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testPNG(t *testing.T, w, h int, fill color.RGBA) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, fill)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

// multipartBody builds a multipart request body with one file part and
// plain form fields.
func multipartBody(t *testing.T, fileField, fileName string, fileData []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if fileData != nil {
		part, err := mw.CreateFormFile(fileField, fileName)
		if err != nil {
			t.Fatal(err)
		}
		part.Write(fileData)
	}
	for k, v := range fields {
		mw.WriteField(k, v)
	}
	mw.Close()
	return &buf, mw.FormDataContentType()
}

func decodePNGResponse(t *testing.T, w *httptest.ResponseRecorder) image.Image {
	t.Helper()
	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Fatalf("content type = %q, want image/png (body: %s)", ct, w.Body.String())
	}
	img, err := png.Decode(w.Body)
	if err != nil {
		t.Fatalf("failed to decode response PNG: %v", err)
	}
	return img
}

func TestHealthHandler(t *testing.T) {
	r := gin.New()
	r.GET("/api/health", HealthHandler)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("health returned %d", w.Code)
	}
}

func TestVersionHandler(t *testing.T) {
	r := gin.New()
	r.GET("/api/version", VersionHandler)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["version"] == "" {
		t.Error("version response missing version field")
	}
}

func TestKernelsHandler(t *testing.T) {
	r := gin.New()
	r.GET("/api/kernels", KernelsHandler)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/kernels", nil))

	var body struct {
		Kernels []string `json:"kernels"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Kernels) != 9 {
		t.Errorf("got %d kernels, want 9", len(body.Kernels))
	}
}

func TestDitherHandlerDiffusion(t *testing.T) {
	r := gin.New()
	r.POST("/api/dither", DitherHandler)

	body, contentType := multipartBody(t, "image", "gray.png",
		testPNG(t, 4, 4, color.RGBA{128, 128, 128, 255}),
		map[string]string{"kernel": "floyd-steinberg", "palette": "mono"})

	req := httptest.NewRequest(http.MethodPost, "/api/dither", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	img := decodePNGResponse(t, w)
	// Every output pixel must be a palette member.
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			if !(c.R == 0 && c.G == 0 && c.B == 0) && !(c.R == 255 && c.G == 255 && c.B == 255) {
				t.Fatalf("pixel (%d,%d) = %v is not black or white", x, y, c)
			}
		}
	}
}

func TestDitherHandlerOrdered(t *testing.T) {
	r := gin.New()
	r.POST("/api/dither", DitherHandler)

	body, contentType := multipartBody(t, "image", "gray.png",
		testPNG(t, 8, 8, color.RGBA{200, 60, 130, 255}),
		map[string]string{"algorithm": "ordered", "matrix_size": "4", "colors": "#000000,#ffffff,#ff0000"})

	req := httptest.NewRequest(http.MethodPost, "/api/dither", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	decodePNGResponse(t, w)
}

func TestDitherHandlerGradientPalette(t *testing.T) {
	r := gin.New()
	r.POST("/api/dither", DitherHandler)

	body, contentType := multipartBody(t, "image", "gray.png",
		testPNG(t, 4, 4, color.RGBA{90, 150, 200, 255}),
		map[string]string{"gradient_base": "#3366cc", "gradient_shades": "4"})

	req := httptest.NewRequest(http.MethodPost, "/api/dither", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	decodePNGResponse(t, w)
}

func TestDitherHandlerUnknownKernel(t *testing.T) {
	r := gin.New()
	r.POST("/api/dither", DitherHandler)

	body, contentType := multipartBody(t, "image", "gray.png",
		testPNG(t, 2, 2, color.RGBA{128, 128, 128, 255}),
		map[string]string{"kernel": "does-not-exist"})

	req := httptest.NewRequest(http.MethodPost, "/api/dither", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown kernel returned %d, want 400", w.Code)
	}
}

func TestDitherHandlerPixelLimit(t *testing.T) {
	t.Setenv("DITHER_MAX_PIXELS", "4")

	r := gin.New()
	r.POST("/api/dither", DitherHandler)

	body, contentType := multipartBody(t, "image", "big.png",
		testPNG(t, 8, 8, color.RGBA{128, 128, 128, 255}), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/dither", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("oversized image returned %d, want 400", w.Code)
	}
}

func TestEffectsHandlerInvert(t *testing.T) {
	r := gin.New()
	r.POST("/api/effects", EffectsHandler)

	body, contentType := multipartBody(t, "image", "red.png",
		testPNG(t, 2, 2, color.RGBA{255, 0, 0, 255}),
		map[string]string{"effects": `[{"type":"invert"}]`})

	req := httptest.NewRequest(http.MethodPost, "/api/effects", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	img := decodePNGResponse(t, w)
	c := color.RGBAModel.Convert(img.At(0, 0)).(color.RGBA)
	if c.R != 0 || c.G != 255 || c.B != 255 {
		t.Errorf("inverted red = %v, want cyan", c)
	}
}

func TestEffectsHandlerRejectsUnknownEffect(t *testing.T) {
	r := gin.New()
	r.POST("/api/effects", EffectsHandler)

	body, contentType := multipartBody(t, "image", "red.png",
		testPNG(t, 2, 2, color.RGBA{255, 0, 0, 255}),
		map[string]string{"effects": `[{"type":"sharpen"}]`})

	req := httptest.NewRequest(http.MethodPost, "/api/effects", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown effect returned %d, want 400", w.Code)
	}
}

func TestCorruptHandler(t *testing.T) {
	r := gin.New()
	r.POST("/api/corrupt", CorruptHandler)

	data := []byte("HEADERpayloadpayloadpayload")
	body, contentType := multipartBody(t, "file", "data.bin", data,
		map[string]string{"corruptions": "increment", "amount": "1", "header_size": "6"})

	req := httptest.NewRequest(http.MethodPost, "/api/corrupt", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("corrupt returned %d: %s", w.Code, w.Body.String())
	}
	out := w.Body.Bytes()
	if !bytes.Equal(out[:6], []byte("HEADER")) {
		t.Error("header bytes were modified")
	}
	if out[6] != data[6]+1 {
		t.Errorf("payload byte = %d, want %d", out[6], data[6]+1)
	}
}

func TestResolvePaletteExplicitColors(t *testing.T) {
	palette, err := ResolvePalette("", []string{"#000000", "#ff0066"})
	if err != nil {
		t.Fatal(err)
	}
	want := colors.RGB{R: 255, G: 0, B: 102}
	if palette[1] != want {
		t.Errorf("palette[1] = %+v, want %+v", palette[1], want)
	}
}

func TestResolvePaletteBuiltin(t *testing.T) {
	palette, err := ResolvePalette("eight-bit", nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(palette) != 256 {
		t.Errorf("eight-bit palette has %d colors, want 256", len(palette))
	}
	if _, err := ResolvePalette("no-such-palette", nil); err == nil {
		t.Error("unknown palette should fail to resolve")
	}
}

func TestResolvePaletteGrayscaleRamp(t *testing.T) {
	palette, err := ResolvePalette("grayscale-4", nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(palette) != 4 {
		t.Errorf("grayscale-4 has %d colors, want 4", len(palette))
	}
	if _, err := ResolvePalette("grayscale-1", nil); err == nil {
		t.Error("grayscale ramp needs at least two levels")
	}
}

func TestResolvePaletteDefaultsToMono(t *testing.T) {
	palette, err := ResolvePalette("", nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(palette) != 2 {
		t.Errorf("default palette has %d colors, want 2", len(palette))
	}
}
