package main

import (
	"bytes"
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	"image/jpeg"
	_ "image/png"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/valyala/image-resizer/imagick"
)

func TestMain(m *testing.M) {
	imagick.Initialize()
	code := m.Run()
	imagick.Terminate()
	os.Exit(code)
}

func jpegFixture(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}))
	return buf.Bytes()
}

func gifFixture(t *testing.T, width, height, frames int) []byte {
	t.Helper()
	anim := &gif.GIF{}
	for i := 0; i < frames; i++ {
		img := image.NewPaletted(image.Rect(0, 0, width, height), palette.Plan9)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				img.Set(x, y, color.RGBA{R: uint8(x * 2), G: uint8(i * 100), B: uint8(y * 2), A: 255})
			}
		}
		anim.Image = append(anim.Image, img)
		anim.Delay = append(anim.Delay, 10)
	}
	var buf bytes.Buffer
	require.NoError(t, gif.EncodeAll(&buf, anim))
	return buf.Bytes()
}

// newTestResizer returns a resizer fetching images from an upstream server
// which serves a 512x384 JPEG at /photo.jpg and a two frame 120x90 GIF at
// /anim.gif.
func newTestResizer(t *testing.T) (*resizer, *httptest.Server) {
	t.Helper()
	photo := jpegFixture(t, 512, 384)
	anim := gifFixture(t, 120, 90, 2)
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/photo.jpg":
			w.Header().Set("Content-Type", "image/jpeg")
			w.Write(photo)
		case "/anim.gif":
			w.Header().Set("Content-Type", "image/gif")
			w.Write(anim)
		case "/garbage":
			w.Write([]byte("this is not an image at all"))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(upstream.Close)

	cfg, err := parseConfig(newTestFlagSet(), nil)
	require.NoError(t, err)
	rs := &resizer{
		cfg:    cfg,
		logger: zap.NewNop(),
		source: &imageSource{
			cache:        nullCache{},
			client:       upstream.Client(),
			maxImageSize: int64(cfg.MaxImageSize),
			ttl:          time.Minute,
		},
	}
	return rs, upstream
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func resizeURL(imageURL string, args url.Values) string {
	if args == nil {
		args = url.Values{}
	}
	args.Set("imageUrl", imageURL)
	return "/resize?" + args.Encode()
}

func TestServeResize(t *testing.T) {
	rs, upstream := newTestResizer(t)
	h := rs.router()

	rec := get(t, h, resizeURL(upstream.URL+"/photo.jpg", url.Values{"width": {"240"}}))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "image/jpeg", rec.Header().Get("Content-Type"))

	cfg, format, err := image.DecodeConfig(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 240, cfg.Width)
	assert.Equal(t, 180, cfg.Height)
}

func TestServeResizeKeepsSmallImages(t *testing.T) {
	rs, upstream := newTestResizer(t)

	rec := get(t, rs.router(), resizeURL(upstream.URL+"/photo.jpg", url.Values{"width": {"1024"}, "height": {"1024"}}))
	require.Equal(t, http.StatusOK, rec.Code)

	cfg, _, err := image.DecodeConfig(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, 512, cfg.Width)
	assert.Equal(t, 384, cfg.Height)
}

func TestServeResizeWithFormatAndFilter(t *testing.T) {
	rs, upstream := newTestResizer(t)
	require.NoError(t, rs.cfg.Filter.Set("Lanczos"))

	rec := get(t, rs.router(), resizeURL(upstream.URL+"/photo.jpg", url.Values{
		"height":             {"96"},
		"format":             {"png"},
		"sharpFactor":        {"0.5"},
		"compressionQuality": {"90"},
	}))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))

	cfg, format, err := image.DecodeConfig(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 96, cfg.Width)
	assert.Equal(t, 72, cfg.Height)
}

func TestServeResizeEveryFrame(t *testing.T) {
	rs, upstream := newTestResizer(t)

	rec := get(t, rs.router(), resizeURL(upstream.URL+"/anim.gif", url.Values{"width": {"60"}}))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "image/gif", rec.Header().Get("Content-Type"))

	anim, err := gif.DecodeAll(rec.Body)
	require.NoError(t, err)
	require.Len(t, anim.Image, 2)
	assert.Equal(t, 60, anim.Config.Width)
	assert.Equal(t, 45, anim.Config.Height)
	for i, frame := range anim.Image {
		assert.Equal(t, 60, frame.Bounds().Dx(), "frame %d", i)
		assert.Equal(t, 45, frame.Bounds().Dy(), "frame %d", i)
	}
}

// testFont returns a font ImageMagick can render, or skips the test.
func testFont(t *testing.T) string {
	t.Helper()
	for _, pattern := range []string{"DejaVu-Sans", "Liberation-Sans*", "*"} {
		fonts, err := imagick.QueryFonts(pattern)
		require.NoError(t, err)
		if len(fonts) > 0 {
			return fonts[0]
		}
	}
	t.Skip("ImageMagick has no fonts configured")
	return ""
}

func TestServeAnnotations(t *testing.T) {
	rs, upstream := newTestResizer(t)
	rs.cfg.AnnotationFont = testFont(t)
	h := rs.router()

	plain := get(t, h, resizeURL(upstream.URL+"/photo.jpg", nil))
	require.Equal(t, http.StatusOK, plain.Code)

	rec := get(t, h, resizeURL(upstream.URL+"/photo.jpg", url.Values{
		"bottomAnnotation": {"bottom text"},
		"centerAnnotation": {"center"},
	}))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.NotEqual(t, plain.Body.Bytes(), rec.Body.Bytes(), "annotations must change the pixels")

	cfg, _, err := image.DecodeConfig(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, 512, cfg.Width)
	assert.Equal(t, 384, cfg.Height)
}

func TestServeErrors(t *testing.T) {
	rs, upstream := newTestResizer(t)
	h := rs.router()

	tests := []struct {
		name   string
		target string
		status int
	}{
		{"favicon", "/favicon.ico", http.StatusNotFound},
		{"no imageUrl", "/resize", http.StatusBadRequest},
		{"bad key", "/photo.jpg", http.StatusBadRequest},
		{"bad width", resizeURL(upstream.URL+"/photo.jpg", url.Values{"width": {"abc"}}), http.StatusBadRequest},
		{"negative height", resizeURL(upstream.URL+"/photo.jpg", url.Values{"height": {"-5"}}), http.StatusBadRequest},
		{"bad quality", resizeURL(upstream.URL+"/photo.jpg", url.Values{"compressionQuality": {"101"}}), http.StatusBadRequest},
		{"bad format", resizeURL(upstream.URL+"/photo.jpg", url.Values{"format": {"nosuchformat"}}), http.StatusBadRequest},
		{"upstream 404", resizeURL(upstream.URL+"/missing.jpg", nil), http.StatusBadGateway},
		{"no s3 bucket", "/photo_w10_h10_jpg", http.StatusBadGateway},
		{"nested key reaches s3", "/photos/2024/cat_w10_h10_jpg", http.StatusBadGateway},
		{"not an image", resizeURL(upstream.URL+"/garbage", nil), http.StatusUnsupportedMediaType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, h, tt.target)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestServeRejectsLargeImages(t *testing.T) {
	rs, upstream := newTestResizer(t)
	rs.source.maxImageSize = 100

	rec := get(t, rs.router(), resizeURL(upstream.URL+"/photo.jpg", nil))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestAdjustImageDimensions(t *testing.T) {
	tests := []struct {
		name          string
		ow, oh        uint
		width, height uint
		w, h          uint
		resize        bool
	}{
		{"no box", 512, 384, 0, 0, 0, 0, false},
		{"fits", 512, 384, 1000, 1000, 512, 384, false},
		{"by width", 512, 384, 240, 0, 240, 180, true},
		{"by height", 512, 384, 0, 96, 96, 72, true},
		{"box", 512, 384, 240, 240, 240, 180, true},
		{"tall", 300, 900, 200, 300, 100, 300, true},
		{"exact", 512, 384, 512, 384, 512, 384, false},
		{"wide strip", 10000, 1, 100, 0, 100, 1, true},
		{"tall strip", 1, 10000, 0, 100, 1, 100, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, resize := adjustImageDimensions(tt.ow, tt.oh, tt.width, tt.height)
			assert.Equal(t, tt.w, w)
			assert.Equal(t, tt.h, h)
			assert.Equal(t, tt.resize, resize)
		})
	}
}

func TestGetImageParams(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/cat_w120_h80_jpg?sharpFactor=1.5&bottomAnnotation=hi", nil)
	r = mux.SetURLVars(r, map[string]string{"key": "cat_w120_h80_jpg"})

	p, err := getImageParams(r)
	require.NoError(t, err)
	assert.Equal(t, "s3:cat_jpg", p.imageURL)
	assert.Equal(t, uint(120), p.width)
	assert.Equal(t, uint(80), p.height)
	assert.Equal(t, 1.5, p.sharpFactor)
	assert.Equal(t, "hi", p.bottomAnnotation)

	r = httptest.NewRequest(http.MethodGet, "/resize?imageUrl=http://example.com/a.png&width=10&format=gif", nil)
	p, err = getImageParams(r)
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/a.png", p.imageURL)
	assert.Equal(t, uint(10), p.width)
	assert.Zero(t, p.height)
	assert.Equal(t, "gif", p.format)

	r = httptest.NewRequest(http.MethodGet, "/photos/cat_w10_h20_jpg", nil)
	r = mux.SetURLVars(r, map[string]string{"key": "photos/cat_w10_h20_jpg"})
	p, err = getImageParams(r)
	require.NoError(t, err)
	assert.Equal(t, "s3:photos/cat_jpg", p.imageURL)
	assert.Equal(t, uint(10), p.width)
	assert.Equal(t, uint(20), p.height)

	for _, key := range []string{"cat", "cat_w1_h2", "cat_x1_h2_jpg", "cat_w1_hx_jpg"} {
		r = mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/"+key, nil), map[string]string{"key": key})
		_, err = getImageParams(r)
		assert.Error(t, err, key)
	}
}

func TestGetFontSize(t *testing.T) {
	mw := imagick.NewMagickWand()
	defer mw.Destroy()
	pw := imagick.NewPixelWand()
	defer pw.Destroy()
	require.NoError(t, pw.SetColor("white"))
	require.NoError(t, mw.NewImage(400, 100, pw))

	assert.Equal(t, 80.0, getFontSize(mw, "hello"))
	assert.InDelta(t, 400/27.0/0.55, getFontSize(mw, "a rather long annotation..."), 1e-9)
	assert.Equal(t, 10.0, getFontSize(mw, string(bytes.Repeat([]byte("x"), 500))))
}
