package main

import (
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/valyala/image-resizer/imagick"
)

func main() {
	cfg, err := parseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	imagick.SetLogger(logger.Named("imagick"))
	imagick.Initialize()
	defer imagick.Terminate()

	if err := applyResourceLimits(cfg.Limits, logger); err != nil {
		logger.Fatal("cannot apply resource limits", zap.Error(err))
	}

	bucket, err := getS3Bucket(cfg.S3)
	if err != nil {
		logger.Fatal("cannot configure Amazon S3", zap.Error(err))
	}

	rs := &resizer{
		cfg:    cfg,
		logger: logger,
		source: &imageSource{
			cache:        openUpstreamCache(cfg, logger),
			bucket:       bucket,
			client:       &http.Client{Timeout: cfg.UpstreamTimeout},
			maxImageSize: int64(cfg.MaxImageSize),
			ttl:          cfg.UpstreamCacheTTL,
		},
	}

	logger.Info("listening", zap.String("addr", cfg.ListenAddr))
	if err := http.ListenAndServe(cfg.ListenAddr, rs.router()); err != nil {
		logger.Fatal("error when starting or running http server", zap.Error(err))
	}
}

func newLogger(cfg *config) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(cfg.LogLevel)
	return zc.Build()
}

type resizer struct {
	cfg    *config
	logger *zap.Logger
	source *imageSource
}

func (rs *resizer) router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/favicon.ico", http.NotFound)
	r.HandleFunc("/resize", rs.serveHTTP).Methods(http.MethodGet, http.MethodHead)
	r.HandleFunc("/{key:.+}", rs.serveHTTP).Methods(http.MethodGet, http.MethodHead)
	return r
}

type imageParams struct {
	imageURL           string
	width, height      uint
	compressionQuality uint
	sharpFactor        float64
	bottomAnnotation   string
	centerAnnotation   string
	format             string
}

// requestError is returned for responses other than 500.
type requestError struct {
	status int
	err    error
}

func (e *requestError) Error() string { return e.err.Error() }
func (e *requestError) Unwrap() error { return e.err }

func withStatus(status int, err error) error {
	return &requestError{status: status, err: err}
}

func (rs *resizer) serveHTTP(w http.ResponseWriter, r *http.Request) {
	log := rs.requestLogger(r)

	params, err := getImageParams(r)
	if err != nil {
		rs.fail(w, log, withStatus(http.StatusBadRequest, err))
		return
	}
	log = log.With(zap.String("imageUrl", params.imageURL))

	blob, err := rs.source.fetch(r.Context(), params.imageURL)
	if err != nil {
		rs.fail(w, log, withStatus(http.StatusBadGateway, err))
		return
	}

	mw := imagick.NewMagickWand()
	defer mw.Destroy()

	if err := mw.ReadImageBlob(blob); err != nil {
		rs.fail(w, log, withStatus(http.StatusUnsupportedMediaType,
			fmt.Errorf("cannot parse image: %w", err)))
		return
	}
	if err := rs.processImage(mw, params); err != nil {
		rs.fail(w, log, err)
		return
	}
	if ce := log.Check(zap.DebugLevel, "wand state"); ce != nil {
		ce.Write(zap.String("wand", mw.Describe()))
	}

	var out []byte
	if mw.GetNumberImages() > 1 {
		out, err = mw.GetImagesBlob()
	} else {
		out, err = mw.GetImageBlob()
	}
	if err != nil {
		rs.fail(w, log, fmt.Errorf("cannot encode image: %w", err))
		return
	}
	w.Header().Set("Content-Type", "image/"+strings.ToLower(mw.GetImageFormat()))
	w.Header().Set("Content-Length", strconv.Itoa(len(out)))
	if _, err := w.Write(out); err != nil {
		// the response may already be partially written
		log.Warn("cannot send image to client", zap.Error(err))
		return
	}
	log.Info("SUCCESS", zap.String("size", humanize.IBytes(uint64(len(out)))))
}

// processImage runs the pipeline on every frame, so animations keep all of
// them. The iterator is left on the first frame.
func (rs *resizer) processImage(mw *imagick.MagickWand, params *imageParams) error {
	mw.ResetIterator()
	for mw.NextImage() {
		if err := rs.processFrame(mw, params); err != nil {
			return err
		}
	}
	mw.ResetIterator()
	return nil
}

func (rs *resizer) processFrame(mw *imagick.MagickWand, params *imageParams) error {
	if mw.RequiresOrientation() {
		if err := mw.AutoOrientImage(); err != nil {
			return fmt.Errorf("cannot auto-orient image: %w", err)
		}
	}

	width, height, shouldResize := adjustImageDimensions(mw.GetImageWidth(), mw.GetImageHeight(), params.width, params.height)
	if shouldResize {
		var err error
		if rs.cfg.Filter.FilterType != imagick.FILTER_UNDEFINED {
			err = mw.ResizeImage(width, height, rs.cfg.Filter.FilterType)
		} else {
			err = mw.ThumbnailImage(width, height)
		}
		if err != nil {
			return fmt.Errorf("error when resizing the image to %dx%d: %w", width, height, err)
		}
		// the canvas of animation frames still has the original size
		if err := mw.ResetImagePage("0x0+0+0"); err != nil {
			return err
		}
	}

	if err := rs.annotateImage(mw, params.bottomAnnotation, imagick.GRAVITY_SOUTH); err != nil {
		return err
	}
	if err := rs.annotateImage(mw, params.centerAnnotation, imagick.GRAVITY_CENTER); err != nil {
		return err
	}

	if params.sharpFactor > 0 {
		if err := mw.SharpenImage(0, params.sharpFactor); err != nil {
			return fmt.Errorf("cannot sharpen image: %w", err)
		}
	}
	compressionQuality := params.compressionQuality
	if compressionQuality == 0 {
		compressionQuality = rs.cfg.DefaultCompressionQuality
	}
	if err := mw.SetImageCompressionQuality(compressionQuality); err != nil {
		return err
	}
	if err := mw.StripImage(); err != nil {
		return fmt.Errorf("cannot strip image: %w", err)
	}

	if params.format != "" {
		if err := mw.SetImageFormat(params.format); err != nil {
			return withStatus(http.StatusBadRequest, err)
		}
	}
	return nil
}

func (rs *resizer) annotateImage(mw *imagick.MagickWand, annotation string, gravity imagick.GravityType) error {
	if annotation == "" {
		return nil
	}

	dw := imagick.NewDrawingWand()
	defer dw.Destroy()
	pw := imagick.NewPixelWand()
	defer pw.Destroy()

	fontSize := getFontSize(mw, annotation)
	if rs.cfg.AnnotationFont != "" {
		if err := dw.SetFont(rs.cfg.AnnotationFont); err != nil {
			return err
		}
	}
	dw.SetFontSize(fontSize)
	dw.SetFontWeight(100)
	dw.SetFontStyle(imagick.STYLE_NORMAL)
	dw.SetGravity(gravity)

	if err := pw.SetColor("#ffffff80"); err != nil {
		return err
	}
	dw.SetFillColor(pw)

	if fontSize > 20 {
		if err := pw.SetColor("#00000050"); err != nil {
			return err
		}
		dw.SetStrokeColor(pw)
		dw.SetStrokeWidth(1.0)
	}

	if err := mw.AnnotateImage(dw, 0, 0, 0, annotation); err != nil {
		return fmt.Errorf("cannot annotate image with %q: %w", annotation, err)
	}
	return nil
}

func getFontSize(mw *imagick.MagickWand, text string) float64 {
	fontSize := float64(80.0)
	fontSizeByWidth := float64(mw.GetImageWidth()) / float64(len(text)) / 0.55
	if fontSizeByWidth < fontSize {
		fontSize = fontSizeByWidth
	}
	fontSizeByHeight := float64(mw.GetImageHeight()) / 1.2
	if fontSizeByHeight < fontSize {
		fontSize = fontSizeByHeight
	}
	if fontSize < 10 {
		fontSize = 10
	}
	return fontSize
}

// adjustImageDimensions fits ow x oh into the requested box keeping the
// aspect ratio. A zero width or height takes the value of the other one.
// Images are never enlarged, and neither side shrinks below one pixel.
func adjustImageDimensions(ow, oh, width, height uint) (uint, uint, bool) {
	if width == 0 && height == 0 {
		return 0, 0, false
	}

	if width == 0 {
		width = height
	} else if height == 0 {
		height = width
	}

	if ow <= width && oh <= height {
		return ow, oh, false
	}

	if ow > width {
		oh = uint(float64(oh) * float64(width) / float64(ow))
		ow = width
	}

	if oh > height {
		ow = uint(float64(ow) * float64(height) / float64(oh))
		oh = height
	}

	return max(ow, 1), max(oh, 1), true
}

// getImageParams reads either the imageUrl query argument or a path of the
// form name_wW_hH_ext, which maps to the S3 key name_ext. The name may
// contain slashes.
func getImageParams(r *http.Request) (*imageParams, error) {
	p := &imageParams{
		imageURL: r.FormValue("imageUrl"),
	}
	var err error
	if p.imageURL == "" {
		key := mux.Vars(r)["key"]
		parts := strings.SplitN(key, "_", 4)
		if len(parts) != 4 {
			return nil, fmt.Errorf("key=%q must contain at least four parts delimited by '_'", key)
		}
		if !strings.HasPrefix(parts[1], "w") || !strings.HasPrefix(parts[2], "h") {
			return nil, fmt.Errorf("key=%q must look like name_wWIDTH_hHEIGHT_ext", key)
		}
		p.imageURL = fmt.Sprintf("s3:%s_%s", parts[0], parts[3])
		if p.width, err = parseUint("width", parts[1][1:]); err != nil {
			return nil, err
		}
		if p.height, err = parseUint("height", parts[2][1:]); err != nil {
			return nil, err
		}
	} else {
		if p.width, err = getUint(r, "width"); err != nil {
			return nil, err
		}
		if p.height, err = getUint(r, "height"); err != nil {
			return nil, err
		}
	}
	if p.compressionQuality, err = getUint(r, "compressionQuality"); err != nil {
		return nil, err
	}
	if p.compressionQuality > 100 {
		return nil, fmt.Errorf("compressionQuality=%d must not exceed 100", p.compressionQuality)
	}
	if p.sharpFactor, err = getFloat64(r, "sharpFactor"); err != nil {
		return nil, err
	}
	p.bottomAnnotation = r.FormValue("bottomAnnotation")
	p.centerAnnotation = r.FormValue("centerAnnotation")
	p.format = r.FormValue("format")
	if p.format != "" {
		formats, err := imagick.QueryFormats(strings.ToUpper(p.format))
		if err != nil {
			return nil, err
		}
		if len(formats) == 0 {
			return nil, fmt.Errorf("unsupported format=%q", p.format)
		}
	}
	return p, nil
}

func getFloat64(r *http.Request, key string) (float64, error) {
	v := r.FormValue(key)
	if len(v) == 0 {
		return 0.0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("cannot parse %s=%v: %w", key, v, err)
	}
	return f, nil
}

func getUint(r *http.Request, key string) (uint, error) {
	v := r.FormValue(key)
	return parseUint(key, v)
}

func parseUint(k, v string) (uint, error) {
	if len(v) == 0 {
		return 0, nil
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("cannot parse %s=%v: %w", k, v, err)
	}
	return uint(n), nil
}

func (rs *resizer) requestLogger(r *http.Request) *zap.Logger {
	return rs.logger.With(
		zap.String("remoteAddr", r.RemoteAddr),
		zap.String("requestURI", r.RequestURI),
		zap.String("referer", r.Referer()),
		zap.String("userAgent", r.UserAgent()),
	)
}

func (rs *resizer) fail(w http.ResponseWriter, log *zap.Logger, err error) {
	status := http.StatusInternalServerError
	var re *requestError
	if errors.As(err, &re) {
		status = re.status
	}
	log.Error("request failed", zap.Int("status", status), zap.Error(err))
	http.Error(w, http.StatusText(status), status)
}
