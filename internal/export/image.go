package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"

	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
	"golang.org/x/image/draw"
)

// ErrExporterUnavailable is returned when no headless browser can be
// started. Image export is best-effort; callers fall back to the markdown
// embed instead of failing the page.
var ErrExporterUnavailable = errors.New("image exporter unavailable")

// cardSelector is the element wrapping the rendered card on the public
// page. The screenshot captures this element's own bounding box rather
// than a fixed viewport crop, which clips when the element's height
// settles late.
const cardSelector = "#profile-card"

// ImageExporter captures raster snapshots of public card pages with a
// headless browser.
type ImageExporter struct {
	log *zap.SugaredLogger
}

// NewImageExporter constructs an ImageExporter.
func NewImageExporter(log *zap.SugaredLogger) *ImageExporter {
	return &ImageExporter{log: log}
}

// Capture loads the public card page and screenshots the card element,
// waiting for the document and its sub-resources to finish loading first.
// When width > 0 the PNG is scaled down to that width. The caller bounds
// the whole operation with its context deadline.
func (e *ImageExporter) Capture(ctx context.Context, publicURL string, width int) ([]byte, error) {
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
		)...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	var shot []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(publicURL),
		chromedp.WaitVisible(cardSelector, chromedp.ByID),
		// Let fonts and images settle before measuring the element.
		chromedp.Poll(`document.readyState === "complete"`, nil),
		chromedp.Screenshot(cardSelector, &shot, chromedp.NodeVisible, chromedp.ByID),
	)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("capture card image: %w", ctx.Err())
		}
		e.log.Warnw("card screenshot failed", "url", publicURL, "err", err)
		return nil, fmt.Errorf("%w: %v", ErrExporterUnavailable, err)
	}

	if width > 0 {
		resized, err := resizePNG(shot, width)
		if err != nil {
			e.log.Warnw("card image resize failed", "err", err)
			return shot, nil
		}
		return resized, nil
	}

	return shot, nil
}

// resizePNG scales a PNG down to the target width, preserving aspect
// ratio. Upscaling is skipped; the natural size is already the maximum.
func resizePNG(data []byte, width int) ([]byte, error) {
	src, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode screenshot: %w", err)
	}

	bounds := src.Bounds()
	if width >= bounds.Dx() {
		return data, nil
	}

	height := bounds.Dy() * width / bounds.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("encode screenshot: %w", err)
	}
	return buf.Bytes(), nil
}
