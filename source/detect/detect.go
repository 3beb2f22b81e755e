//go:build ocr

// Package detect provides a Tesseract-backed vision region detector for the
// fusion pipeline.
//
// This package wraps the Tesseract engine via gosseract and requires
// Tesseract to be installed on the system. On macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
//
// Tesseract's block segmentation supplies the bounding boxes and
// confidences; fusegrid only consumes the geometry and never the recognized
// text, so detection quality matters more than recognition quality here.
package detect

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"

	"github.com/otiai10/gosseract/v2"
	xdraw "golang.org/x/image/draw"

	"github.com/tsawler/fusegrid/model"
	"github.com/tsawler/fusegrid/source"
)

// Config holds configuration options for the detector.
type Config struct {
	// MaxWidth caps the pixel width handed to Tesseract; wider rasters are
	// downscaled first and the resulting boxes scaled back up.
	MaxWidth int

	// Language selects the Tesseract trained data, "+"-separated for
	// multiple languages. Defaults to "eng".
	Language string

	// TitleBand is the fraction of the page height from the top within
	// which a wide block is classified as a title.
	TitleBand float64

	// WideRatio is the fraction of the page width a block must span to
	// count as wide for title classification.
	WideRatio float64
}

// DefaultConfig returns the default detector configuration.
func DefaultConfig() Config {
	return Config{
		MaxWidth:  2000,
		Language:  "eng",
		TitleBand: 0.15,
		WideRatio: 0.5,
	}
}

// Detector proposes semantic regions using Tesseract block segmentation.
// It implements [source.RegionDetector]. A Detector holds a Tesseract
// client and must be closed when no longer needed.
type Detector struct {
	client *gosseract.Client
	config Config
}

// New creates a detector with default configuration.
func New() (*Detector, error) {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates a detector with custom configuration.
func NewWithConfig(config Config) (*Detector, error) {
	if config.MaxWidth <= 0 {
		config.MaxWidth = DefaultConfig().MaxWidth
	}
	if config.TitleBand <= 0 {
		config.TitleBand = DefaultConfig().TitleBand
	}
	if config.WideRatio <= 0 {
		config.WideRatio = DefaultConfig().WideRatio
	}
	client := gosseract.NewClient()
	if config.Language != "" {
		if err := client.SetLanguage(config.Language); err != nil {
			client.Close()
			return nil, fmt.Errorf("failed to set language: %w", err)
		}
	}
	return &Detector{client: client, config: config}, nil
}

// Close releases the Tesseract client.
func (d *Detector) Close() error {
	if d.client != nil {
		return d.client.Close()
	}
	return nil
}

// Detect segments a rasterized page into regions. Bounding boxes are
// returned in the raster's own pixel space regardless of any internal
// downscaling.
func (d *Detector) Detect(ctx context.Context, raster source.PageRaster) ([]model.Region, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if raster.Image == nil {
		return nil, fmt.Errorf("raster for page %d has no image", raster.PageIndex)
	}

	img, upscale := d.downscale(raster.Image)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode raster: %w", err)
	}
	if err := d.client.SetImageFromBytes(buf.Bytes()); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := d.client.GetBoundingBoxes(gosseract.RIL_BLOCK)
	if err != nil {
		return nil, fmt.Errorf("block segmentation failed: %w", err)
	}

	bounds := raster.Image.Bounds()
	pageW := float64(bounds.Dx())
	pageH := float64(bounds.Dy())

	regions := make([]model.Region, 0, len(boxes))
	for _, b := range boxes {
		bbox := model.NewBBox(
			float64(b.Box.Min.X)*upscale,
			float64(b.Box.Min.Y)*upscale,
			float64(b.Box.Dx())*upscale,
			float64(b.Box.Dy())*upscale,
		)
		if bbox.IsEmpty() {
			continue
		}
		conf := b.Confidence / 100
		if conf < 0 {
			conf = 0
		}
		if conf > 1 {
			conf = 1
		}
		regions = append(regions, model.Region{
			BBox:       bbox,
			Type:       d.classify(bbox, pageW, pageH),
			Confidence: conf,
		})
	}
	return regions, nil
}

// downscale shrinks an image wider than MaxWidth, returning the image to
// segment and the factor that maps its pixels back to the original raster.
func (d *Detector) downscale(img image.Image) (image.Image, float64) {
	bounds := img.Bounds()
	if bounds.Dx() <= d.config.MaxWidth {
		return img, 1
	}
	scale := float64(bounds.Dx()) / float64(d.config.MaxWidth)
	dst := image.NewRGBA(image.Rect(0, 0, d.config.MaxWidth, int(float64(bounds.Dy())/scale)))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, bounds, xdraw.Over, nil)
	return dst, scale
}

// classify guesses a block type from geometry alone: a wide block near the
// top of the page reads as a title, a short isolated strip as a heading,
// everything else as a paragraph. The fusion threshold decides whether the
// guess sticks, so a wrong guess degrades to Unclassified rather than
// failing.
func (d *Detector) classify(bbox model.BBox, pageW, pageH float64) model.BlockType {
	if pageW <= 0 || pageH <= 0 {
		return model.BlockParagraph
	}
	wide := bbox.Width >= pageW*d.config.WideRatio
	if wide && bbox.Bottom() <= pageH*d.config.TitleBand {
		return model.BlockTitle
	}
	// A strip no taller than a couple of text lines reads as a heading.
	if bbox.Height <= pageH*0.04 {
		return model.BlockHeading
	}
	return model.BlockParagraph
}
