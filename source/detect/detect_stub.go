//go:build !ocr

// Package detect provides a Tesseract-backed vision region detector for the
// fusion pipeline.
//
// This is the stub implementation used when the "ocr" build tag is not set.
// All functions return ErrDetectNotEnabled.
//
// To enable detection, rebuild with the "ocr" build tag:
//
//	go build -tags ocr
//
// This requires Tesseract to be installed. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package detect

import (
	"context"
	"errors"

	"github.com/tsawler/fusegrid/model"
	"github.com/tsawler/fusegrid/source"
)

// ErrDetectNotEnabled is returned when detection is requested but Tesseract
// support was not compiled in. Rebuild with -tags ocr to enable it.
var ErrDetectNotEnabled = errors.New("region detection not enabled; rebuild with -tags ocr")

// Config holds configuration options for the detector (matching the
// Tesseract-enabled implementation).
type Config struct {
	MaxWidth  int
	Language  string
	TitleBand float64
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

// Detector is a stub detector that returns errors for all operations.
type Detector struct{}

// New returns an error indicating detection support is not enabled.
// To enable it, rebuild with: go build -tags ocr
func New() (*Detector, error) {
	return nil, ErrDetectNotEnabled
}

// NewWithConfig returns an error indicating detection support is not enabled.
func NewWithConfig(config Config) (*Detector, error) {
	return nil, ErrDetectNotEnabled
}

// Close is a no-op for the stub detector.
// It is safe to call on a nil detector.
func (d *Detector) Close() error {
	return nil
}

// Detect returns an error indicating detection support is not enabled.
func (d *Detector) Detect(ctx context.Context, raster source.PageRaster) ([]model.Region, error) {
	return nil, ErrDetectNotEnabled
}
