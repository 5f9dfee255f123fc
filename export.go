package main

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"time"
)

// ExportFormat enumerates the request formats. Only PNG is implemented;
// the others are recognized so requests for them can be reported and dropped.
type ExportFormat int

const (
	FormatPNG ExportFormat = iota
	FormatSVG
	FormatGIF
	FormatMP4
)

func (f ExportFormat) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatSVG:
		return "svg"
	case FormatGIF:
		return "gif"
	case FormatMP4:
		return "mp4"
	}
	return "unknown"
}

// ExportRequest asks for the current frame (or an animation) to be written
// out. Fire and forget: nothing reports back to the requester.
type ExportRequest struct {
	Format     ExportFormat
	Filename   string
	Resolution [2]int
}

// Exporter queues requests during update and resolves them when a rendered
// frame is available at the end of draw.
type Exporter struct {
	Dir     string
	pending []ExportRequest
}

func NewExporter() *Exporter {
	return &Exporter{Dir: ScreenshotDir}
}

func (e *Exporter) Request(req ExportRequest) {
	e.pending = append(e.pending, req)
}

// RequestScreenshot queues a PNG capture with a timestamped filename.
func (e *Exporter) RequestScreenshot(w, h int) {
	e.Request(ExportRequest{
		Format:     FormatPNG,
		Filename:   fmt.Sprintf("screenshot_%d.png", time.Now().Unix()),
		Resolution: [2]int{w, h},
	})
}

func (e *Exporter) HasPending() bool {
	return len(e.pending) > 0
}

// Resolve handles every queued request against the frame just rendered.
// Failures are logged and the request dropped; there is no retry.
func (e *Exporter) Resolve(frame image.Image) {
	pending := e.pending
	e.pending = nil
	for _, req := range pending {
		switch req.Format {
		case FormatPNG:
			if err := e.writePNG(req.Filename, frame); err != nil {
				log.Println("export:", err)
			}
		default:
			log.Printf("export: %s output is not implemented, dropping %q", req.Format, req.Filename)
		}
	}
}

func (e *Exporter) writePNG(filename string, frame image.Image) error {
	if err := os.MkdirAll(e.Dir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(e.Dir, filename)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, frame); err != nil {
		return err
	}
	log.Println("export: saved", path)
	return nil
}
