package integrations

import (
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
)

// Thumbnailer produces small JPEG previews of downloaded media for the
// site's asset gallery.
type Thumbnailer struct {
	outDir   string
	maxWidth int
}

func NewThumbnailer(outDir string) *Thumbnailer {
	return &Thumbnailer{outDir: outDir, maxWidth: 320}
}

// FromFile generates a thumbnail next to outDir for the image at srcPath.
func (t *Thumbnailer) FromFile(srcPath string) error {
	f, err := os.Open(srcPath)
	if err != nil {
		return err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("failed to decode image: %w", err)
	}

	thumb := t.scale(img)

	if err := os.MkdirAll(t.outDir, 0755); err != nil {
		return err
	}

	base := filepath.Base(srcPath)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	out, err := os.Create(filepath.Join(t.outDir, base+".jpg"))
	if err != nil {
		return err
	}
	defer out.Close()

	return jpeg.Encode(out, thumb, &jpeg.Options{Quality: 80})
}

// scale resizes img to maxWidth, preserving aspect ratio. Images already
// narrow enough pass through untouched.
func (t *Thumbnailer) scale(img image.Image) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width <= t.maxWidth {
		return img
	}

	newHeight := height * t.maxWidth / width
	dst := image.NewRGBA(image.Rect(0, 0, t.maxWidth, newHeight))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
