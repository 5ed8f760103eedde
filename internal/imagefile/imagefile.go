// Package imagefile decodes image files for the converter. It registers the
// stdlib png, jpeg and gif decoders and the bmp, tiff and webp decoders from
// golang.org/x/image. Only the first frame of an animated gif is decoded.
package imagefile

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
	".webp": true,
}

// IsSupportedExt returns true if the extension belongs to a registered format.
// Decoding does not depend on it; formats are sniffed from the file header
func IsSupportedExt(ext string) bool {
	return imageExts[strings.ToLower(ext)]
}

// SupportedExtsList returns a human-readable list of supported formats.
func SupportedExtsList() string {
	return ".png, .jpg, .jpeg, .gif, .bmp, .tif, .tiff, .webp"
}

// Decode reads an image in any registered format and returns it with the
// format name
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("decoding image: %w", err)
	}
	return img, format, nil
}

// Open decodes the image file at path
func Open(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	img, format, err := Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}
	return img, format, nil
}
