package main

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// decodeImageSize reads just enough of data to report the pixel dimensions
// of a raster image, covering every format the CLI accepts as single-page
// input. The blank format imports register decoders with image.DecodeConfig;
// golang.org/x/image supplies BMP and TIFF, which the stdlib image package
// does not.
func decodeImageSize(data []byte) (width, height int, err error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}
