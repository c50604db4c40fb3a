// pkg/utils/image/processor.go
package image

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"mime/multipart"

	"github.com/chai2010/webp"
)

// ProcessImage re-encodes jpeg/png/webp uploads at a sane quality.
// Other image types (gif, svg, ...) are passed through untouched.
func ProcessImage(file *multipart.FileHeader) (*bytes.Buffer, string, error) {
	src, err := file.Open()
	if err != nil {
		return nil, "", fmt.Errorf("could not open file: %v", err)
	}
	defer src.Close()

	raw, err := io.ReadAll(src)
	if err != nil {
		return nil, "", fmt.Errorf("could not read file: %v", err)
	}

	img, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		// Decode edilemeyen resim tipleri olduğu gibi saklanır
		contentType := file.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		return bytes.NewBuffer(raw), contentType, nil
	}

	buf := new(bytes.Buffer)
	switch format {
	case "jpeg":
		err = jpeg.Encode(buf, img, &jpeg.Options{Quality: 85})
	case "png":
		err = png.Encode(buf, img)
	case "webp":
		err = webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: 85})
	default:
		return bytes.NewBuffer(raw), file.Header.Get("Content-Type"), nil
	}

	if err != nil {
		return nil, "", fmt.Errorf("could not encode image: %v", err)
	}

	return buf, fmt.Sprintf("image/%s", format), nil
}
