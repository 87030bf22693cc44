package scriptgen

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Image is raw artwork image data plus its mime type.
type Image struct {
	Data []byte
	Mime string
}

// LoadImage reads an image file and infers the mime type from its
// extension.
func LoadImage(path string) (Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Image{}, err
	}
	if len(data) == 0 {
		return Image{}, fmt.Errorf("image %s is empty", path)
	}
	mime, err := mimeForExt(filepath.Ext(path))
	if err != nil {
		return Image{}, fmt.Errorf("image %s: %w", path, err)
	}
	return Image{Data: data, Mime: mime}, nil
}

func mimeForExt(ext string) (string, error) {
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg":
		return "image/jpeg", nil
	case ".png":
		return "image/png", nil
	case ".webp":
		return "image/webp", nil
	case ".gif":
		return "image/gif", nil
	}
	return "", fmt.Errorf("unsupported image extension %q", ext)
}

// DataURL encodes the image for inline transport to the model API.
func (im Image) DataURL() string {
	return "data:" + im.Mime + ";base64," + base64.StdEncoding.EncodeToString(im.Data)
}
