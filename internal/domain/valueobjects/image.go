package valueobjects

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"path/filepath"
	"slices"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

type ImageFormat string

const (
	JPEG ImageFormat = "jpeg"
	PNG  ImageFormat = "png"
	GIF  ImageFormat = "gif"
	BMP  ImageFormat = "bmp"
	TIFF ImageFormat = "tiff"
	WEBP ImageFormat = "webp"
)

const jpegQuality = 90

// ImageExtensions are the input extensions picked up by a batch run.
var ImageExtensions = []string{".jpg", ".jpeg", ".png", ".bmp", ".tiff", ".tif", ".webp"}

var mimeTypes = map[ImageFormat]string{
	JPEG: "image/jpeg",
	PNG:  "image/png",
	GIF:  "image/gif",
	BMP:  "image/bmp",
	TIFF: "image/tiff",
	WEBP: "image/webp",
}

type ImageData struct {
	data   []byte
	format ImageFormat
}

func NewImageData(data []byte) (*ImageData, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("image data cannot be empty")
	}

	format, err := detectFormat(data)
	if err != nil {
		return nil, fmt.Errorf("unsupported image format: %w", err)
	}

	return &ImageData{
		data:   data,
		format: format,
	}, nil
}

func (i *ImageData) Data() []byte {
	return i.data
}

func (i *ImageData) Format() ImageFormat {
	return i.format
}

func (i *ImageData) MimeType() string {
	return mimeTypes[i.format]
}

func (i *ImageData) ToBase64() string {
	return base64.StdEncoding.EncodeToString(i.data)
}

func (i *ImageData) Decode() (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(i.data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// ToRGB returns the payload in a three-channel encoding. Baseline colour JPEG
// and truecolour PNG without alpha are returned as is; anything else is
// decoded, stripped of its alpha channel and re-encoded as an RGB PNG.
func (i *ImageData) ToRGB() (*ImageData, error) {
	img, err := i.Decode()
	if err != nil {
		return nil, err
	}

	if i.isThreeChannel(img) {
		return i, nil
	}

	// 不透明なRGBAはpng.EncodeでカラータイプRGB(2)になる
	return EncodeImage(dropAlpha(img), PNG)
}

func EncodeImage(img image.Image, format ImageFormat) (*ImageData, error) {
	var buf bytes.Buffer
	var err error

	switch format {
	case JPEG:
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality})
	case PNG:
		err = png.Encode(&buf, img)
	case GIF:
		err = gif.Encode(&buf, img, nil)
	case BMP:
		err = bmp.Encode(&buf, img)
	case TIFF:
		err = tiff.Encode(&buf, img, nil)
	case WEBP:
		err = nativewebp.Encode(&buf, img, nil)
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode to %s: %w", strings.ToUpper(string(format)), err)
	}

	return &ImageData{
		data:   buf.Bytes(),
		format: format,
	}, nil
}

// FormatFromExtension maps a file extension (with the leading dot, any case)
// to the container it is saved in.
func FormatFromExtension(ext string) (ImageFormat, error) {
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg":
		return JPEG, nil
	case ".png":
		return PNG, nil
	case ".gif":
		return GIF, nil
	case ".bmp":
		return BMP, nil
	case ".tif", ".tiff":
		return TIFF, nil
	case ".webp":
		return WEBP, nil
	default:
		return "", fmt.Errorf("unsupported image extension: %q", ext)
	}
}

// IsImageFile reports whether name carries one of ImageExtensions.
// Dotfiles such as ".png" have no extension and are not images.
func IsImageFile(name string) bool {
	base := filepath.Base(name)
	ext := filepath.Ext(base)
	if ext == "" || ext == base {
		return false
	}
	return slices.Contains(ImageExtensions, strings.ToLower(ext))
}

func detectFormat(data []byte) (ImageFormat, error) {
	reader := bytes.NewReader(data)
	_, format, err := image.DecodeConfig(reader)
	if err != nil {
		return "", err
	}

	switch format {
	case "jpeg":
		return JPEG, nil
	case "png":
		return PNG, nil
	case "gif":
		return GIF, nil
	case "bmp":
		return BMP, nil
	case "tiff":
		return TIFF, nil
	case "webp":
		return WEBP, nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

const pngColorTypeRGB = 2

// isThreeChannel reports whether the encoded payload itself stores exactly
// three colour channels. Pixel opacity does not count: an RGBA PNG whose
// alpha is all 0xff still carries four channels.
func (i *ImageData) isThreeChannel(img image.Image) bool {
	switch i.format {
	case JPEG:
		_, ok := img.(*image.YCbCr)
		return ok
	case PNG:
		colorType, ok := pngColorType(i.data)
		return ok && colorType == pngColorTypeRGB
	default:
		return false
	}
}

// pngColorType reads the colour type byte of the IHDR chunk.
func pngColorType(data []byte) (byte, bool) {
	if len(data) < 26 || string(data[12:16]) != "IHDR" {
		return 0, false
	}
	return data[25], true
}

// dropAlpha keeps the straight (non-premultiplied) colour of every pixel and
// forces it opaque.
func dropAlpha(src image.Image) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			dst.SetRGBA(x-b.Min.X, y-b.Min.Y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
		}
	}
	return dst
}
