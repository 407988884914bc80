// Package codec is the decode/encode boundary of the crop pipeline. The format
// is detected from the file's leading bytes, never from its extension, so a
// mislabeled file is still decoded as whatever it actually contains.
package codec

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/kolesa-team/go-webp/decoder"
	"github.com/kolesa-team/go-webp/encoder"
	"github.com/kolesa-team/go-webp/webp"

	"imgcrop/pkg/imgutil"
)

const (
	jpegQuality = 85
	webpQuality = 75
)

// ErrUnrecognized reports bytes that match no supported image signature.
var ErrUnrecognized = errors.New("unrecognized image data")

// Decode reads an image from r and reports which codec it was decoded with.
// Animated GIFs decode to their first frame.
func Decode(r io.Reader) (image.Image, imgutil.Kind, error) {
	br := bufio.NewReader(r)
	header, err := br.Peek(imgutil.HeaderLen)
	if err != nil {
		return nil, imgutil.KindUnknown, fmt.Errorf("read header: %w", err)
	}

	kind, err := imgutil.DetectHeader(header)
	if err != nil {
		return nil, imgutil.KindUnknown, err
	}

	var img image.Image
	switch kind {
	case imgutil.KindJPEG:
		img, err = jpeg.Decode(br)
	case imgutil.KindPNG:
		img, err = png.Decode(br)
	case imgutil.KindGIF:
		img, err = gif.Decode(br)
	case imgutil.KindWebP:
		img, err = webp.Decode(br, &decoder.Options{})
	default:
		return nil, imgutil.KindUnknown, ErrUnrecognized
	}
	if err != nil {
		return nil, kind, err
	}

	return img, kind, nil
}

// Encode writes img to w using the given codec.
func Encode(w io.Writer, img image.Image, kind imgutil.Kind) error {
	switch kind {
	case imgutil.KindJPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
	case imgutil.KindPNG:
		return png.Encode(w, img)
	case imgutil.KindGIF:
		return gif.Encode(w, img, &gif.Options{NumColors: 256})
	case imgutil.KindWebP:
		opts, err := encoder.NewLossyEncoderOptions(encoder.PresetDefault, webpQuality)
		if err != nil {
			return err
		}
		return webp.Encode(w, img, opts)
	default:
		return fmt.Errorf("cannot encode kind %q", kind)
	}
}
