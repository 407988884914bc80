package pipeline

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"imgcrop/internal/codec"
	"imgcrop/pkg/imgutil"
)

func newTestImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r := uint8((x * 255) / width)
			g := uint8((y * 255) / height)
			img.Set(x, y, color.RGBA{r, g, 128, 255})
		}
	}
	return img
}

// writeTestImage encodes a gradient image at path, picking the codec from the
// file extension.
func writeTestImage(t *testing.T, path string, width, height int) {
	t.Helper()

	img := newTestImage(width, height)
	var buf bytes.Buffer
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90})
	case ".png":
		err = png.Encode(&buf, img)
	case ".gif":
		err = gif.Encode(&buf, img, nil)
	default:
		t.Fatalf("writeTestImage: unsupported extension in %s", path)
	}
	if err != nil {
		t.Fatalf("encode test image: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write test image: %v", err)
	}
}

func decodeFile(t *testing.T, path string) (image.Image, imgutil.Kind) {
	t.Helper()

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer file.Close()

	img, kind, err := codec.Decode(file)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return img, kind
}

func TestCropToCoverDimensions(t *testing.T) {
	dir := t.TempDir()
	target := SizeSpec{Width: 400, Height: 300}

	cases := []struct {
		name   string
		width  int
		height int
		kind   imgutil.Kind
	}{
		// Same aspect ratio: straight resize, nothing trimmed.
		{"a.jpg", 800, 600, imgutil.KindJPEG},
		// Square source: upscaled to cover, top and bottom trimmed.
		{"b.png", 300, 300, imgutil.KindPNG},
		{"c.gif", 640, 200, imgutil.KindGIF},
	}

	for _, tc := range cases {
		path := filepath.Join(dir, tc.name)
		writeTestImage(t, path, tc.width, tc.height)

		data, err := CropToCover(Candidate{Path: path, FileName: tc.name}, target)
		if err != nil {
			t.Fatalf("CropToCover(%s): %v", tc.name, err)
		}

		img, kind, err := codec.Decode(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("decode output of %s: %v", tc.name, err)
		}
		if kind != tc.kind {
			t.Errorf("%s: output format %s, want %s", tc.name, kind, tc.kind)
		}
		bounds := img.Bounds()
		if bounds.Dx() != target.Width || bounds.Dy() != target.Height {
			t.Errorf("%s: output %dx%d, want %dx%d", tc.name, bounds.Dx(), bounds.Dy(), target.Width, target.Height)
		}
	}
}

func TestCropToCoverKeepsActualFormat(t *testing.T) {
	// PNG bytes behind a .jpg extension still decode, and the output stays PNG.
	dir := t.TempDir()
	path := filepath.Join(dir, "mislabeled.jpg")

	img := newTestImage(200, 100)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, err := CropToCover(Candidate{Path: path, FileName: "mislabeled.jpg"}, SizeSpec{Width: 50, Height: 50})
	if err != nil {
		t.Fatalf("CropToCover: %v", err)
	}
	if _, kind, err := codec.Decode(bytes.NewReader(data)); err != nil || kind != imgutil.KindPNG {
		t.Fatalf("output kind = %v (err %v), want png", kind, err)
	}
}

func TestCropToCoverCorruptInput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.jpg")
	if err := os.WriteFile(path, []byte("this is not an image at all"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := CropToCover(Candidate{Path: path, FileName: "bad.jpg"}, SizeSpec{Width: 10, Height: 10}); err == nil {
		t.Fatal("expected decode error for corrupt input")
	}
}

func TestCoverWindow(t *testing.T) {
	cases := []struct {
		w, h                               int
		target                             SizeSpec
		scaledW, scaledH, offsetX, offsetY int
	}{
		// Matching aspect ratio: scale only.
		{800, 600, SizeSpec{Width: 400, Height: 300}, 400, 300, 0, 0},
		// Square into 4:3: height trimmed.
		{300, 300, SizeSpec{Width: 400, Height: 300}, 400, 400, 0, 50},
		// Wide panorama into a square: width trimmed.
		{1000, 200, SizeSpec{Width: 100, Height: 100}, 500, 100, 200, 0},
	}

	for _, tc := range cases {
		scaledW, scaledH, offsetX, offsetY := CoverWindow(tc.w, tc.h, tc.target)
		if scaledW != tc.scaledW || scaledH != tc.scaledH || offsetX != tc.offsetX || offsetY != tc.offsetY {
			t.Errorf("CoverWindow(%d, %d, %dx%d) = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
				tc.w, tc.h, tc.target.Width, tc.target.Height,
				scaledW, scaledH, offsetX, offsetY,
				tc.scaledW, tc.scaledH, tc.offsetX, tc.offsetY)
		}
	}
}
