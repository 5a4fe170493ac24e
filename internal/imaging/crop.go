package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
)

// Centered aspect-ratio cropping for uploaded cover images. The cropped
// result is re-encoded and handed to the backend as a data URL; storage is
// the backend's problem.

type Preset string

const (
	PresetSquare   Preset = "square"   // 1:1
	PresetWide     Preset = "wide"     // 16:9
	PresetPortrait Preset = "portrait" // 4:5
)

var presetRatios = map[Preset][2]int{
	PresetSquare:   {1, 1},
	PresetWide:     {16, 9},
	PresetPortrait: {4, 5},
}

// Presets lists the preset names in display order.
func Presets() []string {
	return []string{string(PresetSquare), string(PresetWide), string(PresetPortrait)}
}

// ValidPreset reports whether name is a known preset.
func ValidPreset(name string) bool {
	_, ok := presetRatios[Preset(name)]
	return ok
}

// CropRect computes the largest centered rectangle of the preset's aspect
// ratio that fits in a w by h image.
func CropRect(w, h int, preset Preset) (image.Rectangle, error) {
	ratio, ok := presetRatios[preset]
	if !ok {
		return image.Rectangle{}, fmt.Errorf("unknown crop preset %q", preset)
	}
	if w <= 0 || h <= 0 {
		return image.Rectangle{}, fmt.Errorf("invalid image size %dx%d", w, h)
	}

	rw, rh := ratio[0], ratio[1]

	cropW, cropH := w, h
	if w*rh > h*rw {
		// Too wide: cap width.
		cropW = h * rw / rh
	} else {
		cropH = w * rh / rw
	}

	x0 := (w - cropW) / 2
	y0 := (h - cropH) / 2
	return image.Rect(x0, y0, x0+cropW, y0+cropH), nil
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// Crop returns the centered preset crop of img. Formats whose decoded type
// does not support SubImage are redrawn into one that does.
func Crop(img image.Image, preset Preset) (image.Image, error) {
	bounds := img.Bounds()
	rect, err := CropRect(bounds.Dx(), bounds.Dy(), preset)
	if err != nil {
		return nil, err
	}
	rect = rect.Add(bounds.Min)

	if si, ok := img.(subImager); ok {
		return si.SubImage(rect), nil
	}

	dst := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	for y := 0; y < rect.Dy(); y++ {
		for x := 0; x < rect.Dx(); x++ {
			dst.Set(x, y, img.At(rect.Min.X+x, rect.Min.Y+y))
		}
	}
	return dst, nil
}

// CropToDataURL decodes raw image bytes (jpeg or png), applies the preset
// crop and returns a jpeg data URL ready for the create-post payload.
func CropToDataURL(raw []byte, preset Preset) (string, error) {
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	cropped, err := Crop(img, preset)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, cropped, &jpeg.Options{Quality: 85}); err != nil {
		return "", fmt.Errorf("encode image: %w", err)
	}

	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
