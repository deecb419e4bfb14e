package imageprocessing

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// ResizeToFit scales an image down (or up) to fit within the target box
// while preserving aspect ratio. The result is exactly the scaled size,
// not padded.
func ResizeToFit(img image.Image, targetWidth, targetHeight int) image.Image {
	if img == nil {
		return nil
	}

	bounds := img.Bounds()
	newWidth, newHeight := ScaledDimensions(bounds.Dx(), bounds.Dy(), targetWidth, targetHeight)

	if newWidth == bounds.Dx() && newHeight == bounds.Dy() {
		return img
	}

	resized := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	// BiLinear is a reasonable quality/speed tradeoff for photos
	xdraw.BiLinear.Scale(resized, resized.Bounds(), img, bounds, xdraw.Over, nil)
	return resized
}

// ScaledDimensions returns the largest dimensions that fit in the target
// box while preserving aspect ratio. Dimensions never round to zero.
func ScaledDimensions(srcWidth, srcHeight, targetWidth, targetHeight int) (int, int) {
	scaleX := float64(targetWidth) / float64(srcWidth)
	scaleY := float64(targetHeight) / float64(srcHeight)
	scale := scaleX
	if scaleY < scaleX {
		scale = scaleY
	}

	newWidth := int(float64(srcWidth) * scale)
	newHeight := int(float64(srcHeight) * scale)
	if newWidth < 1 {
		newWidth = 1
	}
	if newHeight < 1 {
		newHeight = 1
	}
	return newWidth, newHeight
}

// ResizeToFill scales an image to cover the target box entirely, cropping
// the overflow around the center.
func ResizeToFill(img image.Image, targetWidth, targetHeight int) image.Image {
	if img == nil {
		return nil
	}

	bounds := img.Bounds()
	srcWidth := bounds.Dx()
	srcHeight := bounds.Dy()

	scaleX := float64(targetWidth) / float64(srcWidth)
	scaleY := float64(targetHeight) / float64(srcHeight)
	scale := scaleX
	if scaleY > scaleX {
		scale = scaleY
	}

	newWidth := int(float64(srcWidth) * scale)
	newHeight := int(float64(srcHeight) * scale)

	resized := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	xdraw.BiLinear.Scale(resized, resized.Bounds(), img, bounds, xdraw.Over, nil)

	canvas := image.NewRGBA(image.Rect(0, 0, targetWidth, targetHeight))
	offsetX := (newWidth - targetWidth) / 2
	offsetY := (newHeight - targetHeight) / 2
	srcRect := image.Rect(offsetX, offsetY, offsetX+targetWidth, offsetY+targetHeight)
	draw.Draw(canvas, canvas.Bounds(), resized, srcRect.Min, draw.Src)

	return canvas
}
