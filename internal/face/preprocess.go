package face

import (
	"image"

	"gocv.io/x/gocv"
)

// decodeBounded turns raw encoded bytes into a BGR bitmap whose longest
// side is at most maxSide. Oversized images are shrunk with
// area-averaging interpolation; smaller ones pass through unchanged.
// The caller owns the returned Mat.
func decodeBounded(buf []byte, maxSide int) (gocv.Mat, error) {
	img, err := gocv.IMDecode(buf, gocv.IMReadColor)
	if err != nil {
		return gocv.Mat{}, ErrDecodeFailure
	}
	if img.Empty() {
		img.Close()
		return gocv.Mat{}, ErrDecodeFailure
	}

	scale, shrink := boundedScale(img.Cols(), img.Rows(), maxSide)
	if !shrink {
		return img, nil
	}

	resized := gocv.NewMat()
	gocv.Resize(img, &resized, image.Point{}, scale, scale, gocv.InterpolationArea)
	img.Close()
	return resized, nil
}
