package imgutil

import (
	"bytes"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
)

// CompressToJPEG は画像データ（PNG, GIF, JPEG等）をJPEG形式に圧縮します。
// image.Decodeがサポートするフォーマットに対応しています。
func CompressToJPEG(data []byte, quality int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ShrinkToFit は長辺が maxDim を超える画像を縦横比を保ったまま縮小し、
// JPEG形式で再エンコードします。maxDim 以下の画像は縮小せず圧縮のみ行います。
func ShrinkToFit(data []byte, maxDim, quality int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxDim || bounds.Dy() > maxDim {
		if bounds.Dx() >= bounds.Dy() {
			img = imaging.Resize(img, maxDim, 0, imaging.Lanczos)
		} else {
			img = imaging.Resize(img, 0, maxDim, imaging.Lanczos)
		}
	}

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
