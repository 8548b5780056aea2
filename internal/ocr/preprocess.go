package ocr

import (
	"fmt"
	"image"
	"image/color"
	"sort"

	"github.com/disintegration/imaging"
)

// PreprocessImage prepares a rasterized page for recognition: grayscale,
// a 3x3 median filter to knock out scanner speckle, then a binary
// threshold chosen by Otsu's method. The result is written to dst as PNG.
func PreprocessImage(src, dst string) error {
	img, err := imaging.Open(src)
	if err != nil {
		return fmt.Errorf("open image: %w", err)
	}
	gray := toGray(imaging.Grayscale(img))
	gray = medianFilter(gray)
	bin := binarize(gray, otsuThreshold(gray))
	if err := imaging.Save(bin, dst); err != nil {
		return fmt.Errorf("save image: %w", err)
	}
	return nil
}

func toGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}
	b := img.Bounds()
	g := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			g.Set(x, y, color.GrayModel.Convert(img.At(x, y)))
		}
	}
	return g
}

// medianFilter applies a 3x3 median filter. Border pixels are copied
// unchanged.
func medianFilter(src *image.Gray) *image.Gray {
	b := src.Bounds()
	dst := image.NewGray(b)
	copy(dst.Pix, src.Pix)
	var window [9]byte
	for y := b.Min.Y + 1; y < b.Max.Y-1; y++ {
		for x := b.Min.X + 1; x < b.Max.X-1; x++ {
			i := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					window[i] = src.GrayAt(x+dx, y+dy).Y
					i++
				}
			}
			w := window[:]
			sort.Slice(w, func(a, b int) bool { return w[a] < w[b] })
			dst.SetGray(x, y, color.Gray{Y: w[4]})
		}
	}
	return dst
}

// otsuThreshold picks the threshold that maximizes between-class variance
// of the grayscale histogram.
func otsuThreshold(img *image.Gray) uint8 {
	var hist [256]int
	total := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			hist[img.GrayAt(x, y).Y]++
			total++
		}
	}
	if total == 0 {
		return 128
	}

	var sum float64
	for i, n := range hist {
		sum += float64(i) * float64(n)
	}

	var sumB, wB float64
	var best float64
	threshold := uint8(128)
	for t := 0; t < 256; t++ {
		wB += float64(hist[t])
		if wB == 0 {
			continue
		}
		wF := float64(total) - wB
		if wF == 0 {
			break
		}
		sumB += float64(t) * float64(hist[t])
		mB := sumB / wB
		mF := (sum - sumB) / wF
		between := wB * wF * (mB - mF) * (mB - mF)
		if between > best {
			best = between
			threshold = uint8(t)
		}
	}
	return threshold
}

func binarize(img *image.Gray, threshold uint8) *image.Gray {
	b := img.Bounds()
	out := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.GrayAt(x, y).Y > threshold {
				out.SetGray(x, y, color.Gray{Y: 255})
			} else {
				out.SetGray(x, y, color.Gray{Y: 0})
			}
		}
	}
	return out
}
