package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

// BlurSigma is the blur strength of the game-over background.
const BlurSigma = 2.0

// GaussianBlur runs a one-dimensional Gaussian pass along the outer index
// of img, clamping at the edges. The kernel radius is ceil(3σ) and each
// channel is truncated to an integer. img must be rectangular; colours
// without an RGB value count as black. sigma <= 0 returns a copy.
func GaussianBlur(img [][]tcell.Color, sigma float64) [][]tcell.Color {
	out := make([][]tcell.Color, len(img))
	for i := range img {
		out[i] = make([]tcell.Color, len(img[i]))
		copy(out[i], img[i])
	}
	if len(img) == 0 || sigma <= 0 {
		return out
	}

	radius := int(math.Ceil(3 * sigma))
	kernel := make([]float64, 2*radius+1)
	sum := 0.0
	for i := -radius; i <= radius; i++ {
		k := math.Exp(-0.5 * float64(i*i) / (sigma * sigma))
		kernel[i+radius] = k
		sum += k
	}
	for i := range kernel {
		kernel[i] /= sum
	}

	n := len(img)
	for a := range img {
		for b := range img[a] {
			var acc [3]float64
			for i := -radius; i <= radius; i++ {
				src := min(max(a+i, 0), n-1)
				rgb := channels(img[src][b])
				for c := range acc {
					acc[c] += float64(rgb[c]) * kernel[i+radius]
				}
			}
			out[a][b] = tcell.NewRGBColor(int32(acc[0]), int32(acc[1]), int32(acc[2]))
		}
	}
	return out
}

func channels(c tcell.Color) [3]int32 {
	r, g, b := c.RGB()
	if r < 0 || g < 0 || b < 0 {
		return [3]int32{}
	}
	return [3]int32{r, g, b}
}
