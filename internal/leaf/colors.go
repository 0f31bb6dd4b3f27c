package leaf

import (
	"fmt"

	"github.com/goliatone/go-forgery/pkg/rng"
)

func ColorName(src *rng.Source) string {
	return pick(src, colorNames)
}

func HexColor(src *rng.Source) string {
	r := src.Int64Range(0, 255)
	g := src.Int64Range(0, 255)
	b := src.Int64Range(0, 255)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// RGB returns a color as a byte triple; channels draw in r, g, b order.
func RGB(src *rng.Source) (uint8, uint8, uint8) {
	r := uint8(src.Int64Range(0, 255))
	g := uint8(src.Int64Range(0, 255))
	b := uint8(src.Int64Range(0, 255))
	return r, g, b
}
