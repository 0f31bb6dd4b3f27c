package leaf

import (
	"fmt"

	"github.com/goliatone/go-forgery/pkg/rng"
)

// Phone returns a NANP-style number "(NXX) NXX-XXXX"; area and exchange codes
// start with 2-9 per the numbering plan.
func Phone(src *rng.Source) string {
	area1 := src.Int64Range(2, 9)
	area2 := src.Int64Range(0, 9)
	area3 := src.Int64Range(0, 9)
	ex1 := src.Int64Range(2, 9)
	ex2 := src.Int64Range(0, 9)
	ex3 := src.Int64Range(0, 9)
	sub := src.Int64Range(0, 9999)
	return fmt.Sprintf("(%d%d%d) %d%d%d-%04d", area1, area2, area3, ex1, ex2, ex3, sub)
}
