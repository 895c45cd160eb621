package generate

import (
	"fmt"
	"math/rand"
)

// pick returns a uniformly chosen element.
func pick[T any](rnd *rand.Rand, items []T) T {
	return items[rnd.Intn(len(items))]
}

// pickWeighted returns an element chosen with the given relative weights.
// len(weights) must equal len(items); weights need not sum to 1.
func pickWeighted[T any](rnd *rand.Rand, items []T, weights []float64) T {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	draw := rnd.Float64() * total
	for i, w := range weights {
		draw -= w
		if draw < 0 {
			return items[i]
		}
	}
	return items[len(items)-1]
}

// uniform draws from [min, max).
func uniform(rnd *rand.Rand, min, max float64) float64 {
	return min + rnd.Float64()*(max-min)
}

// between draws an int from [min, max] inclusive. A degenerate range where
// max < min collapses to min; generator volume ranges are validated upstream
// so this only guards arithmetic, not configuration.
func between(rnd *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + rnd.Intn(max-min+1)
}

// round2 rounds to 2 decimal places, the scale of every monetary column.
func round2(f float64) float64 {
	if f < 0 {
		return float64(int64(f*100-0.5)) / 100
	}
	return float64(int64(f*100+0.5)) / 100
}

// round4 rounds to 4 decimal places (rates).
func round4(f float64) float64 {
	if f < 0 {
		return float64(int64(f*10000-0.5)) / 10000
	}
	return float64(int64(f*10000+0.5)) / 10000
}

// padDigits returns n random decimal digits as a string, leading zeros
// included.
func padDigits(rnd *rand.Rand, n int) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte('0' + rnd.Intn(10))
	}
	return string(buf)
}

// randomIPv4 returns a routable-looking dotted quad.
func randomIPv4(rnd *rand.Rand) string {
	return fmt.Sprintf("%d.%d.%d.%d",
		between(rnd, 11, 223), between(rnd, 0, 255),
		between(rnd, 0, 255), between(rnd, 1, 254))
}

// sampleWithoutReplacement returns k distinct elements of items in random
// order. k greater than len(items) returns a shuffled copy of everything.
func sampleWithoutReplacement[T any](rnd *rand.Rand, items []T, k int) []T {
	if k > len(items) {
		k = len(items)
	}
	idx := rnd.Perm(len(items))
	out := make([]T, 0, k)
	for _, i := range idx[:k] {
		out = append(out, items[i])
	}
	return out
}
