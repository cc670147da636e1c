package structural

import (
	"math"
	"strconv"
	"strings"
)

// FormatFloat renders a float so that it reads back as a float: the shortest
// round-tripping digits, positional notation for decimal exponents in [-4, 16) and
// scientific notation outside it, always with a '.' or an exponent.
// Non-finite values come out as Go spells them; backends pick their own syntax.
func FormatFloat(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}

	sci := strconv.FormatFloat(f, 'e', -1, 64)

	exp, err := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if err == nil && (exp < -4 || exp >= 16) {
		return sci
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}

	return s
}
