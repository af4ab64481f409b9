// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package biblio

import (
	"strconv"
	"strings"
)

// CompareClauseNumbers orders dotted clause numbers ("2.10" after "2.9",
// "B.1" after "12"). Components compare numerically when both are numeric,
// numeric components sort before alphabetic ones (annexes), and alphabetic
// components compare lexically. A number sorts before its own sub-clauses.
func CompareClauseNumbers(a, b string) int {
	ac := strings.Split(a, ".")
	bc := strings.Split(b, ".")
	for i, x := range ac {
		if i >= len(bc) {
			return 1
		}
		y := bc[i]
		xn, xok := componentValue(x)
		yn, yok := componentValue(y)
		switch {
		case !xok && !yok:
			if c := strings.Compare(x, y); c != 0 {
				return c
			}
		case xok && !yok:
			return -1
		case !xok && yok:
			return 1
		case xn > yn:
			return 1
		case xn < yn:
			return -1
		}
	}
	if len(ac) == len(bc) {
		return 0
	}
	return -1
}

// componentValue parses one number component. An empty component counts as
// zero so unnumbered front matter sorts first.
func componentValue(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
