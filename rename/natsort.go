package rename

import (
	"sort"
	"strings"
)

// Compare orders two strings the way a human would read embedded numbers:
// runs of consecutive digits are compared by numeric value ("img2" before
// "img10"), everything else byte-wise. Returns -1, 0 or 1.
func Compare(a, b string) int {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if isDigit(a[i]) && isDigit(b[j]) {
			si, sj := i, j
			for i < len(a) && isDigit(a[i]) {
				i++
			}
			for j < len(b) && isDigit(b[j]) {
				j++
			}

			// Leading zeros don't affect magnitude, so strip them before
			// comparing. A longer remainder means a bigger number.
			na := strings.TrimLeft(a[si:i], "0")
			nb := strings.TrimLeft(b[sj:j], "0")
			if len(na) != len(nb) {
				if len(na) < len(nb) {
					return -1
				}
				return 1
			}
			if na != nb {
				if na < nb {
					return -1
				}
				return 1
			}
			continue
		}

		if a[i] != b[j] {
			if a[i] < b[j] {
				return -1
			}
			return 1
		}
		i++
		j++
	}

	// One string exhausted: the shorter one sorts first.
	switch {
	case len(a)-i < len(b)-j:
		return -1
	case len(a)-i > len(b)-j:
		return 1
	}
	return 0
}

// Less reports whether a sorts before b in natural order.
func Less(a, b string) bool {
	return Compare(a, b) < 0
}

// SortNatural sorts paths in place in natural order.
func SortNatural(paths []string) {
	sort.SliceStable(paths, func(i, j int) bool {
		return Less(paths[i], paths[j])
	})
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
