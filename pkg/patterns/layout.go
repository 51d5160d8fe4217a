package patterns

// key is the position of a letter on a QWERTY keyboard and its neighbouring keys.
type key struct {
	row      int
	col      int
	adjacent string
}

var qwerty = map[rune]key{
	'q': {0, 0, "was"},
	'w': {0, 1, "qeasd"},
	'e': {0, 2, "wrsdf"},
	'r': {0, 3, "etdfg"},
	't': {0, 4, "ryfgh"},
	'y': {0, 5, "tughj"},
	'u': {0, 6, "yihjk"},
	'i': {0, 7, "uojkl"},
	'o': {0, 8, "ipkl"},
	'p': {0, 9, "ol"},
	'a': {1, 0, "qwszx"},
	's': {1, 1, "weadzxc"},
	'd': {1, 2, "ersfxcv"},
	'f': {1, 3, "rtdgcvb"},
	'g': {1, 4, "tyfhvbn"},
	'h': {1, 5, "yugjbnm"},
	'j': {1, 6, "uihknm"},
	'k': {1, 7, "iojlm"},
	'l': {1, 8, "opk"},
	'z': {2, 0, "asx"},
	'x': {2, 1, "sdzc"},
	'c': {2, 2, "dfxv"},
	'v': {2, 3, "fgcb"},
	'b': {2, 4, "ghvn"},
	'n': {2, 5, "hjbm"},
	'm': {2, 6, "jkn"},
}

// Adjacent reports if b is a neighbour of a on a QWERTY keyboard. Case is ignored.
func Adjacent(a, b rune) bool {
	k, ok := qwerty[toLower(a)]
	if !ok {
		return false
	}
	lb := toLower(b)
	for _, n := range k.adjacent {
		if n == lb {
			return true
		}
	}
	return false
}

// AdjacentRatio is the share of consecutive character pairs that are keyboard
// neighbours. Strings shorter than two characters have a ratio of 0.
func AdjacentRatio(password string) float64 {
	rs := []rune(password)
	if len(rs) < 2 {
		return 0
	}

	n := 0
	for i := 1; i < len(rs); i++ {
		if Adjacent(rs[i-1], rs[i]) {
			n++
		}
	}
	return float64(n) / float64(len(rs)-1)
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
