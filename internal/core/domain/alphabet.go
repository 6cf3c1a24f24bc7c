package domain

// Alphabet maps digit values 0-15 to their canonical symbols.
const Alphabet = "0123456789ABCDEF"

// SymbolOf returns the canonical symbol for a digit value.
// It panics if value is outside 0-15.
func SymbolOf(value int) byte {
	if value < 0 || value >= len(Alphabet) {
		panic("domain: digit value out of range")
	}
	return Alphabet[value]
}

// ValueOf returns the digit value of c. Only 0-9 and uppercase A-F
// are recognised; everything else, lowercase letters included, reports false.
func ValueOf(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	default:
		return 0, false
	}
}
