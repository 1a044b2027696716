package uritemplate

import "strings"

const upperhex = "0123456789ABCDEF"

// reservedSet is the RFC 3986 reserved character set (gen-delims and
// sub-delims), preserved by reserved-safe escaping.
const reservedSet = ":/?#[]@!$&'()*+,;="

// isUnreserved reports whether c is in the RFC 3986 unreserved set.
func isUnreserved(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	case c == '-' || c == '.' || c == '_' || c == '~':
		return true
	default:
		return false
	}
}

func isHexDigit(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'A' && c <= 'F' || c >= 'a' && c <= 'f'
}

// escapeFull percent-encodes every byte outside the unreserved set.
// Note this escapes '!' and the other sub-delims too: "Hello World!"
// becomes "Hello%20World%21".
func escapeFull(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0x0f])
	}
	return b.String()
}

// escapeReserved percent-encodes like escapeFull but leaves the reserved
// set intact and passes well-formed %XX triplets through unchanged, so
// already-encoded input is not encoded twice. Used by the '+' and '#'
// operators.
func escapeReserved(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case isUnreserved(c) || strings.IndexByte(reservedSet, c) >= 0:
			b.WriteByte(c)
		case c == '%' && i+2 < len(s) && isHexDigit(s[i+1]) && isHexDigit(s[i+2]):
			b.WriteString(s[i : i+3])
			i += 2
		default:
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&0x0f])
		}
	}
	return b.String()
}
