package helpers

import "strings"

const upperHex = "0123456789ABCDEF"

// URLEncode percent-encodes value for use as a single URL path segment. It works on bytes, not runes: ASCII letters,
// digits and "-", "_", ".", "~" are kept, every other byte (including each byte of a multi-byte UTF-8 sequence and "%"
// itself) becomes "%XX" with uppercase hex. The result is independent of locale.
//
// URLEncode is not idempotent: URLEncode("a%20b") is "a%2520b". Values must be encoded exactly once, at the point
// where the path is built.
//
// Called from service.addressResolver (path segments, instance_name_url) and service.envelopeBuilder (flat server_name).
func URLEncode(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for i := 0; i < len(value); i++ {
		c := value[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&0x0F])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '-', c == '_', c == '.', c == '~':
		return true
	default:
		return false
	}
}
