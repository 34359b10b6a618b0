package core

// Utoa64 converts an unsigned 64-bit integer to a string.
// The counter is 64 bits wide, so 32-bit helpers would truncate it.
func Utoa64(n uint64) string {
	if n == 0 {
		return "0"
	}

	var buf [20]byte // max uint64 has 20 digits
	pos := len(buf)
	for n > 0 {
		pos--
		buf[pos] = byte('0' + n%10)
		n /= 10
	}

	return string(buf[pos:])
}
