package common

// WipeByteArray zeroes b in place. Use it to scrub passwords from
// memory once they are no longer needed. Safe to call with nil.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
