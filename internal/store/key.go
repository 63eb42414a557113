package store

import "strings"

// Key is a hierarchical key: an ordered sequence of segments.
type Key []string

// segment encoding: 0x00 inside a segment is escaped as 0x00 0xFF and every
// segment ends with 0x00 0x01. Byte order of encoded keys matches segment-wise
// order of the keys themselves.
const (
	escapeByte     = 0x00
	escapedZero    = 0xFF
	terminatorByte = 0x01
)

// Append returns a new Key with segments appended. The receiver is never
// modified.
func (k Key) Append(segments ...string) Key {
	out := make(Key, 0, len(k)+len(segments))
	out = append(out, k...)
	return append(out, segments...)
}

// Clone returns a copy of k.
func (k Key) Clone() Key {
	return k.Append()
}

// String joins the segments with "/". For logging only.
func (k Key) String() string {
	return strings.Join(k, "/")
}

// Encode returns the order-preserving byte encoding of k.
func (k Key) Encode() []byte {
	size := 0
	for _, s := range k {
		size += len(s) + 2
	}

	buf := make([]byte, 0, size)
	for _, s := range k {
		for i := 0; i < len(s); i++ {
			if s[i] == escapeByte {
				buf = append(buf, escapeByte, escapedZero)
				continue
			}
			buf = append(buf, s[i])
		}
		buf = append(buf, escapeByte, terminatorByte)
	}
	return buf
}
