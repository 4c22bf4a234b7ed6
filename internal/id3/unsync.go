package id3

// resync reverses the unsynchronisation scheme: every $FF $00 pair written
// to break up false MPEG sync patterns goes back to a single $FF. b is
// rewritten in place.
func resync(b []byte) []byte {
	out := b[:0]

	for i := 0; i < len(b); i++ {
		out = append(out, b[i])
		if b[i] == 0xFF && i+1 < len(b) && b[i+1] == 0x00 {
			i++
		}
	}

	return out
}
