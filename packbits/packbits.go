// Package packbits implements the run-length scheme used by legacy ICNS
// image channels.
//
// It is not Apple's general PackBits: runs are flagged by header bytes
// 128-255 carrying count+125 (so 3 to 130 repeats), and literal spans by
// header bytes 0-127 carrying count-1 (1 to 128 bytes). The thresholds
// below must match the platform decoder exactly.
package packbits

const (
	minRun     = 3
	maxRun     = 130
	maxLiteral = 128
	runBias    = 125
)

// Encode compresses one byte channel. The output has no terminator;
// an empty input yields an empty output.
func Encode(src []byte) []byte {
	n := len(src)
	out := make([]byte, 0, n+n/maxLiteral+1)

	for i := 0; i < n; {
		if i+2 >= n {
			out = append(out, byte(n-i-1))
			out = append(out, src[i:]...)
			break
		}

		if isRun(src, i) {
			count := minRun
			for i+count < n && count < maxRun && src[i+count] == src[i] {
				count++
			}
			out = append(out, byte(count+runBias), src[i])
			i += count
			continue
		}

		j := i + 1
		for j < n && j-i < maxLiteral && !isRun(src, j) {
			j++
		}
		out = append(out, byte(j-i-1))
		out = append(out, src[i:j]...)
		i = j
	}
	return out
}

// isRun reports whether three equal bytes start at i.
func isRun(src []byte, i int) bool {
	return i+2 < len(src) && src[i] == src[i+1] && src[i] == src[i+2]
}
