package catalog

const gib = 1 << 30

// toGiB converts a byte count to fractional gibibytes for display.
func toGiB(size int64) float64 {
	return float64(size) / gib
}

// fitString shortens line to at most length characters by replacing the
// middle with '*' while keeping the last end characters, so both the start of
// a title and its distinguishing suffix stay visible in a fixed column.
func fitString(line string, length, end int) string {
	runes := []rune(line)
	if len(runes) <= length {
		return line
	}
	head := runes[:length-end-1]
	tail := runes[len(runes)-end:]
	return string(head) + "*" + string(tail)
}
