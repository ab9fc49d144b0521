package formats

func init() {
	Register(".txt", ParseText)
}

// ParseText treats the whole file as a bare ASCII grid with default tiles.
// The loader derives the level ID from the file name.
func ParseText(data []byte) (Level, error) {
	return Level{Grid: string(data)}, nil
}
