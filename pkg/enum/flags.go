package enum

// Integer is the set of types usable as enum and flag values.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// HasFlag reports whether every bit of flag is set in v.
func HasFlag[T Integer](v, flag T) bool {
	return v&flag == flag
}

// AddFlag returns v with the bits of flag set.
func AddFlag[T Integer](v, flag T) T {
	return v | flag
}

// RemoveFlag returns v with the bits of flag cleared.
func RemoveFlag[T Integer](v, flag T) T {
	return v &^ flag
}

// ToggleFlag returns v with the bits of flag inverted.
func ToggleFlag[T Integer](v, flag T) T {
	return v ^ flag
}
