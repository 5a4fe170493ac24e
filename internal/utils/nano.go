package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	defaultIDSize = 32
	idAlphabet    = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// NanoID returns a new alphanumeric id at the default size.
func NanoID() string {
	return NanoIDSize(defaultIDSize)
}

// NanoIDSize returns a new alphanumeric id of the given length. A size of
// zero falls back to the default.
func NanoIDSize(size int) string {
	if size <= 0 {
		size = defaultIDSize
	}
	return gonanoid.MustGenerate(idAlphabet, size)
}
