package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 6
)

// GenerateID returns a short random id for job runs
func GenerateID() (string, error) {
	return GenerateCode(idAlphabet, idLength)
}

// GenerateCode returns n random characters drawn from alphabet
func GenerateCode(alphabet string, n int) (string, error) {
	return gonanoid.Generate(alphabet, n)
}
