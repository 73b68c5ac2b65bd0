package crypto

import (
	"crypto/rand"
	"math/big"
	"strings"

	"github.com/pkg/errors"
)

// AlphaNumeric holds lowercase ascii letters and digits.
const AlphaNumeric = "abcdefghijklmnopqrstuvwxyz0123456789"

func RandomBytes(size int) ([]byte, error) {
	data := make([]byte, size)

	read, err := rand.Read(data)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if read != size {
		return nil, errors.New("unexpected number of read bytes")
	}

	return data, nil
}

// RandomString draws length characters uniformly from the given alphabet
// using the system's cryptographically secure random source.
func RandomString(alphabet string, length int) (string, error) {
	if alphabet == "" {
		return "", errors.New("alphabet must not be empty")
	}

	size := big.NewInt(int64(len(alphabet)))

	var sb strings.Builder
	sb.Grow(length)

	for range length {
		idx, err := rand.Int(rand.Reader, size)
		if err != nil {
			return "", errors.WithStack(err)
		}

		sb.WriteByte(alphabet[idx.Int64()])
	}

	return sb.String(), nil
}
