// Package code generates temporary login codes.
package code

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// codeSpan is the number of distinct 6-digit codes, [100000, 999999].
const codeSpan = 900000

// New returns a 6-digit decimal code uniform in [100000, 999999].
func New() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeSpan))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
