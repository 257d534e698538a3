// Package israeliid validates and generates Israeli national ID numbers
// (Teudat Zehut) using the standard check-digit scheme.
//
// The canonical convention is fixed here: the ID is zero-padded to nine
// digits and weights alternate 1,2,1,2,... from the leftmost digit of the
// padded string. Products above nine have nine subtracted before summing,
// and the ID is valid when the sum is divisible by ten.
package israeliid

import (
	"crypto/rand"
	"math/big"

	dErrors "user-registry/pkg/domain-errors"
)

// paddedLength is the fixed length the checksum operates on.
const paddedLength = 9

// IsValid reports whether id is a checksum-valid Israeli national ID.
// The input must be purely digits, between 5 and 9 characters long.
// Shorter IDs are treated as having leading zeros.
func IsValid(id string) bool {
	if len(id) < 5 || len(id) > paddedLength {
		return false
	}
	for _, c := range id {
		if c < '0' || c > '9' {
			return false
		}
	}
	return checksum(pad(id)) == 0
}

// Generate returns a random, checksum-valid 9-digit national ID.
// It picks eight random digits and tries check digits 0-9 until one
// validates. The checksum is a linear function of the last digit's weighted
// value mod 10, so exactly one check digit always works; a miss would mean
// a broken implementation and is surfaced as an internal error.
func Generate() (string, error) {
	buf := make([]byte, paddedLength)
	for i := 0; i < paddedLength-1; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to read random digits")
		}
		buf[i] = byte('0' + n.Int64())
	}
	for check := byte(0); check < 10; check++ {
		buf[paddedLength-1] = '0' + check
		candidate := string(buf)
		if IsValid(candidate) {
			return candidate, nil
		}
	}
	return "", dErrors.New(dErrors.CodeInternal, "no valid check digit found")
}

// pad left-pads id with zeros to exactly nine digits.
func pad(id string) string {
	for len(id) < paddedLength {
		id = "0" + id
	}
	return id
}

// checksum computes the weighted digit sum mod 10 over a 9-digit string.
// Position weights alternate 1,2 starting from the leftmost digit.
func checksum(padded string) int {
	total := 0
	for idx := 0; idx < paddedLength; idx++ {
		digit := int(padded[idx] - '0')
		product := digit
		if idx%2 == 1 {
			product *= 2
		}
		if product > 9 {
			product -= 9
		}
		total += product
	}
	return total % 10
}
