// Package phone validates E.164 phone numbers using the libphonenumber port.
package phone

import (
	"fmt"
	"math/rand"

	"github.com/nyaruka/phonenumbers"
)

// IsValid reports whether raw parses as an international phone number that is
// both possible (plausible length/pattern for its region) and valid (an
// assigned number range). No default region is supplied, so the caller must
// provide the country code (e.g. "+972..."). Parse failures are treated as
// invalid, never propagated.
func IsValid(raw string) bool {
	num, err := phonenumbers.Parse(raw, "")
	if err != nil {
		return false
	}
	return phonenumbers.IsPossibleNumber(num) && phonenumbers.IsValidNumber(num)
}

// RandomIsraeliNumber returns a random valid Israeli landline number in E.164
// format. Test-fixture helper; retries until the generated number validates.
func RandomIsraeliNumber() string {
	for {
		candidate := fmt.Sprintf("+97286%06d", rand.Intn(1000000))
		if IsValid(candidate) {
			return candidate
		}
	}
}
