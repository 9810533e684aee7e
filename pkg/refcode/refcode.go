package refcode

import (
	"strconv"
	"strings"

	"github.com/ShiraazMoollatjie/goluhn"
)

const prefix = "REF"

// Derive builds the referral code for an account: the account id digits with
// a Luhn check digit appended. Deterministic, so deriving twice for the same
// account always yields the same code.
func Derive(accountID int64) string {
	_, code, err := goluhn.Calculate(strconv.FormatInt(accountID, 10))
	if err != nil {
		// only reachable for non-numeric input
		return prefix + strconv.FormatInt(accountID, 10)
	}
	return prefix + code
}

// IsValid reports whether a user-supplied code is well formed. It filters out
// typos before any storage lookup happens.
func IsValid(code string) bool {
	if !strings.HasPrefix(code, prefix) {
		return false
	}
	return goluhn.Validate(strings.TrimPrefix(code, prefix)) == nil
}
