package validate

import (
	"regexp"
	"strings"
)

// Claim codes printed on stickers look like SH-T1-ABC123. Matching is
// case-insensitive; codes are normalized to uppercase before lookup and
// storage.
var claimCodePattern = regexp.MustCompile(`^SH-T\d-[A-Z0-9]+$`)

func NormalizeClaimCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func IsClaimCode(code string) bool {
	return claimCodePattern.MatchString(NormalizeClaimCode(code))
}
