package classify

import "regexp"

// panFormat is the positional PAN pattern: 5 uppercase letters, 4 digits,
// 1 uppercase letter. Anchored so partial matches are rejected.
var panFormat = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)

// MatchesFormat reports whether s has the exact PAN structure. Case
// sensitive: lowercase input fails, which is why candidates are normalized
// before classification.
func MatchesFormat(s string) bool {
	return panFormat.MatchString(s)
}

// HasAdjacentRepeat reports whether s contains two identical consecutive
// characters. Strings shorter than 2 characters have no pairs and return
// false.
func HasAdjacentRepeat(s string) bool {
	for i := 0; i+1 < len(s); i++ {
		if s[i] == s[i+1] {
			return true
		}
	}
	return false
}

// IsAscendingRun reports whether every consecutive character pair in s
// increases by exactly one ordinal step ("ABCDE", "1234"). A string shorter
// than 2 characters is not a run. Byte ordinals work uniformly for A-Z and
// 0-9 because both ranges are contiguous in ASCII; letter and digit spaces
// are never mixed by callers, which slice the prefix and digit block
// separately.
func IsAscendingRun(s string) bool {
	if len(s) < 2 {
		return false
	}
	for i := 0; i+1 < len(s); i++ {
		if int(s[i+1])-int(s[i]) != 1 {
			return false
		}
	}
	return true
}
