package entropy

import "unicode"

// Pool contributions for each character class.
const (
	LowerPoolSize  = 26
	UpperPoolSize  = 26
	DigitPoolSize  = 10
	SymbolPoolSize = 32
)

// Profile records which character classes appear in a password.
type Profile struct {
	HasLower  bool
	HasUpper  bool
	HasDigit  bool
	HasSymbol bool
}

// NewProfile classifies every rune of the password.
// A symbol is any rune that is neither a letter nor a digit. Letters without
// case (for example CJK ideographs) belong to no class.
func NewProfile(password string) Profile {
	var p Profile
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			p.HasLower = true
		case unicode.IsUpper(r):
			p.HasUpper = true
		case unicode.IsDigit(r):
			p.HasDigit = true
		case !unicode.IsLetter(r):
			p.HasSymbol = true
		}
	}
	return p
}

// PoolSize returns the size of the character pool implied by the profile.
func (p Profile) PoolSize() int {
	size := 0
	if p.HasLower {
		size += LowerPoolSize
	}
	if p.HasUpper {
		size += UpperPoolSize
	}
	if p.HasDigit {
		size += DigitPoolSize
	}
	if p.HasSymbol {
		size += SymbolPoolSize
	}
	return size
}

// Classes returns how many of the four classes are present.
func (p Profile) Classes() int {
	n := 0
	for _, present := range []bool{p.HasLower, p.HasUpper, p.HasDigit, p.HasSymbol} {
		if present {
			n++
		}
	}
	return n
}
