package entropy

import (
	"math"
	"unicode/utf8"

	"github.com/nao1215/pwstrength/internal/model"
	"github.com/nbutton23/zxcvbn-go"
)

// maxCrackInput bounds the number of runes handed to zxcvbn, whose matchers
// grow quickly with input length. Longer passwords are estimated on their prefix.
const maxCrackInput = 64

// Bits returns the entropy estimate of the password in bits.
// An empty password, or one whose runes fall in no class, has zero entropy.
func Bits(password string) float64 {
	if password == "" {
		return 0
	}

	pool := NewProfile(password).PoolSize()
	if pool == 0 {
		return 0
	}

	return float64(utf8.RuneCountInString(password)) * math.Log2(float64(pool))
}

// Crack returns the zxcvbn estimate for the password.
func Crack(password string) model.CrackEstimate {
	if password == "" {
		return model.CrackEstimate{CrackTimeDisplay: "instant"}
	}

	if runes := []rune(password); len(runes) > maxCrackInput {
		password = string(runes[:maxCrackInput])
	}

	match := zxcvbn.PasswordStrength(password, nil)
	return model.CrackEstimate{
		Score:            match.Score,
		Entropy:          match.Entropy,
		CrackTime:        match.CrackTime,
		CrackTimeDisplay: match.CrackTimeDisplay,
	}
}
