package pattern

import (
	"testing"

	"github.com/nao1215/pwstrength/internal/model"
)

// TestFind tests sequence and repetition detection.
func TestFind(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		password string
		expected []model.PatternFinding
	}{
		{
			name:     "ascending letters",
			password: "abcXYZ",
			expected: []model.PatternFinding{model.NewSequenceFinding("abc")},
		},
		{
			name:     "repetition",
			password: "aaa1",
			expected: []model.PatternFinding{model.NewRepetitionFinding('a', 3)},
		},
		{
			name:     "descending digits are ignored",
			password: "xyz987",
			expected: []model.PatternFinding{model.NewSequenceFinding("xyz")},
		},
		{
			name:     "descending only",
			password: "987cba",
			expected: nil,
		},
		{
			name:     "both kinds, sequence first",
			password: "1111234",
			expected: []model.PatternFinding{
				model.NewSequenceFinding("123"),
				model.NewRepetitionFinding('1', 3),
			},
		},
		{
			name:     "first sequence wins",
			password: "Xdef789",
			expected: []model.PatternFinding{model.NewSequenceFinding("def")},
		},
		{
			name:     "long run reported with length three",
			password: "zzzzzz",
			expected: []model.PatternFinding{model.NewRepetitionFinding('z', 3)},
		},
		{
			name:     "sequence across classes by code point",
			password: "-XYZ",
			expected: []model.PatternFinding{model.NewSequenceFinding("XYZ")},
		},
		{
			name:     "non-ascii code points",
			password: "αβγ",
			expected: []model.PatternFinding{model.NewSequenceFinding("αβγ")},
		},
		{
			name:     "invalid utf-8 bytes repeat as the replacement rune",
			password: "\xff\xfe\xfd",
			expected: []model.PatternFinding{model.NewRepetitionFinding('\uFFFD', 3)},
		},
		{
			name:     "too short",
			password: "ab",
			expected: nil,
		},
		{
			name:     "empty",
			password: "",
			expected: nil,
		},
		{
			name:     "clean password",
			password: "Tq9#mW2!vL",
			expected: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Find(tc.password)
			if len(got) != len(tc.expected) {
				t.Fatalf("Find(%q) returned %d findings %+v, expected %d", tc.password, len(got), got, len(tc.expected))
			}
			for i := range got {
				if got[i] != tc.expected[i] {
					t.Errorf("finding %d = %+v, expected %+v", i, got[i], tc.expected[i])
				}
			}
		})
	}
}

// TestFindNoDescendingSequence checks that "987" is never reported.
func TestFindNoDescendingSequence(t *testing.T) {
	t.Parallel()

	for _, f := range Find("xyz987") {
		if f.Kind == model.PatternSequence && f.Substring == "987" {
			t.Error("descending run reported as a sequence")
		}
	}
}
