package model

import (
	"encoding/json"
	"testing"
)

// TestSeverityString tests the String method of Severity.
func TestSeverityString(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		severity Severity
		expected string
	}{
		{SeverityInfo, "INFO"},
		{SeveritySuccess, "SUCCESS"},
		{SeverityWarning, "WARNING"},
		{SeverityCritical, "CRITICAL"},
		{Severity(999), "UNKNOWN"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			t.Parallel()
			if tc.severity.String() != tc.expected {
				t.Errorf("got %q, expected %q", tc.severity.String(), tc.expected)
			}
		})
	}
}

// TestFeedbackJSON tests that feedback severity is encoded by name.
func TestFeedbackJSON(t *testing.T) {
	t.Parallel()

	t.Run("known severity", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(Feedback{Severity: SeverityWarning, Message: "hello"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		expected := `{"severity":"warning","message":"hello"}`
		if string(data) != expected {
			t.Errorf("got %s, expected %s", data, expected)
		}
	})

	t.Run("unknown severity fails", func(t *testing.T) {
		t.Parallel()

		if _, err := json.Marshal(Feedback{Severity: Severity(42)}); err == nil {
			t.Error("expected error for unknown severity")
		}
	})
}
