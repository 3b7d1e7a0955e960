package breach

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// parseRange scans a "SUFFIX:COUNT" body and returns the count of the line
// whose suffix equals suffix exactly. It returns 0 when no line matches.
// Blank lines are ignored; any other line that does not parse is an error.
func parseRange(body io.Reader, suffix string) (int, error) {
	scanner := bufio.NewScanner(body)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		candidate, rawCount, ok := strings.Cut(line, ":")
		if !ok {
			return 0, fmt.Errorf("%w: line %d has no separator", ErrMalformedResponse, lineNo)
		}

		count, err := strconv.Atoi(strings.TrimSpace(rawCount))
		if err != nil || count < 0 {
			return 0, fmt.Errorf("%w: line %d has an invalid count", ErrMalformedResponse, lineNo)
		}

		if strings.TrimSpace(candidate) == suffix {
			return count, nil
		}
	}

	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	return 0, nil
}
