package hibp

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// ParseRange scans a range response made of SUFFIX:COUNT lines and returns the
// count for suffix, or 0 when it is not listed.
func ParseRange(body []byte, suffix string) (int, error) {
	suffix = strings.ToUpper(suffix)

	scanner := bufio.NewScanner(bytes.NewReader(body))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		s, count, ok := strings.Cut(line, ":")
		if !ok {
			return 0, fmt.Errorf("malformed range line %q", line)
		}
		if strings.ToUpper(s) != suffix {
			continue
		}

		n, err := strconv.Atoi(strings.TrimSpace(count))
		if err != nil {
			return 0, fmt.Errorf("malformed count for suffix %s: %w", s, err)
		}
		return n, nil
	}

	return 0, scanner.Err()
}
