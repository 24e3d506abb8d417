package helpers

import (
	"strconv"
	"strings"
)

// ParseIntList parses a comma-separated list of integers, skipping entries
// that are empty or not a number.
func ParseIntList(value string) []int {
	var out []int
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	return out
}
