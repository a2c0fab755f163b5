package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseInt32 reads a journal cell, tolerating surrounding spaces and a
// leading plus sign.
func ParseInt32(s string) (int32, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "+")

	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", s, err)
	}

	return int32(v), nil
}

func FormatInt32(v int32) string {
	return strconv.FormatInt(int64(v), 10)
}
