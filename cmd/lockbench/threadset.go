package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrEmptyThreadSet is returned when a -B spec parses to zero thread
// counts, e.g. an empty string, or a spec consisting only of blank
// segments. Exit code 4 maps to this error.
var ErrEmptyThreadSet = errors.New("lockbench: empty thread set")

// parseThreadSet parses a comma-separated list of thread-count ranges of
// the form "start-end:step" (step optional, defaults to 1; "start-end"
// alone or a single "N" are also accepted) into a deduplicated slice of
// thread counts in first-encounter order (not sorted: "1-4:2,2-4:1" yields
// [1, 3, 2, 4]).
//
// "1-4:1,8-16:8" -> [1, 2, 3, 4, 8, 16]
func parseThreadSet(spec string) ([]int, error) {
	var out []int
	seen := make(map[int]bool)

	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		step := 1
		rangePart := part
		if idx := strings.IndexByte(part, ':'); idx >= 0 {
			rangePart = part[:idx]
			s, err := strconv.Atoi(part[idx+1:])
			if err != nil || s <= 0 {
				return nil, fmt.Errorf("lockbench: invalid step in %q", part)
			}
			step = s
		}

		var lo, hi int
		if idx := strings.IndexByte(rangePart, '-'); idx >= 0 {
			loVal, err := strconv.Atoi(rangePart[:idx])
			if err != nil {
				return nil, fmt.Errorf("lockbench: invalid thread range %q", part)
			}
			hiVal, err := strconv.Atoi(rangePart[idx+1:])
			if err != nil {
				return nil, fmt.Errorf("lockbench: invalid thread range %q", part)
			}
			lo, hi = loVal, hiVal
		} else {
			n, err := strconv.Atoi(rangePart)
			if err != nil {
				return nil, fmt.Errorf("lockbench: invalid thread count %q", part)
			}
			lo, hi = n, n
		}

		if lo <= 0 || hi < lo {
			return nil, fmt.Errorf("lockbench: invalid thread range %q", part)
		}

		for v := lo; v <= hi; v += step {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}

	if len(out) == 0 {
		return nil, ErrEmptyThreadSet
	}
	return out, nil
}
