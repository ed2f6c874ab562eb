package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const maxHeightRange = 100_000

// ParseHeights accepts a single height ("824958"), a comma separated list
// ("1,2,3") or an inclusive range ("820000:820010").
func ParseHeights(value string) ([]uint64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, errors.New("empty height")
	}

	if from, to, ok := strings.Cut(value, ":"); ok {
		start, err := parseHeight(from)
		if err != nil {
			return nil, err
		}
		stop, err := parseHeight(to)
		if err != nil {
			return nil, err
		}
		if stop < start {
			return nil, fmt.Errorf("height range %q is reversed", value)
		}
		if stop-start >= maxHeightRange {
			return nil, fmt.Errorf("height range %q exceeds %d blocks", value, maxHeightRange)
		}
		out := make([]uint64, 0, stop-start+1)
		for i := uint64(0); i <= stop-start; i++ {
			out = append(out, start+i)
		}
		return out, nil
	}

	parts := strings.Split(value, ",")
	out := make([]uint64, 0, len(parts))
	for _, p := range parts {
		h, err := parseHeight(p)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, nil
}

func parseHeight(s string) (uint64, error) {
	h, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid height %q: %w", s, err)
	}
	return h, nil
}
