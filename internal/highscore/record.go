// Package highscore persists the best score as a small text record
// (`highscore=<integer>`) in a per-platform application-data directory.
package highscore

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrMalformed is returned when a stored record cannot be parsed.
var ErrMalformed = errors.New("highscore: malformed record")

// Record is the decoded content of a save file: key=value lines.
type Record map[string]int

// DecodeRecord parses `key=value` lines. Blank lines are ignored; any other
// line that is not a key and an integer separated by '=' is malformed.
func DecodeRecord(data []byte) (Record, error) {
	rec := make(Record)

	sc := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}

		key, value, ok := strings.Cut(text, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformed, line, text)
		}

		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, line, err)
		}
		rec[key] = n
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return rec, nil
}

// Encode renders the record with keys in sorted order. A single-key record
// encodes to exactly `key=value` with no trailing newline.
func (r Record) Encode() []byte {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b bytes.Buffer
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s=%d", k, r[k])
	}
	return b.Bytes()
}
