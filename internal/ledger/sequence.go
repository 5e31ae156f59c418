package ledger

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Sequence is the invoice counter, persisted as a single integer holding the
// last-used invoice number. It is independent of any sale record.
type Sequence struct {
	path string
}

// NewSequence builds a Sequence over the given counter file.
func NewSequence(path string) *Sequence {
	return &Sequence{path: path}
}

// Current returns the last-used invoice number, zero when the file is absent.
func (s *Sequence) Current(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("ledger: read %s: %w", s.path, err)
	}
	raw := strings.TrimSpace(string(data))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("ledger: %s: invoice counter %q: %w", s.path, raw, err)
	}
	return n, nil
}

// Next increments the counter, persists it and returns the new value.
func (s *Sequence) Next(ctx context.Context) (int, error) {
	current, err := s.Current(ctx)
	if err != nil {
		return 0, err
	}
	next := current + 1
	if err := os.WriteFile(s.path, []byte(strconv.Itoa(next)+"\n"), 0o644); err != nil {
		return 0, fmt.Errorf("ledger: write %s: %w", s.path, err)
	}
	return next, nil
}
