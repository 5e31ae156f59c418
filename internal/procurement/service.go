package procurement

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/verdepos/verdepos/internal/inventory"
	"github.com/verdepos/verdepos/internal/shared"
)

const fieldSeparator = ": "

// Service maintains the supplier-facing purchase request list and imports
// received-goods files into the inventory store.
type Service struct {
	path  string
	store *inventory.Store
}

// NewService builds the procurement service over the request file.
func NewService(path string, store *inventory.Store) *Service {
	return &Service{path: path, store: store}
}

// AppendRequest adds one "name: cost: qty" line to the purchase request file.
func (s *Service) AppendRequest(ctx context.Context, name string, costPrice float64, qty int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(name) == "" {
		return inventory.ErrEmptyName
	}
	if costPrice < 0 {
		return inventory.ErrInvalidPrice
	}
	if qty <= 0 {
		return inventory.ErrInvalidQuantity
	}
	file, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("procurement: open %s: %w", s.path, err)
	}
	defer func() { _ = file.Close() }()
	line := strings.Join([]string{
		strings.TrimSpace(name),
		strconv.FormatFloat(costPrice, 'f', -1, 64),
		strconv.Itoa(qty),
	}, fieldSeparator)
	if _, err := file.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("procurement: append %s: %w", s.path, err)
	}
	return nil
}

// ImportDelivery reads a received-goods file ("name: cost: qty" per line)
// and merges each line into the inventory store. Lines are applied one at a
// time, each persisting the store; a malformed line aborts the import but
// earlier lines stay applied.
func (s *Service) ImportDelivery(ctx context.Context, path string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return 0, fmt.Errorf("procurement: file %s: %w", path, shared.ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("procurement: open %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	scanner := bufio.NewScanner(file)
	applied := 0
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(shared.SanitizeLine(scanner.Text()))
		if line == "" {
			continue
		}
		name, cost, qty, err := parseLine(line)
		if err != nil {
			return applied, fmt.Errorf("procurement: %s line %d: %w", path, lineNo, err)
		}
		if _, err := s.store.MergeDelivery(ctx, name, cost, qty); err != nil {
			return applied, err
		}
		applied++
	}
	if err := scanner.Err(); err != nil {
		return applied, fmt.Errorf("procurement: read %s: %w", path, err)
	}
	return applied, nil
}

func parseLine(line string) (string, float64, int, error) {
	fields := strings.Split(line, fieldSeparator)
	if len(fields) != 3 {
		return "", 0, 0, fmt.Errorf("expected 3 fields, got %d", len(fields))
	}
	cost, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return "", 0, 0, fmt.Errorf("cost price %q: %w", fields[1], err)
	}
	qty, err := strconv.Atoi(fields[2])
	if err != nil {
		return "", 0, 0, fmt.Errorf("quantity %q: %w", fields[2], err)
	}
	return fields[0], cost, qty, nil
}
