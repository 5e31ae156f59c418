package orders

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/verdepos/verdepos/internal/shared"
)

const (
	filePrefix = "pedido_"
	fileSuffix = ".txt"

	labelClient  = "Cliente: "
	labelAddress = "Direccion: "
	labelProduct = "Producto: "
	labelDate    = "Fecha: "

	timestampLayout = "2006-01-02 15:04:05"
)

// Service files delivery orders as one text file per order and moves them
// between the pending and accepted directories.
type Service struct {
	pendingDir  string
	acceptedDir string
	now         func() time.Time
}

// NewService builds the order intake service.
func NewService(pendingDir, acceptedDir string) *Service {
	return &Service{pendingDir: pendingDir, acceptedDir: acceptedDir, now: time.Now}
}

// WithNow overrides the clock for deterministic tests.
func (s *Service) WithNow(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

// Submit files a new pending order and returns its reference.
func (s *Service) Submit(ctx context.Context, order Order) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(order.Lines) == 0 {
		return "", fmt.Errorf("orders: order without lines")
	}
	if err := os.MkdirAll(s.pendingDir, 0o755); err != nil {
		return "", fmt.Errorf("orders: create %s: %w", s.pendingDir, err)
	}
	ref := uuid.NewString()
	order.Ref = ref
	if order.CreatedAt.IsZero() {
		order.CreatedAt = s.now()
	}
	path := filepath.Join(s.pendingDir, filePrefix+ref+fileSuffix)
	if err := os.WriteFile(path, []byte(formatOrder(order)), 0o644); err != nil {
		return "", fmt.Errorf("orders: write %s: %w", path, err)
	}
	return ref, nil
}

// ListPending returns all pending orders sorted by reference.
func (s *Service) ListPending(ctx context.Context) ([]Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(s.pendingDir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("orders: read %s: %w", s.pendingDir, err)
	}
	var out []Order
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileSuffix) {
			continue
		}
		ref := strings.TrimSuffix(strings.TrimPrefix(name, filePrefix), fileSuffix)
		order, err := s.Get(ctx, ref)
		if err != nil {
			return nil, err
		}
		out = append(out, order)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Ref < out[j].Ref })
	return out, nil
}

// Get reads one pending order by reference.
func (s *Service) Get(ctx context.Context, ref string) (Order, error) {
	if err := ctx.Err(); err != nil {
		return Order{}, err
	}
	path := filepath.Join(s.pendingDir, filePrefix+ref+fileSuffix)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Order{}, fmt.Errorf("orders: order %s: %w", ref, shared.ErrNotFound)
	}
	if err != nil {
		return Order{}, fmt.Errorf("orders: read %s: %w", path, err)
	}
	order := parseOrder(string(data))
	order.Ref = ref
	return order, nil
}

// Accept relocates a pending order to the accepted directory. Accepting an
// absent or already-accepted order fails with not found.
func (s *Service) Accept(ctx context.Context, ref string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	src := filepath.Join(s.pendingDir, filePrefix+ref+fileSuffix)
	if _, err := os.Stat(src); os.IsNotExist(err) {
		return fmt.Errorf("orders: order %s: %w", ref, shared.ErrNotFound)
	}
	if err := os.MkdirAll(s.acceptedDir, 0o755); err != nil {
		return fmt.Errorf("orders: create %s: %w", s.acceptedDir, err)
	}
	dst := filepath.Join(s.acceptedDir, filePrefix+ref+fileSuffix)
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("orders: accept %s: %w", ref, err)
	}
	return nil
}

func formatOrder(order Order) string {
	var b strings.Builder
	b.WriteString("Pedido a domicilio\n")
	b.WriteString(labelClient + order.ClientName + "\n")
	b.WriteString(labelAddress + order.Address + "\n")
	for _, line := range order.Lines {
		b.WriteString(fmt.Sprintf("%s%s x%d\n", labelProduct, line.Name, line.Quantity))
	}
	b.WriteString(labelDate + order.CreatedAt.Format(timestampLayout) + "\n")
	return b.String()
}

// parseOrder is tolerant: the files are freeform text and unknown lines are
// kept out of the structured fields.
func parseOrder(content string) Order {
	var order Order
	for _, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(shared.SanitizeLine(raw))
		switch {
		case strings.HasPrefix(line, labelClient):
			order.ClientName = strings.TrimPrefix(line, labelClient)
		case strings.HasPrefix(line, labelAddress):
			order.Address = strings.TrimPrefix(line, labelAddress)
		case strings.HasPrefix(line, labelProduct):
			rest := strings.TrimPrefix(line, labelProduct)
			xi := strings.LastIndex(rest, " x")
			if xi < 0 {
				continue
			}
			qty, err := strconv.Atoi(rest[xi+2:])
			if err != nil {
				continue
			}
			order.Lines = append(order.Lines, Line{Name: rest[:xi], Quantity: qty})
		case strings.HasPrefix(line, labelDate):
			if ts, err := time.Parse(timestampLayout, strings.TrimPrefix(line, labelDate)); err == nil {
				order.CreatedAt = ts
			}
		}
	}
	return order
}
