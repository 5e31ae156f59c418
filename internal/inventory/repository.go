package inventory

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/verdepos/verdepos/internal/shared"
)

const fieldSeparator = ": "

// Store owns the product mapping and mirrors it to a flat text file. It is
// the only mutation path for inventory state; every mutator rewrites the
// whole file (no partial update, no atomic rename).
type Store struct {
	path     string
	products map[string]Product
	lastID   int
}

// Open loads the store from path. A missing file yields an empty store.
func Open(path string) (*Store, error) {
	s := &Store{path: path, products: make(map[string]Product)}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// load parses one product per line: "id: name: cost: sale: qty". A malformed
// line fails the whole load; skipping lines would silently drop stock.
func (s *Store) load() error {
	file, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("inventory: open %s: %w", s.path, err)
	}
	defer func() { _ = file.Close() }()

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(shared.SanitizeLine(scanner.Text()))
		if line == "" {
			continue
		}
		product, err := parseLine(line)
		if err != nil {
			return fmt.Errorf("inventory: %s line %d: %w", s.path, lineNo, err)
		}
		s.products[product.ID] = product
		if n, err := strconv.Atoi(product.ID); err == nil && n > s.lastID {
			s.lastID = n
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("inventory: read %s: %w", s.path, err)
	}
	return nil
}

func parseLine(line string) (Product, error) {
	fields := strings.Split(line, fieldSeparator)
	if len(fields) != 5 {
		return Product{}, fmt.Errorf("expected 5 fields, got %d", len(fields))
	}
	cost, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return Product{}, fmt.Errorf("cost price %q: %w", fields[2], err)
	}
	sale, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return Product{}, fmt.Errorf("sale price %q: %w", fields[3], err)
	}
	qty, err := strconv.Atoi(fields[4])
	if err != nil {
		return Product{}, fmt.Errorf("quantity %q: %w", fields[4], err)
	}
	return Product{
		ID:        fields[0],
		Name:      fields[1],
		CostPrice: cost,
		SalePrice: sale,
		Quantity:  qty,
	}, nil
}

func formatLine(p Product) string {
	return strings.Join([]string{
		p.ID,
		p.Name,
		strconv.FormatFloat(p.CostPrice, 'f', -1, 64),
		strconv.FormatFloat(p.SalePrice, 'f', -1, 64),
		strconv.Itoa(p.Quantity),
	}, fieldSeparator)
}

// Save serializes every entry, overwriting the file in full.
func (s *Store) Save(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var b strings.Builder
	for _, p := range s.List() {
		b.WriteString(formatLine(p))
		b.WriteByte('\n')
	}
	if err := os.WriteFile(s.path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("inventory: write %s: %w", s.path, err)
	}
	return nil
}

// NextID returns the next sequential product id.
func (s *Store) NextID() string {
	s.lastID++
	return strconv.Itoa(s.lastID)
}

// Get returns the product with the given id.
func (s *Store) Get(id string) (Product, error) {
	p, ok := s.products[id]
	if !ok {
		return Product{}, fmt.Errorf("inventory: product %s: %w", id, shared.ErrNotFound)
	}
	return p, nil
}

// List returns all products sorted by numeric id.
func (s *Store) List() []Product {
	out := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		a, errA := strconv.Atoi(out[i].ID)
		b, errB := strconv.Atoi(out[j].ID)
		if errA != nil || errB != nil {
			return out[i].ID < out[j].ID
		}
		return a < b
	})
	return out
}

// Len reports the number of products in the store.
func (s *Store) Len() int {
	return len(s.products)
}

// Add validates and inserts a new product under a fresh id, then persists.
func (s *Store) Add(ctx context.Context, name string, costPrice, salePrice float64, quantity int) (Product, error) {
	if strings.TrimSpace(name) == "" {
		return Product{}, ErrEmptyName
	}
	if costPrice < 0 || salePrice < 0 {
		return Product{}, ErrInvalidPrice
	}
	if quantity < 0 {
		return Product{}, ErrInvalidQuantity
	}
	p := Product{
		ID:        s.NextID(),
		Name:      strings.TrimSpace(name),
		CostPrice: costPrice,
		SalePrice: salePrice,
		Quantity:  quantity,
	}
	s.products[p.ID] = p
	if err := s.Save(ctx); err != nil {
		return Product{}, err
	}
	return p, nil
}

// Delete removes a product and persists.
func (s *Store) Delete(ctx context.Context, id string) error {
	if _, ok := s.products[id]; !ok {
		return fmt.Errorf("inventory: product %s: %w", id, shared.ErrNotFound)
	}
	delete(s.products, id)
	return s.Save(ctx)
}

// SetSalePrice updates the sale price of a product and persists.
func (s *Store) SetSalePrice(ctx context.Context, id string, salePrice float64) error {
	if salePrice < 0 {
		return ErrInvalidPrice
	}
	p, ok := s.products[id]
	if !ok {
		return fmt.Errorf("inventory: product %s: %w", id, shared.ErrNotFound)
	}
	p.SalePrice = salePrice
	s.products[id] = p
	return s.Save(ctx)
}

// Decrement subtracts qty from the on-hand quantity. The caller persists via
// Save once all decrements of a transaction are applied.
func (s *Store) Decrement(id string, qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	p, ok := s.products[id]
	if !ok {
		return fmt.Errorf("inventory: product %s: %w", id, shared.ErrNotFound)
	}
	if qty > p.Quantity {
		return fmt.Errorf("%w: %s has %d, requested %d", ErrInsufficientStock, p.Name, p.Quantity, qty)
	}
	p.Quantity -= qty
	s.products[id] = p
	return nil
}

// MergeDelivery applies one received-goods line. A product with the same
// name and cost price gains quantity; otherwise a new product is created
// with the sale price at 1.5x cost. Persists immediately.
func (s *Store) MergeDelivery(ctx context.Context, name string, costPrice float64, qty int) (Product, error) {
	if strings.TrimSpace(name) == "" {
		return Product{}, ErrEmptyName
	}
	if costPrice < 0 {
		return Product{}, ErrInvalidPrice
	}
	if qty <= 0 {
		return Product{}, ErrInvalidQuantity
	}
	for id, p := range s.products {
		if p.Name == name && p.CostPrice == costPrice {
			p.Quantity += qty
			s.products[id] = p
			if err := s.Save(ctx); err != nil {
				return Product{}, err
			}
			return p, nil
		}
	}
	p := Product{
		ID:        s.NextID(),
		Name:      name,
		CostPrice: costPrice,
		SalePrice: costPrice * 1.5,
		Quantity:  qty,
	}
	s.products[p.ID] = p
	if err := s.Save(ctx); err != nil {
		return Product{}, err
	}
	return p, nil
}

// LowStock reports whether a product sits below the restock threshold.
func LowStock(p Product, threshold int) bool {
	return p.Quantity < threshold
}
