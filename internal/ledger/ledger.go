package ledger

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/verdepos/verdepos/internal/shared"
)

const (
	timestampLayout = "2006-01-02 15:04:05"
	dateLayout      = "2006-01-02"

	labelDate     = "Fecha: "
	labelInvoice  = "ID Factura: "
	labelDiscount = "Descuento: "
	labelProduct  = "Producto: "
	labelTotal    = "Total a pagar: "

	dailyTotalLabel = "Total de ventas del día: "
	dailyFilePrefix = "ventas_dia_"
)

var blockSeparator = strings.Repeat("=", 50)

// Ledger is the append-only sales history file plus its per-day archives.
// Close-out does not mark ledger entries as consumed; a second run over the
// same date re-reads the live ledger and rewrites the day file.
type Ledger struct {
	path     string
	dailyDir string
}

// NewLedger builds a Ledger over the given file and daily archive directory.
func NewLedger(path, dailyDir string) *Ledger {
	return &Ledger{path: path, dailyDir: dailyDir}
}

// Append writes one sale block to the end of the ledger file.
func (l *Ledger) Append(ctx context.Context, rec SaleRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	file, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("ledger: open %s: %w", l.path, err)
	}
	defer func() { _ = file.Close() }()
	if _, err := file.WriteString(formatRecord(rec)); err != nil {
		return fmt.Errorf("ledger: append %s: %w", l.path, err)
	}
	return nil
}

// All parses every sale block in the ledger. Missing file means no sales.
func (l *Ledger) All(ctx context.Context) ([]SaleRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(l.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ledger: read %s: %w", l.path, err)
	}
	return parseRecords(string(data))
}

// CloseOut selects ledger entries whose date matches, sums their totals and
// archives them to a per-day file. A day without sales writes no file.
func (l *Ledger) CloseOut(ctx context.Context, date time.Time) (CloseOutResult, error) {
	records, err := l.All(ctx)
	if err != nil {
		return CloseOutResult{}, err
	}
	day := date.Format(dateLayout)
	result := CloseOutResult{Date: date}
	for _, rec := range records {
		if rec.Timestamp.Format(dateLayout) != day {
			continue
		}
		result.Records = append(result.Records, rec)
		result.Total = shared.Round2(result.Total + rec.Total)
	}
	if len(result.Records) == 0 {
		return result, nil
	}

	if err := os.MkdirAll(l.dailyDir, 0o755); err != nil {
		return CloseOutResult{}, fmt.Errorf("ledger: create %s: %w", l.dailyDir, err)
	}
	var b strings.Builder
	for _, rec := range result.Records {
		b.WriteString(formatRecord(rec))
	}
	b.WriteString(dailyTotalLabel)
	b.WriteString(fmt.Sprintf("$%.2f\n", result.Total))

	path := filepath.Join(l.dailyDir, dailyFilePrefix+day+".txt")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return CloseOutResult{}, fmt.Errorf("ledger: write %s: %w", path, err)
	}
	result.ArchivePath = path
	return result, nil
}

// RangeReport reads archived daily files whose filename date falls within
// [start, end] inclusive and sums their precomputed daily totals.
func (l *Ledger) RangeReport(ctx context.Context, start, end time.Time) (RangeResult, error) {
	if err := ctx.Err(); err != nil {
		return RangeResult{}, err
	}
	entries, err := os.ReadDir(l.dailyDir)
	if os.IsNotExist(err) {
		return RangeResult{}, nil
	}
	if err != nil {
		return RangeResult{}, fmt.Errorf("ledger: read %s: %w", l.dailyDir, err)
	}

	from := start.Format(dateLayout)
	to := end.Format(dateLayout)
	var result RangeResult
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, dailyFilePrefix) || !strings.HasSuffix(name, ".txt") {
			continue
		}
		day := strings.TrimSuffix(strings.TrimPrefix(name, dailyFilePrefix), ".txt")
		date, err := time.Parse(dateLayout, day)
		if err != nil {
			continue
		}
		if day < from || day > to {
			continue
		}
		path := filepath.Join(l.dailyDir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return RangeResult{}, fmt.Errorf("ledger: read %s: %w", path, err)
		}
		total, err := parseDailyTotal(string(data))
		if err != nil {
			return RangeResult{}, fmt.Errorf("ledger: %s: %w", path, err)
		}
		result.Days = append(result.Days, DayReport{Date: date, Path: path, Content: string(data), Total: total})
		result.Total = shared.Round2(result.Total + total)
	}
	sort.Slice(result.Days, func(i, j int) bool { return result.Days[i].Date.Before(result.Days[j].Date) })
	return result, nil
}

func formatRecord(rec SaleRecord) string {
	var b strings.Builder
	b.WriteString(labelDate + rec.Timestamp.Format(timestampLayout) + "\n")
	b.WriteString(labelInvoice + strconv.Itoa(rec.InvoiceID) + "\n")
	b.WriteString(labelDiscount + formatPercent(rec.DiscountPercent) + "%\n")
	for _, line := range rec.Lines {
		b.WriteString(fmt.Sprintf("%s%s x%d - Total: $%.2f\n", labelProduct, line.Name, line.Quantity, line.LineTotal))
	}
	b.WriteString(fmt.Sprintf("%s$%.2f\n", labelTotal, rec.Total))
	b.WriteString(blockSeparator + "\n")
	return b.String()
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseRecords(content string) ([]SaleRecord, error) {
	var records []SaleRecord
	var block []string
	flush := func() error {
		if len(block) == 0 {
			return nil
		}
		rec, err := parseBlock(block)
		if err != nil {
			return err
		}
		records = append(records, rec)
		block = nil
		return nil
	}
	for _, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(shared.SanitizeLine(raw))
		if line == "" {
			continue
		}
		if strings.Trim(line, "=") == "" {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		block = append(block, line)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return records, nil
}

func parseBlock(lines []string) (SaleRecord, error) {
	var rec SaleRecord
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, labelDate):
			ts, err := time.Parse(timestampLayout, strings.TrimPrefix(line, labelDate))
			if err != nil {
				return SaleRecord{}, fmt.Errorf("timestamp: %w", err)
			}
			rec.Timestamp = ts
		case strings.HasPrefix(line, labelInvoice):
			id, err := strconv.Atoi(strings.TrimPrefix(line, labelInvoice))
			if err != nil {
				return SaleRecord{}, fmt.Errorf("invoice id: %w", err)
			}
			rec.InvoiceID = id
		case strings.HasPrefix(line, labelDiscount):
			raw := strings.TrimSuffix(strings.TrimPrefix(line, labelDiscount), "%")
			pct, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return SaleRecord{}, fmt.Errorf("discount: %w", err)
			}
			rec.DiscountPercent = pct
		case strings.HasPrefix(line, labelProduct):
			sl, err := parseSaleLine(strings.TrimPrefix(line, labelProduct))
			if err != nil {
				return SaleRecord{}, err
			}
			rec.Lines = append(rec.Lines, sl)
		case strings.HasPrefix(line, labelTotal):
			total, err := parseAmount(strings.TrimPrefix(line, labelTotal))
			if err != nil {
				return SaleRecord{}, fmt.Errorf("total: %w", err)
			}
			rec.Total = total
		}
	}
	if rec.Timestamp.IsZero() {
		return SaleRecord{}, fmt.Errorf("block missing %q line", strings.TrimSpace(labelDate))
	}
	return rec, nil
}

// parseSaleLine decodes "name xqty - Total: $amount". The quantity marker is
// anchored at the end so product names containing " x" stay intact.
func parseSaleLine(s string) (SaleLine, error) {
	idx := strings.LastIndex(s, " - Total: ")
	if idx < 0 {
		return SaleLine{}, fmt.Errorf("sale line %q: missing total", s)
	}
	total, err := parseAmount(s[idx+len(" - Total: "):])
	if err != nil {
		return SaleLine{}, fmt.Errorf("sale line %q: %w", s, err)
	}
	head := s[:idx]
	xi := strings.LastIndex(head, " x")
	if xi < 0 {
		return SaleLine{}, fmt.Errorf("sale line %q: missing quantity", s)
	}
	qty, err := strconv.Atoi(head[xi+2:])
	if err != nil {
		return SaleLine{}, fmt.Errorf("sale line %q: quantity: %w", s, err)
	}
	return SaleLine{Name: head[:xi], Quantity: qty, LineTotal: total}, nil
}

func parseAmount(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimPrefix(strings.TrimSpace(s), "$"), 64)
}

func parseDailyTotal(content string) (float64, error) {
	// The label carries a non-ASCII rune, so both sides are sanitized the
	// same way before comparing.
	want := shared.SanitizeLine(dailyTotalLabel)
	for _, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(shared.SanitizeLine(raw))
		if strings.HasPrefix(line, want) {
			return parseAmount(strings.TrimPrefix(line, want))
		}
	}
	return 0, fmt.Errorf("missing daily total line")
}
