package ledger

import "time"

// SaleLine is one cart line as it appears in a persisted sale block.
type SaleLine struct {
	Name      string
	Quantity  int
	LineTotal float64
}

// SaleRecord is one finalized sale. Once appended it is immutable history.
type SaleRecord struct {
	InvoiceID       int
	Timestamp       time.Time
	DiscountPercent float64
	Lines           []SaleLine
	Total           float64
}

// CloseOutResult summarises a daily close-out run. ArchivePath is empty when
// the day had no sales (no archive file is written in that case).
type CloseOutResult struct {
	Date        time.Time
	Records     []SaleRecord
	Total       float64
	ArchivePath string
}

// DayReport is one archived day inside a range report.
type DayReport struct {
	Date    time.Time
	Path    string
	Content string
	Total   float64
}

// RangeResult aggregates archived daily files over an inclusive date range.
type RangeResult struct {
	Days  []DayReport
	Total float64
}
