package shared

import (
	"fmt"
	"math"
)

// Round2 rounds a monetary amount to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatAmount renders a monetary amount the way it is persisted and shown.
func FormatAmount(v float64) string {
	return fmt.Sprintf("$%.2f", Round2(v))
}
