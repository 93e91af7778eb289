package enum

import "fmt"

// DocumentKind identifies a folio sequence. Each kind keeps its own
// per-year counter row in the contadores table.
type DocumentKind string

const (
	KindSale       DocumentKind = "ventas"
	KindSettlement DocumentKind = "liquidaciones"
)

func (k DocumentKind) String() string {
	return string(k)
}

// CounterName returns the counter row name for this kind in a given year,
// e.g. "ventas_2026".
func (k DocumentKind) CounterName(year int) string {
	return fmt.Sprintf("%s_%d", k, year)
}
