package pipeline

import (
	"fmt"
	"strings"
	"time"

	"github.com/couchcryptid/rescue-data-etl/internal/domain"
)

// Deduplicator removes rows that are exact duplicates across all columns
// at the time the pass runs. The first occurrence in row order is kept;
// the order of surviving rows is preserved.
type Deduplicator struct{}

// NewDeduplicator creates the pass.
func NewDeduplicator() *Deduplicator {
	return &Deduplicator{}
}

func (p *Deduplicator) Name() string { return "deduplicator" }

func (p *Deduplicator) Apply(tbl *domain.Table) error {
	seen := make(map[string]struct{}, tbl.NumRows())
	tbl.Filter(func(row []any) bool {
		key := rowKey(row)
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
		return true
	})
	return nil
}

// rowKey renders every cell with a type tag so values of different types
// that print alike never collide.
func rowKey(row []any) string {
	var b strings.Builder
	for _, cell := range row {
		switch v := cell.(type) {
		case nil:
			b.WriteString("null")
		case time.Time:
			b.WriteString(v.Format(time.RFC3339Nano))
		default:
			fmt.Fprintf(&b, "%T:%v", v, v)
		}
		b.WriteByte(0x1f)
	}
	return b.String()
}
