package pipeline

import (
	"strings"

	"github.com/couchcryptid/rescue-data-etl/internal/domain"
)

// CategoricalNormalizer lowercases a free-text categorical column so that
// case variants ("Cat", "cat", "CAT") collapse into one category. Nulls
// pass through; the pass is idempotent.
type CategoricalNormalizer struct {
	column string
}

// NewCategoricalNormalizer creates the pass for the given column.
func NewCategoricalNormalizer(column string) *CategoricalNormalizer {
	return &CategoricalNormalizer{column: column}
}

func (p *CategoricalNormalizer) Name() string { return "categorical_normalizer" }

func (p *CategoricalNormalizer) Apply(tbl *domain.Table) error {
	idx, ok := tbl.ColumnIndex(p.column)
	if !ok {
		return &domain.MissingColumnError{Pass: p.Name(), Column: p.column}
	}
	for i := 0; i < tbl.NumRows(); i++ {
		if s, ok := tbl.At(i, idx).(string); ok {
			tbl.Set(i, idx, strings.ToLower(s))
		}
	}
	return nil
}
