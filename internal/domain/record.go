package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// RecordID produces a deterministic ID from a row's cells. Deterministic
// IDs keep downstream upserts idempotent and make reruns replay-safe:
// cleaning the same input twice yields the same keys.
func RecordID(columns []string, row []any) string {
	var b strings.Builder
	for i, cell := range row {
		fmt.Fprintf(&b, "%s=%s|", columns[i], cellKey(cell))
	}
	hash := sha256.Sum256([]byte(b.String()))
	return "rescue-" + hex.EncodeToString(hash[:8])
}

// RecordJSON marshals a row into a column→value JSON object. Timestamps
// encode as RFC 3339, ordered categoricals as their labels, nulls as JSON
// null.
func RecordJSON(columns []string, row []any) ([]byte, error) {
	obj := make(map[string]any, len(columns))
	for i, name := range columns {
		obj[name] = row[i]
	}
	data, err := json.Marshal(obj)
	if err != nil {
		return nil, fmt.Errorf("serialize record: %w", err)
	}
	return data, nil
}

// cellKey renders a cell into a stable, type-tagged string so that, e.g.,
// the string "1" and the number 1 never collide in a record ID.
func cellKey(cell any) string {
	switch v := cell.(type) {
	case nil:
		return "null"
	case time.Time:
		return "time:" + v.Format(time.RFC3339)
	default:
		return fmt.Sprintf("%T:%v", v, v)
	}
}
