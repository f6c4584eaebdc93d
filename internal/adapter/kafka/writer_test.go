package kafka

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/rescue-data-etl/internal/config"
	"github.com/couchcryptid/rescue-data-etl/internal/domain"
)

func TestPublishTable_EmptyTableIsNoOp(t *testing.T) {
	cfg := &config.Config{
		KafkaBrokers:   []string{"localhost:9092"},
		KafkaSinkTopic: "cleaned-animal-rescues",
	}
	w := NewWriter(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	defer w.Close()

	tbl, err := domain.NewTable([]string{domain.ColAnimalGroupParent})
	require.NoError(t, err)

	// No broker is running; an empty table must return before any network call.
	require.NoError(t, w.PublishTable(context.Background(), tbl, time.Now()))
}
