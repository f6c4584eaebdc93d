// Package kafka publishes cleaned rows to the sink topic.
package kafka

import (
	"context"
	"log/slog"
	"time"

	"github.com/couchcryptid/rescue-data-etl/internal/config"
	"github.com/couchcryptid/rescue-data-etl/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
)

// Writer produces cleaned records to a Kafka topic.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured sink topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaSinkTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// PublishTable serializes every row of the cleaned table and publishes the
// batch in a single WriteMessages call. Keys are deterministic record IDs,
// so replaying a run overwrites rather than duplicates downstream.
func (w *Writer) PublishTable(ctx context.Context, tbl *domain.Table, processedAt time.Time) error {
	if tbl.NumRows() == 0 {
		return nil
	}
	columns := tbl.Columns()
	msgs := make([]kafkago.Message, 0, tbl.NumRows())
	for i := 0; i < tbl.NumRows(); i++ {
		row := tbl.Row(i)
		value, err := domain.RecordJSON(columns, row)
		if err != nil {
			return err
		}
		id := domain.RecordID(columns, row)
		msgs = append(msgs, kafkago.Message{
			Key:   []byte(id),
			Value: value,
			Headers: []kafkago.Header{
				{Key: "record_id", Value: []byte(id)},
				{Key: "processed_at", Value: []byte(processedAt.Format(time.RFC3339))},
			},
		})
	}

	w.logger.Info("publishing cleaned records", "topic", w.writer.Topic, "count", len(msgs))
	return w.writer.WriteMessages(ctx, msgs...)
}

func (w *Writer) Close() error {
	return w.writer.Close()
}
