package tracking

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"shoptrack/internal/bootstrap/logging"
	"shoptrack/internal/domain/asset"
	"shoptrack/internal/errs"
)

// BatchItem is one record from the offline client: a category tag and
// the raw field map.
type BatchItem struct {
	Category string         `json:"category"`
	Fields   map[string]any `json:"fields"`
}

// BatchReport counts outcomes. Per-item validation problems are
// absorbed as skips; the response never explains individual skips.
type BatchReport struct {
	BatchID string `json:"batch_id"`
	Saved   int    `json:"saved"`
	Skipped int    `json:"skipped"`
}

// SyncBatch persists each recognized item as a new record. Unknown
// categories, undecodable fields, and missing asset keys skip the item
// and keep going. Each item commits in its own transaction, so a
// store-level failure mid-batch leaves earlier items durable and
// propagates as the operation's error.
func (s *Service) SyncBatch(ctx context.Context, items []BatchItem) (BatchReport, error) {
	if ctx == nil {
		return BatchReport{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return BatchReport{}, errs.Wrap(err, "check context")
	}
	if s.repo == nil {
		return BatchReport{}, errors.New("asset repository is required")
	}
	if s.uow == nil {
		return BatchReport{}, errors.New("unit of work is required")
	}

	report := BatchReport{BatchID: uuid.NewString()}
	logCtx := logging.WithAttrs(ctx,
		slog.String("component", "tracking.sync"),
		slog.String("batch_id", report.BatchID))

	for _, item := range items {
		cat, err := asset.ParseCategory(item.Category)
		if err != nil {
			report.Skipped++
			logging.Warn(logCtx, "batch item skipped",
				slog.String("category", item.Category),
				slog.Any("err", errs.Loggable(err)))
			continue
		}

		rec, err := decodeRecord(cat, item.Fields)
		if err != nil {
			report.Skipped++
			logging.Warn(logCtx, "batch item skipped",
				slog.String("category", string(cat)),
				slog.Any("err", errs.Loggable(err)))
			continue
		}
		if err := asset.Validate(rec); err != nil {
			report.Skipped++
			logging.Warn(logCtx, "batch item skipped",
				slog.String("category", string(cat)),
				slog.Any("err", errs.Loggable(err)))
			continue
		}

		rec = withCreatedAt(rec, s.timestamp())
		err = s.uow.WithTx(ctx, func(txCtx context.Context) error {
			return s.repo.Insert(txCtx, rec)
		})
		if err != nil {
			// Store-level failure: earlier items stay committed.
			return report, errs.Wrapf(err, "persist %s batch item", cat)
		}
		report.Saved++
	}

	logging.Info(logCtx, "batch sync finished",
		slog.Int("saved", report.Saved),
		slog.Int("skipped", report.Skipped))
	return report, nil
}
