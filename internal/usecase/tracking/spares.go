package tracking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"shoptrack/internal/domain/asset"
	"shoptrack/internal/errs"
	"shoptrack/internal/ports"
)

var (
	errSparePartName = fmt.Errorf("%w: spare part name is required", asset.ErrInvalidRecord)
	errSpareQty      = fmt.Errorf("%w: spare part quantity must be positive", asset.ErrInvalidRecord)
)

// CreateSparePart files one consumption record against an asset key.
func (s *Service) CreateSparePart(ctx context.Context, sp asset.SparePart) (asset.SparePart, error) {
	if ctx == nil {
		return asset.SparePart{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return asset.SparePart{}, errs.Wrap(err, "check context")
	}
	if s.repo == nil {
		return asset.SparePart{}, errors.New("asset repository is required")
	}
	if s.uow == nil {
		return asset.SparePart{}, errors.New("unit of work is required")
	}

	sp.SerialOrCode = strings.TrimSpace(sp.SerialOrCode)
	if sp.SerialOrCode == "" {
		return asset.SparePart{}, asset.ErrMissingKey
	}
	if strings.TrimSpace(sp.PartName) == "" {
		return asset.SparePart{}, errSparePartName
	}
	if sp.Qty <= 0 {
		return asset.SparePart{}, errSpareQty
	}
	if sp.UsedAt == "" {
		sp.UsedAt = s.today()
	}
	if sp.CreatedAt == "" {
		sp.CreatedAt = s.timestamp()
	}

	if err := s.uow.WithTx(ctx, func(txCtx context.Context) error {
		return s.repo.Insert(txCtx, sp)
	}); err != nil {
		return asset.SparePart{}, errs.Wrap(err, "persist spare part")
	}
	return sp, nil
}

// SpareListFilter narrows the spare-part listing; zero values match
// everything.
type SpareListFilter struct {
	ItemKind     string
	SerialOrCode string
	DateFrom     string
	DateTo       string
}

func (s *Service) ListSpareParts(ctx context.Context, filter SpareListFilter) ([]asset.SparePart, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	if s.repo == nil {
		return nil, errors.New("asset repository is required")
	}

	rows, err := s.repo.ListSpareParts(ctx, ports.SpareFilter{
		ItemKind:     strings.TrimSpace(filter.ItemKind),
		SerialOrCode: strings.TrimSpace(filter.SerialOrCode),
		UsedFrom:     strings.TrimSpace(filter.DateFrom),
		UsedTo:       strings.TrimSpace(filter.DateTo),
	})
	if err != nil {
		return nil, errs.Wrap(err, "list spare parts")
	}
	return orEmpty(rows), nil
}
