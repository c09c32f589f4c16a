package tracking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"shoptrack/internal/errs"
	"shoptrack/internal/ports"
)

// ExportScope selects which supply registers an export covers.
type ExportScope string

const (
	ScopeEngines    ExportScope = "engines"
	ScopeGenerators ExportScope = "generators"
	ScopeBoth       ExportScope = "both"
)

// ParseExportScope defaults to both when the caller leaves it out.
func ParseExportScope(raw string) (ExportScope, error) {
	switch ExportScope(strings.ToLower(strings.TrimSpace(raw))) {
	case "", ScopeBoth:
		return ScopeBoth, nil
	case ScopeEngines:
		return ScopeEngines, nil
	case ScopeGenerators:
		return ScopeGenerators, nil
	default:
		return "", fmt.Errorf("unsupported export scope %q", raw)
	}
}

// SupplyRegisterWorkbook builds the intake register: one sheet per
// class, rows from the supply tables, optionally limited to a date
// range. Plain tabular output, no styling.
func (s *Service) SupplyRegisterWorkbook(ctx context.Context, scope ExportScope, dateFrom, dateTo string) (*excelize.File, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	if s.repo == nil {
		return nil, errors.New("asset repository is required")
	}

	filter := ports.SupplyListFilter{DateFrom: dateFrom, DateTo: dateTo}
	f := excelize.NewFile()
	first := true

	if scope == ScopeEngines || scope == ScopeBoth {
		rows, err := s.repo.ListEngineSupplies(ctx, filter)
		if err != nil {
			return nil, errs.Wrap(err, "list engine supplies")
		}
		sheet, err := addSheet(f, "Engines", &first)
		if err != nil {
			return nil, err
		}
		if err := writeRow(f, sheet, 1, "Serial", "Type", "Model", "Previous site", "Supply date", "Supplier", "Notes"); err != nil {
			return nil, err
		}
		for i, r := range rows {
			if err := writeRow(f, sheet, i+2, r.Serial, r.EngineType, r.Model, r.PrevSite, r.SupDate, r.Supplier, r.Notes); err != nil {
				return nil, err
			}
		}
	}

	if scope == ScopeGenerators || scope == ScopeBoth {
		rows, err := s.repo.ListGeneratorSupplies(ctx, filter)
		if err != nil {
			return nil, errs.Wrap(err, "list generator supplies")
		}
		sheet, err := addSheet(f, "Generators", &first)
		if err != nil {
			return nil, err
		}
		if err := writeRow(f, sheet, 1, "Code", "Capacity", "Model", "Previous site", "Supply date", "Supplier", "Vendor", "Notes"); err != nil {
			return nil, err
		}
		for i, r := range rows {
			if err := writeRow(f, sheet, i+2, r.Code, r.GenType, r.Model, r.PrevSite, r.SupDate, r.Supplier, r.Vendor, r.Notes); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}

// SearchWorkbook exports the substring search result as one flat
// sheet: kind, key, details, notes per matching supply or spare row.
func (s *Service) SearchWorkbook(ctx context.Context, q string) (*excelize.File, error) {
	view, err := s.Search(ctx, q)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "Search"
	f.SetSheetName("Sheet1", sheet)
	if err := writeRow(f, sheet, 1, "Kind", "Key", "Details", "Notes"); err != nil {
		return nil, err
	}

	row := 2
	for _, r := range view.Engines.Supply {
		if err := writeRow(f, sheet, row, "engine", r.Serial, strings.TrimSpace(r.EngineType+" "+r.Model), r.Notes); err != nil {
			return nil, err
		}
		row++
	}
	for _, r := range view.Generators.Supply {
		if err := writeRow(f, sheet, row, "generator", r.Code, strings.TrimSpace(r.GenType+" "+r.Model), r.Notes); err != nil {
			return nil, err
		}
		row++
	}
	for _, r := range view.Spares {
		if err := writeRow(f, sheet, row, "spare", r.SerialOrCode, fmt.Sprintf("%s x %d", r.PartName, r.Qty), r.Notes); err != nil {
			return nil, err
		}
		row++
	}
	return f, nil
}

// SummaryWorkbook exports the flattened latest-per-category rows.
func (s *Service) SummaryWorkbook(ctx context.Context, q string) (*excelize.File, error) {
	rows, err := s.Summary(ctx, q)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "Summary"
	f.SetSheetName("Sheet1", sheet)
	if err := writeRow(f, sheet, 1,
		"Kind", "Key",
		"Supply type", "Supply model", "Supply supplier", "Supply vendor", "Previous site", "Supply date",
		"Current site", "Issue receiver", "Issue requester", "Issue date",
		"Rehab by", "Rehab type", "Rehab date",
		"Check inspector", "Check description", "Check date",
		"Last spare part"); err != nil {
		return nil, err
	}
	for i, r := range rows {
		if err := writeRow(f, sheet, i+2,
			r.Kind, r.Key,
			r.SupplyType, r.SupplyModel, r.SupplySupplier, r.SupplyVendor, r.SupplyPrevSite, r.SupplyDate,
			r.IssueCurrentSite, r.IssueReceiver, r.IssueRequester, r.IssueDate,
			r.RehabBy, r.RehabType, r.RehabDate,
			r.CheckInspector, r.CheckDescription, r.CheckDate,
			r.SpareLast); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func addSheet(f *excelize.File, name string, first *bool) (string, error) {
	if *first {
		*first = false
		if err := f.SetSheetName("Sheet1", name); err != nil {
			return "", errs.Wrapf(err, "rename sheet %s", name)
		}
		return name, nil
	}
	if _, err := f.NewSheet(name); err != nil {
		return "", errs.Wrapf(err, "create sheet %s", name)
	}
	return name, nil
}

func writeRow(f *excelize.File, sheet string, row int, values ...any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return errs.Wrap(err, "resolve cell")
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return errs.Wrapf(err, "write row %d on %s", row, sheet)
	}
	return nil
}
