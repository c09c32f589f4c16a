package tracking

import (
	"context"
	"errors"
	"strings"

	"shoptrack/internal/errs"
	"shoptrack/internal/ports"
)

// Lookup returns every record filed under the exact asset key. An
// unknown key yields a structurally complete view with empty lists.
func (s *Service) Lookup(ctx context.Context, key string) (AssetView, error) {
	return s.fetchView(ctx, key, ports.MatchExact)
}

// Search is the free-text variant: substring match over the asset key.
func (s *Service) Search(ctx context.Context, q string) (AssetView, error) {
	return s.fetchView(ctx, q, ports.MatchSubstring)
}

func (s *Service) fetchView(ctx context.Context, key string, match ports.KeyMatch) (AssetView, error) {
	if ctx == nil {
		return AssetView{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return AssetView{}, errs.Wrap(err, "check context")
	}
	if s.repo == nil {
		return AssetView{}, errors.New("asset repository is required")
	}

	key = strings.TrimSpace(key)
	history, err := s.repo.FetchByKey(ctx, key, match)
	if err != nil {
		return AssetView{}, errs.Wrap(err, "fetch asset history")
	}
	return viewFromHistory(key, history), nil
}

// RecentIntake reports the newest supply records per class, for the
// workshop's "last three in" display.
type RecentIntake struct {
	Engines    []RecentItem `json:"engines"`
	Generators []RecentItem `json:"generators"`
}

type RecentItem struct {
	Key      string `json:"key"`
	PrevSite string `json:"prev_site"`
}

const recentIntakeLimit = 3

func (s *Service) LastIntake(ctx context.Context) (RecentIntake, error) {
	if ctx == nil {
		return RecentIntake{}, errors.New("context is required")
	}
	if s.repo == nil {
		return RecentIntake{}, errors.New("asset repository is required")
	}

	engines, err := s.repo.LastEngineSupplies(ctx, recentIntakeLimit)
	if err != nil {
		return RecentIntake{}, errs.Wrap(err, "last engine supplies")
	}
	generators, err := s.repo.LastGeneratorSupplies(ctx, recentIntakeLimit)
	if err != nil {
		return RecentIntake{}, errs.Wrap(err, "last generator supplies")
	}

	intake := RecentIntake{Engines: []RecentItem{}, Generators: []RecentItem{}}
	for _, row := range engines {
		intake.Engines = append(intake.Engines, RecentItem{Key: row.Serial, PrevSite: row.PrevSite})
	}
	for _, row := range generators {
		intake.Generators = append(intake.Generators, RecentItem{Key: row.Code, PrevSite: row.PrevSite})
	}
	return intake, nil
}
