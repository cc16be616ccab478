package server

import (
	"github.com/samber/lo"

	"dnf_rate/internal/domain/entity"
	"dnf_rate/pkg/rest"
)

func newRESTReport(report entity.Report, limit int) rest.Report {
	platforms := report.Platforms
	if limit > 0 && len(platforms) > limit {
		platforms = platforms[:limit]
	}

	return rest.Report{
		Slug:      report.Area.Slug,
		Display:   report.Area.Display,
		SourceURL: report.SourceURL,
		Channels:  report.Channels,
		Skipped:   report.Skipped,
		Platforms: lo.Map(platforms, func(p entity.PlatformBest, _ int) rest.Platform {
			return newRESTPlatform(p)
		}),
	}
}

func newRESTPlatform(p entity.PlatformBest) rest.Platform {
	return rest.Platform{
		Platform:  p.Platform,
		Ratio:     p.Ratio,
		RatioText: p.RatioText,
		Count:     p.Count,
		BuyURL:    p.BuyURL,
		Money:     p.Money,
		Amount:    p.Amount,
	}
}
