package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"dnf_rate/internal/application"
	"dnf_rate/internal/config"
	"dnf_rate/internal/domain/entity"
	"dnf_rate/internal/domain/service/area"
	"dnf_rate/internal/transport/bot/view"
	"dnf_rate/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

var errNoData = errors.New("no data")

var (
	queryLimit int  //nolint:gochecknoglobals
	queryJSON  bool //nolint:gochecknoglobals
)

var queryCmd = &cobra.Command{ //nolint:gochecknoglobals
	Use:   "query <area>",
	Short: "Prints the best ratio per platform for an area (2, 二, 3a).",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		report, err := query(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if queryJSON {
			return json.NewEncoder(os.Stdout).Encode(report)
		}

		render(report)

		return nil
	},
}

func init() { //nolint:gochecknoinits
	queryCmd.Flags().IntVarP(&queryLimit, "limit", "n", 0, "max platforms to print (0 prints all)")
	queryCmd.Flags().BoolVar(&queryJSON, "json", false, "print the report as JSON")

	rootCmd.AddCommand(queryCmd)
}

func query(ctx context.Context, token string) (entity.Report, error) {
	spec, err := area.Normalize(token)
	if err != nil {
		return entity.Report{}, err
	}

	cfg, err := config.Load()
	if err != nil {
		return entity.Report{}, fmt.Errorf("config.Load: %w", err)
	}

	svc, err := application.NewRateService(cfg, logx.NewSensitiveDataMasker())
	if err != nil {
		return entity.Report{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.Rate.RunTimeout)
	defer cancel()

	report, err := svc.Query(ctx, spec)
	if err != nil {
		return entity.Report{}, errors.New(view.Failure(err))
	}

	if len(report.Platforms) == 0 {
		return entity.Report{}, fmt.Errorf("%w: %s", errNoData, view.NoData(spec.Display))
	}

	if queryLimit > 0 && len(report.Platforms) > queryLimit {
		report.Platforms = report.Platforms[:queryLimit]
	}

	return report, nil
}

func render(report entity.Report) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("DNF跨%s比例", report.Area.Display)
	t.AppendHeader(table.Row{"#", "Platform", "Ratio", "Orders", "Money", "Amount", "Link"})

	for i, p := range report.Platforms {
		t.AppendRow(table.Row{i + 1, p.Platform, p.RatioText, p.Count, number(p.Money), number(p.Amount), p.BuyURL})
	}

	t.AppendFooter(table.Row{"", "", "", "", "", "channels", fmt.Sprintf("%d (skipped %d)", report.Channels, report.Skipped)})
	t.SetCaption("%s", report.SourceURL)
	t.SetStyle(table.StyleRounded)
	t.Render()
}

func number(f *float64) string {
	if f == nil {
		return "-"
	}

	return view.Number(*f)
}
