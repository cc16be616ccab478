package view_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"dnf_rate/internal/domain"
	"dnf_rate/internal/domain/entity"
	"dnf_rate/internal/transport/bot/view"
	"dnf_rate/pkg/errcodes"
)

func ptr(f float64) *float64 { return &f }

func TestReport(t *testing.T) {
	rq := require.New(t)

	report := entity.Report{
		Area:      entity.AreaSpec{Slug: "kua2", Display: "2"},
		SourceURL: "https://www.yxdr.com/bijiaqi/dnf/youxibi/kua2",
		Platforms: []entity.PlatformBest{
			{Platform: "X", RatioText: "5.0万金币/元", Ratio: 5, Count: 2, BuyURL: "https://x/1", Money: ptr(40), Amount: ptr(200)},
			{Platform: "Y", RatioText: "4.5万金币/元", Ratio: 4.5, Count: 1, Money: ptr(20.5)},
			{Platform: "Z", RatioText: "4.0万金币/元", Ratio: 4, Count: 3},
		},
	}

	want := "DNF 跨2比例（按最低价排序）\n" +
		"X：5.0万金币/元（2单） 参考单：40元 / 200万\n" +
		"链接：https://x/1\n" +
		"Y：4.5万金币/元（1单）\n" +
		"Z：4.0万金币/元（3单）\n" +
		"来源：https://www.yxdr.com/bijiaqi/dnf/youxibi/kua2"

	rq.Equal(want, view.Report(report, 8))

	limited := view.Report(report, 1)
	rq.Contains(limited, "X：")
	rq.NotContains(limited, "Y：")
	rq.Contains(limited, "来源：")
}

func TestMessages(t *testing.T) {
	rq := require.New(t)

	rq.Equal("未解析到跨3A的比例数据，可能页面结构已变更", view.NoData("3A"))
	rq.Equal("跨12正在查询中，请稍候", view.Busy("12"))

	wrapped := fmt.Errorf("fetch landing: %w", domain.NewFetchFailed("请求失败", "u", 503))
	rq.Equal("查询失败：请求失败: 503 Service Unavailable", view.Failure(wrapped))

	rq.Equal("查询失败：boom", view.Failure(errors.New("boom")))
	rq.Equal("查询失败：请求超时", view.Failure(fmt.Errorf("x: %w", context.DeadlineExceeded)))

	parse := domain.NewError(errcodes.ConfigParseError, "解析配置脚本失败")
	rq.Equal("查询失败：解析配置脚本失败", view.Failure(fmt.Errorf("extract: %w", parse)))
}

func TestWatchList(t *testing.T) {
	rq := require.New(t)

	rq.Equal(view.WatchListEmpty, view.WatchList(nil, true))
	rq.Equal("定时推送（运行中）：\n1. 跨2\n2. 跨3A", view.WatchList([]entity.AreaSpec{
		{Slug: "kua2", Display: "2"},
		{Slug: "kua3a", Display: "3A"},
	}, true))
}
