// Package view: тексты ответов бота.
package view

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"dnf_rate/internal/domain"
	"dnf_rate/internal/domain/entity"
)

const (
	InvalidArea = "未识别到跨区编号，请使用格式：#DNF跨二比例"

	StartMessage = "DNF 跨区金币比例查询\n\n" +
		"#DNF跨二比例 或 /rate 二 — 查询跨区比例\n" +
		"支持：数字（2、12）、中文（二、十二）、3A / 3B"

	WatchUsage        = "用法：/watchadd 二"
	WatchRemoveUsage  = "用法：/watchremove 二"
	WatchListEmpty    = "定时推送列表为空"
	WatchCleared      = "定时推送列表已清空"
	WatchStarted      = "定时推送已启动"
	WatchStopped      = "定时推送已停止"
	WatchAlreadyOn    = "定时推送已在运行"
	WatchAlreadyOff   = "定时推送未运行"
	WatchNotInList    = "跨区不在列表中"
	WatchAlreadyAdded = "跨区已在列表中"
)

func NoData(display string) string {
	return fmt.Sprintf("未解析到跨%s的比例数据，可能页面结构已变更", display)
}

func Busy(display string) string {
	return fmt.Sprintf("跨%s正在查询中，请稍候", display)
}

// Failure: сообщение об ошибке прогона. Для доменных ошибок берётся их
// собственный текст без префиксов обёрток.
func Failure(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return "查询失败：请求超时"
	}

	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		return "查询失败：" + appErr.Error()
	}

	return "查询失败：" + err.Error()
}

// Report рендерит не больше limit платформ; limit <= 0: без ограничения.
func Report(report entity.Report, limit int) string {
	platforms := report.Platforms
	if limit > 0 && len(platforms) > limit {
		platforms = platforms[:limit]
	}

	lines := make([]string, 0, len(platforms)*2+2) //nolint:mnd
	lines = append(lines, fmt.Sprintf("DNF 跨%s比例（按最低价排序）", report.Area.Display))

	for _, p := range platforms {
		line := fmt.Sprintf("%s：%s（%d单）", p.Platform, p.RatioText, p.Count)
		if p.Money != nil && p.Amount != nil {
			line += fmt.Sprintf(" 参考单：%s元 / %s万", Number(*p.Money), Number(*p.Amount))
		}

		lines = append(lines, line)

		if p.BuyURL != "" {
			lines = append(lines, "链接："+p.BuyURL)
		}
	}

	lines = append(lines, "来源："+report.SourceURL)

	return strings.Join(lines, "\n")
}

// Number печатает число без лишних нулей: 40, 40.5.
func Number(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func WatchList(areas []entity.AreaSpec, running bool) string {
	if len(areas) == 0 {
		return WatchListEmpty
	}

	state := "已停止"
	if running {
		state = "运行中"
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, "定时推送（%s）：\n", state)

	for i, a := range areas {
		fmt.Fprintf(&sb, "%d. 跨%s\n", i+1, a.Display)
	}

	return strings.TrimRight(sb.String(), "\n")
}

func WatchAdded(a entity.AreaSpec) string {
	return fmt.Sprintf("已添加跨%s", a.Display)
}

func WatchRemoved(a entity.AreaSpec) string {
	return fmt.Sprintf("已移除跨%s", a.Display)
}
