package yxdr

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"dnf_rate/internal/domain"
	"dnf_rate/pkg/errcodes"
)

// ConfigScriptURL ищет на странице адрес CoinSale_<coin>_<n>_0.js.
// Сначала среди <script src>, затем регуляркой по всему HTML.
// Относительный путь дополняется базовым адресом.
func (c *Client) ConfigScriptURL(html string) (string, error) {
	if html != "" {
		if found := c.scriptFromTags(html); found != "" {
			return found, nil
		}

		if found := c.matchScript(html); found != "" {
			return found, nil
		}
	}

	return "", domain.NewError(
		errcodes.ConfigNotFound,
		"未找到配置脚本（CoinSale_"+c.cfg.CoinNo+"_*.js），可能页面结构已变更",
	)
}

func (c *Client) scriptFromTags(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	var found string

	doc.Find("script[src]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		src, _ := s.Attr("src")
		found = c.matchScript(strings.TrimSpace(src))

		return found == ""
	})

	return found
}

func (c *Client) matchScript(text string) string {
	if m := c.absoluteScriptRe.FindString(text); m != "" {
		return m
	}

	if m := c.relativeScriptRe.FindString(text); m != "" {
		return c.cfg.BaseURL + m
	}

	return ""
}
