// Package yxdr: клиент сайта-агрегатора yxdr.com: страницы, конфигурационный
// скрипт, выдача секрета и подписанный запрос цен.
package yxdr

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/go-resty/resty/v2"
	jsoniter "github.com/json-iterator/go"

	"dnf_rate/internal/domain"
	"dnf_rate/pkg/contextx"
	"dnf_rate/pkg/errcodes"
	"dnf_rate/pkg/logx"
)

var (
	json   = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip
	logger = contextx.LoggerFromContextOrDefault          //nolint:gochecknoglobals
)

const (
	UserAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36"
	AcceptLanguage = "zh-CN,zh;q=0.9"

	acceptHTML   = "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8"
	acceptScript = "text/plain,*/*;q=0.8"
	acceptJSON   = "application/json, text/plain, */*"

	secretPath   = "/bijia/coinsalesecret"
	coinsalePath = "/bijia/coinsale"
)

type Config struct {
	BaseURL      string // https://www.yxdr.com
	CategoryPath string // bijiaqi/dnf/youxibi
	CategoryID   string // 1838
	CoinNo       string // yxb
}

type Client struct {
	http *resty.Client
	cfg  Config

	absoluteScriptRe *regexp.Regexp
	relativeScriptRe *regexp.Regexp
}

func New(httpClient *http.Client, cfg Config) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("url.Parse %q: %w", cfg.BaseURL, err)
	}

	if base.Host == "" {
		return nil, fmt.Errorf("base url %q: missing host", cfg.BaseURL) //nolint:err113
	}

	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	cfg.CategoryPath = strings.Trim(cfg.CategoryPath, "/")

	scriptPath := fmt.Sprintf(`/cate/%s/CoinSale_%s_\d+_0\.js(?:\?ver=\d+)?`,
		regexp.QuoteMeta(cfg.CategoryID), regexp.QuoteMeta(cfg.CoinNo))

	return &Client{
		http:             resty.NewWithClient(httpClient),
		cfg:              cfg,
		absoluteScriptRe: regexp.MustCompile(`(?i)https?://` + regexp.QuoteMeta(base.Host) + scriptPath),
		relativeScriptRe: regexp.MustCompile(`(?i)` + scriptPath),
	}, nil
}

// LandingURL: страница сравнения цен для кросс-сервера.
func (c *Client) LandingURL(slug string) string {
	return c.cfg.BaseURL + "/" + c.cfg.CategoryPath + "/" + slug
}

// FetchHTML загружает страницу. Не-2xx: FetchFailed, пустое тело: EmptyResponse.
func (c *Client) FetchHTML(ctx context.Context, pageURL string) (string, error) {
	return c.fetch(ctx, pageURL, acceptHTML, "请求失败", "页面内容为空")
}

// FetchScript загружает конфигурационный скрипт.
func (c *Client) FetchScript(ctx context.Context, scriptURL string) (string, error) {
	return c.fetch(ctx, scriptURL, acceptScript, "请求配置失败", "配置脚本内容为空")
}

func (c *Client) fetch(ctx context.Context, target, accept, failMsg, emptyMsg string) (string, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeaders(map[string]string{
			"User-Agent":      UserAgent,
			"Accept":          accept,
			"Accept-Language": AcceptLanguage,
			"Cache-Control":   "no-cache",
			"Pragma":          "no-cache",
		}).
		Get(target)
	if err != nil {
		return "", domain.WrapError(err, errcodes.FetchFailed, failMsg)
	}

	if !resp.IsSuccess() {
		return "", domain.NewFetchFailed(failMsg, target, resp.StatusCode())
	}

	body := resp.Body()
	if len(body) == 0 {
		return "", domain.NewError(errcodes.EmptyResponse, emptyMsg)
	}

	logger(ctx).Debug("page fetched",
		slog.String(logx.FieldURL, target),
		slog.Int(logx.FieldResponseSize, len(body)),
	)

	return string(body), nil
}

// postJSON возвращает nil без ошибки, если тело ответа пустое.
func (c *Client) postJSON(ctx context.Context, target string, body any) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeaders(map[string]string{
			"Content-Type":    "application/json",
			"User-Agent":      UserAgent,
			"Accept":          acceptJSON,
			"Accept-Language": AcceptLanguage,
		}).
		SetBody(payload).
		Post(target)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.FetchFailed, "请求失败")
	}

	if !resp.IsSuccess() {
		return nil, domain.NewFetchFailed("请求失败", target, resp.StatusCode())
	}

	if len(resp.Body()) == 0 {
		return nil, nil
	}

	return resp.Body(), nil
}
