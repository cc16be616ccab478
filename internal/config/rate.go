package config

import "time"

type Rate struct {
	BaseURL          string        `env:"RATE_BASE_URL" envDefault:"https://www.yxdr.com" yaml:"base_url" validate:"required,url"`
	CategoryPath     string        `env:"RATE_CATEGORY_PATH" envDefault:"bijiaqi/dnf/youxibi" yaml:"category_path" validate:"required"`
	CategoryID       string        `env:"RATE_CATEGORY_ID" envDefault:"1838" yaml:"category_id" validate:"required,numeric"`
	CoinNo           string        `env:"RATE_COIN_NO" envDefault:"yxb" yaml:"coin_no" validate:"required,alphanum"`
	Extraction       string        `env:"RATE_EXTRACTION" envDefault:"sentinel" yaml:"extraction" validate:"oneof=sentinel json5"`
	Concurrency      int           `env:"RATE_CONCURRENCY" envDefault:"1" yaml:"concurrency" validate:"min=1,max=32"`
	ReportLimit      int           `env:"RATE_REPORT_LIMIT" envDefault:"8" yaml:"report_limit" validate:"min=1"`
	RunTimeout       time.Duration `env:"RATE_RUN_TIMEOUT" envDefault:"60s" yaml:"run_timeout" validate:"min=1s"`
	CloudflareBypass bool          `env:"RATE_CLOUDFLARE_BYPASS" envDefault:"false" yaml:"cloudflare_bypass"`
	// Доп. заголовки ко всем запросам upstream, например Cookie с cf_clearance.
	Headers map[string]string `env:"RATE_HEADERS" envSeparator:";" envKeyValSeparator:":" yaml:"headers"`
}
