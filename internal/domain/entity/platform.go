package entity

// PlatformBest: лучшее предложение платформы за один прогон.
type PlatformBest struct {
	Platform  string   `json:"platform"`
	RatioText string   `json:"ratioText"`
	Ratio     float64  `json:"bl"`
	Count     int      `json:"count"` // все валидные заказы платформы, не только лучший
	BuyURL    string   `json:"buyUrl"`
	Money     *float64 `json:"money"`
	Amount    *float64 `json:"amount"`
}

// Report: результат одного прогона.
type Report struct {
	Area      AreaSpec       `json:"area"`
	SourceURL string         `json:"sourceUrl"`
	Platforms []PlatformBest `json:"platforms"`
	Channels  int            `json:"channels"`
	Skipped   int            `json:"skipped"`
}
