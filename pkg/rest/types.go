// Данный файл должен быть сгенерирован из openapi спецификации и называться types.gen.go
package rest

// RateRequest Запрос отчёта по зоне
type RateRequest struct {
	// Area Номер зоны: «2», «二», «3a», «三B»
	Area string `json:"area" validate:"required"`

	// Limit Сколько платформ вернуть (0: все)
	Limit int `json:"limit" validate:"min=0"`
}

// Report Отчёт по зоне
type Report struct {
	Slug      string     `json:"slug"`
	Display   string     `json:"display"`
	SourceURL string     `json:"sourceUrl"`
	Channels  int        `json:"channels"`
	Skipped   int        `json:"skipped"`
	Platforms []Platform `json:"platforms"`
}

// Platform Лучшее предложение платформы
type Platform struct {
	Platform  string   `json:"platform"`
	Ratio     float64  `json:"bl"`
	RatioText string   `json:"ratioText"`
	Count     int      `json:"count"`
	BuyURL    string   `json:"buyUrl,omitempty"`
	Money     *float64 `json:"money,omitempty"`
	Amount    *float64 `json:"amount,omitempty"`
}

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке (для отображения в UI в будущем)
	Message string `json:"message"`

	// SupportID Идентификатор запроса для поддержки
	SupportID string `json:"supportId"`
}

// ErrorCode Код ошибки
type ErrorCode string
