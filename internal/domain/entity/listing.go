package entity

import (
	"math"

	"dnf_rate/internal/domain/value"
)

// Listing: один заказ из ответа площадки.
type Listing struct {
	Amount value.Number
	Money  value.Number
	BuyURL string
}

// Ratio возвращает bl = round(Amount/Money*100)/100 и признак валидности.
// Невалидны: нечисловые поля, Money <= 0, bl <= 0.
func (l Listing) Ratio() (float64, bool) {
	amount, ok := l.Amount.Float64()
	if !ok {
		return 0, false
	}

	money, ok := l.Money.Float64()
	if !ok || money <= 0 {
		return 0, false
	}

	bl := math.Floor(amount/money*100+0.5) / 100 //nolint:mnd
	if math.IsNaN(bl) || math.IsInf(bl, 0) || bl <= 0 {
		return 0, false
	}

	return bl, true
}
