package rate

import (
	"slices"
	"strconv"
	"strings"

	"dnf_rate/internal/domain/entity"
)

const ratioSuffix = "万金币/元"

// Aggregator сводит заказы к лучшему предложению на платформу.
// Не потокобезопасен: один экземпляр на прогон.
type Aggregator struct {
	index     map[string]int
	platforms []entity.PlatformBest
}

func NewAggregator() *Aggregator {
	return &Aggregator{index: make(map[string]int)}
}

// Add учитывает заказы платформы. Невалидные заказы не попадают ни в
// count, ни в выбор лучшего. Лучший меняется только при строго большем bl.
func (a *Aggregator) Add(platform string, listings []entity.Listing) {
	for _, listing := range listings {
		bl, ok := listing.Ratio()
		if !ok {
			continue
		}

		i, exists := a.index[platform]
		if !exists {
			i = len(a.platforms)
			a.index[platform] = i
			a.platforms = append(a.platforms, entity.PlatformBest{Platform: platform})
		}

		best := &a.platforms[i]
		best.Count++

		if bl > best.Ratio {
			money, _ := listing.Money.Float64()
			amount, _ := listing.Amount.Float64()

			best.Ratio = bl
			best.RatioText = RatioText(bl)
			best.BuyURL = listing.BuyURL
			best.Money = &money
			best.Amount = &amount
		}
	}
}

// Result: платформы с bl > 0 по убыванию bl; при равенстве сохраняется
// порядок первого появления.
func (a *Aggregator) Result() []entity.PlatformBest {
	result := make([]entity.PlatformBest, 0, len(a.platforms))

	for _, p := range a.platforms {
		if p.Ratio > 0 {
			result = append(result, p)
		}
	}

	slices.SortStableFunc(result, func(x, y entity.PlatformBest) int {
		switch {
		case x.Ratio > y.Ratio:
			return -1
		case x.Ratio < y.Ratio:
			return 1
		default:
			return 0
		}
	})

	return result
}

// RatioText печатает bl минимум с одним знаком после точки: 5.0万金币/元.
func RatioText(bl float64) string {
	s := strconv.FormatFloat(bl, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s + ratioSuffix
}
