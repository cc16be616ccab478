package value

import (
	"bytes"
	"math"
	"strconv"
	"strings"
)

// Number: числовое поле ответа площадки. Принимает JSON-число или
// строку с числом; всё остальное делает значение невалидным.
// Нулевое значение (поле отсутствует) невалидно.
type Number struct {
	value float64
	valid bool
}

func NewNumber(f float64) Number {
	return Number{value: f, valid: isFinite(f)}
}

// Float64 возвращает значение и признак того, что оно конечно.
func (n Number) Float64() (float64, bool) {
	return n.value, n.valid
}

func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)

	switch {
	case string(b) == "null" || string(b) == "false":
		*n = NewNumber(0)
	case string(b) == "true":
		*n = NewNumber(1)
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			*n = Number{}
			return nil
		}
		*n = parseNumber(s)
	default:
		*n = parseNumber(string(b))
	}

	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.valid {
		return []byte("null"), nil
	}

	return []byte(formatNumber(n.value)), nil
}

func parseNumber(s string) Number {
	s = strings.TrimSpace(s)
	if s == "" {
		return NewNumber(0)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Number{}
	}

	return NewNumber(f)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
