package value

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
)

// Opaque: JSON-скаляр, который конвейер передаёт дальше без интерпретации.
// Хранит исходное представление, строковую форму (как её выдал бы
// String() в JavaScript) и «истинность»: "", 0, false, null: ложны.
type Opaque struct {
	raw    []byte
	text   string
	truthy bool
}

// OpaqueString создаёт строковое значение.
func OpaqueString(s string) Opaque {
	raw, _ := json.Marshal(s) //nolint:errchkjson

	return Opaque{raw: raw, text: s, truthy: s != ""}
}

// OpaqueNumber создаёт числовое значение.
func OpaqueNumber(f float64) Opaque {
	text := formatNumber(f)

	return Opaque{raw: []byte(text), text: text, truthy: f != 0 && !math.IsNaN(f)}
}

func (o Opaque) String() string {
	return o.text
}

func (o Opaque) Truthy() bool {
	return o.truthy
}

func (o *Opaque) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	raw := append([]byte(nil), b...)

	switch {
	case len(b) == 0 || string(b) == "null":
		*o = Opaque{raw: raw}
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("opaque string: %w", err)
		}
		*o = Opaque{raw: raw, text: s, truthy: s != ""}
	case string(b) == "true" || string(b) == "false":
		*o = Opaque{raw: raw, text: string(b), truthy: string(b) == "true"}
	case b[0] == '{' || b[0] == '[':
		*o = Opaque{raw: raw, text: string(b), truthy: true}
	default:
		f, err := strconv.ParseFloat(string(b), 64)
		if err != nil {
			return fmt.Errorf("opaque number %q: %w", b, err)
		}
		*o = Opaque{raw: raw, text: formatNumber(f), truthy: f != 0}
	}

	return nil
}

// MarshalJSON возвращает исходное представление; пустое значение: null.
func (o Opaque) MarshalJSON() ([]byte, error) {
	if len(o.raw) == 0 {
		return []byte("null"), nil
	}

	return o.raw, nil
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
