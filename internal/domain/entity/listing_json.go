package entity

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// UnmarshalJSON читает Amount, Money и первую непустую ссылку из
// BuyUrl, buyUrl, url. Ключи сравниваются точно. Элемент, не являющийся
// объектом, даёт невалидный Listing без ошибки.
func (l *Listing) UnmarshalJSON(b []byte) error {
	var fields map[string]jsoniter.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		*l = Listing{}
		return nil
	}

	var listing Listing

	if raw, ok := fields["Amount"]; ok {
		_ = json.Unmarshal(raw, &listing.Amount) //nolint:errcheck
	}

	if raw, ok := fields["Money"]; ok {
		_ = json.Unmarshal(raw, &listing.Money) //nolint:errcheck
	}

	for _, key := range []string{"BuyUrl", "buyUrl", "url"} {
		var link string
		if err := json.Unmarshal(fields[key], &link); err == nil && link != "" {
			listing.BuyURL = link
			break
		}
	}

	*l = listing

	return nil
}
