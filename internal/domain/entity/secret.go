package entity

import "dnf_rate/internal/domain/value"

// SecretToken живёт ровно один подписанный запрос.
type SecretToken struct {
	Time   value.Opaque `json:"time"`
	Secret value.Opaque `json:"secret"`
}

func (t SecretToken) Valid() bool {
	return t.Time.Truthy() && t.Secret.Truthy()
}

// SignedRequest: тело запроса к /bijia/coinsale.
type SignedRequest struct {
	Data   string       `json:"data"`
	Sign   string       `json:"sign"`
	Cross  int          `json:"cross"`
	Time   value.Opaque `json:"time"`
	Secret string       `json:"secret"`
}
