package entity

import (
	"strings"

	"dnf_rate/internal/domain/value"
)

// ChannelDescriptor: одна запись из window.bijiaqiChanels.
// Data: JSON-строка, подписанная площадкой; отправляется обратно как есть.
type ChannelDescriptor struct {
	Data string `json:"data"`
	Sign string `json:"sign"`
}

// ChannelPayload: разобранное поле Data.
type ChannelPayload struct {
	CoinNo value.Opaque `json:"CoinNo"`
	PfID   value.Opaque `json:"PfId"`
	PfName value.Opaque `json:"PfName"`
	GID    value.Opaque `json:"GId"`
	GsID   value.Opaque `json:"GsId"`
}

// Usable сообщает, что все обязательные поля присутствуют и непусты.
func (p ChannelPayload) Usable() bool {
	return p.PfID.Truthy() && p.PfName.Truthy() && p.GID.Truthy() && p.GsID.Truthy()
}

// MatchesCoin: канал без CoinNo подходит любой категории.
func (p ChannelPayload) MatchesCoin(code string) bool {
	if !p.CoinNo.Truthy() {
		return true
	}

	return strings.EqualFold(p.CoinNo.String(), code)
}
