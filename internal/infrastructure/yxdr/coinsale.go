package yxdr

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"dnf_rate/internal/domain/entity"
	"dnf_rate/pkg/logx"
)

type secretRequest struct {
	GID  string `json:"GId"`
	GsID string `json:"GsId"`
}

// Negotiate запрашивает одноразовую пару {time, secret} для канала.
// Пустой или нечитаемый ответ: nil без ошибки: канал просто пропускается.
func (c *Client) Negotiate(ctx context.Context, gID, gsID string) (*entity.SecretToken, error) {
	body, err := c.postJSON(ctx, c.cfg.BaseURL+secretPath, secretRequest{GID: gID, GsID: gsID})
	if err != nil {
		return nil, fmt.Errorf("negotiate: %w", err)
	}

	if body == nil {
		return nil, nil //nolint:nilnil
	}

	var token entity.SecretToken
	if err := json.Unmarshal(body, &token); err != nil {
		logger(ctx).Debug("secret response is not an object", logx.Error(err))
		return nil, nil //nolint:nilnil
	}

	return &token, nil
}

type coinsaleResponse struct {
	Data jsoniter.RawMessage `json:"data"`
}

// Query отправляет подписанный запрос и возвращает заказы.
// Поле data бывает массивом, строкой с JSON-массивом или отсутствует.
func (c *Client) Query(ctx context.Context, req entity.SignedRequest) ([]entity.Listing, error) {
	body, err := c.postJSON(ctx, c.cfg.BaseURL+coinsalePath, req)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	if body == nil {
		return nil, nil
	}

	var resp coinsaleResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		logger(ctx).Debug("coinsale response is not an object", logx.Error(err))
		return nil, nil
	}

	listings := ListingsFromData(resp.Data)

	logger(ctx).Debug("coinsale answered", slog.Int(logx.FieldListings, len(listings)))

	return listings, nil
}

// ListingsFromData приводит все варианты поля data к списку заказов.
func ListingsFromData(raw []byte) []entity.Listing {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil
	}

	switch raw[0] {
	case '[':
		return decodeListings(raw)
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil
		}

		s = strings.TrimSpace(s)
		if !strings.HasPrefix(s, "[") {
			return nil
		}

		return decodeListings([]byte(s))
	default:
		return nil
	}
}

func decodeListings(raw []byte) []entity.Listing {
	var listings []entity.Listing
	if err := json.Unmarshal(raw, &listings); err != nil {
		return nil
	}

	return listings
}
