// Package extract достаёт список каналов из конфигурационного скрипта
// площадки. Это не парсер JS: берётся подстрока между маркерами
// window.bijiaqiChanels= и ближайшим ];, к ней дописывается ] и результат
// разбирается как литерал массива.
package extract

import (
	"errors"
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/titanous/json5"

	"dnf_rate/internal/domain"
	"dnf_rate/internal/domain/entity"
	"dnf_rate/pkg/errcodes"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const (
	PrefixMarker = "window.bijiaqiChanels="
	SuffixMarker = "];"
)

const (
	ModeSentinel = "sentinel"
	ModeJSON5    = "json5"
)

var ErrUnknownMode = errors.New("unknown extraction mode")

type Extractor interface {
	Extract(script string) ([]entity.ChannelDescriptor, error)
}

// New возвращает стратегию по имени режима.
func New(mode string) (Extractor, error) {
	switch mode {
	case "", ModeSentinel:
		return Sentinel{}, nil
	case ModeJSON5:
		return JSON5{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}

// Sentinel разбирает литерал как строгий JSON.
type Sentinel struct{}

func (Sentinel) Extract(script string) ([]entity.ChannelDescriptor, error) {
	return extract(script, json.Unmarshal)
}

// JSON5 терпит ключи без кавычек, одинарные кавычки и висячие запятые.
type JSON5 struct{}

func (JSON5) Extract(script string) ([]entity.ChannelDescriptor, error) {
	return extract(script, json5.Unmarshal)
}

func extract(script string, unmarshal func([]byte, any) error) ([]entity.ChannelDescriptor, error) {
	literal, err := Bounded(script)
	if err != nil {
		return nil, err
	}

	var parsed any
	if err := unmarshal([]byte(literal), &parsed); err != nil {
		return nil, domain.WrapError(err, errcodes.ConfigParseError, "解析配置脚本失败")
	}

	items, ok := parsed.([]any)
	if !ok {
		return nil, nil
	}

	descriptors := make([]entity.ChannelDescriptor, 0, len(items))

	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}

		data, _ := obj["data"].(string)
		sign, _ := obj["sign"].(string)

		if data == "" || sign == "" {
			continue
		}

		descriptors = append(descriptors, entity.ChannelDescriptor{Data: data, Sign: sign})
	}

	return descriptors, nil
}

// Bounded возвращает литерал массива между маркерами, включая закрывающую ].
func Bounded(script string) (string, error) {
	li := strings.Index(script, PrefixMarker)
	if li < 0 {
		return "", domain.NewError(errcodes.ConfigNotFound, "配置脚本中未找到渠道列表")
	}

	rest := script[li+len(PrefixMarker):]

	ri := strings.Index(rest, SuffixMarker)
	if ri < 0 {
		return "", domain.NewError(errcodes.ConfigParseError, "解析配置脚本失败")
	}

	return rest[:ri] + "]", nil
}
