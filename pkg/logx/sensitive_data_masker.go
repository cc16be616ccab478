package logx

import (
	"regexp"
)

type SensitiveDataMaskerInterface interface {
	Mask(input []byte) []byte
}

//nolint:gochecknoglobals
var sensitiveDataPatterns = []*regexp.Regexp{
	regexp.MustCompile("(?s)(Authorization: Bearer ).+?(\r)"),
	regexp.MustCompile("(?s)(Cookie: ).+?(\r)"),
	// JSON fields of the coinsale handshake.
	regexp.MustCompile(`(?s)("secret":\s?").+?(")`),
	regexp.MustCompile(`(?s)("sign":\s?").+?(")`),
	regexp.MustCompile(`(?s)("[Pp]assword":\s?").+?(")`),
	// Bot API urls carry the token in the path.
	regexp.MustCompile(`(/bot)[0-9]+:[A-Za-z0-9_-]+(/)`),
}

type SensitiveDataMasker struct{}

func NewSensitiveDataMasker() SensitiveDataMasker {
	return SensitiveDataMasker{}
}

func (s SensitiveDataMasker) Mask(input []byte) []byte {
	for _, pattern := range sensitiveDataPatterns {
		input = pattern.ReplaceAll(input, []byte("${1}[MASKED]${2}"))
	}

	return input
}

// NopSensitiveDataMasker возвращает вход без изменений.
type NopSensitiveDataMasker struct{}

func NewNopSensitiveDataMasker() NopSensitiveDataMasker {
	return NopSensitiveDataMasker{}
}

func (NopSensitiveDataMasker) Mask(input []byte) []byte {
	return input
}
