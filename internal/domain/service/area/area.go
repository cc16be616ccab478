package area

import (
	"regexp"
	"strconv"
	"strings"

	"dnf_rate/internal/domain"
	"dnf_rate/internal/domain/entity"
	"dnf_rate/pkg/errcodes"
)

var (
	specialRe = regexp.MustCompile(`^([3三])([aAbB])$`) //nolint:gochecknoglobals
	arabicRe  = regexp.MustCompile(`^[0-9]+$`)         //nolint:gochecknoglobals
)

// Порядок совпадает с индексом: цифра i+1.
const cnDigits = "一二三四五六七八九"

// Normalize превращает токен пользователя (2, 二, 十二, 3a, 三B) в AreaSpec.
// Нераспознанный ввод: ошибка InvalidArea, это ошибка пользователя.
func Normalize(token string) (entity.AreaSpec, error) {
	raw := strings.TrimSpace(token)
	if raw == "" {
		return entity.AreaSpec{}, invalid(token)
	}

	if m := specialRe.FindStringSubmatch(raw); m != nil {
		suffix := strings.ToLower(m[2])
		return entity.AreaSpec{Slug: "kua3" + suffix, Display: "3" + strings.ToUpper(suffix)}, nil
	}

	if arabicRe.MatchString(raw) {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return entity.AreaSpec{}, invalid(token)
		}

		return spec(n), nil
	}

	n, ok := chineseNumber(raw)
	if !ok {
		return entity.AreaSpec{}, invalid(token)
	}

	return spec(n), nil
}

// chineseNumber разбирает 一..九, 十, 十X, X十, X十Y.
func chineseNumber(s string) (int, bool) {
	runes := []rune(s)

	switch len(runes) {
	case 1:
		if runes[0] == '十' {
			return 10, true //nolint:mnd
		}

		return digit(runes[0])
	case 2: //nolint:mnd
		if runes[0] == '十' {
			ones, ok := digit(runes[1])
			return 10 + ones, ok //nolint:mnd
		}

		tens, ok := digit(runes[0])
		if !ok || runes[1] != '十' {
			return 0, false
		}

		return tens * 10, true //nolint:mnd
	case 3: //nolint:mnd
		tens, ok := digit(runes[0])
		if !ok || runes[1] != '十' {
			return 0, false
		}

		ones, ok := digit(runes[2])
		if !ok {
			return 0, false
		}

		return tens*10 + ones, true //nolint:mnd
	}

	return 0, false
}

func digit(r rune) (int, bool) {
	for i, d := range []rune(cnDigits) {
		if d == r {
			return i + 1, true
		}
	}

	return 0, false
}

func spec(n int) entity.AreaSpec {
	s := strconv.Itoa(n)
	return entity.AreaSpec{Slug: "kua" + s, Display: s}
}

func invalid(token string) error {
	return domain.NewError(errcodes.InvalidArea, "未识别到跨区编号："+strings.TrimSpace(token))
}
