package service

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shenikar/dongmunseodap/internal/models"
)

var typeSuffixes = map[models.ReportType]string{
	models.ReportTypeDriver:  " (운전자 제보)",
	models.ReportTypeTransit: " (대중교통 제보)",
	models.ReportTypePost:    " (사후 제보)",
}

var defaultDescriptions = map[models.ReportType]string{
	models.ReportTypeDriver:  "교통 정체가 발생했습니다. (운전자 제보)",
	models.ReportTypeTransit: "대중교통 이용에 지연이 있습니다. (대중교통 제보)",
	models.ReportTypePost:    "해당 시간에 교통 상황이 좋지 않았습니다. (사후 제보)",
}

// TypeSuffix возвращает приписку, которую получает описание отчета данного типа
func TypeSuffix(t models.ReportType) string {
	return typeSuffixes[t]
}

// DefaultDescription - готовая фраза для пустого описания
func DefaultDescription(t models.ReportType) string {
	return defaultDescriptions[t]
}

// EnhanceDescription форматирует текст пользователя перед сохранением:
// первая буква заглавная, точка в конце, приписка типа.
// Пустой текст заменяется готовой фразой. Внешние сервисы не вызываются
func EnhanceDescription(description string, t models.ReportType) string {
	enhanced := strings.TrimSpace(description)
	if enhanced == "" {
		return DefaultDescription(t)
	}

	// Невалидный первый байт оставляем как есть, без замены на U+FFFD
	if first, size := utf8.DecodeRuneInString(enhanced); first != utf8.RuneError || size > 1 {
		enhanced = string(unicode.ToUpper(first)) + enhanced[size:]
	}

	if !strings.HasSuffix(enhanced, ".") && !strings.HasSuffix(enhanced, "!") && !strings.HasSuffix(enhanced, "?") {
		enhanced += "."
	}

	return enhanced + TypeSuffix(t)
}
