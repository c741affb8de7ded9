// Пакет i18n — интернационализация консоли каталога.
// Предоставляет функции T(ctx, key) и Tf(ctx, key, args...) для получения
// переведённых строк из контекста HTTP-запроса.
// Поддерживаемые языки: Русский (ru), English (en).
// Язык определяется middleware: cookie "lang" → Accept-Language → язык по умолчанию.
package i18n

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/text/language"
)

// Languages — поддерживаемые языки в порядке отображения переключателя.
var Languages = []string{"ru", "en"}

// matcher — языковой matcher для Accept-Language.
// Порядок тегов совпадает с Languages.
var matcher = language.NewMatcher([]language.Tag{
	language.Russian,
	language.English,
})

// contextKey — тип ключа для контекста (избегаем коллизий).
type contextKey string

const (
	contextKeyLang   contextKey = "i18n_lang"
	contextKeyBundle contextKey = "i18n_bundle"
)

// IsSupported проверяет, что язык есть в списке поддерживаемых.
func IsSupported(lang string) bool {
	for _, l := range Languages {
		if l == lang {
			return true
		}
	}
	return false
}

// Bundle — хранилище переводов для всех языков.
// Загружается один раз при старте приложения.
type Bundle struct {
	mu          sync.RWMutex
	catalogs    map[string]map[string]string // lang → key → translation
	defaultLang string
	logger      *slog.Logger
}

// NewBundle создаёт пустой Bundle. defaultLang используется, когда
// язык запроса не определён, и как запасной каталог для отсутствующих ключей.
func NewBundle(defaultLang string, logger *slog.Logger) *Bundle {
	if !IsSupported(defaultLang) {
		defaultLang = Languages[0]
	}
	return &Bundle{
		catalogs:    make(map[string]map[string]string),
		defaultLang: defaultLang,
		logger:      logger.With(slog.String("component", "i18n")),
	}
}

// DefaultLang возвращает язык по умолчанию.
func (b *Bundle) DefaultLang() string {
	return b.defaultLang
}

// LoadMessages загружает JSON-каталог переводов для указанного языка.
// JSON формат: {"key": "translation", ...} (плоский).
func (b *Bundle) LoadMessages(lang string, data []byte) error {
	var messages map[string]string
	if err := json.Unmarshal(data, &messages); err != nil {
		return fmt.Errorf("i18n: ошибка парсинга каталога %s: %w", lang, err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.catalogs[lang] = messages

	b.logger.Debug("i18n каталог загружен",
		slog.String("lang", lang),
		slog.Int("keys", len(messages)),
	)
	return nil
}

// Translate возвращает перевод по ключу для указанного языка.
// Если ключа нет — ищет в языке по умолчанию, затем возвращает ключ как есть.
func (b *Bundle) Translate(lang, key string) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if msg, ok := b.catalogs[lang][key]; ok {
		return msg
	}
	if lang != b.defaultLang {
		if msg, ok := b.catalogs[b.defaultLang][key]; ok {
			return msg
		}
	}
	return key
}

// Translatef возвращает перевод по ключу с подстановкой аргументов (fmt.Sprintf).
// Формат-строка загружается из JSON-каталога во время выполнения,
// поэтому go vet не может проверить соответствие аргументов.
func (b *Bundle) Translatef(lang, key string, args ...any) string {
	template := b.Translate(lang, key)
	if len(args) == 0 {
		return template
	}
	return formatFunc(template, args...)
}

// CheckReady проверяет, что каталоги всех поддерживаемых языков загружены.
// Реализует интерфейс ReadinessChecker для health-проверок.
func (b *Bundle) CheckReady() (status string, message string) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, lang := range Languages {
		if len(b.catalogs[lang]) == 0 {
			return "fail", "каталог " + lang + " не загружен"
		}
	}
	return "ok", fmt.Sprintf("языков: %d", len(b.catalogs))
}

// --- Контекст запроса ---

// WithLang помещает язык в контекст.
func WithLang(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, contextKeyLang, lang)
}

// WithBundle помещает Bundle в контекст.
func WithBundle(ctx context.Context, b *Bundle) context.Context {
	return context.WithValue(ctx, contextKeyBundle, b)
}

// LangFromContext извлекает язык из контекста. Без middleware — первый
// из поддерживаемых языков.
func LangFromContext(ctx context.Context) string {
	if lang, ok := ctx.Value(contextKeyLang).(string); ok && lang != "" {
		return lang
	}
	if b := bundleFromContext(ctx); b != nil {
		return b.defaultLang
	}
	return Languages[0]
}

func bundleFromContext(ctx context.Context) *Bundle {
	b, _ := ctx.Value(contextKeyBundle).(*Bundle)
	return b
}

// T возвращает перевод по ключу, используя язык и Bundle из контекста.
// Без Bundle в контексте возвращает ключ.
func T(ctx context.Context, key string) string {
	b := bundleFromContext(ctx)
	if b == nil {
		return key
	}
	return b.Translate(LangFromContext(ctx), key)
}

// Tf возвращает перевод по ключу с аргументами (fmt.Sprintf).
func Tf(ctx context.Context, key string, args ...any) string {
	b := bundleFromContext(ctx)
	if b == nil {
		if len(args) == 0 {
			return key
		}
		return formatFunc(key, args...)
	}
	return b.Translatef(LangFromContext(ctx), key, args...)
}

// formatFunc — ссылка на fmt.Sprintf через переменную для обхода go vet printf-анализатора:
// формат-строки загружаются из JSON-каталогов во время выполнения.
//
//nolint:govet // обход go vet printf-анализатора
var formatFunc = fmt.Sprintf

// MatchLanguage определяет лучший язык из Accept-Language заголовка.
// Если ни один поддерживаемый язык не подходит, возвращает fallback.
func MatchLanguage(acceptLanguage, fallback string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return fallback
	}

	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return fallback
	}
	return Languages[index]
}
