// loader.go — загрузка каталогов переводов из embed.FS.
package i18n

import (
	"fmt"
	"log/slog"
)

// LoadFromEmbedFS загружает каталоги всех поддерживаемых языков из
// встроенной файловой системы (locales/<lang>.json).
func LoadFromEmbedFS(bundle *Bundle) error {
	for _, lang := range Languages {
		path := fmt.Sprintf("locales/%s.json", lang)
		data, err := LocaleFS.ReadFile(path)
		if err != nil {
			return fmt.Errorf("i18n: не удалось прочитать %s: %w", path, err)
		}

		if err := bundle.LoadMessages(lang, data); err != nil {
			return err
		}
	}

	bundle.logger.Info("i18n каталоги загружены",
		slog.Int("languages", len(Languages)),
		slog.String("default", bundle.defaultLang),
	)
	return nil
}
