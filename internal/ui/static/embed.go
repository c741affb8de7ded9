// Пакет static — встроенные статические ресурсы консоли:
// CSS, JS и изображение-заглушка карточки товара.
// Файлы встраиваются в бинарник через //go:embed и раздаются через HTTP.
package static

import (
	"embed"
	"io/fs"
	"net/http"
)

// content — встроенная файловая система со всеми статическими ресурсами.
//
//go:embed css/console.css js/console.js img/placeholder.svg
var content embed.FS

// FileSystem возвращает http.FileSystem для обработки запросов к /static/*.
// Файлы доступны по путям вида /static/css/console.css.
func FileSystem() http.FileSystem {
	return http.FS(content)
}

// FS возвращает fs.FS для прямого доступа к встроенным файлам.
func FS() fs.FS {
	return content
}
