// Пакет openapi — встроенный OpenAPI-контракт JSON API и middleware
// проверки запросов по нему.
package openapi

import (
	_ "embed"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"

	apierrors "github.com/bigkaa/goartstore/catalog-console/internal/api/errors"
)

//go:embed openapi.yaml
var spec []byte

// Spec возвращает исходный текст контракта (YAML).
func Spec() []byte {
	return spec
}

// Load разбирает и проверяет встроенный контракт.
func Load() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(spec)
	if err != nil {
		return nil, fmt.Errorf("разбор OpenAPI-контракта: %w", err)
	}
	if err := doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("проверка OpenAPI-контракта: %w", err)
	}
	return doc, nil
}

// Validator создаёт middleware, проверяющее параметры и тело запроса
// по контракту. Запросы к путям вне контракта пропускаются дальше
// без проверки: их судьбу решает роутер.
func Validator(doc *openapi3.T) (func(http.Handler) http.Handler, error) {
	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("построение роутера OpenAPI: %w", err)
	}

	options := &openapi3filter.Options{
		MultiError: false,
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route, pathParams, err := router.FindRoute(r)
			if err != nil {
				if errors.Is(err, routers.ErrMethodNotAllowed) {
					apierrors.WriteError(w, r, http.StatusMethodNotAllowed, apierrors.CodeValidationError,
						fmt.Sprintf("метод %s не поддерживается для %s", r.Method, r.URL.Path))
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    r,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err := openapi3filter.ValidateRequest(r.Context(), input); err != nil {
				apierrors.ValidationError(w, r, describe(err))
				return
			}

			next.ServeHTTP(w, r)
		})
	}, nil
}

// describe сокращает ошибку kin-openapi до одной строки для клиента.
func describe(err error) string {
	var reqErr *openapi3filter.RequestError
	if !errors.As(err, &reqErr) {
		return err.Error()
	}

	reason := reqErr.Reason
	var schemaErr *openapi3.SchemaError
	if errors.As(reqErr.Err, &schemaErr) {
		reason = schemaErr.Reason
		if ptr := schemaErr.JSONPointer(); len(ptr) > 0 {
			reason = fmt.Sprintf("поле %s: %s", strings.Join(ptr, "."), schemaErr.Reason)
		}
	} else if reason == "" && reqErr.Err != nil {
		reason = reqErr.Err.Error()
	}

	if reqErr.Parameter != nil {
		return fmt.Sprintf("параметр %s: %s", reqErr.Parameter.Name, reason)
	}
	return reason
}
