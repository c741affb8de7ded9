// handler.go — основной обработчик JSON API /api/v1.
// Разбирает параметры и тело запроса и делегирует работу в сервисный слой.
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/oapi-codegen/runtime"

	apierrors "github.com/bigkaa/goartstore/catalog-console/internal/api/errors"
	"github.com/bigkaa/goartstore/catalog-console/internal/service"
)

// APIHandler — основной обработчик JSON API.
type APIHandler struct {
	health   *HealthHandler
	products *service.ProductService
	users    *service.UserService
	profile  *service.ProfileService
	logger   *slog.Logger
}

// NewAPIHandler создаёт основной обработчик API.
func NewAPIHandler(
	health *HealthHandler,
	products *service.ProductService,
	users *service.UserService,
	profile *service.ProfileService,
	logger *slog.Logger,
) *APIHandler {
	return &APIHandler{
		health:   health,
		products: products,
		users:    users,
		profile:  profile,
		logger:   logger.With(slog.String("component", "api_handler")),
	}
}

// Routes регистрирует маршруты /api/v1 на роутере r.
func (h *APIHandler) Routes(r chi.Router) {
	r.Get("/products", h.ListProducts)
	r.Post("/products", h.CreateProduct)
	r.Patch("/products/{id}", h.UpdateProduct)
	r.Delete("/products/{id}", h.DeleteProduct)

	r.Get("/users", h.ListUsers)
	r.Patch("/users/{id}", h.UpdateProfile)
	r.Delete("/users/{id}", h.DeleteUser)
	r.Put("/users/{id}/role", h.SetUserRole)

	r.Get("/me", h.GetMe)
	r.Post("/me/toggle-role", h.ToggleRole)
	r.Put("/selection", h.SelectUser)
}

// HealthLive — liveness probe (делегируется в HealthHandler).
func (h *APIHandler) HealthLive(w http.ResponseWriter, r *http.Request) {
	h.health.HealthLive(w, r)
}

// HealthReady — readiness probe (делегируется в HealthHandler).
func (h *APIHandler) HealthReady(w http.ResponseWriter, r *http.Request) {
	h.health.HealthReady(w, r)
}

// GetMetrics — Prometheus метрики (делегируется в HealthHandler).
func (h *APIHandler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	h.health.GetMetrics(w, r)
}

// --- Вспомогательные функции ---

// writeJSON записывает JSON-ответ с указанным статусом.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	render.Status(r, status)
	render.JSON(w, r, data)
}

// pathID извлекает параметр пути {id} так же, как это делает
// сгенерированный oapi-codegen код.
func pathID(w http.ResponseWriter, r *http.Request) (string, bool) {
	var id string
	err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id,
		runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		})
	if err != nil {
		apierrors.ValidationError(w, r, "Некорректный параметр id: "+err.Error())
		return "", false
	}
	return id, true
}

// serviceError логирует и отдаёт ошибку сервисного слоя.
func (h *APIHandler) serviceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	h.logger.Warn("Операция отклонена",
		slog.String("op", op),
		slog.String("error", err.Error()),
	)
	apierrors.FromService(w, r, err)
}
