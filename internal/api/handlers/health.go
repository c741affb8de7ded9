// health.go — обработчики health endpoints консоли.
// /health/live — liveness probe (процесс жив)
// /health/ready — readiness probe (состояние и каталоги переводов загружены)
// /metrics — Prometheus метрики
package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bigkaa/goartstore/catalog-console/internal/config"
)

const serviceName = "catalog-console"

// ReadinessChecker — интерфейс проверки готовности компонента.
type ReadinessChecker interface {
	// CheckReady возвращает статус ("ok", "degraded", "fail") и сообщение.
	CheckReady() (status string, message string)
}

// HealthHandler — обработчик health endpoints.
type HealthHandler struct {
	checkers    map[string]ReadinessChecker
	promHandler http.Handler
}

// NewHealthHandler создаёт обработчик health endpoints.
// checkers — проверяемые компоненты по имени; nil-компонент считается "fail".
func NewHealthHandler(checkers map[string]ReadinessChecker) *HealthHandler {
	return &HealthHandler{
		checkers:    checkers,
		promHandler: promhttp.Handler(),
	}
}

// healthCheckResult — результат проверки одного компонента.
type healthCheckResult struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// healthLiveResponse — ответ liveness probe.
type healthLiveResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
	Service   string `json:"service"`
}

// healthReadyResponse — ответ readiness probe.
type healthReadyResponse struct {
	Status    string                       `json:"status"`
	Timestamp string                       `json:"timestamp"`
	Version   string                       `json:"version"`
	Service   string                       `json:"service"`
	Checks    map[string]healthCheckResult `json:"checks"`
}

// HealthLive — liveness probe. Возвращает 200 если процесс жив.
func (h *HealthHandler) HealthLive(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, healthLiveResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   config.Version,
		Service:   serviceName,
	})
}

// HealthReady — readiness probe. Возвращает 200 (ok/degraded) или 503 (fail).
func (h *HealthHandler) HealthReady(w http.ResponseWriter, r *http.Request) {
	resp := healthReadyResponse{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   config.Version,
		Service:   serviceName,
		Checks:    make(map[string]healthCheckResult, len(h.checkers)),
	}

	statuses := make([]string, 0, len(h.checkers))
	for name, checker := range h.checkers {
		result := healthCheckResult{Status: "fail", Message: "не инициализирован"}
		if checker != nil {
			status, msg := checker.CheckReady()
			result = healthCheckResult{Status: status, Message: msg}
		}
		resp.Checks[name] = result
		statuses = append(statuses, result.Status)
	}
	resp.Status = overallStatus(statuses...)

	if resp.Status == "fail" {
		render.Status(r, http.StatusServiceUnavailable)
	}
	render.JSON(w, r, resp)
}

// GetMetrics — Prometheus метрики.
func (h *HealthHandler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	h.promHandler.ServeHTTP(w, r)
}

// overallStatus определяет итоговый статус из статусов компонентов.
// Если хотя бы один fail — итог fail.
// Если хотя бы один degraded — итог degraded.
// Иначе — ok.
func overallStatus(statuses ...string) string {
	hasDegraded := false
	for _, s := range statuses {
		if s == "fail" {
			return "fail"
		}
		if s == "degraded" {
			hasDegraded = true
		}
	}
	if hasDegraded {
		return "degraded"
	}
	return "ok"
}
