// metrics.go — доменные Prometheus метрики консоли.
package service

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// mutationsTotal — успешные изменения каталога и пользователей.
	mutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cc_mutations_total",
			Help: "Количество успешных изменений состояния консоли",
		},
		[]string{"entity", "operation"},
	)

	// deniedTotal — операции, отклонённые проверкой прав.
	deniedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cc_permission_denied_total",
			Help: "Количество операций, отклонённых проверкой прав",
		},
		[]string{"operation"},
	)
)

func recordMutation(entity, operation string) {
	mutationsTotal.WithLabelValues(entity, operation).Inc()
}

// deny учитывает отказ и возвращает ErrForbidden. operation — стабильный
// идентификатор операции (create_product, delete_user, ...), он же метка метрики.
func deny(operation string) error {
	deniedTotal.WithLabelValues(operation).Inc()
	return fmt.Errorf("%w: %s", ErrForbidden, operation)
}
