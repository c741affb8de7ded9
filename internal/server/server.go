// Пакет server — HTTP-сервер консоли каталога с graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"

	"github.com/bigkaa/goartstore/catalog-console/internal/api/handlers"
	"github.com/bigkaa/goartstore/catalog-console/internal/api/middleware"
	"github.com/bigkaa/goartstore/catalog-console/internal/api/openapi"
	"github.com/bigkaa/goartstore/catalog-console/internal/config"
	uihandlers "github.com/bigkaa/goartstore/catalog-console/internal/ui/handlers"
	"github.com/bigkaa/goartstore/catalog-console/internal/ui/i18n"
	"github.com/bigkaa/goartstore/catalog-console/internal/ui/static"
)

// UIComponents — обработчики HTML-консоли (nil, если UI отключён).
type UIComponents struct {
	Bundle          *i18n.Bundle
	ProductsHandler *uihandlers.ProductsHandler
	UsersHandler    *uihandlers.UsersHandler
	ProfileHandler  *uihandlers.ProfileHandler
}

// Server — HTTP-сервер консоли.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
	cfg        *config.Config
}

// New создаёт новый HTTP-сервер с настроенными routes и middleware.
// doc — OpenAPI-документ для валидации запросов /api/v1 (nil, если API отключён).
func New(cfg *config.Config, logger *slog.Logger, api *handlers.APIHandler, doc *openapi3.T, ui *UIComponents) (*Server, error) {
	router, err := NewRouter(logger, api, doc, ui)
	if err != nil {
		return nil, err
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return &Server{
		httpServer: srv,
		logger:     logger,
		cfg:        cfg,
	}, nil
}

// NewRouter собирает маршруты: health и metrics всегда, /api/v1 при doc != nil,
// /ui и /static при ui != nil.
func NewRouter(logger *slog.Logger, api *handlers.APIHandler, doc *openapi3.T, ui *UIComponents) (http.Handler, error) {
	router := chi.NewRouter()

	// Глобальные middleware (применяются ко ВСЕМ маршрутам)
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RequestLogger(logger))

	// Health и metrics
	router.Get("/health/live", api.HealthLive)
	router.Get("/health/ready", api.HealthReady)
	router.Get("/metrics", api.GetMetrics)

	if doc != nil {
		validator, err := openapi.Validator(doc)
		if err != nil {
			return nil, fmt.Errorf("валидатор OpenAPI: %w", err)
		}
		router.Route("/api/v1", func(r chi.Router) {
			r.Use(validator)
			api.Routes(r)
		})
	}

	if ui != nil {
		registerUIRoutes(router, ui)
		router.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/ui/products", http.StatusFound)
		})
	}

	return router, nil
}

// registerUIRoutes регистрирует страницы /ui/*, HTMX-фрагменты
// /ui/partials/* и статику /static/*.
func registerUIRoutes(router chi.Router, ui *UIComponents) {
	router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(static.FileSystem())))

	router.Route("/ui", func(r chi.Router) {
		r.Use(i18n.Middleware(ui.Bundle))

		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/ui/products", http.StatusFound)
		})
		r.Get("/products", ui.ProductsHandler.HandleList)
		r.Get("/users", ui.UsersHandler.HandleList)
		r.Get("/profile", ui.ProfileHandler.HandleView)

		r.Post("/language", uihandlers.HandleSetLanguage)
		r.Post("/role/toggle", ui.UsersHandler.HandleToggleRole)

		r.Route("/partials/products", func(r chi.Router) {
			p := ui.ProductsHandler
			r.Post("/filter", p.HandleFilter)
			r.Post("/clear", p.HandleClearFilters)
			r.Post("/page/{page}", p.HandlePage)
			r.Post("/add/open", p.HandleOpenAdd)
			r.Post("/add/cancel", p.HandleCancelAdd)
			r.Post("/add", p.HandleSubmitAdd)
			r.Post("/{id}/edit", p.HandleEdit)
			r.Post("/{id}/draft", p.HandleDraft)
			r.Post("/{id}/save", p.HandleSave)
			r.Post("/{id}/cancel", p.HandleCancel)
			r.Delete("/{id}", p.HandleDelete)
		})

		r.Route("/partials/users", func(r chi.Router) {
			u := ui.UsersHandler
			r.Post("/{id}/select", u.HandleSelect)
			r.Post("/{id}/role/stage", u.HandleStageRole)
			r.Post("/{id}/role/commit", u.HandleCommitRole)
			r.Delete("/{id}", u.HandleDelete)
		})

		r.Route("/partials/profile", func(r chi.Router) {
			p := ui.ProfileHandler
			r.Post("/edit", p.HandleEdit)
			r.Post("/save", p.HandleSave)
			r.Post("/cancel", p.HandleCancel)
		})
	})
}

// Run запускает сервер и ожидает сигнала завершения (SIGINT, SIGTERM).
// При получении сигнала выполняется graceful shutdown.
func (s *Server) Run() error {
	// Канал для ошибок сервера
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("HTTP-сервер запущен",
			slog.String("addr", s.httpServer.Addr),
		)

		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Ожидание сигнала завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		s.logger.Info("Получен сигнал завершения", slog.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("ошибка HTTP-сервера: %w", err)
		}
	}

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	s.logger.Info("Выполняется graceful shutdown...")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("ошибка при graceful shutdown: %w", err)
	}

	s.logger.Info("HTTP-сервер остановлен")
	return nil
}
