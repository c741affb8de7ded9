// Точка входа Catalog Console — консоль администратора каталога кондиционеров.
// Загружает конфигурацию и seed-данные, создаёт хранилище состояния,
// сервисный слой, JSON API и HTML-консоль, запускает HTTP-сервер
// с graceful shutdown.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/bigkaa/goartstore/catalog-console/internal/api/handlers"
	"github.com/bigkaa/goartstore/catalog-console/internal/api/openapi"
	"github.com/bigkaa/goartstore/catalog-console/internal/config"
	"github.com/bigkaa/goartstore/catalog-console/internal/seed"
	"github.com/bigkaa/goartstore/catalog-console/internal/server"
	"github.com/bigkaa/goartstore/catalog-console/internal/service"
	"github.com/bigkaa/goartstore/catalog-console/internal/store"
	uihandlers "github.com/bigkaa/goartstore/catalog-console/internal/ui/handlers"
	"github.com/bigkaa/goartstore/catalog-console/internal/ui/i18n"
)

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "-h" || os.Args[1] == "--help") {
		fmt.Println(config.Usage())
		return
	}

	// 1. Загрузка конфигурации из переменных окружения
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Ошибка загрузки конфигурации", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 2. Настройка логирования
	logger := config.SetupLogger(cfg)
	logger.Info("Catalog Console запускается",
		slog.String("version", config.Version),
		slog.Int("port", cfg.Port),
	)

	// 3. Начальные данные
	state, err := seed.Load(cfg.SeedFile, logger)
	if err != nil {
		logger.Error("Ошибка загрузки seed-данных", slog.String("error", err.Error()))
		os.Exit(1)
	}

	st, err := store.New(state, logger)
	if err != nil {
		logger.Error("Ошибка создания хранилища", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 4. Services
	productsSvc := service.NewProductService(st, logger)
	usersSvc := service.NewUserService(st, logger)
	profileSvc := service.NewProfileService(st, logger)

	checkers := map[string]handlers.ReadinessChecker{"store": st}

	// 5. HTML-консоль (опционально, если CC_UI_ENABLED=true)
	var uiComponents *server.UIComponents
	if cfg.UIEnabled {
		bundle := i18n.NewBundle(cfg.DefaultLanguage, logger)
		if err := i18n.LoadFromEmbedFS(bundle); err != nil {
			logger.Error("Ошибка загрузки переводов", slog.String("error", err.Error()))
			os.Exit(1)
		}
		checkers["i18n"] = bundle

		uiComponents = &server.UIComponents{
			Bundle:          bundle,
			ProductsHandler: uihandlers.NewProductsHandler(productsSvc, usersSvc, logger),
			UsersHandler:    uihandlers.NewUsersHandler(usersSvc, logger),
			ProfileHandler:  uihandlers.NewProfileHandler(profileSvc, usersSvc, logger),
		}
		logger.Info("HTML-консоль инициализирована",
			slog.String("default_language", bundle.DefaultLang()),
		)
	} else {
		logger.Info("HTML-консоль отключена (CC_UI_ENABLED=false)")
	}

	// 6. JSON API (контракт OpenAPI проверяется на входе)
	apiHandler := handlers.NewAPIHandler(
		handlers.NewHealthHandler(checkers),
		productsSvc,
		usersSvc,
		profileSvc,
		logger,
	)

	var doc *openapi3.T
	if cfg.APIEnabled {
		doc, err = openapi.Load()
		if err != nil {
			logger.Error("Ошибка загрузки OpenAPI-спецификации", slog.String("error", err.Error()))
			os.Exit(1)
		}
	} else {
		logger.Info("JSON API отключён (CC_API_ENABLED=false)")
	}

	// 7. Создание и запуск HTTP-сервера
	srv, err := server.New(cfg, logger, apiHandler, doc, uiComponents)
	if err != nil {
		logger.Error("Ошибка создания HTTP-сервера", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := srv.Run(); err != nil {
		logger.Error("Ошибка сервера", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Catalog Console остановлен")
}
