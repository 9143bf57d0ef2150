package router

import (
	"github.com/minseop-dev/userboard/internal/application"
	"github.com/minseop-dev/userboard/internal/container"
	pginfra "github.com/minseop-dev/userboard/internal/infrastructure/postgres"
	handlers "github.com/minseop-dev/userboard/internal/interface/http"
	"github.com/minseop-dev/userboard/internal/router/modules"
)

// InitModules constructs the repositories, services and handlers from the
// container singletons and registers every feature module with the registry.
// Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	accountRepo := pginfra.NewAccountRepository(pool)
	postRepo := pginfra.NewPostRepository(pool)

	certSvc := application.NewCertificationService(container.GetMailSender(), cfg.PublicBaseURL)
	accountSvc := application.NewAccountService(accountRepo, certSvc, container.GetClock(), container.GetIDGen(), logger)
	postSvc := application.NewPostService(postRepo, accountRepo, container.GetClock(), logger)

	r.Add(modules.NewHealthModule(handlers.NewHealthHandler(pool)))
	r.Add(modules.NewAccountModule(handlers.NewAccountHandler(accountSvc, logger)))
	r.Add(modules.NewPostModule(handlers.NewPostHandler(postSvc, logger)))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
