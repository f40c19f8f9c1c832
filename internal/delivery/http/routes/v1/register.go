package v1

import (
	"log"

	"talent-triage/internal/config"
	"talent-triage/internal/database"
	"talent-triage/internal/delivery/http/handler"
	"talent-triage/internal/delivery/http/middleware"
	"talent-triage/internal/domain/taxonomy"
	"talent-triage/internal/infrastructure/cache"
	"talent-triage/internal/pkg/jwt"
	"talent-triage/internal/repository"
	"talent-triage/internal/usecase"
	"talent-triage/internal/ws"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, cfg config.Config, db database.DB, rcache *cache.Redis, hub *ws.Hub, logger *log.Logger) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	authMw := middleware.NewAuthMiddleware(jwtSvc)

	scorer := taxonomy.NewScorer(taxonomy.DefaultRules())

	operatorRepo := repository.NewPostgresOperatorRepository(db)
	categoryRepo := repository.NewPostgresCategoryRepository(db)
	candidateRepo := repository.NewPostgresCandidateRepository(db)
	pendingRepo := repository.NewPostgresPendingCategoryRepository(db)

	authUC := usecase.NewAuthUsecase(operatorRepo, jwtSvc)
	intakeUC := usecase.NewIntakeUsecase(scorer, candidateRepo, categoryRepo, pendingRepo)
	taxonomyUC := usecase.NewTaxonomyUsecase(categoryRepo, rcache)
	pendingUC := usecase.NewPendingUsecase(pendingRepo, scorer)
	approvalUC := usecase.NewApprovalUsecase(db, pendingRepo, categoryRepo, candidateRepo, rcache)

	authHandler := handler.NewAuthHandler(authUC)
	candidateHandler := handler.NewCandidateHandler(intakeUC)
	categoryHandler := handler.NewCategoryHandler(taxonomyUC)
	pendingHandler := handler.NewPendingHandler(pendingUC, approvalUC)
	wsHandler := ws.NewHandler(hub, logger)

	authGroup := r.Group("/auth")
	authHandler.RegisterRoutes(authGroup)

	// Public surface: candidate intake comes from the application form, the
	// taxonomy tree feeds its dropdowns.
	candidateHandler.RegisterPublicRoutes(r)
	categoryHandler.RegisterPublicRoutes(r)
	r.Get("/ws/review", wsHandler.HandleReviewWS)

	protected := r.Group("", authMw.Middleware())

	candidateHandler.RegisterProtectedRoutes(protected)
	categoryHandler.RegisterProtectedRoutes(protected)
	pendingHandler.RegisterRoutes(protected)
}
