package routes

import (
	"log"

	"talent-triage/internal/config"
	"talent-triage/internal/database"
	v1 "talent-triage/internal/delivery/http/routes/v1"
	"talent-triage/internal/infrastructure/cache"
	"talent-triage/internal/ws"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, cfg config.Config, db database.DB, rcache *cache.Redis, hub *ws.Hub, logger *log.Logger) {
	if r == nil {
		return
	}

	v1.Register(r, cfg, db, rcache, hub, logger)
}
