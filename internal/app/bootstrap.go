package app

import (
	"fmt"
	"strings"

	"talent-triage/internal/config"
	"talent-triage/internal/delivery/http/middleware"
	"talent-triage/internal/delivery/http/routes"
	"talent-triage/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
	Hub   *ws.Hub
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	registerGlobalMiddleware(f, c)

	hub := ws.NewHub(c.Logger)
	go hub.Run()
	ws.SetDefaultHub(hub)

	registry := routes.NewRegistry(c.Config, c.DB, c.Cache, hub, c.Logger)
	registry.Register(f)

	return &App{Fiber: f, Hub: hub}
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	container, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	application := New(container)
	cleanup := func() error {
		ws.SetDefaultHub(nil)
		return container.Close()
	}
	return application, cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	app.Use(middleware.NewErrorMiddleware().Middleware())
	app.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
