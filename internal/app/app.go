package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/accountsvc/internal/config"
	httpx "github.com/you/accountsvc/internal/http"
	"github.com/you/accountsvc/internal/http/handlers"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	container, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	defer container.Close()

	if err := container.RedisClient.Ping(context.Background()).Err(); err != nil {
		return err
	}

	accountH := handlers.NewAccountHandlers(container.AccountSvc)
	r := httpx.BuildRouter(accountH)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
