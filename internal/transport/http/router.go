package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/mentionscope/mentions-worker/internal/ports"
	"github.com/mentionscope/mentions-worker/pkg/httpx"
)

// BacklogProcessor — ручной прогон стрима с начала (без подтверждений).
type BacklogProcessor interface {
	ProcessBacklog(ctx context.Context) (int, error)
}

type Handler struct {
	backlog        BacklogProcessor
	log            ports.Logger
	triggerTimeout time.Duration
}

func NewHandler(backlog BacklogProcessor, log ports.Logger, triggerTimeout time.Duration) *Handler {
	if triggerTimeout <= 0 {
		triggerTimeout = 60 * time.Second
	}
	return &Handler{backlog: backlog, log: log, triggerTimeout: triggerTimeout}
}

// NewRouter — сборка HTTP-роутера. otelService непустой — включаем трассировку.
func NewRouter(h *Handler, otelService, mode string) *gin.Engine {
	if mode != "" {
		gin.SetMode(mode)
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Recovery())
	r.Use(httpx.RequestIDMiddleware())
	if otelService != "" {
		r.Use(otelgin.Middleware(otelService))
	}
	r.Use(requestLogger(h.log))

	r.GET("/", h.health)
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/trigger-process", h.triggerProcess)

	return r
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "mentions-worker"})
}

// triggerProcess — разовый прогон стрима с самого начала. Записи не
// подтверждаются, поэтому эндпоинт безопасен для фонового консьюмера.
func (h *Handler) triggerProcess(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.triggerTimeout)
	defer cancel()

	processed, err := h.backlog.ProcessBacklog(ctx)
	if err != nil {
		h.log.Errorf(c.Request.Context(), "ProcessBacklog failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "completed", "processed": processed})
}

func requestLogger(log ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)
		log.Infof(c.Request.Context(), "request method=%s path=%s status=%d duration=%s", c.Request.Method, c.FullPath(), c.Writer.Status(), duration)
	}
}
