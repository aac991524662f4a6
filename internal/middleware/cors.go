package middleware

import (
	"net/http"
	"time"

	"talentops/config"
	"talentops/internal/core"
	"talentops/internal/telemetry"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Cors struct {
	trace  *telemetry.Trace
	config *config.Configuration
}

func NewCors(trace *telemetry.Trace, config *config.Configuration) *Cors {
	return &Cors{trace: trace, config: config}
}

type corsMeta struct {
	AllowOrigins []string `trace:"http.cors.allow_origins"`
	AllowMethods []string `trace:"http.cors.allow_methods"`
	AllowCreds   bool     `trace:"http.cors.allow_credentials"`
}

// newCorsConfig 未設定 APP__ALLOW_ORIGINS 時允許任意來源但不帶 credentials
func newCorsConfig(conf *config.Configuration) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowHeaders:  []string{"Content-Type", "Authorization", "Traceparent", "Tracestate"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if origins := conf.App.AllowOrigins; len(origins) > 0 {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	} else {
		cfg.AllowAllOrigins = true
	}
	return cfg
}

// CorsHandler 維運路徑同樣套用 CORS，只是不開 span
func (m *Cors) CorsHandler() gin.HandlerFunc {
	cfg := newCorsConfig(m.config)
	handle := cors.New(cfg)
	meta := corsMeta{AllowOrigins: cfg.AllowOrigins, AllowMethods: cfg.AllowMethods, AllowCreds: cfg.AllowCredentials}
	if cfg.AllowAllOrigins {
		meta.AllowOrigins = []string{"*"}
	}

	return func(c *gin.Context) {
		if skipObservability(c.FullPath()) {
			handle(c)
			return
		}
		_, span, end := m.trace.WithSpan(c.Request.Context(), string(core.SpanCorsMiddleware))
		m.trace.ApplyTraceAttributes(span, meta)
		end(nil)
		handle(c)
	}
}
