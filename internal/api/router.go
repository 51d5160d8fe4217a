package api

import (
	"net/http"

	"github.com/alvinbaena/pwd-toolkit/pkg/random"
	"github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

type RouterOptions struct {
	Checker BreachChecker
	Source  random.Source
	// Allowed CORS origins, all origins when empty.
	Origins []string
}

// NewRouter builds the /v1 API. Nothing sent to it is stored.
func NewRouter(opts RouterOptions) http.Handler {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.SetLogger(logger.WithLogger(func(c *gin.Context, z zerolog.Logger) zerolog.Logger {
		return zerolog.New(gin.DefaultWriter).With().Timestamp().Logger()
	})))

	v1 := router.Group("/v1")
	RegisterQueryApi(v1, opts.Checker)
	RegisterGenerateApi(v1, opts.Source)

	origins := opts.Origins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         600,
	}).Handler(router)
}
