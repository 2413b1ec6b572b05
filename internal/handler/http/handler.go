package http

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/unesleaf/unesleaf-server/internal/config"
	"github.com/unesleaf/unesleaf-server/internal/logger"
	"github.com/unesleaf/unesleaf-server/internal/service"
)

// Handler holds the dependencies of the HTTP transport layer: the application
// services, the request-body validator, and CORS settings.
type Handler struct {
	services *service.Services
	validate *validator.Validate

	allowedOrigins []string

	logger *logger.Logger
}

// NewHandler constructs the HTTP handler set over the given services.
func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	validate := validator.New()
	// report violations under the JSON field name clients actually sent
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		validate:       validate,
		allowedOrigins: cfg.AllowedOrigins,
		logger:         logger,
	}
}
