// Package server assembles the echo application: middleware, validation,
// route registration and the error-to-envelope mapping.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/arvela/catalog-service/config"
	"github.com/arvela/catalog-service/internal/apperr"
	categoryhandler "github.com/arvela/catalog-service/internal/category/handler"
	inventoryhandler "github.com/arvela/catalog-service/internal/inventory/handler"
	producthandler "github.com/arvela/catalog-service/internal/product/handler"
	"github.com/arvela/catalog-service/pkg/response"
)

type Server struct {
	echo   *echo.Echo
	cfg    *config.Config
	logger *zap.Logger
}

type Handlers struct {
	Category  *categoryhandler.CategoryHandler
	Product   *producthandler.ProductHandler
	Inventory *inventoryhandler.InventoryHandler
}

func New(cfg *config.Config, log *zap.Logger, h Handlers) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Validator = &payloadValidator{validate: validator.New()}

	s := &Server{echo: e, cfg: cfg, logger: log}
	e.HTTPErrorHandler = s.errorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.Secure())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
				log.Warn("request", fields...)
				return nil
			}
			log.Info("request", fields...)
			return nil
		},
	}))

	s.routes(h)
	return s
}

func (s *Server) routes(h Handlers) {
	s.echo.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"message": "Product Catalog API",
			"version": "1.0.0",
		})
	})

	api := s.echo.Group("/api")
	h.Category.Register(api.Group("/categories"))
	h.Product.Register(api.Group("/products"))
	h.Inventory.Register(api.Group("/inventory"))
	api.GET("/search", h.Product.Search)
	api.GET("/reports/low-stock", h.Inventory.LowStockReport)
}

func (s *Server) Start() error {
	return s.echo.Start(fmt.Sprintf(":%s", s.cfg.Server.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

type payloadValidator struct {
	validate *validator.Validate
}

func (v *payloadValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// errorHandler maps every error escaping a handler onto the failure
// envelope. Domain sentinels carry their status; anything unrecognized is a
// 500 whose detail is only exposed outside production.
func (s *Server) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var verr validator.ValidationErrors
	if errors.As(err, &verr) {
		fields := make([]response.FieldError, 0, len(verr))
		for _, fe := range verr {
			fields = append(fields, response.FieldError{
				Field:   fe.Field(),
				Message: fmt.Sprintf("failed on the %s rule", fe.Tag()),
			})
		}
		_ = response.FailValidation(c, fields)
		return
	}

	var herr *echo.HTTPError
	if errors.As(err, &herr) {
		_ = response.Fail(c, herr.Code, http.StatusText(herr.Code), fmt.Sprintf("%v", herr.Message))
		return
	}

	switch {
	case errors.Is(err, apperr.ErrNotFound):
		_ = response.Fail(c, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, apperr.ErrInvalidRelation), errors.Is(err, apperr.ErrConflict):
		_ = response.Fail(c, http.StatusBadRequest, "Bad Request", err.Error())
	default:
		s.logger.Error("unhandled error", zap.Error(err))
		message := "something went wrong"
		if s.cfg.Server.AppEnv != "production" {
			message = err.Error()
		}
		_ = response.Fail(c, http.StatusInternalServerError, "Server Error", message)
	}
}
