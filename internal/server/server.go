// Package server exposes the lookup and translation services over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/keigo1110/wordtree/internal/lookup"
	"github.com/keigo1110/wordtree/internal/translator"
)

// lookupHandler is the slice of the lookup service the server uses.
type lookupHandler interface {
	Handle(ctx context.Context, word string, includeEtymology bool) (*lookup.Response, error)
}

// translateHandler is the slice of the translator the server uses.
type translateHandler interface {
	Translate(query, source string) (*translator.Result, error)
}

type errorResponse struct {
	Error string `json:"error"`
}

// Server routes HTTP requests to the lookup and translation services.
type Server struct {
	echo         *echo.Echo
	lookups      lookupHandler
	translations translateHandler
	logger       *slog.Logger
}

// New builds the HTTP server with CORS, panic recovery and request logging.
func New(lookups lookupHandler, translations translateHandler, allowedOrigins []string, logger *slog.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogMethod: true,
		LogURI:    true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status))
			return nil
		},
	}))

	s := &Server{
		echo:         e,
		lookups:      lookups,
		translations: translations,
		logger:       logger,
	}
	e.GET("/lookup", s.handleLookup)
	e.POST("/translate", s.handleTranslate)
	return s
}

// Start listens on the given port until Shutdown or a listener error.
func (s *Server) Start(port int) error {
	if err := s.echo.Start(fmt.Sprintf(":%d", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("echo.Start > %w", err)
	}
	return nil
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// ServeHTTP makes the server usable with httptest.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

func (s *Server) handleLookup(c echo.Context) error {
	word := c.QueryParam("word")
	includeEtymology := c.QueryParam("etymology") == "true"

	response, err := s.lookups.Handle(c.Request().Context(), word, includeEtymology)
	if err != nil {
		switch {
		case errors.Is(err, lookup.ErrEmptyWord):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: `Query parameter "word" is required`})
		case errors.Is(err, lookup.ErrAllLookupsFailed):
			return c.JSON(http.StatusInternalServerError, errorResponse{Error: "all lookups failed"})
		default:
			s.logger.Error("lookup failed", slog.String("word", word), slog.Any("error", err))
			return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
		}
	}
	return c.JSON(http.StatusOK, response)
}

type translateRequest struct {
	Q   string `json:"q"`
	Src string `json:"src"`
}

func (s *Server) handleTranslate(c echo.Context) error {
	var request translateRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}
	if request.Q == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: `Query parameter "q" is required and must be a string`})
	}

	result, err := s.translations.Translate(request.Q, request.Src)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, result)
}
