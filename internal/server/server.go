package server

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/candorlabs/candor/internal/model"
	"github.com/candorlabs/candor/internal/pipeline"
)

// Server exposes the analyzer and cookie auditor as a JSON API
type Server struct {
	pipeline *pipeline.Pipeline
	app      *fiber.App
}

// New creates the API server around a configured pipeline
func New(p *pipeline.Pipeline) *Server {
	app := fiber.New(fiber.Config{
		AppName:               "candor",
		DisableStartupMessage: true,
	})

	s := &Server{pipeline: p, app: app}

	app.Get("/healthz", s.handleHealth)

	api := app.Group("/api/v1")
	api.Post("/analyze", s.handleAnalyze)
	api.Post("/audit", s.handleAudit)

	return s
}

// Listen serves until the listener fails or is shut down
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App exposes the underlying fiber app for tests
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) handleHealth(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "ok"})
}

type analyzeRequest struct {
	PolicyText string `json:"policy_text"`
}

func (s *Server) handleAnalyze(ctx *fiber.Ctx) error {
	var req analyzeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return sendError(ctx, fiber.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(req.PolicyText) == "" {
		return sendError(ctx, fiber.StatusBadRequest, "policy_text is required")
	}

	result, err := s.pipeline.AnalyzeText(ctx.Context(), "api", req.PolicyText)
	if err != nil {
		return sendError(ctx, fiber.StatusInternalServerError, err.Error())
	}

	return ctx.JSON(result)
}

type auditRequest struct {
	PolicyText      string `json:"policy_text"`
	ObservedCookies string `json:"observed_cookies"`
	ConsentState    string `json:"consent_state"`
}

func (s *Server) handleAudit(ctx *fiber.Ctx) error {
	var req auditRequest
	if err := ctx.BodyParser(&req); err != nil {
		return sendError(ctx, fiber.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(req.PolicyText) == "" {
		return sendError(ctx, fiber.StatusBadRequest, "policy_text is required")
	}
	if strings.TrimSpace(req.ObservedCookies) == "" {
		return sendError(ctx, fiber.StatusBadRequest, "observed_cookies is required")
	}
	if req.ConsentState == "" {
		req.ConsentState = model.ConsentBeforeConsent
	}

	result, err := s.pipeline.AuditCookies(ctx.Context(), "api", req.PolicyText, req.ObservedCookies, req.ConsentState)
	if err != nil {
		return sendError(ctx, fiber.StatusInternalServerError, err.Error())
	}

	return ctx.JSON(result)
}

func sendError(ctx *fiber.Ctx, status int, message string) error {
	return ctx.Status(status).JSON(fiber.Map{"error": message})
}
