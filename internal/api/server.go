package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/FoxaxeWasTaken/Awkward-Legacy-sub000/internal/provider"
	"github.com/FoxaxeWasTaken/Awkward-Legacy-sub000/internal/service"
	"github.com/FoxaxeWasTaken/Awkward-Legacy-sub000/internal/tree"
	"github.com/FoxaxeWasTaken/Awkward-Legacy-sub000/internal/viewport"
)

// Server exposes the tree engine's rendering-facing outputs to the
// presentation layer as a JSON API.
type Server struct {
	svc      *service.Service
	logger   *logrus.Logger
	mux      *http.ServeMux
	registry *prometheus.Registry
}

// NewServer creates a Server, registers all routes, and returns it.
func NewServer(svc *service.Service, logger *logrus.Logger, registry *prometheus.Registry) *Server {
	s := &Server{svc: svc, logger: logger, mux: http.NewServeMux(), registry: registry}
	s.routes()
	return s
}

// Handler returns the http.Handler that can be passed to http.Server.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /api/families/{id}/tree", s.handleTree)
	s.mux.HandleFunc("GET /api/families/{id}/highlights", s.handleHighlights)
	s.mux.HandleFunc("POST /api/families/{id}/selection", s.handleSelection)
	s.mux.HandleFunc("GET /api/families/{id}/viewport", s.handleGetViewport)
	s.mux.HandleFunc("POST /api/families/{id}/viewport", s.handleViewportAction)

	s.mux.Handle("GET /metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	s.mux.HandleFunc("GET /healthz", s.handleHealth)
}

// ---------------------------------------------------------------------------
// JSON helpers
// ---------------------------------------------------------------------------

func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			s.logger.WithError(err).Error("failed to encode JSON response")
		}
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}

// decodeJSON reads the request body into dst and returns an error message on
// failure. The caller should return immediately when ok == false.
func (s *Server) decodeJSON(r *http.Request, dst any) (ok bool, errMsg string) {
	if r.Body == nil {
		return false, "request body is empty"
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return false, fmt.Sprintf("invalid JSON: %v", err)
	}
	return true, ""
}

// respondLoadError maps engine and provider errors onto HTTP statuses with
// the user-facing message the presentation layer shows verbatim.
func (s *Server) respondLoadError(w http.ResponseWriter, err error) {
	switch {
	case provider.IsNotFound(err):
		s.respondError(w, http.StatusNotFound, provider.UserMessage(err))
	case errors.Is(err, service.ErrSuperseded):
		s.respondError(w, http.StatusConflict, "load superseded by a newer request")
	case errors.Is(err, service.ErrNoSession):
		s.respondError(w, http.StatusNotFound, "family is not loaded")
	default:
		s.logger.WithError(err).Error("failed to load family tree")
		s.respondError(w, http.StatusBadGateway, provider.UserMessage(err))
	}
}

// ---------------------------------------------------------------------------
// Tree & highlights
// ---------------------------------------------------------------------------

type treeResponse struct {
	FamilyID    string              `json:"family_id"`
	Generations [][]tree.CoupleView `json:"generations"`
	Transform   service.Transform   `json:"transform"`
	Partial     bool                `json:"partial,omitempty"`
}

func (s *Server) handleTree(w http.ResponseWriter, r *http.Request) {
	familyID := r.PathValue("id")

	session, err := s.svc.Ensure(r.Context(), familyID)
	if err != nil {
		s.respondLoadError(w, err)
		return
	}

	view := session.Tree()
	s.respondJSON(w, http.StatusOK, treeResponse{
		FamilyID:    view.FamilyID,
		Generations: view.Generations,
		Transform:   session.Transform(),
		Partial:     session.Partial(),
	})
}

func (s *Server) handleHighlights(w http.ResponseWriter, r *http.Request) {
	familyID := r.PathValue("id")
	personID := r.URL.Query().Get("person")
	if personID == "" {
		s.respondError(w, http.StatusBadRequest, "person query parameter is required")
		return
	}

	session, err := s.svc.Session(familyID)
	if err != nil {
		s.respondLoadError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, session.Highlights(personID))
}

// ---------------------------------------------------------------------------
// Selection
// ---------------------------------------------------------------------------

type selectionRequest struct {
	Action   string `json:"action"` // hover, click, leave
	PersonID string `json:"person_id"`
}

func (s *Server) handleSelection(w http.ResponseWriter, r *http.Request) {
	familyID := r.PathValue("id")

	var req selectionRequest
	if ok, msg := s.decodeJSON(r, &req); !ok {
		s.respondError(w, http.StatusBadRequest, msg)
		return
	}

	session, err := s.svc.Session(familyID)
	if err != nil {
		s.respondLoadError(w, err)
		return
	}

	switch req.Action {
	case "hover":
		s.respondJSON(w, http.StatusOK, session.Hover(req.PersonID))
	case "click":
		s.respondJSON(w, http.StatusOK, session.Click(req.PersonID))
	case "leave":
		session.Leave()
		s.respondJSON(w, http.StatusNoContent, nil)
	default:
		s.respondError(w, http.StatusBadRequest, "action must be hover, click or leave")
	}
}

// ---------------------------------------------------------------------------
// Viewport
// ---------------------------------------------------------------------------

type viewportRequest struct {
	Action string `json:"action"` // zoom_in, zoom_out, wheel, reset, measure

	// Viewport dimensions for button zoom.
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`

	// Cursor anchor and direction for wheel zoom.
	X  float64 `json:"x,omitempty"`
	Y  float64 `json:"y,omitempty"`
	In bool    `json:"in,omitempty"`

	// Bounding boxes for measure (fit-to-view).
	Container viewport.Size `json:"container,omitempty"`
	Content   viewport.Size `json:"content,omitempty"`
}

func (s *Server) handleGetViewport(w http.ResponseWriter, r *http.Request) {
	session, err := s.svc.Session(r.PathValue("id"))
	if err != nil {
		s.respondLoadError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, session.Transform())
}

func (s *Server) handleViewportAction(w http.ResponseWriter, r *http.Request) {
	var req viewportRequest
	if ok, msg := s.decodeJSON(r, &req); !ok {
		s.respondError(w, http.StatusBadRequest, msg)
		return
	}

	session, err := s.svc.Session(r.PathValue("id"))
	if err != nil {
		s.respondLoadError(w, err)
		return
	}

	switch req.Action {
	case "zoom_in":
		s.respondJSON(w, http.StatusOK, session.ZoomIn(req.Width, req.Height))
	case "zoom_out":
		s.respondJSON(w, http.StatusOK, session.ZoomOut(req.Width, req.Height))
	case "wheel":
		s.respondJSON(w, http.StatusOK, session.WheelZoom(req.In, req.X, req.Y))
	case "reset":
		s.respondJSON(w, http.StatusOK, session.Reset())
	case "measure":
		session.ContentMeasured(req.Container, req.Content)
		s.respondJSON(w, http.StatusOK, session.Transform())
	default:
		s.respondError(w, http.StatusBadRequest, "unknown viewport action")
	}
}

// ---------------------------------------------------------------------------
// Health
// ---------------------------------------------------------------------------

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
