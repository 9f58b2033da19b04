// Package http exposes the problem workspace services over a JSON API.
// Handlers decode and validate requests, call the services and map their
// errors onto status codes in one place.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/YusovID/pangea-backend/internal/apperrors"
	"github.com/YusovID/pangea-backend/internal/auth"
	"github.com/YusovID/pangea-backend/internal/service"
	"github.com/YusovID/pangea-backend/internal/validation"
	"github.com/YusovID/pangea-backend/pkg/api"
	"github.com/YusovID/pangea-backend/pkg/logger/sl"
	"github.com/YusovID/pangea-backend/swagger"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Services groups the business services the handlers call.
type Services struct {
	Instances   service.ProblemInstanceService
	Subtasks    service.SubtaskInstanceService
	Discussions service.DiscussionService
	Problems    service.ProblemService
	Contact     service.ContactService
}

type Server struct {
	log      *slog.Logger
	basePath string
	verifier *auth.Verifier
	svc      Services
}

// NewServer creates the HTTP server. A nil verifier leaves the API open.
func NewServer(log *slog.Logger, basePath string, verifier *auth.Verifier, svc Services) *Server {
	if basePath == "" {
		basePath = "/api"
	}

	return &Server{
		log:      log,
		basePath: basePath,
		verifier: verifier,
		svc:      svc,
	}
}

// Routes sets up the router with all middleware and API endpoints.
func (s *Server) Routes() http.Handler {
	mux := chi.NewRouter()

	mux.Use(s.requestID)
	mux.Use(s.logRequest)
	mux.Use(s.metricsMiddleware)

	swaggerHandler, err := swagger.GetHandler()
	if err != nil {
		s.log.Error("failed to get swagger handler", sl.Err(err))
	} else {
		mux.Mount("/swagger", http.StripPrefix("/swagger", swaggerHandler))
	}

	mux.Handle("/metrics", promhttp.Handler())
	mux.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		s.respond(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	mux.Route(s.basePath, func(r chi.Router) {
		r.Use(s.authenticate)

		api.HandlerWithOptions(s, api.ChiServerOptions{
			BaseRouter:       r,
			ErrorHandlerFunc: s.handleParamError,
		})
	})

	return mux
}

// respond encodes data as JSON with the given status code.
func (s *Server) respond(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)

	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			s.log.Error("failed to encode response", sl.Err(err))
		}
	}
}

func (s *Server) respondError(w http.ResponseWriter, code int, message string) {
	s.respond(w, code, map[string]string{"error": message})
}

func (s *Server) respondMessage(w http.ResponseWriter, code int, message string) {
	s.respond(w, code, map[string]string{"message": message})
}

// decodeAndValidate deserializes a JSON request body into v and runs the
// struct tag checks on it.
func (s *Server) decodeAndValidate(r *http.Request, v any) error {
	if err := s.decode(r.Body, v); err != nil {
		return err
	}

	return validation.ValidateStruct(v)
}

func (s *Server) decode(body io.ReadCloser, v any) error {
	defer body.Close()

	if err := json.NewDecoder(body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrInvalidRequest, err)
	}

	return nil
}

// notFoundError names the resource a handler was looking for and the
// status its absence maps to.
type notFoundError struct {
	resource string
	code     int
	err      error
}

func (e *notFoundError) Error() string { return e.resource + " not found" }
func (e *notFoundError) Unwrap() error { return e.err }

// missing labels err with resource when err is a not-found condition.
func missing(resource string, err error) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return &notFoundError{resource: resource, code: http.StatusNotFound, err: err}
	}

	return err
}

// rejected is missing for writes where an unknown target is a bad request.
func rejected(resource string, err error) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return &notFoundError{resource: resource, code: http.StatusBadRequest, err: err}
	}

	return err
}

// handleParamError reports path and query values the router could not bind.
func (s *Server) handleParamError(w http.ResponseWriter, r *http.Request, err error) {
	s.handleServiceError(w, r, "internal.transport.http.handleParamError", validation.Invalid("%s", err.Error()))
}

// handleServiceError logs err and maps it to a response.
func (s *Server) handleServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	log := s.log.With(
		slog.String("op", op),
		slog.String("request_id", getRequestID(r.Context())),
	)

	var (
		validationErr   *validation.ValidationError
		instanceErr     *apperrors.InstanceAlreadyExistsError
		stepErr         *apperrors.StepAlreadyExistsError
		collaboratorErr *apperrors.CollaboratorAlreadyExistsError
		problemErr      *apperrors.ProblemAlreadyExistsError
		parentErr       *apperrors.ParentNotFoundError
		notFoundErr     *notFoundError
	)

	code, message := http.StatusInternalServerError, "internal server error"

	switch {
	case errors.As(err, &validationErr):
		code = http.StatusBadRequest
		message = fmt.Errorf("%w: %s", apperrors.ErrValidation, validationErr.Error()).Error()
	case errors.Is(err, apperrors.ErrInvalidRequest):
		code, message = http.StatusBadRequest, apperrors.ErrInvalidRequest.Error()
	case errors.Is(err, apperrors.ErrParentMismatch):
		code, message = http.StatusBadRequest, apperrors.ErrParentMismatch.Error()
	case errors.Is(err, apperrors.ErrIndexOutOfRange):
		code, message = http.StatusBadRequest, apperrors.ErrIndexOutOfRange.Error()
	case errors.As(err, &instanceErr):
		code, message = http.StatusBadRequest, instanceErr.Error()
	case errors.As(err, &stepErr):
		code, message = http.StatusBadRequest, stepErr.Error()
	case errors.As(err, &collaboratorErr):
		code, message = http.StatusBadRequest, collaboratorErr.Error()
	case errors.As(err, &problemErr):
		code, message = http.StatusBadRequest, problemErr.Error()
	case errors.Is(err, apperrors.ErrUnauthorized):
		code, message = http.StatusUnauthorized, apperrors.ErrUnauthorized.Error()
	case errors.As(err, &parentErr):
		code, message = http.StatusNotFound, parentErr.Error()
	case errors.Is(err, apperrors.ErrCriterionNotFound):
		code, message = http.StatusNotFound, apperrors.ErrCriterionNotFound.Error()
	case errors.As(err, &notFoundErr):
		code, message = notFoundErr.code, notFoundErr.Error()
	case errors.Is(err, apperrors.ErrNotFound):
		code, message = http.StatusNotFound, apperrors.ErrNotFound.Error()
	}

	if code >= http.StatusInternalServerError {
		log.Error("service error occurred", sl.Err(err))
	} else {
		log.Warn("request rejected", slog.Int("status", code), sl.Err(err))
	}

	s.respondError(w, code, message)
}
