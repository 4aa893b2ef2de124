package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"enplan/internal/delivery/http/middleware"
	"enplan/internal/delivery/http/response"
	"enplan/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProjectHandler holds dependencies for project-related handlers.
type ProjectHandler struct {
	uc     usecase.ProjectUsecase
	logger *slog.Logger
}

// NewProjectHandler is the constructor for ProjectHandler, injected by Fx.
func NewProjectHandler(uc usecase.ProjectUsecase, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles the project creation request.
func (h *ProjectHandler) Create(c echo.Context) error {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		return response.Unauthorized(c, "NOT_AUTHENTICATED", "Missing token claims")
	}

	var input *usecase.CreateProjectInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid project input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Project input failed validation")
	}

	project, err := h.uc.Create(c.Request().Context(), claims, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, project)
}

// List returns the authenticated account's projects.
func (h *ProjectHandler) List(c echo.Context) error {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		return response.Unauthorized(c, "NOT_AUTHENTICATED", "Missing token claims")
	}

	projects, err := h.uc.List(c.Request().Context(), claims)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, projects)
}

// Get returns a single owned project.
func (h *ProjectHandler) Get(c echo.Context) error {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		return response.Unauthorized(c, "NOT_AUTHENTICATED", "Missing token claims")
	}

	projectID, err := parseProjectID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid project id")
	}

	project, err := h.uc.Get(c.Request().Context(), claims, projectID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, project)
}

// Update applies a partial update to an owned project.
func (h *ProjectHandler) Update(c echo.Context) error {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		return response.Unauthorized(c, "NOT_AUTHENTICATED", "Missing token claims")
	}

	projectID, err := parseProjectID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid project id")
	}

	var input *usecase.UpdateProjectInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid project input")
	}

	project, err := h.uc.Update(c.Request().Context(), claims, projectID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, project)
}

// Delete removes an owned project.
func (h *ProjectHandler) Delete(c echo.Context) error {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		return response.Unauthorized(c, "NOT_AUTHENTICATED", "Missing token claims")
	}

	projectID, err := parseProjectID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid project id")
	}

	if err := h.uc.Delete(c.Request().Context(), claims, projectID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "deleted"})
}

func parseProjectID(c echo.Context) (int64, error) {
	projectID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, errors.Wrap(err, "invalid project id")
	}

	return projectID, nil
}
