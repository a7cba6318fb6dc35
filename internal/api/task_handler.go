package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/taskdeck/api/internal/api/shared"
	"github.com/taskdeck/api/internal/domain"
	"github.com/taskdeck/api/internal/store"
)

// TaskHandler handles task-related API requests. Every operation except
// ListAll is scoped to the authenticated principal's own tasks.
type TaskHandler struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewTaskHandler creates a new TaskHandler with the given dependencies.
func NewTaskHandler(taskStore store.TaskStore, log *slog.Logger) *TaskHandler {
	if log == nil {
		log = slog.Default()
	}

	return &TaskHandler{
		taskStore: taskStore,
		logger:    log.With(slog.String("component", "task_handler")),
	}
}

// List handles GET /tasks.
// Query parameters: status, priority (exact-match filters), page, limit.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	principal, ok := shared.PrincipalFromContext(r.Context())
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return
	}

	filter, err := parseTaskFilter(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	page := parsePage(r)

	tasks, total, err := h.taskStore.List(r.Context(), principal.UserID, filter, page)
	if err != nil {
		HandleAPIError(w, r, err, "Error fetching tasks")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.Response{
		Success: true,
		Count:   shared.Int(len(tasks)),
		Total:   shared.Int(total),
		Page:    shared.Int(page.Number),
		Data:    tasks,
	})
}

// Get handles GET /tasks/{id}.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	principal, id, ok := handlePrincipalAndPathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	task, err := h.taskStore.GetByID(r.Context(), id, principal.UserID)
	if err != nil {
		HandleAPIError(w, r, err, "Error fetching task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.Response{
		Success: true,
		Data:    task,
	})
}

// Create handles POST /tasks.
// The new task's owner is always the authenticated principal; any
// owner supplied in the body would be ignored because the request model
// simply has no such field.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := shared.PrincipalFromContext(r.Context())
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return
	}

	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	task, err := domain.NewTask(
		principal.UserID,
		req.Title,
		req.Description,
		domain.TaskStatus(req.Status),
		domain.TaskPriority(req.Priority),
	)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.taskStore.Create(r.Context(), task); err != nil {
		HandleAPIError(w, r, err, "Error creating task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, shared.Response{
		Success: true,
		Message: "Task created successfully",
		Data:    task,
	})
}

// Update handles PUT /tasks/{id} with full-field replace semantics.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	principal, id, ok := handlePrincipalAndPathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	task := &domain.Task{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.TaskStatus(req.Status),
		Priority:    domain.TaskPriority(req.Priority),
		UserID:      principal.UserID,
	}

	if err := h.taskStore.Update(r.Context(), task); err != nil {
		HandleAPIError(w, r, err, "Error updating task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.Response{
		Success: true,
		Message: "Task updated successfully",
		Data:    task,
	})
}

// Delete handles DELETE /tasks/{id}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	principal, id, ok := handlePrincipalAndPathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	if err := h.taskStore.Delete(r.Context(), id, principal.UserID); err != nil {
		HandleAPIError(w, r, err, "Error deleting task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.Response{
		Success: true,
		Message: "Task deleted successfully",
	})
}

// ListAll handles GET /tasks/admin/all.
// Route wiring gates this behind RequireRole(admin); the handler itself
// only runs for admin principals.
func (h *TaskHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskStore.ListAll(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Error fetching tasks")
		return
	}

	if tasks == nil {
		tasks = []*domain.TaskWithOwner{}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.Response{
		Success: true,
		Count:   shared.Int(len(tasks)),
		Data:    tasks,
	})
}

// parseTaskFilter reads the status and priority query parameters,
// rejecting values outside the enumerated sets so a typo'd filter is a
// clear 400 instead of an empty result.
func parseTaskFilter(r *http.Request) (store.TaskFilter, error) {
	var filter store.TaskFilter

	if status := r.URL.Query().Get("status"); status != "" {
		s := domain.TaskStatus(status)
		if !s.IsValid() {
			return filter, domain.NewValidationError("status", "has invalid value", domain.ErrInvalidStatus)
		}
		filter.Status = s
	}

	if priority := r.URL.Query().Get("priority"); priority != "" {
		p := domain.TaskPriority(priority)
		if !p.IsValid() {
			return filter, domain.NewValidationError("priority", "has invalid value", domain.ErrInvalidPriority)
		}
		filter.Priority = p
	}

	return filter, nil
}

// parsePage reads the page and limit query parameters. Absent or
// unparsable values fall back to the defaults rather than failing.
func parsePage(r *http.Request) store.Page {
	page := store.Page{Number: store.DefaultPage, Size: store.DefaultPageSize}

	if raw := r.URL.Query().Get("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 1 {
			page.Number = n
		}
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 1 {
			page.Size = n
		}
	}

	return page
}
