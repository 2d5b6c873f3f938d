package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"taskboard/internal/domain"
	"taskboard/internal/dto"
	"taskboard/internal/logger"

	"github.com/gin-gonic/gin"
)

// AllTasks возвращает все задачи
func (h *Handler) AllTasks(c *gin.Context) {
	tasks, err := h.Tasks.ListAll(c.Request.Context())
	if err != nil {
		logger.Error("list tasks failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get tasks"})
		return
	}
	c.JSON(http.StatusOK, dto.FromTasks(tasks))
}

// OpenTasks возвращает открытые задачи
func (h *Handler) OpenTasks(c *gin.Context) {
	tasks, err := h.Tasks.ListOpen(c.Request.Context())
	if err != nil {
		logger.Error("list open tasks failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get tasks"})
		return
	}
	c.JSON(http.StatusOK, dto.FromTasks(tasks))
}

// ClosedTasks возвращает завершённые задачи
func (h *Handler) ClosedTasks(c *gin.Context) {
	tasks, err := h.Tasks.ListClosed(c.Request.Context())
	if err != nil {
		logger.Error("list closed tasks failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get tasks"})
		return
	}
	c.JSON(http.StatusOK, dto.FromTasks(tasks))
}

// GetTask returns one task by id: 400 on a non-numeric id, 404 when absent.
func (h *Handler) GetTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	t, err := h.Tasks.Get(c.Request.Context(), id)
	if err != nil {
		h.taskError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromTask(t))
}

// CreateTask inserts a new task from the request body.
func (h *Handler) CreateTask(c *gin.Context) {
	var req dto.TaskCreateRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	t, err := h.Tasks.Create(c.Request.Context(), req)
	if err != nil {
		h.taskError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromTask(t))
}

// UpdateTask applies a partial update; only fields present in the body change.
func (h *Handler) UpdateTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	var req dto.TaskUpdateRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	t, err := h.Tasks.Update(c.Request.Context(), id, req)
	if err != nil {
		h.taskError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromTask(t))
}

// DeleteTask removes a task and answers with a plain confirmation line.
func (h *Handler) DeleteTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	if err := h.Tasks.Delete(c.Request.Context(), id); err != nil {
		h.taskError(c, err)
		return
	}
	c.String(http.StatusOK, "Task with id %d was deleted", id)
}

// taskID парсит :id из пути
func taskID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task id"})
		return 0, false
	}
	return id, true
}

// taskError maps domain errors to HTTP status codes.
func (h *Handler) taskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
	case errors.Is(err, domain.ErrDuplicateDescription):
		c.JSON(http.StatusConflict, gin.H{"error": "task with this description already exists"})
	case errors.Is(err, domain.ErrEmptyDescription), errors.Is(err, domain.ErrInvalidPriority):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error("task operation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
	}
}
