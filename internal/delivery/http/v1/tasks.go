package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"taskpad/internal/models"
)

type getTaskResponse struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

func newGetTaskResponse(task *models.Task) getTaskResponse {
	return getTaskResponse{
		ID:        task.ID,
		Text:      task.Text,
		Completed: task.Completed,
		CreatedAt: task.CreatedAt,
	}
}

func (h *handlerImpl) HandleListTasks(c *gin.Context) {
	list := h.store.All()

	response := make([]getTaskResponse, len(list))
	for i, task := range list {
		response[i] = newGetTaskResponse(&task)
	}

	h.logger.Debug().
		Int("count", len(response)).
		Msg("listed tasks")
	c.JSON(http.StatusOK, response)
}

type createTaskRequest struct {
	Text string `json:"text"`
}

func (h *handlerImpl) HandleCreateTask(c *gin.Context) {
	var req createTaskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	task := h.store.Add(req.Text)
	if task == nil {
		abort(c, newUnprocessableError(errEmptyTaskText.Error()))
		return
	}

	c.JSON(http.StatusCreated, newGetTaskResponse(task))
}

type editTaskRequest struct {
	Text string `json:"text"`
}

func (h *handlerImpl) HandleEditTask(c *gin.Context) {
	taskID := c.Param("id")
	if taskID == "" {
		h.logger.Error().Msg("no task id provided")
		abort(c, newBadRequestError("no task id provided"))
		return
	}

	var req editTaskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	if !h.store.Edit(taskID, req.Text) {
		abort(c, newNotFoundError(errTaskNotFound.Error()))
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *handlerImpl) HandleToggleTask(c *gin.Context) {
	taskID := c.Param("id")
	if taskID == "" {
		h.logger.Error().Msg("no task id provided")
		abort(c, newBadRequestError("no task id provided"))
		return
	}

	if !h.store.Toggle(taskID) {
		abort(c, newNotFoundError(errTaskNotFound.Error()))
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *handlerImpl) HandleDeleteTask(c *gin.Context) {
	taskID := c.Param("id")
	if taskID == "" {
		h.logger.Error().Msg("no task id provided")
		abort(c, newBadRequestError("no task id provided"))
		return
	}

	if !h.store.Delete(taskID) {
		abort(c, newNotFoundError(errTaskNotFound.Error()))
		return
	}

	c.Status(http.StatusNoContent)
}

type getCountsResponse struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Remaining int `json:"remaining"`
}

func (h *handlerImpl) HandleGetCounts(c *gin.Context) {
	counts := h.store.Counts()
	c.JSON(http.StatusOK, getCountsResponse{
		Total:     counts.Total,
		Completed: counts.Completed,
		Remaining: counts.Remaining,
	})
}
