package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"taskpad/internal/tasks"
)

type Handler interface {
	HandleLoggerMiddleware(c *gin.Context)

	HandleIndex(c *gin.Context)
	HandleListTasks(c *gin.Context)
	HandleCreateTask(c *gin.Context)
	HandleEditTask(c *gin.Context)
	HandleToggleTask(c *gin.Context)
	HandleDeleteTask(c *gin.Context)
	HandleGetCounts(c *gin.Context)
}

type handlerImpl struct {
	logger zerolog.Logger
	store  *tasks.Store
}

func New(
	logger zerolog.Logger,
	store *tasks.Store,
) Handler {
	return &handlerImpl{
		logger: logger,
		store:  store,
	}
}
