package v1

import (
	_ "embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed index.html
var indexHTML string

var indexTemplate = template.Must(template.New("index").Parse(indexHTML))

type indexData struct {
	Title string
}

func (h *handlerImpl) HandleIndex(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	err := indexTemplate.Execute(c.Writer, indexData{Title: "taskpad"})
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to render index page")
		c.AbortWithStatus(http.StatusInternalServerError)
	}
}
