package handler

import (
	"net/http"

	"hiredesk/internal/model"

	"github.com/gin-gonic/gin"
)

// respondError maps the structured error kind onto the HTTP status and
// carries the kind in the response code field.
func respondError(c *gin.Context, err error) {
	kind := model.KindOf(err)
	c.JSON(kind.HTTPStatus(), model.NewErrorResponse(err.Error(), string(kind)))
}

func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), string(model.KindInvalidArgument)))
}
