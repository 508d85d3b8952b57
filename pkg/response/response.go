package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends 200 with data as the bare JSON body (no envelope).
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends 201 with data as the JSON body.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// NoContent sends status with an empty body.
func NoContent(c *gin.Context, status int) {
	c.Status(status)
}

// Error sends status with an {"error": ...} body.
func Error(c *gin.Context, status int, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	c.AbortWithStatusJSON(status, ErrorBody{Error: msg})
}

// BadRequest sends 400.
func BadRequest(c *gin.Context, err error) {
	Error(c, http.StatusBadRequest, err)
}

// NotFound sends 404.
func NotFound(c *gin.Context, err error) {
	Error(c, http.StatusNotFound, err)
}

// InternalError sends 500.
func InternalError(c *gin.Context, err error) {
	Error(c, http.StatusInternalServerError, err)
}
