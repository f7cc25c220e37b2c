package controllers

import (
	"errors"
	"net/http"

	"github.com/shashiranjanraj/vanijya/app/services"
	"github.com/shashiranjanraj/vanijya/pkg/ctx"
	"github.com/shashiranjanraj/vanijya/pkg/logger"
)

// fail maps a service error to its HTTP status. Anything outside the
// service taxonomy is a 500 and gets logged with the request context.
func fail(c *ctx.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.NotFound(err.Error())
	case errors.Is(err, services.ErrConflict):
		c.Conflict(err.Error())
	case errors.Is(err, services.ErrInvalid):
		c.Error(http.StatusUnprocessableEntity, err.Error())
	default:
		logger.WithCtx(c.Context()).Error("request failed", "error", err)
		c.Error(http.StatusInternalServerError, "internal server error")
	}
}
