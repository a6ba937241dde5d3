package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/jobtrail/jobtrail-api/pkg/apperr"
	"github.com/jobtrail/jobtrail-api/pkg/response"
)

// respondError is the single place application errors become HTTP responses.
// verbose controls whether the underlying cause is exposed; it is false in
// production.
func respondError(c *gin.Context, err error, verbose bool) {
	var detail interface{}
	if verbose {
		detail = err.Error()
	}
	response.Error[any](c, apperr.HTTPStatus(err), apperr.MessageOf(err), detail)
}
