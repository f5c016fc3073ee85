package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/soupmate/soupmate-api/internal/errs"
)

// respondError maps a typed service error to its HTTP status and writes the
// standard error body. Validation and duplicate errors are the caller's to
// fix; everything else is a server-side failure.
func respondError(c *gin.Context, err error) {
	switch err.(type) {
	case errs.ValidationError, errs.DuplicateError:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errs.ConfigError, errs.UpstreamError, errs.ParseError, errs.StoreError:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
