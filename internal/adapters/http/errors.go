package http

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/web3infra-foundation/mda-site/internal/adapters/http/dto"
	"github.com/web3infra-foundation/mda-site/internal/domain"
)

// notFound answers unknown routes with the JSON envelope.
func notFound(c *gin.Context) {
	dto.HandleError(c, domain.NewNotFoundError("route", c.Request.URL.Path))
}

// methodNotAllowed answers known paths requested with the wrong method.
func methodNotAllowed(c *gin.Context) {
	dto.AbortWithCode(c, dto.ErrorCodeMethodNotAllowed,
		fmt.Sprintf("method %s not allowed on %s", c.Request.Method, c.Request.URL.Path))
}
