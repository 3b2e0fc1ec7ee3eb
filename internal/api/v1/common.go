package v1

import (
	"strings"

	ierr "github.com/openshop/storefront/internal/errors"
	"github.com/openshop/storefront/internal/types"
	"github.com/gin-gonic/gin"
)

// credentialsFrom reads the shopper's access token once per request.
// Services receive it explicitly and decide whether anonymous callers are allowed.
func credentialsFrom(c *gin.Context) types.Credentials {
	return types.NewCredentials(strings.TrimSpace(c.GetHeader(types.HeaderAccessToken)))
}

func invalidRequest(err error) error {
	return ierr.WithError(err).
		WithHint("Invalid request format").
		Mark(ierr.ErrValidation)
}
