package testutil

import (
	"context"

	"github.com/openshop/storefront/internal/types"
)

func SetupContext() context.Context {
	return types.SetRequestID(context.Background(), types.GenerateUUID())
}
