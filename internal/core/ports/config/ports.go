package configports

import (
	"context"

	configdomain "qform.io/cli/internal/core/domain/config"
)

type Loader interface {
	Load(ctx context.Context) (configdomain.Snapshot, error)
	Name() string
}
