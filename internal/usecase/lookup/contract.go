package lookup

import (
	"context"

	"github.com/kailas-cloud/cvrdex/internal/domain/search"
)

// Registry defines the backend contract for company searches.
type Registry interface {
	Search(ctx context.Context, q *search.Query) (search.Result, error)
}
