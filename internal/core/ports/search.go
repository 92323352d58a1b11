package ports

import (
	"context"
	"errors"
	"fmt"

	"github.com/ThermaloS/AetherBot/internal/core/domain"
)

// ErrProvider indicates the external media provider failed for one request.
// Callers recover from it per-strategy; it never aborts a whole recommendation.
var ErrProvider = errors.New("media provider failure")

// ProviderError carries the query that failed against the media provider.
type ProviderError struct {
	Query string
	Err   error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("media provider failure for query %q: %v", e.Query, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

func (e *ProviderError) Is(target error) bool { return target == ErrProvider }

// SearchProvider wraps the external media search/extraction service. Results
// are best effort: an empty slice is a valid response, and ordering is only
// whatever the provider's own ranking produced.
type SearchProvider interface {
	Search(ctx context.Context, query string, limit int) ([]domain.Candidate, error)
	ResolvePlayableURL(ctx context.Context, ref string) (string, error)
}
