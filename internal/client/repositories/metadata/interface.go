// Package metadata is the key/value repository of the client database.
// The credential store keeps its single entry here.
package metadata

import (
	"context"
)

// Repository reads and writes string values by key. Get reports found=false
// (and no error) when the key is absent.
type Repository interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
