// Package directory stores and resolves user display names. It is the
// injected read capability the auction engine uses to decorate bid history;
// anything beyond a display name is out of scope.
package directory

import (
	"context"
	"errors"
	"fmt"

	"github.com/openbid/auctiond/internal/ledger"
)

// ErrEmptyName is returned when registering a blank display name.
var ErrEmptyName = errors.New("display name must not be empty")

// Directory reads and writes display names in the ledger under
// user:{id}:name.
type Directory struct {
	store ledger.Store
}

// New returns a Directory over the given store.
func New(store ledger.Store) *Directory {
	return &Directory{store: store}
}

// GetName resolves a user id to its display name. Returns
// ledger.ErrNotFound for unregistered users.
func (d *Directory) GetName(ctx context.Context, userID string) (string, error) {
	name, err := d.store.Get(ctx, nameKey(userID))
	if err != nil {
		return "", err
	}
	return name, nil
}

// SetName registers or replaces a user's display name.
func (d *Directory) SetName(ctx context.Context, userID, name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if err := d.store.Set(ctx, nameKey(userID), name); err != nil {
		return fmt.Errorf("storing name for user %s: %w", userID, err)
	}
	return nil
}

func nameKey(userID string) string {
	return fmt.Sprintf("user:%s:name", userID)
}
