package repositories

import (
	"errors"
	"fmt"
	"io"

	"github.com/dgraph-io/badger/v4"
)

// ErrStoreNotEmpty is returned when restoring into a store that already holds posts.
var ErrStoreNotEmpty = errors.New("store already holds posts")

// Backup writes a full dump of the store to w.
func Backup(db *badger.DB, w io.Writer) error {
	if _, err := db.Backup(w, 0); err != nil {
		return fmt.Errorf("failed to backup store: %w", err)
	}
	return nil
}

// Restore loads a dump produced by Backup into an empty store.
func Restore(db *badger.DB, r io.Reader) (err error) {
	posts, err := NewBadgerPostRepository(db).List()
	if err != nil {
		return err
	}
	if len(posts) > 0 {
		return ErrStoreNotEmpty
	}

	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic occurred during restore: %v", p)
		}
	}()
	if err := db.Load(r, 4); err != nil {
		return fmt.Errorf("failed to restore store: %w", err)
	}
	return nil
}
