package cli

import (
	"coursework/internal/codec"
	"coursework/internal/config"
	"coursework/internal/repository"
	"coursework/internal/repository/file"
	"coursework/internal/repository/sqlite"
)

// openSnapshotter returns the configured snapshot backend for a collection
// along with a function releasing it.
func openSnapshotter[T repository.Entity](cfg *config.Config, collection, filePath string) (repository.Snapshotter[T], func() error, error) {
	noop := func() error { return nil }

	if err := ensureDir(cfg.Data.Dir); err != nil {
		return nil, noop, err
	}

	switch cfg.Store.Backend {
	case config.StoreBackendSQLite:
		db, err := sqlite.New(cfg.DataPath(cfg.Data.Database))
		if err != nil {
			return nil, noop, err
		}
		return sqlite.NewCollection[T](db, collection), db.Close, nil
	default:
		c, err := codec.ForFormat[T](cfg.Store.Format)
		if err != nil {
			return nil, noop, err
		}
		return file.New(filePath, c), noop, nil
	}
}
