package storage

import (
	"context"

	"github.com/dyluth/shelf/pkg/catalog"
	"github.com/sirupsen/logrus"
)

// Restore loads the saved state, falling back to an empty state on any
// failure. It never returns an error: an unreadable store is logged and the
// catalog starts empty.
func Restore(ctx context.Context, store Store, log logrus.FieldLogger) *catalog.State {
	state, err := store.Load(ctx)
	switch {
	case err == nil:
		log.WithFields(logrus.Fields{
			"books":       len(state.Books),
			"checked_out": len(state.CheckedOut),
		}).Info("restored inventory")
		return state
	case IsNoState(err):
		log.Info("no saved inventory, starting empty")
	default:
		log.WithError(err).Warn("could not restore inventory, starting empty")
	}
	return catalog.NewState()
}
