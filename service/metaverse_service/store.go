package metaverse_service

import (
	"errors"

	"ggplay-backend/model"
)

// Store is the row-level persistence surface the lifecycle manager and
// usage tracker consume. *dao.MetaverseDAO satisfies it.
type Store interface {
	Create(mv *model.Metaverse) error
	GetByID(id string) (*model.Metaverse, error)
	GetByIDForUser(id, userID string) (*model.Metaverse, error)
	ListByUser(userID string) ([]*model.Metaverse, error)
	SetStatus(id string, status model.MetaverseStatus) error
	SetStatusPlayers(id string, status model.MetaverseStatus, players int) error
	AccrueUsage(id string, minutes, hours int) error
	Delete(id string) error
}

// ErrInvalidTransition is returned when an action's status precondition
// does not hold. Wrapped errors carry the required prior state.
var ErrInvalidTransition = errors.New("invalid transition")
