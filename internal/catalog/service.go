package catalog

import (
	"fmt"

	"gamecatalog/backend/internal/hub"
	"gamecatalog/backend/internal/models"

	"github.com/sirupsen/logrus"
)

// Event types published after successful writes.
const (
	EventCreated = "game.created"
	EventUpdated = "game.updated"
	EventDeleted = "game.deleted"
)

// Store is the ordered collection the service reads and mutates.
type Store interface {
	List() []models.Game
	Get(id int64) (models.Game, bool)
	Prepend(game models.Game) error
	Append(game models.Game) error
	// Update runs fn on the stored record under the store's write lock and
	// keeps the result only when fn returns nil. found is false when no
	// record has the id, in which case fn is never called.
	Update(id int64, fn func(*models.Game) error) (game models.Game, found bool, err error)
	Delete(id int64) bool
	Len() int
}

// Publisher receives change events.
type Publisher interface {
	Publish(event hub.Event)
}

// Option configures a Service.
type Option func(*Service)

// WithPublisher sends change events to p.
func WithPublisher(p Publisher) Option {
	return func(s *Service) { s.events = p }
}

// WithLogger sets the service logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Service) { s.log = log }
}

// Service implements the catalog operations over a Store.
type Service struct {
	store  Store
	ids    IDGenerator
	events Publisher
	log    logrus.FieldLogger
}

// NewService builds a Service. A nil ids falls back to a Sequence starting at 1.
func NewService(store Store, ids IDGenerator, opts ...Option) *Service {
	if ids == nil {
		ids = NewSequence(1)
	}
	s := &Service{
		store: store,
		ids:   ids,
		log:   logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Seed appends inputs in order, without publishing events. It is meant for
// startup, before the service takes traffic.
func (s *Service) Seed(inputs []GameInput) error {
	for i, in := range inputs {
		if msgs := Validate(in, ModeCreate); len(msgs) > 0 {
			return fmt.Errorf("seed %d: %w", i, &ValidationError{Errors: msgs})
		}
		game := models.Game{ID: s.ids.NextID()}
		in.Apply(&game)
		if err := s.store.Append(game); err != nil {
			return fmt.Errorf("seed %d: %w", i, err)
		}
	}
	return nil
}

// List returns every record, most recently created first.
func (s *Service) List() []models.Game {
	return s.store.List()
}

// Count returns the collection size.
func (s *Service) Count() int {
	return s.store.Len()
}

// Get returns the record with the given id.
func (s *Service) Get(id int64) (models.Game, error) {
	game, ok := s.store.Get(id)
	if !ok {
		return models.Game{}, ErrNotFound
	}
	return game, nil
}

// Create validates in and stores it as a new record at the front.
func (s *Service) Create(in GameInput) (models.Game, error) {
	if msgs := Validate(in, ModeCreate); len(msgs) > 0 {
		return models.Game{}, &ValidationError{Errors: msgs}
	}

	game := models.Game{ID: s.ids.NextID()}
	in.Apply(&game)
	if err := s.store.Prepend(game); err != nil {
		return models.Game{}, fmt.Errorf("store game %d: %w", game.ID, err)
	}

	s.log.WithField("game_id", game.ID).Debug("game created")
	s.publish(EventCreated, game)
	return game, nil
}

// Update merges the fields present in in into the record with the given id.
func (s *Service) Update(id int64, in GameInput) (models.Game, error) {
	game, found, err := s.store.Update(id, func(g *models.Game) error {
		if msgs := Validate(in, ModeUpdate); len(msgs) > 0 {
			return &ValidationError{Errors: msgs}
		}
		in.Apply(g)
		return nil
	})
	if !found {
		return models.Game{}, ErrNotFound
	}
	if err != nil {
		return models.Game{}, err
	}

	s.log.WithField("game_id", id).Debug("game updated")
	s.publish(EventUpdated, game)
	return game, nil
}

// Delete removes the record with the given id.
func (s *Service) Delete(id int64) error {
	if !s.store.Delete(id) {
		return ErrNotFound
	}

	s.log.WithField("game_id", id).Debug("game deleted")
	s.publish(EventDeleted, map[string]int64{"id": id})
	return nil
}

func (s *Service) publish(eventType string, payload interface{}) {
	if s.events == nil {
		return
	}
	s.events.Publish(hub.Event{Type: eventType, Payload: payload})
}
