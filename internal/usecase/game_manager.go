package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
)

type sessionRepo interface {
	CreateOrUpdate(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameManager drives one engine per session. Every load-place-save cycle runs
// under a single lock, the engine itself has no synchronization.
type GameManager struct {
	logger      *slog.Logger
	sessionRepo sessionRepo

	mu sync.Mutex
}

func NewGameManager(logger *slog.Logger, sessionRepo sessionRepo) *GameManager {
	return &GameManager{
		logger:      logger.With("component", "game_manager"),
		sessionRepo: sessionRepo,
	}
}

// StartSession - resumes the session with the given id, or starts a new one.
// An empty id always starts a new session under a generated id.
func (that *GameManager) StartSession(ctx context.Context, id string) (*entity.Session, error) {
	log := that.logger.With("method", "StartSession")

	that.mu.Lock()
	defer that.mu.Unlock()

	if id != "" {
		session, err := that.sessionRepo.GetByID(ctx, id)
		if err == nil {
			if _, err = session.Engine(); err != nil {
				return nil, fmt.Errorf("failed to resume session: %w", err)
			}

			log.Info("session resumed", "sessionID", id)
			return session, nil
		}

		if !errors.Is(err, apperror.ErrSessionNotFound) {
			return nil, fmt.Errorf("failed to get session: %w", err)
		}
	} else {
		id = uuid.NewString()
	}

	session := entity.NewSession(id)
	if err := that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	log.Info("session created", "sessionID", id)

	return session, nil
}

// Session - returns the stored session.
func (that *GameManager) Session(ctx context.Context, id string) (*entity.Session, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.getSession(ctx, id)
}

// Place - places the current player's mark at cell. Illegal placements are
// not an error and leave the stored session untouched.
func (that *GameManager) Place(ctx context.Context, id string, cell int) (*entity.Session, tictactoe.PlaceResult, error) {
	log := that.logger.With("method", "Place", "sessionID", id, "cell", cell)

	that.mu.Lock()
	defer that.mu.Unlock()

	session, err := that.getSession(ctx, id)
	if err != nil {
		return nil, tictactoe.ResultIllegal, err
	}

	engine, err := session.Engine()
	if err != nil {
		return nil, tictactoe.ResultIllegal, fmt.Errorf("failed to restore game: %w", err)
	}

	mover := engine.CurrentPlayer()

	result, err := engine.Place(cell)
	if err != nil {
		return nil, tictactoe.ResultIllegal, fmt.Errorf("failed to place: %w", err)
	}

	if result == tictactoe.ResultIllegal {
		log.Debug("illegal placement ignored")
		return session, result, nil
	}

	session.Apply(engine)
	session.Record(result, mover)

	if err = that.updateSession(ctx, session); err != nil {
		return nil, tictactoe.ResultIllegal, err
	}

	switch result {
	case tictactoe.ResultWin:
		log.Info("game won", "winner", mover.String())
	case tictactoe.ResultStalemate:
		log.Info("game ended in a stalemate")
	case tictactoe.ResultNeutral, tictactoe.ResultIllegal:
		log.Debug("placement", "result", result.String())
	}

	return session, result, nil
}

// Restart - starts a fresh game in the session, the score is kept.
func (that *GameManager) Restart(ctx context.Context, id string) (*entity.Session, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	session, err := that.getSession(ctx, id)
	if err != nil {
		return nil, err
	}

	engine, err := session.Engine()
	if err != nil {
		that.logger.Warn("resetting unreadable game", "sessionID", id, "error", err)
		engine = tictactoe.NewEngine()
	}

	engine.Reset()
	session.Apply(engine)

	if err = that.updateSession(ctx, session); err != nil {
		return nil, err
	}

	that.logger.Info("game restarted", "sessionID", id)

	return session, nil
}

// EndSession - removes the session from storage.
func (that *GameManager) EndSession(ctx context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.sessionRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	that.logger.Info("session ended", "sessionID", id)

	return nil
}

func (that *GameManager) getSession(ctx context.Context, id string) (*entity.Session, error) {
	session, err := that.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}

func (that *GameManager) updateSession(ctx context.Context, session *entity.Session) error {
	if err := that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}

	return nil
}
