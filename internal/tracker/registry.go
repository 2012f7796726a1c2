package tracker

import (
	"context"
	"log/slog"

	"github.com/aevon-lab/stepboard/internal/core/steps"
)

// Register adds userID to the registry. Registering twice is a no-op.
func (s *Service) Register(ctx context.Context, userID string) error {
	if userID == "" {
		return steps.Invalidf("user id is required")
	}
	if err := s.store.Register(ctx, userID, s.nowFn()); err != nil {
		return s.storageErr("register", err)
	}
	slog.Info("User registered", "user_id", userID)
	return nil
}

// IsRegistered reports whether userID is known.
func (s *Service) IsRegistered(ctx context.Context, userID string) (bool, error) {
	if userID == "" {
		return false, nil
	}
	ok, err := s.store.IsRegistered(ctx, userID)
	if err != nil {
		return false, s.storageErr("is_registered", err)
	}
	return ok, nil
}

// DeleteUser removes the user together with all of its entries.
// Returns ErrUnknownUser when the user is not registered.
func (s *Service) DeleteUser(ctx context.Context, userID string) error {
	if err := s.requireRegistered(ctx, userID); err != nil {
		return err
	}
	if err := s.store.DeleteUser(ctx, userID); err != nil {
		return s.storageErr("delete_user", err)
	}
	s.invalidate(userID)

	slog.Info("User deleted", "user_id", userID)
	return nil
}

// Users lists every registered user ordered by ID.
func (s *Service) Users(ctx context.Context) ([]steps.User, error) {
	users, err := s.store.Users(ctx)
	if err != nil {
		return nil, s.storageErr("users", err)
	}
	return users, nil
}
