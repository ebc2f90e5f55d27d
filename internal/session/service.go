// Package session implements the session store: identity registration,
// authentication, and session lifecycle over the durable key-value store.
//
// Credentials are stored and compared in plaintext. That is deliberate:
// this is a demo storefront with no server boundary, and the store's
// contract documents it as a trust-everyone mock.
package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/avasin/brewmart/internal/logging"
	"github.com/avasin/brewmart/internal/models"
	"github.com/avasin/brewmart/internal/storage"
)

// Service defines session store operations for the CLI.
//
// Contract:
//   - Signup: register a new account and activate a session for it.
//     Returns (false, nil) when the username is already taken.
//   - Login: authenticate against the registered users list.
//     Returns (false, nil) when no exact (username, password) pair exists;
//     the caller cannot distinguish a missing user from a wrong password.
//   - Logout: drop the persisted and in-memory session. Idempotent.
//   - Restore: load the persisted session at startup, purging corrupt data.
//   - Current: the active in-memory session, nil when logged out.
type Service interface {
	Signup(ctx context.Context, username, email, password string) (bool, error)
	Login(ctx context.Context, username, password string) (bool, error)
	Logout(ctx context.Context) error
	Restore(ctx context.Context) (*models.Session, error)
	Current() *models.Session
}

type service struct {
	kv         storage.KV
	log        logging.Logger
	loginDelay time.Duration
	current    *models.Session
}

// NewService constructs a session store over the given key-value store.
// loginDelay adds artificial latency to Login so the flow feels like a
// remote call; pass zero to disable it (tests do).
func NewService(kv storage.KV, log logging.Logger, loginDelay time.Duration) Service {
	return &service{kv: kv, log: log, loginDelay: loginDelay}
}

// loadUsers reads the registered-users collection. An absent key yields an
// empty list. A corrupt value is deleted and likewise treated as empty.
func (s *service) loadUsers(ctx context.Context) ([]models.Credential, error) {
	raw, err := s.kv.Get(ctx, storage.KeyUsers)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	var users []models.Credential
	if err := json.Unmarshal(raw, &users); err != nil {
		s.log.Warn(ctx, "purging corrupt users collection", "error", err)
		if err := s.kv.Delete(ctx, storage.KeyUsers); err != nil {
			return nil, err
		}
		return nil, nil
	}
	return users, nil
}

func (s *service) Signup(ctx context.Context, username, email, password string) (bool, error) {
	users, err := s.loadUsers(ctx)
	if err != nil {
		return false, err
	}

	for _, u := range users {
		if u.Username == username {
			return false, nil
		}
	}

	users = append(users, models.Credential{
		Username: username,
		Email:    email,
		Password: password,
	})
	sess := &models.Session{Username: username, Email: email}

	err = storage.Batch(ctx, s.kv, func(ctx context.Context, kv storage.KV) error {
		usersRaw, err := json.Marshal(users)
		if err != nil {
			return err
		}
		if err := kv.Set(ctx, storage.KeyUsers, usersRaw); err != nil {
			return err
		}
		sessRaw, err := json.Marshal(sess)
		if err != nil {
			return err
		}
		return kv.Set(ctx, storage.KeyCurrentUser, sessRaw)
	})
	if err != nil {
		return false, err
	}

	s.current = sess
	s.log.Info(ctx, "user registered", "username", username)
	return true, nil
}

func (s *service) Login(ctx context.Context, username, password string) (bool, error) {
	if s.loginDelay > 0 {
		timer := time.NewTimer(s.loginDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return false, ctx.Err()
		case <-timer.C:
		}
	}

	users, err := s.loadUsers(ctx)
	if err != nil {
		return false, err
	}

	var found *models.Credential
	for i := range users {
		if users[i].Username == username && users[i].Password == password {
			found = &users[i]
			break
		}
	}
	if found == nil {
		return false, nil
	}

	sess := &models.Session{Username: found.Username, Email: found.Email}
	raw, err := json.Marshal(sess)
	if err != nil {
		return false, err
	}
	if err := s.kv.Set(ctx, storage.KeyCurrentUser, raw); err != nil {
		return false, err
	}

	s.current = sess
	s.log.Info(ctx, "user logged in", "username", username)
	return true, nil
}

func (s *service) Logout(ctx context.Context) error {
	if err := s.kv.Delete(ctx, storage.KeyCurrentUser); err != nil {
		return err
	}
	s.current = nil
	return nil
}

func (s *service) Restore(ctx context.Context) (*models.Session, error) {
	raw, err := s.kv.Get(ctx, storage.KeyCurrentUser)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	var sess models.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		s.log.Warn(ctx, "purging corrupt persisted session", "error", err)
		if err := s.kv.Delete(ctx, storage.KeyCurrentUser); err != nil {
			return nil, err
		}
		return nil, nil
	}

	s.current = &sess
	return &sess, nil
}

func (s *service) Current() *models.Session {
	return s.current
}
