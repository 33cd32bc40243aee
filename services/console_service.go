// Package services: services/console_service.go
package services

import (
	"errors"
	"sync"

	"courtside/logger"
)

// ConsoleServiceInterface guards the single scoring-console seat: one
// scorer writes at a time, everyone else watches.
type ConsoleServiceInterface interface {
	Claim(user string) error
	Release(user string) error
	Holder() string
	Reset()
}

// ConsoleService is the in-memory seat tracker.
type ConsoleService struct {
	mu     sync.Mutex
	holder string
}

// NewConsoleService creates a new ConsoleService instance.
func NewConsoleService() *ConsoleService {
	return &ConsoleService{}
}

// Claim assigns the scoring console to a user. Claiming again as the
// same user is a no-op so a reconnecting scorer keeps the seat.
func (s *ConsoleService) Claim(user string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	logger.Info.Printf("Attempting to claim scoring console for user '%s'", user)
	if s.holder != "" && s.holder != user {
		err := errors.New("scoring console is already taken")
		logger.Error.Printf("Claim failed for user '%s': %v", user, err)
		return err
	}
	s.holder = user
	logger.Info.Printf("Scoring console claimed by '%s'", user)
	return nil
}

// Release vacates the console; only the holder may release it.
func (s *ConsoleService) Release(user string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.holder != user {
		return errors.New("user does not hold the scoring console")
	}
	logger.Info.Printf("Scoring console released by '%s'", user)
	s.holder = ""
	return nil
}

// Holder returns the current console holder, or "" when vacant.
func (s *ConsoleService) Holder() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.holder
}

// Reset force-clears the seat, used when a match is reset.
func (s *ConsoleService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	logger.Info.Println("Reset: clearing scoring console seat")
	s.holder = ""
}
