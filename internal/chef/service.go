package chef

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

// Service implements chef registration, login, and profile management.
type Service struct {
	store Store
}

// NewService returns a Service backed by the given store.
// Panics on a nil store to fail fast during initialization.
func NewService(store Store) *Service {
	if store == nil {
		panic("chef: Store is required")
	}
	return &Service{store: store}
}

// RegisterInput carries the fields required to create a chef account.
type RegisterInput struct {
	RestaurantName string `json:"restaurantName"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
}

func (in *RegisterInput) validate() error {
	if strings.TrimSpace(in.RestaurantName) == "" {
		return fmt.Errorf("%w: restaurantName is required", ErrInvalidInput)
	}
	email := strings.TrimSpace(in.Email)
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: a valid email is required", ErrInvalidInput)
	}
	if len(in.Password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}
	return nil
}

// Register creates a new chef account with an inactive plan.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*Chef, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("chef: hash password: %w", err)
	}

	c := &Chef{
		ID:             uuid.NewString(),
		RestaurantName: strings.TrimSpace(in.RestaurantName),
		Email:          strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash:   string(hash),
		Phone:          strings.TrimSpace(in.Phone),
		Address:        strings.TrimSpace(in.Address),
		PlanActive:     false,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.store.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Login verifies the email/password pair and returns the chef.
// Unknown emails and wrong passwords both map to ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (*Chef, error) {
	c, err := s.store.ByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return c, nil
}

// Get returns the chef by id.
func (s *Service) Get(ctx context.Context, id string) (*Chef, error) {
	return s.store.ByID(ctx, id)
}

// ResolveActive returns the chef only when their plan currently grants
// access. A plan past its expiration is deactivated in place (the sweep may
// not have run yet) and reported as ErrPlanInactive.
func (s *Service) ResolveActive(ctx context.Context, id string) (*Chef, error) {
	c, err := s.store.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	if c.HasActivePlan(now) {
		return c, nil
	}
	if c.PlanExpired(now) {
		if _, err := s.store.DeactivateIfExpired(ctx, id, now); err != nil {
			return nil, err
		}
	}
	return nil, ErrPlanInactive
}

// UpdateProfile applies an allow-listed profile update.
func (s *Service) UpdateProfile(ctx context.Context, id string, upd ProfileUpdate) (*Chef, error) {
	if upd.RestaurantName != nil && strings.TrimSpace(*upd.RestaurantName) == "" {
		return nil, fmt.Errorf("%w: restaurantName cannot be empty", ErrInvalidInput)
	}
	return s.store.UpdateProfile(ctx, id, upd)
}
