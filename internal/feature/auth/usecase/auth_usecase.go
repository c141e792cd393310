package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/akhileshms120/irblibrary/internal/feature/auth/domain/entity"
)

const (
	// minPasswordLength is the minimum accepted password length.
	minPasswordLength = 6

	// sessionTTL bounds how long a sign-in stays valid without renewal.
	sessionTTL = 24 * time.Hour
)

// UserRepository abstracts the persistence layer for user identities.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns ErrEmailAlreadyExists if a
	// user with the same email exists.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user by email address. It returns
	// ErrUserNotFound if no such user exists.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// List returns all users ordered by creation time, newest first.
	List(ctx context.Context) ([]entity.User, error)
}

// ProfileRepository abstracts the persistence layer for role profiles.
type ProfileRepository interface {
	// Create persists a new profile for an identity.
	Create(ctx context.Context, profile *entity.Profile) error

	// FindByUserID retrieves the profile for an identity. It returns
	// ErrProfileNotFound when the identity has no profile; callers treat
	// that as "no role assigned", not as a failure.
	FindByUserID(ctx context.Context, userID string) (*entity.Profile, error)

	// List returns all profiles ordered by creation time, newest first.
	List(ctx context.Context) ([]entity.Profile, error)
}

// SessionRepository abstracts the persistence layer for sessions.
type SessionRepository interface {
	// Create persists a new session.
	Create(ctx context.Context, session *entity.Session) error

	// FindByID retrieves a session by its token value. It returns
	// ErrSessionNotFound if no such session exists.
	FindByID(ctx context.Context, id string) (*entity.Session, error)

	// Revoke marks a session as revoked.
	Revoke(ctx context.Context, id string) error
}

// JWTGenerator defines the interface for access-token generation.
type JWTGenerator interface {
	// GenerateToken creates a signed token carrying the identity and its
	// resolved role.
	GenerateToken(userID, email string, role entity.Role) (string, error)
}

// AuthUsecase implements authentication, role resolution and user
// provisioning.
type AuthUsecase struct {
	users        UserRepository
	profiles     ProfileRepository
	sessions     SessionRepository
	jwtGenerator JWTGenerator
	events       *SessionBroadcaster
}

// NewAuthUsecase creates a new AuthUsecase.
func NewAuthUsecase(users UserRepository, profiles ProfileRepository, sessions SessionRepository, jwtGenerator JWTGenerator, events *SessionBroadcaster) *AuthUsecase {
	if events == nil {
		events = NewSessionBroadcaster()
	}
	return &AuthUsecase{
		users:        users,
		profiles:     profiles,
		sessions:     sessions,
		jwtGenerator: jwtGenerator,
		events:       events,
	}
}

// Events exposes the session transition broadcaster for subscribers.
func (u *AuthUsecase) Events() *SessionBroadcaster {
	return u.events
}

func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

// ProvisionUser registers a new identity with a hashed password and
// assigns the given role through a profile. A failure to create the
// profile after the identity exists still returns the created identity
// so the operator can retry the role assignment.
func (u *AuthUsecase) ProvisionUser(ctx context.Context, email, password string, role entity.Role) (*entity.User, error) {
	if !entity.ValidRole(role) {
		return nil, ErrInvalidRole
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		ID:       uuid.NewString(),
		Email:    email,
		Password: string(hashed),
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}

	profile := &entity.Profile{
		UserID: user.ID,
		Email:  email,
		Role:   role,
	}
	if err := u.profiles.Create(ctx, profile); err != nil {
		return user, fmt.Errorf("user created but role assignment failed: %w", err)
	}
	return user, nil
}

// Login authenticates an identity and returns a signed token plus the
// recorded session. The token and session carry the role resolved from the
// identity's profile; a missing profile downgrades to RoleNone rather than
// failing. A bcrypt comparison runs even when the user does not exist to
// keep response timing uniform.
func (u *AuthUsecase) Login(ctx context.Context, email, password string) (string, *entity.Session, error) {
	user, err := u.users.FindByEmail(ctx, email)

	// Dummy hash so bcrypt.CompareHashAndPassword always runs.
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))
	if err != nil || compareErr != nil {
		return "", nil, ErrInvalidCredentials
	}

	role := u.ResolveRole(ctx, user.ID)

	token, tokenErr := u.jwtGenerator.GenerateToken(user.ID, user.Email, role)
	if tokenErr != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", tokenErr)
	}

	now := time.Now()
	session := &entity.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Email:     user.Email,
		Role:      role,
		CreatedAt: now,
		ExpiresAt: now.Add(sessionTTL),
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		return "", nil, fmt.Errorf("failed to record session: %w", err)
	}

	u.events.Publish(SessionEvent{Kind: SessionSignedIn, Session: session})
	return token, session, nil
}

// Logout revokes the session and announces the sign-out. Revoking a
// session that is already gone is not an error.
func (u *AuthUsecase) Logout(ctx context.Context, sessionID string) error {
	session, err := u.sessions.FindByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil
		}
		return err
	}
	if err := u.sessions.Revoke(ctx, sessionID); err != nil {
		return err
	}
	u.events.Publish(SessionEvent{Kind: SessionSignedOut, Session: session})
	return nil
}

// CurrentSession returns the session for the given ID if it is still
// valid, or nil when there is no live session.
func (u *AuthUsecase) CurrentSession(ctx context.Context, sessionID string) (*entity.Session, error) {
	session, err := u.sessions.FindByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if !session.IsValid() {
		return nil, nil
	}
	return session, nil
}

// ResolveRole maps an identity to its role. An identity without a profile
// acts with RoleNone; only a genuine lookup failure is worth logging, and
// even then the identity proceeds unprivileged rather than being locked out.
func (u *AuthUsecase) ResolveRole(ctx context.Context, userID string) entity.Role {
	profile, err := u.profiles.FindByUserID(ctx, userID)
	if err != nil {
		return entity.RoleNone
	}
	return profile.Role
}

// ListUsers returns all registered identities, newest first.
func (u *AuthUsecase) ListUsers(ctx context.Context) ([]entity.User, error) {
	return u.users.List(ctx)
}

// ListProfiles returns all role profiles, newest first.
func (u *AuthUsecase) ListProfiles(ctx context.Context) ([]entity.Profile, error) {
	return u.profiles.List(ctx)
}
