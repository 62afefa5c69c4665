package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"luxe_haven/internal/adapters/observability"
	"luxe_haven/internal/domain"
)

const AdminID = "admin-1"

type LoginForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterForm struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginInput struct {
	Email    string `json:"email" validate:"required,looseemail"`
	Password string `json:"password" validate:"required,min=6"`
}

type registerInput struct {
	Email    string `json:"email" validate:"required,looseemail"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required"`
}

var credentialMessages = messages{
	"email.required":    "Email is required",
	"email.looseemail":  "Email is invalid",
	"password.required": "Password is required",
	"password.min":      "Password must be at least 6 characters",
	"name":              "Name is required",
}

type AuthService struct {
	users      domain.UserRepository
	sessions   domain.SessionRepository
	sessionTTL time.Duration
	cost       int
	now        func() time.Time
	newToken   func() string
}

func NewAuthService(u domain.UserRepository, s domain.SessionRepository, sessionTTL time.Duration, bcryptCost int) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		users:      u,
		sessions:   s,
		sessionTTL: sessionTTL,
		cost:       bcryptCost,
		now:        time.Now,
		newToken:   uuid.NewString,
	}
}

// Register creates a guest account and signs it in.
func (s *AuthService) Register(ctx context.Context, f RegisterForm) (domain.Session, error) {
	in := registerInput{Name: strings.TrimSpace(f.Name), Email: strings.TrimSpace(f.Email), Password: f.Password}
	var verr domain.ValidationError
	collect(&verr, in, credentialMessages)
	if err := verr.OrNil(); err != nil {
		return domain.Session{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return domain.Session{}, err
	}
	u, err := s.users.AddUser(ctx, domain.User{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Email:        normalizeEmail(in.Email),
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
	})
	if err != nil {
		return domain.Session{}, err
	}
	observability.ObserveAuth("register")
	log.Info().Str("user_id", u.ID).Msg("user registered")
	return s.startSession(ctx, u)
}

// Login checks the credentials and opens a session. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, f LoginForm) (domain.Session, error) {
	in := loginInput{Email: strings.TrimSpace(f.Email), Password: f.Password}
	var verr domain.ValidationError
	collect(&verr, in, credentialMessages)
	if err := verr.OrNil(); err != nil {
		return domain.Session{}, err
	}

	u, err := s.users.FindUserByEmail(ctx, in.Email)
	if errors.Is(err, domain.ErrNotFound) {
		observability.ObserveAuth("login_fail")
		return domain.Session{}, domain.ErrInvalidCredentials
	}
	if err != nil {
		return domain.Session{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		observability.ObserveAuth("login_fail")
		return domain.Session{}, domain.ErrInvalidCredentials
	}
	observability.ObserveAuth("login_ok")
	return s.startSession(ctx, u)
}

func (s *AuthService) startSession(ctx context.Context, u domain.User) (domain.Session, error) {
	now := s.now().UTC()
	sess := domain.Session{
		Token:     s.newToken(),
		User:      u.SessionUser(),
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}
	if err := s.sessions.CreateSession(ctx, sess); err != nil {
		return domain.Session{}, err
	}
	return sess, nil
}

// Session resolves a bearer token to the signed-in user.
func (s *AuthService) Session(ctx context.Context, token string) (domain.Session, error) {
	sess, err := s.sessions.GetSession(ctx, token)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Session{}, domain.ErrUnauthenticated
	}
	return sess, err
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	observability.ObserveAuth("logout")
	return s.sessions.DeleteSession(ctx, token)
}

// EnsureAdmin creates the built-in admin account when its email is not registered yet.
// An existing account is left untouched.
func (s *AuthService) EnsureAdmin(ctx context.Context, email, name, password string) error {
	_, err := s.users.FindUserByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return err
	}
	_, err = s.users.AddUser(ctx, domain.User{
		ID:           AdminID,
		Name:         name,
		Email:        normalizeEmail(email),
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	})
	if errors.Is(err, domain.ErrEmailInUse) {
		return nil
	}
	if err == nil {
		log.Info().Str("email", email).Msg("admin account created")
	}
	return err
}

// SetAdmin creates or overwrites an admin account, resetting its password.
func (s *AuthService) SetAdmin(ctx context.Context, f RegisterForm) (domain.User, error) {
	in := registerInput{Name: strings.TrimSpace(f.Name), Email: strings.TrimSpace(f.Email), Password: f.Password}
	var verr domain.ValidationError
	collect(&verr, in, credentialMessages)
	if err := verr.OrNil(); err != nil {
		return domain.User{}, err
	}
	id := uuid.NewString()
	if existing, err := s.users.FindUserByEmail(ctx, in.Email); err == nil {
		id = existing.ID
	} else if !errors.Is(err, domain.ErrNotFound) {
		return domain.User{}, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return domain.User{}, err
	}
	u := domain.User{ID: id, Name: in.Name, Email: normalizeEmail(in.Email), PasswordHash: string(hash), Role: domain.RoleAdmin}
	if err := s.users.PutUser(ctx, u); err != nil {
		return domain.User{}, err
	}
	return u, nil
}
