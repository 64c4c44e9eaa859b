package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/shingu-dev/club-server/internal/domain/common/errorz"
	"github.com/shingu-dev/club-server/internal/domain/entity"
	"github.com/shingu-dev/club-server/internal/domain/utils/validator"
	"github.com/shingu-dev/club-server/pkg/generator"
)

const (
	minPasswordLength = 6
	signupCodeTTL     = 10 * time.Minute
)

type CredentialStorage interface {
	Create(ctx context.Context, credential *entity.Credential) error
	Get(ctx context.Context, userID string) (*entity.Credential, error)
	GetByEmail(ctx context.Context, email string) (*entity.Credential, error)
	UpdatePassword(ctx context.Context, userID string, hash []byte) error
	Delete(ctx context.Context, userID string) error
}

type SessionStorage interface {
	Set(ctx context.Context, sessionID, userID string, ttl time.Duration) error
	Get(ctx context.Context, sessionID string) (string, error)
	Delete(ctx context.Context, sessionID string) error
}

type CodeStorage interface {
	Set(ctx context.Context, email, code string, ttl time.Duration) error
	Get(ctx context.Context, email string) (string, error)
	Clear(ctx context.Context, email string) error
}

type smtpClient interface {
	SendConfirmationEmail(to string, code string)
}

// sessionClaims is the JWT payload for a signed-in session. The session
// id is also registered in the session storage so sign-out and account
// deletion revoke tokens before expiry.
type sessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// IdentityService is the identity provider: account creation behind an
// email verification code, password sign-in issuing JWT session tokens,
// re-authentication, password change and account deletion.
type IdentityService struct {
	credentialStorage CredentialStorage
	sessionStorage    SessionStorage
	codeStorage       CodeStorage
	userStorage       UserStorage
	smtpClient        smtpClient

	jwtSecret  []byte
	sessionTTL time.Duration
}

func NewIdentityService(
	credentialStorage CredentialStorage,
	sessionStorage SessionStorage,
	codeStorage CodeStorage,
	userStorage UserStorage,
	smtpClient smtpClient,
	jwtSecret string,
	sessionTTL time.Duration,
) *IdentityService {
	return &IdentityService{
		credentialStorage: credentialStorage,
		sessionStorage:    sessionStorage,
		codeStorage:       codeStorage,
		userStorage:       userStorage,
		smtpClient:        smtpClient,
		jwtSecret:         []byte(jwtSecret),
		sessionTTL:        sessionTTL,
	}
}

// RequestSignupCode mails a one-time code to a university address and
// stores it with a short TTL.
func (s *IdentityService) RequestSignupCode(ctx context.Context, email string) error {
	if !validator.Email(email, nil) {
		return errorz.Validation
	}
	code, err := generator.NumericCode(6)
	if err != nil {
		return err
	}
	if err = s.codeStorage.Set(ctx, email, code, signupCodeTTL); err != nil {
		return err
	}
	s.smtpClient.SendConfirmationEmail(email, code)
	return nil
}

// VerifySignupCode checks a code without consuming it, so the client
// can gate the signup form before submitting.
func (s *IdentityService) VerifySignupCode(ctx context.Context, email, code string) error {
	stored, err := s.codeStorage.Get(ctx, email)
	if err != nil || stored != code {
		return errorz.InvalidCode
	}
	return nil
}

// SignUp creates the account and its profile document. The email code
// is consumed; the caller is not signed in afterwards.
func (s *IdentityService) SignUp(ctx context.Context, email, password, code, name, phone string) (*entity.UserProfile, error) {
	if err := s.VerifySignupCode(ctx, email, code); err != nil {
		return nil, err
	}
	if len(password) < minPasswordLength {
		return nil, errorz.Validation
	}
	if _, err := s.credentialStorage.GetByEmail(ctx, email); err == nil {
		return nil, errorz.Validation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	userID := uuid.New().String()
	if err = s.credentialStorage.Create(ctx, &entity.Credential{
		UserID:       userID,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
	}); err != nil {
		return nil, err
	}

	user, err := s.userStorage.Create(ctx, &entity.UserProfile{
		ID:           userID,
		Email:        email,
		Name:         name,
		Phone:        phone,
		MyClubStatus: entity.ClubStatusNone,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	_ = s.codeStorage.Clear(ctx, email)
	return user, nil
}

// SignIn verifies the password and issues a session token.
func (s *IdentityService) SignIn(ctx context.Context, email, password string) (string, error) {
	credential, err := s.credentialStorage.GetByEmail(ctx, email)
	if err != nil {
		return "", errorz.InvalidCredential
	}
	if bcrypt.CompareHashAndPassword(credential.PasswordHash, []byte(password)) != nil {
		return "", errorz.InvalidCredential
	}

	sessionID := uuid.New().String()
	if err = s.sessionStorage.Set(ctx, sessionID, credential.UserID, s.sessionTTL); err != nil {
		return "", err
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &sessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   credential.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionTTL)),
		},
	})
	return token.SignedString(s.jwtSecret)
}

// Session resolves a bearer token to the signed-in user id. The token
// must parse, be unexpired and still be registered in session storage.
func (s *IdentityService) Session(ctx context.Context, tokenString string) (string, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return "", errorz.Unauthenticated
	}
	userID, err := s.sessionStorage.Get(ctx, claims.SessionID)
	if err != nil || userID != claims.Subject {
		return "", errorz.Unauthenticated
	}
	return userID, nil
}

// SignOut revokes the session behind a still-valid token. An already
// revoked or malformed token is not an error for the caller.
func (s *IdentityService) SignOut(ctx context.Context, tokenString string) error {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil
	}
	return s.sessionStorage.Delete(ctx, claims.SessionID)
}

// Reauthenticate re-checks the caller's current password before a
// sensitive operation.
func (s *IdentityService) Reauthenticate(ctx context.Context, callerID, currentPassword string) error {
	credential, err := s.credentialStorage.Get(ctx, callerID)
	if err != nil {
		return errorz.InvalidCredential
	}
	if bcrypt.CompareHashAndPassword(credential.PasswordHash, []byte(currentPassword)) != nil {
		return errorz.InvalidCredential
	}
	return nil
}

// ChangePassword re-authenticates and replaces the stored hash.
func (s *IdentityService) ChangePassword(ctx context.Context, callerID, currentPassword, newPassword string) error {
	if err := s.Reauthenticate(ctx, callerID, currentPassword); err != nil {
		return err
	}
	if len(newPassword) < minPasswordLength {
		return errorz.Validation
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.credentialStorage.UpdatePassword(ctx, callerID, hash)
}

// DeleteAccount re-authenticates, then removes the credential, the
// session and the profile document. Roster and application documents
// are left behind; presidents must delegate before deleting.
func (s *IdentityService) DeleteAccount(ctx context.Context, callerID, currentPassword, tokenString string) error {
	if err := s.Reauthenticate(ctx, callerID, currentPassword); err != nil {
		return err
	}
	user, err := s.userStorage.Get(ctx, callerID)
	if err == nil && user.PresidentOf != "" {
		return errorz.InvalidTransition
	}
	if err = s.credentialStorage.Delete(ctx, callerID); err != nil {
		return err
	}
	_ = s.SignOut(ctx, tokenString)
	return s.userStorage.Delete(ctx, callerID)
}
