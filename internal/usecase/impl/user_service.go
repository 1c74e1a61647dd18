// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"vaxtrack/config"
	deliverycontext "vaxtrack/internal/delivery/context"
	"vaxtrack/internal/domain/entity"
	domainerrors "vaxtrack/internal/domain/errors"
	"vaxtrack/internal/domain/repository"
	"vaxtrack/internal/domain/service"
	"vaxtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	refreshTokenRepo  repository.RefreshTokenRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	audit             usecase.AuditRecorder
	maxActiveSessions int
	logger            *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Audit            usecase.AuditRecorder
	Config           *config.Config
	Logger           *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	maxActiveSessions := 0
	if params.Config != nil && params.Config.Auth != nil {
		maxActiveSessions = params.Config.Auth.MaxActiveSessions
	}

	return &userService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		refreshTokenRepo:  params.RefreshTokenRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		audit:             params.Audit,
		maxActiveSessions: maxActiveSessions,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete guardian registration process.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	// Hash validates strength first; bcrypt is CPU-bound so keep it outside
	// the transaction.
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Warn("Password rejected during registration", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	newUser := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Role:         entity.RoleGuardian,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// 1. Reject duplicate emails up front for a clean error; the unique
		// index still backstops races.
		_, findErr := userRepo.FindByEmail(ctx, input.Email)
		if findErr == nil {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("registration failed")
		}
		if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check existing email")
		}

		// 2. Create the account and its guardian profile.
		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		profile := &entity.GuardianProfile{
			UserID: newUser.ID,
			Phone:  input.Phone,
		}
		if err := userRepo.UpsertGuardianProfile(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to create guardian profile during registration")
		}
		newUser.GuardianProfile = profile

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.audit.Record(ctx, &entity.AuditEntry{
		ActorID:  &newUser.ID,
		Action:   entity.AuditActionRegister,
		Outcome:  entity.AuditOutcomeOK,
		Subject:  "user:" + newUser.ID.String(),
		ClientIP: input.ClientIP,
	})
	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{User: newUser}, nil
}

// Login orchestrates the credential check and opens a new session lineage.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.recordAuthFailure(ctx, nil, entity.AuditActionLogin, input.ClientIP, "unknown email")

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	// Check password outside transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.recordAuthFailure(ctx, &user.ID, entity.AuditActionLogin, input.ClientIP, "password mismatch")

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	// The lineage id doubles as the session id in refresh token claims, so
	// it must exist before the tokens are signed.
	sessionID := uuid.New()

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Role, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	if err := srv.openSession(ctx, user.ID, sessionID, refreshToken); err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.audit.Record(ctx, &entity.AuditEntry{
		ActorID:  &user.ID,
		Action:   entity.AuditActionLogin,
		Outcome:  entity.AuditOutcomeOK,
		Subject:  "session:" + sessionID.String(),
		ClientIP: input.ClientIP,
	})
	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(srv.tokenService.AccessTokenDuration().Seconds()),
		User:         user,
	}, nil
}

// openSession persists the new lineage, enforcing the active-session limit
// under a row lock when one is configured.
func (srv *userService) openSession(ctx context.Context, userID, sessionID uuid.UUID, refreshToken string) error {
	newLineage := &entity.RefreshToken{
		ID:        sessionID,
		UserID:    userID,
		TokenHash: srv.tokenService.HashToken(refreshToken),
		ExpiresAt: time.Now().Add(srv.tokenService.RefreshTokenDuration()),
	}

	if srv.maxActiveSessions <= 0 {
		// No session limit: direct insert avoids unnecessary transaction overhead.
		return srv.refreshTokenRepo.Create(ctx, newLineage)
	}

	// Keep lock, count and insert in one short transaction so concurrent
	// logins cannot both slip under the limit.
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		refreshRepo := repoFactory.RefreshTokenRepo()

		if err := userRepo.AcquireSessionMutex(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to lock user row for session limit check")
		}

		activeSessions, err := refreshRepo.CountActiveByUserID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to count active sessions")
		}
		if activeSessions >= srv.maxActiveSessions {
			return errors.Wrap(domainerrors.ErrSessionLimitExceeded, "active session limit exceeded")
		}

		return refreshRepo.Create(ctx, newLineage)
	})
}

// Refresh rotates the presented refresh token. The conditional hash swap is
// the reuse detector: when the stored hash no longer matches, someone already
// rotated this token, so the whole lineage is revoked.
func (srv *userService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.RefreshOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrTokenInvalid.WrapMessage("account no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load user for refresh")
	}

	// Generate the replacement pair before touching the database; the swap
	// below either installs the new hash or fails without side effects.
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Role, claims.SessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	oldHash := srv.tokenService.HashToken(input.RefreshToken)
	newHash := srv.tokenService.HashToken(refreshToken)
	now := time.Now()

	// The swap is a single conditional UPDATE, atomic on its own, so no
	// surrounding transaction. That matters on the failure path: the reuse
	// revocation below must stay committed even though the call returns an
	// error, and a shared transaction would roll it back with the error.
	rows, err := srv.refreshTokenRepo.RotateTokenHash(ctx, claims.SessionID, oldHash, newHash, now)
	if err != nil {
		return nil, errors.Wrap(err, "failed to rotate refresh token")
	}
	if rows != 1 {
		// The conditional update matched nothing. Inspect the lineage to
		// find out why.
		return nil, srv.resolveFailedRotation(ctx, srv.refreshTokenRepo, claims.SessionID, oldHash, now, input.ClientIP, &user.ID)
	}

	srv.audit.Record(ctx, &entity.AuditEntry{
		ActorID:  &user.ID,
		Action:   entity.AuditActionRefresh,
		Outcome:  entity.AuditOutcomeOK,
		Subject:  "session:" + claims.SessionID.String(),
		ClientIP: input.ClientIP,
	})

	return &usecase.RefreshOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(srv.tokenService.AccessTokenDuration().Seconds()),
	}, nil
}

// resolveFailedRotation classifies a rotation whose conditional update hit
// zero rows and revokes the lineage when the failure means replay.
func (srv *userService) resolveFailedRotation(
	ctx context.Context,
	refreshRepo repository.RefreshTokenRepository,
	sessionID uuid.UUID,
	presentedHash string,
	now time.Time,
	clientIP string,
	actorID *uuid.UUID,
) error {
	lineage, err := refreshRepo.FindByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return domainerrors.ErrTokenInvalid.WrapMessage("unknown session")
		}

		return errors.Wrap(err, "failed to inspect session after rotation miss")
	}

	switch {
	case lineage.RevokedAt != nil:
		// Lineage already dead. Presenting any of its tokens after
		// revocation is replay.
		srv.recordReuse(ctx, actorID, sessionID, clientIP)

		return domainerrors.ErrRefreshTokenReused.WrapMessage("session already revoked")

	case !lineage.ExpiresAt.After(now):
		return domainerrors.ErrTokenExpired.WrapMessage("session expired")

	case lineage.TokenHash != presentedHash:
		// The stored hash moved on: this token was already rotated once.
		// Kill the lineage so the holder of the newer token is cut off too.
		if err := refreshRepo.Revoke(ctx, sessionID, entity.RevokeReasonReuse); err != nil {
			return errors.Wrap(err, "failed to revoke session after reuse")
		}
		srv.recordReuse(ctx, actorID, sessionID, clientIP)
		srv.log(ctx).Warn("Refresh token reuse detected, lineage revoked",
			slog.Any("sessionID", sessionID),
		)

		return domainerrors.ErrRefreshTokenReused.WrapMessage("refresh token reuse detected")

	default:
		// Hash matches but the update still missed: a concurrent rotation
		// won between our read and write. Treat like reuse-adjacent replay
		// without revoking; the winner holds the valid token.
		return domainerrors.ErrRefreshTokenReused.WrapMessage("concurrent rotation lost")
	}
}

func (srv *userService) recordReuse(ctx context.Context, actorID *uuid.UUID, sessionID uuid.UUID, clientIP string) {
	srv.audit.Record(ctx, &entity.AuditEntry{
		ActorID:  actorID,
		Action:   entity.AuditActionRefreshReused,
		Outcome:  entity.AuditOutcomeDenied,
		Subject:  "session:" + sessionID.String(),
		ClientIP: clientIP,
	})
}

func (srv *userService) recordAuthFailure(ctx context.Context, actorID *uuid.UUID, action string, clientIP, detail string) {
	srv.audit.Record(ctx, &entity.AuditEntry{
		ActorID:  actorID,
		Action:   action,
		Outcome:  entity.AuditOutcomeDenied,
		ClientIP: clientIP,
		Detail:   detail,
	})
}

// Logout revokes the lineage of the presented refresh token. Idempotent: an
// invalid or already revoked token still results in a successful logout.
func (srv *userService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	srv.log(ctx).Info("Attempting to log out")

	var actorID *uuid.UUID
	var sessionID uuid.UUID
	if claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken); err == nil {
		actorID = &claims.UserID
		sessionID = claims.SessionID
	} else {
		// Even with an invalid token, proceed; revocation by hash below is
		// harmless when nothing matches.
		srv.log(ctx).Warn("Logout with invalid token", slog.Any("error", err))
	}

	tokenHash := srv.tokenService.HashToken(input.RefreshToken)

	if err := srv.refreshTokenRepo.RevokeByTokenHash(ctx, tokenHash, entity.RevokeReasonLogout); err != nil {
		if !errors.Is(err, repository.ErrRefreshTokenNotFound) {
			srv.log(ctx).Error("Failed to revoke refresh token", slog.Any("error", err))

			return errors.Wrap(err, "failed to revoke refresh token")
		}
	}

	srv.audit.Record(ctx, &entity.AuditEntry{
		ActorID:  actorID,
		Action:   entity.AuditActionLogout,
		Outcome:  entity.AuditOutcomeOK,
		Subject:  "session:" + sessionID.String(),
		ClientIP: input.ClientIP,
	})
	srv.log(ctx).Info("Successfully logged out")

	return nil
}

// GetMe returns the calling account with its guardian profile.
func (srv *userService) GetMe(ctx context.Context, scope entity.AccessScope) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, scope.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("account not found")
		}

		return nil, errors.Wrap(err, "failed to load account")
	}

	return user, nil
}

// UpdateProfile updates the display name and guardian profile fields.
func (srv *userService) UpdateProfile(ctx context.Context, input *usecase.UpdateProfileInput) (*entity.User, error) {
	var updated *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, input.Scope.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("account not found")
			}

			return errors.Wrap(err, "failed to load account for profile update")
		}

		if input.Name != "" {
			user.Name = input.Name
			if err := userRepo.Update(ctx, user); err != nil {
				return errors.Wrap(err, "failed to update user name")
			}
		}

		profile := &entity.GuardianProfile{
			UserID:      user.ID,
			Phone:       input.Phone,
			Address:     input.Address,
			DeviceToken: input.DeviceToken,
			Locale:      input.Locale,
		}
		if err := userRepo.UpsertGuardianProfile(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to upsert guardian profile")
		}

		user.GuardianProfile = profile
		updated = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute profile update transaction", slog.Any("userID", input.Scope.UserID), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}

// DeleteAccount soft-deletes the account and revokes every session lineage.
func (srv *userService) DeleteAccount(ctx context.Context, scope entity.AccessScope, clientIP string) error {
	srv.log(ctx).Info("Deleting account", slog.Any("userID", scope.UserID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.RefreshTokenRepo()
		userRepo := repoFactory.UserRepo()

		if err := refreshRepo.RevokeAllByUserID(ctx, scope.UserID, entity.RevokeReasonManual); err != nil {
			return errors.Wrap(err, "failed to revoke sessions during account deletion")
		}

		if err := userRepo.Delete(ctx, scope.UserID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("account not found")
			}

			return errors.Wrap(err, "failed to delete account")
		}

		return nil
	})
	if err != nil {
		return err
	}

	actorID := scope.UserID
	srv.audit.Record(ctx, &entity.AuditEntry{
		ActorID:  &actorID,
		Action:   entity.AuditActionAccountDelete,
		Outcome:  entity.AuditOutcomeOK,
		Subject:  "user:" + scope.UserID.String(),
		ClientIP: clientIP,
	})

	return nil
}
