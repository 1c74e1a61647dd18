package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"vaxtrack/config"
	"vaxtrack/internal/domain/entity"
	domainerrors "vaxtrack/internal/domain/errors"
	"vaxtrack/internal/domain/repository"
	"vaxtrack/internal/domain/service"
	mockRepo "vaxtrack/internal/mocks/repository"
	mockSvc "vaxtrack/internal/mocks/service"
	mockUC "vaxtrack/internal/mocks/usecase"
	"vaxtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service          usecase.UserUsecase
	txManager        *mockRepo.MockTransactionManager
	userRepo         *mockRepo.MockUserRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
	audit            *mockUC.MockAuditRecorder
}

func createTestUserService(t *testing.T, maxActiveSessions int) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	audit := mockUC.NewMockAuditRecorder(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{
		Auth: &config.AuthConfig{MaxActiveSessions: maxActiveSessions},
	}

	svc := NewUserService(UserServiceParams{
		TxManager:        txManager,
		UserRepo:         userRepo,
		RefreshTokenRepo: refreshTokenRepo,
		Hasher:           hasher,
		TokenService:     tokenService,
		Audit:            audit,
		Config:           cfg,
		Logger:           logger,
	})

	return userServiceFixtures{
		service:          svc,
		txManager:        txManager,
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		hasher:           hasher,
		tokenService:     tokenService,
		audit:            audit,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Test Guardian",
		Email:    "guardian@example.com",
		Password: "Password123!",
		Phone:    "0912345678",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(nil, repository.ErrUserNotFound)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)

			mockUserRepo.EXPECT().
				UpsertGuardianProfile(ctx, mock.AnythingOfType("*entity.GuardianProfile")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.audit.EXPECT().Record(ctx, mock.AnythingOfType("*entity.AuditEntry")).Return()

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, entity.RoleGuardian, output.User.Role)
	assert.Equal(t, "hashed_password", output.User.PasswordHash)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Test Guardian",
		Email:    "taken@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(&entity.User{ID: uuid.New(), Email: input.Email}, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Register_WeakPassword(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Test Guardian",
		Email:    "guardian@example.com",
		Password: "weak",
	}

	fx.hasher.EXPECT().
		Hash(input.Password).
		Return("", domainerrors.ErrPasswordStrength)

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "guardian@example.com",
		PasswordHash: "hashed_password",
		Role:         entity.RoleGuardian,
	}
	input := &usecase.LoginInput{Email: user.Email, Password: "Password123!"}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(user, nil)
	fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(true)

	fx.tokenService.EXPECT().
		GenerateTokens(user.ID, user.Role, mock.AnythingOfType("uuid.UUID")).
		Return("access-token", "refresh-token", nil)
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	fx.tokenService.EXPECT().RefreshTokenDuration().Return(30 * 24 * time.Hour)
	fx.tokenService.EXPECT().AccessTokenDuration().Return(15 * time.Minute)

	// No session limit configured, so the lineage is inserted directly.
	fx.refreshTokenRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Run(func(ctx context.Context, token *entity.RefreshToken) {
			assert.Equal(t, user.ID, token.UserID)
			assert.Equal(t, "refresh-hash", token.TokenHash)
			assert.NotEqual(t, uuid.Nil, token.ID)
		}).
		Return(nil)

	fx.audit.EXPECT().Record(ctx, mock.AnythingOfType("*entity.AuditEntry")).Return()

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, int64(900), output.ExpiresIn)
	assert.Equal(t, user, output.User)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "guardian@example.com",
		PasswordHash: "hashed_password",
		Role:         entity.RoleGuardian,
	}
	input := &usecase.LoginInput{Email: user.Email, Password: "wrong"}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(user, nil)
	fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(false)
	fx.audit.EXPECT().Record(ctx, mock.AnythingOfType("*entity.AuditEntry")).Return()

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "nobody@example.com", Password: "Password123!"}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrUserNotFound)
	fx.audit.EXPECT().Record(ctx, mock.AnythingOfType("*entity.AuditEntry")).Return()

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	// Unknown email and bad password are indistinguishable to the caller.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_SessionLimitExceeded(t *testing.T) {
	fx := createTestUserService(t, 1)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "guardian@example.com",
		PasswordHash: "hashed_password",
		Role:         entity.RoleGuardian,
	}
	input := &usecase.LoginInput{Email: user.Email, Password: "Password123!"}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(user, nil)
	fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(true)
	fx.tokenService.EXPECT().
		GenerateTokens(user.ID, user.Role, mock.AnythingOfType("uuid.UUID")).
		Return("access-token", "refresh-token", nil)
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	fx.tokenService.EXPECT().RefreshTokenDuration().Return(30 * 24 * time.Hour)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

			mockUserRepo.EXPECT().AcquireSessionMutex(ctx, user.ID).Return(nil)
			mockRefreshRepo.EXPECT().CountActiveByUserID(ctx, user.ID).Return(1, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrSessionLimitExceeded)
}

func TestUserService_Refresh_Success(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Role: entity.RoleGuardian}
	sessionID := uuid.New()
	input := &usecase.RefreshInput{RefreshToken: "old-refresh-token"}

	fx.tokenService.EXPECT().
		ValidateRefreshToken(input.RefreshToken).
		Return(&service.Claims{UserID: user.ID, SessionID: sessionID}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.tokenService.EXPECT().
		GenerateTokens(user.ID, user.Role, sessionID).
		Return("new-access-token", "new-refresh-token", nil)
	fx.tokenService.EXPECT().HashToken("old-refresh-token").Return("old-hash")
	fx.tokenService.EXPECT().HashToken("new-refresh-token").Return("new-hash")
	fx.tokenService.EXPECT().AccessTokenDuration().Return(15 * time.Minute)

	fx.refreshTokenRepo.EXPECT().
		RotateTokenHash(ctx, sessionID, "old-hash", "new-hash", mock.AnythingOfType("time.Time")).
		Return(int64(1), nil)

	fx.audit.EXPECT().Record(ctx, mock.AnythingOfType("*entity.AuditEntry")).Return()

	output, err := fx.service.Refresh(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "new-access-token", output.AccessToken)
	assert.Equal(t, "new-refresh-token", output.RefreshToken)
}

func TestUserService_Refresh_ReuseDetected(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Role: entity.RoleGuardian}
	sessionID := uuid.New()
	input := &usecase.RefreshInput{RefreshToken: "already-rotated-token"}

	fx.tokenService.EXPECT().
		ValidateRefreshToken(input.RefreshToken).
		Return(&service.Claims{UserID: user.ID, SessionID: sessionID}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.tokenService.EXPECT().
		GenerateTokens(user.ID, user.Role, sessionID).
		Return("new-access-token", "new-refresh-token", nil)
	fx.tokenService.EXPECT().HashToken("already-rotated-token").Return("stale-hash")
	fx.tokenService.EXPECT().HashToken("new-refresh-token").Return("new-hash")

	fx.refreshTokenRepo.EXPECT().
		RotateTokenHash(ctx, sessionID, "stale-hash", "new-hash", mock.AnythingOfType("time.Time")).
		Return(int64(0), nil)

	// Lineage is alive but the stored hash moved on: the presented token
	// was already rotated by someone else.
	fx.refreshTokenRepo.EXPECT().
		FindByID(ctx, sessionID).
		Return(&entity.RefreshToken{
			ID:        sessionID,
			UserID:    user.ID,
			TokenHash: "current-hash",
			ExpiresAt: time.Now().Add(time.Hour),
		}, nil)

	fx.refreshTokenRepo.EXPECT().
		Revoke(ctx, sessionID, entity.RevokeReasonReuse).
		Return(nil)

	fx.audit.EXPECT().Record(ctx, mock.AnythingOfType("*entity.AuditEntry")).Return()

	output, err := fx.service.Refresh(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenReused)
	// The revocation ran on the root repository, outside any transaction
	// that the error return would roll back, so it stays committed.
	fx.txManager.AssertNotCalled(t, "Execute")
	fx.refreshTokenRepo.AssertCalled(t, "Revoke", ctx, sessionID, entity.RevokeReasonReuse)
}

func TestUserService_Refresh_RevokedLineage(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Role: entity.RoleGuardian}
	sessionID := uuid.New()
	revokedAt := time.Now().Add(-time.Minute)
	input := &usecase.RefreshInput{RefreshToken: "zombie-token"}

	fx.tokenService.EXPECT().
		ValidateRefreshToken(input.RefreshToken).
		Return(&service.Claims{UserID: user.ID, SessionID: sessionID}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.tokenService.EXPECT().
		GenerateTokens(user.ID, user.Role, sessionID).
		Return("new-access-token", "new-refresh-token", nil)
	fx.tokenService.EXPECT().HashToken("zombie-token").Return("zombie-hash")
	fx.tokenService.EXPECT().HashToken("new-refresh-token").Return("new-hash")

	fx.refreshTokenRepo.EXPECT().
		RotateTokenHash(ctx, sessionID, "zombie-hash", "new-hash", mock.AnythingOfType("time.Time")).
		Return(int64(0), nil)

	fx.refreshTokenRepo.EXPECT().
		FindByID(ctx, sessionID).
		Return(&entity.RefreshToken{
			ID:            sessionID,
			UserID:        user.ID,
			TokenHash:     "zombie-hash",
			ExpiresAt:     time.Now().Add(time.Hour),
			RevokedAt:     &revokedAt,
			RevokedReason: entity.RevokeReasonReuse,
		}, nil)

	fx.audit.EXPECT().Record(ctx, mock.AnythingOfType("*entity.AuditEntry")).Return()

	output, err := fx.service.Refresh(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenReused)
}

func TestUserService_Refresh_ExpiredLineage(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Role: entity.RoleGuardian}
	sessionID := uuid.New()
	input := &usecase.RefreshInput{RefreshToken: "old-token"}

	fx.tokenService.EXPECT().
		ValidateRefreshToken(input.RefreshToken).
		Return(&service.Claims{UserID: user.ID, SessionID: sessionID}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.tokenService.EXPECT().
		GenerateTokens(user.ID, user.Role, sessionID).
		Return("new-access-token", "new-refresh-token", nil)
	fx.tokenService.EXPECT().HashToken("old-token").Return("old-hash")
	fx.tokenService.EXPECT().HashToken("new-refresh-token").Return("new-hash")

	fx.refreshTokenRepo.EXPECT().
		RotateTokenHash(ctx, sessionID, "old-hash", "new-hash", mock.AnythingOfType("time.Time")).
		Return(int64(0), nil)

	fx.refreshTokenRepo.EXPECT().
		FindByID(ctx, sessionID).
		Return(&entity.RefreshToken{
			ID:        sessionID,
			UserID:    user.ID,
			TokenHash: "old-hash",
			ExpiresAt: time.Now().Add(-time.Hour),
		}, nil)

	output, err := fx.service.Refresh(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
}

func TestUserService_Refresh_ConcurrentRotationLost(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Role: entity.RoleGuardian}
	sessionID := uuid.New()
	input := &usecase.RefreshInput{RefreshToken: "raced-token"}

	fx.tokenService.EXPECT().
		ValidateRefreshToken(input.RefreshToken).
		Return(&service.Claims{UserID: user.ID, SessionID: sessionID}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.tokenService.EXPECT().
		GenerateTokens(user.ID, user.Role, sessionID).
		Return("new-access-token", "new-refresh-token", nil)
	fx.tokenService.EXPECT().HashToken("raced-token").Return("raced-hash")
	fx.tokenService.EXPECT().HashToken("new-refresh-token").Return("new-hash")

	fx.refreshTokenRepo.EXPECT().
		RotateTokenHash(ctx, sessionID, "raced-hash", "new-hash", mock.AnythingOfType("time.Time")).
		Return(int64(0), nil)

	// The swap missed but the stored hash still matches the presented one:
	// a concurrent rotation committed between our write and this read. The
	// loser is turned away without killing the winner's lineage.
	fx.refreshTokenRepo.EXPECT().
		FindByID(ctx, sessionID).
		Return(&entity.RefreshToken{
			ID:        sessionID,
			UserID:    user.ID,
			TokenHash: "raced-hash",
			ExpiresAt: time.Now().Add(time.Hour),
		}, nil)

	output, err := fx.service.Refresh(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenReused)
	fx.refreshTokenRepo.AssertNotCalled(t, "Revoke", mock.Anything, mock.Anything, mock.Anything)
}

// casRefreshTokenRepo is a minimal in-memory lineage store whose
// RotateTokenHash has real compare-and-swap semantics, for exercising
// concurrent rotations. Methods Refresh never touches stay on the
// embedded nil interface.
type casRefreshTokenRepo struct {
	repository.RefreshTokenRepository

	mu      sync.Mutex
	lineage entity.RefreshToken
}

func (r *casRefreshTokenRepo) RotateTokenHash(_ context.Context, id uuid.UUID, oldHash, newHash string, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l := &r.lineage
	if l.ID != id || l.RevokedAt != nil || !l.ExpiresAt.After(now) || l.TokenHash != oldHash {
		return 0, nil
	}

	l.TokenHash = newHash
	rotated := now
	l.RotatedAt = &rotated

	return 1, nil
}

func (r *casRefreshTokenRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.lineage.ID != id {
		return nil, repository.ErrRefreshTokenNotFound
	}

	lineage := r.lineage

	return &lineage, nil
}

func (r *casRefreshTokenRepo) Revoke(_ context.Context, id uuid.UUID, reason string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.lineage.ID == id && r.lineage.RevokedAt == nil {
		now := time.Now()
		r.lineage.RevokedAt = &now
		r.lineage.RevokedReason = reason
	}

	return nil
}

func TestUserService_Refresh_ConcurrentRotationSingleWinner(t *testing.T) {
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Role: entity.RoleGuardian}
	sessionID := uuid.New()

	casRepo := &casRefreshTokenRepo{
		lineage: entity.RefreshToken{
			ID:        sessionID,
			UserID:    user.ID,
			TokenHash: "h:session-token",
			ExpiresAt: time.Now().Add(time.Hour),
		},
	}

	tokenService := mockSvc.NewMockTokenService(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	audit := mockUC.NewMockAuditRecorder(t)

	tokenService.EXPECT().
		ValidateRefreshToken("session-token").
		Return(&service.Claims{UserID: user.ID, SessionID: sessionID}, nil)
	userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	var pairSeq atomic.Int32
	tokenService.EXPECT().
		GenerateTokens(user.ID, user.Role, sessionID).
		RunAndReturn(func(uuid.UUID, entity.Role, uuid.UUID) (string, string, error) {
			n := pairSeq.Add(1)

			return fmt.Sprintf("access-%d", n), fmt.Sprintf("refresh-%d", n), nil
		})
	tokenService.EXPECT().
		HashToken(mock.AnythingOfType("string")).
		RunAndReturn(func(raw string) string { return "h:" + raw })
	tokenService.EXPECT().AccessTokenDuration().Return(15 * time.Minute)
	audit.EXPECT().Record(mock.Anything, mock.AnythingOfType("*entity.AuditEntry")).Return()

	svc := NewUserService(UserServiceParams{
		TxManager:        mockRepo.NewMockTransactionManager(t),
		UserRepo:         userRepo,
		RefreshTokenRepo: casRepo,
		Hasher:           mockSvc.NewMockPasswordHasher(t),
		TokenService:     tokenService,
		Audit:            audit,
		Config:           &config.Config{},
		Logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	// Both goroutines present the same refresh token at once. The CAS
	// admits exactly one of them.
	results := make(chan error, 2)
	var wg sync.WaitGroup
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "session-token"})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var wins, reused int
	for err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, domainerrors.ErrRefreshTokenReused):
			reused++
		default:
			t.Fatalf("unexpected refresh error: %v", err)
		}
	}

	assert.Equal(t, 1, wins)
	assert.Equal(t, 1, reused)
}

func TestUserService_Refresh_InvalidToken(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	input := &usecase.RefreshInput{RefreshToken: "garbage"}

	fx.tokenService.EXPECT().
		ValidateRefreshToken(input.RefreshToken).
		Return(nil, domainerrors.ErrTokenInvalid)

	output, err := fx.service.Refresh(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestUserService_Logout_Success(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	userID := uuid.New()
	sessionID := uuid.New()
	input := &usecase.LogoutInput{RefreshToken: "refresh-token"}

	fx.tokenService.EXPECT().
		ValidateRefreshToken(input.RefreshToken).
		Return(&service.Claims{UserID: userID, SessionID: sessionID}, nil)
	fx.tokenService.EXPECT().HashToken(input.RefreshToken).Return("refresh-hash")
	fx.refreshTokenRepo.EXPECT().
		RevokeByTokenHash(ctx, "refresh-hash", entity.RevokeReasonLogout).
		Return(nil)
	fx.audit.EXPECT().Record(ctx, mock.AnythingOfType("*entity.AuditEntry")).Return()

	err := fx.service.Logout(ctx, input)

	require.NoError(t, err)
}

func TestUserService_Logout_InvalidTokenStillSucceeds(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	input := &usecase.LogoutInput{RefreshToken: "garbage"}

	fx.tokenService.EXPECT().
		ValidateRefreshToken(input.RefreshToken).
		Return(nil, domainerrors.ErrTokenInvalid)
	fx.tokenService.EXPECT().HashToken(input.RefreshToken).Return("garbage-hash")
	fx.refreshTokenRepo.EXPECT().
		RevokeByTokenHash(ctx, "garbage-hash", entity.RevokeReasonLogout).
		Return(repository.ErrRefreshTokenNotFound)
	fx.audit.EXPECT().Record(ctx, mock.AnythingOfType("*entity.AuditEntry")).Return()

	err := fx.service.Logout(ctx, input)

	// Logout is idempotent: nothing to revoke is still a successful logout.
	require.NoError(t, err)
}

func TestUserService_GetMe(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "guardian@example.com", Role: entity.RoleGuardian}
	scope := entity.AccessScope{UserID: user.ID, Role: user.Role}

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	got, err := fx.service.GetMe(ctx, scope)

	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestUserService_GetMe_NotFound(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	scope := entity.AccessScope{UserID: uuid.New(), Role: entity.RoleGuardian}

	fx.userRepo.EXPECT().
		FindByID(ctx, scope.UserID).
		Return(nil, repository.ErrUserNotFound)

	got, err := fx.service.GetMe(ctx, scope)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestUserService_DeleteAccount(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	scope := entity.AccessScope{UserID: uuid.New(), Role: entity.RoleGuardian}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

			mockRefreshRepo.EXPECT().
				RevokeAllByUserID(ctx, scope.UserID, entity.RevokeReasonManual).
				Return(nil)
			mockUserRepo.EXPECT().Delete(ctx, scope.UserID).Return(nil)

			return fn(mockFactory)
		})

	fx.audit.EXPECT().Record(ctx, mock.AnythingOfType("*entity.AuditEntry")).Return()

	err := fx.service.DeleteAccount(ctx, scope, "203.0.113.9")

	require.NoError(t, err)
}

func TestUserService_DeleteAccount_RevokeFails(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	scope := entity.AccessScope{UserID: uuid.New(), Role: entity.RoleGuardian}
	dbErr := errors.New("connection reset")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

			mockRefreshRepo.EXPECT().
				RevokeAllByUserID(ctx, scope.UserID, entity.RevokeReasonManual).
				Return(dbErr)

			return fn(mockFactory)
		})

	err := fx.service.DeleteAccount(ctx, scope, "203.0.113.9")

	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
}
