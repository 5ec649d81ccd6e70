package user

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/xiebiao/bookshop/internal/domain/user"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookshop/internal/testutil"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
	"github.com/xiebiao/bookshop/pkg/jwt"
)

type userFixture struct {
	mr       *miniredis.Miniredis
	sessions *redis.SessionStore

	register *RegisterUseCase
	login    *LoginUseCase
	logout   *LogoutUseCase
	refresh  *RefreshTokenUseCase
	profile  *GetProfileUseCase
}

func newUserFixture(t *testing.T) *userFixture {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	svc := user.NewServiceWithCost(mysql.NewUserRepository(testutil.NewTestDB(t)), bcrypt.MinCost)
	jwtManager := jwt.NewManager("test-secret", "bookshop", 2*time.Hour, 24*time.Hour)
	sessions := redis.NewSessionStore(client)

	return &userFixture{
		mr:       mr,
		sessions: sessions,
		register: NewRegisterUseCase(svc),
		login:    NewLoginUseCase(svc, jwtManager, sessions, 24*time.Hour),
		logout:   NewLogoutUseCase(jwtManager, sessions),
		refresh:  NewRefreshTokenUseCase(svc, jwtManager, sessions),
		profile:  NewGetProfileUseCase(svc),
	}
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	f := newUserFixture(t)

	info, err := f.register.Execute(ctx, RegisterRequest{Email: "reader@example.com", Password: "secret123", Nickname: "读者"})
	require.NoError(t, err)
	assert.NotZero(t, info.ID)

	t.Run("邮箱重复", func(t *testing.T) {
		_, err := f.register.Execute(ctx, RegisterRequest{Email: "reader@example.com", Password: "secret123", Nickname: "读者2"})
		assert.ErrorIs(t, err, apperrors.ErrEmailDuplicate)
	})

	t.Run("密码强度不足", func(t *testing.T) {
		_, err := f.register.Execute(ctx, RegisterRequest{Email: "weak@example.com", Password: "12345678", Nickname: "weak"})
		assert.ErrorIs(t, err, apperrors.ErrWeakPassword)
	})

	t.Run("登录成功写入会话", func(t *testing.T) {
		resp, err := f.login.Execute(ctx, LoginRequest{Email: "reader@example.com", Password: "secret123", ClientIP: "10.0.0.1"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, info.ID, resp.User.ID)

		session, err := f.sessions.GetSession(ctx, info.ID)
		require.NoError(t, err)
		assert.Equal(t, "10.0.0.1", session["ip"])
	})

	t.Run("邮箱大小写不敏感", func(t *testing.T) {
		resp, err := f.login.Execute(ctx, LoginRequest{Email: " Reader@Example.COM ", Password: "secret123"})
		require.NoError(t, err)
		assert.Equal(t, "reader@example.com", resp.User.Email)
	})

	t.Run("密码错误", func(t *testing.T) {
		_, err := f.login.Execute(ctx, LoginRequest{Email: "reader@example.com", Password: "wrong1234"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)
	})

	t.Run("邮箱不存在与密码错误相同", func(t *testing.T) {
		_, err := f.login.Execute(ctx, LoginRequest{Email: "nobody@example.com", Password: "secret123"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)
	})

	t.Run("个人信息", func(t *testing.T) {
		got, err := f.profile.Execute(ctx, info.ID)
		require.NoError(t, err)
		assert.Equal(t, "读者", got.Nickname)

		_, err = f.profile.Execute(ctx, 9999)
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	f := newUserFixture(t)

	_, err := f.register.Execute(ctx, RegisterRequest{Email: "a@example.com", Password: "secret123", Nickname: "aa"})
	require.NoError(t, err)
	resp, err := f.login.Execute(ctx, LoginRequest{Email: "a@example.com", Password: "secret123"})
	require.NoError(t, err)

	require.NoError(t, f.logout.Execute(ctx, resp.AccessToken))

	blacklisted, err := f.sessions.IsInBlacklist(ctx, resp.AccessToken)
	require.NoError(t, err)
	assert.True(t, blacklisted)

	_, err = f.sessions.GetSession(ctx, resp.User.ID)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	// 黑名单随Token过期
	f.mr.FastForward(3 * time.Hour)
	blacklisted, err = f.sessions.IsInBlacklist(ctx, resp.AccessToken)
	require.NoError(t, err)
	assert.False(t, blacklisted)
}

func TestRefreshToken(t *testing.T) {
	ctx := context.Background()
	f := newUserFixture(t)

	_, err := f.register.Execute(ctx, RegisterRequest{Email: "r@example.com", Password: "secret123", Nickname: "刷新"})
	require.NoError(t, err)
	resp, err := f.login.Execute(ctx, LoginRequest{Email: "r@example.com", Password: "secret123"})
	require.NoError(t, err)

	t.Run("换取新的Access Token", func(t *testing.T) {
		got, err := f.refresh.Execute(ctx, resp.RefreshToken)
		require.NoError(t, err)
		assert.NotEmpty(t, got.AccessToken)
		assert.Equal(t, resp.RefreshToken, got.RefreshToken)
		assert.Equal(t, "刷新", got.User.Nickname)
	})

	t.Run("Access Token不能用来刷新", func(t *testing.T) {
		_, err := f.refresh.Execute(ctx, resp.AccessToken)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("登出后不能刷新", func(t *testing.T) {
		require.NoError(t, f.logout.Execute(ctx, resp.AccessToken))
		_, err := f.refresh.Execute(ctx, resp.RefreshToken)
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})
}
