// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lerkeveld/underground/internal/logger"
	"github.com/lerkeveld/underground/internal/store"
	"github.com/lerkeveld/underground/internal/utils"
	"github.com/lerkeveld/underground/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAuthService(t *testing.T, repos repositories, notifications NotificationService, now time.Time) AuthService {
	t.Helper()
	return NewAuthService(repos.users, cheapHasher, notifications, fixedClock(now), testConfig(), logger.Nop())
}

func resident(t *testing.T, password string, activated bool) models.User {
	t.Helper()
	hash, err := cheapHasher.Hash(password)
	require.NoError(t, err)
	return models.User{ID: 7, FirstName: "Jan", LastName: "Peeters", Email: "jan@example.com", PasswordHash: hash, IsActivated: activated}
}

func TestAuthService_Authenticate(t *testing.T) {
	active := resident(t, "correct-password", true)
	inactive := resident(t, "correct-password", false)

	tests := []struct {
		name     string
		email    string
		password string
		found    models.User
		findErr  error
		wantErr  error
	}{
		{name: "success", email: "jan@example.com", password: "correct-password", found: active},
		{name: "email is case insensitive", email: " Jan@Example.COM ", password: "correct-password", found: active},
		{name: "wrong password", email: "jan@example.com", password: "wrong-password", found: active, wantErr: ErrInvalidCredentials},
		{name: "unknown email", email: "jan@example.com", password: "correct-password", findErr: store.ErrUserNotFound, wantErr: ErrInvalidCredentials},
		{name: "not activated", email: "jan@example.com", password: "correct-password", found: inactive, wantErr: ErrNotActivated},
		{name: "wrong password on inactive account", email: "jan@example.com", password: "nope-nope", found: inactive, wantErr: ErrInvalidCredentials},
		{name: "storage failure", email: "jan@example.com", password: "x", findErr: store.ErrExecutingQuery, wantErr: store.ErrExecutingQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repos := newRepositories(t)
			repos.users.EXPECT().FindUserByEmail(gomock.Any(), "jan@example.com").Return(tt.found, tt.findErr)

			user, err := newAuthService(t, repos, &fakeNotifications{}, testNow).Authenticate(context.Background(), tt.email, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(7), user.ID)
		})
	}
}

func TestAuthService_SessionTokens(t *testing.T) {
	repos := newRepositories(t)
	s := newAuthService(t, repos, &fakeNotifications{}, testNow)
	ctx := context.Background()

	session, err := s.IssueSession(ctx, models.User{ID: 7})
	require.NoError(t, err)
	assert.NotEqual(t, session.Access.CSRF, session.Refresh.CSRF)

	access, err := s.ParseToken(ctx, session.Access.String(), models.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(7), access.UserID)
	assert.Equal(t, session.Access.CSRF, access.CSRF)

	_, err = s.ParseToken(ctx, session.Refresh.String(), models.AccessToken)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)

	_, err = s.ParseToken(ctx, session.Access.String()+"x", models.AccessToken)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)

	later := newAuthService(t, repos, &fakeNotifications{}, testNow.Add(2*time.Hour))
	_, err = later.ParseToken(ctx, session.Access.String(), models.AccessToken)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)

	refresh, err := later.ParseToken(ctx, session.Refresh.String(), models.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, int64(7), refresh.UserID)
}

func TestAuthService_Refresh(t *testing.T) {
	repos := newRepositories(t)
	s := newAuthService(t, repos, &fakeNotifications{}, testNow)

	repos.users.EXPECT().FindUserByID(gomock.Any(), int64(7)).Return(models.User{ID: 7}, nil)
	token, err := s.Refresh(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, models.AccessToken, token.Type)

	repos.users.EXPECT().FindUserByID(gomock.Any(), int64(8)).Return(models.User{}, store.ErrUserNotFound)
	_, err = s.Refresh(context.Background(), 8)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_RequestActivationThenActivate(t *testing.T) {
	repos := newRepositories(t)
	notifications := &fakeNotifications{}
	s := newAuthService(t, repos, notifications, testNow)
	ctx := context.Background()
	inactive := resident(t, "random", false)

	var storedHash string
	repos.users.EXPECT().FindUserByEmail(gomock.Any(), "jan@example.com").Return(inactive, nil).Times(2)
	repos.users.EXPECT().UpdatePasswordAndSharing(gomock.Any(), int64(7), gomock.Any(), true).
		DoAndReturn(func(_ context.Context, _ int64, hash string, _ bool) error {
			storedHash = hash
			return nil
		})
	repos.users.EXPECT().SetActivated(gomock.Any(), int64(7)).Return(nil)

	err := s.RequestActivation(ctx, models.ActivateRequest{Email: "JAN@example.com", Password: "new-password", IsSharing: true})
	require.NoError(t, err)
	assert.True(t, cheapHasher.Verify(storedHash, "new-password"))
	require.Len(t, notifications.activations, 1)

	require.NoError(t, s.Activate(ctx, notifications.activations[0]))
}

func TestAuthService_RequestActivation_Rejections(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		repos := newRepositories(t)
		repos.users.EXPECT().FindUserByEmail(gomock.Any(), "nobody@example.com").Return(models.User{}, store.ErrUserNotFound)

		err := newAuthService(t, repos, &fakeNotifications{}, testNow).
			RequestActivation(context.Background(), models.ActivateRequest{Email: "nobody@example.com", Password: "password"})
		assert.ErrorIs(t, err, ErrEmailNotLinked)
	})

	t.Run("already activated", func(t *testing.T) {
		repos := newRepositories(t)
		repos.users.EXPECT().FindUserByEmail(gomock.Any(), "jan@example.com").Return(resident(t, "x", true), nil)

		notifications := &fakeNotifications{}
		err := newAuthService(t, repos, notifications, testNow).
			RequestActivation(context.Background(), models.ActivateRequest{Email: "jan@example.com", Password: "password"})
		assert.ErrorIs(t, err, ErrAlreadyActivated)
		assert.Empty(t, notifications.activations)
	})
}

func TestAuthService_Activate_TokenProblems(t *testing.T) {
	cfg := testConfig()
	issued := testNow

	activateToken, err := utils.GenerateSignedToken("jan@example.com", models.PurposeActivate, cfg.App.SecretKey, cfg.Auth.EmailTokenMaxAge, issued)
	require.NoError(t, err)
	resetToken, err := utils.GenerateSignedToken("jan@example.com", models.PurposeReset, cfg.App.SecretKey, cfg.Auth.EmailTokenMaxAge, issued)
	require.NoError(t, err)
	ghostToken, err := utils.GenerateSignedToken("ghost@example.com", models.PurposeActivate, cfg.App.SecretKey, cfg.Auth.EmailTokenMaxAge, issued)
	require.NoError(t, err)

	t.Run("expired", func(t *testing.T) {
		repos := newRepositories(t)
		err := newAuthService(t, repos, &fakeNotifications{}, issued.Add(49*time.Hour)).Activate(context.Background(), activateToken)
		assert.ErrorIs(t, err, ErrEmailTokenExpired)
	})

	t.Run("reset token cannot activate", func(t *testing.T) {
		repos := newRepositories(t)
		err := newAuthService(t, repos, &fakeNotifications{}, issued).Activate(context.Background(), resetToken)
		assert.ErrorIs(t, err, ErrEmailTokenInvalid)
	})

	t.Run("garbage", func(t *testing.T) {
		repos := newRepositories(t)
		err := newAuthService(t, repos, &fakeNotifications{}, issued).Activate(context.Background(), "not-a-token")
		assert.ErrorIs(t, err, ErrEmailTokenInvalid)
	})

	t.Run("unknown user", func(t *testing.T) {
		repos := newRepositories(t)
		repos.users.EXPECT().FindUserByEmail(gomock.Any(), "ghost@example.com").Return(models.User{}, store.ErrUserNotFound)
		err := newAuthService(t, repos, &fakeNotifications{}, issued).Activate(context.Background(), ghostToken)
		assert.ErrorIs(t, err, ErrEmailTokenInvalid)
	})

	t.Run("activating twice", func(t *testing.T) {
		repos := newRepositories(t)
		repos.users.EXPECT().FindUserByEmail(gomock.Any(), "jan@example.com").Return(resident(t, "x", true), nil).Times(2)
		repos.users.EXPECT().SetActivated(gomock.Any(), int64(7)).Return(nil).Times(2)

		s := newAuthService(t, repos, &fakeNotifications{}, issued)
		require.NoError(t, s.Activate(context.Background(), activateToken))
		require.NoError(t, s.Activate(context.Background(), activateToken))
	})
}

func TestAuthService_ResetFlow(t *testing.T) {
	repos := newRepositories(t)
	notifications := &fakeNotifications{}
	s := newAuthService(t, repos, notifications, testNow)
	ctx := context.Background()

	repos.users.EXPECT().FindUserByEmail(gomock.Any(), "jan@example.com").Return(resident(t, "old-password", true), nil).Times(3)

	require.NoError(t, s.RequestReset(ctx, "jan@example.com"))
	require.Len(t, notifications.resets, 1)
	token := notifications.resets[0]

	user, err := s.CheckResetToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)

	repos.users.EXPECT().UpdateCredentials(gomock.Any(), int64(7), "", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, _ string, hash string) error {
			assert.True(t, cheapHasher.Verify(hash, "brand-new-password"))
			return nil
		})
	require.NoError(t, s.ResetPassword(ctx, token, "brand-new-password"))

	err = s.Activate(ctx, token)
	assert.ErrorIs(t, err, ErrEmailTokenInvalid)
}

func TestAuthService_RequestReset_Rejections(t *testing.T) {
	repos := newRepositories(t)
	s := newAuthService(t, repos, &fakeNotifications{}, testNow)

	repos.users.EXPECT().FindUserByEmail(gomock.Any(), "jan@example.com").Return(resident(t, "x", false), nil)
	assert.ErrorIs(t, s.RequestReset(context.Background(), "jan@example.com"), ErrNotActivated)

	repos.users.EXPECT().FindUserByEmail(gomock.Any(), "nobody@example.com").Return(models.User{}, store.ErrUserNotFound)
	assert.ErrorIs(t, s.RequestReset(context.Background(), "nobody@example.com"), ErrEmailNotLinked)

	repos.users.EXPECT().FindUserByEmail(gomock.Any(), "broken@example.com").Return(models.User{}, errors.New("db down"))
	err := s.RequestReset(context.Background(), "broken@example.com")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmailNotLinked)
}
