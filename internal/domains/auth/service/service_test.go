package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"barbershop/config"
	"barbershop/infras/jwt"
	jwtMocks "barbershop/infras/jwt/mocks"
	"barbershop/infras/otel/mocks"
	adminMocks "barbershop/internal/domains/admin/mocks"
	adminModel "barbershop/internal/domains/admin/model"
	"barbershop/internal/domains/auth/model/dto"
	"barbershop/internal/domains/auth/service"
	"barbershop/shared/constant"
	gDto "barbershop/shared/dto"
	"barbershop/shared/failure"
	gModel "barbershop/shared/model"
	"barbershop/shared/password"
	"barbershop/shared/timezone"
)

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdminRepo := adminMocks.NewMockAdminRepository(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockAdminRepo, cfg, mockOtel, mockJWT)

	hashed, err := password.Hash("password")
	require.NoError(t, err)

	validAdmin := adminModel.Admin{
		ID:       "admin-id-123",
		Email:    "owner@example.com",
		Password: hashed,
		Name:     "Owner",
		Role:     constant.RoleAdmin,
		Active:   true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "system",
			ModifiedBy: "system",
		},
	}

	pair := &jwt.TokenPair{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		TokenType:    "Bearer",
	}

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func()
		wantCode  int
		wantErr   bool
	}{
		{
			name: "successful login",
			req: dto.LoginRequest{
				Email:    " Owner@Example.com",
				Password: "password",
			},
			setupMock: func() {
				mockAdminRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validAdmin, nil)

				mockJWT.EXPECT().
					GenerateTokenPair(gomock.Any(), validAdmin.ID, validAdmin.Email, validAdmin.Role).
					Return(pair, nil)

				mockAdminRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Contains(t, fields, adminModel.FieldLastLogin)

						return nil
					})
			},
		},
		{
			name: "unknown email",
			req: dto.LoginRequest{
				Email:    "nobody@example.com",
				Password: "password",
			},
			setupMock: func() {
				mockAdminRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(adminModel.Admin{}, nil)
			},
			wantCode: http.StatusUnauthorized,
			wantErr:  true,
		},
		{
			name: "store failure",
			req: dto.LoginRequest{
				Email:    "owner@example.com",
				Password: "password",
			},
			setupMock: func() {
				mockAdminRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(adminModel.Admin{}, errors.New("connection refused"))
			},
			wantCode: http.StatusInternalServerError,
			wantErr:  true,
		},
		{
			name: "wrong password",
			req: dto.LoginRequest{
				Email:    "owner@example.com",
				Password: "wrongpassword",
			},
			setupMock: func() {
				mockAdminRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validAdmin, nil)
			},
			wantCode: http.StatusUnauthorized,
			wantErr:  true,
		},
		{
			name: "inactive admin",
			req: dto.LoginRequest{
				Email:    "owner@example.com",
				Password: "password",
			},
			setupMock: func() {
				inactive := validAdmin
				inactive.Active = false

				mockAdminRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(inactive, nil)
			},
			wantCode: http.StatusForbidden,
			wantErr:  true,
		},
		{
			name: "token generation error",
			req: dto.LoginRequest{
				Email:    "owner@example.com",
				Password: "password",
			},
			setupMock: func() {
				mockAdminRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validAdmin, nil)

				mockJWT.EXPECT().
					GenerateTokenPair(gomock.Any(), validAdmin.ID, validAdmin.Email, validAdmin.Role).
					Return(nil, errors.New("token generation failed"))
			},
			wantCode: http.StatusInternalServerError,
			wantErr:  true,
		},
		{
			name: "last login update failure still logs in",
			req: dto.LoginRequest{
				Email:    "owner@example.com",
				Password: "password",
			},
			setupMock: func() {
				mockAdminRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validAdmin, nil)

				mockJWT.EXPECT().
					GenerateTokenPair(gomock.Any(), validAdmin.ID, validAdmin.Email, validAdmin.Role).
					Return(pair, nil)

				mockAdminRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("update error"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Login(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "access-token", result.AccessToken)
			assert.Equal(t, "refresh-token", result.RefreshToken)
			assert.Equal(t, validAdmin.ID, result.Admin.ID)
			assert.Equal(t, validAdmin.Email, result.Admin.Email)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdminRepo := adminMocks.NewMockAdminRepository(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)

	svc := service.New(mockAdminRepo, &config.Config{}, mocks.NewOtel(), mockJWT)

	tests := []struct {
		name      string
		req       dto.RefreshTokenRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful token refresh",
			req: dto.RefreshTokenRequest{
				RefreshToken: "valid-refresh-token",
			},
			setupMock: func() {
				mockJWT.EXPECT().
					RefreshTokens(gomock.Any(), "valid-refresh-token").
					Return(&jwt.TokenPair{
						AccessToken:  "new-access-token",
						RefreshToken: "new-refresh-token",
					}, nil)
			},
		},
		{
			name: "invalid refresh token",
			req: dto.RefreshTokenRequest{
				RefreshToken: "invalid-refresh-token",
			},
			setupMock: func() {
				mockJWT.EXPECT().
					RefreshTokens(gomock.Any(), "invalid-refresh-token").
					Return(nil, jwt.ErrInvalidToken)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.RefreshToken(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "new-access-token", result.AccessToken)
			assert.Equal(t, "new-refresh-token", result.RefreshToken)
		})
	}
}
