package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rozvoz/infras/jwt"
	"rozvoz/internal/domains/auth/model/dto"
	"rozvoz/shared/constant"
)

func TestRegisterRequest_ToUserModel(t *testing.T) {
	fullName := "Jana Kovacova"

	req := dto.RegisterRequest{
		RestaurantID: "5f0c2a9e-4a31-4e07-9c2b-0d1f53b1a001",
		Email:        "jana@example.com",
		Password:     "plaintext",
		FullName:     &fullName,
	}

	user := req.ToUserModel("admin-id", "hashed-password")

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, req.RestaurantID, user.RestaurantID)
	assert.Equal(t, req.Email, user.Email)
	assert.Equal(t, "hashed-password", user.Password)
	assert.Equal(t, constant.RoleDispatcher, user.Level)
	assert.Equal(t, &fullName, user.FullName)
	assert.True(t, user.Active)
	assert.Equal(t, "admin-id", user.Metadata.CreatedBy)
	assert.Equal(t, "admin-id", user.Metadata.ModifiedBy)
}

func TestLoginResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "test-access-token",
		RefreshToken: "test-refresh-token",
		ExpiresIn:    900,
	}

	var response dto.LoginResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
	assert.Equal(t, tokenPair.ExpiresIn, response.ExpiresIn)
}

func TestRefreshTokenResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "new-access-token",
		RefreshToken: "new-refresh-token",
	}

	var response dto.RefreshTokenResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
}
