package authutils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"talentdesk-backend/config"
	"talentdesk-backend/models"
)

func initTestConfig() {
	conf := &config.Configuration{}
	conf.Auth.JWTSecret = "test-secret"
	conf.Auth.JWTExpireInSec = 3600
	conf.Auth.JWTRefreshExpireInSec = 86400
	config.Conf = conf
}

func TestTokenRoundTrip(t *testing.T) {
	initTestConfig()

	t.Run(`access token carries tenant claims`, func(t *testing.T) {
		tokenString, err := GetToken("user-1", "Priya Sharma", "company-1", models.UserRoleHR, models.OrgTypeCompany)
		require.NoError(t, err)

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			return []byte(config.Conf.Auth.JWTSecret), nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		require.NoError(t, err)
		require.True(t, token.Valid)

		claims := token.Claims.(jwt.MapClaims)
		require.Equal(t, "user-1", claims["sub"])
		require.Equal(t, "company-1", claims["company"])
		require.Equal(t, string(models.UserRoleHR), claims["role"])
	})

	t.Run(`refresh token resolves the user`, func(t *testing.T) {
		tokenString, err := GetRefreshToken("user-2", "Rahul Verma")
		require.NoError(t, err)

		userID, err := ParseRefreshToken(tokenString)
		require.NoError(t, err)
		require.Equal(t, "user-2", userID)
	})

	t.Run(`tampered token rejected`, func(t *testing.T) {
		tokenString, err := GetRefreshToken("user-3", "x")
		require.NoError(t, err)

		_, err = ParseRefreshToken(tokenString + "x")
		require.Error(t, err)
	})
}

func TestGetMD5Hash(t *testing.T) {
	require.Equal(t, GetMD5Hash("secret"), GetMD5Hash("secret"))
	require.NotEqual(t, GetMD5Hash("secret"), GetMD5Hash("Secret"))
	require.Len(t, GetMD5Hash("secret"), 32)
}
