package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/ecocycle/internal/account"
	"github.com/MrJamesThe3rd/ecocycle/internal/auth"
)

const secret = "0123456789abcdef0123456789abcdef"

func TestTokens_RoundTrip(t *testing.T) {
	tokens := auth.NewTokens(secret, "ecocycle-identity")

	token, err := tokens.Issue(account.Identity{UserID: "u1", Email: "a@example.com", Role: account.RoleCollector}, time.Hour)
	require.NoError(t, err)

	id, err := tokens.Verify(token)
	require.NoError(t, err)

	assert.Equal(t, "u1", id.UserID)
	assert.Equal(t, "a@example.com", id.Email)
	assert.Equal(t, account.RoleCollector, id.Role)
}

func TestTokens_Verify_Rejects(t *testing.T) {
	tokens := auth.NewTokens(secret, "ecocycle-identity")
	id := account.Identity{UserID: "u1", Role: account.RoleIndividual}

	expired, err := tokens.Issue(id, -time.Minute)
	require.NoError(t, err)

	otherIssuer, err := auth.NewTokens(secret, "someone-else").Issue(id, time.Hour)
	require.NoError(t, err)

	otherSecret, err := auth.NewTokens("another-secret-another-secret-00", "ecocycle-identity").Issue(id, time.Hour)
	require.NoError(t, err)

	noSubject, err := tokens.Issue(account.Identity{}, time.Hour)
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "u1",
		Issuer:    "ecocycle-identity",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := map[string]string{
		"Empty":       "",
		"Garbage":     "not.a.token",
		"Expired":     expired,
		"OtherIssuer": otherIssuer,
		"OtherSecret": otherSecret,
		"NoSubject":   noSubject,
		"AlgNone":     none,
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := tokens.Verify(token)
			assert.ErrorIs(t, err, auth.ErrUnauthorized)
		})
	}
}

func TestTokens_UnknownUserTypeDefaultsToIndividual(t *testing.T) {
	tokens := auth.NewTokens(secret, "ecocycle-identity")

	token, err := tokens.Issue(account.Identity{UserID: "u1", Role: "admin"}, time.Hour)
	require.NoError(t, err)

	id, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, account.RoleIndividual, id.Role)
}
