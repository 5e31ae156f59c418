package auth

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/verdepos/verdepos/internal/shared"
)

func TestAuthenticateRoles(t *testing.T) {
	svc := NewService(DefaultAccounts())

	account, err := svc.Authenticate("admin", "123")
	require.NoError(t, err)
	require.Equal(t, RoleAdmin, account.Role)

	account, err = svc.Authenticate("vendedor", "456")
	require.NoError(t, err)
	require.Equal(t, RoleSeller, account.Role)

	account, err = svc.Authenticate("domiciliario", "456")
	require.NoError(t, err)
	require.Equal(t, RoleCourier, account.Role)
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	svc := NewService(DefaultAccounts())

	_, err := svc.Authenticate("admin", "wrong")
	require.ErrorIs(t, err, shared.ErrInvalidCredentials)

	_, err = svc.Authenticate("nobody", "123")
	require.ErrorIs(t, err, shared.ErrInvalidCredentials)
}
