package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	a := NewAccount("jeonggoo75@gmail.com", "jeonggoo75", "Daejeon", "code-1")

	assert.Empty(t, a.ID)
	assert.Equal(t, "jeonggoo75@gmail.com", a.Email)
	assert.Equal(t, "jeonggoo75", a.Nickname)
	assert.Equal(t, "Daejeon", a.Address)
	assert.Equal(t, "code-1", a.CertificationCode)
	assert.Equal(t, AccountPending, a.Status)
	assert.Nil(t, a.LastLoginAt)
}

func TestAccount_UpdateProfile(t *testing.T) {
	a := NewAccount("a@x.com", "old", "Daejeon", "code-1")

	a.UpdateProfile("new", "Seoul")

	assert.Equal(t, "new", a.Nickname)
	assert.Equal(t, "Seoul", a.Address)
	assert.Equal(t, AccountPending, a.Status)
	assert.Equal(t, "code-1", a.CertificationCode)
}

func TestAccount_Login(t *testing.T) {
	a := NewAccount("a@x.com", "n", "addr", "code-1")

	a.Login(1700000000000)

	require.NotNil(t, a.LastLoginAt)
	assert.Equal(t, int64(1700000000000), *a.LastLoginAt)
}

func TestAccount_Verify(t *testing.T) {
	a := NewAccount("a@x.com", "n", "addr", "code-1")

	assert.False(t, a.Verify("wrong"))
	assert.Equal(t, AccountPending, a.Status)

	assert.True(t, a.Verify("code-1"))
	assert.Equal(t, AccountActive, a.Status)

	// repeat verification with the correct code stays ACTIVE
	assert.True(t, a.Verify("code-1"))
	assert.Equal(t, AccountActive, a.Status)
}

func TestAccount_Verify_caseSensitive(t *testing.T) {
	a := NewAccount("a@x.com", "n", "addr", "Code-1")

	assert.False(t, a.Verify("code-1"))
	assert.Equal(t, AccountPending, a.Status)
}
