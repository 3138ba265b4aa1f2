package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewUser_Defaults(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	u := NewUser("  Jonas Schmedtmann ", " Jonas@Example.COM ", now)

	assert.False(t, u.ID.IsZero())
	assert.Equal(t, "Jonas Schmedtmann", u.Name)
	assert.Equal(t, "jonas@example.com", u.Email)
	assert.Equal(t, DefaultPhoto, u.Photo)
	assert.Equal(t, Roles{RoleUser}, u.Roles)
	assert.True(t, u.Active)
	assert.False(t, u.EmailVerified)
	assert.Equal(t, "Jonas", u.FirstName())
}

func TestUser_ChangedPasswordAfter(t *testing.T) {
	issued := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	u := &User{}

	assert.False(t, u.ChangedPasswordAfter(issued), "never changed")

	u.SetPassword("hash", issued)
	assert.False(t, u.ChangedPasswordAfter(issued), "token minted with the change")

	u.SetPassword("hash", issued.Add(5*time.Second))
	assert.True(t, u.ChangedPasswordAfter(issued))
}

func TestUser_ChangedPasswordAfter_WithinOneSecond(t *testing.T) {
	issued := time.Date(2024, 5, 1, 10, 0, 0, 200*int(time.Millisecond), time.UTC)
	u := &User{}

	u.SetPassword("hash", issued.Add(300*time.Millisecond))
	assert.True(t, u.ChangedPasswordAfter(issued), "earlier token in the same second is stale")
	assert.False(t, u.ChangedPasswordAfter(issued.Add(300*time.Millisecond)))
	assert.False(t, u.ChangedPasswordAfter(issued.Add(time.Second)))

	u.SetPassword("hash", issued.Add(-time.Millisecond))
	assert.False(t, u.ChangedPasswordAfter(issued))
	assert.Equal(t, 199*int(time.Millisecond), u.PasswordChangedAt.Nanosecond())
}

func TestUser_TokenLifecycle(t *testing.T) {
	u := &User{}
	expires := time.Now().Add(10 * time.Minute)

	u.SetPasswordResetToken("digest", expires)
	assert.Equal(t, "digest", u.PasswordResetToken)
	assert.NotNil(t, u.PasswordResetExpires)

	u.ClearPasswordResetToken()
	assert.Empty(t, u.PasswordResetToken)
	assert.Nil(t, u.PasswordResetExpires)

	u.SetEmailVerificationToken("verify", expires)
	u.MarkEmailVerified()
	assert.True(t, u.EmailVerified)
	assert.Empty(t, u.EmailVerificationToken)
	assert.Nil(t, u.EmailVerificationExpires)
}
