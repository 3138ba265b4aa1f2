package entity

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultPhoto is assigned to accounts created without a picture.
const DefaultPhoto = "default.jpg"

// User is an account that can authenticate against the API.
// Credential material is stored alongside the profile but never serialised to JSON.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name,omitempty" validate:"required,max=80"`
	Email     string             `bson:"email" json:"email,omitempty" validate:"required,email"`
	Photo     string             `bson:"photo" json:"photo,omitempty"`
	Roles     Roles              `bson:"roles" json:"roles,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt,omitzero"`

	Password          string     `bson:"password" json:"-"`
	PasswordChangedAt *time.Time `bson:"passwordChangedAt,omitempty" json:"-"`

	PasswordResetToken   string     `bson:"passwordResetToken,omitempty" json:"-"`
	PasswordResetExpires *time.Time `bson:"passwordResetExpires,omitempty" json:"-"`

	EmailVerified            bool       `bson:"emailVerified" json:"emailVerified"`
	EmailVerificationToken   string     `bson:"emailVerificationToken,omitempty" json:"-"`
	EmailVerificationExpires *time.Time `bson:"emailVerificationExpires,omitempty" json:"-"`

	// Active is false once the account has been soft-deleted.
	Active bool `bson:"active" json:"-"`
}

// NewUser builds an active account with the default role and photo.
func NewUser(name, email string, now time.Time) *User {
	return &User{
		ID:        primitive.NewObjectID(),
		Name:      strings.TrimSpace(name),
		Email:     NormalizeEmail(email),
		Photo:     DefaultPhoto,
		Roles:     Roles{RoleUser},
		CreatedAt: now,
		Active:    true,
	}
}

// NormalizeEmail lower-cases and trims an address for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// GetID returns the document identifier.
func (u *User) GetID() primitive.ObjectID { return u.ID }

// SetID assigns the document identifier.
func (u *User) SetID(id primitive.ObjectID) { u.ID = id }

// ChangedPasswordAfter reports whether the password was changed after a token issued at iat.
// Both sides compare at millisecond precision, the resolution of a stored date.
func (u *User) ChangedPasswordAfter(iat time.Time) bool {
	if u.PasswordChangedAt == nil {
		return false
	}

	return u.PasswordChangedAt.UnixMilli() > iat.UnixMilli()
}

// SetPassword stores a new hash and stamps passwordChangedAt with now.
func (u *User) SetPassword(hash string, now time.Time) {
	changed := now.Truncate(time.Millisecond)
	u.Password = hash
	u.PasswordChangedAt = &changed
}

// SetPasswordResetToken stores the digest of a reset token and its expiry.
func (u *User) SetPasswordResetToken(digest string, expires time.Time) {
	u.PasswordResetToken = digest
	u.PasswordResetExpires = &expires
}

// ClearPasswordResetToken makes any outstanding reset token unusable.
func (u *User) ClearPasswordResetToken() {
	u.PasswordResetToken = ""
	u.PasswordResetExpires = nil
}

// SetEmailVerificationToken stores the digest of a verification token and its expiry.
func (u *User) SetEmailVerificationToken(digest string, expires time.Time) {
	u.EmailVerificationToken = digest
	u.EmailVerificationExpires = &expires
}

// ClearEmailVerificationToken makes any outstanding verification token unusable.
func (u *User) ClearEmailVerificationToken() {
	u.EmailVerificationToken = ""
	u.EmailVerificationExpires = nil
}

// MarkEmailVerified flags the address as confirmed and consumes the token.
func (u *User) MarkEmailVerified() {
	u.EmailVerified = true
	u.ClearEmailVerificationToken()
}

// FirstName is used to greet the user in emails.
func (u *User) FirstName() string {
	name, _, _ := strings.Cut(strings.TrimSpace(u.Name), " ")

	return name
}
