// Package constants holds provider names shared by configuration and infrastructure.
package constants

// Pub/Sub providers.
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Mail providers.
const (
	MailerProviderLog        = "log"
	MailerProviderMailerSend = "mailersend"
)

// Password hashing schemes.
const (
	PasswordHasherBcrypt   = "bcrypt"
	PasswordHasherArgon2id = "argon2id"
)

// AccessTokenCookie is the cookie that carries the bearer token for browser clients.
const AccessTokenCookie = "jwt"
