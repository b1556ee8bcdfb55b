package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the signed payload carried by a bearer token. It is created at
// login and never persisted server-side.
type Claims struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	Admin    bool   `json:"admin"`
	jwt.RegisteredClaims
}

type CodecConfig struct {
	// Secret signs and verifies tokens. Fixed for the process lifetime.
	Secret []byte
	TTL    time.Duration
	// Leeway relaxes the strict expiry comparison. Zero means exact.
	Leeway time.Duration
	// Now overrides the clock, for tests. Defaults to time.Now.
	Now func() time.Time
}

// Codec signs and verifies HS256 bearer tokens against a process-wide
// secret. Safe for concurrent use; nothing is mutated after construction.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	parser *jwt.Parser
}

func NewCodec(cfg CodecConfig) (*Codec, error) {
	if len(cfg.Secret) == 0 {
		return nil, errors.New("signing secret is required")
	}
	if cfg.TTL <= 0 {
		return nil, errors.New("token TTL must be positive")
	}
	if cfg.Leeway < 0 {
		return nil, errors.New("token leeway must not be negative")
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now() }),
	}
	if cfg.Leeway > 0 {
		options = append(options, jwt.WithLeeway(cfg.Leeway))
	}
	return &Codec{
		secret: cfg.Secret,
		ttl:    cfg.TTL,
		now:    now,
		parser: jwt.NewParser(options...),
	}, nil
}

// Encode signs a claim set for the given subject. Expiry is issue time plus
// the configured TTL.
func (c *Codec) Encode(userID int, username string, admin bool) (string, error) {
	now := c.now()
	claims := Claims{
		UserID:   userID,
		Username: username,
		Admin:    admin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Decode verifies the signature and structural shape of a token and returns
// its claims. Signature mismatch, malformed structure and unsupported
// algorithms are a single undifferentiated failure; expiry is reported as
// jwt.ErrTokenExpired so callers can classify it separately.
func (c *Codec) Decode(tokenStr string) (*Claims, error) {
	token, err := c.parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return c.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
