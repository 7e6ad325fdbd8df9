// Package session holds operator sessions. Session data (the core platform
// bearer token and the operator identity) lives in Redis; the browser only
// carries a signed JWT naming the session ID, so tokens never leave the
// server. A 401 from the core platform and an explicit logout take the same
// path: the Redis key is deleted and the cookie is expired.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/spf13/viper"

	"github.com/moncredit/admin-dashboard/internal/models"
)

// CookieName is the browser cookie carrying the signed session token.
const CookieName = "admin_session"

// Redis hash fields, kept compatible with the browser-storage keys the
// dashboard has always used.
const (
	fieldToken = "adminToken"
	fieldAdmin = "admin"
)

var ErrNotFound = errors.New("session: not found")

type Session struct {
	ID    string
	Token string
	Admin models.Admin
}

type Store struct {
	redis  *redis.Client
	secret []byte
	ttl    time.Duration
}

func NewStore(rdb *redis.Client) *Store {
	viper.SetDefault("session.expiry_hours", 24)

	return &Store{
		redis:  rdb,
		secret: []byte(viper.GetString("session.secret_key")),
		ttl:    time.Duration(viper.GetInt("session.expiry_hours")) * time.Hour,
	}
}

// Create persists a new session and returns the signed cookie token.
func (s *Store) Create(ctx context.Context, token string, admin models.Admin) (string, error) {
	adminJSON, err := json.Marshal(admin)
	if err != nil {
		return "", fmt.Errorf("session: encode admin: %w", err)
	}

	id := uuid.NewString()
	key := sessionKey(id)

	if err := s.redis.HSet(ctx, key, fieldToken, token, fieldAdmin, string(adminJSON)).Err(); err != nil {
		return "", fmt.Errorf("session: store: %w", err)
	}
	if err := s.redis.Expire(ctx, key, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("session: expire: %w", err)
	}

	return s.sign(id)
}

// Get resolves a cookie token back into the stored session.
func (s *Store) Get(ctx context.Context, cookieToken string) (*Session, error) {
	id, err := s.verify(cookieToken)
	if err != nil {
		return nil, err
	}

	fields, err := s.redis.HGetAll(ctx, sessionKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("session: load: %w", err)
	}
	if len(fields) == 0 {
		return nil, ErrNotFound
	}

	sess := &Session{ID: id, Token: fields[fieldToken]}
	if err := json.Unmarshal([]byte(fields[fieldAdmin]), &sess.Admin); err != nil {
		return nil, fmt.Errorf("session: decode admin: %w", err)
	}
	return sess, nil
}

// Destroy removes the session unconditionally.
func (s *Store) Destroy(ctx context.Context, id string) error {
	return s.redis.Del(ctx, sessionKey(id)).Err()
}

func (s *Store) sign(id string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": id,
		"exp": time.Now().Add(s.ttl).Unix(),
	})
	return token.SignedString(s.secret)
}

func (s *Store) verify(cookieToken string) (string, error) {
	token, err := jwt.Parse(cookieToken, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("session: unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrNotFound
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrNotFound
	}
	id, _ := claims["sid"].(string)
	if id == "" {
		return "", ErrNotFound
	}
	return id, nil
}

func sessionKey(id string) string {
	return "session:" + id
}
