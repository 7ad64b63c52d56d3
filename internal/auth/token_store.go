package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"lakehire/internal/cache"
)

const (
	refreshTokenKeyPrefix = "refresh_token:"
	emailOTPKeyPrefix     = "email_otp:"

	// OTPExpiry is how long an email verification code stays redeemable.
	OTPExpiry = 15 * time.Minute
)

// TokenStoreInterface defines the interface for token storage operations.
type TokenStoreInterface interface {
	StoreRefreshToken(ctx context.Context, tokenID string, userID, email string, ttl time.Duration) error
	GetRefreshToken(ctx context.Context, tokenID string) (userID string, email string, err error)
	DeleteRefreshToken(ctx context.Context, tokenID string) error
	StoreEmailOTP(ctx context.Context, email, otp string) error
	CheckEmailOTP(ctx context.Context, email, otp string) (bool, error)
	DeleteEmailOTP(ctx context.Context, email string) error
}

// TokenStore handles storage and retrieval of tokens in Redis.
type TokenStore struct {
	cache *cache.Client
}

// Ensure TokenStore implements TokenStoreInterface
var _ TokenStoreInterface = (*TokenStore)(nil)

// NewTokenStore creates a new token store.
func NewTokenStore(cache *cache.Client) *TokenStore {
	return &TokenStore{cache: cache}
}

// StoreRefreshToken stores a refresh token in Redis with TTL.
func (s *TokenStore) StoreRefreshToken(ctx context.Context, tokenID string, userID, email string, ttl time.Duration) error {
	data := map[string]string{
		"user_id": userID,
		"email":   email,
	}
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal token data: %w", err)
	}

	key := refreshTokenKeyPrefix + tokenID
	return s.cache.Set(ctx, key, payload, ttl)
}

// GetRefreshToken retrieves refresh token data from Redis.
func (s *TokenStore) GetRefreshToken(ctx context.Context, tokenID string) (userID string, email string, err error) {
	key := refreshTokenKeyPrefix + tokenID
	data, err := s.cache.Get(ctx, key)
	if err != nil || data == nil {
		return "", "", fmt.Errorf("refresh token not found")
	}

	var tokenData map[string]string
	if err := json.Unmarshal(data, &tokenData); err != nil {
		return "", "", fmt.Errorf("unmarshal token data: %w", err)
	}

	return tokenData["user_id"], tokenData["email"], nil
}

// DeleteRefreshToken removes a refresh token from Redis.
func (s *TokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	key := refreshTokenKeyPrefix + tokenID
	return s.cache.Delete(ctx, key)
}

// StoreEmailOTP stores a verification code for an email address.
func (s *TokenStore) StoreEmailOTP(ctx context.Context, email, otp string) error {
	key := emailOTPKeyPrefix + email
	return s.cache.Set(ctx, key, []byte(otp), OTPExpiry)
}

// CheckEmailOTP reports whether the given code matches the stored one.
func (s *TokenStore) CheckEmailOTP(ctx context.Context, email, otp string) (bool, error) {
	key := emailOTPKeyPrefix + email
	data, err := s.cache.Get(ctx, key)
	if err != nil || data == nil {
		return false, nil
	}
	return string(data) == otp, nil
}

// DeleteEmailOTP removes a redeemed verification code.
func (s *TokenStore) DeleteEmailOTP(ctx context.Context, email string) error {
	key := emailOTPKeyPrefix + email
	return s.cache.Delete(ctx, key)
}
