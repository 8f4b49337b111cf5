package security_test

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"token-auth-server/internal/security"
)

var testSecret = []byte("test-signing-secret-0123456789abcdef")

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newCodec(t *testing.T, now time.Time) *security.TokenCodec {
	t.Helper()
	codec, err := security.NewTokenCodec(testSecret, 3*time.Minute, security.WithClock(fixedClock(now)))
	require.NoError(t, err)
	return codec
}

func TestNewTokenCodec_RejectsEmptySecret(t *testing.T) {
	_, err := security.NewTokenCodec(nil, time.Minute)
	assert.Error(t, err)

	_, err = security.NewTokenCodec(testSecret, 0)
	assert.Error(t, err)
}

func TestIssueVerify_RoundTrip(t *testing.T) {
	issuedAt := time.Unix(1_700_000_000, 0)

	for _, userID := range []int64{1, 42, 1 << 40} {
		codec := newCodec(t, issuedAt)
		claims := codec.NewClaims(userID)

		token, err := codec.Issue(claims)
		require.NoError(t, err)
		assert.Len(t, strings.Split(token, "."), 3)

		// до истечения срока - те же claims
		for _, offset := range []time.Duration{0, time.Minute, 3*time.Minute - time.Second} {
			got, err := newCodec(t, issuedAt.Add(offset)).Verify(token)
			require.NoError(t, err)
			assert.Equal(t, claims, *got)
		}
	}
}

func TestNewClaims_FixedLifetime(t *testing.T) {
	issuedAt := time.Unix(1_700_000_000, 0)
	claims := newCodec(t, issuedAt).NewClaims(7)

	assert.Equal(t, int64(7), claims.Subject)
	assert.Equal(t, issuedAt.Unix(), claims.IssuedAt)
	assert.Equal(t, int64((3 * time.Minute).Seconds()), claims.ExpiresAt-claims.IssuedAt)
}

func TestVerify_ExpiredAfterExp(t *testing.T) {
	issuedAt := time.Unix(1_700_000_000, 0)
	codec := newCodec(t, issuedAt)
	token, err := codec.Issue(codec.NewClaims(42))
	require.NoError(t, err)

	_, err = newCodec(t, issuedAt.Add(3*time.Minute+time.Second)).Verify(token)
	assert.ErrorIs(t, err, security.ErrTokenExpired)
	assert.NotErrorIs(t, err, security.ErrTokenMalformed)
}

func TestVerify_CraftedExpiredToken(t *testing.T) {
	now := time.Now()
	codec, err := security.NewTokenCodec(testSecret, time.Minute)
	require.NoError(t, err)

	token, err := codec.Issue(security.Claims{
		Subject:   1,
		IssuedAt:  now.Add(-time.Minute).Unix(),
		ExpiresAt: now.Add(-time.Second).Unix(),
	})
	require.NoError(t, err)

	_, err = codec.Verify(token)
	assert.ErrorIs(t, err, security.ErrTokenExpired)
}

func TestVerify_SignatureByteFlipIsMalformed(t *testing.T) {
	issuedAt := time.Unix(1_700_000_000, 0)
	codec := newCodec(t, issuedAt)
	token, err := codec.Issue(codec.NewClaims(42))
	require.NoError(t, err)

	lastDot := strings.LastIndex(token, ".")
	prefix, signature := token[:lastDot+1], token[lastDot+1:]

	for i := 0; i < len(signature); i++ {
		tampered := []byte(signature)
		tampered[i] ^= 0x01

		claims, err := codec.Verify(prefix + string(tampered))
		assert.Nil(t, claims, "позиция %d", i)
		assert.ErrorIs(t, err, security.ErrTokenMalformed, "позиция %d", i)
	}
}

// подделка подписи у просроченного токена - всё равно Malformed, не Expired
func TestVerify_TamperedExpiredTokenIsMalformed(t *testing.T) {
	issuedAt := time.Unix(1_700_000_000, 0)
	codec := newCodec(t, issuedAt)
	token, err := codec.Issue(codec.NewClaims(42))
	require.NoError(t, err)

	tampered := []byte(token)
	tampered[len(tampered)-5] ^= 0x01

	_, err = newCodec(t, issuedAt.Add(time.Hour)).Verify(string(tampered))
	assert.ErrorIs(t, err, security.ErrTokenMalformed)
}

func TestVerify_Malformed(t *testing.T) {
	now := time.Now()
	codec := newCodec(t, now)

	otherCodec, err := security.NewTokenCodec([]byte("another-secret"), time.Minute, security.WithClock(fixedClock(now)))
	require.NoError(t, err)
	foreign, err := otherCodec.Issue(otherCodec.NewClaims(1))
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"sub": 1, "iat": now.Unix(), "exp": now.Add(time.Minute).Unix(),
	}).SignedString(testSecret)
	require.NoError(t, err)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": 1, "iat": now.Unix(),
	}).SignedString(testSecret)
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": 1, "exp": now.Add(time.Minute).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"пустая строка", ""},
		{"мусор", "not-a-token"},
		{"два сегмента", "aaa.bbb"},
		{"чужой секрет", foreign},
		{"другой алгоритм", hs512},
		{"без exp", noExp},
		{"alg none", unsigned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := codec.Verify(tt.token)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, security.ErrTokenMalformed)
		})
	}
}

func TestIssue_ClaimsLayout(t *testing.T) {
	codec := newCodec(t, time.Unix(1_700_000_000, 0))
	token, err := codec.Issue(codec.NewClaims(5))
	require.NoError(t, err)

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	require.NoError(t, err)

	assert.Equal(t, "HS256", parsed.Header["alg"])
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, float64(5), claims["sub"])
	assert.Equal(t, float64(1_700_000_000), claims["iat"])
	assert.Equal(t, float64(1_700_000_180), claims["exp"])
	assert.Len(t, claims, 3)
}
