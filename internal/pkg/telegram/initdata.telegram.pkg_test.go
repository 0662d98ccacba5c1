package telegram

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testBotToken = "1234567890:TEST-TOKEN"

// signInitData produces init data signed the way the Telegram client does.
func signInitData(t *testing.T, botToken string, fields map[string]string) string {
	t.Helper()

	pairs := make([]string, 0, len(fields))
	for key, value := range fields {
		pairs = append(pairs, key+"="+value)
	}
	sort.Strings(pairs)

	secret := hmac.New(sha256.New, []byte("WebAppData"))
	secret.Write([]byte(botToken))

	sig := hmac.New(sha256.New, secret.Sum(nil))
	sig.Write([]byte(strings.Join(pairs, "\n")))

	values := url.Values{}
	for key, value := range fields {
		values.Set(key, value)
	}
	values.Set("hash", hex.EncodeToString(sig.Sum(nil)))
	return values.Encode()
}

func freshFields(authDate time.Time) map[string]string {
	return map[string]string{
		"auth_date": fmt.Sprintf("%d", authDate.Unix()),
		"query_id":  "AAF9tT0TAAAAAH21PRMrWGRX",
		"user":      `{"id":323074756,"first_name":"Ivan","last_name":"Petrov","username":"ipetrov"}`,
	}
}

func TestValidateInitData(t *testing.T) {
	t.Parallel()

	t.Run("accepts a correctly signed payload", func(t *testing.T) {
		t.Parallel()

		raw := signInitData(t, testBotToken, freshFields(time.Now()))

		data, err := ValidateInitData(raw, testBotToken)
		require.NoError(t, err)
		require.Equal(t, int64(323074756), data.User.ID)
		require.Equal(t, "Ivan", data.User.FirstName)
		require.Equal(t, "Petrov", data.User.LastName)
		require.Equal(t, "ipetrov", data.User.Username)
		require.Equal(t, "AAF9tT0TAAAAAH21PRMrWGRX", data.QueryID)
	})

	t.Run("rejects a tampered payload", func(t *testing.T) {
		t.Parallel()

		fields := freshFields(time.Now())
		raw := signInitData(t, testBotToken, fields)

		tampered := strings.Replace(raw, "323074756", "999999999", 1)

		_, err := ValidateInitData(tampered, testBotToken)
		require.ErrorContains(t, err, "signature mismatch")
	})

	t.Run("rejects a payload signed with another bot token", func(t *testing.T) {
		t.Parallel()

		raw := signInitData(t, "999:OTHER-TOKEN", freshFields(time.Now()))

		_, err := ValidateInitData(raw, testBotToken)
		require.ErrorContains(t, err, "signature mismatch")
	})

	t.Run("rejects an expired payload", func(t *testing.T) {
		t.Parallel()

		stale := time.Now().Add(-MaxInitDataAge - time.Hour)
		raw := signInitData(t, testBotToken, freshFields(stale))

		_, err := ValidateInitData(raw, testBotToken)
		require.ErrorContains(t, err, "expired")
	})

	t.Run("rejects a payload without hash", func(t *testing.T) {
		t.Parallel()

		_, err := ValidateInitData("auth_date=1&user=%7B%22id%22%3A1%7D", testBotToken)
		require.ErrorContains(t, err, "no hash")
	})

	t.Run("rejects a payload without user", func(t *testing.T) {
		t.Parallel()

		fields := freshFields(time.Now())
		delete(fields, "user")
		raw := signInitData(t, testBotToken, fields)

		_, err := ValidateInitData(raw, testBotToken)
		require.Error(t, err)
	})
}
