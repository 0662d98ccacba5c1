package telegram

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

// WebAppUser is the "user" object embedded in Mini App init data.
type WebAppUser struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
}

// InitData is the validated payload the Mini App sends on login.
type InitData struct {
	User     WebAppUser
	AuthDate time.Time
	QueryID  string
}

// MaxInitDataAge bounds how old a signed init data payload may be before it
// is rejected as a replay.
const MaxInitDataAge = 24 * time.Hour

// ValidateInitData verifies the HMAC signature the Telegram client attaches
// to the Mini App init data and parses the embedded user. The check follows
// the documented scheme: the secret key is HMAC-SHA256(botToken) keyed with
// "WebAppData", the data-check-string is every field except "hash" sorted
// and newline-joined.
func ValidateInitData(rawInitData, botToken string) (*InitData, error) {
	values, err := url.ParseQuery(rawInitData)
	if err != nil {
		return nil, fmt.Errorf("malformed init data: %w", err)
	}

	gotHash := values.Get("hash")
	if gotHash == "" {
		return nil, fmt.Errorf("init data has no hash")
	}
	values.Del("hash")

	pairs := make([]string, 0, len(values))
	for key := range values {
		pairs = append(pairs, key+"="+values.Get(key))
	}
	sort.Strings(pairs)
	dataCheckString := strings.Join(pairs, "\n")

	secret := hmac.New(sha256.New, []byte("WebAppData"))
	secret.Write([]byte(botToken))

	sig := hmac.New(sha256.New, secret.Sum(nil))
	sig.Write([]byte(dataCheckString))
	wantHash := hex.EncodeToString(sig.Sum(nil))

	if !hmac.Equal([]byte(wantHash), []byte(gotHash)) {
		return nil, fmt.Errorf("init data signature mismatch")
	}

	authDateUnix, err := strconv.ParseInt(values.Get("auth_date"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("init data has no valid auth_date: %w", err)
	}
	authDate := time.Unix(authDateUnix, 0)
	if time.Since(authDate) > MaxInitDataAge {
		return nil, fmt.Errorf("init data expired")
	}

	var user WebAppUser
	if err := json.Unmarshal([]byte(values.Get("user")), &user); err != nil {
		return nil, fmt.Errorf("init data has no valid user: %w", err)
	}
	if user.ID == 0 {
		return nil, fmt.Errorf("init data user has no id")
	}

	return &InitData{
		User:     user,
		AuthDate: authDate,
		QueryID:  values.Get("query_id"),
	}, nil
}
