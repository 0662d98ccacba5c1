package types

// UserWithAuth is the authenticated Telegram user carried in the JWT and
// the request context.
type UserWithAuth struct {
	TelegramID int64  `json:"telegram_id" validate:"required"`
	FirstName  string `json:"first_name" validate:"required"`
	LastName   string `json:"last_name" validate:"omitempty"`
	Username   string `json:"username" validate:"omitempty"`
	Phone      string `json:"phone_number" validate:"omitempty"`
}

// DisplayName is the name pre-filled into the order form, matching the
// "first_name last_name" label shown in the mini app.
func (u UserWithAuth) DisplayName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
