package authapimodels

import "github.com/pkg/errors"

type LoginRequest struct {
	Email    string `json:"email"`    // почта пользователя
	Password string `json:"password"` // пароль
}

func (l LoginRequest) Validate() error {
	if l.Email == "" {
		return errors.New("не указана почта")
	}
	if l.Password == "" {
		return errors.New("не указан пароль")
	}
	return nil
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
