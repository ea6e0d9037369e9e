package userapimodels

import (
	"github.com/pkg/errors"
	"qms-backend/models"
	dbmodels "qms-backend/models/db"
)

type UserData struct {
	Email        string          `json:"email"`         // почта, используется для входа
	FirstName    string          `json:"first_name"`    // имя
	LastName     string          `json:"last_name"`     // фамилия
	Role         models.UserRole `json:"role"`          // роль
	DepartmentID string          `json:"department_id"` // подразделение
	EmailEnabled bool            `json:"email_enabled"` // дублировать уведомления на почту
}

type UserCreateData struct {
	UserData
	Password string `json:"password"`
}

func (u UserCreateData) Validate() error {
	if u.Email == "" {
		return errors.New("не указана почта")
	}
	if u.Password == "" {
		return errors.New("не указан пароль")
	}
	if !u.Role.Validate() {
		return errors.Errorf("неизвестная роль: %v", u.Role)
	}
	return nil
}

func (u UserData) Validate() error {
	if u.Email == "" {
		return errors.New("не указана почта")
	}
	if !u.Role.Validate() {
		return errors.Errorf("неизвестная роль: %v", u.Role)
	}
	return nil
}

type PasswordData struct {
	Password string `json:"password"` // новый пароль
}

type UserView struct {
	UserData
	ID             string `json:"id"`
	FullName       string `json:"full_name"`
	RoleName       string `json:"role_name"`
	DepartmentName string `json:"department_name,omitempty"`
}

func UserConvert(rec dbmodels.User) UserView {
	result := UserView{
		UserData: UserData{
			Email:        rec.Email,
			FirstName:    rec.FirstName,
			LastName:     rec.LastName,
			Role:         rec.Role,
			EmailEnabled: rec.EmailEnabled,
		},
		ID:       rec.ID,
		FullName: rec.GetFullName(),
		RoleName: rec.Role.ToHuman(),
	}
	if rec.DepartmentID != nil {
		result.DepartmentID = *rec.DepartmentID
	}
	if rec.Department != nil {
		result.DepartmentName = rec.Department.Name
	}
	return result
}
