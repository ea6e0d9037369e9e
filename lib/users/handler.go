package users

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"qms-backend/config"
	"qms-backend/db"
	userstore "qms-backend/lib/users/store"
	authutils "qms-backend/lib/utils/auth-utils"
	authapimodels "qms-backend/models/api/auth"
	userapimodels "qms-backend/models/api/user"
	dbmodels "qms-backend/models/db"
)

type Provider interface {
	Login(email, password string) (resp authapimodels.LoginResponse, err error)
	Refresh(refreshToken string) (resp authapimodels.LoginResponse, err error)
	Create(data userapimodels.UserCreateData) (id string, err error)
	Edit(id string, data userapimodels.UserData) error
	ChangePassword(id, password string) error
	GetByID(id string) (view userapimodels.UserView, err error)
	List() (list []userapimodels.UserView, err error)
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store: userstore.NewInstance(db.DB),
	}
}

type impl struct {
	store userstore.Provider
}

func (i impl) Login(email, password string) (resp authapimodels.LoginResponse, err error) {
	user, err := i.store.GetByEmail(email)
	if err != nil {
		return resp, errors.Wrap(err, "ошибка поиска пользователя")
	}
	if user == nil {
		return resp, errors.New("неверная почта или пароль")
	}
	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return resp, errors.New("неверная почта или пароль")
	}
	return i.buildTokens(*user)
}

func (i impl) Refresh(refreshToken string) (resp authapimodels.LoginResponse, err error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("неожиданный метод подписи: %v", token.Header["alg"])
		}
		return []byte(config.Conf.Auth.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return resp, errors.New("недействительный токен")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return resp, errors.New("недействительный токен")
	}
	userID, _ := claims["sub"].(string)
	user, err := i.store.GetByID(userID)
	if err != nil {
		return resp, errors.Wrap(err, "ошибка поиска пользователя")
	}
	if user == nil {
		return resp, errors.New("пользователь не найден")
	}
	return i.buildTokens(*user)
}

func (i impl) buildTokens(user dbmodels.User) (resp authapimodels.LoginResponse, err error) {
	resp.AccessToken, err = authutils.GetToken(user.ID, user.GetFullName(), user.Role)
	if err != nil {
		return resp, errors.Wrap(err, "ошибка выпуска токена")
	}
	resp.RefreshToken, err = authutils.GetRefreshToken(user.ID, user.GetFullName())
	if err != nil {
		return resp, errors.Wrap(err, "ошибка выпуска токена")
	}
	return resp, nil
}

func (i impl) Create(data userapimodels.UserCreateData) (id string, err error) {
	exist, err := i.store.GetByEmail(data.Email)
	if err != nil {
		return "", errors.Wrap(err, "ошибка проверки почты")
	}
	if exist != nil {
		return "", errors.New("пользователь с такой почтой уже существует")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.Wrap(err, "ошибка хеширования пароля")
	}
	rec := dbmodels.User{
		Email:        data.Email,
		PasswordHash: string(hash),
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Role:         data.Role,
		EmailEnabled: data.EmailEnabled,
	}
	if data.DepartmentID != "" {
		rec.DepartmentID = &data.DepartmentID
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", errors.Wrap(err, "ошибка создания пользователя")
	}
	return id, nil
}

func (i impl) Edit(id string, data userapimodels.UserData) error {
	_, err := i.getRec(id)
	if err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"email":         data.Email,
		"first_name":    data.FirstName,
		"last_name":     data.LastName,
		"role":          data.Role,
		"email_enabled": data.EmailEnabled,
	}
	if data.DepartmentID != "" {
		updMap["department_id"] = data.DepartmentID
	}
	return i.store.Update(id, updMap)
}

func (i impl) ChangePassword(id, password string) error {
	_, err := i.getRec(id)
	if err != nil {
		return err
	}
	if password == "" {
		return errors.New("не указан пароль")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "ошибка хеширования пароля")
	}
	return i.store.Update(id, map[string]interface{}{
		"password_hash": string(hash),
	})
}

func (i impl) GetByID(id string) (view userapimodels.UserView, err error) {
	rec, err := i.getRec(id)
	if err != nil {
		return userapimodels.UserView{}, err
	}
	return userapimodels.UserConvert(*rec), nil
}

func (i impl) List() (list []userapimodels.UserView, err error) {
	recList, err := i.store.List()
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка пользователей")
	}
	list = make([]userapimodels.UserView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, userapimodels.UserConvert(rec))
	}
	return list, nil
}

func (i impl) Delete(id string) error {
	_, err := i.getRec(id)
	if err != nil {
		return err
	}
	return i.store.Delete(id)
}

func (i impl) getRec(id string) (*dbmodels.User, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения пользователя")
	}
	if rec == nil {
		return nil, errors.New("пользователь не найден")
	}
	return rec, nil
}
