package department

import (
	"github.com/pkg/errors"
	"qms-backend/db"
	departmentstore "qms-backend/lib/dicts/department/store"
	dictapimodels "qms-backend/models/api/dict"
	dbmodels "qms-backend/models/db"
)

type Provider interface {
	Create(data dictapimodels.DepartmentData) (id string, err error)
	Edit(id string, data dictapimodels.DepartmentData) error
	GetByID(id string) (view dictapimodels.DepartmentView, err error)
	List() (list []dictapimodels.DepartmentView, err error)
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store: departmentstore.NewInstance(db.DB),
	}
}

type impl struct {
	store departmentstore.Provider
}

func (i impl) Create(data dictapimodels.DepartmentData) (id string, err error) {
	rec := dbmodels.Department{
		Name:     data.Name,
		SectorID: data.SectorID,
	}
	if data.HeadID != "" {
		rec.HeadID = &data.HeadID
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", errors.Wrap(err, "ошибка создания подразделения")
	}
	return id, nil
}

func (i impl) Edit(id string, data dictapimodels.DepartmentData) error {
	_, err := i.getRec(id)
	if err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"name":      data.Name,
		"sector_id": data.SectorID,
	}
	if data.HeadID != "" {
		updMap["head_id"] = data.HeadID
	}
	return i.store.Update(id, updMap)
}

func (i impl) GetByID(id string) (view dictapimodels.DepartmentView, err error) {
	rec, err := i.getRec(id)
	if err != nil {
		return dictapimodels.DepartmentView{}, err
	}
	return dictapimodels.DepartmentConvert(*rec), nil
}

func (i impl) List() (list []dictapimodels.DepartmentView, err error) {
	recList, err := i.store.List()
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка подразделений")
	}
	list = make([]dictapimodels.DepartmentView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, dictapimodels.DepartmentConvert(rec))
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

func (i impl) getRec(id string) (*dbmodels.Department, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения подразделения")
	}
	if rec == nil {
		return nil, errors.New("подразделение не найдено")
	}
	return rec, nil
}
