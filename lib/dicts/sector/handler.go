package sector

import (
	"github.com/pkg/errors"
	"qms-backend/db"
	sectorstore "qms-backend/lib/dicts/sector/store"
	dictapimodels "qms-backend/models/api/dict"
	dbmodels "qms-backend/models/db"
)

type Provider interface {
	Create(data dictapimodels.SectorData) (id string, err error)
	Edit(id string, data dictapimodels.SectorData) error
	GetByID(id string) (view dictapimodels.SectorView, err error)
	List() (list []dictapimodels.SectorView, err error)
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store: sectorstore.NewInstance(db.DB),
	}
}

type impl struct {
	store sectorstore.Provider
}

func (i impl) Create(data dictapimodels.SectorData) (id string, err error) {
	rec := dbmodels.Sector{
		Name: data.Name,
	}
	if data.HeadID != "" {
		rec.HeadID = &data.HeadID
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", errors.Wrap(err, "ошибка создания сектора")
	}
	return id, nil
}

func (i impl) Edit(id string, data dictapimodels.SectorData) error {
	_, err := i.getRec(id)
	if err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"name": data.Name,
	}
	if data.HeadID != "" {
		updMap["head_id"] = data.HeadID
	}
	return i.store.Update(id, updMap)
}

func (i impl) GetByID(id string) (view dictapimodels.SectorView, err error) {
	rec, err := i.getRec(id)
	if err != nil {
		return dictapimodels.SectorView{}, err
	}
	return dictapimodels.SectorConvert(*rec), nil
}

func (i impl) List() (list []dictapimodels.SectorView, err error) {
	recList, err := i.store.List()
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка секторов")
	}
	list = make([]dictapimodels.SectorView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, dictapimodels.SectorConvert(rec))
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

func (i impl) getRec(id string) (*dbmodels.Sector, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения сектора")
	}
	if rec == nil {
		return nil, errors.New("сектор не найден")
	}
	return rec, nil
}
