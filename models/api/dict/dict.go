package dictapimodels

import (
	"github.com/pkg/errors"
	dbmodels "qms-backend/models/db"
)

type SectorData struct {
	Name   string `json:"name"`    // название сектора
	HeadID string `json:"head_id"` // руководитель сектора
}

func (s SectorData) Validate() error {
	if s.Name == "" {
		return errors.New("не указано название сектора")
	}
	return nil
}

type SectorView struct {
	SectorData
	ID       string `json:"id"`
	HeadName string `json:"head_name,omitempty"`
}

func SectorConvert(rec dbmodels.Sector) SectorView {
	result := SectorView{
		SectorData: SectorData{
			Name: rec.Name,
		},
		ID: rec.ID,
	}
	if rec.HeadID != nil {
		result.HeadID = *rec.HeadID
	}
	if rec.Head != nil {
		result.HeadName = rec.Head.GetFullName()
	}
	return result
}

type DepartmentData struct {
	Name     string `json:"name"`      // название подразделения
	SectorID string `json:"sector_id"` // сектор
	HeadID   string `json:"head_id"`   // руководитель подразделения
}

func (d DepartmentData) Validate() error {
	if d.Name == "" {
		return errors.New("не указано название подразделения")
	}
	if d.SectorID == "" {
		return errors.New("не указан сектор")
	}
	return nil
}

type DepartmentView struct {
	DepartmentData
	ID         string `json:"id"`
	SectorName string `json:"sector_name,omitempty"`
	HeadName   string `json:"head_name,omitempty"`
}

func DepartmentConvert(rec dbmodels.Department) DepartmentView {
	result := DepartmentView{
		DepartmentData: DepartmentData{
			Name:     rec.Name,
			SectorID: rec.SectorID,
		},
		ID: rec.ID,
	}
	if rec.HeadID != nil {
		result.HeadID = *rec.HeadID
	}
	if rec.Sector != nil {
		result.SectorName = rec.Sector.Name
	}
	if rec.Head != nil {
		result.HeadName = rec.Head.GetFullName()
	}
	return result
}
