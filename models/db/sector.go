package dbmodels

type Sector struct {
	BaseModel
	Name   string  `gorm:"type:varchar(255)"`
	HeadID *string `gorm:"type:varchar(36)"` // руководитель сектора
	Head   *User   `gorm:"foreignKey:HeadID"`
}

type Department struct {
	BaseModel
	Name     string `gorm:"type:varchar(255)"`
	SectorID string `gorm:"type:varchar(36);index"`
	Sector   *Sector
	HeadID   *string `gorm:"type:varchar(36)"` // руководитель подразделения
	Head     *User   `gorm:"foreignKey:HeadID"`
}
