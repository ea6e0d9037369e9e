package sequencestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	MaxNumber(tableName, pattern string) (number string, err error)
	Exists(tableName, number string) (bool, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// MaxNumber максимальный выданный номер по маске,
// мягко удалённые записи учитываются, чтобы их номера не выдавались повторно
func (i impl) MaxNumber(tableName, pattern string) (number string, err error) {
	err = i.db.
		Table(tableName).
		Unscoped().
		Where("number LIKE ?", pattern).
		Select("COALESCE(MAX(number), '')").
		Scan(&number).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return number, nil
}

func (i impl) Exists(tableName, number string) (bool, error) {
	var count int64
	err := i.db.
		Table(tableName).
		Unscoped().
		Where("number = ?", number).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
