package sentreminderstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "qms-backend/models/db"
)

type Provider interface {
	// Create фиксирует отправку напоминания.
	// Вставка в журнал играет роль арбитра при параллельных обходах:
	// нарушение уникального ключа означает, что напоминание уже ушло.
	Create(rec dbmodels.SentReminder) (alreadySent bool, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.SentReminder) (alreadySent bool, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return true, nil
		}
		return false, err
	}
	return false, nil
}
