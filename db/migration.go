package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "qms-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	for _, model := range []struct {
		name string
		rec  interface{}
	}{
		{"User", &dbmodels.User{}},
		{"Sector", &dbmodels.Sector{}},
		{"Department", &dbmodels.Department{}},
		{"Ticket", &dbmodels.Ticket{}},
		{"TicketResponse", &dbmodels.TicketResponse{}},
		{"TicketFollowUp", &dbmodels.TicketFollowUp{}},
		{"AuditPlan", &dbmodels.AuditPlan{}},
		{"ExternalAudit", &dbmodels.ExternalAudit{}},
		{"Certificate", &dbmodels.Certificate{}},
		{"Document", &dbmodels.Document{}},
		{"Complaint", &dbmodels.Complaint{}},
		{"Notification", &dbmodels.Notification{}},
		{"NotifyTemplate", &dbmodels.NotifyTemplate{}},
		{"ReminderSetting", &dbmodels.ReminderSetting{}},
		{"SentReminder", &dbmodels.SentReminder{}},
	} {
		if err := DB.AutoMigrate(model.rec); err != nil {
			return errors.Wrapf(err, "ошибка создания структуры %v", model.name)
		}
	}
	log.Info("Миграция прошла успешно")
	return nil
}
