package reminder

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"qms-backend/lib/utils/helpers"
	"qms-backend/models"
	dbmodels "qms-backend/models/db"
)

// runEscalation эскалация по запросам без ответа подразделения.
// Интервалы настройки трактуются как пороги в рабочих днях с даты выдачи;
// каждый достигнутый порог срабатывает один раз, уведомление требует
// подтверждения получателем.
func (i impl) runEscalation(ctx context.Context, setting dbmodels.ReminderSetting, now time.Time) {
	recList, err := i.ticketStore.ListAwaitingResponse()
	if err != nil {
		log.WithError(err).Error("ошибка получения запросов без ответа")
		return
	}
	for _, rec := range recList {
		if helpers.IsContextDone(ctx) {
			return
		}
		// эскалация предусмотрена только для запросов на корректирующее действие
		if rec.Kind != models.TicketKindCAR {
			continue
		}
		if rec.IssuedDate == nil {
			continue
		}
		days := helpers.WorkingDaysSince(*rec.IssuedDate, now)
		for _, threshold := range setting.Intervals {
			if int64(days) < threshold {
				continue
			}
			item := reminderItem{
				entityType: models.ReminderEntityTicket,
				entityID:   rec.ID,
				anchor:     *rec.IssuedDate,
				recipients: i.escalationRecipients(rec),
				values:     i.escalationValues(rec, threshold),
				actionURL:  "/tickets/" + rec.ID,
				defaultCode: models.NotifyTicketEscalation,
			}
			for _, userID := range item.recipients {
				i.deliver(item, models.ReminderEventNoResponse, setting, int(threshold), userID, now, true)
			}
		}
	}
}

// escalationRecipients руководство, руководитель сектора и руководитель
// ответственного подразделения
func (i impl) escalationRecipients(rec dbmodels.Ticket) []string {
	recipients := i.managementRecipients()
	if rec.ToDepartment != nil {
		if rec.ToDepartment.Sector != nil && rec.ToDepartment.Sector.HeadID != nil {
			recipients = append(recipients, *rec.ToDepartment.Sector.HeadID)
		}
		if rec.ToDepartment.HeadID != nil {
			recipients = append(recipients, *rec.ToDepartment.HeadID)
		}
	}
	seen := map[string]bool{}
	unique := make([]string, 0, len(recipients))
	for _, userID := range recipients {
		if seen[userID] {
			continue
		}
		seen[userID] = true
		unique = append(unique, userID)
	}
	return unique
}

func (i impl) escalationValues(rec dbmodels.Ticket, threshold int64) map[string]string {
	values := map[string]string{
		"number":  rec.Number,
		"subject": rec.Subject,
		"days":    helpers.Itoa64(threshold),
	}
	if rec.ToDepartment != nil {
		values["department"] = rec.ToDepartment.Name
	}
	if rec.IssuedDate != nil {
		values["issued_date"] = helpers.DateOnly(*rec.IssuedDate)
	}
	return values
}
