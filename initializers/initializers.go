package initializers

import (
	"context"

	log "github.com/sirupsen/logrus"
	"qms-backend/config"
	"qms-backend/fiberlog"
	auditplan "qms-backend/lib/audit-plan"
	"qms-backend/lib/certificate"
	"qms-backend/lib/complaint"
	departmentprovider "qms-backend/lib/dicts/department"
	sectorprovider "qms-backend/lib/dicts/sector"
	"qms-backend/lib/document"
	xlsexport "qms-backend/lib/export/xls"
	externalaudit "qms-backend/lib/external-audit"
	msgtemplate "qms-backend/lib/msg-template"
	"qms-backend/lib/notify"
	"qms-backend/lib/reminder"
	reminderworker "qms-backend/lib/reminder/worker"
	"qms-backend/lib/sequence"
	"qms-backend/lib/ticket"
	"qms-backend/lib/users"
	connectionhub "qms-backend/lib/ws/hub/connection-hub"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3(ctx)
	InitSmtp()
	connectionhub.Init()
	sectorprovider.NewHandler()
	departmentprovider.NewHandler()
	users.NewHandler()
	sequence.NewHandler()
	msgtemplate.NewHandler()
	notify.NewHandler()
	xlsexport.NewHandler()
	// ticket до complaint: рекламации заводят CAR через ticket.Instance
	ticket.NewHandler()
	complaint.NewHandler()
	auditplan.NewHandler()
	externalaudit.NewHandler()
	certificate.NewHandler()
	document.NewHandler()
	reminder.NewHandler()
	if err := reminder.Instance.EnsureDefaults(); err != nil {
		log.WithError(err).Error("Ошибка создания настроек напоминаний по умолчанию")
	}
	go reminderworker.StartWorker(ctx)
}
