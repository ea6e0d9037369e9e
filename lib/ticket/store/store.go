package ticketstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"qms-backend/models"
	ticketapimodels "qms-backend/models/api/ticket"
	dbmodels "qms-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Ticket) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (rec *dbmodels.Ticket, err error)
	List(filter ticketapimodels.TicketFilter) (list []dbmodels.Ticket, rowCount int64, err error)
	// ListAll выборка по фильтру без постраничности, для выгрузки реестра
	ListAll(filter ticketapimodels.TicketFilter) (list []dbmodels.Ticket, err error)
	// ListAwaitingResponse запросы на корректирующее действие, по которым
	// подразделение ещё не отправило ответ, кандидаты на эскалацию
	ListAwaitingResponse() (list []dbmodels.Ticket, err error)
	// ListActive не завершённые запросы, кандидаты на напоминания о сроках
	ListActive() (list []dbmodels.Ticket, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Ticket) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	return i.db.
		Model(dbmodels.Ticket{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) GetByID(id string) (*dbmodels.Ticket, error) {
	rec := dbmodels.Ticket{}
	err := i.preloaded().
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) List(filter ticketapimodels.TicketFilter) (list []dbmodels.Ticket, rowCount int64, err error) {
	tx := i.preloaded()
	tx = applyFilter(tx, filter)
	err = tx.
		Model(dbmodels.Ticket{}).
		Count(&rowCount).
		Error
	if err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	err = tx.
		Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}

func (i impl) ListAll(filter ticketapimodels.TicketFilter) (list []dbmodels.Ticket, err error) {
	tx := applyFilter(i.preloaded(), filter)
	err = tx.
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListAwaitingResponse() (list []dbmodels.Ticket, err error) {
	err = i.preloaded().
		Where("kind = ?", models.TicketKindCAR).
		Where("status IN ?", []models.TicketStatus{models.TicketStatusIssued, models.TicketStatusInProgress}).
		Where(`NOT EXISTS (
			SELECT 1 FROM ticket_responses r
			WHERE r.ticket_id = tickets.id
			  AND r.status IN ('submitted', 'accepted')
			  AND r.deleted_at IS NULL)`).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListActive() (list []dbmodels.Ticket, err error) {
	err = i.preloaded().
		Where("status NOT IN ?", []models.TicketStatus{models.TicketStatusClosed, models.TicketStatusCancelled}).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) preloaded() *gorm.DB {
	return i.db.
		Preload("FromDepartment").
		Preload("ToDepartment").
		Preload("ToDepartment.Head").
		Preload("ToDepartment.Sector").
		Preload("IssuedBy").
		Preload("Responses", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("created_at")
		}).
		Preload("Responses.RespondedBy").
		Preload("FollowUps", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("created_at")
		}).
		Preload("FollowUps.FollowedUpBy")
}

func applyFilter(tx *gorm.DB, filter ticketapimodels.TicketFilter) *gorm.DB {
	if filter.Kind != "" {
		tx = tx.Where("kind = ?", filter.Kind)
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	if filter.ToDepartmentID != "" {
		tx = tx.Where("to_department_id = ?", filter.ToDepartmentID)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		tx = tx.Where("number ILIKE ? OR subject ILIKE ?", like, like)
	}
	if filter.OnlyOverdue {
		tx = tx.
			Where("status NOT IN ?", []models.TicketStatus{models.TicketStatusClosed, models.TicketStatusCancelled}).
			Where(`EXISTS (
				SELECT 1 FROM ticket_responses r
				WHERE r.ticket_id = tickets.id
				  AND r.status <> 'rejected'
				  AND r.deleted_at IS NULL
				  AND ((r.correction_target_date < now() AND r.correction_actual_date IS NULL)
				    OR (r.corrective_action_target_date < now() AND r.corrective_action_actual_date IS NULL)))`)
	}
	return tx
}
