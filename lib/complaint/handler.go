package complaint

import (
	"github.com/pkg/errors"
	"qms-backend/db"
	complaintstore "qms-backend/lib/complaint/store"
	"qms-backend/lib/sequence"
	"qms-backend/lib/ticket"
	"qms-backend/models"
	complaintapimodels "qms-backend/models/api/complaint"
	ticketapimodels "qms-backend/models/api/ticket"
	dbmodels "qms-backend/models/db"
)

type Provider interface {
	Create(data complaintapimodels.ComplaintData) (id string, err error)
	Edit(id string, data complaintapimodels.ComplaintData) error
	GetByID(id string) (view complaintapimodels.ComplaintView, err error)
	List() (list []complaintapimodels.ComplaintView, err error)
	// RaiseTicket заведение CAR по рекламации, у рекламации не больше одного CAR
	RaiseTicket(id, userID string) (ticketID string, err error)
	Close(id string) error
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store:  complaintstore.NewInstance(db.DB),
		seq:    sequence.Instance,
		ticket: ticket.Instance,
	}
}

type impl struct {
	store  complaintstore.Provider
	seq    sequence.Provider
	ticket ticket.Provider
}

func (i impl) Create(data complaintapimodels.ComplaintData) (id string, err error) {
	number, err := i.seq.Next(models.NumberFamilyComplaint)
	if err != nil {
		return "", errors.Wrap(err, "ошибка получения номера рекламации")
	}
	rec := dbmodels.Complaint{
		Number:       number,
		CustomerName: data.CustomerName,
		Subject:      data.Subject,
		Details:      data.Details,
		ReceivedDate: data.ReceivedDate,
		DepartmentID: data.DepartmentID,
		Status:       dbmodels.ComplaintStatusOpen,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", errors.Wrap(err, "ошибка создания рекламации")
	}
	return id, nil
}

func (i impl) Edit(id string, data complaintapimodels.ComplaintData) error {
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	if rec.Status == dbmodels.ComplaintStatusClosed {
		return errors.New("закрытая рекламация не редактируется")
	}
	return i.store.Update(id, map[string]interface{}{
		"customer_name": data.CustomerName,
		"subject":       data.Subject,
		"details":       data.Details,
		"received_date": data.ReceivedDate,
		"department_id": data.DepartmentID,
	})
}

func (i impl) GetByID(id string) (view complaintapimodels.ComplaintView, err error) {
	rec, err := i.getRec(id)
	if err != nil {
		return complaintapimodels.ComplaintView{}, err
	}
	return complaintapimodels.ComplaintConvert(*rec), nil
}

func (i impl) List() (list []complaintapimodels.ComplaintView, err error) {
	recList, err := i.store.List()
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка рекламаций")
	}
	list = make([]complaintapimodels.ComplaintView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, complaintapimodels.ComplaintConvert(rec))
	}
	return list, nil
}

func (i impl) RaiseTicket(id, userID string) (ticketID string, err error) {
	rec, err := i.getRec(id)
	if err != nil {
		return "", err
	}
	if rec.Status == dbmodels.ComplaintStatusClosed {
		return "", errors.New("по закрытой рекламации CAR не заводится")
	}
	if rec.TicketID != nil {
		return "", errors.New("по рекламации уже заведён CAR")
	}
	ticketID, err = i.ticket.Create(userID, ticketapimodels.TicketCreateData{
		TicketData: ticketapimodels.TicketData{
			Priority:       models.TicketPriorityHigh,
			SourceType:     models.TicketSourceComplaint,
			ToDepartmentID: rec.DepartmentID,
			Subject:        rec.Subject,
			Description:    rec.Details,
		},
		Kind: models.TicketKindCAR,
	})
	if err != nil {
		return "", errors.Wrap(err, "ошибка создания CAR по рекламации")
	}
	err = i.store.Update(id, map[string]interface{}{
		"ticket_id": ticketID,
	})
	if err != nil {
		return "", errors.Wrap(err, "ошибка привязки CAR к рекламации")
	}
	return ticketID, nil
}

func (i impl) Close(id string) error {
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	if rec.Status == dbmodels.ComplaintStatusClosed {
		return errors.New("рекламация уже закрыта")
	}
	return i.store.Update(id, map[string]interface{}{
		"status": dbmodels.ComplaintStatusClosed,
	})
}

func (i impl) getRec(id string) (*dbmodels.Complaint, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения рекламации")
	}
	if rec == nil {
		return nil, errors.New("рекламация не найдена")
	}
	return rec, nil
}
