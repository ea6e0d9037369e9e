package certificate

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"qms-backend/db"
	certificatestore "qms-backend/lib/certificate/store"
	pdfexport "qms-backend/lib/export/pdf"
	"qms-backend/lib/sequence"
	"qms-backend/models"
	certapimodels "qms-backend/models/api/certificate"
	dbmodels "qms-backend/models/db"
)

type Provider interface {
	Create(data certapimodels.CertificateData) (id string, err error)
	Edit(id string, data certapimodels.CertificateData) error
	GetByID(id string) (view certapimodels.CertificateView, err error)
	List() (list []certapimodels.CertificateView, err error)
	Withdraw(id string) error
	Delete(id string) error
	// ExportCard карточка сертификата в pdf
	ExportCard(id string) (file []byte, fileName string, err error)
	// RefreshStatuses перевод просроченных сертификатов в статус expired,
	// вызывается планировщиком
	RefreshStatuses(now time.Time)
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store: certificatestore.NewInstance(db.DB),
		seq:   sequence.Instance,
	}
}

type impl struct {
	store certificatestore.Provider
	seq   sequence.Provider
}

func (i impl) Create(data certapimodels.CertificateData) (id string, err error) {
	number, err := i.seq.Next(models.NumberFamilyCertificate)
	if err != nil {
		return "", errors.Wrap(err, "ошибка получения номера сертификата")
	}
	rec := dbmodels.Certificate{
		Number:        number,
		Name:          data.Name,
		Authority:     data.Authority,
		Standard:      data.Standard,
		IssueDate:     data.IssueDate,
		ExpiryDate:    data.ExpiryDate,
		Status:        dbmodels.CertificateStatusActive,
		ResponsibleID: data.ResponsibleID,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", errors.Wrap(err, "ошибка создания сертификата")
	}
	return id, nil
}

func (i impl) Edit(id string, data certapimodels.CertificateData) error {
	_, err := i.getRec(id)
	if err != nil {
		return err
	}
	return i.store.Update(id, map[string]interface{}{
		"name":           data.Name,
		"authority":      data.Authority,
		"standard":       data.Standard,
		"issue_date":     data.IssueDate,
		"expiry_date":    data.ExpiryDate,
		"responsible_id": data.ResponsibleID,
	})
}

func (i impl) GetByID(id string) (view certapimodels.CertificateView, err error) {
	rec, err := i.getRec(id)
	if err != nil {
		return certapimodels.CertificateView{}, err
	}
	return certapimodels.CertificateConvert(*rec), nil
}

func (i impl) List() (list []certapimodels.CertificateView, err error) {
	recList, err := i.store.List()
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка сертификатов")
	}
	list = make([]certapimodels.CertificateView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, certapimodels.CertificateConvert(rec))
	}
	return list, nil
}

func (i impl) Withdraw(id string) error {
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	if rec.Status == dbmodels.CertificateStatusWithdrawn {
		return errors.New("сертификат уже отозван")
	}
	return i.store.Update(id, map[string]interface{}{
		"status": dbmodels.CertificateStatusWithdrawn,
	})
}

func (i impl) Delete(id string) error {
	_, err := i.getRec(id)
	if err != nil {
		return err
	}
	return i.store.Delete(id)
}

func (i impl) ExportCard(id string) (file []byte, fileName string, err error) {
	rec, err := i.getRec(id)
	if err != nil {
		return nil, "", err
	}
	file, err = pdfexport.GenerateCertificateCard(*rec)
	if err != nil {
		return nil, "", errors.Wrap(err, "ошибка формирования карточки сертификата")
	}
	return file, fmt.Sprintf("%v.pdf", rec.Number), nil
}

func (i impl) RefreshStatuses(now time.Time) {
	recList, err := i.store.ListActive()
	if err != nil {
		log.WithError(err).Error("ошибка получения действующих сертификатов")
		return
	}
	for _, rec := range recList {
		if rec.ExpiryDate == nil || !rec.ExpiryDate.Before(now) {
			continue
		}
		err = i.store.Update(rec.ID, map[string]interface{}{
			"status": dbmodels.CertificateStatusExpired,
		})
		if err != nil {
			log.
				WithError(err).
				WithField("number", rec.Number).
				Error("ошибка смены статуса просроченного сертификата")
		}
	}
}

func (i impl) getRec(id string) (*dbmodels.Certificate, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения сертификата")
	}
	if rec == nil {
		return nil, errors.New("сертификат не найден")
	}
	return rec, nil
}
