package pdfexport

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	"qms-backend/lib/utils/helpers"
	dbmodels "qms-backend/models/db"
)

// GenerateCertificateCard карточка сертификата в pdf
func GenerateCertificateCard(rec dbmodels.Certificate) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateCertificateCard panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "static/font/")
	pdf.AddPage()
	pdf.AddUTF8Font("Arial", "", "Arial.ttf")
	pdf.AddUTF8Font("Arial", "B", "Arial Bold.ttf")
	pdf.SetFont("Arial", "B", 16)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	pdf.CellFormat(0, 12, fmt.Sprintf("Сертификат %v", rec.Number), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 12)
	writeRow(pdf, "Название", rec.Name)
	writeRow(pdf, "Выдавший орган", rec.Authority)
	writeRow(pdf, "Стандарт", rec.Standard)
	if rec.IssueDate != nil {
		writeRow(pdf, "Дата выдачи", helpers.DateOnly(*rec.IssueDate))
	}
	if rec.ExpiryDate != nil {
		writeRow(pdf, "Действует до", helpers.DateOnly(*rec.ExpiryDate))
	}
	writeRow(pdf, "Статус", certStatusName(rec.Status))
	if rec.Responsible != nil {
		writeRow(pdf, "Ответственный", rec.Responsible.GetFullName())
	}

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeRow(pdf *fpdf.Fpdf, name, value string) {
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(60, 8, name, "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	pdf.MultiCell(0, 8, value, "", "L", false)
}

func certStatusName(status dbmodels.CertificateStatus) string {
	switch status {
	case dbmodels.CertificateStatusActive:
		return "Действует"
	case dbmodels.CertificateStatusExpired:
		return "Истёк"
	case dbmodels.CertificateStatusWithdrawn:
		return "Отозван"
	}
	return string(status)
}
