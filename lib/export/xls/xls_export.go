package xlsexport

import (
	"bytes"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	"qms-backend/lib/utils/helpers"
	dbmodels "qms-backend/models/db"
)

type Provider interface {
	ExportTicketRegister(list []dbmodels.Ticket, now time.Time) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var ticketHeaders = []string{"Номер", "Вид", "Статус", "Приоритет", "Источник", "Подразделение", "Тема", "Дата выдачи", "Ближайший срок", "Просрочен", "Дата закрытия"}

// ExportTicketRegister реестр запросов в формате xlsx
func (i impl) ExportTicketRegister(list []dbmodels.Ticket, now time.Time) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, ticketHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		_, err = writeTicketData(f, sheet, list, row, now)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	f.SetSheetName(sheet, "Запросы")
	return f.WriteToBuffer()
}

func writeTicketData(f *excelize.File, sheet string, list []dbmodels.Ticket, row int, now time.Time) (int, error) {
	for _, item := range list {
		row++
		// "Номер"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.Number); err != nil {
			return row, err
		}

		// "Вид"
		col++
		if err := writeColumn(f, sheet, col, row, string(item.Kind)); err != nil {
			return row, err
		}

		// "Статус"
		col++
		if err := writeColumn(f, sheet, col, row, item.Status.ToHuman()); err != nil {
			return row, err
		}

		// "Приоритет"
		col++
		if err := writeColumn(f, sheet, col, row, string(item.Priority)); err != nil {
			return row, err
		}

		// "Источник"
		col++
		if err := writeColumn(f, sheet, col, row, item.SourceType.ToHuman()); err != nil {
			return row, err
		}

		// "Подразделение"
		col++
		if item.ToDepartment != nil {
			if err := writeColumn(f, sheet, col, row, item.ToDepartment.Name); err != nil {
				return row, err
			}
		}

		// "Тема"
		col++
		if err := writeColumn(f, sheet, col, row, item.Subject); err != nil {
			return row, err
		}

		// "Дата выдачи"
		col++
		if item.IssuedDate != nil {
			if err := writeColumn(f, sheet, col, row, helpers.DateOnly(*item.IssuedDate)); err != nil {
				return row, err
			}
		}

		// "Ближайший срок"
		col++
		if due := item.NextDueDate(); due != nil {
			if err := writeColumn(f, sheet, col, row, helpers.DateOnly(*due)); err != nil {
				return row, err
			}
		}

		// "Просрочен"
		col++
		overdue := ""
		if item.IsOverdue(now) {
			overdue = "Да"
		}
		if err := writeColumn(f, sheet, col, row, overdue); err != nil {
			return row, err
		}

		// "Дата закрытия"
		col++
		if item.ClosedAt != nil {
			if err := writeColumn(f, sheet, col, row, helpers.DateOnly(*item.ClosedAt)); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}

func writeHeader(f *excelize.File, sheet string, row int, headers []string) (int, error) {
	row++
	styleID, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return row, err
	}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return row, err
		}
		if err = f.SetCellValue(sheet, cell, header); err != nil {
			return row, err
		}
		if err = f.SetCellStyle(sheet, cell, cell, styleID); err != nil {
			return row, err
		}
	}
	return row, nil
}

func writeColumn(f *excelize.File, sheet string, col, row int, value string) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, value)
}
