package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"zentrix-api/internal/application/ports"
	"zentrix-api/internal/domain/invoice"
	"zentrix-api/internal/domain/notification"
	"zentrix-api/internal/domain/report"
)

const (
	SheetInvoices      = "Facturas"
	SheetNotifications = "Notificaciones"
)

var _ ports.ReportRenderer = (*XLSX)(nil)

type XLSX struct{}

func NewXLSX() *XLSX { return &XLSX{} }

func (x *XLSX) Format() report.Format { return report.FormatXLSX }

// RenderInvoices keeps the amount numeric; the PDF shows it formatted.
func (x *XLSX) RenderInvoices(_ string, invs invoice.Invoices, withUser bool) ([]byte, error) {
	rows := make([][]any, 0, len(invs))
	for _, inv := range invs {
		vals := invoiceValues(inv, withUser)
		r := make([]any, len(vals))
		for i, v := range vals {
			r[i] = v
		}
		amountIdx := 1
		if withUser {
			amountIdx = 2
		}
		r[amountIdx] = inv.TotalAmount.InexactFloat64()
		rows = append(rows, r)
	}

	return writeSheet(SheetInvoices, invoiceColumns(withUser), rows)
}

func (x *XLSX) RenderNotifications(_ string, ns notification.Notifications, withUser bool) ([]byte, error) {
	rows := make([][]any, 0, len(ns))
	for _, n := range ns {
		vals := notificationValues(n, withUser)
		r := make([]any, len(vals))
		for i, v := range vals {
			r[i] = v
		}
		rows = append(rows, r)
	}

	return writeSheet(SheetNotifications, notificationColumns(withUser), rows)
}

func writeSheet(sheet string, cols []column, rows [][]any) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("xlsx: rename sheet: %w", err)
	}

	for i, c := range cols {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err = f.SetCellValue(sheet, cell, c.title); err != nil {
			return nil, err
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	last, err := excelize.CoordinatesToCellName(len(cols), 1)
	if err != nil {
		return nil, err
	}
	if err = f.SetCellStyle(sheet, "A1", last, bold); err != nil {
		return nil, err
	}

	for r, vals := range rows {
		for c, v := range vals {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, err
			}
			if err = f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: write: %w", err)
	}
	return buf.Bytes(), nil
}
