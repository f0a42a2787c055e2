// Package export renders admin reports as Excel workbooks.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/tealeg/xlsx"

	"github.com/snapshot/storefront/internal/core/domain"
)

const timeLayout = "2006-01-02 15:04:05"

// ContentType is the MIME type of the produced workbooks.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// XLSXExporter writes one sheet per export.
type XLSXExporter struct{}

func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

func (XLSXExporter) WriteOrders(w io.Writer, orders []*domain.Order) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Orders")
	if err != nil {
		return fmt.Errorf("add sheet: %w", err)
	}

	addHeader(sheet, "ID", "CreatedAt", "Name", "Email", "Phone", "Address", "Items", "Quantity", "Total")

	for _, o := range orders {
		qty := 0
		lines := make([]string, len(o.Items))
		for i, it := range o.Items {
			qty += it.Quantity
			lines[i] = fmt.Sprintf("%s x%d", it.Name, it.Quantity)
		}

		row := sheet.AddRow()
		row.AddCell().SetValue(o.ID)
		row.AddCell().SetValue(o.CreatedAt.Format(timeLayout))
		row.AddCell().SetValue(o.Name)
		row.AddCell().SetValue(o.Email)
		row.AddCell().SetValue(o.Phone)
		row.AddCell().SetValue(o.Address)
		row.AddCell().SetValue(strings.Join(lines, ", "))
		row.AddCell().SetValue(qty)
		row.AddCell().SetValue(o.Total)
	}

	return file.Write(w)
}

func (XLSXExporter) WriteContacts(w io.Writer, msgs []*domain.ContactMessage) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Messages")
	if err != nil {
		return fmt.Errorf("add sheet: %w", err)
	}

	addHeader(sheet, "ID", "CreatedAt", "Name", "Email", "Phone", "Subject", "Message")

	for _, m := range msgs {
		row := sheet.AddRow()
		row.AddCell().SetValue(m.ID)
		row.AddCell().SetValue(m.CreatedAt.Format(timeLayout))
		row.AddCell().SetValue(m.Name)
		row.AddCell().SetValue(m.Email)
		row.AddCell().SetValue(m.Phone)
		row.AddCell().SetValue(m.Subject)
		row.AddCell().SetValue(m.Message)
	}

	return file.Write(w)
}

func addHeader(sheet *xlsx.Sheet, names ...string) {
	row := sheet.AddRow()
	for _, n := range names {
		row.AddCell().SetValue(n)
	}
}
