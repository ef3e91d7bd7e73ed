package export

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"zentrix-api/internal/application/ports"
	"zentrix-api/internal/domain/invoice"
	"zentrix-api/internal/domain/notification"
	"zentrix-api/internal/domain/report"
)

var _ ports.ReportRenderer = (*PDF)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorGreen   = &props.Color{Red: 30, Green: 130, Blue: 60}
	colorOrange  = &props.Color{Red: 220, Green: 120, Blue: 0}
	colorRed     = &props.Color{Red: 190, Green: 30, Blue: 30}
)

type PDF struct {
	now func() time.Time
}

func NewPDF() *PDF { return &PDF{now: time.Now} }

func (p *PDF) Format() report.Format { return report.FormatPDF }

func (p *PDF) newDocument(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle(title, true).
		WithAuthor("Zentrix", true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(
		row.New(12).Add(
			col.New(8).Add(text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			})),
			col.New(4).Add(text.New(generatedAt(p.now()), props.Text{
				Size: 8, Align: align.Right, Color: colorGray, Top: 5,
			})),
		),
		line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}),
	)
	return m
}

func headerRow(cols []column) core.Row {
	cs := make([]core.Col, 0, len(cols))
	for _, c := range cols {
		cs = append(cs, col.New(c.size).Add(text.New(c.title, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
		})))
	}
	return row.New(7).Add(cs...)
}

func valueRow(height float64, cols []column, vals []string, colors map[int]*props.Color) core.Row {
	cs := make([]core.Col, 0, len(cols))
	for i, c := range cols {
		tp := props.Text{Size: 7, Top: 1}
		if clr, ok := colors[i]; ok {
			tp.Color = clr
			tp.Style = fontstyle.Bold
		}
		cs = append(cs, col.New(c.size).Add(text.New(vals[i], tp)))
	}
	return row.New(height).Add(cs...)
}

func statusColor(s invoice.Status) *props.Color {
	switch s {
	case invoice.StatusFiled:
		return colorGreen
	case invoice.StatusPending, invoice.StatusReturned:
		return colorOrange
	case invoice.StatusOverdue:
		return colorRed
	}
	return nil
}

func (p *PDF) RenderInvoices(title string, invs invoice.Invoices, withUser bool) ([]byte, error) {
	m := p.newDocument(title)
	cols := invoiceColumns(withUser)
	statusIdx := 2
	if withUser {
		statusIdx = 3
	}

	m.AddRows(headerRow(cols))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.2}))

	total := decimal.Zero
	for _, inv := range invs {
		colors := map[int]*props.Color{}
		if c := statusColor(inv.Status); c != nil {
			colors[statusIdx] = c
		}
		m.AddRows(valueRow(6, cols, invoiceValues(inv, withUser), colors))
		total = total.Add(inv.TotalAmount)
	}

	m.AddRows(
		line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.3}),
		row.New(8).Add(col.New(12).Add(text.New(
			fmt.Sprintf("%d facturas | Total %s", len(invs), invoice.FormatAmount(total)),
			props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1},
		))),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate invoices: %w", err)
	}
	return doc.GetBytes(), nil
}

func (p *PDF) RenderNotifications(title string, ns notification.Notifications, withUser bool) ([]byte, error) {
	m := p.newDocument(title)
	cols := notificationColumns(withUser)
	typeIdx := 1
	if withUser {
		typeIdx = 2
	}

	m.AddRows(headerRow(cols))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.2}))

	for _, n := range ns {
		colors := map[int]*props.Color{}
		if n.Type == notification.TypeAlert || n.Type == notification.TypeError {
			colors[typeIdx] = colorRed
		}
		m.AddRows(valueRow(10, cols, notificationValues(n, withUser), colors))
	}

	m.AddRows(
		line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.3}),
		row.New(8).Add(col.New(12).Add(text.New(
			fmt.Sprintf("%d notificaciones", len(ns)),
			props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1},
		))),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate notifications: %w", err)
	}
	return doc.GetBytes(), nil
}
