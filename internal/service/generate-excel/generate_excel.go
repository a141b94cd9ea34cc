package generate_excel

import (
	"context"
	"fmt"

	"github.com/oklog/ulid/v2"
	"github.com/xuri/excelize/v2"

	"kantine-klima/internal/service/climate"
)

const (
	summarySheet = "Resultat"
	recsSheet    = "Anbefalinger"
)

type Calculator interface {
	Calculate(ctx context.Context, req climate.Request) (*climate.Response, error)
}

type Report struct {
	ID       string
	FileName string
	Data     []byte
}

type GenerateExcelService struct {
	calc Calculator
}

func NewGenerateService(calc Calculator) *GenerateExcelService {
	return &GenerateExcelService{calc: calc}
}

// GenerateExcel runs the calculation and renders it as a workbook with a
// summary sheet and a recommendations sheet.
func (g *GenerateExcelService) GenerateExcel(ctx context.Context, req climate.Request) (*Report, error) {
	const op = "service.generate_excel.GenerateExcel"

	resp, err := g.calc.Calculate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	id := ulid.Make()

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if _, err := f.NewSheet(recsSheet); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})
	if err != nil {
		return nil, fmt.Errorf("%s: style: %w", op, err)
	}

	if err := writeSummary(f, id, req, resp, headerStyle); err != nil {
		return nil, fmt.Errorf("%s: %s: %w", op, summarySheet, err)
	}
	if err := writeRecommendations(f, resp, headerStyle); err != nil {
		return nil, fmt.Errorf("%s: %s: %w", op, recsSheet, err)
	}

	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%s: write: %w", op, err)
	}

	return &Report{
		ID:       id.String(),
		FileName: fmt.Sprintf("klima_rapport_%s.xlsx", id.String()),
		Data:     buf.Bytes(),
	}, nil
}

func writeSummary(f *excelize.File, id ulid.ULID, req climate.Request, resp *climate.Response, headerStyle int) error {
	in := req.Input

	rows := [][]any{
		{"Rapport", id.String()},
		{"Oprettet", ulid.Time(id.Time()).UTC().Format("2006-01-02 15:04:05")},
		{},
		{"Input", ""},
		{"Medarbejdere", in.Employees},
		{"Fremmøde", in.AttendanceRate},
		{"Driftsdage", in.OperatingDays},
		{"Rødt kød %", in.MeatDistribution.RedMeat},
		{"Lyst kød %", in.MeatDistribution.BrightMeat},
		{"Fisk %", in.MeatDistribution.Fish},
		{"Vegetarisk %", in.MeatDistribution.Vegetarian},
		{"Spild i alt %", in.Waste.Total()},
		{"Sæsonvarer %", in.SeasonalProducePercent},
		{"Økologi %", in.OrganicPercent},
		{},
		{"Resultat", ""},
		{"Måltider pr. år", resp.AnnualMeals},
		{"kg CO2e pr. måltid", resp.PerMealKg},
		{"Ton CO2e pr. år", resp.AnnualTons},
		{"Spildfaktor", resp.WasteMultiplier},
		{"Besparelse DKK (halveret rødt kød)", resp.EstimatedCostSavingsDKK},
		{"Flyrejser til London", resp.Equivalents.FlightsToLondon},
		{"Træer plantet", resp.Equivalents.TreesPlanted},
		{},
		{"Fordeling kg CO2e pr. måltid", ""},
		{"Rødt kød", resp.Breakdown.RedMeat},
		{"Lyst kød", resp.Breakdown.BrightMeat},
		{"Fisk", resp.Breakdown.Fish},
		{"Vegetarisk", resp.Breakdown.Vegetarian},
		{"Spild", resp.Breakdown.Waste},
	}

	if b := resp.Baseline; b != nil && resp.Canteen != nil {
		rows = append(rows,
			[]any{},
			[]any{"Sammenligning", resp.Canteen.Name},
			[]any{"Nuværende kg CO2e pr. kg", b.CurrentCo2PerKg},
			[]any{"Nuværende ton pr. år", b.BaselineTons},
			[]any{"Besparelse ton pr. år", b.SavingsTons},
			[]any{"Besparelse %", b.SavingsPercent},
		)
	}

	w := &sheetWriter{f: f, sheet: summarySheet}

	for i, row := range rows {
		for j, v := range row {
			w.set(j+1, i+1, v)
		}
	}

	// заголовки секций
	for i, row := range rows {
		if len(row) == 2 && row[1] == "" {
			w.style(1, i+1, 2, i+1, headerStyle)
		}
	}

	w.width("A", "A", 36)
	w.width("B", "B", 30)

	return w.err
}

func writeRecommendations(f *excelize.File, resp *climate.Response, headerStyle int) error {
	w := &sheetWriter{f: f, sheet: recsSheet}

	headers := []string{"Prioritet", "Kategori", "Titel", "Beskrivelse", "Besparelse ton/år", "Tidshorisont", "Sværhedsgrad"}
	for i, h := range headers {
		w.set(i+1, 1, h)
	}
	w.style(1, 1, len(headers), 1, headerStyle)

	for i, rec := range resp.Recommendations {
		row := i + 2
		w.set(1, row, rec.Priority)
		w.set(2, row, rec.Category)
		w.set(3, row, rec.Title)
		w.set(4, row, rec.Description)
		w.set(5, row, rec.AnnualSavingTons)
		w.set(6, row, rec.ImplementationTime)
		w.set(7, row, string(rec.Difficulty))
	}

	if w.err == nil {
		w.err = f.SetPanes(recsSheet, &excelize.Panes{
			Freeze:      true,
			YSplit:      1,
			TopLeftCell: "A2",
			ActivePane:  "bottomLeft",
		})
	}
	w.width("A", "B", 14)
	w.width("C", "C", 36)
	w.width("D", "D", 60)
	w.width("E", "G", 18)

	return w.err
}

// sheetWriter keeps the first excelize error, later calls become no-ops.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	err   error
}

func (w *sheetWriter) cell(col, row int) string {
	if w.err != nil {
		return ""
	}
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		w.err = err
	}
	return name
}

func (w *sheetWriter) set(col, row int, v any) {
	name := w.cell(col, row)
	if w.err != nil {
		return
	}
	w.err = w.f.SetCellValue(w.sheet, name, v)
}

func (w *sheetWriter) style(fromCol, fromRow, toCol, toRow, styleID int) {
	from, to := w.cell(fromCol, fromRow), w.cell(toCol, toRow)
	if w.err != nil {
		return
	}
	w.err = w.f.SetCellStyle(w.sheet, from, to, styleID)
}

func (w *sheetWriter) width(fromCol, toCol string, width float64) {
	if w.err != nil {
		return
	}
	w.err = w.f.SetColWidth(w.sheet, fromCol, toCol, width)
}
