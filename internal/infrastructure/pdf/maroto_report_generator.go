// Package pdf implementa los dos documentos de cumplimiento SB 553:
//
//   - Violent Incident Log: cabecera de empresa, párrafo de certificación y
//     un bloque por incidente en el orden del log (fecha DESC, hora DESC).
//   - Written Workplace Violence Prevention Plan: documento de texto fijo
//     personalizado con nombre de empresa y fecha.
//
// Ambos se regeneran completos en cada petición; nada se cachea.
package pdf

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
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
	mentity "github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/compcleared/compcleared-api/internal/application/report"
	"github.com/compcleared/compcleared-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 13, Green: 71, Blue: 161}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

const certificationText = "This log is maintained pursuant to California Labor Code " +
	"Section 6401.9 (SB 553). Personal identifying information of persons involved has " +
	"been handled in accordance with the statute. The undersigned employer certifies " +
	"that the entries below constitute the complete violent incident log for the " +
	"reporting period."

// Etiquetas legibles para las categorías Cal/OSHA.
var violenceTypeLabels = map[string]string{
	entity.ViolenceType1CriminalIntent: "Type 1 — Criminal Intent",
	entity.ViolenceType2Customer:       "Type 2 — Customer/Client",
	entity.ViolenceType3Worker:         "Type 3 — Worker-on-Worker",
	entity.ViolenceType4Personal:       "Type 4 — Personal Relationship",
}

// ── Generator ─────────────────────────────────────────────────────────────────

// Asegura que MarotoReportGenerator implementa report.PDFGenerator.
var _ report.PDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa report.PDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateIncidentLog genera el PDF del violent incident log y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateIncidentLog(
	_ context.Context,
	company *entity.Company,
	incidents []*entity.Incident,
	generatedAt time.Time,
) ([]byte, error) {
	m := maroto.New(documentConfig(company.Name, "SB 553 Violent Incident Log"))

	m.AddRows(logHeaderRows(company, len(incidents), generatedAt)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(certificationRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))

	if len(incidents) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("No incidents recorded.", props.Text{
				Size: 9, Top: 3, Color: colorGray, Align: align.Center,
			}),
		)))
	}
	for i, inc := range incidents {
		for _, r := range incidentRows(i+1, inc) {
			m.AddRows(r)
		}
		m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.2}))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar incident log: %w", err)
	}
	return doc.GetBytes(), nil
}

// GenerateWrittenPlan genera el Workplace Violence Prevention Plan.
// El contenido es boilerplate fijo; solo nombre de empresa y fecha varían.
func (g *MarotoReportGenerator) GenerateWrittenPlan(
	_ context.Context,
	company *entity.Company,
	generatedAt time.Time,
) ([]byte, error) {
	m := maroto.New(documentConfig(company.Name, "Workplace Violence Prevention Plan"))

	m.AddRows(planTitleRows(company, generatedAt)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	for _, s := range planSections(company.Name) {
		m.AddRows(planSectionRows(s)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar written plan: %w", err)
	}
	return doc.GetBytes(), nil
}

func documentConfig(author, title string) *mentity.Config {
	return config.NewBuilder().
		WithPageSize(pagesize.Letter).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(author, true).
		Build()
}

// ── Incident Log ──────────────────────────────────────────────────────────────

// logHeaderRows: nombre de empresa + título (izq), fecha de generación y total (der).
func logHeaderRows(company *entity.Company, total int, generatedAt time.Time) []core.Row {
	return []core.Row{
		row.New(20).Add(
			col.New(7).Add(
				text.New(company.Name, props.Text{
					Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
				}),
				text.New("SB 553 Violent Incident Log", props.Text{
					Size: 10, Top: 10, Color: colorGray,
				}),
			),
			col.New(5).Add(
				text.New("Generated: "+generatedAt.Format("January 2, 2006 15:04"), props.Text{
					Size: 8, Align: align.Right, Top: 2, Color: colorGray,
				}),
				text.New(fmt.Sprintf("Total incidents: %d", total), props.Text{
					Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 9,
				}),
			),
		),
	}
}

// certificationRow: párrafo fijo de certificación de cumplimiento.
func certificationRow() core.Row {
	return row.New(16).Add(col.New(12).Add(
		text.New(certificationText, props.Text{Size: 7.5, Top: 2, Color: colorGray}),
	))
}

// incidentRows: un bloque por incidente con campos clave tabulares, descripción,
// acciones correctivas y atribución de quien registró.
func incidentRows(n int, inc *entity.Incident) []core.Row {
	kv := func(label, value string) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 7, Color: colorGray, Top: 0.5}),
			text.New(nonEmpty(value, "—"), props.Text{Size: 8.5, Top: 4}),
		)
	}

	rows := []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New(fmt.Sprintf("Incident #%d — %s %s", n, inc.IncidentDate, inc.IncidentTime), props.Text{
				Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2,
			}),
		)),
		row.New(10).Add(
			kv("Location", inc.ExactLocation),
			kv("Violence Type", violenceTypeLabel(inc.ViolenceType)),
			kv("Offender", inc.OffenderClassification),
		),
		row.New(10).Add(
			kv("Law Enforcement Contacted", yesNo(inc.LawEnforcementContacted)),
			kv("Injuries", inc.Injuries),
			kv("Consequences", inc.Consequences),
		),
		row.New(12).Add(col.New(12).Add(
			text.New("Description", props.Text{Style: fontstyle.Bold, Size: 7, Color: colorGray, Top: 0.5}),
			text.New(inc.Description, props.Text{Size: 8.5, Top: 4}),
		)),
	}

	if employees := employeesInvolvedLine(inc.EmployeesInvolved); employees != "" {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New("Employees involved: "+employees, props.Text{Size: 8, Top: 1, Color: colorGray}),
		)))
	}
	if inc.CorrectiveActions != "" {
		rows = append(rows, row.New(10).Add(col.New(12).Add(
			text.New("Corrective Actions", props.Text{Style: fontstyle.Bold, Size: 7, Color: colorGray, Top: 0.5}),
			text.New(inc.CorrectiveActions, props.Text{Size: 8.5, Top: 4}),
		)))
	}

	rows = append(rows, row.New(6).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Logged by %s, %s on %s",
			inc.LoggedByName, inc.LoggedByTitle, inc.LogDate.Format("2006-01-02")),
			props.Text{Size: 7.5, Top: 1.5, Color: colorGray}),
	)))
	return rows
}

// ── Written Plan ──────────────────────────────────────────────────────────────

type planSection struct {
	Title string
	Body  string
}

func planTitleRows(company *entity.Company, generatedAt time.Time) []core.Row {
	return []core.Row{
		row.New(22).Add(col.New(12).Add(
			text.New("Workplace Violence Prevention Plan", props.Text{
				Style: fontstyle.Bold, Size: 15, Color: colorPrimary, Top: 1, Align: align.Center,
			}),
			text.New(company.Name, props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 10, Align: align.Center,
			}),
			text.New("Effective date: "+generatedAt.Format("January 2, 2006"), props.Text{
				Size: 9, Top: 17, Align: align.Center, Color: colorGray,
			}),
		)),
	}
}

func planSectionRows(s planSection) []core.Row {
	return []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New(s.Title, props.Text{Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 3}),
		)),
		row.New(estimateBodyHeight(s.Body)).Add(col.New(12).Add(
			text.New(s.Body, props.Text{Size: 8.5, Top: 1}),
		)),
	}
}

// planSections devuelve las secciones fijas del plan exigidas por LC 6401.9(c).
func planSections(companyName string) []planSection {
	return []planSection{
		{
			Title: "1. Purpose and Scope",
			Body: companyName + " is committed to providing a safe and healthful workplace " +
				"free from violence. This Workplace Violence Prevention Plan is established in " +
				"accordance with California Labor Code Section 6401.9 (SB 553) and applies to " +
				"all employees, at all work locations, at all times.",
		},
		{
			Title: "2. Responsibility for Implementation",
			Body: "The designated plan administrator is responsible for implementing and " +
				"maintaining this plan, coordinating with management at each work location, and " +
				"ensuring that all elements of the plan are carried out. Supervisors are " +
				"responsible for enforcing the plan within their areas.",
		},
		{
			Title: "3. Employee Involvement and Compliance",
			Body: "Employees and their representatives participate in developing and " +
				"implementing this plan through reporting of hazards, participation in training, " +
				"and review of violent incident investigations. Compliance is ensured through " +
				"training, recognition of safe practices, and the disciplinary process.",
		},
		{
			Title: "4. Incident Reporting Procedures",
			Body: "Employees shall report workplace violence incidents, threats, and other " +
				"concerns to their supervisor or the plan administrator without fear of " +
				"reprisal. Reports may be made anonymously. Every report is recorded in the " +
				"violent incident log and investigated promptly.",
		},
		{
			Title: "5. Emergency Response",
			Body: "In the event of an actual or imminent workplace violence emergency, " +
				"employees shall alert coworkers, move to a safe location, and contact 911. " +
				"Evacuation routes and shelter locations are posted at each work location.",
		},
		{
			Title: "6. Training",
			Body: "All employees receive workplace violence prevention training at hire, " +
				"annually thereafter, and whenever a new hazard is identified or the plan is " +
				"changed. Training records are maintained for a minimum of one year.",
		},
		{
			Title: "7. Violent Incident Log",
			Body: "A violent incident log is maintained for every workplace violence " +
				"incident, recording the date, time, and location of the incident, the type of " +
				"violence, classification of the perpetrator, circumstances, consequences, and " +
				"corrective actions taken. Log entries omit personal identifying information.",
		},
		{
			Title: "8. Plan Review",
			Body: "This plan is reviewed at least annually, after any workplace violence " +
				"incident, and whenever a deficiency is observed. Revisions are communicated to " +
				"all employees.",
		},
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func violenceTypeLabel(t string) string {
	if label, ok := violenceTypeLabels[t]; ok {
		return label
	}
	return t
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// employeesInvolvedLine deserializa la lista JSON guardada y la une con comas.
func employeesInvolvedLine(serialized string) string {
	if serialized == "" {
		return ""
	}
	var employees []string
	if err := json.Unmarshal([]byte(serialized), &employees); err != nil {
		return ""
	}
	return strings.Join(employees, ", ")
}

// estimateBodyHeight altura aproximada de un párrafo según su longitud
// (≈95 caracteres por línea a 8.5pt en carta con estos márgenes).
func estimateBodyHeight(body string) float64 {
	lines := len(body)/95 + 1
	return float64(lines)*4 + 3
}
