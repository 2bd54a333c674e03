package report

import (
	"context"
	"time"

	"github.com/compcleared/compcleared-api/internal/domain/entity"
)

// PDFGenerator puerto de renderizado de los dos documentos de cumplimiento.
// La implementación (Maroto) vive en infraestructura.
type PDFGenerator interface {
	// GenerateIncidentLog renderiza el violent incident log completo de la
	// empresa, en el mismo orden del listado (date DESC, time DESC).
	GenerateIncidentLog(ctx context.Context, company *entity.Company, incidents []*entity.Incident, generatedAt time.Time) ([]byte, error)
	// GenerateWrittenPlan renderiza el Workplace Violence Prevention Plan:
	// boilerplate fijo personalizado con nombre de empresa y fecha.
	GenerateWrittenPlan(ctx context.Context, company *entity.Company, generatedAt time.Time) ([]byte, error)
}
