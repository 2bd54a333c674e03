package report

import (
	"context"
	"fmt"
	"time"

	"github.com/compcleared/compcleared-api/internal/domain"
	"github.com/compcleared/compcleared-api/internal/domain/repository"
)

// ReportUseCase genera los PDFs de cumplimiento SB 553 bajo demanda.
// Los documentos se regeneran completos en cada petición; no se almacenan.
type ReportUseCase struct {
	companyRepo  repository.CompanyRepository
	incidentRepo repository.IncidentRepository
	generator    PDFGenerator
	now          func() time.Time
}

// NewReportUseCase construye el caso de uso inyectando sus dependencias.
func NewReportUseCase(companyRepo repository.CompanyRepository, incidentRepo repository.IncidentRepository, generator PDFGenerator) *ReportUseCase {
	return &ReportUseCase{
		companyRepo:  companyRepo,
		incidentRepo: incidentRepo,
		generator:    generator,
		now:          time.Now,
	}
}

// WithClock fija la fuente de tiempo (tests).
func (uc *ReportUseCase) WithClock(now func() time.Time) *ReportUseCase {
	uc.now = now
	return uc
}

// DownloadIncidentLog carga empresa e incidentes y genera el PDF del log.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien.
//   - domain.ErrNotFound        si la empresa no existe.
func (uc *ReportUseCase) DownloadIncidentLog(ctx context.Context, companyID string) (pdfBytes []byte, filename string, err error) {
	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, "", fmt.Errorf("report: obtener empresa: %w", err)
	}
	if company == nil {
		return nil, "", domain.ErrNotFound
	}

	incidents, err := uc.incidentRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, "", fmt.Errorf("report: obtener incidentes: %w", err)
	}

	generatedAt := uc.now()
	pdfBytes, err = uc.generator.GenerateIncidentLog(ctx, company, incidents, generatedAt)
	if err != nil {
		return nil, "", fmt.Errorf("report: generación fallida: %w", err)
	}
	filename = fmt.Sprintf("sb553-incident-log-%s.pdf", generatedAt.Format("2006-01-02"))
	return pdfBytes, filename, nil
}

// DownloadWrittenPlan genera el Workplace Violence Prevention Plan de la empresa.
func (uc *ReportUseCase) DownloadWrittenPlan(ctx context.Context, companyID string) (pdfBytes []byte, filename string, err error) {
	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, "", fmt.Errorf("report: obtener empresa: %w", err)
	}
	if company == nil {
		return nil, "", domain.ErrNotFound
	}

	generatedAt := uc.now()
	pdfBytes, err = uc.generator.GenerateWrittenPlan(ctx, company, generatedAt)
	if err != nil {
		return nil, "", fmt.Errorf("report: generación fallida: %w", err)
	}
	filename = fmt.Sprintf("sb553-written-plan-%s.pdf", generatedAt.Format("2006-01-02"))
	return pdfBytes, filename, nil
}
