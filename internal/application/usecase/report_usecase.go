package usecase

import (
	"context"

	"github.com/jhoicas/Conteo-api/internal/application/dto"
	"github.com/jhoicas/Conteo-api/internal/domain/entity"
	"github.com/jhoicas/Conteo-api/internal/domain/repository"
)

// ReportPDFGenerator puerto para la representación imprimible del reporte.
type ReportPDFGenerator interface {
	GenerateReportPDF(ctx context.Context, rows []*entity.ReportRow) ([]byte, error)
}

// ReportUseCase arma el reporte denormalizado de conteos (join de solo
// lectura, más reciente primero).
type ReportUseCase struct {
	countRepo repository.InventoryCountRepository
	pdfGen    ReportPDFGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(countRepo repository.InventoryCountRepository, pdfGen ReportPDFGenerator) *ReportUseCase {
	return &ReportUseCase{countRepo: countRepo, pdfGen: pdfGen}
}

// List devuelve todas las filas del reporte, nuevas primero. Sin conteos
// devuelve una lista vacía.
func (uc *ReportUseCase) List() ([]dto.ReportRowResponse, error) {
	rows, err := uc.countRepo.ListReport()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReportRowResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, toReportRowResponse(r))
	}
	return items, nil
}

// PDF genera la versión imprimible del reporte completo.
func (uc *ReportUseCase) PDF(ctx context.Context) ([]byte, error) {
	rows, err := uc.countRepo.ListReport()
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.GenerateReportPDF(ctx, rows)
}

func toReportRowResponse(r *entity.ReportRow) dto.ReportRowResponse {
	return dto.ReportRowResponse{
		ID:                r.Count.ID,
		CountNumber:       r.Count.CountNumber,
		CutOffDate:        r.Count.CutOffDate.Format(cutOffDateLayout),
		WarehouseCode:     r.Count.WarehouseCode,
		ProductCode:       r.Count.ProductCode,
		QuantityPackaging: r.Count.QuantityPackaging,
		QuantityUnits:     r.Count.QuantityUnits,
		UserID:            r.Count.UserID,
		CreatedAt:         r.Count.CreatedAt,
		ProductName:       r.ProductName,
		WarehouseName:     r.WarehouseName,
		UserName:          r.UserName,
	}
}
