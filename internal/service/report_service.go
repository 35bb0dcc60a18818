package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/maldura7/clover-inventory-system/internal/repository"
	"github.com/maldura7/clover-inventory-system/pkg/apperr"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

const (
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// Export is one rendered inventory report. Rows is set for the JSON
// format, Payload for the downloadable ones.
type Export struct {
	Rows        []repository.ReportRow
	Payload     []byte
	ContentType string
	Filename    string
}

type ReportService interface {
	InventoryReport(format string, locationID *uuid.UUID) (*Export, error)
}

type reportService struct {
	inventoryRepo repository.InventoryRepository
}

func NewReportService(inventoryRepo repository.InventoryRepository) ReportService {
	return &reportService{inventoryRepo: inventoryRepo}
}

// InventoryReport renders the catalog+inventory projection in one of
// the closed set of formats. Anything else is rejected, never silently
// defaulted.
func (s *reportService) InventoryReport(format string, locationID *uuid.UUID) (*Export, error) {
	switch format {
	case FormatJSON, FormatCSV, FormatXLSX:
	default:
		return nil, apperr.Validation(fmt.Sprintf("Unsupported report format: %q (supported: json, csv, xlsx)", format))
	}

	rows, err := s.inventoryRepo.ReportRows(locationID)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	switch format {
	case FormatCSV:
		payload, err := renderCSV(rows)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		return &Export{
			Payload:     payload,
			ContentType: "text/csv",
			Filename:    "inventory-report.csv",
		}, nil
	case FormatXLSX:
		payload, err := renderXLSX(rows)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		return &Export{
			Payload:     payload,
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Filename:    "inventory-report.xlsx",
		}, nil
	default:
		return &Export{Rows: rows, ContentType: "application/json"}, nil
	}
}

var reportHeader = []string{"SKU", "Name", "Quantity", "Location", "Cost Price", "Selling Price"}

func renderCSV(rows []repository.ReportRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(reportHeader); err != nil {
		return nil, err
	}
	for _, row := range rows {
		sku := ""
		if row.SKU != nil {
			sku = *row.SKU
		}
		record := []string{
			sku,
			row.Name,
			strconv.Itoa(row.Quantity),
			row.LocationName,
			strconv.FormatFloat(row.CostPrice, 'f', 2, 64),
			strconv.FormatFloat(row.SellingPrice, 'f', 2, 64),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderXLSX(rows []repository.ReportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Inventory Report"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)

	for col, title := range reportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, err
		}
	}

	for i, row := range rows {
		sku := ""
		if row.SKU != nil {
			sku = *row.SKU
		}
		values := []interface{}{sku, row.Name, row.Quantity, row.LocationName, row.CostPrice, row.SellingPrice}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	if err := f.SetColWidth(sheet, "A", "F", 18); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
