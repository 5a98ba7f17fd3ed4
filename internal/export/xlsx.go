// Package export renders entity collections as spreadsheet downloads.
package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/relatecrm/backend/domain"
	"github.com/relatecrm/backend/repository"
)

// Reserved columns lead the sheet in a fixed order; remaining fields follow
// alphabetically.
var leadingColumns = []string{
	domain.FieldID,
	domain.FieldCreatedAt,
	domain.FieldUpdatedAt,
	domain.FieldVersion,
}

// Service turns an entity's live records into an XLSX workbook.
type Service struct {
	store repository.EntityStore
}

func NewService(store repository.EntityStore) *Service {
	return &Service{store: store}
}

// EntityWorkbook exports every live record of the entity as a single-sheet
// workbook and returns the serialized file. Relationship summaries are a
// read-time projection and are not exported.
func (s *Service) EntityWorkbook(entity string) ([]byte, string, error) {
	result, err := s.store.List(entity, domain.ListOptions{})
	if err != nil {
		return nil, "", err
	}

	columns := collectColumns(result.Data)

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	header := make([]interface{}, len(columns))
	for i, col := range columns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, "", fmt.Errorf("writing header row: %w", err)
	}

	for i, rec := range result.Data {
		row := make([]interface{}, len(columns))
		for j, col := range columns {
			row[j] = cellValue(rec[col])
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, "", err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, "", fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("serializing workbook: %w", err)
	}

	filename := strings.ToLower(strings.TrimSpace(entity)) + ".xlsx"
	return buf.Bytes(), filename, nil
}

// collectColumns unions the scalar field names across the collection so
// schema-less records with uneven shapes still line up.
func collectColumns(records []domain.Record) []string {
	seen := make(map[string]struct{})
	for _, rec := range records {
		for field := range rec {
			if field == domain.FieldRelationships {
				continue
			}
			seen[field] = struct{}{}
		}
	}

	var rest []string
	for field := range seen {
		if !isLeading(field) {
			rest = append(rest, field)
		}
	}
	sort.Strings(rest)

	columns := make([]string, 0, len(seen))
	for _, field := range leadingColumns {
		if _, ok := seen[field]; ok {
			columns = append(columns, field)
		}
	}
	return append(columns, rest...)
}

func isLeading(field string) bool {
	for _, col := range leadingColumns {
		if field == col {
			return true
		}
	}
	return false
}

// cellValue flattens non-scalar values to JSON-ish text so excelize never
// receives a map or slice it cannot encode.
func cellValue(v interface{}) interface{} {
	switch v.(type) {
	case nil:
		return ""
	case string, bool, int, int64, float64:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}
