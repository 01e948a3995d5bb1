package checks

import (
	"fmt"
	"sort"

	"gorm.io/gorm"
)

// SchemaReport is the result of comparing a table against its model.
type SchemaReport struct {
	Table          string   `json:"table"`
	Exists         bool     `json:"exists"`
	Matched        bool     `json:"matched"`
	MissingColumns []string `json:"missing_columns"`
	Status         string   `json:"status"` // "ok", "error"
}

// CheckSchema verifies that the model's table exists and has every column the
// model maps. The model's gorm tags are the source of truth.
func CheckSchema(db *gorm.DB, model any) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(model); err != nil {
		return nil, fmt.Errorf("failed to parse model: %w", err)
	}

	report := &SchemaReport{
		Table:          stmt.Schema.Table,
		MissingColumns: []string{},
		Status:         "ok",
		Matched:        true,
	}

	migrator := db.Migrator()
	if !migrator.HasTable(model) {
		report.Matched = false
		report.Status = "error"
		for _, field := range stmt.Schema.Fields {
			if field.DBName != "" {
				report.MissingColumns = append(report.MissingColumns, field.DBName)
			}
		}
		sort.Strings(report.MissingColumns)
		return report, nil
	}
	report.Exists = true

	columns, err := migrator.ColumnTypes(model)
	if err != nil {
		return nil, fmt.Errorf("failed to inspect table %s: %w", report.Table, err)
	}

	actual := make(map[string]bool, len(columns))
	for _, col := range columns {
		actual[col.Name()] = true
	}

	for _, field := range stmt.Schema.Fields {
		if field.DBName == "" || actual[field.DBName] {
			continue
		}
		report.MissingColumns = append(report.MissingColumns, field.DBName)
	}
	sort.Strings(report.MissingColumns)

	if len(report.MissingColumns) > 0 {
		report.Matched = false
		report.Status = "error"
	}
	return report, nil
}
