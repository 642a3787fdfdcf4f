package main

import (
	"equiptrack/internal/infra/persistence/model"

	"gorm.io/gen"
)

// Generates typed query helpers for the persistence models.
func main() {
	gen := gen.NewGenerator(gen.Config{
		OutPath:       "./internal/infra/persistence/query",
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable: true,
	})

	gen.ApplyBasic(model.All()...)

	gen.Execute()
}
