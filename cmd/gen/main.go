package main

import (
	"vaxtrack/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.GuardianProfileModel{},
		model.RefreshTokenModel{},
		model.ChildModel{},
		model.VaccineRecordModel{},
		model.VaccineDriveModel{},
		model.NotificationModel{},
		model.AuditLogModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
