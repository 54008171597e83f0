package migrations

// Migrations should NEVER use types from other packages. Types can change
// and then migrations run on a _new_ database will fail or behave unexpectedly.
// Instead of importing types, always re-create the type in the migration, as
// is done here, even though the same type is defined in the dbapi package

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/db"
	"gorm.io/gorm"
)

func addClusters() *gormigrate.Migration {
	type Cluster struct {
		db.Model
		Name                   string `json:"name" gorm:"index"`
		Region                 string `json:"region"`
		Scheduler              string `json:"scheduler"`
		Version                string `json:"version"`
		Status                 string `json:"status" gorm:"index"`
		CloudformationStackArn string `json:"cloudformation_stack_arn"`
		ConfigurationS3URL     string `json:"configuration_s3_url"`
		RollbackOnFailure      bool   `json:"rollback_on_failure"`
		RetainLogs             bool   `json:"retain_logs"`
		FailureReason          string `json:"failure_reason"`
		Owner                  string `json:"owner" gorm:"index"`
		OrganisationId         string `json:"organisation_id" gorm:"index"`
	}

	return &gormigrate.Migration{
		ID: "202303011200",
		Migrate: func(tx *gorm.DB) error {
			return tx.AutoMigrate(&Cluster{})
		},
		Rollback: func(tx *gorm.DB) error {
			return tx.Migrator().DropTable(&Cluster{})
		},
	}
}
