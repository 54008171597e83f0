package migrations

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/db"
	"gorm.io/gorm"
)

func addImageBuilds() *gormigrate.Migration {
	type ImageBuild struct {
		db.Model
		ImageID                string `json:"image_id" gorm:"index"`
		Region                 string `json:"region"`
		Version                string `json:"version"`
		Status                 string `json:"status" gorm:"index"`
		Ec2AmiID               string `json:"ec2_ami_id"`
		CloudformationStackArn string `json:"cloudformation_stack_arn"`
		ConfigurationS3URL     string `json:"configuration_s3_url"`
		RollbackOnFailure      bool   `json:"rollback_on_failure"`
		FailureReason          string `json:"failure_reason"`
		Owner                  string `json:"owner" gorm:"index"`
	}

	return &gormigrate.Migration{
		ID: "202303011201",
		Migrate: func(tx *gorm.DB) error {
			return tx.AutoMigrate(&ImageBuild{})
		},
		Rollback: func(tx *gorm.DB) error {
			return tx.Migrator().DropTable(&ImageBuild{})
		},
	}
}
