package migrations

import (
	"time"

	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/api"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/db"
	"gorm.io/gorm"
)

type LeaderLease struct {
	db.Model
	Leader    string
	LeaseType string
	Expires   *time.Time
}

var workerLeaseTypes = []string{"creating_cluster", "provisioning_cluster", "deprovisioning_cluster", "image_builds"}

// addLeaderLease adds the LeaderLease data type and seeds an already expired
// lease for every reconciler worker type so the first leader election can
// claim them.
func addLeaderLease() *gormigrate.Migration {
	return &gormigrate.Migration{
		ID: "202303011202",
		Migrate: func(tx *gorm.DB) error {
			if err := tx.AutoMigrate(&LeaderLease{}); err != nil {
				return err
			}

			leaseExpireTime := time.Now().Add(1 * time.Minute)
			for _, leaderLeaseType := range workerLeaseTypes {
				if err := tx.Create(&api.LeaderLease{Expires: &leaseExpireTime, LeaseType: leaderLeaseType, Leader: api.NewID()}).Error; err != nil {
					return err
				}
			}

			return nil
		},
		Rollback: func(tx *gorm.DB) error {
			return tx.Migrator().DropTable(&LeaderLease{})
		},
	}
}
