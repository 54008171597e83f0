package migrate

import (
	"github.com/golang/glog"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/environments"
	"github.com/spf13/cobra"

	"github.com/hpc-fleet/hpc-fleet-manager/pkg/db"
)

// migrate sub-command handles running migrations
func NewMigrateCommand(env *environments.Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run hpc-fleet-manager data migrations",
		Long:  "Run HPC Fleet Manager data migrations",
		Run: func(cmd *cobra.Command, args []string) {
			env.MustInvoke(func(migrations []*db.Migration) {
				glog.Infoln("Migration starting")
				for _, migration := range migrations {
					migration.Migrate()
				}
				glog.Infoln("Migration done")
			})
		},
	}
	cmd.AddCommand(NewRollbackAll(env), NewRollbackLast(env))
	return cmd
}
