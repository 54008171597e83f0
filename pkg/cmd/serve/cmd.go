package serve

import (
	"context"
	"github.com/golang/glog"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/buildinformation"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/environments"
	"github.com/spf13/cobra"
	"os"
	"os/signal"
	"syscall"
)

func NewServeCommand(env *environments.Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the hpc-fleet-manager",
		Long:  "Serve the HPC Fleet Manager API and background workers.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			err := env.CreateServices()
			if err != nil {
				glog.Fatalf("Unable to initialize environment: %s", err.Error())
			}
		},
		Run: func(cmd *cobra.Command, args []string) {
			if info, err := buildinformation.GetBuildInfo(); err == nil {
				glog.Infof("starting hpc-fleet-manager build %s (%s/%s, %s)",
					info.GetCommitSHA(), info.GetOperatingSystem(), info.GetArchitecture(), info.GetGoVersion())
			}

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			// Cancel the context when we get a signal...
			ch := make(chan os.Signal, 1)
			signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
			go func() {
				select {
				case <-ch:
					cancel()
				case <-ctx.Done():
				}
			}()

			env.Run(ctx)
		},
	}
	return cmd
}
