package cluster_mgrs

import (
	awssdk "github.com/aws/aws-sdk-go/aws"
	"github.com/golang/glog"
	"github.com/google/uuid"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/api/dbapi"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/config"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/services"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/constants"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/metrics"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/workers"
	"github.com/pkg/errors"
)

// DeprovisioningClustersManager tears down the CloudFormation stack of
// clusters marked DELETE_IN_PROGRESS and soft deletes the row once the
// stack is gone.
type DeprovisioningClustersManager struct {
	workers.BaseWorker
	clusterService services.ClusterService
	fleetConfig    *config.FleetConfig
}

func NewDeprovisioningClustersManager(clusterService services.ClusterService, fleetConfig *config.FleetConfig) *DeprovisioningClustersManager {
	return &DeprovisioningClustersManager{
		BaseWorker: workers.BaseWorker{
			Id:         uuid.New().String(),
			WorkerType: "deprovisioning_cluster",
			Reconciler: workers.Reconciler{},
		},
		clusterService: clusterService,
		fleetConfig:    fleetConfig,
	}
}

func (m *DeprovisioningClustersManager) Start() {
	m.StartWorker(m)
}

func (m *DeprovisioningClustersManager) Stop() {
	m.StopWorker(m)
}

func (m *DeprovisioningClustersManager) Reconcile() []error {
	glog.Infoln("reconciling deprovisioning clusters")
	var encounteredErrors []error

	clusters, serviceErr := m.clusterService.ListByStatus(constants.ClusterStatusDeleteInProgress)
	if serviceErr != nil {
		return []error{errors.Wrap(serviceErr, "failed to list deprovisioning clusters")}
	}

	for _, cluster := range clusters {
		glog.V(10).Infof("deprovisioning cluster name = %s", cluster.Name)
		if err := m.reconcileDeprovisioningCluster(cluster); err != nil {
			encounteredErrors = append(encounteredErrors, errors.Wrapf(err, "failed to reconcile deprovisioning cluster %s", cluster.Name))
		}
	}

	return encounteredErrors
}

func (m *DeprovisioningClustersManager) reconcileDeprovisioningCluster(cluster *dbapi.Cluster) error {
	stack, serviceErr := m.clusterService.DescribeStack(cluster)
	if serviceErr != nil {
		if serviceErr.Is404() {
			return m.handleStackGone(cluster)
		}
		return errors.Wrap(serviceErr, "failed to describe the cluster stack")
	}

	stackStatus := constants.StackStatus(awssdk.StringValue(stack.StackStatus))
	switch {
	case stackStatus == constants.StackStatusDeleteInProgress:
		glog.V(10).Infof("stack of cluster %s is still deleting", cluster.Name)
		return nil
	case stackStatus == constants.StackStatusDeleteComplete:
		return m.handleStackGone(cluster)
	case stackStatus == constants.StackStatusDeleteFailed:
		cluster.Status = constants.ClusterStatusDeleteFailed.String()
		cluster.FailureReason = awssdk.StringValue(stack.StackStatusReason)
		if serviceErr := m.clusterService.Updates(cluster, map[string]interface{}{
			"status":         cluster.Status,
			"failure_reason": cluster.FailureReason,
		}); serviceErr != nil {
			return errors.Wrap(serviceErr, "failed to mark the cluster delete as failed")
		}
		return nil
	}

	metrics.IncreaseClusterTotalOperationsCountMetric(constants.ClusterOperationDelete)
	if serviceErr := m.clusterService.DeleteStack(cluster); serviceErr != nil {
		return errors.Wrap(serviceErr, "failed to request the stack deletion")
	}

	glog.Infof("stack deletion requested for cluster %s", cluster.Name)
	return nil
}

// handleStackGone removes the remaining cluster resources once CloudFormation
// no longer knows the stack.
func (m *DeprovisioningClustersManager) handleStackGone(cluster *dbapi.Cluster) error {
	if !cluster.RetainLogs {
		if serviceErr := m.clusterService.DeleteLogGroup(m.fleetConfig.LogGroupName(cluster.Name), cluster.Region); serviceErr != nil {
			return errors.Wrap(serviceErr, "failed to delete the cluster log group")
		}
	}

	if serviceErr := m.clusterService.Delete(cluster); serviceErr != nil {
		return errors.Wrap(serviceErr, "failed to delete the cluster row")
	}

	metrics.IncreaseClusterSuccessOperationsCountMetric(constants.ClusterOperationDelete)
	glog.Infof("cluster %s deleted", cluster.Name)
	return nil
}
