package cluster_mgrs

import (
	"time"

	awssdk "github.com/aws/aws-sdk-go/aws"
	"github.com/golang/glog"
	"github.com/google/uuid"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/api/dbapi"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/services"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/constants"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/metrics"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/workers"
	"github.com/pkg/errors"
)

// ProvisioningClustersManager polls the CloudFormation stacks of clusters
// that are being created or updated and moves the rows to their terminal
// status once the stack settles.
type ProvisioningClustersManager struct {
	workers.BaseWorker
	clusterService      services.ClusterService
	computeFleetService services.ComputeFleetService
}

func NewProvisioningClustersManager(clusterService services.ClusterService, computeFleetService services.ComputeFleetService) *ProvisioningClustersManager {
	return &ProvisioningClustersManager{
		BaseWorker: workers.BaseWorker{
			Id:         uuid.New().String(),
			WorkerType: "provisioning_cluster",
			Reconciler: workers.Reconciler{},
		},
		clusterService:      clusterService,
		computeFleetService: computeFleetService,
	}
}

func (m *ProvisioningClustersManager) Start() {
	m.StartWorker(m)
}

func (m *ProvisioningClustersManager) Stop() {
	m.StopWorker(m)
}

func (m *ProvisioningClustersManager) Reconcile() []error {
	glog.Infoln("reconciling provisioning clusters")
	var encounteredErrors []error

	clusters, serviceErr := m.clusterService.ListByStatus(constants.ClusterStatusCreateInProgress, constants.ClusterStatusUpdateInProgress)
	if serviceErr != nil {
		return []error{errors.Wrap(serviceErr, "failed to list provisioning clusters")}
	}

	for _, cluster := range clusters {
		if cluster.IsAccepted() {
			// the creating worker has not issued the stack call yet
			continue
		}
		metrics.UpdateClusterStatusSinceCreatedMetric(constants.ClusterStatus(cluster.Status), cluster.Name, time.Since(cluster.CreatedAt))
		if err := m.reconcileProvisioningCluster(cluster); err != nil {
			encounteredErrors = append(encounteredErrors, errors.Wrapf(err, "failed to reconcile provisioning cluster %s", cluster.Name))
		}
	}

	return encounteredErrors
}

func (m *ProvisioningClustersManager) reconcileProvisioningCluster(cluster *dbapi.Cluster) error {
	stack, serviceErr := m.clusterService.DescribeStack(cluster)
	if serviceErr != nil {
		return errors.Wrap(serviceErr, "failed to describe the cluster stack")
	}

	stackStatus := constants.StackStatus(awssdk.StringValue(stack.StackStatus))
	if stackStatus.IsInProgress() {
		glog.V(10).Infof("stack of cluster %s is still %s", cluster.Name, stackStatus)
		return nil
	}

	creating := cluster.Status == constants.ClusterStatusCreateInProgress.String()
	switch {
	case creating && stackStatus == constants.StackStatusCreateComplete:
		return m.handleCreateComplete(cluster)
	case creating && stackStatus.IsCreateFailure():
		return m.handleFailure(cluster, constants.ClusterStatusCreateFailed, awssdk.StringValue(stack.StackStatusReason))
	case !creating && stackStatus == constants.StackStatusUpdateComplete:
		return m.handleUpdateComplete(cluster)
	case !creating && stackStatus.IsUpdateFailure():
		return m.handleFailure(cluster, constants.ClusterStatusUpdateFailed, awssdk.StringValue(stack.StackStatusReason))
	}

	glog.V(10).Infof("stack of cluster %s is %s, nothing to do", cluster.Name, stackStatus)
	return nil
}

func (m *ProvisioningClustersManager) handleCreateComplete(cluster *dbapi.Cluster) error {
	if serviceErr := m.computeFleetService.BootstrapComputeFleet(cluster); serviceErr != nil {
		return errors.Wrap(serviceErr, "failed to bootstrap the compute fleet status")
	}
	if serviceErr := m.clusterService.UpdateStatus(cluster, constants.ClusterStatusCreateComplete); serviceErr != nil {
		return errors.Wrap(serviceErr, "failed to mark the cluster as created")
	}

	metrics.UpdateClusterCreationDurationMetric(metrics.JobTypeClusterCreate, time.Since(cluster.CreatedAt))
	metrics.IncreaseClusterSuccessOperationsCountMetric(constants.ClusterOperationCreate)
	glog.Infof("cluster %s is ready", cluster.Name)
	return nil
}

func (m *ProvisioningClustersManager) handleUpdateComplete(cluster *dbapi.Cluster) error {
	if serviceErr := m.clusterService.UpdateStatus(cluster, constants.ClusterStatusUpdateComplete); serviceErr != nil {
		return errors.Wrap(serviceErr, "failed to mark the cluster as updated")
	}

	metrics.IncreaseClusterSuccessOperationsCountMetric(constants.ClusterOperationUpdate)
	glog.Infof("cluster %s update finished", cluster.Name)
	return nil
}

func (m *ProvisioningClustersManager) handleFailure(cluster *dbapi.Cluster, status constants.ClusterStatus, reason string) error {
	cluster.Status = status.String()
	cluster.FailureReason = reason
	if serviceErr := m.clusterService.Updates(cluster, map[string]interface{}{
		"status":         cluster.Status,
		"failure_reason": cluster.FailureReason,
	}); serviceErr != nil {
		return errors.Wrapf(serviceErr, "failed to mark the cluster as %s", status)
	}

	glog.Infof("cluster %s moved to %s: %s", cluster.Name, status, reason)
	return nil
}
