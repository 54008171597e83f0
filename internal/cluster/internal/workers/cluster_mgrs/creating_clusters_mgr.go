package cluster_mgrs

import (
	"github.com/golang/glog"
	"github.com/google/uuid"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/api/dbapi"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/services"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/constants"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/metrics"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/workers"
	"github.com/pkg/errors"
)

// CreatingClustersManager issues the CloudFormation CreateStack call for
// accepted cluster rows. A row is accepted while it is CREATE_IN_PROGRESS
// without a stack ARN.
type CreatingClustersManager struct {
	workers.BaseWorker
	clusterService services.ClusterService
}

func NewCreatingClustersManager(clusterService services.ClusterService) *CreatingClustersManager {
	return &CreatingClustersManager{
		BaseWorker: workers.BaseWorker{
			Id:         uuid.New().String(),
			WorkerType: "creating_cluster",
			Reconciler: workers.Reconciler{},
		},
		clusterService: clusterService,
	}
}

func (m *CreatingClustersManager) Start() {
	m.StartWorker(m)
}

func (m *CreatingClustersManager) Stop() {
	m.StopWorker(m)
}

func (m *CreatingClustersManager) Reconcile() []error {
	glog.Infoln("reconciling accepted clusters")
	var encounteredErrors []error

	clusters, serviceErr := m.clusterService.ListByStatus(constants.ClusterStatusCreateInProgress)
	if serviceErr != nil {
		return []error{errors.Wrap(serviceErr, "failed to list accepted clusters")}
	}

	for _, cluster := range clusters {
		if !cluster.IsAccepted() {
			continue
		}
		glog.V(10).Infof("accepted cluster name = %s", cluster.Name)
		if err := m.reconcileAcceptedCluster(cluster); err != nil {
			encounteredErrors = append(encounteredErrors, errors.Wrapf(err, "failed to reconcile accepted cluster %s", cluster.Name))
		}
	}

	return encounteredErrors
}

func (m *CreatingClustersManager) reconcileAcceptedCluster(cluster *dbapi.Cluster) error {
	metrics.IncreaseClusterTotalOperationsCountMetric(constants.ClusterOperationCreate)

	stackArn, serviceErr := m.clusterService.CreateStack(cluster)
	if serviceErr != nil {
		cluster.Status = constants.ClusterStatusCreateFailed.String()
		cluster.FailureReason = serviceErr.Reason
		if updateErr := m.clusterService.Updates(cluster, map[string]interface{}{
			"status":         cluster.Status,
			"failure_reason": cluster.FailureReason,
		}); updateErr != nil {
			return errors.Wrap(updateErr, "failed to mark cluster create as failed")
		}
		return serviceErr
	}

	cluster.CloudformationStackArn = stackArn
	if serviceErr := m.clusterService.Updates(cluster, map[string]interface{}{
		"cloudformation_stack_arn": stackArn,
	}); serviceErr != nil {
		return errors.Wrap(serviceErr, "failed to store the stack ARN")
	}

	glog.Infof("stack %s created for cluster %s", stackArn, cluster.Name)
	return nil
}
