package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hpc-fleet/hpc-fleet-manager/pkg/constants"
)

const (
	// HpcFleetManager - metric subsystem for the fleet manager
	HpcFleetManager = "hpc_fleet_manager"

	// ClusterCreateRequestDuration - name of cluster creation duration metric
	ClusterCreateRequestDuration = "worker_cluster_duration"
	// ImageBuildRequestDuration - name of image build duration metric
	ImageBuildRequestDuration = "worker_image_build_duration"

	labelJobType = "jobType"

	// ClusterOperationsSuccessCount - name of the metric for successful cluster operations
	ClusterOperationsSuccessCount = "cluster_operations_success_count"
	// ClusterOperationsTotalCount - name of the metric for total cluster operations
	ClusterOperationsTotalCount = "cluster_operations_total_count"

	// ImageBuildOperationsSuccessCount - name of the metric for successful image build operations
	ImageBuildOperationsSuccessCount = "image_build_operations_success_count"
	// ImageBuildOperationsTotalCount - name of the metric for total image build operations
	ImageBuildOperationsTotalCount = "image_build_operations_total_count"

	// ClusterStatusSinceCreated - metric name for the duration since a cluster request was created
	ClusterStatusSinceCreated = "cluster_status_since_created_in_seconds"
	// ClusterStatusCount - metric name for cluster status count
	ClusterStatusCount = "cluster_status_count"

	labelStatus      = "status"
	labelClusterName = "cluster_name"
	labelOperation   = "operation"

	// ReconcilerDuration - name of the metric for reconciler duration
	ReconcilerDuration = "reconciler_duration_in_seconds"
	// ReconcilerSuccessCount - name of the metric for reconciler success count
	ReconcilerSuccessCount = "reconciler_success_count"
	// ReconcilerFailureCount - name of the metric for reconciler failure count
	ReconcilerFailureCount = "reconciler_failure_count"
	// ReconcilerErrorsCount - name of the metric for reconciler errors count
	ReconcilerErrorsCount = "reconciler_errors_count"

	labelReconcilerType = "worker_type"

	// LeaderWorker - metric name for the leader worker gauge
	LeaderWorker = "leader_worker"

	// APIRequestsTotalCount - name of the metric for counting API requests
	APIRequestsTotalCount = "api_requests_total_count"
	// APIRequestDuration - name of the metric for API request duration in seconds
	APIRequestDuration = "api_request_duration_in_seconds"

	labelAPIMethod = "method"
	labelAPIPath   = "path"
	labelAPICode   = "code"

	// DatabaseQueryCount - name of the metric for counting database queries
	DatabaseQueryCount = "database_query_count"
	// DatabaseQueryDuration - name of the metric for database query duration in milliseconds
	DatabaseQueryDuration = "database_query_duration_in_ms"

	labelDatabaseQueryStatus = "status"
	labelDatabaseQueryType   = "query"
)

// JobType metric to capture
type JobType string

var (
	// JobTypeClusterCreate - cluster_create job type
	JobTypeClusterCreate JobType = "cluster_create"
	// JobTypeImageBuild - image_build job type
	JobTypeImageBuild JobType = "image_build"
)

// JobsMetricsLabels is the slice of labels to add to job metrics
var JobsMetricsLabels = []string{
	labelJobType,
}

// ClusterOperationsCountMetricsLabels - is the slice of labels to add to cluster operation count metrics
var ClusterOperationsCountMetricsLabels = []string{
	labelOperation,
}

// ClusterStatusSinceCreatedMetricLabels  is the slice of labels to add to
var ClusterStatusSinceCreatedMetricLabels = []string{
	labelStatus,
	labelClusterName,
}

// ClusterStatusCountMetricLabels  is the slice of labels to add to
var ClusterStatusCountMetricLabels = []string{
	labelStatus,
}

// ImageBuildOperationsCountMetricsLabels - is the slice of labels to add to image build operation count metrics
var ImageBuildOperationsCountMetricsLabels = []string{
	labelOperation,
}

// ReconcilerMetricsLabels  is the slice of labels to add to reconciler metrics
var ReconcilerMetricsLabels = []string{
	labelReconcilerType,
}

// APIRequestsCountMetricsLabels is the slice of labels to add to the API request count metric
var APIRequestsCountMetricsLabels = []string{
	labelAPIMethod,
	labelAPIPath,
	labelAPICode,
}

// APIRequestDurationMetricLabels is the slice of labels to add to the API request duration metric
var APIRequestDurationMetricLabels = []string{
	labelAPIMethod,
	labelAPIPath,
}

// DatabaseMetricsLabels is the slice of labels to add to database metrics
var DatabaseMetricsLabels = []string{
	labelDatabaseQueryStatus,
	labelDatabaseQueryType,
}

// create a new histogramVec for cluster creation duration
var requestClusterCreationDurationMetric = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Subsystem: HpcFleetManager,
		Name:      ClusterCreateRequestDuration,
		Help:      "Cluster creation duration in seconds.",
		Buckets: []float64{
			30.0,
			60.0,
			120.0,
			300.0,
			600.0,
			1200.0,
			1800.0,
			2400.0,
			3600.0,
			4800.0,
			7200.0,
		},
	},
	JobsMetricsLabels,
)

// UpdateClusterCreationDurationMetric records the elapsed creation time of a cluster
func UpdateClusterCreationDurationMetric(jobType JobType, elapsed time.Duration) {
	labels := prometheus.Labels{
		labelJobType: string(jobType),
	}
	requestClusterCreationDurationMetric.With(labels).Observe(elapsed.Seconds())
}

// create a new histogramVec for image build duration
var requestImageBuildDurationMetric = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Subsystem: HpcFleetManager,
		Name:      ImageBuildRequestDuration,
		Help:      "Image build duration in seconds.",
		Buckets: []float64{
			300.0,
			600.0,
			1200.0,
			1800.0,
			3600.0,
			5400.0,
			7200.0,
			10800.0,
		},
	},
	JobsMetricsLabels,
)

// UpdateImageBuildDurationMetric records the elapsed build time of a custom image
func UpdateImageBuildDurationMetric(jobType JobType, elapsed time.Duration) {
	labels := prometheus.Labels{
		labelJobType: string(jobType),
	}
	requestImageBuildDurationMetric.With(labels).Observe(elapsed.Seconds())
}

// create a new counterVec for successful cluster operation counts
var clusterOperationsSuccessCountMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: HpcFleetManager,
		Name:      ClusterOperationsSuccessCount,
		Help:      "number of successful cluster operations",
	},
	ClusterOperationsCountMetricsLabels,
)

// IncreaseClusterSuccessOperationsCountMetric - increase counter for clusterOperationsSuccessCountMetric
func IncreaseClusterSuccessOperationsCountMetric(operation constants.ClusterOperation) {
	labels := prometheus.Labels{
		labelOperation: operation.String(),
	}
	clusterOperationsSuccessCountMetric.With(labels).Inc()
}

// create a new counterVec for total cluster operation counts
var clusterOperationsTotalCountMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: HpcFleetManager,
		Name:      ClusterOperationsTotalCount,
		Help:      "number of total cluster operations",
	},
	ClusterOperationsCountMetricsLabels,
)

// IncreaseClusterTotalOperationsCountMetric - increase counter for clusterOperationsTotalCountMetric
func IncreaseClusterTotalOperationsCountMetric(operation constants.ClusterOperation) {
	labels := prometheus.Labels{
		labelOperation: operation.String(),
	}
	clusterOperationsTotalCountMetric.With(labels).Inc()
}

// create a new counterVec for successful image build operation counts
var imageBuildOperationsSuccessCountMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: HpcFleetManager,
		Name:      ImageBuildOperationsSuccessCount,
		Help:      "number of successful image build operations",
	},
	ImageBuildOperationsCountMetricsLabels,
)

// IncreaseImageBuildSuccessOperationsCountMetric - increase counter for imageBuildOperationsSuccessCountMetric
func IncreaseImageBuildSuccessOperationsCountMetric(operation constants.ImageBuildOperation) {
	labels := prometheus.Labels{
		labelOperation: operation.String(),
	}
	imageBuildOperationsSuccessCountMetric.With(labels).Inc()
}

// create a new counterVec for total image build operation counts
var imageBuildOperationsTotalCountMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: HpcFleetManager,
		Name:      ImageBuildOperationsTotalCount,
		Help:      "number of total image build operations",
	},
	ImageBuildOperationsCountMetricsLabels,
)

// IncreaseImageBuildTotalOperationsCountMetric - increase counter for imageBuildOperationsTotalCountMetric
func IncreaseImageBuildTotalOperationsCountMetric(operation constants.ImageBuildOperation) {
	labels := prometheus.Labels{
		labelOperation: operation.String(),
	}
	imageBuildOperationsTotalCountMetric.With(labels).Inc()
}

// create a new gaugeVec for the duration since a cluster request entered its current status
var clusterStatusSinceCreatedMetric = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Subsystem: HpcFleetManager,
		Name:      ClusterStatusSinceCreated,
		Help:      "metrics to track the status of a cluster and how long since it's been created",
	},
	ClusterStatusSinceCreatedMetricLabels,
)

// UpdateClusterStatusSinceCreatedMetric records the time elapsed since creation for a cluster in a status
func UpdateClusterStatusSinceCreatedMetric(status constants.ClusterStatus, clusterName string, elapsed time.Duration) {
	labels := prometheus.Labels{
		labelStatus:      status.String(),
		labelClusterName: clusterName,
	}
	clusterStatusSinceCreatedMetric.With(labels).Set(elapsed.Seconds())
}

// create a new gaugeVec for the cluster count per status
var clusterStatusCountMetric = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Subsystem: HpcFleetManager,
		Name:      ClusterStatusCount,
		Help:      "metrics to record the number of clusters in each status",
	},
	ClusterStatusCountMetricLabels,
)

// UpdateClusterStatusCountMetric records the number of clusters in the given status
func UpdateClusterStatusCountMetric(status constants.ClusterStatus, count int) {
	labels := prometheus.Labels{
		labelStatus: status.String(),
	}
	clusterStatusCountMetric.With(labels).Set(float64(count))
}

// create a new gaugeVec for reconciler duration
var reconcilerDurationMetric = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Subsystem: HpcFleetManager,
		Name:      ReconcilerDuration,
		Help:      "Duration of each background reconcile in seconds.",
	},
	ReconcilerMetricsLabels,
)

// UpdateReconcilerDurationMetric records the elapsed time of a reconcile run
func UpdateReconcilerDurationMetric(reconcilerType string, elapsed time.Duration) {
	labels := prometheus.Labels{
		labelReconcilerType: reconcilerType,
	}
	reconcilerDurationMetric.With(labels).Set(float64(elapsed.Seconds()))
}

var reconcilerSuccessCountMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: HpcFleetManager,
		Name:      ReconcilerSuccessCount,
		Help:      "count of success operations of the reconciler",
	},
	ReconcilerMetricsLabels,
)

// IncreaseReconcilerSuccessCount ...
func IncreaseReconcilerSuccessCount(reconcilerType string) {
	labels := prometheus.Labels{
		labelReconcilerType: reconcilerType,
	}
	reconcilerSuccessCountMetric.With(labels).Inc()
}

var reconcilerFailureCountMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: HpcFleetManager,
		Name:      ReconcilerFailureCount,
		Help:      "count of failed operations of the reconciler",
	},
	ReconcilerMetricsLabels,
)

var reconcilerErrorsCountMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: HpcFleetManager,
		Name:      ReconcilerErrorsCount,
		Help:      "count of errors occured during reconciler runs",
	},
	ReconcilerMetricsLabels,
)

// IncreaseReconcilerFailureCount ...
func IncreaseReconcilerFailureCount(reconcilerType string) {
	labels := prometheus.Labels{
		labelReconcilerType: reconcilerType,
	}
	reconcilerFailureCountMetric.With(labels).Inc()
}

// IncreaseReconcilerErrorsCount ...
func IncreaseReconcilerErrorsCount(reconcilerType string, numOfErr int) {
	labels := prometheus.Labels{
		labelReconcilerType: reconcilerType,
	}
	reconcilerErrorsCountMetric.With(labels).Add(float64(numOfErr))
}

var leaderWorkerMetric = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Subsystem: HpcFleetManager,
		Name:      LeaderWorker,
		Help:      "metrics to indicate if the current process is the leader among the workers",
	},
	ReconcilerMetricsLabels,
)

// SetLeaderWorkerMetric will set the metric value to 1 if the worker is the leader, and 0 if the worker is not the leader.
// Then when the metrics is scraped, Prometheus will add additional information like pod name, which then can be used to display which pod is the leader.
func SetLeaderWorkerMetric(workerType string, leader bool) {
	labels := prometheus.Labels{
		labelReconcilerType: workerType,
	}
	val := 0
	if leader {
		val = 1
	}
	leaderWorkerMetric.With(labels).Set(float64(val))
}

// ResetMetricsForClusterManagers will reset the metrics for the cluster status gauges.
// This is needed because if a cluster is deleted, the metric for its status will still be
// there and the old value will be scraped. So we reset the metrics and the
// background reconciler only populates gauges for the clusters that still exist.
func ResetMetricsForClusterManagers() {
	clusterStatusSinceCreatedMetric.Reset()
	clusterStatusCountMetric.Reset()
}

// ResetMetricsForReconcilers will reset the metrics related to the reconcilers
func ResetMetricsForReconcilers() {
	reconcilerDurationMetric.Reset()
}

// register the metric(s)
func init() {
	prometheus.MustRegister(requestClusterCreationDurationMetric)
	prometheus.MustRegister(requestImageBuildDurationMetric)
	prometheus.MustRegister(clusterOperationsSuccessCountMetric)
	prometheus.MustRegister(clusterOperationsTotalCountMetric)
	prometheus.MustRegister(imageBuildOperationsSuccessCountMetric)
	prometheus.MustRegister(imageBuildOperationsTotalCountMetric)
	prometheus.MustRegister(clusterStatusSinceCreatedMetric)
	prometheus.MustRegister(clusterStatusCountMetric)
	prometheus.MustRegister(reconcilerDurationMetric)
	prometheus.MustRegister(reconcilerSuccessCountMetric)
	prometheus.MustRegister(reconcilerFailureCountMetric)
	prometheus.MustRegister(reconcilerErrorsCountMetric)
	prometheus.MustRegister(leaderWorkerMetric)
	prometheus.MustRegister(apiRequestsTotalCountMetric)
	prometheus.MustRegister(apiRequestDurationMetric)
	prometheus.MustRegister(databaseRequestCountMetric)
	prometheus.MustRegister(databaseQueryDurationMetric)
}

// create a new counterVec for API request counts
var apiRequestsTotalCountMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: HpcFleetManager,
		Name:      APIRequestsTotalCount,
		Help:      "number of API requests served",
	},
	APIRequestsCountMetricsLabels,
)

// IncreaseAPIRequestsCountMetric increases the counter for served API requests
func IncreaseAPIRequestsCountMetric(method string, path string, code int) {
	labels := prometheus.Labels{
		labelAPIMethod: method,
		labelAPIPath:   path,
		labelAPICode:   strconv.Itoa(code),
	}
	apiRequestsTotalCountMetric.With(labels).Inc()
}

// create a new histogramVec for API request duration in seconds
var apiRequestDurationMetric = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Subsystem: HpcFleetManager,
		Name:      APIRequestDuration,
		Help:      "API request duration in seconds",
		Buckets: []float64{
			0.001,
			0.005,
			0.01,
			0.025,
			0.05,
			0.1,
			0.25,
			0.5,
			1.0,
			2.5,
			5.0,
			10.0,
		},
	},
	APIRequestDurationMetricLabels,
)

// UpdateAPIRequestDurationMetric records the time spent serving an API request
func UpdateAPIRequestDurationMetric(method string, path string, elapsed time.Duration) {
	labels := prometheus.Labels{
		labelAPIMethod: method,
		labelAPIPath:   path,
	}
	apiRequestDurationMetric.With(labels).Observe(elapsed.Seconds())
}

// create a new counterVec for database query counts
var databaseRequestCountMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: HpcFleetManager,
		Name:      DatabaseQueryCount,
		Help:      "number of database query sent",
	},
	DatabaseMetricsLabels,
)

// IncreaseDatabaseQueryCount increases the counter for the database query count metric
func IncreaseDatabaseQueryCount(status string, queryType string) {
	labels := prometheus.Labels{
		labelDatabaseQueryStatus: status,
		labelDatabaseQueryType:   queryType,
	}
	databaseRequestCountMetric.With(labels).Inc()
}

// create a new histogramVec for database query duration in milliseconds
var databaseQueryDurationMetric = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Subsystem: HpcFleetManager,
		Name:      DatabaseQueryDuration,
		Help:      "database query duration in milliseconds",
		Buckets: []float64{
			1.0,
			30.0,
			60.0,
			120.0,
			150.0,
			180.0,
			210.0,
			240.0,
			270.0,
			300.0,
			360.0,
			420.0,
			480.0,
			540.0,
			600.0,
			900.0,
			1200.0,
			1800.0,
			2400.0,
			3600.0,
			4800.0,
			7200.0,
		},
	},
	DatabaseMetricsLabels,
)

// UpdateDatabaseQueryDurationMetric records the duration of the database query
func UpdateDatabaseQueryDurationMetric(status string, queryType string, elapsed time.Duration) {
	labels := prometheus.Labels{
		labelDatabaseQueryStatus: status,
		labelDatabaseQueryType:   queryType,
	}
	databaseQueryDurationMetric.With(labels).Observe(float64(elapsed.Milliseconds()))
}

// Reset the metrics we have defined. It is mainly used for testing.
func Reset() {
	requestClusterCreationDurationMetric.Reset()
	requestImageBuildDurationMetric.Reset()
	clusterOperationsSuccessCountMetric.Reset()
	clusterOperationsTotalCountMetric.Reset()
	imageBuildOperationsSuccessCountMetric.Reset()
	imageBuildOperationsTotalCountMetric.Reset()
	clusterStatusSinceCreatedMetric.Reset()
	clusterStatusCountMetric.Reset()
	reconcilerDurationMetric.Reset()
	reconcilerSuccessCountMetric.Reset()
	reconcilerFailureCountMetric.Reset()
	reconcilerErrorsCountMetric.Reset()
	leaderWorkerMetric.Reset()
	apiRequestsTotalCountMetric.Reset()
	apiRequestDurationMetric.Reset()
	databaseRequestCountMetric.Reset()
	databaseQueryDurationMetric.Reset()
}
