// Package public holds the wire types of the cluster management API. The
// JSON field names follow the external API contract and are camelCased,
// unlike the snake_cased internal types.
package public

// ClusterCreateRequest is the body of POST /v3/clusters.
type ClusterCreateRequest struct {
	ClusterName string `json:"clusterName"`
	// ClusterConfiguration is the base64-encoded YAML configuration document.
	ClusterConfiguration string `json:"clusterConfiguration"`
}

// ClusterUpdateRequest is the body of PUT /v3/clusters/{clusterName}.
type ClusterUpdateRequest struct {
	ClusterConfiguration string `json:"clusterConfiguration"`
}

// ValidationMessage is a single configuration validator result.
type ValidationMessage struct {
	Id      string `json:"id,omitempty"`
	Type    string `json:"type,omitempty"`
	Level   string `json:"level,omitempty"`
	Message string `json:"message,omitempty"`
}

// Tag is a key/value pair attached to the cluster CloudFormation stack.
type Tag struct {
	Key   string `json:"key,omitempty"`
	Value string `json:"value,omitempty"`
}

// ClusterSummary is the short form of a cluster returned by list and by the
// asynchronous mutation endpoints.
type ClusterSummary struct {
	ClusterName               string `json:"clusterName"`
	Region                    string `json:"region"`
	Version                   string `json:"version"`
	CloudformationStackArn    string `json:"cloudformationStackArn,omitempty"`
	CloudformationStackStatus string `json:"cloudformationStackStatus,omitempty"`
	ClusterStatus             string `json:"clusterStatus"`
	Scheduler                 string `json:"scheduler,omitempty"`
}

// CreateClusterResponse is returned with 202 by POST /v3/clusters.
type CreateClusterResponse struct {
	Cluster            ClusterSummary      `json:"cluster"`
	ValidationMessages []ValidationMessage `json:"validationMessages,omitempty"`
}

// UpdateClusterResponse is returned with 202 by PUT /v3/clusters/{clusterName}.
type UpdateClusterResponse struct {
	Cluster            ClusterSummary      `json:"cluster"`
	ValidationMessages []ValidationMessage `json:"validationMessages,omitempty"`
}

// DeleteClusterResponse is returned with 202 by DELETE /v3/clusters/{clusterName}.
type DeleteClusterResponse struct {
	Cluster ClusterSummary `json:"cluster"`
}

// ListClustersResponse is the collection response of GET /v3/clusters.
type ListClustersResponse struct {
	Clusters  []ClusterSummary `json:"clusters"`
	NextToken string           `json:"nextToken,omitempty"`
}

// EC2Instance describes the head node of a cluster.
type EC2Instance struct {
	InstanceId       string `json:"instanceId"`
	InstanceType     string `json:"instanceType,omitempty"`
	LaunchTime       string `json:"launchTime,omitempty"`
	PrivateIpAddress string `json:"privateIpAddress,omitempty"`
	PublicIpAddress  string `json:"publicIpAddress,omitempty"`
	State            string `json:"state,omitempty"`
}

// ClusterConfigurationStructure points at the stored configuration document.
type ClusterConfigurationStructure struct {
	Url string `json:"url,omitempty"`
}

// DescribeClusterResponse is the detailed form returned by
// GET /v3/clusters/{clusterName}.
type DescribeClusterResponse struct {
	ClusterName               string                        `json:"clusterName"`
	Region                    string                        `json:"region"`
	Version                   string                        `json:"version"`
	ClusterStatus             string                        `json:"clusterStatus"`
	Scheduler                 string                        `json:"scheduler,omitempty"`
	CloudformationStackArn    string                        `json:"cloudformationStackArn,omitempty"`
	CloudformationStackStatus string                        `json:"cloudformationStackStatus,omitempty"`
	CreationTime              string                        `json:"creationTime,omitempty"`
	LastUpdatedTime           string                        `json:"lastUpdatedTime,omitempty"`
	ClusterConfiguration      ClusterConfigurationStructure `json:"clusterConfiguration"`
	ComputeFleetStatus        string                        `json:"computeFleetStatus,omitempty"`
	Tags                      []Tag                         `json:"tags,omitempty"`
	HeadNode                  *EC2Instance                  `json:"headNode,omitempty"`
	FailureReason             string                        `json:"failureReason,omitempty"`
}
