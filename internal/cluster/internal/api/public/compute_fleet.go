package public

// DescribeComputeFleetResponse is returned by
// GET /v3/clusters/{clusterName}/computefleet.
type DescribeComputeFleetResponse struct {
	Status                string `json:"status"`
	LastStatusUpdatedTime string `json:"lastStatusUpdatedTime,omitempty"`
}

// UpdateComputeFleetRequestPayload is the body of
// PATCH /v3/clusters/{clusterName}/computefleet.
type UpdateComputeFleetRequestPayload struct {
	Status string `json:"status"`
}

// UpdateComputeFleetResponse echoes the requested status back to the caller.
type UpdateComputeFleetResponse struct {
	Status                string `json:"status"`
	LastStatusUpdatedTime string `json:"lastStatusUpdatedTime,omitempty"`
}

// ClusterInstance is a single EC2 instance that belongs to a cluster.
type ClusterInstance struct {
	InstanceId       string `json:"instanceId"`
	InstanceType     string `json:"instanceType,omitempty"`
	LaunchTime       string `json:"launchTime,omitempty"`
	PrivateIpAddress string `json:"privateIpAddress,omitempty"`
	PublicIpAddress  string `json:"publicIpAddress,omitempty"`
	State            string `json:"state,omitempty"`
	NodeType         string `json:"nodeType,omitempty"`
	QueueName        string `json:"queueName,omitempty"`
}

// ListClusterInstancesResponse is the collection response of
// GET /v3/clusters/{clusterName}/instances.
type ListClusterInstancesResponse struct {
	Instances []ClusterInstance `json:"instances"`
	NextToken string            `json:"nextToken,omitempty"`
}
