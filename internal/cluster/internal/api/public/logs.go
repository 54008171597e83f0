package public

// LogStream describes one CloudWatch log stream of a cluster or image build.
type LogStream struct {
	LogStreamName       string `json:"logStreamName"`
	CreationTime        string `json:"creationTime,omitempty"`
	FirstEventTimestamp string `json:"firstEventTimestamp,omitempty"`
	LastEventTimestamp  string `json:"lastEventTimestamp,omitempty"`
	LastIngestionTime   string `json:"lastIngestionTime,omitempty"`
	LogStreamArn        string `json:"logStreamArn,omitempty"`
}

// ListLogStreamsResponse is the collection response of the logstreams
// endpoints.
type ListLogStreamsResponse struct {
	LogStreams []LogStream `json:"logStreams"`
	NextToken  string      `json:"nextToken,omitempty"`
}

// LogEvent is a single log line of a log stream.
type LogEvent struct {
	Timestamp string `json:"timestamp,omitempty"`
	Message   string `json:"message,omitempty"`
}

// GetLogEventsResponse is returned by the log stream events endpoints.
type GetLogEventsResponse struct {
	Events    []LogEvent `json:"events"`
	NextToken string     `json:"nextToken,omitempty"`
	PrevToken string     `json:"prevToken,omitempty"`
}

// StackEvent is a CloudFormation stack event of a cluster or image build
// stack.
type StackEvent struct {
	EventId              string `json:"eventId"`
	StackId              string `json:"stackId,omitempty"`
	StackName            string `json:"stackName,omitempty"`
	LogicalResourceId    string `json:"logicalResourceId,omitempty"`
	PhysicalResourceId   string `json:"physicalResourceId,omitempty"`
	ResourceType         string `json:"resourceType,omitempty"`
	Timestamp            string `json:"timestamp,omitempty"`
	ResourceStatus       string `json:"resourceStatus,omitempty"`
	ResourceStatusReason string `json:"resourceStatusReason,omitempty"`
}

// GetStackEventsResponse is the collection response of the stackevents
// endpoints.
type GetStackEventsResponse struct {
	Events    []StackEvent `json:"events"`
	NextToken string       `json:"nextToken,omitempty"`
}
