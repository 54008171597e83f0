package presenters

import (
	"time"

	awssdk "github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/cloudformation"
	"github.com/aws/aws-sdk-go/service/cloudwatchlogs"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/api/public"
)

// PresentLogStreams converts a CloudWatch DescribeLogStreams result into the
// wire form.
func PresentLogStreams(output *cloudwatchlogs.DescribeLogStreamsOutput) public.ListLogStreamsResponse {
	streams := []public.LogStream{}
	for _, stream := range output.LogStreams {
		streams = append(streams, public.LogStream{
			LogStreamName:       awssdk.StringValue(stream.LogStreamName),
			CreationTime:        presentMillis(stream.CreationTime),
			FirstEventTimestamp: presentMillis(stream.FirstEventTimestamp),
			LastEventTimestamp:  presentMillis(stream.LastEventTimestamp),
			LastIngestionTime:   presentMillis(stream.LastIngestionTime),
			LogStreamArn:        awssdk.StringValue(stream.Arn),
		})
	}
	return public.ListLogStreamsResponse{
		LogStreams: streams,
		NextToken:  awssdk.StringValue(output.NextToken),
	}
}

// PresentLogEvents converts a CloudWatch GetLogEvents result into the wire
// form.
func PresentLogEvents(output *cloudwatchlogs.GetLogEventsOutput) public.GetLogEventsResponse {
	events := []public.LogEvent{}
	for _, event := range output.Events {
		events = append(events, public.LogEvent{
			Timestamp: presentMillis(event.Timestamp),
			Message:   awssdk.StringValue(event.Message),
		})
	}
	return public.GetLogEventsResponse{
		Events:    events,
		NextToken: awssdk.StringValue(output.NextForwardToken),
		PrevToken: awssdk.StringValue(output.NextBackwardToken),
	}
}

// PresentStackEvents converts a CloudFormation DescribeStackEvents result into
// the wire form.
func PresentStackEvents(output *cloudformation.DescribeStackEventsOutput) public.GetStackEventsResponse {
	events := []public.StackEvent{}
	for _, event := range output.StackEvents {
		events = append(events, public.StackEvent{
			EventId:              awssdk.StringValue(event.EventId),
			StackId:              awssdk.StringValue(event.StackId),
			StackName:            awssdk.StringValue(event.StackName),
			LogicalResourceId:    awssdk.StringValue(event.LogicalResourceId),
			PhysicalResourceId:   awssdk.StringValue(event.PhysicalResourceId),
			ResourceType:         awssdk.StringValue(event.ResourceType),
			Timestamp:            presentTime(event.Timestamp),
			ResourceStatus:       awssdk.StringValue(event.ResourceStatus),
			ResourceStatusReason: awssdk.StringValue(event.ResourceStatusReason),
		})
	}
	return public.GetStackEventsResponse{
		Events:    events,
		NextToken: awssdk.StringValue(output.NextToken),
	}
}

// presentMillis formats a CloudWatch epoch-milliseconds timestamp.
func presentMillis(millis *int64) string {
	if millis == nil {
		return ""
	}
	return time.UnixMilli(*millis).UTC().Format(time.RFC3339)
}
