package presenters

import (
	"time"

	awssdk "github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/cloudformation"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/api/dbapi"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/api/public"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/compat"
)

// ConvertClusterCreateRequest from payload to the internal Cluster model. The
// scheduler and version are filled in from the validated configuration by the
// handler.
func ConvertClusterCreateRequest(payload public.ClusterCreateRequest, region string) *dbapi.Cluster {
	return &dbapi.Cluster{
		Name:   payload.ClusterName,
		Region: region,
	}
}

// PresentClusterSummary - create a ClusterSummary in an appropriate format
// ready to be returned by the API
func PresentClusterSummary(cluster *dbapi.Cluster) public.ClusterSummary {
	summary := public.ClusterSummary{
		ClusterName:            cluster.Name,
		Region:                 cluster.Region,
		Version:                cluster.Version,
		CloudformationStackArn: cluster.CloudformationStackArn,
		ClusterStatus:          cluster.Status,
		Scheduler:              cluster.Scheduler,
	}
	// The stored status mirrors the stack status while a stack exists.
	if cluster.CloudformationStackArn != "" {
		summary.CloudformationStackStatus = cluster.Status
	}
	return summary
}

func PresentClusterSummaryList(clusters dbapi.ClusterList) []public.ClusterSummary {
	summaries := []public.ClusterSummary{}
	for _, cluster := range clusters {
		summaries = append(summaries, PresentClusterSummary(cluster))
	}
	return summaries
}

// PresentDescribeCluster - create the detailed cluster response. The stack,
// head node and fleet status arguments may be empty when the underlying
// resources are gone or not reachable.
func PresentDescribeCluster(cluster *dbapi.Cluster, stack *cloudformation.Stack, fleetStatus string, headNode *ec2.Instance) public.DescribeClusterResponse {
	response := public.DescribeClusterResponse{
		ClusterName:            cluster.Name,
		Region:                 cluster.Region,
		Version:                cluster.Version,
		ClusterStatus:          cluster.Status,
		Scheduler:              cluster.Scheduler,
		CloudformationStackArn: cluster.CloudformationStackArn,
		CreationTime:           presentTime(&cluster.CreatedAt),
		LastUpdatedTime:        presentTime(&cluster.UpdatedAt),
		ClusterConfiguration: public.ClusterConfigurationStructure{
			Url: cluster.ConfigurationS3URL,
		},
		ComputeFleetStatus: fleetStatus,
		FailureReason:      cluster.FailureReason,
	}
	if stack != nil {
		response.CloudformationStackStatus = awssdk.StringValue(stack.StackStatus)
		response.Tags = presentStackTags(stack.Tags)
	}
	if headNode != nil {
		instance := PresentEC2Instance(headNode)
		response.HeadNode = &instance
	}
	return response
}

func PresentEC2Instance(instance *ec2.Instance) public.EC2Instance {
	presented := public.EC2Instance{
		InstanceId:       awssdk.StringValue(instance.InstanceId),
		InstanceType:     awssdk.StringValue(instance.InstanceType),
		LaunchTime:       presentTime(instance.LaunchTime),
		PrivateIpAddress: awssdk.StringValue(instance.PrivateIpAddress),
		PublicIpAddress:  awssdk.StringValue(instance.PublicIpAddress),
	}
	if instance.State != nil {
		presented.State = awssdk.StringValue(instance.State.Name)
	}
	return presented
}

// PresentValidationMessages converts internal validator results into the wire
// form.
func PresentValidationMessages(messages []compat.ConfigValidationMessage) []public.ValidationMessage {
	if len(messages) == 0 {
		return nil
	}
	presented := make([]public.ValidationMessage, 0, len(messages))
	for _, message := range messages {
		presented = append(presented, public.ValidationMessage{
			Id:      message.Id,
			Type:    message.Type,
			Level:   message.Level,
			Message: message.Message,
		})
	}
	return presented
}

func presentStackTags(tags []*cloudformation.Tag) []public.Tag {
	presented := make([]public.Tag, 0, len(tags))
	for _, tag := range tags {
		presented = append(presented, public.Tag{
			Key:   awssdk.StringValue(tag.Key),
			Value: awssdk.StringValue(tag.Value),
		})
	}
	return presented
}

func presentTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
