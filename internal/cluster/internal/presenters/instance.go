package presenters

import (
	awssdk "github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/api/public"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/constants"
)

// PresentClusterInstance - create a ClusterInstance in an appropriate format
// ready to be returned by the API. Node type and queue name are read from the
// instance tags.
func PresentClusterInstance(instance *ec2.Instance) public.ClusterInstance {
	presented := public.ClusterInstance{
		InstanceId:       awssdk.StringValue(instance.InstanceId),
		InstanceType:     awssdk.StringValue(instance.InstanceType),
		LaunchTime:       presentTime(instance.LaunchTime),
		PrivateIpAddress: awssdk.StringValue(instance.PrivateIpAddress),
		PublicIpAddress:  awssdk.StringValue(instance.PublicIpAddress),
	}
	if instance.State != nil {
		presented.State = awssdk.StringValue(instance.State.Name)
	}
	for _, tag := range instance.Tags {
		switch awssdk.StringValue(tag.Key) {
		case constants.NodeTypeTagKey:
			presented.NodeType = awssdk.StringValue(tag.Value)
		case constants.QueueNameTagKey:
			presented.QueueName = awssdk.StringValue(tag.Value)
		}
	}
	return presented
}

func PresentClusterInstanceList(instances []*ec2.Instance) []public.ClusterInstance {
	presented := []public.ClusterInstance{}
	for _, instance := range instances {
		presented = append(presented, PresentClusterInstance(instance))
	}
	return presented
}
