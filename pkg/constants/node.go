package constants

// NodeType distinguishes the head node from compute nodes of a cluster.
type NodeType string

const (
	NodeTypeHeadNode    NodeType = "HeadNode"
	NodeTypeComputeNode NodeType = "ComputeNode"
)

func (n NodeType) String() string {
	return string(n)
}

// AllNodeTypes enumerates the node types instance list requests may filter on.
var AllNodeTypes = []NodeType{NodeTypeHeadNode, NodeTypeComputeNode}

// IsValidNodeType returns true when the value is a known node type.
func IsValidNodeType(value string) bool {
	for _, nodeType := range AllNodeTypes {
		if nodeType.String() == value {
			return true
		}
	}
	return false
}

// Tag keys applied to every AWS resource that belongs to a cluster.
const (
	ClusterNameTagKey = "hpc-fleet:cluster-name"
	NodeTypeTagKey    = "hpc-fleet:node-type"
	QueueNameTagKey   = "hpc-fleet:queue-name"
	VersionTagKey     = "hpc-fleet:version"
	ImageIdTagKey     = "hpc-fleet:image-id"
	OsTagKey          = "hpc-fleet:os"
)
