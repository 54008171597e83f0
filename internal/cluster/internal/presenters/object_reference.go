package presenters

import (
	"fmt"

	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/api/dbapi"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/compat"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/errors"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/handlers"
)

const (
	// KindCluster is a string identifier for the type dbapi.Cluster
	KindCluster = "Cluster"
	// KindImage is a string identifier for the type dbapi.ImageBuild
	KindImage = "CustomImage"
	// KindError is a string identifier for the type errors.ServiceError
	KindError = "Error"

	BasePath = "/v3"
)

func PresentReference(id, obj interface{}) compat.ObjectReference {
	return handlers.PresentReferenceWith(id, obj, objectKind, objectPath)
}

func objectKind(i interface{}) string {
	switch i.(type) {
	case dbapi.Cluster, *dbapi.Cluster:
		return KindCluster
	case dbapi.ImageBuild, *dbapi.ImageBuild:
		return KindImage
	case errors.ServiceError, *errors.ServiceError:
		return KindError
	default:
		return ""
	}
}

func objectPath(id string, obj interface{}) string {
	switch obj.(type) {
	case dbapi.Cluster, *dbapi.Cluster:
		return fmt.Sprintf("%s/clusters/%s", BasePath, id)
	case dbapi.ImageBuild, *dbapi.ImageBuild:
		return fmt.Sprintf("%s/images/custom/%s", BasePath, id)
	case errors.ServiceError, *errors.ServiceError:
		return fmt.Sprintf("%s/errors/%s", BasePath, id)
	default:
		return ""
	}
}
