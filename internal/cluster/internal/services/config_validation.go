package services

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/hpc-fleet/hpc-fleet-manager/internal/cluster/internal/config"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/compat"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/constants"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/errors"
	"gopkg.in/yaml.v2"
)

const (
	// SuppressAllValidators disables every configuration validator.
	SuppressAllValidators = "ALL"
	// suppressTypePrefix disables a single validator by name, e.g. "type:SchedulerValidator".
	suppressTypePrefix = "type:"
)

const (
	validatorScheduler        = "SchedulerValidator"
	validatorRequiredSections = "RequiredSectionsValidator"
	validatorQueueNames       = "QueueNameValidator"
	validatorParentImage      = "ParentImageValidator"
)

// ValidationOptions carries the caller-supplied knobs of a configuration
// validation run.
type ValidationOptions struct {
	SuppressValidators []string
	FailureLevel       constants.ValidationLevel
}

// NewValidationOptions returns options that fail on ERROR and suppress nothing.
func NewValidationOptions() ValidationOptions {
	return ValidationOptions{
		FailureLevel: constants.ValidationLevelError,
	}
}

// ClusterConfiguration is the parsed form of the base64 YAML document a
// caller submits when creating or updating a cluster.
type ClusterConfiguration struct {
	Scheduler constants.Scheduler
	Os        string
	Queues    []string
	Raw       []byte
}

// ImageConfiguration is the parsed form of an image build document.
type ImageConfiguration struct {
	ParentImage string
	Os          string
	Raw         []byte
}

//go:generate moq -out configvalidationservice_moq.go . ConfigValidationService
type ConfigValidationService interface {
	// ValidateClusterConfiguration decodes and validates a cluster
	// configuration document. The returned messages contain every
	// non-suppressed validator result; the service error is set when a
	// result at or above the failure level survives suppression.
	ValidateClusterConfiguration(encoded string, opts ValidationOptions) (*ClusterConfiguration, []compat.ConfigValidationMessage, *errors.ServiceError)
	// ValidateImageConfiguration does the same for an image build document.
	ValidateImageConfiguration(encoded string, opts ValidationOptions) (*ImageConfiguration, []compat.ConfigValidationMessage, *errors.ServiceError)
}

var _ ConfigValidationService = &configValidationService{}

type configValidationService struct {
	fleetConfig *config.FleetConfig
}

func NewConfigValidationService(fleetConfig *config.FleetConfig) *configValidationService {
	return &configValidationService{
		fleetConfig: fleetConfig,
	}
}

// clusterConfigDocument mirrors the subset of the YAML schema the service
// inspects. Unknown keys are ignored on purpose.
type clusterConfigDocument struct {
	Image struct {
		Os string `yaml:"Os"`
	} `yaml:"Image"`
	HeadNode struct {
		InstanceType string `yaml:"InstanceType"`
	} `yaml:"HeadNode"`
	Scheduling struct {
		Scheduler   string `yaml:"Scheduler"`
		SlurmQueues []struct {
			Name string `yaml:"Name"`
		} `yaml:"SlurmQueues"`
		AwsBatchQueues []struct {
			Name string `yaml:"Name"`
		} `yaml:"AwsBatchQueues"`
	} `yaml:"Scheduling"`
}

type imageConfigDocument struct {
	Build struct {
		ParentImage  string `yaml:"ParentImage"`
		InstanceType string `yaml:"InstanceType"`
	} `yaml:"Build"`
	Image struct {
		Os string `yaml:"Os"`
	} `yaml:"Image"`
}

func (s *configValidationService) ValidateClusterConfiguration(encoded string, opts ValidationOptions) (*ClusterConfiguration, []compat.ConfigValidationMessage, *errors.ServiceError) {
	raw, svcErr := decodeConfiguration(encoded, "cluster")
	if svcErr != nil {
		return nil, nil, svcErr
	}

	var doc clusterConfigDocument
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, nil, errors.BadRequest("Invalid cluster configuration: %s", err.Error())
	}

	var messages []compat.ConfigValidationMessage

	if doc.Image.Os == "" || doc.HeadNode.InstanceType == "" || doc.Scheduling.Scheduler == "" {
		messages = append(messages, validationMessage(validatorRequiredSections, constants.ValidationLevelError,
			"Image.Os, HeadNode.InstanceType and Scheduling.Scheduler are required"))
	}

	scheduler := constants.Scheduler(doc.Scheduling.Scheduler)
	if doc.Scheduling.Scheduler != "" && scheduler != constants.SchedulerSlurm && scheduler != constants.SchedulerAwsBatch {
		messages = append(messages, validationMessage(validatorScheduler, constants.ValidationLevelError,
			fmt.Sprintf("scheduler %q is not supported, must be one of: %s, %s", doc.Scheduling.Scheduler, constants.SchedulerSlurm, constants.SchedulerAwsBatch)))
	}

	queues := []string{}
	for _, q := range doc.Scheduling.SlurmQueues {
		queues = append(queues, q.Name)
	}
	for _, q := range doc.Scheduling.AwsBatchQueues {
		queues = append(queues, q.Name)
	}
	seen := map[string]bool{}
	for _, name := range queues {
		if seen[name] {
			messages = append(messages, validationMessage(validatorQueueNames, constants.ValidationLevelError,
				fmt.Sprintf("queue name %q is used more than once", name)))
		}
		seen[name] = true
	}
	if scheduler == constants.SchedulerSlurm && len(queues) == 0 {
		messages = append(messages, validationMessage(validatorQueueNames, constants.ValidationLevelWarning,
			"no queues are defined, the cluster will have no compute fleet"))
	}

	messages, svcErr = applySuppressors(messages, opts)
	if svcErr != nil {
		return nil, nil, svcErr
	}
	if svcErr := failuresAboveLevel(messages, opts.FailureLevel); svcErr != nil {
		return nil, messages, svcErr
	}

	return &ClusterConfiguration{
		Scheduler: scheduler,
		Os:        doc.Image.Os,
		Queues:    queues,
		Raw:       raw,
	}, messages, nil
}

func (s *configValidationService) ValidateImageConfiguration(encoded string, opts ValidationOptions) (*ImageConfiguration, []compat.ConfigValidationMessage, *errors.ServiceError) {
	raw, svcErr := decodeConfiguration(encoded, "image")
	if svcErr != nil {
		return nil, nil, svcErr
	}

	var doc imageConfigDocument
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, nil, errors.BadRequest("Invalid image configuration: %s", err.Error())
	}

	var messages []compat.ConfigValidationMessage
	if doc.Build.ParentImage == "" {
		messages = append(messages, validationMessage(validatorParentImage, constants.ValidationLevelError,
			"Build.ParentImage is required"))
	}

	messages, svcErr = applySuppressors(messages, opts)
	if svcErr != nil {
		return nil, nil, svcErr
	}
	if svcErr := failuresAboveLevel(messages, opts.FailureLevel); svcErr != nil {
		return nil, messages, svcErr
	}

	return &ImageConfiguration{
		ParentImage: doc.Build.ParentImage,
		Os:          doc.Image.Os,
		Raw:         raw,
	}, messages, nil
}

func decodeConfiguration(encoded string, kind string) ([]byte, *errors.ServiceError) {
	if encoded == "" {
		return nil, errors.BadRequest("%s configuration is required", kind)
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errors.BadRequest("%s configuration must be base64 encoded: %s", kind, err.Error())
	}
	return raw, nil
}

func validationMessage(validatorType string, level constants.ValidationLevel, message string) compat.ConfigValidationMessage {
	return compat.ConfigValidationMessage{
		Type:    validatorType,
		Level:   level.String(),
		Message: message,
	}
}

// applySuppressors drops the validator results the caller asked to suppress.
// A malformed suppressor is a client error.
func applySuppressors(messages []compat.ConfigValidationMessage, opts ValidationOptions) ([]compat.ConfigValidationMessage, *errors.ServiceError) {
	suppressAll := false
	suppressed := map[string]bool{}
	for _, suppressor := range opts.SuppressValidators {
		switch {
		case suppressor == SuppressAllValidators:
			suppressAll = true
		case strings.HasPrefix(suppressor, suppressTypePrefix) && len(suppressor) > len(suppressTypePrefix):
			suppressed[strings.TrimPrefix(suppressor, suppressTypePrefix)] = true
		default:
			return nil, errors.FailedToParseQueryParams("invalid validator suppressor %q, must be %q or %q<name>", suppressor, SuppressAllValidators, suppressTypePrefix)
		}
	}
	if suppressAll {
		return nil, nil
	}
	kept := messages[:0]
	for _, message := range messages {
		if !suppressed[message.Type] {
			kept = append(kept, message)
		}
	}
	return kept, nil
}

// failuresAboveLevel returns the validation failure error when any surviving
// message is at or above the requested failure level.
func failuresAboveLevel(messages []compat.ConfigValidationMessage, level constants.ValidationLevel) *errors.ServiceError {
	var failures []compat.ConfigValidationMessage
	for _, message := range messages {
		if constants.ValidationLevel(message.Level).AtLeast(level) {
			failures = append(failures, message)
		}
	}
	if len(failures) > 0 {
		return errors.ConfigurationValidationFailure(failures)
	}
	return nil
}
