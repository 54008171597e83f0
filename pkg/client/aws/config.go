package aws

import (
	"github.com/spf13/pflag"

	"github.com/hpc-fleet/hpc-fleet-manager/pkg/shared"
)

type AWSConfig struct {
	AccessKey           string `json:"access_key"`
	AccessKeyFile       string `json:"access_key_file"`
	SecretAccessKey     string `json:"secret_access_key"`
	SecretAccessKeyFile string `json:"secret_access_key_file"`
	// Region used when an API request does not carry one
	DefaultRegion string `json:"default_region"`
	// ConfigBucket is the S3 bucket holding the cluster and image configuration documents
	ConfigBucket string `json:"config_bucket"`
	// DynamoDBTablePrefix prefixes the per-cluster compute fleet status tables
	DynamoDBTablePrefix string `json:"dynamodb_table_prefix"`
}

func NewAWSConfig() *AWSConfig {
	return &AWSConfig{
		AccessKeyFile:       "secrets/aws.accesskey",
		SecretAccessKeyFile: "secrets/aws.secretaccesskey",
		DefaultRegion:       "us-east-1",
		ConfigBucket:        "hpc-fleet-configs",
		DynamoDBTablePrefix: "hpc-fleet-",
	}
}

func (c *AWSConfig) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.AccessKeyFile, "aws-access-key-file", c.AccessKeyFile, "File containing AWS access key")
	fs.StringVar(&c.SecretAccessKeyFile, "aws-secret-access-key-file", c.SecretAccessKeyFile, "File containing AWS secret access key")
	fs.StringVar(&c.DefaultRegion, "aws-default-region", c.DefaultRegion, "AWS region used when a request does not specify one")
	fs.StringVar(&c.ConfigBucket, "aws-config-bucket", c.ConfigBucket, "S3 bucket holding cluster and image configuration documents")
	fs.StringVar(&c.DynamoDBTablePrefix, "aws-dynamodb-table-prefix", c.DynamoDBTablePrefix, "Prefix of the per-cluster DynamoDB status tables")
}

func (c *AWSConfig) ReadFiles() error {
	err := shared.ReadFileValueString(c.AccessKeyFile, &c.AccessKey)
	if err != nil {
		return err
	}
	err = shared.ReadFileValueString(c.SecretAccessKeyFile, &c.SecretAccessKey)
	if err != nil {
		return err
	}
	return nil
}

// Credentials returns the static credentials config for NewClient. Empty when
// the service should fall back to the ambient instance role.
func (c *AWSConfig) Credentials() Config {
	return Config{
		AccessKeyID:     c.AccessKey,
		SecretAccessKey: c.SecretAccessKey,
	}
}
