package bedrock

import (
	"errors"
	"fmt"
	"regexp"
)

// resourceNamePattern is the name pattern the Bedrock Agent API accepts for knowledge bases and data sources.
var resourceNamePattern = regexp.MustCompile(`^([0-9a-zA-Z][_-]?){1,100}$`)

func ValidateResourceName(kind, name string) error {
	if name == "" {
		return fmt.Errorf("%s name is required", kind)
	}
	if !resourceNamePattern.MatchString(name) {
		return fmt.Errorf("%s name %q must match %s", kind, name, resourceNamePattern)
	}
	return nil
}

// Validate checks that the storage type is known and that its matching configuration is present.
func (c StorageConfiguration) Validate() error {
	var present bool
	switch c.Type {
	case StorageTypePinecone:
		present = c.PineconeConfiguration != nil
	case StorageTypeOpensearchServerless:
		present = c.OpensearchServerlessConfiguration != nil
	case StorageTypeRds:
		present = c.RdsConfiguration != nil
	case StorageTypeRedisEnterpriseCloud:
		present = c.RedisEnterpriseCloudConfiguration != nil
	case "":
		return errors.New("storage configuration type is required")
	default:
		return fmt.Errorf("unknown storage configuration type %q", c.Type)
	}
	if !present {
		return fmt.Errorf("storage configuration of type %s is missing its %s configuration", c.Type, c.Type)
	}
	return nil
}

func (c DataSourceConfiguration) Validate() error {
	switch c.Type {
	case DataSourceTypeS3:
		if c.S3Configuration == nil || c.S3Configuration.BucketArn == "" {
			return errors.New("S3 data source configuration requires a bucketArn")
		}
		return nil
	case "":
		return errors.New("data source configuration type is required")
	default:
		return fmt.Errorf("unknown data source configuration type %q", c.Type)
	}
}

func (d DataSource) Validate() error {
	return errors.Join(
		ValidateResourceName("data source", d.DataSourceName),
		d.DataSourceConfiguration.Validate(),
	)
}
