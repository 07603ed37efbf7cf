package bedrock

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagent/types"
)

func (c KnowledgeBaseConfiguration) ToSDK() *types.KnowledgeBaseConfiguration {
	out := &types.KnowledgeBaseConfiguration{
		Type: types.KnowledgeBaseType(c.Type),
	}
	if v := c.VectorKnowledgeBaseConfiguration; v != nil {
		out.VectorKnowledgeBaseConfiguration = &types.VectorKnowledgeBaseConfiguration{
			EmbeddingModelArn: aws.String(v.EmbeddingModelArn),
		}
	}
	return out
}

func (c StorageConfiguration) ToSDK() *types.StorageConfiguration {
	out := &types.StorageConfiguration{
		Type: types.KnowledgeBaseStorageType(c.Type),
	}
	if o := c.OpensearchServerlessConfiguration; o != nil {
		out.OpensearchServerlessConfiguration = &types.OpenSearchServerlessConfiguration{
			CollectionArn:   aws.String(o.CollectionArn),
			VectorIndexName: aws.String(o.VectorIndexName),
			FieldMapping: &types.OpenSearchServerlessFieldMapping{
				VectorField:   aws.String(o.FieldMapping.VectorField),
				TextField:     aws.String(o.FieldMapping.TextField),
				MetadataField: aws.String(o.FieldMapping.MetadataField),
			},
		}
	}
	if p := c.PineconeConfiguration; p != nil {
		out.PineconeConfiguration = &types.PineconeConfiguration{
			ConnectionString:     aws.String(p.ConnectionString),
			CredentialsSecretArn: aws.String(p.CredentialsSecretArn),
			Namespace:            optionalString(p.Namespace),
			FieldMapping: &types.PineconeFieldMapping{
				TextField:     aws.String(p.FieldMapping.TextField),
				MetadataField: aws.String(p.FieldMapping.MetadataField),
			},
		}
	}
	if r := c.RdsConfiguration; r != nil {
		out.RdsConfiguration = &types.RdsConfiguration{
			ResourceArn:          aws.String(r.ResourceArn),
			CredentialsSecretArn: aws.String(r.CredentialsSecretArn),
			DatabaseName:         aws.String(r.DatabaseName),
			TableName:            aws.String(r.TableName),
			FieldMapping: &types.RdsFieldMapping{
				PrimaryKeyField: aws.String(r.FieldMapping.PrimaryKeyField),
				VectorField:     aws.String(r.FieldMapping.VectorField),
				TextField:       aws.String(r.FieldMapping.TextField),
				MetadataField:   aws.String(r.FieldMapping.MetadataField),
			},
		}
	}
	if r := c.RedisEnterpriseCloudConfiguration; r != nil {
		out.RedisEnterpriseCloudConfiguration = &types.RedisEnterpriseCloudConfiguration{
			Endpoint:             aws.String(r.Endpoint),
			VectorIndexName:      aws.String(r.VectorIndexName),
			CredentialsSecretArn: aws.String(r.CredentialsSecretArn),
			FieldMapping: &types.RedisEnterpriseCloudFieldMapping{
				VectorField:   aws.String(r.FieldMapping.VectorField),
				TextField:     aws.String(r.FieldMapping.TextField),
				MetadataField: aws.String(r.FieldMapping.MetadataField),
			},
		}
	}
	return out
}

func (c DataSourceConfiguration) ToSDK() *types.DataSourceConfiguration {
	out := &types.DataSourceConfiguration{
		Type: types.DataSourceType(c.Type),
	}
	if s3 := c.S3Configuration; s3 != nil {
		out.S3Configuration = &types.S3DataSourceConfiguration{
			BucketArn:         aws.String(s3.BucketArn),
			InclusionPrefixes: s3.InclusionPrefixes,
		}
	}
	return out
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return aws.String(s)
}
