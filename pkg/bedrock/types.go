// Package bedrock models the Bedrock Agent configuration that a knowledge base and its data source are created with.
//
// The JSON form of these types is the wire format of the custom resource environment, so the keys follow the
// Bedrock Agent API (camelCase). The same keys are used for yaml and toml stack configuration files.
package bedrock

type (
	KnowledgeBaseType string
	StorageType       string
	DataSourceType    string

	KnowledgeBaseConfiguration struct {
		Type                             KnowledgeBaseType                 `json:"type" yaml:"type" toml:"type"`
		VectorKnowledgeBaseConfiguration *VectorKnowledgeBaseConfiguration `json:"vectorKnowledgeBaseConfiguration,omitempty" yaml:"vectorKnowledgeBaseConfiguration,omitempty" toml:"vectorKnowledgeBaseConfiguration,omitempty"`
	}

	VectorKnowledgeBaseConfiguration struct {
		EmbeddingModelArn string `json:"embeddingModelArn" yaml:"embeddingModelArn" toml:"embeddingModelArn"`
	}

	StorageConfiguration struct {
		Type                              StorageType                        `json:"type" yaml:"type" toml:"type"`
		OpensearchServerlessConfiguration *OpenSearchServerlessConfiguration `json:"opensearchServerlessConfiguration,omitempty" yaml:"opensearchServerlessConfiguration,omitempty" toml:"opensearchServerlessConfiguration,omitempty"`
		PineconeConfiguration             *PineconeConfiguration             `json:"pineconeConfiguration,omitempty" yaml:"pineconeConfiguration,omitempty" toml:"pineconeConfiguration,omitempty"`
		RdsConfiguration                  *RdsConfiguration                  `json:"rdsConfiguration,omitempty" yaml:"rdsConfiguration,omitempty" toml:"rdsConfiguration,omitempty"`
		RedisEnterpriseCloudConfiguration *RedisEnterpriseCloudConfiguration `json:"redisEnterpriseCloudConfiguration,omitempty" yaml:"redisEnterpriseCloudConfiguration,omitempty" toml:"redisEnterpriseCloudConfiguration,omitempty"`
	}

	OpenSearchServerlessConfiguration struct {
		CollectionArn   string                           `json:"collectionArn" yaml:"collectionArn" toml:"collectionArn"`
		VectorIndexName string                           `json:"vectorIndexName" yaml:"vectorIndexName" toml:"vectorIndexName"`
		FieldMapping    OpenSearchServerlessFieldMapping `json:"fieldMapping" yaml:"fieldMapping" toml:"fieldMapping"`
	}

	OpenSearchServerlessFieldMapping struct {
		VectorField   string `json:"vectorField" yaml:"vectorField" toml:"vectorField"`
		TextField     string `json:"textField" yaml:"textField" toml:"textField"`
		MetadataField string `json:"metadataField" yaml:"metadataField" toml:"metadataField"`
	}

	PineconeConfiguration struct {
		ConnectionString     string               `json:"connectionString" yaml:"connectionString" toml:"connectionString"`
		CredentialsSecretArn string               `json:"credentialsSecretArn" yaml:"credentialsSecretArn" toml:"credentialsSecretArn"`
		Namespace            string               `json:"namespace,omitempty" yaml:"namespace,omitempty" toml:"namespace,omitempty"`
		FieldMapping         PineconeFieldMapping `json:"fieldMapping" yaml:"fieldMapping" toml:"fieldMapping"`
	}

	PineconeFieldMapping struct {
		TextField     string `json:"textField" yaml:"textField" toml:"textField"`
		MetadataField string `json:"metadataField" yaml:"metadataField" toml:"metadataField"`
	}

	RdsConfiguration struct {
		ResourceArn          string          `json:"resourceArn" yaml:"resourceArn" toml:"resourceArn"`
		CredentialsSecretArn string          `json:"credentialsSecretArn" yaml:"credentialsSecretArn" toml:"credentialsSecretArn"`
		DatabaseName         string          `json:"databaseName" yaml:"databaseName" toml:"databaseName"`
		TableName            string          `json:"tableName" yaml:"tableName" toml:"tableName"`
		FieldMapping         RdsFieldMapping `json:"fieldMapping" yaml:"fieldMapping" toml:"fieldMapping"`
	}

	RdsFieldMapping struct {
		PrimaryKeyField string `json:"primaryKeyField" yaml:"primaryKeyField" toml:"primaryKeyField"`
		VectorField     string `json:"vectorField" yaml:"vectorField" toml:"vectorField"`
		TextField       string `json:"textField" yaml:"textField" toml:"textField"`
		MetadataField   string `json:"metadataField" yaml:"metadataField" toml:"metadataField"`
	}

	RedisEnterpriseCloudConfiguration struct {
		Endpoint             string                           `json:"endpoint" yaml:"endpoint" toml:"endpoint"`
		VectorIndexName      string                           `json:"vectorIndexName" yaml:"vectorIndexName" toml:"vectorIndexName"`
		CredentialsSecretArn string                           `json:"credentialsSecretArn" yaml:"credentialsSecretArn" toml:"credentialsSecretArn"`
		FieldMapping         RedisEnterpriseCloudFieldMapping `json:"fieldMapping" yaml:"fieldMapping" toml:"fieldMapping"`
	}

	RedisEnterpriseCloudFieldMapping struct {
		VectorField   string `json:"vectorField" yaml:"vectorField" toml:"vectorField"`
		TextField     string `json:"textField" yaml:"textField" toml:"textField"`
		MetadataField string `json:"metadataField" yaml:"metadataField" toml:"metadataField"`
	}

	// DataSource is the data source created alongside the knowledge base.
	DataSource struct {
		DataSourceName          string                  `json:"dataSourceName" yaml:"dataSourceName" toml:"dataSourceName"`
		DataSourceConfiguration DataSourceConfiguration `json:"dataSourceConfiguration" yaml:"dataSourceConfiguration" toml:"dataSourceConfiguration"`
	}

	DataSourceConfiguration struct {
		Type            DataSourceType             `json:"type" yaml:"type" toml:"type"`
		S3Configuration *S3DataSourceConfiguration `json:"s3Configuration,omitempty" yaml:"s3Configuration,omitempty" toml:"s3Configuration,omitempty"`
	}

	S3DataSourceConfiguration struct {
		BucketArn         string   `json:"bucketArn" yaml:"bucketArn" toml:"bucketArn"`
		InclusionPrefixes []string `json:"inclusionPrefixes,omitempty" yaml:"inclusionPrefixes,omitempty" toml:"inclusionPrefixes,omitempty"`
	}
)

const (
	KnowledgeBaseTypeVector KnowledgeBaseType = "VECTOR"

	StorageTypePinecone             StorageType = "PINECONE"
	StorageTypeOpensearchServerless StorageType = "OPENSEARCH_SERVERLESS"
	StorageTypeRds                  StorageType = "RDS"
	StorageTypeRedisEnterpriseCloud StorageType = "REDIS_ENTERPRISE_CLOUD"

	DataSourceTypeS3 DataSourceType = "S3"
)

// NewVectorKnowledgeBaseConfiguration returns the VECTOR knowledge base configuration for the given embedding model.
func NewVectorKnowledgeBaseConfiguration(embeddingModelArn string) KnowledgeBaseConfiguration {
	return KnowledgeBaseConfiguration{
		Type: KnowledgeBaseTypeVector,
		VectorKnowledgeBaseConfiguration: &VectorKnowledgeBaseConfiguration{
			EmbeddingModelArn: embeddingModelArn,
		},
	}
}
