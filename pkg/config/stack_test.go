package config

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klothoplatform/bedrock-knowledge-base/pkg/bedrock"
	"github.com/stretchr/testify/assert"
)

func testStack() Stack {
	return Stack{
		StackName:       "docs-kb",
		Account:         "123456789012",
		Region:          "us-east-1",
		Stage:           "test",
		RemovalPolicy:   "retain",
		HandlerCodePath: "build/kb-custom-resource",
		KnowledgeBase: KnowledgeBase{
			Name:           "test-kb",
			Description:    "Product documentation",
			RoleArn:        "arn:aws:iam::123456789012:role/test-role",
			EmbeddingModel: bedrock.AmazonTitanEmbeddingsG1TextV1,
			StorageConfiguration: bedrock.StorageConfiguration{
				Type: bedrock.StorageTypePinecone,
				PineconeConfiguration: &bedrock.PineconeConfiguration{
					ConnectionString:     "test-connection-string",
					CredentialsSecretArn: "arn:aws:secretsmanager:us-east-1:123456789012:secret:test-secret",
					Namespace:            "test-namespace",
					FieldMapping: bedrock.PineconeFieldMapping{
						TextField:     "test-text-field",
						MetadataField: "test-metadata-field",
					},
				},
			},
			DataSource: bedrock.DataSource{
				DataSourceName: "test-data-source",
				DataSourceConfiguration: bedrock.DataSourceConfiguration{
					Type: bedrock.DataSourceTypeS3,
					S3Configuration: &bedrock.S3DataSourceConfiguration{
						BucketArn:         "arn:aws:s3:::test-bucket",
						InclusionPrefixes: []string{"test-prefix"},
					},
				},
			},
		},
	}
}

func Test_ReadStack(t *testing.T) {
	tests := []struct {
		name   string
		file   string
		format string
	}{
		{name: "yaml", file: "stack.yaml", format: "yaml"},
		{name: "json", file: "stack.json", format: "json"},
		{name: "toml", file: "stack.toml", format: "toml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)

			got, err := ReadStack(filepath.Join("testdata", tt.file))
			if !assert.NoError(err) {
				return
			}
			want := testStack()
			want.Format = tt.format
			assert.Equal(want, got)
			assert.NoError(got.Validate())
		})
	}
}

func Test_ReadStack_errors(t *testing.T) {
	assert := assert.New(t)

	_, err := ReadStack(filepath.Join("testdata", "does-not-exist.yaml"))
	assert.ErrorIs(err, os.ErrNotExist)
	assert.ErrorContains(err, "could not open")

	dir := t.TempDir()
	ini := filepath.Join(dir, "stack.ini")
	if !assert.NoError(os.WriteFile(ini, []byte("stack_name=x"), 0644)) {
		return
	}
	_, err = ReadStack(ini)
	assert.ErrorContains(err, `unsupported config file extension ".ini"`)

	broken := filepath.Join(dir, "stack.json")
	if !assert.NoError(os.WriteFile(broken, []byte("{"), 0644)) {
		return
	}
	_, err = ReadStack(broken)
	assert.ErrorContains(err, "could not read "+broken)
	assert.ErrorIs(err, io.ErrUnexpectedEOF)
}

func Test_Stack_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *Stack)
		wantErr []string
	}{
		{
			name:   "valid",
			mutate: func(s *Stack) {},
		},
		{
			name:   "default removal policy",
			mutate: func(s *Stack) { s.RemovalPolicy = "" },
		},
		{
			name: "missing stack fields",
			mutate: func(s *Stack) {
				s.StackName = ""
				s.Stage = ""
				s.RemovalPolicy = "keep"
			},
			wantErr: []string{"stack_name is required", "stage is required", `unknown removal_policy "keep"`},
		},
		{
			name: "invalid knowledge base",
			mutate: func(s *Stack) {
				s.KnowledgeBase.Name = "bad name"
				s.KnowledgeBase.RoleArn = ""
				s.KnowledgeBase.EmbeddingModel = "UNKNOWN"
				s.KnowledgeBase.StorageConfiguration.PineconeConfiguration = nil
				s.KnowledgeBase.DataSource.DataSourceConfiguration.S3Configuration = nil
			},
			wantErr: []string{
				`knowledge base name "bad name"`,
				"role_arn is required",
				"unknown foundation model",
				"missing its PINECONE configuration",
				"requires a bucketArn",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)
			s := testStack()
			tt.mutate(&s)
			err := s.Validate()
			if len(tt.wantErr) == 0 {
				assert.NoError(err)
				return
			}
			for _, want := range tt.wantErr {
				assert.ErrorContains(err, want)
			}
		})
	}
}
