package customresource

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/bedrockagent"
)

//go:generate mockgen -source=./client.go --destination=./client_mock_test.go --package=customresource

// BedrockAgentAPI is the part of the Bedrock Agent client the reconciler calls.
type BedrockAgentAPI interface {
	CreateKnowledgeBase(ctx context.Context, params *bedrockagent.CreateKnowledgeBaseInput, optFns ...func(*bedrockagent.Options)) (*bedrockagent.CreateKnowledgeBaseOutput, error)
	CreateDataSource(ctx context.Context, params *bedrockagent.CreateDataSourceInput, optFns ...func(*bedrockagent.Options)) (*bedrockagent.CreateDataSourceOutput, error)
}

var _ BedrockAgentAPI = (*bedrockagent.Client)(nil)
