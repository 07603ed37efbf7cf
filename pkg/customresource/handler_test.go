package customresource

import (
	"context"
	"testing"

	"github.com/aws/aws-lambda-go/cfn"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/klothoplatform/bedrock-knowledge-base/pkg/config"
	"github.com/klothoplatform/bedrock-knowledge-base/pkg/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func envLookup(t *testing.T, cfg config.CustomResource) config.LookupFunc {
	env, err := cfg.Environment()
	require.NoError(t, err)
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func emptyLookup(string) (string, bool) {
	return "", false
}

func Test_Handle_Create(t *testing.T) {
	assert := assert.New(t)

	ctrl := gomock.NewController(t)
	client := NewMockBedrockAgentAPI(ctrl)
	client.EXPECT().CreateKnowledgeBase(gomock.Any(), gomock.Any()).Return(knowledgeBaseOutput("KB123", "arn:kb:KB123"), nil)
	client.EXPECT().CreateDataSource(gomock.Any(), gomock.Any()).Return(dataSourceOutput("DS9"), nil)

	h := NewHandler(client)
	h.Lookup = envLookup(t, testConfig())

	core, logs := observer.New(zapcore.InfoLevel)
	ctx := logging.WithLogger(context.Background(), zap.New(core))
	ctx = lambdacontext.NewContext(ctx, &lambdacontext.LambdaContext{AwsRequestID: "req-1"})

	resp, err := h.Handle(ctx, cfn.Event{
		RequestType:       cfn.RequestCreate,
		LogicalResourceID: "KnowledgeBase",
	})
	if !assert.NoError(err) {
		return
	}
	assert.Regexp(physicalIDPattern, resp.PhysicalResourceId)
	assert.Equal("KB123", resp.Data["knowledgeBaseId"])
	assert.Equal("arn:kb:KB123", resp.Data["knowledgeBaseArn"])
	assert.Equal("DS9", resp.Data["dataSourceId"])

	reconciled := logs.FilterMessage("reconciled").All()
	if assert.Len(reconciled, 1) {
		fields := reconciled[0].ContextMap()
		assert.Equal("req-1", fields["awsRequestId"])
		assert.Equal("KnowledgeBase", fields["logicalResourceId"])
		assert.Equal("Create", fields["requestType"])
	}
}

func Test_Handle_UpdateAndDelete(t *testing.T) {
	tests := []struct {
		name   string
		event  cfn.Event
		lookup func(t *testing.T) config.LookupFunc
	}{
		{
			name: "update",
			event: cfn.Event{
				RequestType:        cfn.RequestUpdate,
				PhysicalResourceID: "BedrockKnowledgeBase-abc",
			},
			lookup: func(t *testing.T) config.LookupFunc { return envLookup(t, testConfig()) },
		},
		{
			name: "delete",
			event: cfn.Event{
				RequestType:        cfn.RequestDelete,
				PhysicalResourceID: "BedrockKnowledgeBase-abc",
			},
			lookup: func(t *testing.T) config.LookupFunc { return envLookup(t, testConfig()) },
		},
		{
			name: "delete without configuration",
			event: cfn.Event{
				RequestType:        cfn.RequestDelete,
				PhysicalResourceID: "BedrockKnowledgeBase-abc",
			},
			lookup: func(*testing.T) config.LookupFunc { return emptyLookup },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)

			h := NewHandler(NewMockBedrockAgentAPI(gomock.NewController(t)))
			h.Lookup = tt.lookup(t)

			resp, err := h.Handle(context.Background(), tt.event)
			assert.NoError(err)
			assert.Equal(Response{PhysicalResourceId: "BedrockKnowledgeBase-abc"}, resp)
		})
	}
}

func Test_Handle_Errors(t *testing.T) {
	t.Run("unknown request type", func(t *testing.T) {
		assert := assert.New(t)

		h := NewHandler(NewMockBedrockAgentAPI(gomock.NewController(t)))
		h.Lookup = emptyLookup

		_, err := h.Handle(context.Background(), cfn.Event{RequestType: "Replace"})
		assert.EqualError(err, `unknown request type "Replace"`)
	})

	t.Run("missing configuration on create", func(t *testing.T) {
		assert := assert.New(t)

		h := NewHandler(NewMockBedrockAgentAPI(gomock.NewController(t)))
		env, err := testConfig().Environment()
		require.NoError(t, err)
		delete(env, config.KnowledgeBaseRoleArnEnv)
		delete(env, config.KnowledgeBaseDataSourceNameEnv)
		h.Lookup = func(key string) (string, bool) {
			v, ok := env[key]
			return v, ok
		}

		_, err = h.Handle(context.Background(), cfn.Event{RequestType: cfn.RequestCreate})
		var missing config.MissingConfigurationError
		if assert.ErrorAs(err, &missing) {
			assert.Equal([]string{config.KnowledgeBaseDataSourceNameEnv, config.KnowledgeBaseRoleArnEnv}, missing.Names)
		}
	})
}
