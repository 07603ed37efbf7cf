package construct

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/jsii-runtime-go"
	"github.com/klothoplatform/bedrock-knowledge-base/pkg/config"
	"github.com/pkg/errors"
)

var (
	removalPolicies = map[string]awscdk.RemovalPolicy{
		config.RemovalPolicyDestroy:                awscdk.RemovalPolicy_DESTROY,
		config.RemovalPolicyRetain:                 awscdk.RemovalPolicy_RETAIN,
		config.RemovalPolicySnapshot:               awscdk.RemovalPolicy_SNAPSHOT,
		config.RemovalPolicyRetainOnUpdateOrDelete: awscdk.RemovalPolicy_RETAIN_ON_UPDATE_OR_DELETE,
	}

	// removalPolicyValues are the values the custom resource's RemovalPolicy property is rendered as.
	removalPolicyValues = map[awscdk.RemovalPolicy]string{
		awscdk.RemovalPolicy_DESTROY:                    config.RemovalPolicyDestroy,
		awscdk.RemovalPolicy_RETAIN:                     config.RemovalPolicyRetain,
		awscdk.RemovalPolicy_SNAPSHOT:                   config.RemovalPolicySnapshot,
		awscdk.RemovalPolicy_RETAIN_ON_UPDATE_OR_DELETE: config.RemovalPolicyRetainOnUpdateOrDelete,
	}
)

// RemovalPolicy returns the CDK removal policy for a stack file removal_policy value. An empty name is destroy.
func RemovalPolicy(name string) (awscdk.RemovalPolicy, error) {
	if name == "" {
		return awscdk.RemovalPolicy_DESTROY, nil
	}
	policy, ok := removalPolicies[name]
	if !ok {
		return "", errors.Errorf("unknown removal_policy %q", name)
	}
	return policy, nil
}

// PropsFromStack builds the knowledge base construct props from a stack file.
func PropsFromStack(cfg config.Stack) (BedrockKnowledgeBaseProps, error) {
	policy, err := RemovalPolicy(cfg.RemovalPolicy)
	if err != nil {
		return BedrockKnowledgeBaseProps{}, err
	}
	return BedrockKnowledgeBaseProps{
		KnowledgeBase:   cfg.KnowledgeBase,
		Stage:           cfg.Stage,
		RemovalPolicy:   policy,
		HandlerCodePath: cfg.HandlerCodePath,
	}, nil
}

// NewStack adds the stack described by cfg, with its knowledge base and outputs, to app.
func NewStack(app awscdk.App, cfg config.Stack) (awscdk.Stack, *BedrockKnowledgeBase, error) {
	props, err := PropsFromStack(cfg)
	if err != nil {
		return nil, nil, err
	}

	env := &awscdk.Environment{Region: jsii.String(cfg.Region)}
	if cfg.Account != "" {
		env.Account = jsii.String(cfg.Account)
	}
	stack := awscdk.NewStack(app, jsii.String(cfg.StackName), &awscdk.StackProps{Env: env})

	kb, err := NewBedrockKnowledgeBase(stack, "KnowledgeBase", props)
	if err != nil {
		return nil, nil, err
	}
	awscdk.NewCfnOutput(stack, jsii.String("KnowledgeBaseId"), &awscdk.CfnOutputProps{Value: kb.KnowledgeBaseId()})
	awscdk.NewCfnOutput(stack, jsii.String("KnowledgeBaseArn"), &awscdk.CfnOutputProps{Value: kb.KnowledgeBaseArn()})
	awscdk.NewCfnOutput(stack, jsii.String("DataSourceId"), &awscdk.CfnOutputProps{Value: kb.DataSourceId()})
	return stack, kb, nil
}
