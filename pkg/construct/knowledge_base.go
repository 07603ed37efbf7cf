package construct

import (
	"fmt"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsbedrock"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsiam"
	"github.com/aws/aws-cdk-go/awscdk/v2/awslambda"
	"github.com/aws/aws-cdk-go/awscdk/v2/customresources"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
	"github.com/klothoplatform/bedrock-knowledge-base/pkg/bedrock"
	"github.com/klothoplatform/bedrock-knowledge-base/pkg/config"
	"github.com/klothoplatform/bedrock-knowledge-base/pkg/customresource"
	"github.com/klothoplatform/bedrock-knowledge-base/pkg/iam"
	awssanitizer "github.com/klothoplatform/bedrock-knowledge-base/pkg/sanitization/aws"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	handlerMemoryMB = 512
	handlerName     = "bootstrap"
)

type (
	BedrockKnowledgeBaseProps struct {
		config.KnowledgeBase

		// Stage prefixes the custom resource id.
		Stage string
		// RemovalPolicy defaults to awscdk.RemovalPolicy_DESTROY.
		RemovalPolicy awscdk.RemovalPolicy
		// HandlerCodePath is the directory of the compiled custom resource handler. Defaults to DefaultHandlerCodePath.
		HandlerCodePath string
	}

	// BedrockKnowledgeBase provisions a Bedrock knowledge base and its S3 data source through a Lambda backed
	// custom resource.
	BedrockKnowledgeBase struct {
		Construct constructs.Construct

		Role     awsiam.Role
		Function awslambda.Function
		Provider customresources.Provider
		Resource awscdk.CustomResource
	}
)

func NewBedrockKnowledgeBase(scope constructs.Construct, id string, props BedrockKnowledgeBaseProps) (*BedrockKnowledgeBase, error) {
	log := zap.L().Named("construct")

	if err := props.KnowledgeBase.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid knowledge base %s", props.Name)
	}
	if props.RemovalPolicy == "" {
		props.RemovalPolicy = awscdk.RemovalPolicy_DESTROY
	}
	removalPolicy, ok := removalPolicyValues[props.RemovalPolicy]
	if !ok {
		return nil, errors.Errorf("unsupported removal policy %q", props.RemovalPolicy)
	}
	codePath, err := handlerCodePath(props.HandlerCodePath)
	if err != nil {
		return nil, err
	}
	modelId, err := props.EmbeddingModel.ModelId()
	if err != nil {
		return nil, err
	}

	this := constructs.NewConstruct(scope, jsii.String(id))
	kb := &BedrockKnowledgeBase{Construct: this}
	stackName := *awscdk.Stack_Of(this).StackName()

	model := awsbedrock.FoundationModel_FromFoundationModelId(
		this, jsii.String("EmbeddingModel"), awsbedrock.NewFoundationModelIdentifier(jsii.String(modelId)),
	)

	env, err := config.CustomResource{
		KnowledgeBaseName:          props.Name,
		KnowledgeBaseRoleArn:       props.RoleArn,
		KnowledgeBaseConfiguration: bedrock.NewVectorKnowledgeBaseConfiguration(*model.ModelArn()),
		StorageConfiguration:       props.StorageConfiguration,
		KnowledgeBaseDescription:   props.Description,
		DataSourceName:             props.DataSource.DataSourceName,
		DataSourceConfiguration:    props.DataSource.DataSourceConfiguration,
	}.Environment()
	if err != nil {
		return nil, err
	}

	roleName := resourceName(stackName, "bedrock-kb-custom-resource-role", awssanitizer.IamRoleSanitizer.Apply)
	kb.Role = awsiam.NewRole(this, jsii.String("CustomResourceRole"), &awsiam.RoleProps{
		RoleName:  jsii.String(roleName),
		AssumedBy: awsiam.NewServicePrincipal(jsii.String(iam.LambdaServicePrincipal), nil),
		ManagedPolicies: &[]awsiam.IManagedPolicy{
			awsiam.ManagedPolicy_FromAwsManagedPolicyName(jsii.String(iam.LambdaBasicExecutionPolicy)),
		},
	})
	for _, statement := range policyStatements(iam.KnowledgeBaseCustomResourcePolicy(props.RoleArn)) {
		kb.Role.AddToPolicy(statement)
	}

	functionName := resourceName(stackName, "bedrock-kb-custom-resource-lambda", awssanitizer.LambdaFunctionSanitizer.Apply)
	kb.Function = awslambda.NewFunction(this, jsii.String("CustomResourceFunction"), &awslambda.FunctionProps{
		FunctionName: jsii.String(functionName),
		Runtime:      awslambda.Runtime_PROVIDED_AL2023(),
		Handler:      jsii.String(handlerName),
		Code:         awslambda.Code_FromAsset(jsii.String(codePath), nil),
		MemorySize:   jsii.Number(handlerMemoryMB),
		Role:         kb.Role,
		Environment:  jsiiStringMap(env),
	})

	kb.Provider = customresources.NewProvider(this, jsii.String("Provider"), &customresources.ProviderProps{
		OnEventHandler: kb.Function,
	})

	kb.Resource = awscdk.NewCustomResource(this, jsii.String(props.Stage+"-BedrockKnowledgeBaseCustomResource"), &awscdk.CustomResourceProps{
		ServiceToken:  kb.Provider.ServiceToken(),
		RemovalPolicy: props.RemovalPolicy,
		Properties: &map[string]interface{}{
			"RemovalPolicy": removalPolicy,
		},
	})

	log.Debug("added bedrock knowledge base",
		zap.String("id", id),
		zap.String("knowledgeBase", props.Name),
		zap.String("function", functionName),
		zap.String("codePath", codePath),
	)
	return kb, nil
}

func (kb *BedrockKnowledgeBase) KnowledgeBaseId() *string {
	return kb.Resource.GetAttString(jsii.String(customresource.KnowledgeBaseIdAttribute))
}

func (kb *BedrockKnowledgeBase) KnowledgeBaseArn() *string {
	return kb.Resource.GetAttString(jsii.String(customresource.KnowledgeBaseArnAttribute))
}

func (kb *BedrockKnowledgeBase) DataSourceId() *string {
	return kb.Resource.GetAttString(jsii.String(customresource.DataSourceIdAttribute))
}

// resourceName joins the stack name and suffix. Names built from an unresolved stack name are left to
// CloudFormation and not sanitized.
func resourceName(stackName, suffix string, sanitize func(string) string) string {
	name := fmt.Sprintf("%s-%s", stackName, suffix)
	if *awscdk.Token_IsUnresolved(jsii.String(stackName)) {
		return name
	}
	return sanitize(name)
}

func policyStatements(doc *iam.PolicyDocument) []awsiam.PolicyStatement {
	statements := make([]awsiam.PolicyStatement, 0, len(doc.Statement))
	for _, entry := range doc.Statement {
		effect := awsiam.Effect_ALLOW
		if entry.Effect == "Deny" {
			effect = awsiam.Effect_DENY
		}
		statements = append(statements, awsiam.NewPolicyStatement(&awsiam.PolicyStatementProps{
			Effect:    effect,
			Actions:   jsii.Strings(entry.Action...),
			Resources: jsii.Strings(entry.Resource...),
		}))
	}
	return statements
}

func jsiiStringMap(m map[string]string) *map[string]*string {
	out := make(map[string]*string, len(m))
	for k, v := range m {
		out[k] = jsii.String(v)
	}
	return &out
}
