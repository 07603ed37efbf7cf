package iam

const VERSION = "2012-10-17"

type (
	PolicyDocument struct {
		Version   string
		Statement []StatementEntry
	}

	StatementEntry struct {
		Effect   string
		Action   []string
		Resource []string
	}
)

// LambdaServicePrincipal is the principal the custom resource lambda's role is assumed by.
const LambdaServicePrincipal = "lambda.amazonaws.com"

// LambdaBasicExecutionPolicy is the AWS managed policy that lets a lambda write its CloudWatch logs.
const LambdaBasicExecutionPolicy = "service-role/AWSLambdaBasicExecutionRole"

func CreateAllowPolicyDocument(actions []string, resources []string) *PolicyDocument {
	return &PolicyDocument{
		Version: VERSION,
		Statement: []StatementEntry{
			{
				Effect:   "Allow",
				Action:   actions,
				Resource: resources,
			},
		},
	}
}

// Merge appends the statements of other to the document.
func (d *PolicyDocument) Merge(other *PolicyDocument) {
	if other == nil {
		return
	}
	d.Statement = append(d.Statement, other.Statement...)
}

// KnowledgeBaseCustomResourcePolicy is the policy of the custom resource lambda: it hands the knowledge base
// role to Bedrock and calls the Bedrock APIs that create the knowledge base and its data source.
func KnowledgeBaseCustomResourcePolicy(knowledgeBaseRoleArn string) *PolicyDocument {
	doc := CreateAllowPolicyDocument([]string{"iam:PassRole"}, []string{knowledgeBaseRoleArn})
	doc.Merge(CreateAllowPolicyDocument([]string{"*"}, []string{"arn:aws:bedrock:*"}))
	return doc
}
