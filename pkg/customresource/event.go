package customresource

import "github.com/klothoplatform/bedrock-knowledge-base/pkg/config"

type (
	// Event is a custom resource lifecycle event. It is implemented only by CreateEvent, UpdateEvent and DeleteEvent.
	Event interface {
		lifecycleEvent()
	}

	CreateEvent struct {
		Config config.CustomResource
	}

	UpdateEvent struct {
		Config     config.CustomResource
		PhysicalID string
	}

	DeleteEvent struct {
		PhysicalID string
	}

	// Result is what the custom resource provider reports back to CloudFormation.
	Result struct {
		PhysicalID string
		Data       map[string]string
	}
)

// Output attribute names, readable in the stack with Fn::GetAtt.
const (
	KnowledgeBaseIdAttribute  = "knowledgeBaseId"
	KnowledgeBaseArnAttribute = "knowledgeBaseArn"
	DataSourceIdAttribute     = "dataSourceId"
)

func (CreateEvent) lifecycleEvent() {}
func (UpdateEvent) lifecycleEvent() {}
func (DeleteEvent) lifecycleEvent() {}
