package customresource

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagent"
	"github.com/klothoplatform/bedrock-knowledge-base/pkg/logging"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Reconciler struct {
	Client BedrockAgentAPI
	// PhysicalIDs generates the physical id of a created resource. Defaults to NewPhysicalID.
	PhysicalIDs func() (string, error)
}

func NewReconciler(client BedrockAgentAPI) *Reconciler {
	return &Reconciler{Client: client, PhysicalIDs: NewPhysicalID}
}

// Reconcile applies a single lifecycle event. Only creation talks to Bedrock: updates and deletes
// report the existing physical id back unchanged.
func (r *Reconciler) Reconcile(ctx context.Context, event Event) (Result, error) {
	switch e := event.(type) {
	case CreateEvent:
		return r.create(ctx, e)

	case UpdateEvent:
		logging.GetLogger(ctx).Debug("update is a no-op", zap.String("physicalResourceId", e.PhysicalID))
		return Result{PhysicalID: e.PhysicalID}, nil

	case DeleteEvent:
		logging.GetLogger(ctx).Debug("delete is a no-op", zap.String("physicalResourceId", e.PhysicalID))
		return Result{PhysicalID: e.PhysicalID}, nil

	default:
		return Result{}, UnknownRequestTypeError{RequestType: fmt.Sprintf("%T", event)}
	}
}

func (r *Reconciler) create(ctx context.Context, e CreateEvent) (Result, error) {
	log := logging.GetLogger(ctx)
	cfg := e.Config

	newID := r.PhysicalIDs
	if newID == nil {
		newID = NewPhysicalID
	}
	physicalID, err := newID()
	if err != nil {
		return Result{}, err
	}
	log = log.With(zap.String("physicalResourceId", physicalID))

	kbInput := &bedrockagent.CreateKnowledgeBaseInput{
		Name:                       aws.String(cfg.KnowledgeBaseName),
		RoleArn:                    aws.String(cfg.KnowledgeBaseRoleArn),
		KnowledgeBaseConfiguration: cfg.KnowledgeBaseConfiguration.ToSDK(),
		StorageConfiguration:       cfg.StorageConfiguration.ToSDK(),
	}
	if cfg.KnowledgeBaseDescription != "" {
		kbInput.Description = aws.String(cfg.KnowledgeBaseDescription)
	}

	log.Info("creating knowledge base", zap.String("name", cfg.KnowledgeBaseName))
	kbOut, err := r.Client.CreateKnowledgeBase(ctx, kbInput)
	if err != nil {
		return Result{}, errors.Wrapf(err, "could not create knowledge base %s", cfg.KnowledgeBaseName)
	}
	if kbOut == nil || kbOut.KnowledgeBase == nil {
		return Result{}, ExternalCallError{Operation: "CreateKnowledgeBase", Reason: primaryResourceMissing}
	}
	kb := kbOut.KnowledgeBase
	log = log.With(zap.String("knowledgeBaseId", aws.ToString(kb.KnowledgeBaseId)))

	log.Info("creating data source", zap.String("name", cfg.DataSourceName))
	dsOut, err := r.Client.CreateDataSource(ctx, &bedrockagent.CreateDataSourceInput{
		KnowledgeBaseId:         kb.KnowledgeBaseId,
		Name:                    aws.String(cfg.DataSourceName),
		DataSourceConfiguration: cfg.DataSourceConfiguration.ToSDK(),
	})
	if err != nil {
		return Result{}, errors.Wrapf(err, "could not create data source %s", cfg.DataSourceName)
	}
	if dsOut == nil || dsOut.DataSource == nil {
		return Result{}, ExternalCallError{Operation: "CreateDataSource", Reason: dependentResourceMissing}
	}

	result := Result{
		PhysicalID: physicalID,
		Data: map[string]string{
			KnowledgeBaseIdAttribute:  aws.ToString(kb.KnowledgeBaseId),
			KnowledgeBaseArnAttribute: aws.ToString(kb.KnowledgeBaseArn),
			DataSourceIdAttribute:     aws.ToString(dsOut.DataSource.DataSourceId),
		},
	}
	log.Info("created knowledge base", zap.String("dataSourceId", result.Data[DataSourceIdAttribute]))
	return result, nil
}
