package customresource

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/cfn"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/klothoplatform/bedrock-knowledge-base/pkg/config"
	"github.com/klothoplatform/bedrock-knowledge-base/pkg/logging"
	"go.uber.org/zap"
)

type (
	// Handler adapts CloudFormation custom resource events, as delivered by the provider framework, to the Reconciler.
	Handler struct {
		Reconciler *Reconciler
		Lookup     config.LookupFunc
	}

	// Response is the provider framework onEvent response.
	Response struct {
		PhysicalResourceId string            `json:"PhysicalResourceId"`
		Data               map[string]string `json:"Data,omitempty"`
	}
)

func NewHandler(client BedrockAgentAPI) *Handler {
	return &Handler{
		Reconciler: NewReconciler(client),
		Lookup:     os.LookupEnv,
	}
}

func (h *Handler) Handle(ctx context.Context, event cfn.Event) (Response, error) {
	log := logging.GetLogger(ctx).With(
		zap.String("requestType", string(event.RequestType)),
		zap.String("logicalResourceId", event.LogicalResourceID),
	)
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		log = log.With(zap.String("awsRequestId", lc.AwsRequestID))
	}
	ctx = logging.WithLogger(ctx, log)

	ev, err := h.toEvent(event)
	if err != nil {
		log.Error("could not read lifecycle event", zap.Error(err))
		return Response{}, err
	}

	log.Debug("handling lifecycle event", EventField(ev))

	result, err := h.Reconciler.Reconcile(ctx, ev)
	if err != nil {
		log.Error("reconcile failed", zap.Error(err))
		return Response{}, err
	}
	log.Info("reconciled", ResultField(result))
	return Response{PhysicalResourceId: result.PhysicalID, Data: result.Data}, nil
}

// toEvent maps the request type to a lifecycle Event. Configuration is only read for Create and Update
// so that a stack can always be deleted.
func (h *Handler) toEvent(event cfn.Event) (Event, error) {
	switch event.RequestType {
	case cfn.RequestCreate, cfn.RequestUpdate:
	case cfn.RequestDelete:
		return DeleteEvent{PhysicalID: event.PhysicalResourceID}, nil
	default:
		return nil, UnknownRequestTypeError{RequestType: string(event.RequestType)}
	}

	lookup := h.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}
	cfg, err := config.LoadCustomResource(lookup)
	if err != nil {
		return nil, err
	}
	if event.RequestType == cfn.RequestCreate {
		return CreateEvent{Config: cfg}, nil
	}
	return UpdateEvent{Config: cfg, PhysicalID: event.PhysicalResourceID}, nil
}
