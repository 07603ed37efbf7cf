package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagent"
	"github.com/klothoplatform/bedrock-knowledge-base/pkg/customresource"
	"github.com/klothoplatform/bedrock-knowledge-base/pkg/logging"
	"go.uber.org/zap"
)

func main() {
	log := logging.NewLambdaLogger()
	defer log.Sync() //nolint:errcheck
	zap.ReplaceGlobals(log)

	cfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		log.Fatal("unable to load AWS SDK config", zap.Error(err))
	}

	h := customresource.NewHandler(bedrockagent.NewFromConfig(cfg))
	lambda.Start(h.Handle)
}
