package config

import (
	"errors"
	"fmt"

	"github.com/klothoplatform/bedrock-knowledge-base/pkg/bedrock"
)

// Validate reports every problem with the stack configuration at once.
func (s Stack) Validate() error {
	var errs error
	if s.StackName == "" {
		errs = errors.Join(errs, errors.New("stack_name is required"))
	}
	if s.Stage == "" {
		errs = errors.Join(errs, errors.New("stage is required"))
	}
	if s.RemovalPolicy != "" {
		if _, ok := removalPolicies[s.RemovalPolicy]; !ok {
			errs = errors.Join(errs, fmt.Errorf("unknown removal_policy %q", s.RemovalPolicy))
		}
	}
	return errors.Join(errs, s.KnowledgeBase.Validate())
}

func (kb KnowledgeBase) Validate() error {
	var errs error
	errs = errors.Join(errs, bedrock.ValidateResourceName("knowledge base", kb.Name))
	if kb.RoleArn == "" {
		errs = errors.Join(errs, errors.New("knowledge base role_arn is required"))
	}
	if _, err := kb.EmbeddingModel.ModelId(); err != nil {
		errs = errors.Join(errs, err)
	}
	errs = errors.Join(errs, kb.StorageConfiguration.Validate())
	return errors.Join(errs, kb.DataSource.Validate())
}
