package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/klothoplatform/bedrock-knowledge-base/pkg/bedrock"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type (
	// Stack is the configuration file the kbstack CLI synthesizes a stack from.
	Stack struct {
		StackName string `json:"stack_name" yaml:"stack_name" toml:"stack_name"`
		Account   string `json:"account,omitempty" yaml:"account,omitempty" toml:"account,omitempty"`
		Region    string `json:"region" yaml:"region" toml:"region"`
		Stage     string `json:"stage" yaml:"stage" toml:"stage"`

		// RemovalPolicy is one of destroy, retain, snapshot or retain-on-update-or-delete. Defaults to destroy.
		RemovalPolicy string `json:"removal_policy,omitempty" yaml:"removal_policy,omitempty" toml:"removal_policy,omitempty"`
		// HandlerCodePath is the directory holding the compiled custom resource handler (a `bootstrap` binary).
		HandlerCodePath string `json:"handler_code_path,omitempty" yaml:"handler_code_path,omitempty" toml:"handler_code_path,omitempty"`

		KnowledgeBase KnowledgeBase `json:"knowledge_base" yaml:"knowledge_base" toml:"knowledge_base"`

		// Format is what format the file was originally in.
		Format string `json:"-" yaml:"-" toml:"-"`
	}

	KnowledgeBase struct {
		Name                 string                       `json:"name" yaml:"name" toml:"name"`
		Description          string                       `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
		RoleArn              string                       `json:"role_arn" yaml:"role_arn" toml:"role_arn"`
		EmbeddingModel       bedrock.FoundationModel      `json:"embedding_model" yaml:"embedding_model" toml:"embedding_model"`
		StorageConfiguration bedrock.StorageConfiguration `json:"storage_configuration" yaml:"storage_configuration" toml:"storage_configuration"`
		DataSource           bedrock.DataSource           `json:"data_source" yaml:"data_source" toml:"data_source"`
	}
)

// Removal policy names accepted in stack files.
const (
	RemovalPolicyDestroy                = "destroy"
	RemovalPolicyRetain                 = "retain"
	RemovalPolicySnapshot               = "snapshot"
	RemovalPolicyRetainOnUpdateOrDelete = "retain-on-update-or-delete"
)

var removalPolicies = map[string]struct{}{
	RemovalPolicyDestroy:                {},
	RemovalPolicyRetain:                 {},
	RemovalPolicySnapshot:               {},
	RemovalPolicyRetainOnUpdateOrDelete: {},
}

func ReadStack(fpath string) (Stack, error) {
	var cfg Stack

	f, err := os.Open(fpath)
	if err != nil {
		return cfg, errors.Wrapf(err, "could not open %s", fpath)
	}
	defer f.Close() // nolint:errcheck

	switch filepath.Ext(fpath) {
	case ".json":
		err = json.NewDecoder(f).Decode(&cfg)
		cfg.Format = "json"

	case ".yaml", ".yml":
		err = yaml.NewDecoder(f).Decode(&cfg)
		cfg.Format = "yaml"

	case ".toml":
		err = toml.NewDecoder(f).Decode(&cfg)
		cfg.Format = "toml"

	default:
		return cfg, errors.Errorf("unsupported config file extension %q", filepath.Ext(fpath))
	}
	if err != nil {
		return cfg, errors.Wrapf(err, "could not read %s", fpath)
	}
	return cfg, nil
}
