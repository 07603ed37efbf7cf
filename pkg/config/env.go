package config

import (
	"encoding/json"
	"reflect"
	"sort"
	"strings"

	"github.com/klothoplatform/bedrock-knowledge-base/pkg/bedrock"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

// Environment variable names shared by the construct (which sets them on the custom resource lambda)
// and the custom resource handler (which reads them).
const (
	KnowledgeBaseNameEnv                    = "KNOWLEDGE_BASE_NAME"
	KnowledgeBaseRoleArnEnv                 = "KNOWLEDGE_BASE_ROLE_ARN"
	KnowledgeBaseConfigurationEnv           = "KNOWLEDGE_BASE_CONFIGURATION"
	KnowledgeBaseStorageConfigurationEnv    = "KNOWLEDGE_BASE_STORAGE_CONFIGURATION"
	KnowledgeBaseDescriptionEnv             = "KNOWLEDGE_BASE_DESCRIPTION"
	KnowledgeBaseDataSourceNameEnv          = "KNOWLEDGE_BASE_DATA_SOURCE_NAME"
	KnowledgeBaseDataSourceConfigurationEnv = "KNOWLEDGE_BASE_DATA_SOURCE_CONFIGURATION"
)

var requiredEnv = []string{
	KnowledgeBaseNameEnv,
	KnowledgeBaseRoleArnEnv,
	KnowledgeBaseConfigurationEnv,
	KnowledgeBaseStorageConfigurationEnv,
	KnowledgeBaseDataSourceNameEnv,
	KnowledgeBaseDataSourceConfigurationEnv,
}

type (
	// CustomResource is the desired state of the knowledge base and its data source as seen by the
	// custom resource handler. It is built once per invocation and passed explicitly.
	CustomResource struct {
		KnowledgeBaseName          string                             `mapstructure:"KNOWLEDGE_BASE_NAME"`
		KnowledgeBaseRoleArn       string                             `mapstructure:"KNOWLEDGE_BASE_ROLE_ARN"`
		KnowledgeBaseConfiguration bedrock.KnowledgeBaseConfiguration `mapstructure:"KNOWLEDGE_BASE_CONFIGURATION"`
		StorageConfiguration       bedrock.StorageConfiguration       `mapstructure:"KNOWLEDGE_BASE_STORAGE_CONFIGURATION"`
		KnowledgeBaseDescription   string                             `mapstructure:"KNOWLEDGE_BASE_DESCRIPTION"`
		DataSourceName             string                             `mapstructure:"KNOWLEDGE_BASE_DATA_SOURCE_NAME"`
		DataSourceConfiguration    bedrock.DataSourceConfiguration    `mapstructure:"KNOWLEDGE_BASE_DATA_SOURCE_CONFIGURATION"`
	}

	// LookupFunc has the signature of os.LookupEnv.
	LookupFunc func(key string) (string, bool)

	MissingConfigurationError struct {
		Names []string
	}
)

func (e MissingConfigurationError) Error() string {
	return "missing configuration: " + strings.Join(e.Names, ", ")
}

// Environment renders the configuration as lambda environment variables. Structured values are JSON encoded.
func (c CustomResource) Environment() (map[string]string, error) {
	env := map[string]string{
		KnowledgeBaseNameEnv:           c.KnowledgeBaseName,
		KnowledgeBaseRoleArnEnv:        c.KnowledgeBaseRoleArn,
		KnowledgeBaseDescriptionEnv:    c.KnowledgeBaseDescription,
		KnowledgeBaseDataSourceNameEnv: c.DataSourceName,
	}
	structured := map[string]any{
		KnowledgeBaseConfigurationEnv:           c.KnowledgeBaseConfiguration,
		KnowledgeBaseStorageConfigurationEnv:    c.StorageConfiguration,
		KnowledgeBaseDataSourceConfigurationEnv: c.DataSourceConfiguration,
	}
	for name, v := range structured {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, errors.Wrapf(err, "could not encode %s", name)
		}
		env[name] = string(b)
	}
	return env, nil
}

// LoadCustomResource reads the custom resource configuration through lookup. Every missing required
// variable is reported in a single MissingConfigurationError. The description is optional and defaults to "".
func LoadCustomResource(lookup LookupFunc) (CustomResource, error) {
	var cfg CustomResource

	values := make(map[string]any, len(requiredEnv)+1)
	var missing []string
	for _, name := range requiredEnv {
		v, ok := lookup(name)
		if !ok {
			missing = append(missing, name)
			continue
		}
		values[name] = v
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return cfg, MissingConfigurationError{Names: missing}
	}
	if v, ok := lookup(KnowledgeBaseDescriptionEnv); ok {
		values[KnowledgeBaseDescriptionEnv] = v
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  jsonStringToStruct,
		ErrorUnused: true,
		Result:      &cfg,
	})
	if err != nil {
		return cfg, err
	}
	if err := decoder.Decode(values); err != nil {
		return cfg, errors.Wrap(err, "could not decode custom resource configuration")
	}
	return cfg, nil
}

// jsonStringToStruct decodes JSON encoded environment values into their struct fields.
func jsonStringToStruct(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Struct {
		return data, nil
	}
	v := reflect.New(to)
	if err := json.Unmarshal([]byte(data.(string)), v.Interface()); err != nil {
		return nil, errors.Wrapf(err, "invalid JSON for %s", to.Name())
	}
	return v.Elem().Interface(), nil
}
