package customresource

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type eventField struct {
	e Event
}

func (field eventField) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	switch e := field.e.(type) {
	case CreateEvent:
		enc.AddString("type", "Create")
		enc.AddString("knowledgeBase", e.Config.KnowledgeBaseName)
		enc.AddString("storageType", string(e.Config.StorageConfiguration.Type))
		enc.AddString("dataSource", e.Config.DataSourceName)

	case UpdateEvent:
		enc.AddString("type", "Update")
		enc.AddString("physicalResourceId", e.PhysicalID)
		enc.AddString("knowledgeBase", e.Config.KnowledgeBaseName)

	case DeleteEvent:
		enc.AddString("type", "Delete")
		enc.AddString("physicalResourceId", e.PhysicalID)
	}
	return nil
}

func EventField(e Event) zap.Field {
	return zap.Object("event", eventField{e: e})
}

type resultField struct {
	r Result
}

func (field resultField) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("physicalResourceId", field.r.PhysicalID)
	for _, key := range []string{KnowledgeBaseIdAttribute, KnowledgeBaseArnAttribute, DataSourceIdAttribute} {
		if v, ok := field.r.Data[key]; ok {
			enc.AddString(key, v)
		}
	}
	return nil
}

func ResultField(r Result) zap.Field {
	return zap.Object("result", resultField{r: r})
}
