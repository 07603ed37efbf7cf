package customresource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func Test_EventField(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  map[string]interface{}
	}{
		{
			name:  "create",
			event: CreateEvent{Config: testConfig()},
			want: map[string]interface{}{
				"type":          "Create",
				"knowledgeBase": "kb1",
				"storageType":   "PINECONE",
				"dataSource":    "ds1",
			},
		},
		{
			name:  "update",
			event: UpdateEvent{Config: testConfig(), PhysicalID: "p-1"},
			want: map[string]interface{}{
				"type":               "Update",
				"physicalResourceId": "p-1",
				"knowledgeBase":      "kb1",
			},
		},
		{
			name:  "delete",
			event: DeleteEvent{PhysicalID: "p-1"},
			want: map[string]interface{}{
				"type":               "Delete",
				"physicalResourceId": "p-1",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)

			enc := zapcore.NewMapObjectEncoder()
			EventField(tt.event).AddTo(enc)
			assert.Equal(tt.want, enc.Fields["event"])
		})
	}
}

func Test_ResultField(t *testing.T) {
	assert := assert.New(t)

	enc := zapcore.NewMapObjectEncoder()
	ResultField(Result{
		PhysicalID: "p-1",
		Data:       map[string]string{KnowledgeBaseIdAttribute: "KB1", DataSourceIdAttribute: "DS1"},
	}).AddTo(enc)
	assert.Equal(map[string]interface{}{
		"physicalResourceId": "p-1",
		"knowledgeBaseId":    "KB1",
		"dataSourceId":       "DS1",
	}, enc.Fields["result"])
}
