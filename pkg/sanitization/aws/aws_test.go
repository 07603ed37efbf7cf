package aws

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_IamRoleSanitizer(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "valid name unchanged",
			input: "my-stack-bedrock-kb-custom-resource-role",
			want:  "my-stack-bedrock-kb-custom-resource-role",
		},
		{
			name:  "invalid characters replaced",
			input: "my stack/role#1",
			want:  "my_stack_role_1",
		},
		{
			name:  "truncated to 64 characters",
			input: "a-very-long-stack-name-that-keeps-going-bedrock-kb-custom-resource-role",
			want:  "a-very-long-stack-name-that-keeps-going-bedrock-kb-custom-resour",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)
			assert.Equal(tt.want, IamRoleSanitizer.Apply(tt.input))
		})
	}
}

func Test_LambdaFunctionSanitizer(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "valid name unchanged",
			input: "my-stack-bedrock-kb-custom-resource-lambda",
			want:  "my-stack-bedrock-kb-custom-resource-lambda",
		},
		{
			name:  "invalid characters stripped",
			input: "my.stack@lambda fn",
			want:  "mystacklambdafn",
		},
		{
			name:  "truncated to 64 characters",
			input: "a-very-long-stack-name-that-keeps-going-bedrock-kb-custom-resource-lambda",
			want:  "a-very-long-stack-name-that-keeps-going-bedrock-kb-custom-resour",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)
			assert.Equal(tt.want, LambdaFunctionSanitizer.Apply(tt.input))
		})
	}
}
