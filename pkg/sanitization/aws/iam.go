package aws

import (
	"regexp"

	"github.com/klothoplatform/bedrock-knowledge-base/pkg/sanitization"
)

// IamRoleSanitizer returns a sanitized IAM role name when applied.
var IamRoleSanitizer = sanitization.NewSanitizer(
	[]sanitization.Rule{
		// replace anything outside [\w+=,.@-] with "_"
		{
			Pattern:     regexp.MustCompile(`[^\w+=,.@-]`),
			Replacement: "_",
		},
	}, 64)
