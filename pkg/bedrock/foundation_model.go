package bedrock

import "github.com/pkg/errors"

// FoundationModel is an embedding model a knowledge base can vectorize its documents with.
type FoundationModel string

const (
	AmazonTitanEmbeddingsG1TextV1 FoundationModel = "AMAZON_TITAN_EMBEDDINGS_G1_TEXT_V1"
	CohereEmbedEnglishV3          FoundationModel = "COHERE_EMBED_ENGLISH_V3"
	CohereEmbedMultilingualV3     FoundationModel = "COHERE_EMBED_MULTILINGUAL_V3"
)

var foundationModelIds = map[FoundationModel]string{
	AmazonTitanEmbeddingsG1TextV1: "amazon.titan-embed-text-v1",
	CohereEmbedEnglishV3:          "cohere.embed-english-v3",
	CohereEmbedMultilingualV3:     "cohere.embed-multilingual-v3",
}

// ModelId returns the Bedrock model identifier of the foundation model.
func (m FoundationModel) ModelId() (string, error) {
	id, ok := foundationModelIds[m]
	if !ok {
		return "", errors.Errorf("unknown foundation model: %q", string(m))
	}
	return id, nil
}
