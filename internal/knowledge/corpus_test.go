package knowledge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromText_SplitsAtSectionBoundaries(t *testing.T) {
	text := "# Title\nintro line\n\n## Section A\n- a1\n- a2\n\n## Section B\n- b1\n"

	corpus := FromText(text)

	require.Equal(t, 3, corpus.Len())
	chunks := corpus.Chunks()

	assert.False(t, chunks[0].HasSection())
	assert.Contains(t, chunks[0].Text, "intro line")

	assert.True(t, strings.HasPrefix(chunks[1].Text, "## Section A"))
	assert.Equal(t, "Section A", chunks[1].SectionTitle())

	assert.True(t, strings.HasPrefix(chunks[2].Text, "## Section B"))
	assert.Equal(t, "Section B", chunks[2].SectionTitle())
}

func TestFromText_ChunkIndexesAreSequential(t *testing.T) {
	corpus := FromText("intro\n## A\na\n## B\nb")

	for i, chunk := range corpus.Chunks() {
		assert.Equal(t, i, chunk.Index)
	}
}

func TestFromText_DropsBlankSegments(t *testing.T) {
	corpus := FromText("\n##\n   \n## Real\ncontent")

	require.Equal(t, 1, corpus.Len())
	assert.Equal(t, "Real", corpus.Chunks()[0].SectionTitle())
}

func TestFromText_EmptyInput(t *testing.T) {
	assert.Equal(t, 0, FromText("").Len())
}

func TestDefault_EmbeddedCorpus(t *testing.T) {
	corpus := Default()

	require.Greater(t, corpus.Len(), 3)

	var titles []string
	for _, chunk := range corpus.Chunks() {
		titles = append(titles, chunk.SectionTitle())
	}
	assert.Contains(t, titles, "Compétences")
	assert.Contains(t, titles, "Expérience Professionnelle")
}

func TestLoad_EmptyPathUsesDefault(t *testing.T) {
	corpus, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, Default().Len(), corpus.Len())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/corpus.md")

	assert.Error(t, err)
}
