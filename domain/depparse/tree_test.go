package depparse

import (
	"context"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

// ENT0ITY is n't regulated by ENT1ITY .
func passiveTree() *Tree {
	return &Tree{
		Tokens: []Token{
			{Text: "ENT0ITY", Tag: "NNP", POS: "PROPN", Dep: DepNsubjPass, Head: 3, SpaceAfter: true},
			{Text: "is", Tag: "VBZ", POS: "AUX", Dep: "auxpass", Head: 3, SpaceAfter: false},
			{Text: "n't", Tag: "RB", POS: "PART", Dep: DepNeg, Head: 3, SpaceAfter: true},
			{Text: "regulated", Tag: "VBN", POS: "VERB", Dep: DepRoot, Head: 3, SpaceAfter: true},
			{Text: "by", Tag: "IN", POS: "ADP", Dep: DepPrep, Head: 3, SpaceAfter: true},
			{Text: "ENT1ITY", Tag: "NNP", POS: "PROPN", Dep: DepPobj, Head: 4, SpaceAfter: false},
			{Text: ".", Tag: ".", POS: "PUNCT", Dep: "punct", Head: 3},
		},
		Chunks: []Chunk{{Start: 0, End: 1, Root: 0}, {Start: 5, End: 6, Root: 5}},
	}
}

func TestTree_Text(t *testing.T) {
	tree := passiveTree()

	assert.Equal(t, "ENT0ITY isn't regulated by ENT1ITY.", tree.Text(0, len(tree.Tokens)))
	assert.Equal(t, "regulated by", tree.Text(3, 5))
	assert.Equal(t, "", tree.Text(2, 2))
}

func TestTree_LeftsAndRoot(t *testing.T) {
	tree := passiveTree()

	assert.Equal(t, []int{0, 1, 2}, tree.Lefts(3))
	assert.Nil(t, tree.Lefts(5))
	assert.True(t, tree.IsRoot(3))
	assert.False(t, tree.IsRoot(4))
}

func TestTree_Validate(t *testing.T) {
	require.Nil(t, passiveTree().Validate())

	tree := passiveTree()
	tree.Tokens[1].Head = 7
	assert.True(t, errors.Is(tree.Validate(), ErrHeadOutOfRange))

	tree = passiveTree()
	tree.Chunks = append(tree.Chunks, Chunk{Start: 5, End: 9, Root: 5})
	assert.True(t, errors.Is(tree.Validate(), ErrChunkOutOfRange))

	tree = passiveTree()
	tree.Chunks = append(tree.Chunks, Chunk{Start: 0, End: 2, Root: 3})
	assert.True(t, errors.Is(tree.Validate(), ErrChunkOutOfRange))
}

func TestConsumer_Parse(t *testing.T) {
	var received *Request
	provider := ProviderFunc(func(ctx context.Context, req *Request) ([]*Tree, error) {
		received = req
		bad := passiveTree()
		bad.Tokens[0].Head = -1
		return []*Tree{passiveTree(), nil, bad}, nil
	})

	rule := TagRule{Pattern: `ENT\d+ITY`, Tag: TagProperNoun, POS: POSProperNoun}
	consumer := NewConsumer(&ConsumerSetting{
		Provider:       provider,
		Rules:          []TagRule{rule},
		UseAccelerator: true,
	})

	parsed, err := consumer.Parse(context.Background(), []string{"a", "b", "c"})
	require.Nil(t, err)
	require.Len(t, parsed, 3)

	require.NotNil(t, parsed[0])
	assert.Nil(t, parsed[1])
	assert.Nil(t, parsed[2])

	chunk, ok := parsed[0].ChunkOfRoot(5)
	assert.True(t, ok)
	assert.Equal(t, Chunk{Start: 5, End: 6, Root: 5}, chunk)
	_, ok = parsed[0].ChunkOfRoot(3)
	assert.False(t, ok)

	require.NotNil(t, received)
	assert.Equal(t, []TagRule{rule}, received.Rules)
	assert.True(t, received.UseAccelerator)
}

func TestConsumer_ParseError(t *testing.T) {
	failing := ProviderFunc(func(ctx context.Context, req *Request) ([]*Tree, error) {
		return nil, errors.New("gpu out of memory")
	})
	_, err := NewConsumer(&ConsumerSetting{Provider: failing}).Parse(context.Background(), []string{"a"})
	assert.NotNil(t, err)

	short := ProviderFunc(func(ctx context.Context, req *Request) ([]*Tree, error) {
		return []*Tree{}, nil
	})
	_, err = NewConsumer(&ConsumerSetting{Provider: short}).Parse(context.Background(), []string{"a"})
	assert.True(t, errors.Is(err, ErrTreeCountMismatch))
}

func TestConsumer_ParseEmpty(t *testing.T) {
	called := false
	provider := ProviderFunc(func(ctx context.Context, req *Request) ([]*Tree, error) {
		called = true
		return nil, nil
	})

	parsed, err := NewConsumer(&ConsumerSetting{Provider: provider}).Parse(context.Background(), nil)
	assert.Nil(t, err)
	assert.Nil(t, parsed)
	assert.False(t, called)
}
