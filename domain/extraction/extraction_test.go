package extraction

import (
	"autograph-openre/domain/depparse"
	"autograph-openre/domain/normalize"
	"autograph-openre/domain/openre"
	"autograph-openre/logging"
	"autograph-openre/repository/corpus"
	"context"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

const testInput = `[
	{
		"pmid": "100",
		"sent_id": 0,
		"sentence": "TP53 activates MDM2.",
		"mention_list": [
			{"name": "TP53", "type": "Gene", "real_pos": [0, 4]},
			{"name": "MDM2", "type": "Gene", "real_pos": [15, 19]}
		]
	},
	{
		"pmid": "100",
		"sent_id": 1,
		"sentence": "TP53 is stable.",
		"mention_list": [
			{"name": "TP53", "type": "Gene", "real_pos": [0, 4]}
		]
	}
]`

// ENT0ITY activates ENT1ITY.
func activeTree() *depparse.Tree {
	placeholder := func(text, dep string) depparse.Token {
		return depparse.Token{
			Text: text, Tag: depparse.TagProperNoun, POS: depparse.POSProperNoun,
			Dep: dep, Head: 1, SpaceAfter: true,
		}
	}

	tokens := []depparse.Token{
		placeholder("ENT0ITY", depparse.DepNsubj),
		{Text: "activates", Tag: "VBZ", POS: "VERB", Dep: depparse.DepRoot, Head: 1, SpaceAfter: true},
		placeholder("ENT1ITY", depparse.DepDobj),
		{Text: ".", Tag: ".", POS: "PUNCT", Dep: "punct", Head: 1},
	}
	tokens[2].SpaceAfter = false

	return &depparse.Tree{
		Tokens: tokens,
		Chunks: []depparse.Chunk{{Start: 0, End: 1, Root: 0}, {Start: 2, End: 3, Root: 2}},
	}
}

type testProvider struct {
	lock     sync.Mutex
	requests [][]string
}

func (p *testProvider) Parse(_ context.Context, req *depparse.Request) ([]*depparse.Tree, error) {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.requests = append(p.requests, req.Sentences)
	ret := make([]*depparse.Tree, len(req.Sentences))
	for i, sentence := range req.Sentences {
		if sentence == "ENT0ITY activates ENT1ITY." {
			ret[i] = activeTree()
		}
	}
	return ret, nil
}

func newTestExtractor(t *testing.T, provider depparse.Provider, onRecords func([]*openre.Record)) *Extractor {
	extractor, err := NewExtractor(&Setting{
		BatchSize: 10,
		Workers:   2,
		Mode:      normalize.ModeGeneric,
		Limits:    openre.DefaultLimits(),
		Provider:  provider,
		OnRecords: onRecords,
		Logger:    logging.New(logging.GenerateTestConfig(t)),
	})
	require.Nil(t, err)
	return extractor
}

func TestNewExtractor_BadMode(t *testing.T) {
	_, err := NewExtractor(&Setting{Mode: "unknown", Provider: &testProvider{}})
	assert.True(t, errors.Is(err, normalize.ErrUnknownMode))

	_, err = NewExtractor(&Setting{Mode: normalize.ModeBaseline, Provider: &testProvider{}})
	assert.True(t, errors.Is(err, normalize.ErrMissingVerbList))
}

func TestLoadResources(t *testing.T) {
	dir := t.TempDir()
	paths := ResourcePaths{
		VocabCSV:   filepath.Join(dir, "vocab.csv"),
		VocabLines: filepath.Join(dir, "vocab.txt"),
		VerbCSV:    filepath.Join(dir, "verbs.csv"),
	}
	require.Nil(t, os.WriteFile(paths.VocabCSV, []byte("nitrogen,10\nfixation,3\n"), 0644))
	require.Nil(t, os.WriteFile(paths.VocabLines, []byte("photosynthesis\n\n"), 0644))
	require.Nil(t, os.WriteFile(paths.VerbCSV, []byte("verb,count\ndown-regulates,5\n"), 0644))

	res, err := LoadResources(normalize.ModeAllCombined.Profile(), &paths)
	require.Nil(t, err)
	assert.True(t, res.Vocabulary.Contains("nitrogen"))
	assert.True(t, res.Vocabulary.Contains("photosynthesis"))
	assert.Nil(t, res.Verbs)
	assert.Same(t, openre.PlaceholderPattern, res.Placeholder)

	res, err = LoadResources(normalize.ModeBaseline.Profile(), &paths)
	require.Nil(t, err)
	assert.Nil(t, res.Vocabulary)
	assert.True(t, res.Verbs.Contains("down-regulates"))
	assert.False(t, res.Verbs.Contains("verb"))

	paths.VerbCSV = filepath.Join(dir, "missing.csv")
	_, err = LoadResources(normalize.ModeBaseline.Profile(), &paths)
	assert.NotNil(t, err)
}

func TestExtractor_RunFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.json")
	output := filepath.Join(dir, "output.json")
	require.Nil(t, os.WriteFile(input, []byte(testInput), 0644))

	var received []*openre.Record
	provider := &testProvider{}
	extractor := newTestExtractor(t, provider, func(records []*openre.Record) {
		received = records
	})

	task := Task{Input: input, Output: output, Indent: -1}
	result, err := extractor.RunFile(context.Background(), &task)
	require.Nil(t, err)

	assert.Equal(t, "input.json", task.Name)
	assert.Len(t, result.RunUUID, 36)
	assert.Equal(t, openre.Stats{
		Sentences:             2,
		Masked:                1,
		Parsed:                1,
		SentencesWithTriplets: 1,
		Triplets:              1,
		PerfectTriplets:       1,
	}, result.Stats)
	assert.Len(t, received, 2)
	assert.Equal(t, [][]string{{"ENT0ITY activates ENT1ITY."}}, provider.requests)

	records, err := corpus.ReadRecords(output)
	require.Nil(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []openre.Triplet{{
		HeadMention:  0,
		TailMention:  1,
		Triplet:      [3]string{"TP53", "activates", "MDM2"},
		PerfectMatch: true,
	}}, records[0].TripletList)
	assert.Equal(t, []openre.Triplet{}, records[1].TripletList)
}

func TestExtractor_ProcessInvalid(t *testing.T) {
	provider := &testProvider{}
	called := false
	extractor := newTestExtractor(t, provider, func([]*openre.Record) { called = true })

	records := []*openre.Record{{DocID: "1", Sentence: "no mentions"}}
	_, err := extractor.Process(context.Background(), &Task{Name: "bad"}, records)
	assert.True(t, errors.Is(err, openre.ErrMissingField))
	assert.Empty(t, provider.requests)
	assert.False(t, called)
}

func TestExtractor_ProcessCanceled(t *testing.T) {
	records, err := corpus.DecodeRecords(strings.NewReader(testInput))
	require.Nil(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	extractor := newTestExtractor(t, &testProvider{}, func([]*openre.Record) { called = true })
	_, err = extractor.Process(ctx, &Task{Name: "canceled"}, records)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.False(t, called)
}

func TestRenderRunResultPage(t *testing.T) {
	records, err := corpus.DecodeRecords(strings.NewReader(testInput))
	require.Nil(t, err)
	records[0].TripletList = []openre.Triplet{
		{HeadMention: 0, TailMention: 1, Triplet: [3]string{"TP53", "activates", "MDM2"}, PerfectMatch: true},
		{HeadMention: 0, TailMention: 1, Triplet: [3]string{"TP53", "binds", "MDM2"}, PerfectMatch: true},
		{HeadMention: 0, TailMention: 1, Triplet: [3]string{"TP53 <b>", "x", "MDM2"}, PerfectMatch: false},
	}

	page := renderRunResultPage("a<b>.json", &Result{
		RunUUID: "run-1",
		Stats:   openre.Stats{Sentences: 2, Triplets: 3, PerfectTriplets: 2},
		Records: records,
	})

	assert.Contains(t, page, "a&lt;b&gt;.json")
	assert.Contains(t, page, "<p>不重复实体数量：2</p>")
	assert.Contains(t, page, "<p>不重复SPO三元组数量：2</p>")
	assert.Contains(t, page, "(TP53)-[activates]-&gt;(MDM2)<br/>(TP53)-[binds]-&gt;(MDM2)")
	assert.NotContains(t, page, "<b>")
}

func TestSpoCollection_Plain(t *testing.T) {
	spo := spoCollection{}
	spo.Add("b", "c", "r2")
	spo.Add("a", "c", "r1")
	spo.Add("b", "c", "r1")
	spo.Add("a", "c", "r1")

	assert.Equal(t, []string{"(a)-[r1]->(c)", "(b)-[r1]->(c)", "(b)-[r2]->(c)"}, spo.Plain())
}
