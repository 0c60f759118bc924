package openre

import (
	"autograph-openre/domain/depparse"
)

func tok(text, dep string, head int) depparse.Token {
	ret := depparse.Token{
		Text:       text,
		Dep:        dep,
		Head:       head,
		SpaceAfter: true,
	}
	if PlaceholderPattern.MatchString(text) {
		ret.Tag = depparse.TagProperNoun
		ret.POS = depparse.POSProperNoun
	}
	return ret
}

func adp(text string, head int) depparse.Token {
	ret := tok(text, depparse.DepPrep, head)
	ret.Tag = "IN"
	ret.POS = depparse.POSAdposition
	return ret
}

// 最后一个词之前不留空格，与句号相连
func sentence(tokens []depparse.Token, chunks ...depparse.Chunk) *depparse.Parsed {
	if n := len(tokens); n >= 2 && tokens[n-1].Text == "." {
		tokens[n-2].SpaceAfter = false
	}
	tokens[len(tokens)-1].SpaceAfter = false

	return depparse.NewParsed(&depparse.Tree{
		Tokens: tokens,
		Chunks: chunks,
	})
}

func chunk(start, end, root int) depparse.Chunk {
	return depparse.Chunk{Start: start, End: end, Root: root}
}

// ENT0ITY activates ENT1ITY in cells.
func activeSentence() *depparse.Parsed {
	return sentence([]depparse.Token{
		tok("ENT0ITY", depparse.DepNsubj, 1),
		tok("activates", depparse.DepRoot, 1),
		tok("ENT1ITY", depparse.DepDobj, 1),
		adp("in", 1),
		tok("cells", depparse.DepPobj, 3),
		tok(".", "punct", 1),
	}, chunk(0, 1, 0), chunk(2, 3, 2), chunk(4, 5, 4))
}

// ENT0ITY is regulated by ENT1ITY.
func passiveSentence() *depparse.Parsed {
	return sentence([]depparse.Token{
		tok("ENT0ITY", depparse.DepNsubjPass, 2),
		tok("is", "auxpass", 2),
		tok("regulated", depparse.DepRoot, 2),
		adp("by", 2),
		tok("ENT1ITY", depparse.DepPobj, 3),
		tok(".", "punct", 2),
	}, chunk(0, 1, 0), chunk(4, 5, 4))
}

// ENT0ITY is n't regulated by ENT1ITY.
func negatedPassiveSentence() *depparse.Parsed {
	return sentence([]depparse.Token{
		tok("ENT0ITY", depparse.DepNsubjPass, 3),
		tok("is", "auxpass", 3),
		tok("n't", depparse.DepNeg, 3),
		tok("regulated", depparse.DepRoot, 3),
		adp("by", 3),
		tok("ENT1ITY", depparse.DepPobj, 4),
		tok(".", "punct", 3),
	}, chunk(0, 1, 0), chunk(5, 6, 5))
}

// ENT0ITY does not activate ENT1ITY.
func negatedActiveSentence() *depparse.Parsed {
	return sentence([]depparse.Token{
		tok("ENT0ITY", depparse.DepNsubj, 3),
		tok("does", "aux", 3),
		tok("not", depparse.DepNeg, 3),
		tok("activate", depparse.DepRoot, 3),
		tok("ENT1ITY", depparse.DepDobj, 3),
		tok(".", "punct", 3),
	}, chunk(0, 1, 0), chunk(4, 5, 4))
}

// ENT0ITY and ENT1ITY activate ENT2ITY.
func conjunctionSentence() *depparse.Parsed {
	return sentence([]depparse.Token{
		tok("ENT0ITY", depparse.DepNsubj, 3),
		tok("and", "cc", 0),
		tok("ENT1ITY", depparse.DepConj, 0),
		tok("activate", depparse.DepRoot, 3),
		tok("ENT2ITY", depparse.DepDobj, 3),
		tok(".", "punct", 3),
	}, chunk(0, 1, 0), chunk(2, 3, 2), chunk(4, 5, 4))
}

// regulator of ENT0ITY activates ENT1ITY
func ofSentence() *depparse.Parsed {
	return sentence([]depparse.Token{
		tok("regulator", depparse.DepNsubj, 3),
		adp("of", 0),
		tok("ENT0ITY", depparse.DepPobj, 1),
		tok("activates", depparse.DepRoot, 3),
		tok("ENT1ITY", depparse.DepDobj, 3),
	}, chunk(0, 1, 0), chunk(2, 3, 2), chunk(4, 5, 4))
}

func testMentions(names ...string) []Mention {
	ret := make([]Mention, len(names))
	for i, name := range names {
		ret[i] = Mention{
			Name: name,
			Type: "Gene",
			Pos:  &Range{i, i + 1},
		}
	}
	return ret
}
