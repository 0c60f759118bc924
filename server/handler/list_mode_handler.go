package handler

import (
	"autograph-openre/domain/normalize"
	"autograph-openre/server/common"
	"github.com/gin-gonic/gin"
	"net/http"
)

type listModeItem struct {
	Name                     string `json:"name"`
	Current                  bool   `json:"current"`
	SplitWordMerge           bool   `json:"split_word_merge"`
	HyphenatedVerbMerge      bool   `json:"hyphenated_verb_merge"`
	AbbreviationCanonicalize bool   `json:"abbreviation_canonicalize"`
	ChunkMerge               bool   `json:"chunk_merge"`
}

/*
ListMode 列出全部抽取模式，Current 标记服务当前使用的模式。
*/
func ListMode(ctx *gin.Context) {
	current := normalize.Mode("")
	if globalConfig.Extractor != nil {
		current = globalConfig.Extractor.Mode()
	}

	modes := normalize.Modes()
	ret := make([]listModeItem, 0, len(modes))
	for _, mode := range modes {
		profile := mode.Profile()
		ret = append(ret, listModeItem{
			Name:                     string(mode),
			Current:                  mode == current,
			SplitWordMerge:           profile.SplitWordMerge,
			HyphenatedVerbMerge:      profile.HyphenatedVerbMerge,
			AbbreviationCanonicalize: profile.AbbreviationCanonicalize,
			ChunkMerge:               profile.ChunkMerge,
		})
	}

	ctx.JSON(http.StatusOK, common.MakeSuccessResp(ret))
}
