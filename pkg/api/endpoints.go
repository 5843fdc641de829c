package api

import (
	"context"
	"fmt"
	"strings"

	"github.com/hazyhaar/wordmill/pkg/filters"
	"github.com/hazyhaar/wordmill/pkg/kit"
	"github.com/hazyhaar/wordmill/pkg/langpack"
	"github.com/hazyhaar/wordmill/pkg/stem"
)

// maxBatchTexts caps one batch preprocess request.
const maxBatchTexts = 100

type preprocessReq struct {
	Text     string
	Language string
	Filters  []string
}

type preprocessResp struct {
	Language string   `json:"language"`
	Tokens   []string `json:"tokens"`
}

type batchReq struct {
	Texts    []string
	Language string
	Filters  []string
}

type batchResp struct {
	Language string     `json:"language"`
	Results  [][]string `json:"results"`
}

type stemReq struct {
	Word string
}

type stemResp struct {
	Word string `json:"word"`
	Stem string `json:"stem"`
}

type filtersResp struct {
	Filters []string `json:"filters"`
	Default []string `json:"default"`
}

type packsResp struct {
	Packs []langpack.PackInfo `json:"packs"`
}

// pipelineFor resolves the pipeline for a request: an explicit filter
// list wins, otherwise the named language's pack pipeline. Unknown
// filter names and unknown languages are configuration errors surfaced
// before any text is processed.
func pipelineFor(reg *langpack.Registry, language string, names []string) (*filters.Pipeline, string, error) {
	if language == "" {
		language = "en"
	}
	if len(names) > 0 {
		p, err := filters.FromNames(names)
		return p, language, err
	}
	pack, err := reg.Get(language)
	if err != nil {
		return nil, language, err
	}
	return pack.Pipeline(), language, nil
}

func preprocessEndpoint(reg *langpack.Registry) kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*preprocessReq)
		p, lang, err := pipelineFor(reg, req.Language, req.Filters)
		if err != nil {
			return nil, err
		}
		return preprocessResp{Language: lang, Tokens: p.Tokens(req.Text)}, nil
	}
}

func preprocessBatchEndpoint(reg *langpack.Registry) kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*batchReq)
		if len(req.Texts) == 0 {
			return nil, fmt.Errorf("no texts supplied")
		}
		if len(req.Texts) > maxBatchTexts {
			return nil, fmt.Errorf("too many texts: %d (max %d)", len(req.Texts), maxBatchTexts)
		}
		p, lang, err := pipelineFor(reg, req.Language, req.Filters)
		if err != nil {
			return nil, err
		}
		results := make([][]string, len(req.Texts))
		for i, txt := range req.Texts {
			results[i] = p.Tokens(txt)
		}
		return batchResp{Language: lang, Results: results}, nil
	}
}

func stemEndpoint() kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*stemReq)
		w := strings.ToLower(strings.TrimSpace(req.Word))
		return stemResp{Word: req.Word, Stem: stem.Word(w)}, nil
	}
}

func listFiltersEndpoint() kit.Endpoint {
	return func(_ context.Context, _ any) (any, error) {
		return filtersResp{Filters: filters.Names(), Default: filters.DefaultNames}, nil
	}
}

func listPacksEndpoint(reg *langpack.Registry) kit.Endpoint {
	return func(_ context.Context, _ any) (any, error) {
		return packsResp{Packs: reg.ListPacks()}, nil
	}
}
