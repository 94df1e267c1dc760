// Package synonym provides a middleware-based word scanning engine.
// Each dictionary word flows through a pipeline of stages (filter,
// normalize, translate, lookup) and comes out as a Result describing
// whether it has a synonym under the configured layout pair.
package synonym

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"layoutsyn/internal/config"
	"layoutsyn/internal/dictionary"
	"layoutsyn/internal/filter"
	"layoutsyn/internal/translator"
)

// Status classifies the outcome of scanning a single word.
type Status string

// Scan outcomes. Only StatusSynonym results are printed as pairs.
const (
	StatusFiltered       Status = "filtered"
	StatusUntranslatable Status = "untranslatable"
	StatusNoMatch        Status = "no-match"
	StatusIdentical      Status = "identical"
	StatusSynonym        Status = "synonym"
)

// Result describes what happened to one dictionary word.
type Result struct {
	Word       string `json:"word"`
	Normalized string `json:"-"`
	Translated string `json:"translated,omitempty"`
	Status     Status `json:"status"`
}

// Middleware defines a processing step in the scan pipeline. Setting Stop
// on the returned context ends the pipeline for the current word.
type Middleware func(WordContext) WordContext

// WordContext carries state through the scan pipeline.
type WordContext struct {
	Config     *config.Config
	Dictionary *dictionary.Dictionary
	Translator *translator.Translator
	Filters    filter.Chain
	Caser      cases.Caser
	Result     *Result
	Stop       bool
}

// Engine runs words through the scan pipeline. An Engine holds a
// cases.Caser and is therefore not safe for concurrent use; create one
// per goroutine.
type Engine struct {
	config     *config.Config
	dictionary *dictionary.Dictionary
	translator *translator.Translator
	filters    filter.Chain
	caser      cases.Caser
	middleware []Middleware
}

// NewEngine creates an engine with the standard pipeline.
func NewEngine(cfg *config.Config, dict *dictionary.Dictionary, tr *translator.Translator) *Engine {
	engine := &Engine{
		config:     cfg,
		dictionary: dict,
		translator: tr,
		filters:    filter.BuildFilters(cfg),
		caser:      cases.Lower(language.Und),
	}

	engine.Use(filterMiddleware)
	engine.Use(normalizeMiddleware)
	engine.Use(translateMiddleware)
	engine.Use(lookupMiddleware)

	return engine
}

// Use appends a stage to the pipeline.
func (e *Engine) Use(middleware Middleware) {
	e.middleware = append(e.middleware, middleware)
}

// Process scans a single word.
func (e *Engine) Process(word string) Result {
	ctx := WordContext{
		Config:     e.config,
		Dictionary: e.dictionary,
		Translator: e.translator,
		Filters:    e.filters,
		Caser:      e.caser,
		Result: &Result{
			Word:       word,
			Normalized: word,
		},
	}

	for _, mw := range e.middleware {
		ctx = mw(ctx)
		if ctx.Stop {
			break
		}
	}

	return *ctx.Result
}

func filterMiddleware(ctx WordContext) WordContext {
	if !ctx.Filters.Allow(ctx.Result.Word) {
		ctx.Result.Status = StatusFiltered
		ctx.Stop = true
	}
	return ctx
}

func normalizeMiddleware(ctx WordContext) WordContext {
	if !ctx.Config.CaseSensitive {
		ctx.Result.Normalized = ctx.Caser.String(ctx.Result.Word)
	}
	return ctx
}

func translateMiddleware(ctx WordContext) WordContext {
	translated, ok := ctx.Translator.Translate(ctx.Result.Normalized)
	if !ok {
		ctx.Result.Status = StatusUntranslatable
		ctx.Stop = true
		return ctx
	}
	ctx.Result.Translated = translated
	return ctx
}

func lookupMiddleware(ctx WordContext) WordContext {
	switch {
	case !ctx.Dictionary.Contains(ctx.Result.Translated):
		ctx.Result.Status = StatusNoMatch
	case ctx.Config.Distinct && ctx.Result.Translated == ctx.Result.Normalized:
		ctx.Result.Status = StatusIdentical
	default:
		ctx.Result.Status = StatusSynonym
	}
	return ctx
}
