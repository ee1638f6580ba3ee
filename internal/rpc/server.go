// Package rpc exposes the engine over JSON-RPC 2.0 so an editor or other
// host process can request analyses and rewrites over stdio.
//
// Methods:
//
//	analyze    {"text": "..."}                          -> schema.Analysis
//	report     {"text": "...", "source": "..."}         -> schema.Report
//	transform  {"tool": "...", "text": "...", "tone": "...", "seed": 1} -> []schema.TransformResult
//	tools      {}                                       -> []string
//	tones      {}                                       -> []string
package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sourcegraph/jsonrpc2"

	"github.com/dshills/prosecheck/internal/engine"
	"github.com/dshills/prosecheck/internal/logger"
	"github.com/dshills/prosecheck/internal/profile"
	"github.com/dshills/prosecheck/internal/schema"
	"github.com/dshills/prosecheck/internal/transform"
)

// AnalyzeParams are the parameters of "analyze" and "report".
type AnalyzeParams struct {
	Text   string `json:"text"`
	Source string `json:"source,omitempty"`
}

// TransformParams are the parameters of "transform". Seed, when set, pins
// the rewrite starter choice.
type TransformParams struct {
	Tool string  `json:"tool"`
	Text string  `json:"text"`
	Tone string  `json:"tone,omitempty"`
	Seed *uint64 `json:"seed,omitempty"`
}

// cacheSize is the number of recent analyses kept. Editors tend to resend the
// same buffer on every focus change.
const cacheSize = 64

// Handler dispatches JSON-RPC requests to an engine.
type Handler struct {
	eng         *engine.Engine
	defaultTone string
	cache       *lru.Cache[uint64, schema.Analysis]
	log         *slog.Logger
}

// NewHandler returns a handler backed by eng. defaultTone is used for
// transform requests that do not name a tone.
func NewHandler(eng *engine.Engine, defaultTone string) *Handler {
	cache, err := lru.New[uint64, schema.Analysis](cacheSize)
	if err != nil {
		// lru.New only fails for a non-positive size.
		panic(fmt.Sprintf("rpc: analysis cache: %v", err))
	}
	return &Handler{
		eng:         eng,
		defaultTone: defaultTone,
		cache:       cache,
		log:         logger.ForComponent("rpc"),
	}
}

// Serve handles requests on rwc until the peer disconnects or ctx is
// cancelled.
func Serve(ctx context.Context, rwc io.ReadWriteCloser, h *Handler) error {
	stream := jsonrpc2.NewBufferedStream(rwc, jsonrpc2.VSCodeObjectCodec{})
	conn := jsonrpc2.NewConn(ctx, stream, jsonrpc2.HandlerWithError(h.Handle))
	select {
	case <-ctx.Done():
		conn.Close()
		return nil
	case <-conn.DisconnectNotify():
		return nil
	}
}

// Handle serves a single request.
func (h *Handler) Handle(ctx context.Context, _ *jsonrpc2.Conn, req *jsonrpc2.Request) (any, error) {
	h.log.Debug("request", "method", req.Method)
	switch req.Method {
	case "analyze":
		var p AnalyzeParams
		if err := decode(req, &p); err != nil {
			return nil, err
		}
		return h.analyze(p.Text), nil
	case "report":
		var p AnalyzeParams
		if err := decode(req, &p); err != nil {
			return nil, err
		}
		return h.eng.Report(p.Source, "text", p.Text), nil
	case "transform":
		var p TransformParams
		if err := decode(req, &p); err != nil {
			return nil, err
		}
		return h.transform(p)
	case "tools":
		names := make([]string, len(transform.Tools))
		for i, t := range transform.Tools {
			names[i] = string(t)
		}
		return names, nil
	case "tones":
		return profile.Names(), nil
	}
	return nil, &jsonrpc2.Error{Code: jsonrpc2.CodeMethodNotFound, Message: "method not found: " + req.Method}
}

// analyze returns the cached analysis of text, computing it on a miss.
// Cached values are shared and must not be modified.
func (h *Handler) analyze(text string) schema.Analysis {
	key := xxhash.Sum64String(text)
	if a, ok := h.cache.Get(key); ok {
		h.log.Debug("analysis cache hit", "bytes", len(text))
		return a
	}
	a := h.eng.Analyze(text)
	h.cache.Add(key, a)
	return a
}

func (h *Handler) transform(p TransformParams) ([]schema.TransformResult, error) {
	tool, err := transform.ParseTool(p.Tool)
	if err != nil {
		return nil, invalidParams(err)
	}
	opts := transform.Options{Tone: p.Tone}
	if opts.Tone == "" {
		opts.Tone = h.defaultTone
	}
	if p.Seed != nil {
		opts.Rand = transform.SeededSource(*p.Seed)
	}
	results, err := h.eng.Transform(tool, p.Text, opts)
	if err != nil {
		if errors.Is(err, profile.ErrUnknownProfile) {
			return nil, invalidParams(err)
		}
		return nil, err
	}
	return results, nil
}

func decode(req *jsonrpc2.Request, v any) error {
	if req.Params == nil {
		return &jsonrpc2.Error{Code: jsonrpc2.CodeInvalidParams, Message: "missing params"}
	}
	if err := json.Unmarshal(*req.Params, v); err != nil {
		return invalidParams(err)
	}
	return nil
}

func invalidParams(err error) error {
	return &jsonrpc2.Error{Code: jsonrpc2.CodeInvalidParams, Message: err.Error()}
}
