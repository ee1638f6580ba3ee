package rpc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/sourcegraph/jsonrpc2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/prosecheck/internal/engine"
	"github.com/dshills/prosecheck/internal/schema"
)

func startServer(t *testing.T) *jsonrpc2.Conn {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)

	serverSide, clientSide := net.Pipe()
	done := make(chan error, 1)
	go func() {
		done <- Serve(ctx, serverSide, NewHandler(engine.New(nil), "professional"))
	}()

	noop := jsonrpc2.HandlerWithError(func(context.Context, *jsonrpc2.Conn, *jsonrpc2.Request) (any, error) {
		return nil, nil
	})
	conn := jsonrpc2.NewConn(ctx, jsonrpc2.NewBufferedStream(clientSide, jsonrpc2.VSCodeObjectCodec{}), noop)
	t.Cleanup(func() {
		conn.Close()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Error("server did not stop after client disconnect")
		}
	})
	return conn
}

func TestAnalyze(t *testing.T) {
	conn := startServer(t)

	var got schema.Analysis
	err := conn.Call(context.Background(), "analyze", AnalyzeParams{Text: "The ball was thrown by John. He is very happy."}, &got)
	require.NoError(t, err)
	require.NotNil(t, got.Scores)
	require.NotNil(t, got.Tone)
	require.NotEmpty(t, got.Issues)
	assert.Equal(t, schema.CategoryPassiveVoice, got.Issues[0].Category)
	assert.Equal(t, 9, got.Issues[0].Position)
}

func TestAnalyzeEmptyText(t *testing.T) {
	conn := startServer(t)

	var got schema.Analysis
	require.NoError(t, conn.Call(context.Background(), "analyze", AnalyzeParams{Text: ""}, &got))
	assert.Empty(t, got.Issues)
	assert.Nil(t, got.Scores)
	assert.Nil(t, got.Tone)
}

func TestReport(t *testing.T) {
	conn := startServer(t)

	var got schema.Report
	err := conn.Call(context.Background(), "report", AnalyzeParams{Text: "Short.", Source: "note"}, &got)
	require.NoError(t, err)
	assert.Equal(t, "note", got.Input.Source)
	assert.Equal(t, "Not enough text", got.Summary.Grade)
}

func TestTransform(t *testing.T) {
	conn := startServer(t)

	var got []schema.TransformResult
	err := conn.Call(context.Background(), "transform", TransformParams{Tool: "simplify", Text: "We need to utilize this."}, &got)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "We need to use this.", got[0].Text)
	assert.Equal(t, `"utilize" → "use"`, got[1].Text)
}

func TestTransformSeeded(t *testing.T) {
	conn := startServer(t)
	seed := uint64(42)
	params := TransformParams{Tool: "rewrite", Text: "The launch slipped a week.", Tone: "academic", Seed: &seed}

	var first, second []schema.TransformResult
	require.NoError(t, conn.Call(context.Background(), "transform", params, &first))
	require.NoError(t, conn.Call(context.Background(), "transform", params, &second))
	assert.Equal(t, first, second)
	assert.Equal(t, "Academic tone", first[0].Label)
}

func TestTransformInvalidParams(t *testing.T) {
	conn := startServer(t)

	tests := []struct {
		name   string
		params TransformParams
	}{
		{"unknown tool", TransformParams{Tool: "summarize", Text: "Some text here."}},
		{"unknown tone", TransformParams{Tool: "rewrite", Text: "Some text here.", Tone: "pirate"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got []schema.TransformResult
			err := conn.Call(context.Background(), "transform", tc.params, &got)
			var rpcErr *jsonrpc2.Error
			require.True(t, errors.As(err, &rpcErr), "got %v", err)
			assert.Equal(t, int64(jsonrpc2.CodeInvalidParams), rpcErr.Code)
		})
	}
}

func TestListMethods(t *testing.T) {
	conn := startServer(t)

	var tools []string
	require.NoError(t, conn.Call(context.Background(), "tools", struct{}{}, &tools))
	assert.Equal(t, []string{"rewrite", "expand", "shorten", "grammar-fix", "simplify", "headlines"}, tools)

	var tones []string
	require.NoError(t, conn.Call(context.Background(), "tones", struct{}{}, &tones))
	assert.Contains(t, tones, "professional")
}

func TestUnknownMethod(t *testing.T) {
	conn := startServer(t)

	err := conn.Call(context.Background(), "summarize", struct{}{}, nil)
	var rpcErr *jsonrpc2.Error
	require.True(t, errors.As(err, &rpcErr))
	assert.Equal(t, int64(jsonrpc2.CodeMethodNotFound), rpcErr.Code)
}

func TestAnalyzeCache(t *testing.T) {
	h := NewHandler(engine.New(nil), "professional")
	text := "The ball was thrown by John. He is very happy."

	first := h.analyze(text)
	second := h.analyze(text)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, h.cache.Len())

	h.analyze("A different text entirely, with enough words.")
	assert.Equal(t, 2, h.cache.Len())
}

func TestNewHandler_CacheBounded(t *testing.T) {
	var h *Handler
	require.NotPanics(t, func() { h = NewHandler(engine.New(nil), "professional") })
	for i := range cacheSize + 5 {
		h.analyze(fmt.Sprintf("Draft number %d was written today.", i))
	}
	assert.Equal(t, cacheSize, h.cache.Len())
}
