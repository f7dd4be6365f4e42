package main

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/unicharts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unicharts")
	defer teardown()
	//
	op := parseCommand("block Basic Latin")
	assert.Equal(t, BLOCK, op.code)
	assert.Equal(t, "Basic Latin", op.arg)
	op = parseCommand("INFO U+0041")
	assert.Equal(t, INFO, op.code)
	op = parseCommand("frobnicate now")
	assert.Equal(t, HELP, op.code)
	assert.Empty(t, op.arg)
}

func TestCurrentBlock(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unicharts")
	defer teardown()
	//
	g, err := unicharts.NewGenerator(unicharts.DefaultOptions())
	require.NoError(t, err)
	intp := &Intp{gen: g}
	_, err = intp.currentBlock("")
	assert.ErrorIs(t, err, ErrNoBlock)
	err, stop := blockOp(intp, &Op{code: BLOCK, arg: "Cyrillic"})
	require.NoError(t, err)
	assert.False(t, stop)
	b, err := intp.currentBlock("")
	require.NoError(t, err)
	assert.Equal(t, rune(0x0400), b.Start)
	err, _ = blockOp(intp, &Op{code: BLOCK, arg: "Klingon"})
	assert.Error(t, err)
	assert.Equal(t, "Cyrillic", intp.block)
}
