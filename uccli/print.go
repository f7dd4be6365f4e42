package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/unicharts/blocks"
	"github.com/npillmayer/unicharts/internal/charinfo"
	"github.com/npillmayer/unicharts/internal/cptoken"
	"github.com/npillmayer/unicharts/sampler"
	"github.com/npillmayer/unicharts/xmlchar"
	"github.com/pterm/pterm"
)

var ErrNoBlock = errors.New("no block set")

func infoOp(intp *Intp, op *Op) (error, bool) {
	runes, err := cptoken.Parse(op.arg)
	if err != nil {
		return err, false
	}
	if len(runes) == 0 {
		return errors.New("usage: info <codepoints>"), false
	}
	data := [][]string{charinfo.Header()}
	for _, r := range runes {
		data = append(data, charinfo.Lookup(intp.gen, r).Row())
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func blockOp(intp *Intp, op *Op) (error, bool) {
	if op.arg == "" {
		b, err := intp.currentBlock("")
		if err != nil {
			return err, false
		}
		printBlock(b)
		return nil, false
	}
	b, ok := intp.gen.Table().Lookup(op.arg)
	if !ok {
		return fmt.Errorf("unknown block %q, try 'find'", op.arg), false
	}
	intp.block = b.Name
	tracer().Infof("setting block: %s", b.Name)
	printBlock(b)
	return nil, false
}

func sampleOp(intp *Intp, op *Op) (error, bool) {
	b, err := intp.currentBlock(op.arg)
	if err != nil {
		return err, false
	}
	printSamples(intp.gen.Sampler().Exhaustive(b)...)
	return nil, false
}

func randomOp(intp *Intp, op *Op) (error, bool) {
	b, err := intp.currentBlock(op.arg)
	if err != nil {
		return err, false
	}
	printSamples(intp.gen.Sampler().Random(b))
	return nil, false
}

func findOp(intp *Intp, op *Op) (error, bool) {
	if op.arg == "" {
		return errors.New("usage: find <part of block name>"), false
	}
	pattern := strings.ToLower(op.arg)
	data := [][]string{{"Block", "Range", "Size"}}
	for _, b := range intp.gen.Table().Blocks() {
		if strings.Contains(strings.ToLower(b.Name), pattern) {
			data = append(data, []string{b.Name, b.Range(), fmt.Sprintf("%d", b.Len())})
		}
	}
	if len(data) == 1 {
		pterm.Printf("no block matches '%s'\n", op.arg)
		return nil, false
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func chaptersOp(intp *Intp, op *Op) (error, bool) {
	data := [][]string{{"Chapter", "Group", "Blocks"}}
	for _, t := range intp.gen.Chapters() {
		for _, g := range t.Groups {
			n := 0
			for _, e := range g.Entries {
				n += 1 + len(e.SubBlocks)
			}
			data = append(data, []string{t.Title, g.Name, fmt.Sprintf("%d", n)})
		}
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

// currentBlock returns the block named name, or the current block if name
// is empty.
func (intp *Intp) currentBlock(name string) (blocks.Block, error) {
	if name == "" {
		name = intp.block
	}
	if name == "" {
		return blocks.Block{}, ErrNoBlock
	}
	b, ok := intp.gen.Table().Lookup(name)
	if !ok {
		return blocks.Block{}, fmt.Errorf("unknown block %q", name)
	}
	return b, nil
}

func printBlock(b blocks.Block) {
	pterm.Printf("%s: %s, %d codepoints\n", b.Name, b.Range(), b.Len())
	pterm.Printf("chart: %s\n", b.ChartURL())
}

func printSamples(samples ...sampler.Sample) {
	data := [][]string{{"Codepoint", "Char", "XML", "Scripts", "Fonts"}}
	for _, s := range samples {
		char, valid := "", "no"
		if s.Valid {
			char, valid = string(s.Codepoint), "yes"
		}
		data = append(data, []string{
			"U+" + xmlchar.Hex(s.Codepoint),
			char,
			valid,
			strings.Join(s.ScriptNames(), ", "),
			strings.Join(s.Fonts, ","),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
