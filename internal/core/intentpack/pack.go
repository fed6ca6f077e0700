// Package intentpack loads and compiles the intent pattern tables from the
// embedded intents.json. The table is ordered: intents declared earlier take
// precedence over later ones, and within an intent patterns are tried in
// declaration order. That precedence is load-bearing (specific intents are
// declared before broader catch-alls), so the pack is a slice, never a map
package intentpack

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"regexp"
)

//go:embed intents.json
var embedded []byte

type rawIntent struct {
	Intent   string   `json:"intent"`
	Patterns []string `json:"patterns"`
}

type rawPack struct {
	Version int            `json:"version"`
	Meta    map[string]any `json:"meta"`
	Intents []rawIntent    `json:"intents"`
}

// Rule is one intent with its compiled pattern list, in declaration order
type Rule struct {
	Intent   string
	Patterns []string
	Compiled []*regexp.Regexp
}

// Pack is the compiled, ordered intent table
type Pack struct {
	Version int
	Meta    map[string]any
	Rules   []Rule

	index map[string]int // intent -> position, for Has/Position lookups
}

// Load parses and compiles the embedded intents.json
func Load() (*Pack, error) {
	var rp rawPack
	if err := json.Unmarshal(embedded, &rp); err != nil {
		return nil, fmt.Errorf("intentpack: parse intents.json: %w", err)
	}
	if rp.Version != 1 {
		return nil, fmt.Errorf("intentpack: unsupported intents.json version %d (want 1)", rp.Version)
	}
	if len(rp.Intents) == 0 {
		return nil, fmt.Errorf("intentpack: empty intent table")
	}

	p := &Pack{
		Version: rp.Version,
		Meta:    rp.Meta,
		Rules:   make([]Rule, 0, len(rp.Intents)),
		index:   make(map[string]int, len(rp.Intents)),
	}

	for i, ri := range rp.Intents {
		if ri.Intent == "" {
			return nil, fmt.Errorf("intentpack: intent %d has empty name", i)
		}
		if _, dup := p.index[ri.Intent]; dup {
			return nil, fmt.Errorf("intentpack: duplicate intent %q", ri.Intent)
		}
		r := Rule{Intent: ri.Intent, Patterns: ri.Patterns}
		for _, pat := range ri.Patterns {
			re, err := regexp.Compile(pat)
			if err != nil {
				return nil, fmt.Errorf("intentpack: intent %q pattern %q: %w", ri.Intent, pat, err)
			}
			r.Compiled = append(r.Compiled, re)
		}
		if len(r.Compiled) == 0 {
			return nil, fmt.Errorf("intentpack: intent %q has no patterns", ri.Intent)
		}
		p.index[ri.Intent] = len(p.Rules)
		p.Rules = append(p.Rules, r)
	}

	return p, nil
}

// MustLoad panics on load failure (boot-time convenience)
func MustLoad() *Pack {
	p, err := Load()
	if err != nil {
		panic(err)
	}
	return p
}

// Has reports whether the pack declares the given intent
func (p *Pack) Has(intent string) bool {
	_, ok := p.index[intent]
	return ok
}

// Position returns the declaration position of intent, or -1 when absent
func (p *Pack) Position(intent string) int {
	if i, ok := p.index[intent]; ok {
		return i
	}
	return -1
}
