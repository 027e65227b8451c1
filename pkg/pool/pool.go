// Package pool provides the candidate-enumeration side of the host
// protocol for the standalone server and CLI: a patricia-trie backed
// word pool loaded from a word-frequency file. The ranking core itself
// stays pool-agnostic and takes any in-memory candidate slice per call.
package pool

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/jimeh/fussy/pkg/fussy"
)

// Pool is an in-memory candidate source. Frequencies ride along as
// candidate payloads and are opaque to the ranking pipeline.
type Pool struct {
	trie *patricia.Trie
	size int
}

// New creates an empty pool.
func New() *Pool {
	return &Pool{trie: patricia.NewTrie()}
}

// Add inserts a word with its frequency. Re-adding a word overwrites the
// stored frequency without growing the pool.
func (p *Pool) Add(word string, freq int) {
	if word == "" {
		return
	}
	key := patricia.Prefix(word)
	if !p.trie.Match(key) {
		p.size++
	}
	p.trie.Set(key, freq)
}

// Size returns the number of distinct words in the pool.
func (p *Pool) Size() int {
	return p.size
}

// All returns every candidate in the pool. The fuzzy pipeline does its
// own filtering, so enumeration stays unrestricted; the partitioner is
// what bounds scoring cost on large pools.
func (p *Pool) All() []fussy.Candidate {
	candidates := make([]fussy.Candidate, 0, p.size)
	err := p.trie.Visit(func(prefix patricia.Prefix, item patricia.Item) error {
		candidates = append(candidates, fussy.Candidate{
			Text:    string(prefix),
			Payload: itemFreq(item, prefix),
		})
		return nil
	})
	if err != nil {
		log.Errorf("visiting trie: %v", err)
	}
	return candidates
}

// Enumerate returns the candidates sharing a literal prefix. Used when
// the host narrows the pool before fuzzy ranking.
func (p *Pool) Enumerate(prefix string) []fussy.Candidate {
	var candidates []fussy.Candidate
	err := p.trie.VisitSubtree(patricia.Prefix(prefix), func(pr patricia.Prefix, item patricia.Item) error {
		candidates = append(candidates, fussy.Candidate{
			Text:    string(pr),
			Payload: itemFreq(item, pr),
		})
		return nil
	})
	if err != nil {
		log.Errorf("visiting trie subtree: %v", err)
	}
	return candidates
}

// LoadFile reads a word list, one entry per line, either "word" or
// "word<TAB>frequency". Blank lines and #-comments are skipped.
func (p *Pool) LoadFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.Errorf("closing word list: %v", err)
		}
	}()

	scanner := bufio.NewScanner(file)
	lines := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		word := line
		freq := 1
		if tab := strings.IndexByte(line, '\t'); tab >= 0 {
			word = line[:tab]
			if n, err := strconv.Atoi(strings.TrimSpace(line[tab+1:])); err == nil && n > 0 {
				freq = n
			}
		}
		p.Add(word, freq)
		lines++
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	log.Debugf("loaded %d entries from %s", lines, path)
	return nil
}

func itemFreq(item patricia.Item, prefix patricia.Prefix) int {
	switch v := item.(type) {
	case int:
		return v
	case int32:
		return int(v)
	case uint32:
		return int(v)
	case float64:
		return int(v)
	default:
		log.Errorf("Unknown item type: %T for word %s", item, prefix)
		return 1
	}
}
