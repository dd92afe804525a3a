package recommender

import (
	"container/list"
	"strings"
	"sync"
)

// Expander appends domain synonyms to free-text queries so that short
// requests like "developer" still reach documents written in terms of
// "engineer" or "programmer". Expansions are memoized in a small LRU cache
// keyed by the raw query.
type Expander struct {
	synonyms map[string][]string
	maxAdd   int

	mu      sync.Mutex
	cache   map[string]*list.Element
	order   *list.List
	maxSize int
	hits    int64
}

type cacheEntry struct {
	key   string
	value string
}

// NewExpander builds an expander with the built-in synonym table and an LRU
// memo of the given size.
func NewExpander(cacheSize int) *Expander {
	return &Expander{
		synonyms: synonymTable(),
		maxAdd:   2,
		cache:    make(map[string]*list.Element, cacheSize),
		order:    list.New(),
		maxSize:  cacheSize,
	}
}

// Expand lowercases the query and appends up to two synonyms per matching
// word. Original words keep their order; appended synonyms are de-duplicated
// against everything already present.
func (e *Expander) Expand(query string) string {
	if query == "" {
		return query
	}

	e.mu.Lock()
	if el, ok := e.cache[query]; ok {
		e.order.MoveToFront(el)
		e.hits++
		expanded := el.Value.(*cacheEntry).value
		e.mu.Unlock()
		return expanded
	}
	e.mu.Unlock()

	words := strings.Fields(strings.ToLower(query))
	expanded := make([]string, 0, len(words)*2)
	seen := make(map[string]bool, len(words)*2)
	for _, w := range words {
		expanded = append(expanded, w)
		seen[w] = true
	}
	for _, w := range words {
		syns := e.synonyms[w]
		if len(syns) > e.maxAdd {
			syns = syns[:e.maxAdd]
		}
		for _, s := range syns {
			if !seen[s] {
				expanded = append(expanded, s)
				seen[s] = true
			}
		}
	}
	result := strings.Join(expanded, " ")

	e.mu.Lock()
	e.store(query, result)
	e.mu.Unlock()
	return result
}

// CacheHits reports how many expansions were served from the memo.
func (e *Expander) CacheHits() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.hits
}

// store inserts into the LRU, evicting the least recently used entry when
// full. Callers must hold e.mu.
func (e *Expander) store(key, value string) {
	if el, ok := e.cache[key]; ok {
		e.order.MoveToFront(el)
		el.Value.(*cacheEntry).value = value
		return
	}
	if e.order.Len() >= e.maxSize {
		oldest := e.order.Back()
		if oldest != nil {
			e.order.Remove(oldest)
			delete(e.cache, oldest.Value.(*cacheEntry).key)
		}
	}
	e.cache[key] = e.order.PushFront(&cacheEntry{key: key, value: value})
}

func synonymTable() map[string][]string {
	return map[string][]string{
		"developer":   {"engineer", "programmer", "coder", "software developer"},
		"engineer":    {"developer", "programmer", "technical", "software engineer"},
		"manager":     {"supervisor", "team lead", "director", "head", "leadership"},
		"analyst":     {"data analyst", "business analyst", "researcher"},
		"sales":       {"account manager", "business development", "sales rep"},
		"graduate":    {"entry level", "junior", "trainee", "fresh grad"},
		"leadership":  {"management", "executive", "supervision"},
		"cognitive":   {"reasoning", "intelligence", "aptitude"},
		"hiring":      {"recruitment", "selection", "talent acquisition"},
		"support":     {"help desk", "contact center", "agent", "customer service"},
		"coding":      {"programming", "tech skills", "technical skills"},
		"development": {"learning", "training", "growth", "upskilling"},
	}
}
