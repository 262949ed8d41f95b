package session

import (
	"sync"

	"github.com/abhisek/bizpro/internal/bank"
	"github.com/abhisek/bizpro/internal/preset"
)

// Catalog resolves preset names and loads each preset's bank once.
type Catalog struct {
	mu    sync.Mutex
	banks map[string]*bank.Bank
}

func NewCatalog() *Catalog {
	return &Catalog{banks: make(map[string]*bank.Bank)}
}

func (c *Catalog) Resolve(name string) (*preset.Preset, *bank.Bank, error) {
	p, err := preset.Get(name)
	if err != nil {
		return nil, nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if b, ok := c.banks[p.Name]; ok {
		return p, b, nil
	}
	b, err := p.LoadBank()
	if err != nil {
		return nil, nil, err
	}
	c.banks[p.Name] = b
	return p, b, nil
}
