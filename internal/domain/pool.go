package domain

import (
	"errors"
	"fmt"
)

// ErrPoolNotFound возвращается при обращении к неизвестному пулу номеров
var ErrPoolNotFound = errors.New("domain: room pool not found")

// Pool независимый пул взаимозаменяемых номеров с фиксированной ёмкостью
// (например, отдельный корпус или крыло)
type Pool struct {
	Name     string
	Capacity int
}

// PoolSet набор пулов деплоймента. Ёмкости задаются конфигурацией,
// не константами в коде.
type PoolSet struct {
	pools       map[string]Pool
	defaultPool string
}

// NewPoolSet создает набор пулов. defaultPool используется, когда запрос
// не указывает пул явно.
func NewPoolSet(pools []Pool, defaultPool string) (*PoolSet, error) {
	if len(pools) == 0 {
		return nil, fmt.Errorf("domain: pool set must contain at least one pool")
	}

	byName := make(map[string]Pool, len(pools))
	for _, p := range pools {
		if p.Name == "" {
			return nil, fmt.Errorf("domain: pool name must not be empty")
		}
		if p.Capacity < 1 {
			return nil, fmt.Errorf("domain: pool %q capacity must be positive, got %d", p.Name, p.Capacity)
		}
		if _, exists := byName[p.Name]; exists {
			return nil, fmt.Errorf("domain: duplicate pool %q", p.Name)
		}
		byName[p.Name] = p
	}

	if defaultPool == "" {
		defaultPool = pools[0].Name
	}
	if _, ok := byName[defaultPool]; !ok {
		return nil, fmt.Errorf("domain: default pool %q is not in the pool set", defaultPool)
	}

	return &PoolSet{pools: byName, defaultPool: defaultPool}, nil
}

// Get возвращает пул по имени. Пустое имя означает пул по умолчанию.
func (s *PoolSet) Get(name string) (Pool, error) {
	if name == "" {
		name = s.defaultPool
	}
	p, ok := s.pools[name]
	if !ok {
		return Pool{}, fmt.Errorf("%w: %q", ErrPoolNotFound, name)
	}
	return p, nil
}

// DefaultName возвращает имя пула по умолчанию
func (s *PoolSet) DefaultName() string {
	return s.defaultPool
}

// Names возвращает имена всех пулов
func (s *PoolSet) Names() []string {
	names := make([]string, 0, len(s.pools))
	for name := range s.pools {
		names = append(names, name)
	}
	return names
}
