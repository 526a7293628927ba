// Package cache хранит отрендеренные ответы GET запросов по пути и позволяет пометить путь устаревшим.
package cache

import (
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	defaultSize = 256
	defaultTTL  = 10 * time.Minute
)

// Entry закешированный ответ.
type Entry struct {
	Status      int
	ContentType string
	Body        []byte
}

// PathCache потокобезопасный LRU кеш с ограничением времени жизни записей. Ключ - путь запроса вместе с query,
// инвалидация выполняется по пути без учета query.
//
// Каждая инвалидация увеличивает поколение пути. Ответ, рассчитанный до инвалидации, не сохраняется:
// SetIfFresh сверяет поколение, прочитанное до похода в хранилище.
type PathCache struct {
	lru *expirable.LRU[string, Entry]

	mu          sync.Mutex
	generations map[string]uint64
}

// New создает кеш. Нулевые size и ttl заменяются значениями по умолчанию.
func New(size int, ttl time.Duration) *PathCache {
	if size <= 0 {
		size = defaultSize
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &PathCache{
		lru:         expirable.NewLRU[string, Entry](size, nil, ttl),
		generations: make(map[string]uint64),
	}
}

// Key собирает ключ кеша из пути и сырой строки query.
func Key(path, rawQuery string) string {
	if rawQuery == "" {
		return path
	}
	return path + "?" + rawQuery
}

func (c *PathCache) Get(key string) (Entry, bool) {
	return c.lru.Get(key)
}

func (c *PathCache) Set(key string, entry Entry) {
	c.lru.Add(key, entry)
}

// Generation возвращает текущее поколение path. Читается до расчета ответа и передается в SetIfFresh.
func (c *PathCache) Generation(path string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generations[normalizePath(path)]
}

// SetIfFresh сохраняет запись, только если путь ключа не инвалидировался с момента чтения generation.
func (c *PathCache) SetIfFresh(key string, generation uint64, entry Entry) bool {
	keyPath, _, _ := strings.Cut(key, "?")

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generations[normalizePath(keyPath)] != generation {
		return false
	}
	c.lru.Add(key, entry)
	return true
}

// RevalidatePath удаляет все записи для path независимо от query. Следующий запрос пересчитает ответ,
// а ответы, рассчитанные до вызова, в кеш уже не попадут.
func (c *PathCache) RevalidatePath(path string) {
	path = normalizePath(path)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.generations[path]++
	for _, key := range c.lru.Keys() {
		keyPath, _, _ := strings.Cut(key, "?")
		if normalizePath(keyPath) == path {
			c.lru.Remove(key)
		}
	}
}

func (c *PathCache) Len() int {
	return c.lru.Len()
}

func normalizePath(path string) string {
	if len(path) > 1 {
		return strings.TrimRight(path, "/")
	}
	return path
}
