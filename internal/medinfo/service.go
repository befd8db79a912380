package medinfo

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -destination=mocks/generator.go -package=mocks medmarket/internal/medinfo Generator

const (
	TextNotConfigured = "API Key not configured. Cannot fetch medicine information."
	TextFailed        = "An error occurred while fetching medicine information. Please try again later."
	TextNoInfo        = "Could not retrieve information for this medicine."

	DefaultTimeout = 30 * time.Second
)

// Generator внешний генератор текста по запросу
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Service справка о лекарстве для покупателя. Ошибки внешнего сервиса
// не возвращаются вызывающему, вместо них отдаётся текст-заглушка.
type Service struct {
	gen     Generator
	timeout time.Duration
	cache   *lru.Cache
	group   singleflight.Group
}

// NewService gen может быть nil, если ключ API не задан. cacheSize <= 0 отключает кэш.
func NewService(gen Generator, timeout time.Duration, cacheSize int) (*Service, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	s := &Service{gen: gen, timeout: timeout}
	if cacheSize > 0 {
		c, err := lru.New(cacheSize)
		if err != nil {
			return nil, fmt.Errorf("medinfo cache: %w", err)
		}
		s.cache = c
	}
	return s, nil
}

// Configured сообщает, подключён ли генератор
func (s *Service) Configured() bool { return s.gen != nil }

// Describe возвращает краткое описание лекарства в простом markdown
func (s *Service) Describe(ctx context.Context, name string) string {
	name = strings.TrimSpace(name)
	if s.gen == nil {
		return TextNotConfigured
	}
	if name == "" {
		return TextNoInfo
	}
	key := strings.ToLower(name)
	if s.cache != nil {
		if v, ok := s.cache.Get(key); ok {
			return v.(string)
		}
	}

	// shared by every waiter, so one caller going away must not cancel it
	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
		defer cancel()
		return s.gen.Generate(ctx, Prompt(name))
	})
	if err != nil {
		log.Printf("medinfo: lookup %q failed: %v", name, err)
		return TextFailed
	}
	text := strings.TrimSpace(v.(string))
	if text == "" {
		return TextNoInfo
	}
	if s.cache != nil {
		s.cache.Add(key, text)
	}
	return text
}

func Prompt(name string) string {
	return fmt.Sprintf("You are a helpful pharmacy assistant. Provide a brief, easy-to-understand description "+
		"for the medicine %q. Include its primary use, how to take it, and common side effects. "+
		"Format the response in simple markdown. Keep the response to 4-5 sentences.", name)
}
