package grammar

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"
	"gitlab.mdcatapult.io/informatics/software-engineering/grammar-analyzer/lib/cache"
)

const cacheNamespace = "grammar"

// CachedChecker is a read-through cache in front of a Checker. Matches are
// stored per language and text. Cache failures are logged and the wrapped
// checker is used instead; they never fail a check.
type CachedChecker struct {
	Checker  Checker
	Cache    cache.Client
	Language string
}

func NewCachedChecker(checker Checker, client cache.Client, language string) *CachedChecker {
	return &CachedChecker{
		Checker:  checker,
		Cache:    client,
		Language: language,
	}
}

func (c *CachedChecker) Check(ctx context.Context, text string) ([]Match, error) {
	key := cache.Key(cacheNamespace, c.Language, text)

	b, ok, err := c.Cache.Get(ctx, key)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("grammar cache lookup failed")
	} else if ok {
		var matches []Match
		decodeErr := json.Unmarshal(b, &matches)
		if decodeErr == nil {
			log.Debug().Str("key", key).Msg("grammar cache hit")
			return matches, nil
		}
		log.Warn().Err(decodeErr).Str("key", key).Msg("discarding undecodable grammar cache entry")
	}

	matches, err := c.Checker.Check(ctx, text)
	if err != nil {
		return nil, err
	}

	if b, err = json.Marshal(matches); err != nil {
		return matches, nil
	}
	if err := c.Cache.Set(ctx, key, b); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("grammar cache store failed")
	}

	return matches, nil
}
