package trakt

import (
	"bytes"
	"context"
	"encoding/gob"
	"net/url"
	"time"

	"github.com/PuerkitoBio/purell"
	"github.com/dgraph-io/badger/v4"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var errPageNotCached = badger.ErrKeyNotFound

// how long a fetched page stays memoized. the cache exists to avoid
// re-fetching and re-decoding the same page inside one process run, not
// to persist anything, so the lifetime is short and the store in-memory.
const pageLifetime = int64(5 * time.Minute / time.Second)

type cachedPage struct {
	Body      string
	ExpiresAt int64
}

type pageCache struct {
	db      *badger.DB
	baseUrl *url.URL
}

func newPageCache(baseUrl *url.URL) (pageCache, error) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return pageCache{}, err
	}
	return pageCache{db: db, baseUrl: baseUrl}, nil
}

func (c pageCache) key(endpoint string) (string, error) {
	full, err := c.baseUrl.Parse(endpoint)
	if err != nil {
		return "", err
	}
	normalized := purell.NormalizeURL(
		full,
		purell.FlagsSafe|
			purell.FlagsUsuallySafeNonGreedy|
			purell.FlagRemoveDirectoryIndex|
			purell.FlagRemoveFragment|
			purell.FlagSortQuery,
	)
	return normalized, nil
}

func (c pageCache) get(ctx context.Context, endpoint string) (cachedPage, error) {
	_, span := tracer.Start(ctx, "cache:get")
	defer span.End()

	key, err := c.key(endpoint)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to create cache key")
		return cachedPage{}, err
	}
	span.SetAttributes(attribute.String("cache_key", key))

	tx := c.db.NewTransaction(false)
	defer tx.Discard()
	item, err := tx.Get([]byte(key))
	if err == badger.ErrKeyNotFound {
		return cachedPage{}, errPageNotCached
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to read cached page")
		return cachedPage{}, err
	}
	serialized, err := item.ValueCopy(nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to copy cached page")
		return cachedPage{}, err
	}

	var cached cachedPage
	decoder := gob.NewDecoder(bytes.NewBuffer(serialized))
	if err := decoder.Decode(&cached); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to deserialize cached page")
		return cachedPage{}, err
	}

	if time.Now().Unix() >= cached.ExpiresAt {
		wtx := c.db.NewTransaction(true)
		defer wtx.Discard()
		if err := wtx.Delete([]byte(key)); err != nil {
			span.RecordError(err)
		} else if err := wtx.Commit(); err != nil {
			span.RecordError(err)
		}
		span.SetStatus(codes.Ok, "CACHE EXPIRED")
		return cachedPage{}, errPageNotCached
	}

	span.SetStatus(codes.Ok, "CACHE HIT")
	return cached, nil
}

func (c pageCache) set(ctx context.Context, endpoint string, page cachedPage) error {
	_, span := tracer.Start(ctx, "cache:set")
	defer span.End()

	key, err := c.key(endpoint)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to create cache key")
		return err
	}
	span.SetAttributes(attribute.String("cache_key", key))

	serialized := bytes.NewBuffer(nil)
	if err := gob.NewEncoder(serialized).Encode(page); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to serialize page")
		return err
	}

	tx := c.db.NewTransaction(true)
	defer tx.Discard()
	if err := tx.Set([]byte(key), serialized.Bytes()); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to store page")
		return err
	}
	if err := tx.Commit(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to commit page")
		return err
	}
	return nil
}
