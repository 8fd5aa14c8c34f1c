package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"

	"github.com/elastic/go-elasticsearch/v7"
	"gitlab.mdcatapult.io/informatics/software-engineering/grammar-analyzer/lib/cache"
)

type ElasticsearchConfig struct {
	Host  string
	Port  int
	Index string
}

// esDocument is the stored form of a cache entry; the document id is the cache key.
type esDocument struct {
	Value string `json:"value"`
}

type esGetResponse struct {
	Found  bool       `json:"found"`
	Source esDocument `json:"_source"`
}

func NewElasticsearchClient(conf ElasticsearchConfig) (cache.Client, error) {
	c, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{fmt.Sprintf("http://%s:%d", conf.Host, conf.Port)},
	})
	if err != nil {
		return nil, err
	}
	return &esClient{
		Client: c,
		index:  conf.Index,
	}, nil
}

type esClient struct {
	*elasticsearch.Client
	index string
}

func (e *esClient) Ready() bool {
	res, err := e.Info()
	if err != nil {
		return false
	}
	defer res.Body.Close()
	return res.StatusCode == http.StatusOK
}

func (e *esClient) Get(ctx context.Context, key string) ([]byte, bool, error) {
	res, err := e.Client.Get(e.index, key, e.Client.Get.WithContext(ctx))
	if err != nil {
		return nil, false, err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return nil, false, nil
	} else if res.IsError() {
		return nil, false, errors.New(res.String())
	}

	b, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return nil, false, err
	}
	var esResponse esGetResponse
	if err := json.Unmarshal(b, &esResponse); err != nil {
		return nil, false, err
	}
	if !esResponse.Found {
		return nil, false, nil
	}

	return []byte(esResponse.Source.Value), true, nil
}

func (e *esClient) Set(ctx context.Context, key string, value []byte) error {
	body, err := json.Marshal(esDocument{Value: string(value)})
	if err != nil {
		return err
	}

	res, err := e.Index(e.index, bytes.NewReader(body),
		e.Index.WithDocumentID(key),
		e.Index.WithContext(ctx),
	)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		return errors.New(res.String())
	}
	return nil
}
