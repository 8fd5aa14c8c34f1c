package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gitlab.mdcatapult.io/informatics/software-engineering/grammar-analyzer/lib"
	"gitlab.mdcatapult.io/informatics/software-engineering/grammar-analyzer/lib/analysis"
	"gitlab.mdcatapult.io/informatics/software-engineering/grammar-analyzer/lib/cache"
	"gitlab.mdcatapult.io/informatics/software-engineering/grammar-analyzer/lib/cache/local"
	"gitlab.mdcatapult.io/informatics/software-engineering/grammar-analyzer/lib/cache/remote"
	"gitlab.mdcatapult.io/informatics/software-engineering/grammar-analyzer/lib/grammar"
	"gitlab.mdcatapult.io/informatics/software-engineering/grammar-analyzer/lib/grammar/languagetool"
	"gitlab.mdcatapult.io/informatics/software-engineering/grammar-analyzer/lib/nlp"
	grpc_parser "gitlab.mdcatapult.io/informatics/software-engineering/grammar-analyzer/lib/nlp/grpc-parser"
	http_parser "gitlab.mdcatapult.io/informatics/software-engineering/grammar-analyzer/lib/nlp/http-parser"
	"gitlab.mdcatapult.io/informatics/software-engineering/grammar-analyzer/lib/render"
	"gitlab.mdcatapult.io/informatics/software-engineering/grammar-analyzer/lib/sentiment"
	http_sentiment "gitlab.mdcatapult.io/informatics/software-engineering/grammar-analyzer/lib/sentiment/http-sentiment"
	"gitlab.mdcatapult.io/informatics/software-engineering/grammar-analyzer/lib/sentiment/lexicon"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// config structure
type grammarAPIConfig struct {
	lib.BaseConfig `mapstructure:",squash"`
	Server         struct {
		HttpPort        int  `mapstructure:"http_port"`
		EnableConjugate bool `mapstructure:"enable_conjugate"`
	}
	Adapters struct {
		Timeout time.Duration
	}
	Parser struct {
		Transport string
		Url       string
		Host      string
		GrpcPort  int `mapstructure:"grpc_port"`
		Model     string
	}
	LanguageTool languagetool.Config `mapstructure:"languagetool"`
	Sentiment    struct {
		Backend string
		Url     string
		Lexicon string
	}
	RolesFile string `mapstructure:"roles_file"`
	Render    render.Options
	Cache     struct {
		Backend       cache.Type
		Size          int
		Redis         remote.RedisConfig
		Elasticsearch remote.ElasticsearchConfig
	}
}

var config grammarAPIConfig

func initConfig() {
	// Set default config values
	err := lib.InitializeConfig("./config/grammar-api.yml", map[string]interface{}{
		"log_level": "info",
		"server": map[string]interface{}{
			"http_port":        5000,
			"enable_conjugate": false,
		},
		"adapters": map[string]interface{}{
			"timeout": "0s",
		},
		"parser": map[string]interface{}{
			"transport": "http",
			"url":       "http://localhost:8000",
			"host":      "localhost",
			"grpc_port": 50051,
			"model":     "it_core_news_lg",
		},
		"languagetool": map[string]interface{}{
			"url":      languagetool.PublicApiUrl,
			"language": "it",
		},
		"sentiment": map[string]interface{}{
			"backend": "lexicon",
			"url":     "http://localhost:8001/sentiment",
			"lexicon": "",
		},
		"roles_file": "",
		"render": map[string]interface{}{
			"compact":      true,
			"color":        "blue",
			"bg":           "#ffffff",
			"font":         "Arial",
			"fine_grained": false,
			"language":     "it",
		},
		"cache": map[string]interface{}{
			"backend": string(cache.None),
			"size":    10000,
			"redis": map[string]interface{}{
				"host": "localhost",
				"port": 6379,
				"ttl":  "24h",
			},
			"elasticsearch": map[string]interface{}{
				"host":  "localhost",
				"port":  9200,
				"index": "grammar-corrections",
			},
		},
	}, &config)
	if err != nil {
		panic(err)
	}
}

func main() {
	initConfig()

	httpClient := lib.NewHttpClient(config.Adapters.Timeout)

	parser, conn, err := newParser(httpClient)
	if err != nil {
		log.Fatal().Err(err).Send()
	}

	checker, err := newChecker(httpClient)
	if err != nil {
		log.Fatal().Err(err).Send()
	}

	analyzer, err := newAnalyzer(httpClient)
	if err != nil {
		log.Fatal().Err(err).Send()
	}

	mapper, err := analysis.LoadMapper(config.RolesFile)
	if err != nil {
		log.Fatal().Err(err).Send()
	}

	s := server{
		controller: controller{
			parser:   parser,
			checker:  checker,
			analyzer: analyzer,
			renderer: render.NewDependency(config.Render),
			mapper:   mapper,
		},
		enableConjugate: config.Server.EnableConjugate,
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", config.Server.HttpPort),
		Handler: newRouter(s),
	}

	ctx, cancel := lib.InterruptContext()
	defer cancel()

	go func() {
		log.Info().Int("port", config.Server.HttpPort).Msg("starting grammar api")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Send()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http server shutdown")
	}
	if conn != nil {
		if err := conn.Close(); err != nil {
			log.Error().Err(err).Msg("closing parser connection")
		}
	}
}

func newRouter(s server) *gin.Engine {
	r := gin.New()
	r.Use(gin.LoggerWithFormatter(lib.JsonLogFormatter), gin.CustomRecovery(recoverPanic), cors.Default(), requestID)
	s.RegisterRoutes(r)
	return r
}

// newParser returns the parser selected by parser.transport. The grpc connection is
// returned so it can be closed on shutdown; it is nil for the http transport.
func newParser(httpClient lib.HttpClient) (nlp.Parser, *grpc.ClientConn, error) {
	switch config.Parser.Transport {
	case "grpc":
		conn, err := grpc.Dial(
			fmt.Sprintf("%s:%d", config.Parser.Host, config.Parser.GrpcPort),
			grpc.WithTransportCredentials(insecure.NewCredentials()),
		)
		if err != nil {
			return nil, nil, err
		}
		return grpc_parser.NewParser(conn, config.Parser.Model), conn, nil
	case "http":
		return http_parser.NewParser(config.Parser.Url, config.Parser.Model, httpClient), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown parser transport %q", config.Parser.Transport)
	}
}

func newChecker(httpClient lib.HttpClient) (grammar.Checker, error) {
	checker := languagetool.NewClient(config.LanguageTool, httpClient)

	var client cache.Client
	switch config.Cache.Backend {
	case cache.None, "":
		return checker, nil
	case cache.Local:
		client = local.New(config.Cache.Size)
	case cache.Redis:
		client = remote.NewRedisClient(config.Cache.Redis)
	case cache.Elasticsearch:
		var err error
		client, err = remote.NewElasticsearchClient(config.Cache.Elasticsearch)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown cache backend %q", config.Cache.Backend)
	}

	if !client.Ready() {
		log.Warn().Str("backend", string(config.Cache.Backend)).Msg("grammar cache is not ready, corrections will not be cached until it is")
	}
	return grammar.NewCachedChecker(checker, client, config.LanguageTool.Language), nil
}

func newAnalyzer(httpClient lib.HttpClient) (sentiment.Analyzer, error) {
	switch config.Sentiment.Backend {
	case "http":
		return http_sentiment.NewAnalyzer(config.Sentiment.Url, config.LanguageTool.Language, httpClient), nil
	case "lexicon":
		l, err := lexicon.Load(config.Sentiment.Lexicon)
		if err != nil {
			return nil, err
		}
		return l, nil
	default:
		return nil, fmt.Errorf("unknown sentiment backend %q", config.Sentiment.Backend)
	}
}
