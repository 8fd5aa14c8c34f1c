package grpc_parser

import (
	"context"
	"encoding/json"
	"fmt"

	"gitlab.mdcatapult.io/informatics/software-engineering/grammar-analyzer/lib/nlp"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// ParseMethod is the full name of the unary parse rpc. Requests and responses
// are google.protobuf.Struct messages carrying the same fields as the http parser.
const ParseMethod = "/nlp.Parser/Parse"

// NewParser returns a parser which calls a remote parsing service over conn.
func NewParser(conn grpc.ClientConnInterface, model string) nlp.Parser {
	return &parser{
		conn:  conn,
		Model: model,
	}
}

type parser struct {
	conn  grpc.ClientConnInterface
	Model string
}

func (p *parser) Parse(ctx context.Context, text string) (*nlp.Doc, error) {
	req, err := structpb.NewStruct(map[string]interface{}{
		"text":  text,
		"model": p.Model,
	})
	if err != nil {
		return nil, err
	}

	resp := &structpb.Struct{}
	if err := p.conn.Invoke(ctx, ParseMethod, req, resp); err != nil {
		return nil, fmt.Errorf("parser: %w", err)
	}

	b, err := protojson.Marshal(resp)
	if err != nil {
		return nil, fmt.Errorf("parser: %w", err)
	}

	var doc nlp.Doc
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parser: decode response: %w", err)
	}
	if doc.Text == "" {
		doc.Text = text
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("parser: %w", err)
	}

	return &doc, nil
}
