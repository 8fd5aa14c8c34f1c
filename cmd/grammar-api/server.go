package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/ioutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gitlab.mdcatapult.io/informatics/software-engineering/grammar-analyzer/lib"
	"gitlab.mdcatapult.io/informatics/software-engineering/grammar-analyzer/lib/text"
)

const (
	textField = "text"
	wordField = "word"

	requestIDHeader = "X-Request-ID"
	toolMessage     = "Tool is working"
)

var (
	errInternal = errors.New("Internal server error")
)

type HttpError struct {
	code int
	error
}

func (e HttpError) Error() string {
	return e.error.Error()
}

func NewHttpError(code int, err error) HttpError {
	return HttpError{
		code:  code,
		error: err,
	}
}

type server struct {
	controller      controller
	enableConjugate bool
}

func (s server) RegisterRoutes(r *gin.Engine) {
	r.POST("/analyze", requireField(textField), s.Analyze)
	r.POST("/display", requireField(textField), s.Display)
	if s.enableConjugate {
		r.POST("/conjugate", requireField(wordField), s.Conjugate)
	}
	r.GET("/tool", s.Tool)
}

func (s server) Analyze(c *gin.Context) {
	result, err := s.controller.Analyze(c.Request.Context(), c.GetString(textField))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(200, result)
}

func (s server) Display(c *gin.Context) {
	markup, err := s.controller.Display(c.Request.Context(), c.GetString(textField))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(200, gin.H{"svg": markup})
}

func (s server) Conjugate(c *gin.Context) {
	c.JSON(200, s.controller.Conjugate(c.GetString(wordField)))
}

func (s server) Tool(c *gin.Context) {
	c.String(200, toolMessage)
}

// requireField reads field from the request body into the gin context. JSON bodies
// carry it as a member of an object; for text/plain and text/html the whole body is
// the value, with markup stripped from html. Only a missing or empty field is a
// client error; a body that cannot be read is an internal failure.
func requireField(field string) gin.HandlerFunc {
	missing := NewHttpError(400, fmt.Errorf("No %s provided", field))
	return func(c *gin.Context) {
		if c.Request.Body == nil {
			handleError(c, missing)
			return
		}

		var value string
		switch c.ContentType() {
		case "text/plain":
			b, err := ioutil.ReadAll(c.Request.Body)
			if err != nil {
				handleError(c, err)
				return
			}
			value = string(b)
		case "text/html":
			t, err := text.HTMLToText(c.Request.Body)
			if err != nil {
				handleError(c, err)
				return
			}
			value = t
		default:
			var body map[string]json.RawMessage
			err := json.NewDecoder(c.Request.Body).Decode(&body)
			if err != nil && err != io.EOF {
				handleError(c, fmt.Errorf("decode request body: %w", err))
				return
			}
			if raw, ok := body[field]; ok && string(raw) != "null" {
				if err := json.Unmarshal(raw, &value); err != nil {
					handleError(c, fmt.Errorf("decode %s: %w", field, err))
					return
				}
			}
		}

		if value == "" {
			handleError(c, missing)
			return
		}

		c.Set(field, value)
		c.Next()
	}
}

func requestID(c *gin.Context) {
	id := c.GetHeader(requestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Set(lib.RequestIDKey, id)
	c.Header(requestIDHeader, id)
	c.Next()
}

func recoverPanic(c *gin.Context, recovered interface{}) {
	handleError(c, fmt.Errorf("panic: %v", recovered))
}

func handleError(c *gin.Context, err error) {
	if err == nil {
		err = errors.New("abort called on nil error")
	}
	switch e := err.(type) {
	case HttpError:
		abort(c, e.code, e.error)
	default:
		log.Error().Err(err).Str(lib.RequestIDKey, c.GetString(lib.RequestIDKey)).Str("path", c.FullPath()).Msg("request failed")
		abort(c, 500, errInternal)
	}
}

func abort(c *gin.Context, code int, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(code, gin.H{"error": err.Error()})
}
