// Package telemetry is the ambient logging stack shared by every orchestrator
// component. It mirrors the teacher's zap+BetterStack split: structured
// events go to zap for console/file visibility and, in production, also to
// a Better Stack HTTP ingest endpoint.
package telemetry

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// entry is a single structured log line shipped to Better Stack.
type entry struct {
	Timestamp  string         `json:"timestamp"`
	Level      string         `json:"level"`
	Message    string         `json:"message"`
	Component  string         `json:"component"`
	Attributes map[string]any `json:"attributes"`
}

// Logger wraps a zap logger and, in production, fans entries out to Better
// Stack. In development it appends to a local file instead of calling out
// over the network.
type Logger struct {
	zap         *zap.Logger
	environment string
	uploadURL   string
	sourceToken string
	client      *http.Client
	fileWriter  io.Writer
	fileMu      sync.Mutex
}

// New builds a Logger for the given environment ("development" or
// "production"). uploadURL/sourceToken are only used in production.
func New(environment, uploadURL, sourceToken string) (*Logger, error) {
	var zl *zap.Logger
	var err error
	if environment == "development" {
		zl, err = zap.NewDevelopment()
	} else {
		zl, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}

	l := &Logger{
		zap:         zl,
		environment: environment,
		uploadURL:   uploadURL,
		sourceToken: sourceToken,
	}

	if environment == "development" {
		f, ferr := os.OpenFile("app.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if ferr != nil {
			l.fileWriter = os.Stderr
		} else {
			l.fileWriter = f
		}
	} else {
		l.client = &http.Client{Timeout: 10 * time.Second}
	}

	return l, nil
}

// Sync flushes the underlying zap logger.
func (l *Logger) Sync() { _ = l.zap.Sync() }

// Named scopes subsequent log lines to a component name.
func (l *Logger) Named(component string) *Component {
	return &Component{logger: l, component: component}
}

// Component is a Logger bound to a fixed component name.
type Component struct {
	logger    *Logger
	component string
}

func (c *Component) Debug(msg string, attrs map[string]any) { c.log(zapcore.DebugLevel, msg, attrs) }
func (c *Component) Info(msg string, attrs map[string]any)  { c.log(zapcore.InfoLevel, msg, attrs) }
func (c *Component) Warn(msg string, attrs map[string]any)  { c.log(zapcore.WarnLevel, msg, attrs) }
func (c *Component) Error(msg string, err error, attrs map[string]any) {
	if attrs == nil {
		attrs = make(map[string]any)
	}
	if err != nil {
		attrs["error"] = err.Error()
	}
	c.log(zapcore.ErrorLevel, msg, attrs)
}

func (c *Component) log(level zapcore.Level, msg string, attrs map[string]any) {
	if attrs == nil {
		attrs = make(map[string]any)
	}

	fields := make([]zap.Field, 0, len(attrs)+1)
	fields = append(fields, zap.String("component", c.component))
	for k, v := range attrs {
		fields = append(fields, zap.Any(k, v))
	}
	c.logger.zap.Log(level, msg, fields...)

	if c.logger.environment != "production" || c.logger.uploadURL == "" {
		c.writeLocal(level, msg, attrs)
		return
	}
	c.ship(level, msg, attrs)
}

func (c *Component) writeLocal(level zapcore.Level, msg string, attrs map[string]any) {
	if c.logger.fileWriter == nil {
		return
	}
	e := entry{
		Timestamp:  time.Now().UTC().Format(time.RFC3339Nano),
		Level:      level.CapitalString(),
		Message:    msg,
		Component:  c.component,
		Attributes: attrs,
	}
	body, err := json.Marshal(e)
	if err != nil {
		return
	}
	c.logger.fileMu.Lock()
	defer c.logger.fileMu.Unlock()
	_, _ = c.logger.fileWriter.Write(append(body, '\n'))
}

func (c *Component) ship(level zapcore.Level, msg string, attrs map[string]any) {
	e := entry{
		Timestamp:  time.Now().UTC().Format(time.RFC3339Nano),
		Level:      level.CapitalString(),
		Message:    msg,
		Component:  c.component,
		Attributes: attrs,
	}
	body, err := json.Marshal(e)
	if err != nil {
		return
	}

	req, err := http.NewRequest(http.MethodPost, c.logger.uploadURL, bytes.NewReader(body))
	if err != nil {
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.logger.sourceToken)

	go func() {
		resp, err := c.logger.client.Do(req)
		if err != nil {
			return
		}
		defer resp.Body.Close()
	}()
}
