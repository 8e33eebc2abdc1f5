// Package logging provides the minimal structured logging interface used
// across the service, plus a production logger that emits text locally
// and JSON when running under Kubernetes.
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Logger is the minimal logging interface components accept.
type Logger interface {
	Info(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Debug(msg string, fields map[string]interface{})
}

// NoOpLogger discards everything. Useful as a default and in tests.
type NoOpLogger struct{}

func (NoOpLogger) Info(msg string, fields map[string]interface{})  {}
func (NoOpLogger) Error(msg string, fields map[string]interface{}) {}
func (NoOpLogger) Warn(msg string, fields map[string]interface{})  {}
func (NoOpLogger) Debug(msg string, fields map[string]interface{}) {}

var levelOrder = map[string]int{
	"DEBUG": 0,
	"INFO":  1,
	"WARN":  2,
	"ERROR": 3,
}

// ServiceLogger is the production logger.
//
// Configuration priority:
//  1. Explicit options (highest)
//  2. Environment variables (LOG_LEVEL, LOG_FORMAT)
//  3. Auto-detection (JSON format under Kubernetes)
//  4. Defaults (INFO, text)
type ServiceLogger struct {
	mu      sync.Mutex
	service string
	level   int
	format  string
	output  io.Writer
}

// Options configures a ServiceLogger. Zero values defer to environment
// variables and defaults.
type Options struct {
	Level  string
	Format string // "text" or "json"
	Output io.Writer
}

// New creates a ServiceLogger for the named service.
func New(service string, opts Options) *ServiceLogger {
	level := opts.Level
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	if level == "" {
		level = "INFO"
	}

	format := opts.Format
	if format == "" {
		format = os.Getenv("LOG_FORMAT")
	}
	if format == "" {
		// JSON in K8s for log aggregation, text for local dev.
		if os.Getenv("KUBERNETES_SERVICE_HOST") != "" {
			format = "json"
		} else {
			format = "text"
		}
	}

	output := opts.Output
	if output == nil {
		output = os.Stdout
	}

	lv, ok := levelOrder[strings.ToUpper(level)]
	if !ok {
		lv = levelOrder["INFO"]
	}

	return &ServiceLogger{
		service: service,
		level:   lv,
		format:  format,
		output:  output,
	}
}

func (l *ServiceLogger) Info(msg string, fields map[string]interface{}) {
	l.log("INFO", msg, fields)
}

func (l *ServiceLogger) Error(msg string, fields map[string]interface{}) {
	l.log("ERROR", msg, fields)
}

func (l *ServiceLogger) Warn(msg string, fields map[string]interface{}) {
	l.log("WARN", msg, fields)
}

func (l *ServiceLogger) Debug(msg string, fields map[string]interface{}) {
	l.log("DEBUG", msg, fields)
}

func (l *ServiceLogger) log(level, msg string, fields map[string]interface{}) {
	if levelOrder[level] < l.level {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now().UTC().Format(time.RFC3339)

	if l.format == "json" {
		entry := map[string]interface{}{
			"timestamp": now,
			"level":     level,
			"service":   l.service,
			"message":   msg,
		}
		for k, v := range fields {
			entry[k] = v
		}
		if data, err := json.Marshal(entry); err == nil {
			fmt.Fprintln(l.output, string(data))
		}
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s [%s] %s: %s", now, level, l.service, msg)
	for k, v := range fields {
		fmt.Fprintf(&sb, " %s=%v", k, v)
	}
	fmt.Fprintln(l.output, sb.String())
}
