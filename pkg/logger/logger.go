// Package logger 基于log/slog的结构化日志
//
// 使用方式:
//
//	log, closer, err := logger.New(logger.Config{Level: "info", Format: "json", Output: "stdout"})
//	log.Info("服务启动", "port", 8080)
//
// 请求级日志通过WithRequestID/FromContext携带request_id字段。
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Config 日志配置
type Config struct {
	Level     string // debug | info | warn | error
	Format    string // console | json
	Output    string // stdout | stderr | /path/to/file
	AddSource bool   // 是否输出调用位置
}

// New 创建日志记录器并设置为slog默认Logger
// 返回的io.Closer用于关闭日志文件(输出到stdout/stderr时为空操作)
func New(cfg Config) (*slog.Logger, io.Closer, error) {
	w, closer, err := openOutput(cfg.Output)
	if err != nil {
		return nil, nil, err
	}

	l := slog.New(newHandler(w, cfg))
	slog.SetDefault(l)
	return l, closer, nil
}

// NewWithWriter 使用指定Writer创建日志记录器(测试使用)
func NewWithWriter(w io.Writer, cfg Config) *slog.Logger {
	return slog.New(newHandler(w, cfg))
}

func newHandler(w io.Writer, cfg Config) slog.Handler {
	opts := &slog.HandlerOptions{
		Level:     ParseLevel(cfg.Level),
		AddSource: cfg.AddSource,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			// 只保留文件名,避免打印本机绝对路径
			if a.Key == slog.SourceKey {
				if source, ok := a.Value.Any().(*slog.Source); ok {
					source.File = filepath.Base(source.File)
				}
			}
			return a
		},
	}

	if strings.EqualFold(cfg.Format, "json") {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// ParseLevel 字符串转slog.Level,无法识别时返回Info
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func openOutput(output string) (io.Writer, io.Closer, error) {
	switch output {
	case "", "stdout":
		return os.Stdout, nopCloser{}, nil
	case "stderr":
		return os.Stderr, nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return nil, nil, fmt.Errorf("创建日志目录失败: %w", err)
	}
	f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("打开日志文件失败: %w", err)
	}
	return f, f, nil
}

// =========================================
// 请求级上下文
// =========================================

type ctxKey struct{}

// WithRequestID 将request_id写入context,后续FromContext取到的Logger自动携带该字段
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, requestID)
}

// RequestID 读取context中的request_id
func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(ctxKey{}).(string); ok {
		return id
	}
	return ""
}

// FromContext 返回带request_id字段的默认Logger
func FromContext(ctx context.Context) *slog.Logger {
	l := slog.Default()
	if id := RequestID(ctx); id != "" {
		return l.With("request_id", id)
	}
	return l
}
