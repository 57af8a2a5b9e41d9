package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Logger/LogEntry/Fields 暴露底层类型，避免调用方直接依赖 logrus 包。
type Logger = logrus.Logger
type LogEntry = logrus.Entry
type Fields = logrus.Fields

// DefaultLogPath 默认日志文件路径。
const DefaultLogPath = "logs/msgstack.log"

const componentKey = "component"

var rootLogger = logrus.StandardLogger()

// Configure 设置全局日志格式与 caller 输出。
func Configure() {
	configure(root())
}

func configure(l *logrus.Logger) {
	l.SetReportCaller(true)
	l.SetFormatter(PlainFormatter{})
}

// SetupFile 将全局日志输出重定向到 logPath，空串使用 DefaultLogPath。
// 返回文件 closer 与实际路径。
func SetupFile(logPath string) (io.Closer, string, error) {
	f, resolved, err := openLogFile(logPath)
	if err != nil {
		return nil, "", err
	}
	root().SetOutput(f)
	return f, resolved, nil
}

// SetupComponentFile 创建写入独立文件的 logger，级别跟随全局 logger。
func SetupComponentFile(component, logPath string) (*LogEntry, io.Closer, string, error) {
	f, resolved, err := openLogFile(logPath)
	if err != nil {
		return nil, nil, "", err
	}
	l := logrus.New()
	configure(l)
	l.SetOutput(f)
	l.SetLevel(root().GetLevel())
	return withComponent(logrus.NewEntry(l), component), f, resolved, nil
}

// SetLevel 按名称设置全局日志级别，空串保持不变。
func SetLevel(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return fmt.Errorf("parse log level %q: %w", name, err)
	}
	root().SetLevel(level)
	return nil
}

// Root 返回全局共享的 logger。
func Root() *Logger {
	return root()
}

// SetRoot 覆盖全局 logger，nil 重置为标准 logger。
func SetRoot(l *Logger) {
	if l == nil {
		l = logrus.StandardLogger()
	}
	rootLogger = l
}

// Named 为组件创建入口。
func Named(component string) *LogEntry {
	return withComponent(logrus.NewEntry(root()), component)
}

func withComponent(entry *LogEntry, component string) *LogEntry {
	if component == "" {
		return entry
	}
	return entry.WithField(componentKey, component)
}

func root() *logrus.Logger {
	if rootLogger == nil {
		rootLogger = logrus.StandardLogger()
	}
	return rootLogger
}

// PlainFormatter 输出单行日志：caller [timestamp] [LEVEL] [component] message k=v...
// 字段按键名排序。
type PlainFormatter struct{}

// Format 实现 logrus.Formatter。
func (PlainFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	if entry == nil {
		return []byte{}, nil
	}
	var sb strings.Builder
	if caller := callerOf(entry); caller != "" {
		sb.WriteString(caller)
		sb.WriteByte(' ')
	}
	fmt.Fprintf(&sb, "[%s] [%s] ", entry.Time.UTC().Format(time.RFC3339Nano), strings.ToUpper(entry.Level.String()))
	if component, _ := entry.Data[componentKey].(string); component != "" {
		fmt.Fprintf(&sb, "[%s] ", component)
	}
	sb.WriteString(entry.Message)
	writeFields(&sb, entry.Data)
	sb.WriteByte('\n')
	return []byte(sb.String()), nil
}

func callerOf(entry *logrus.Entry) string {
	if entry.HasCaller() && entry.Caller != nil {
		return fmt.Sprintf("%s:%d", shortenFilePath(entry.Caller.File), entry.Caller.Line)
	}
	caller, _ := entry.Data["caller"].(string)
	return caller
}

func writeFields(sb *strings.Builder, fields logrus.Fields) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		if k != componentKey && k != "caller" {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	for _, k := range keys {
		fmt.Fprintf(sb, " %s=%v", k, fields[k])
	}
}

func shortenFilePath(file string) string {
	file = filepath.ToSlash(file)
	for _, marker := range []string{"/internal/", "/cmd/"} {
		if idx := strings.Index(file, marker); idx != -1 {
			return file[idx+1:]
		}
	}
	if _, rest, ok := strings.Cut(file, "/msgstack/"); ok {
		return rest
	}
	return filepath.Base(file)
}

func openLogFile(logPath string) (*os.File, string, error) {
	if logPath == "" {
		logPath = DefaultLogPath
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return nil, "", fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, "", fmt.Errorf("open log file: %w", err)
	}
	return f, logPath, nil
}
