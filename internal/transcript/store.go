package transcript

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"msgstack/internal/logger"
)

// Entry 是一条聊天记录，按追加顺序即时间顺序存储。
type Entry struct {
	ID         string    `json:"id"`
	Role       string    `json:"role"`
	Sender     string    `json:"sender,omitempty"`
	Text       string    `json:"text,omitempty"`
	Attachment string    `json:"attachment,omitempty"`
	Deleted    bool      `json:"deleted,omitempty"`
	TS         time.Time `json:"ts"`
}

func (e Entry) empty() bool {
	return strings.TrimSpace(e.Text) == "" && strings.TrimSpace(e.Attachment) == ""
}

// Store 以 JSONL 形式保存聊天记录。
type Store struct {
	Path string
	// Now 可在测试中替换。
	Now func() time.Time
}

func NewStore(path string) *Store {
	return &Store{Path: path}
}

func (s *Store) ensureDir() error {
	if s == nil || strings.TrimSpace(s.Path) == "" {
		return errors.New("transcript path is empty")
	}
	return os.MkdirAll(filepath.Dir(s.Path), 0o755)
}

func (s *Store) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Append 追加一条记录并返回补全了 ID 与时间戳的结果。空消息被忽略。
func (s *Store) Append(e Entry) (Entry, error) {
	if s == nil {
		return Entry{}, errors.New("transcript store is nil")
	}
	if e.empty() {
		return e, nil
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Role == "" {
		e.Role = "user"
	}
	if e.TS.IsZero() {
		e.TS = s.now()
	}
	if err := s.ensureDir(); err != nil {
		return e, err
	}
	f, err := os.OpenFile(s.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return e, err
	}
	defer f.Close()

	data, err := json.Marshal(e)
	if err != nil {
		return e, err
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		return e, fmt.Errorf("append to %s: %w", s.Path, err)
	}
	return e, nil
}

// Load 读取全部记录；文件不存在时返回空结果，无法解析的行被跳过。
func (s *Store) Load() ([]Entry, error) {
	if s == nil {
		return nil, errors.New("transcript store is nil")
	}
	if strings.TrimSpace(s.Path) == "" {
		return nil, errors.New("transcript path is empty")
	}
	f, err := os.Open(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	log := logger.Named("transcript")
	scanner := bufio.NewScanner(f)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	var out []Entry
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var e Entry
		if err := json.Unmarshal([]byte(line), &e); err != nil {
			log.WithField("line", lineNo).Warnf("skipping malformed entry: %v", err)
			continue
		}
		if e.empty() {
			continue
		}
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		out = append(out, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
