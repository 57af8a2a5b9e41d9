package config

import (
	"strconv"
	"strings"
)

// ApplyKVOverrides applies free-form -c key=value overrides.
// Unknown keys and unparsable values are ignored.
func ApplyKVOverrides(cfg Config, overrides []string) Config {
	if len(overrides) == 0 {
		return cfg
	}
	for _, raw := range overrides {
		parts := strings.SplitN(raw, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		val := strings.TrimSpace(parts[1])
		switch key {
		case "transcript":
			cfg.Transcript = val
		case "log_file":
			cfg.LogFile = val
		case "log_level":
			cfg.LogLevel = val
		case "rtl":
			if b, err := strconv.ParseBool(val); err == nil {
				cfg.RTL = b
			}
		default:
			n, err := strconv.Atoi(val)
			if err != nil {
				continue
			}
			applyInt(&cfg, key, n)
		}
	}
	return cfg.normalized()
}

func applyInt(cfg *Config, key string, n int) {
	switch key {
	case "spacing":
		cfg.Spacing = n
	case "max_lines":
		cfg.MaxLines = n
	case "min_lines":
		cfg.MinLines = n
	case "padding":
		cfg.Padding = Padding{Top: n, Left: n, Bottom: n, Right: n}
	case "padding.top":
		cfg.Padding.Top = n
	case "padding.left":
		cfg.Padding.Left = n
	case "padding.bottom":
		cfg.Padding.Bottom = n
	case "padding.right":
		cfg.Padding.Right = n
	}
}
