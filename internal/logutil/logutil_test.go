// Copyright 2025 go-sortbench Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestLogConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     LogConfig
		wantErr bool
	}{
		{"default", DefaultLogConfig(), false},
		{"empty", LogConfig{}, false},
		{"debug_json", LogConfig{Level: "DEBUG", Format: "json"}, false},
		{"bad_level", LogConfig{Level: "loud"}, true},
		{"bad_format", LogConfig{Format: "xml"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLogConfig_getLevel(t *testing.T) {
	cfg := LogConfig{Level: "warn"}
	level, err := cfg.getLevel()
	require.NoError(t, err)
	assert.Equal(t, zapcore.WarnLevel, level.Level())

	cfg = LogConfig{}
	level, err = cfg.getLevel()
	require.NoError(t, err)
	assert.Equal(t, zapcore.InfoLevel, level.Level())
}

func TestNewLoggerFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "sortbench.log")
	cfg := LogConfig{Level: "debug", Format: "json", Filename: filename, MaxSize: 1}

	logger, err := NewLogger(&cfg)
	require.NoError(t, err)
	logger.Debug("sweep started", zap.Int("max-size", 16))
	require.NoError(t, logger.Sync())

	content, err := os.ReadFile(filename)
	require.NoError(t, err)
	line := strings.TrimSpace(string(content))

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, "DEBUG", entry["level"])
	assert.Equal(t, "sweep started", entry["msg"])
	assert.EqualValues(t, 16, entry["max-size"])
}

func TestNewLoggerRejectsBadConfig(t *testing.T) {
	_, err := NewLogger(&LogConfig{Level: "verbose"})
	assert.Error(t, err)
}
