// Copyright 2025 Supabase, Inc.
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
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Canonical-LLC/psycopg/go/tools/viperutil"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
		wantErr  bool
	}{
		{input: "debug", expected: slog.LevelDebug},
		{input: "INFO", expected: slog.LevelInfo},
		{input: "", expected: slog.LevelInfo},
		{input: "warn", expected: slog.LevelWarn},
		{input: "error", expected: slog.LevelError},
		{input: "loud", expected: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestSetupLoggingFlags(t *testing.T) {
	defaultLogger := slog.Default()
	t.Cleanup(func() { slog.SetDefault(defaultLogger) })

	lg := NewLogger(viperutil.NewRegistry(""))
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	lg.RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--log-level=debug", "--log-format=json", "--log-output=stdout"}))

	var stdout, stderr bytes.Buffer
	require.NoError(t, lg.SetupLogging(&stdout, &stderr))

	lg.GetLogger().Info("hello", "key", "value")
	assert.Contains(t, stdout.String(), `"msg":"hello"`)
	assert.Contains(t, stdout.String(), `"msg":"logging initialized"`)
	assert.Empty(t, stderr.String())
	assert.Same(t, lg.GetLogger(), slog.Default())
}

func TestSetupLoggingFile(t *testing.T) {
	defaultLogger := slog.Default()
	t.Cleanup(func() { slog.SetDefault(defaultLogger) })

	path := filepath.Join(t.TempDir(), "out.log")
	lg := NewLogger(viperutil.NewRegistry(""))
	lg.logOutput.Set(path)
	require.NoError(t, lg.SetupLogging(os.Stdout, os.Stderr))

	lg.GetLogger().Warn("written to file")
	require.NoError(t, lg.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}

func TestSetupLoggingErrors(t *testing.T) {
	lg := NewLogger(viperutil.NewRegistry(""))
	lg.logFormat.Set("xml")
	assert.ErrorContains(t, lg.SetupLogging(os.Stdout, os.Stderr), "unknown log format")

	lg.logFormat.Set("text")
	lg.logLevel.Set("loud")
	assert.ErrorContains(t, lg.SetupLogging(os.Stdout, os.Stderr), "unknown log level")
}

func TestGetLoggerBeforeSetup(t *testing.T) {
	lg := NewLogger(viperutil.NewRegistry(""))
	assert.Same(t, slog.Default(), lg.GetLogger())
	assert.NoError(t, lg.Close())
}

func TestSetupLoggingClosesPreviousFile(t *testing.T) {
	defaultLogger := slog.Default()
	t.Cleanup(func() { slog.SetDefault(defaultLogger) })

	dir := t.TempDir()
	lg := NewLogger(viperutil.NewRegistry(""))
	lg.logOutput.Set(filepath.Join(dir, "first.log"))
	require.NoError(t, lg.SetupLogging(os.Stdout, os.Stderr))
	first := lg.closer

	lg.logOutput.Set(filepath.Join(dir, "second.log"))
	require.NoError(t, lg.SetupLogging(os.Stdout, os.Stderr))
	assert.NotSame(t, first, lg.closer)
	assert.Error(t, first.Close(), "first file was already closed")

	require.NoError(t, lg.Close())
	assert.NoError(t, lg.Close())
}
