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

package command

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/Canonical-LLC/psycopg/go/tools/logutil"
	"github.com/Canonical-LLC/psycopg/go/tools/typegen"
	"github.com/Canonical-LLC/psycopg/go/tools/viperutil"
)

// EnvPrefix prefixes the environment variables read by pgtypegen, e.g.
// PGTYPEGEN_DSN.
const EnvPrefix = "PGTYPEGEN"

// DefaultOutput is the table file relative to the repository root.
const DefaultOutput = "go/common/pgtypes/builtins_table.go"

// Config is the resolved configuration of a pgtypegen invocation.
type Config struct {
	DSN        string        `mapstructure:"dsn"`
	Timeout    time.Duration `mapstructure:"timeout"`
	Output     string        `mapstructure:"output"`
	Format     string        `mapstructure:"format"`
	TypesFile  string        `mapstructure:"types-file"`
	ConfigFile string        `mapstructure:"config-file"`
}

// Source is a CatalogSource holding a connection.
type Source interface {
	typegen.CatalogSource
	Close() error
}

// PgTypeGenCommand holds the configuration for pgtypegen commands.
type PgTypeGenCommand struct {
	reg        *viperutil.Registry
	dsn        *viperutil.Value[string]
	timeout    *viperutil.Value[time.Duration]
	configFile *viperutil.Value[string]
	output     *viperutil.Value[string]
	format     *viperutil.Value[string]
	typesFile  *viperutil.Value[string]
	lg         *logutil.Logger
	fs         afero.Fs

	// openSource connects to the server. Tests replace it.
	openSource func(ctx context.Context, dsn string) (Source, error)
}

// GetRootCommand creates and returns the root command for pgtypegen with all
// subcommands.
func GetRootCommand() (*cobra.Command, *PgTypeGenCommand) {
	reg := viperutil.NewRegistry(EnvPrefix)
	pc := &PgTypeGenCommand{
		reg: reg,
		dsn: viperutil.Configure(reg, "dsn", viperutil.Options[string]{
			Default:  "",
			FlagName: "dsn",
		}),
		timeout: viperutil.Configure(reg, "timeout", viperutil.Options[time.Duration]{
			Default:  30 * time.Second,
			FlagName: "timeout",
		}),
		configFile: viperutil.Configure(reg, "config-file", viperutil.Options[string]{
			Default:  "",
			FlagName: "config-file",
		}),
		output: viperutil.Configure(reg, "output", viperutil.Options[string]{
			Default:  DefaultOutput,
			FlagName: "output",
		}),
		format: viperutil.Configure(reg, "format", viperutil.Options[string]{
			Default:  "yaml",
			FlagName: "format",
		}),
		typesFile: viperutil.Configure(reg, "types-file", viperutil.Options[string]{
			Default:  "",
			FlagName: "types-file",
		}),
		lg: logutil.NewLogger(reg),
		fs: afero.NewOsFs(),
		openSource: func(ctx context.Context, dsn string) (Source, error) {
			src, err := typegen.OpenSQLSource(ctx, dsn)
			if err != nil {
				return nil, err
			}
			return src, nil
		},
	}

	root := &cobra.Command{
		Use:   "pgtypegen",
		Short: "Maintain the PostgreSQL built-in type table",
		Long: `pgtypegen reads the pg_type catalog of a running PostgreSQL server and
regenerates the built-in type table of package pgtypes.

Connection parameters are taken from --dsn, PGTYPEGEN_DSN, or the standard
PG* environment variables (PGHOST, PGPORT, PGUSER, ...).`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if file := pc.configFile.Get(); file != "" {
				if err := pc.reg.LoadConfigFile(file); err != nil {
					return err
				}
			}
			return pc.lg.SetupLogging(cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().String("dsn", pc.dsn.Default(), "PostgreSQL connection string (empty to use PG* environment variables)")
	root.PersistentFlags().Duration("timeout", pc.timeout.Default(), "Timeout for catalog queries")
	root.PersistentFlags().String("config-file", pc.configFile.Default(), "Path of a YAML config file")
	pc.lg.RegisterFlags(root.PersistentFlags())
	viperutil.BindFlags(root.PersistentFlags(), pc.dsn, pc.timeout, pc.configFile)

	AddGenerateCommand(root, pc)
	AddCheckCommand(root, pc)
	AddDumpCommand(root, pc)
	AddVersionCommand(root, pc)

	return root, pc
}

// Close releases resources held across a command run, such as the log file.
// It must be called after Execute whether or not the command failed, since
// cobra skips post-run hooks when RunE returns an error.
func (pc *PgTypeGenCommand) Close() error {
	return pc.lg.Close()
}

// Config decodes the current settings.
func (pc *PgTypeGenCommand) Config() (Config, error) {
	var cfg Config
	if err := pc.reg.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.Timeout <= 0 {
		return Config{}, fmt.Errorf("timeout must be positive, got %s", cfg.Timeout)
	}
	return cfg, nil
}

// withSource runs fn with a connected catalog source, bounded by the
// configured timeout.
func (pc *PgTypeGenCommand) withSource(ctx context.Context, cfg Config, fn func(ctx context.Context, src Source) error) error {
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	src, err := pc.openSource(ctx, cfg.DSN)
	if err != nil {
		return err
	}
	defer func() {
		if err := src.Close(); err != nil {
			pc.lg.GetLogger().Warn("failed to close catalog connection", "error", err)
		}
	}()
	return fn(ctx, src)
}
