package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-collection/collections"
	"github.com/hasbyte1/go-collection/internal/cli/config"
	"github.com/hasbyte1/go-collection/omap"
)

// load reads the input document and decodes it into a collection.
func (s *state) load(cmd *cobra.Command) (*collections.Collection, error) {
	var (
		data []byte
		err  error
	)
	if s.file != "" {
		data, err = os.ReadFile(s.file)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", s.file, err)
		}
	} else {
		data, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
	}

	format := detectFormat(s.cfg.InputFormat, s.file, data)
	s.log.Debug("decoding input",
		zap.String("file", s.file),
		zap.String("format", format),
		zap.Int("bytes", len(data)))

	if format == config.FormatYAML {
		return collections.FromYAML(data)
	}
	return collections.FromJSON(data)
}

// detectFormat resolves "auto" using the file extension, then the first
// significant byte of the document.
func detectFormat(format, file string, data []byte) string {
	if format != config.FormatAuto {
		return format
	}
	switch strings.ToLower(filepath.Ext(file)) {
	case ".json":
		return config.FormatJSON
	case ".yaml", ".yml":
		return config.FormatYAML
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return config.FormatJSON
	}
	return config.FormatYAML
}

// write prints a command result. Collections and nested maps are encoded in
// the output format, strings are printed as-is and other scalars are encoded.
func (s *state) write(cmd *cobra.Command, value any) error {
	out, err := s.encode(value)
	if err != nil {
		return err
	}
	out = bytes.TrimRight(out, "\n")
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", out)
	return err
}

func (s *state) encode(value any) ([]byte, error) {
	if m, ok := value.(*omap.Map); ok {
		value = collections.New(m)
	}
	if c, ok := value.(*collections.Collection); ok {
		if s.cfg.OutputFormat == config.FormatYAML {
			return c.ToYAML()
		}
		if s.cfg.Pretty {
			return c.ToJSON(collections.JSONPrettyPrint)
		}
		return c.ToJSON()
	}
	if str, ok := value.(string); ok {
		return []byte(str), nil
	}
	if s.cfg.OutputFormat == config.FormatYAML {
		return yaml.Marshal(value)
	}
	return json.Marshal(value)
}

// parseValue reads a command-line argument as JSON, falling back to the raw
// string when it is not a valid document.
func parseValue(arg string) any {
	v, err := omap.DecodeJSON([]byte(arg))
	if err != nil {
		return arg
	}
	return v
}
