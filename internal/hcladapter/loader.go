// Package hcladapter is the HCL implementation of the config.Loader
// interface. A settings file holds an optional variables block, whose
// attributes override the parser's built-in CMake variables, and an optional
// output block selecting the encoding.
//
//	variables {
//	  CMAKE_BUILD_TYPE = "Debug"
//	  CMAKE_SYSTEM_NAME = "Darwin"
//	}
//
//	output {
//	  format = "msgpack"
//	}
package hcladapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/cmake2bazel/internal/config"
	"github.com/vk/cmake2bazel/internal/ctxlog"
)

// Loader is the HCL-specific implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new HCL settings loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot decodes the top-level blocks of a settings file.
type fileRoot struct {
	Variables *variablesBlock `hcl:"variables,block"`
	Output    *outputBlock    `hcl:"output,block"`
	Remain    hcl.Body        `hcl:",remain"`
}

// variablesBlock keeps its body raw: variable names are user-chosen, so the
// attributes are decoded by hand rather than into struct fields.
type variablesBlock struct {
	Body hcl.Body `hcl:",remain"`
}

type outputBlock struct {
	Format string `hcl:"format,optional"`
	Pretty bool   `hcl:"pretty,optional"`
}

// Load reads the settings file at path into the format-agnostic model. An
// empty path returns the defaults.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	model := config.Default()
	if path == "" {
		logger.Debug("No settings file given, using defaults.")
		return model, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, diags)
	}

	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode settings file %s: %w", path, diags)
	}

	if root.Variables != nil {
		vars, err := decodeVariables(root.Variables.Body)
		if err != nil {
			return nil, fmt.Errorf("settings file %s: %w", path, err)
		}
		model.Variables = vars
	}
	if root.Output != nil {
		if root.Output.Format != "" {
			model.Output.Format = root.Output.Format
		}
		model.Output.Pretty = root.Output.Pretty
	}

	if err := model.Validate(); err != nil {
		return nil, fmt.Errorf("settings file %s: %w", path, err)
	}

	logger.Debug("Settings loaded.", "path", path, "variable_overrides", len(model.Variables), "format", model.Output.Format)
	return model, nil
}

// decodeVariables converts every attribute of the variables block to a
// string binding.
func decodeVariables(body hcl.Body) (map[string]string, error) {
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("reading variables block: %w", diags)
	}

	vars := make(map[string]string, len(attrs))
	for name, attr := range attrs {
		value, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("evaluating variable %q: %w", name, diags)
		}
		strVal, err := convert.Convert(value, cty.String)
		if err != nil {
			return nil, fmt.Errorf("variable %q is not convertible to string: %w", name, err)
		}
		vars[name] = strVal.AsString()
	}
	return vars, nil
}
