// Package schema generates JSON schemas for focusmode's config file, stored
// settings and the page/surface message formats.
package schema

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/invopop/jsonschema"

	"github.com/bnema/focusmode/internal/app/messaging"
	"github.com/bnema/focusmode/internal/domain/entity"
	"github.com/bnema/focusmode/internal/infrastructure/config"
	"github.com/bnema/focusmode/internal/infrastructure/pagescript"
)

// Schema names accepted by Generate.
const (
	Config   = "config"
	Settings = "settings"
	Messages = "messages"
)

const (
	idBase   = "https://github.com/bnema/focusmode/"
	filePerm = 0o644
)

// Names returns the schema names Generate accepts.
func Names() []string {
	return []string{Config, Settings, Messages}
}

// Generate builds the named schema.
func Generate(name string) (*jsonschema.Schema, error) {
	switch name {
	case Config:
		r := &jsonschema.Reflector{FieldNameTag: "toml"}
		s := r.Reflect(&config.Config{})
		s.ID = jsonschema.ID(idBase + "config.schema.json")
		s.Title = "focusmode configuration"
		s.Description = "config.toml of focusmode"
		return s, nil

	case Settings:
		r := &jsonschema.Reflector{DoNotReference: true}
		s := r.Reflect(&entity.FocusSettings{})
		s.ID = jsonschema.ID(idBase + "settings.schema.json")
		s.Title = "Focus settings"
		return s, nil

	case Messages:
		return messagesSchema(), nil
	}
	return nil, fmt.Errorf("unknown schema %q (want one of %v)", name, Names())
}

// messagesSchema collects every message shape under $defs. The root accepts
// any one of them.
func messagesSchema() *jsonschema.Schema {
	types := map[string]any{
		"pageSignal":             &pagescript.Signal{},
		"surfaceMessage":         &messaging.Message{},
		"ack":                    &messaging.Ack{},
		"focusStateReply":        &messaging.FocusStateReply{},
		"focusStateNotification": &messaging.FocusStateNotification{},
	}

	names := make([]string, 0, len(types))
	for name := range types {
		names = append(names, name)
	}
	sort.Strings(names)

	r := &jsonschema.Reflector{DoNotReference: true}
	root := &jsonschema.Schema{
		Version:     jsonschema.Version,
		ID:          jsonschema.ID(idBase + "messages.schema.json"),
		Title:       "focusmode messages",
		Description: "Page script signals and control-surface bridge messages",
		Definitions: jsonschema.Definitions{},
	}
	for _, name := range names {
		s := r.Reflect(types[name])
		s.Version = ""
		s.ID = ""
		root.Definitions[name] = s
		root.OneOf = append(root.OneOf, &jsonschema.Schema{Ref: "#/$defs/" + name})
	}
	return root
}

// JSON returns the named schema as indented JSON.
func JSON(name string) ([]byte, error) {
	s, err := Generate(name)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// Write stores the named schema as <dir>/<name>.schema.json and returns the
// file path.
func Write(dir, name string) (string, error) {
	data, err := JSON(name)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, name+".schema.json")
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return "", fmt.Errorf("failed to write schema file: %w", err)
	}
	return path, nil
}
