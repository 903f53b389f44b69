package validator

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"todo-api/internal/domain/model"
	"todo-api/pkg/msg"
)

//go:embed schemas/*.json
var schemaFS embed.FS

const (
	schemaBaseURL    = "https://todo-api.local/"
	createTodoSchema = "schemas/create_todo.json"
	updateTodoSchema = "schemas/update_todo.json"
)

// fieldMessages overrides library messages for path+keyword pairs
var fieldMessages = map[string]string{
	"title:required":  "todo.error.title-required",
	"title:minLength": "todo.error.title-required",
}

type schema struct {
	compiled *jsonschema.Schema
	required []string
}

// Validator checks raw request bodies against the embedded JSON schemas.
type Validator struct {
	create *schema
	update *schema
}

func New() (*Validator, error) {
	create, err := compile(createTodoSchema)
	if err != nil {
		return nil, err
	}
	update, err := compile(updateTodoSchema)
	if err != nil {
		return nil, err
	}
	return &Validator{create: create, update: update}, nil
}

// MustNew panics when the embedded schemas do not compile.
func MustNew() *Validator {
	v, err := New()
	if err != nil {
		panic(err)
	}
	return v
}

func compile(name string) (*schema, error) {
	data, err := schemaFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read schema %s: %w", name, err)
	}

	var header struct {
		Required []string `json:"required"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return nil, fmt.Errorf("parse schema %s: %w", name, err)
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	url := schemaBaseURL + name
	if err := compiler.AddResource(url, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("add schema %s: %w", name, err)
	}

	compiled, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", name, err)
	}
	return &schema{compiled: compiled, required: header.Required}, nil
}

// ValidateCreate validates a create body and decodes it.
func (v *Validator) ValidateCreate(raw []byte) (model.CreateTodoDTO, error) {
	var dto model.CreateTodoDTO
	if err := v.create.validate(raw); err != nil {
		return dto, err
	}
	if err := json.Unmarshal(raw, &dto); err != nil {
		return dto, invalidBody(err)
	}
	return dto, nil
}

// ValidateUpdate validates a partial update body and decodes it.
func (v *Validator) ValidateUpdate(raw []byte) (model.UpdateTodoDTO, error) {
	var dto model.UpdateTodoDTO
	if err := v.update.validate(raw); err != nil {
		return dto, err
	}
	if err := json.Unmarshal(raw, &dto); err != nil {
		return dto, invalidBody(err)
	}
	return dto, nil
}

func (s *schema) validate(raw []byte) error {
	instance, err := decodeInstance(raw)
	if err != nil {
		return invalidBody(err)
	}

	err = s.compiled.Validate(instance)
	if err == nil {
		return nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return invalidBody(err)
	}

	var issues []model.ValidationIssue
	s.collectIssues(ve, instance, &issues)
	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].Path < issues[j].Path
	})
	return model.NewValidationError(msg.GetMessage("todo.error.validation"), issues)
}

// decodeInstance reads exactly one JSON value, keeping numbers as json.Number.
func decodeInstance(raw []byte) (any, error) {
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var instance any
	if err := decoder.Decode(&instance); err != nil {
		return nil, err
	}
	if decoder.More() {
		return nil, errors.New("unexpected data after JSON value")
	}
	return instance, nil
}

func (s *schema) collectIssues(err *jsonschema.ValidationError, instance any, issues *[]model.ValidationIssue) {
	if len(err.Causes) > 0 {
		for _, cause := range err.Causes {
			s.collectIssues(cause, instance, issues)
		}
		return
	}

	keyword := lastSegment(err.KeywordLocation)
	if keyword == "required" {
		object, _ := instance.(map[string]any)
		for _, field := range s.required {
			if _, ok := object[field]; !ok {
				*issues = append(*issues, issue(field, keyword, err.Message))
			}
		}
		return
	}

	*issues = append(*issues, issue(pointerToPath(err.InstanceLocation), keyword, err.Message))
}

func issue(path, keyword, fallback string) model.ValidationIssue {
	if key, ok := fieldMessages[path+":"+keyword]; ok {
		return model.ValidationIssue{Path: path, Message: msg.GetMessage(key)}
	}
	return model.ValidationIssue{Path: path, Message: fallback}
}

func invalidBody(err error) error {
	return model.NewValidationError(msg.GetMessage("todo.error.invalid-body"), []model.ValidationIssue{
		{Path: "", Message: err.Error()},
	})
}

func lastSegment(pointer string) string {
	if i := strings.LastIndex(pointer, "/"); i >= 0 {
		return pointer[i+1:]
	}
	return pointer
}

// pointerToPath turns "/title" into "title" and "/a/b" into "a.b".
func pointerToPath(pointer string) string {
	pointer = strings.TrimPrefix(strings.TrimPrefix(pointer, "#"), "/")
	return strings.ReplaceAll(pointer, "/", ".")
}
