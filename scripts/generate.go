//go:build ignore

package main

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
	"unicode"

	"gopkg.in/yaml.v3"
)

const (
	configFile     = "tally.yaml"
	swaggerURLTmpl = "https://developer.tallybooks.io/openapi/v%s/swagger.yaml"
	workDir        = "generated"
	modelsDir      = "pkg"
	servicesDir    = "pkg/services"
)

type Config struct {
	APIVersion      string `yaml:"apiVersion"`
	APIVersionRange string `yaml:"apiVersionRange"`
}

// swagger is the subset of a Swagger 2.0 document the service renderer needs.
type swagger struct {
	Paths map[string]map[string]operation `yaml:"paths"`
}

type operation struct {
	OperationID string   `yaml:"operationId"`
	Tags        []string `yaml:"tags"`
	Parameters  []struct {
		In     string `yaml:"in"`
		Schema struct {
			Ref string `yaml:"$ref"`
		} `yaml:"schema"`
	} `yaml:"parameters"`
	Responses map[string]struct {
		Schema struct {
			Ref string `yaml:"$ref"`
		} `yaml:"schema"`
	} `yaml:"responses"`
}

// serviceOp is one rendered function.
type serviceOp struct {
	Name    string
	Summary string
	Method  string
	Verb    string
	Path    string
	Kind    string
	Body    string
	Result  string
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := readConfig(configFile)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	fmt.Printf("Target API version: %s\n", cfg.APIVersion)

	if err := os.MkdirAll(workDir, 0o755); err != nil {
		return err
	}

	swaggerURL := fmt.Sprintf(swaggerURLTmpl, cfg.APIVersion)
	fmt.Printf("Fetching: %s\n", swaggerURL)

	swaggerPath := filepath.Join(workDir, "swagger.yaml")
	if err := downloadFile(swaggerURL, swaggerPath); err != nil {
		return fmt.Errorf("downloading swagger: %w", err)
	}

	fmt.Println("Generating models...")
	if err := generateModels(swaggerPath); err != nil {
		return fmt.Errorf("generating models: %w", err)
	}

	fmt.Println("Rendering services...")
	if err := renderServices(swaggerPath); err != nil {
		return fmt.Errorf("rendering services: %w", err)
	}

	fmt.Println("Done!")
	return nil
}

func readConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func downloadFile(url, dest string) error {
	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, resp.Body)
	return err
}

func generateModels(swaggerPath string) error {
	cmd := exec.Command("swagger", "generate", "model",
		"-f", swaggerPath,
		"-t", modelsDir,
		"--model-package", "models",
		"--skip-validation",
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func renderServices(swaggerPath string) error {
	data, err := os.ReadFile(swaggerPath)
	if err != nil {
		return err
	}

	var doc swagger
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}

	byTag := map[string][]serviceOp{}

	for path, methods := range doc.Paths {
		for method, op := range methods {
			if op.OperationID == "" || len(op.Tags) == 0 {
				continue
			}

			byTag[op.Tags[0]] = append(byTag[op.Tags[0]], newServiceOp(path, method, op))
		}
	}

	for tag, ops := range byTag {
		sort.Slice(ops, func(i, j int) bool {
			if ops[i].Path != ops[j].Path {
				return ops[i].Path < ops[j].Path
			}
			return ops[i].Name < ops[j].Name
		})

		var buf bytes.Buffer
		if err := serviceTemplate.Execute(&buf, ops); err != nil {
			return fmt.Errorf("%s: %w", tag, err)
		}

		src, err := format.Source(buf.Bytes())
		if err != nil {
			return fmt.Errorf("%s: formatting: %w", tag, err)
		}

		dest := filepath.Join(servicesDir, strings.ToLower(tag)+".go")
		if err := os.WriteFile(dest, src, 0o644); err != nil {
			return err
		}
	}

	return nil
}

func newServiceOp(path, method string, op operation) serviceOp {
	name := exported(op.OperationID)
	s := serviceOp{
		Name:    name,
		Summary: words(name),
		Method:  strings.ToUpper(method),
		Verb:    "http.Method" + exported(strings.ToLower(method)),
		Path:    path,
	}

	for _, p := range op.Parameters {
		if p.In == "body" {
			s.Body = refName(p.Schema.Ref)
		}
	}

	for code, r := range op.Responses {
		if strings.HasPrefix(code, "2") && r.Schema.Ref != "" {
			s.Result = refName(r.Schema.Ref)
		}
	}

	hasID := strings.Contains(path, "{id}")

	switch {
	case !hasID && s.Body == "":
		s.Kind = "list"
	case !hasID:
		s.Kind = "create"
	case s.Result == "":
		s.Kind = "delete"
	case s.Body != "":
		s.Kind = "idbody"
	default:
		s.Kind = "id"
	}

	return s
}

func refName(ref string) string {
	return ref[strings.LastIndex(ref, "/")+1:]
}

func exported(id string) string {
	r := []rune(id)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func words(name string) string {
	var b strings.Builder
	for i, r := range name {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

var serviceTemplate = template.Must(template.New("service").Parse(`// Code generated by scripts/generate.go; DO NOT EDIT.

package services

import (
	"context"
	"net/http"

	"github.com/fivetwenty-io/tally-client/pkg/models"
	"github.com/fivetwenty-io/tally-client/pkg/tally"
)
{{range .}}
// {{.Name}} {{.Summary}}
//
// {{.Method}} {{.Path}}
{{- if eq .Kind "list"}}
func {{.Name}}(ctx context.Context, t tally.Doer, params *tally.ListParams) (*models.{{.Result}}, error) {
	var out models.{{.Result}}

	err := call(ctx, t, {{.Verb}}, "{{.Path}}", params.ToValues(), nil, &out)
	if err != nil {
		return nil, err
	}

	return &out, nil
}
{{- else if eq .Kind "create"}}
func {{.Name}}(ctx context.Context, t tally.Doer, body *models.{{.Body}}) (*models.{{.Result}}, error) {
	if body == nil {
		return nil, missingBody("{{.Name}}")
	}

	err := validateBody("{{.Name}}", body)
	if err != nil {
		return nil, err
	}

	var out models.{{.Result}}

	err = call(ctx, t, {{.Verb}}, "{{.Path}}", nil, body, &out)
	if err != nil {
		return nil, err
	}

	return &out, nil
}
{{- else if eq .Kind "delete"}}
func {{.Name}}(ctx context.Context, t tally.Doer, id string) error {
	path, err := expandPath("{{.Path}}", id)
	if err != nil {
		return err
	}

	return call(ctx, t, {{.Verb}}, path, nil, nil, nil)
}
{{- else if eq .Kind "idbody"}}
func {{.Name}}(ctx context.Context, t tally.Doer, id string, body *models.{{.Body}}) (*models.{{.Result}}, error) {
	if body == nil {
		return nil, missingBody("{{.Name}}")
	}

	err := validateBody("{{.Name}}", body)
	if err != nil {
		return nil, err
	}

	path, err := expandPath("{{.Path}}", id)
	if err != nil {
		return nil, err
	}

	var out models.{{.Result}}

	err = call(ctx, t, {{.Verb}}, path, nil, body, &out)
	if err != nil {
		return nil, err
	}

	return &out, nil
}
{{- else}}
func {{.Name}}(ctx context.Context, t tally.Doer, id string) (*models.{{.Result}}, error) {
	path, err := expandPath("{{.Path}}", id)
	if err != nil {
		return nil, err
	}

	var out models.{{.Result}}

	err = call(ctx, t, {{.Verb}}, path, nil, nil, &out)
	if err != nil {
		return nil, err
	}

	return &out, nil
}
{{- end}}
{{end}}`))
