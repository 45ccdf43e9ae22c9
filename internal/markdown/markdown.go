// Package markdown renders entities to Markdown files with YAML front matter
// and splits existing files back into front matter and body.
package markdown

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"
)

// delimiter separates the YAML front matter from the body.
const delimiter = "---"

// ErrMalformedDocument reports a mirror file without a recognizable
// front-matter block.
var ErrMalformedDocument = errors.New("malformed markdown document")

var mdRenderer = goldmark.New()

// FrontMatter is implemented by the per-entity front-matter structs.
type FrontMatter interface {
	EntityID() string
	EntityTitle() string
}

// Write serializes meta to YAML, wraps it in delimiter lines, and writes
// <dir>/<id>.md, creating dir if needed. When body is non-nil it is appended
// verbatim after the closing delimiter, preserving whatever Split recovered;
// otherwise a minimal body with a "## <title>" heading is synthesized. The
// write is a full overwrite.
func Write(dir string, meta FrontMatter, body *string) error {
	serialized, err := yaml.Marshal(meta)
	if err != nil {
		return fmt.Errorf("serializing front matter: %w", err)
	}

	var content string
	if body != nil {
		content = delimiter + "\n" + string(serialized) + delimiter + *body
	} else {
		content = fmt.Sprintf("%s\n%s%s\n\n## %s\n\n", delimiter, serialized, delimiter, meta.EntityTitle())
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating mirror directory: %w", err)
	}
	path := filepath.Join(dir, meta.EntityID()+".md")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Split reads <dir>/<id>.md and separates it into the front-matter text and
// the body, both returned verbatim so a later Write round-trips the body
// byte-for-byte. A file with fewer than two delimiters yields
// ErrMalformedDocument rather than a panic.
func Split(dir, id string) (frontMatter, body string, err error) {
	path := filepath.Join(dir, id+".md")
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("reading %s: %w", path, err)
	}

	parts := strings.SplitN(string(data), delimiter, 3)
	if len(parts) < 3 {
		return "", "", fmt.Errorf("%s: %w", path, ErrMalformedDocument)
	}
	return parts[1], parts[2], nil
}

// Preview renders the body of <dir>/<id>.md to HTML.
func Preview(dir, id string) (string, error) {
	_, body, err := Split(dir, id)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(body), &buf); err != nil {
		return "", fmt.Errorf("rendering %s: %w", id, err)
	}
	return buf.String(), nil
}
