// Package draft reads and mutates the source note. A draft is a
// markdown file with an optional YAML frontmatter block supplying the
// tags; everything after the frontmatter is the content. The content
// is read once and mutated at most once per run, by prepending the
// issue back-link.
package draft

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// frontmatterFence delimits the YAML frontmatter block.
const frontmatterFence = "---"

// Draft is one source note. The frontmatter block is carried verbatim
// so a rewrite never reformats the user's metadata.
type Draft struct {
	path        string
	frontmatter string
	content     string
	tags        []string

	// out receives the updated note when there is no file to write
	// back to (stdin drafts)
	out io.Writer
}

// frontmatterFields is the subset of note metadata this tool reads.
type frontmatterFields struct {
	Tags []string `yaml:"tags"`
}

// Load reads a draft from a note file.
func Load(path string) (*Draft, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read draft %s: %w", path, err)
	}

	d, err := parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse draft %s: %w", path, err)
	}
	d.path = path
	return d, nil
}

// FromReader reads a draft from a stream, typically stdin. Such a
// draft has no backing file; Update writes the full updated note to
// out instead.
func FromReader(r io.Reader, out io.Writer) (*Draft, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read draft: %w", err)
	}

	d, err := parse(string(raw))
	if err != nil {
		return nil, err
	}
	d.out = out
	return d, nil
}

// parse splits a raw note into its frontmatter block and content, and
// extracts the tags from the frontmatter.
func parse(raw string) (*Draft, error) {
	d := &Draft{content: raw}

	if !strings.HasPrefix(raw, frontmatterFence+"\n") {
		return d, nil
	}

	rest := raw[len(frontmatterFence)+1:]
	end := strings.Index(rest, "\n"+frontmatterFence)
	if end < 0 {
		// Unterminated fence, treat the whole note as content
		return d, nil
	}

	block := rest[:end]
	after := rest[end+len(frontmatterFence)+1:]
	after = strings.TrimPrefix(after, "\n")

	var fields frontmatterFields
	if err := yaml.Unmarshal([]byte(block), &fields); err != nil {
		return nil, fmt.Errorf("invalid frontmatter: %w", err)
	}

	d.frontmatter = frontmatterFence + "\n" + block + "\n" + frontmatterFence + "\n"
	d.content = after
	d.tags = fields.Tags
	return d, nil
}

// Content returns the note text without the frontmatter block.
func (d *Draft) Content() string {
	return d.content
}

// Tags returns the tags declared in the frontmatter.
func (d *Draft) Tags() []string {
	return d.tags
}

// Prepend inserts text plus a separator before the content, keeping
// the frontmatter block on top. The change is in memory until Update
// is called.
func (d *Draft) Prepend(text, separator string) {
	d.content = text + separator + d.content
}

// Update persists the draft: back to its file when it has one, using
// a temp file plus rename so a failed write never truncates the note,
// or to the configured writer for stream drafts.
func (d *Draft) Update() error {
	full := d.frontmatter + d.content

	if d.path == "" {
		if d.out == nil {
			d.out = os.Stdout
		}
		_, err := io.WriteString(d.out, full)
		return err
	}

	dir := filepath.Dir(d.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(d.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to stage draft update: %w", err)
	}
	tmpName := tmp.Name()

	// CreateTemp uses 0600, keep the note's own mode
	if fi, err := os.Stat(d.path); err == nil {
		os.Chmod(tmpName, fi.Mode())
	}

	if _, err := tmp.WriteString(full); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write draft update: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write draft update: %w", err)
	}

	if err := os.Rename(tmpName, d.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace draft %s: %w", d.path, err)
	}
	return nil
}
