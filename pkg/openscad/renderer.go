// Package openscad turns OpenSCAD sources into STL meshes through the
// openscad executable and tracks the files a source depends on.
package openscad

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
)

// ErrNotInstalled is returned when the openscad executable is not on PATH
var ErrNotInstalled = errors.New("openscad not found in PATH, install it from https://openscad.org/")

var dependencyRegex = regexp.MustCompile(`^\s*(?:use|include)\s*<([^>]+)>`)

// Renderer runs openscad relative to a working directory
type Renderer struct {
	workDir string
	binary  string
}

// NewRenderer creates a renderer that resolves relative paths against
// workDir.
func NewRenderer(workDir string) *Renderer {
	return &Renderer{
		workDir: workDir,
		binary:  "openscad",
	}
}

func (r *Renderer) abs(file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(r.workDir, file)
}

// RenderToSTL renders scadFile into outputFile. The render is aborted when
// ctx is cancelled.
func (r *Renderer) RenderToSTL(ctx context.Context, scadFile, outputFile string) error {
	if _, err := exec.LookPath(r.binary); err != nil {
		return ErrNotInstalled
	}

	cmd := exec.CommandContext(ctx, r.binary, "-o", outputFile, r.abs(scadFile))
	cmd.Dir = r.workDir

	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(output.String())
		if msg == "" {
			return fmt.Errorf("failed to render %s: %w", scadFile, err)
		}
		return fmt.Errorf("failed to render %s: %w\n%s", scadFile, err, msg)
	}

	return nil
}

// ResolveDependencies returns scadFile and every file it reaches through
// use/include statements, as absolute paths in discovery order.
func (r *Renderer) ResolveDependencies(scadFile string) ([]string, error) {
	root, err := filepath.Abs(r.abs(scadFile))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", scadFile, err)
	}

	visited := make(map[string]bool)
	deps := make([]string, 0)

	queue := []string{root}
	for len(queue) > 0 {
		file := queue[0]
		queue = queue[1:]
		if visited[file] {
			continue
		}
		visited[file] = true
		deps = append(deps, file)

		children, err := r.parseDependencies(file)
		if err != nil {
			return nil, err
		}
		queue = append(queue, children...)
	}

	return deps, nil
}

func (r *Renderer) parseDependencies(scadFile string) ([]string, error) {
	file, err := os.Open(scadFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", scadFile, err)
	}
	defer file.Close()

	dir := filepath.Dir(scadFile)
	deps := make([]string, 0)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(strings.TrimSpace(line), "//") {
			continue
		}
		if m := dependencyRegex.FindStringSubmatch(line); m != nil {
			deps = append(deps, r.resolve(m[1], dir))
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading %s: %w", scadFile, err)
	}

	return deps, nil
}

// resolve finds dep next to the including file first, then in the working
// directory.
func (r *Renderer) resolve(dep, dir string) string {
	local := filepath.Clean(filepath.Join(dir, dep))
	if strings.HasPrefix(dep, "./") || strings.HasPrefix(dep, "../") {
		return local
	}
	if _, err := os.Stat(local); err == nil {
		return local
	}
	if abs, err := filepath.Abs(filepath.Join(r.workDir, dep)); err == nil {
		return abs
	}
	return filepath.Clean(filepath.Join(r.workDir, dep))
}
