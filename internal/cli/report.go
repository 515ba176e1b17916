package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/pindex-dev/pindex/pkg/errors"
	pkgio "github.com/pindex-dev/pindex/pkg/io"
	"github.com/pindex-dev/pindex/pkg/lockfile"
	"github.com/pindex-dev/pindex/pkg/registry"
)

// resolution is one resolved dependency row. It is shared by the deps and
// resolve commands and serialized directly for --format yaml and json.
type resolution struct {
	Package  string `yaml:"package" json:"package"`
	Pinned   string `yaml:"pinned,omitempty" json:"pinned,omitempty"`
	Version  string `yaml:"version,omitempty" json:"version,omitempty"`
	Registry string `yaml:"registry,omitempty" json:"registry,omitempty"`
	Page     string `yaml:"page,omitempty" json:"page,omitempty"`
	Artifact string `yaml:"artifact,omitempty" json:"artifact,omitempty"`
	Error    string `yaml:"error,omitempty" json:"error,omitempty"`
}

// lockfileReport groups the resolutions of one lockfile.
type lockfileReport struct {
	Lockfile     string       `yaml:"lockfile" json:"lockfile"`
	Dependencies []resolution `yaml:"dependencies" json:"dependencies"`
}

// newResolution converts one lookup outcome into an output row.
// A failed lookup keeps the package name and pin and records the error.
func newResolution(dep lockfile.Dependency, meta []registry.Metadata, err error) resolution {
	r := resolution{Package: dep.Name, Pinned: dep.Version}
	if err != nil {
		r.Error = errors.UserMessage(err)
		return r
	}
	if len(meta) == 0 {
		r.Error = "registry returned no metadata"
		return r
	}
	m := meta[0]
	r.Version = m.Version
	r.Registry = m.HostName
	r.Page = m.HumanURL
	r.Artifact = m.ArtifactURL
	return r
}

// renderDepsText prints one styled table per lockfile.
func renderDepsText(reports []lockfileReport) {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	for _, rep := range reports {
		printFile(rep.Lockfile)

		rows := make([][]string, 0, len(rep.Dependencies))
		failed := make([]bool, 0, len(rep.Dependencies))
		for _, r := range rep.Dependencies {
			if r.Error != "" {
				rows = append(rows, []string{r.Package, r.Pinned, iconError + " " + r.Error, ""})
				failed = append(failed, true)
				continue
			}
			rows = append(rows, []string{r.Package, r.Pinned, r.Version, r.Artifact})
			failed = append(failed, false)
		}

		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
			Headers("Package", "Pinned", "Resolved", "Artifact").
			Rows(rows...).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == -1 {
					return headerStyle
				}
				if row < len(failed) && failed[row] {
					return StyleError
				}
				if col == 3 {
					return StyleDim
				}
				return StyleValue
			})
		fmt.Println(t.Render())
	}
}

// writeReports serializes all reports to w in the given format.
func writeReports(w io.Writer, format string, reports []lockfileReport) error {
	if format == formatJSON {
		return pkgio.WriteJSON(reports, w)
	}
	return pkgio.WriteYAML(reports, w)
}

// renderResolutionText prints a single resolution as labeled values.
func renderResolutionText(r resolution) {
	printKeyValue("Package", r.Package)
	if r.Pinned != "" {
		printKeyValue("Pinned", r.Pinned)
	}
	printKeyValue("Version", r.Version)
	printKeyValue("Registry", r.Registry)
	printKeyValue("Page", StyleLink.Render(r.Page))
	printKeyValue("Artifact", StyleLink.Render(r.Artifact))
}

// writeResolution serializes a single resolution to w in the given format.
func writeResolution(w io.Writer, format string, r resolution) error {
	if format == formatJSON {
		return pkgio.WriteJSON(r, w)
	}
	return pkgio.WriteYAML(r, w)
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
