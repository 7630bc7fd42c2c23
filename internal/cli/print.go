package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/domgen/internal/domain"
	"github.com/aalvaropc/domgen/internal/ui"
	"github.com/aalvaropc/domgen/internal/usecase"
	"github.com/aalvaropc/domgen/internal/usecase/extract"
)

const (
	formatPretty = "pretty"
	formatJSON   = "json"
	formatYAML   = "yaml"
)

func checkFormat(format string) error {
	switch format {
	case formatPretty, formatJSON, formatYAML, "":
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json|yaml)", format)
	}
}

// printData writes v as JSON or YAML. It reports false for the pretty format.
func printData(w io.Writer, v any, format string) (bool, error) {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return true, enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return true, err
		}
		return true, enc.Close()
	default:
		return false, nil
	}
}

// printFields prints one JSONPath result per line.
func printFields(w io.Writer, v any, fields []string) error {
	vals, err := extract.Fields(v, fields)
	if err != nil {
		return err
	}
	for _, s := range vals {
		fmt.Fprintln(w, s)
	}
	return nil
}

func printResolution(w io.Writer, res domain.Resolution, format string) error {
	if done, err := printData(w, res, format); done {
		return err
	}

	th := ui.NewTheme(w)
	fmt.Fprintf(w, "%s %s\n\n", th.Title.Render(res.Kind), res.Raw)

	rows := [][2]string{
		{"normalized", res.Normalized},
		{"first", res.First},
		{"last", res.Last},
		{"has sub", fmt.Sprint(res.HasSub)},
		{"sub level", fmt.Sprint(res.SubLevel)},
		{"namespace", res.Namespace},
		{"full", res.FullNamespace},
		{"class", res.Class},
		{"variable", res.Variable},
		{"path", res.Path},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "  %s %s\n", th.Label.Render(fmt.Sprintf("%-10s", r[0]+":")), r[1])
	}
	return nil
}

func printPlans(w io.Writer, plans []domain.Plan, format string, show bool) error {
	if done, err := printData(w, plans, format); done {
		return err
	}

	th := ui.NewTheme(w)
	for i, p := range plans {
		if i > 0 {
			fmt.Fprintln(w)
		}
		a := p.Artifact
		fmt.Fprintf(w, "%s %s %s\n", planStatus(th, p), th.Title.Render(string(a.Kind)), a.FullNamespace)
		fmt.Fprintf(w, "  %s %s\n", th.Label.Render("path:"), a.Path)
		fmt.Fprintf(w, "  %s %s\n", th.Label.Render("stub:"), a.Stub)

		for _, d := range p.Dependencies {
			label := "needs:"
			if d.External() {
				label = "external:"
			}
			fmt.Fprintf(w, "  %s %s %s (%s)\n", th.Label.Render(label), d.Request.Kind, d.Request.Name, d.Reason)
		}

		if show && a.Content != "" {
			fmt.Fprintln(w, th.Card.Render(strings.TrimRight(a.Content, "\n")))
		}
	}

	if ext := usecase.External(plans); len(ext) > 0 {
		fmt.Fprintf(w, "\n%s\n", th.Subtitle.Render("Run the host framework generators for:"))
		for _, d := range ext {
			fmt.Fprintf(w, "  %s %s %s\n", th.External.Render("-"), d.Request.Kind, d.Request.Name)
		}
	}
	return nil
}

func planStatus(th ui.Theme, p domain.Plan) string {
	switch {
	case p.Skipped:
		return th.Skip.Render("[skip]     ")
	case p.Artifact.Exists:
		return th.Skip.Render("[overwrite]")
	default:
		return th.Create.Render("[create]   ")
	}
}

func printStubs(w io.Writer, refs []domain.StubRef, format string) error {
	if done, err := printData(w, refs, format); done {
		return err
	}

	th := ui.NewTheme(w)
	for _, r := range refs {
		line := "- " + r.Name
		if r.Overridden {
			line += "  " + th.Label.Render("(override: "+r.Path+")")
		}
		fmt.Fprintln(w, line)
		if len(r.Placeholders) > 0 {
			fmt.Fprintf(w, "    %s\n", th.Subtitle.Render(strings.Join(r.Placeholders, ", ")))
		}
	}
	return nil
}
