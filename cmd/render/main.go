package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"resume-templates/internal/model"
	"resume-templates/internal/render"
	infra "resume-templates/pkg/infrastructure"
)

// Renders a resume JSON file through one template, writing the HTML
// document (and optionally the PDF) without touching the database.
func main() {
	in := flag.String("in", "", "path to resume JSON file")
	key := flag.String("template", "gqr-resume-classic", "template key")
	lang := flag.String("lang", "", "language override (en, es)")
	out := flag.String("out", "resume.html", "output HTML path")
	pdf := flag.String("pdf", "", "optional output PDF path")
	list := flag.Bool("list", false, "list template keys and exit")
	flag.Parse()

	registry := render.Builtin()

	if *list {
		for _, st := range registry.Styles() {
			fmt.Printf("%-28s %s\n", st.Key, st.Name)
		}
		return
	}

	if *in == "" {
		fmt.Fprintln(os.Stderr, "usage: render -in resume.json [-template key] [-lang en] [-out resume.html] [-pdf resume.pdf]")
		os.Exit(2)
	}

	raw, err := os.ReadFile(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read input: %v\n", err)
		os.Exit(1)
	}
	var payload map[string]interface{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		fmt.Fprintf(os.Stderr, "parse input: %v\n", err)
		os.Exit(1)
	}

	st, ok := registry.Get(*key)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown template %q (use -list)\n", *key)
		os.Exit(1)
	}

	data := model.FromMap(payload)
	language := *lang
	if language == "" {
		language = data.Language
	}

	fragment := render.Render(data, language, st)
	doc := render.Document(fragment, data.FirstName+" "+data.LastName)

	if err := os.WriteFile(*out, []byte(doc), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "write html: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s\n", *out)

	if *pdf != "" {
		renderer := infra.NewChromedpRenderer(os.Getenv("CHROME_PATH"))
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		b, err := renderer.RenderHTMLToPDF(ctx, doc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "render pdf: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*pdf, b, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "write pdf: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", *pdf)
	}
}
