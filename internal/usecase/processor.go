package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"resume-templates/internal/domain"
	"resume-templates/internal/model"
	"resume-templates/internal/render"

	"github.com/google/uuid"
)

// DefaultTemplate is used when a job names no template or an unknown one.
const DefaultTemplate = "gqr-resume-classic"

type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

type JobsRepo interface {
	Save(ctx context.Context, j *domain.ExportJob) error
}

// Processor runs export jobs: schema-check the payload, render it through
// the requested template, persist the HTML artifact, and produce the PDF.
type Processor struct {
	renderer        Renderer
	repo            JobsRepo
	registry        *render.Registry
	schemaPath      string
	outDir          string
	defaultLanguage string
}

func NewProcessor(r Renderer, repo JobsRepo, registry *render.Registry, schemaPath, outDir, defaultLanguage string) *Processor {
	return &Processor{
		renderer:        r,
		repo:            repo,
		registry:        registry,
		schemaPath:      schemaPath,
		outDir:          outDir,
		defaultLanguage: defaultLanguage,
	}
}

func (p *Processor) Process(ctx context.Context, job *domain.ExportJob) error {
	if job.Metadata == nil {
		job.Metadata = map[string]interface{}{}
	}
	job.Status = domain.StatusRendering
	job.UpdatedAt = time.Now()
	p.save(ctx, job)

	style, ok := p.registry.Get(job.TemplateKey)
	if !ok {
		slog.Warn("processor: unknown template, using default", "key", job.TemplateKey)
		job.Metadata["template_fallback"] = DefaultTemplate
		style, _ = p.registry.Get(DefaultTemplate)
	}
	if style == nil {
		return p.fail(ctx, job, fmt.Errorf("no template available for %q", job.TemplateKey))
	}

	// schema failures are recorded but do not abort: the renderer
	// degrades malformed fields to omissions on its own
	if err := model.ValidateMap(p.schemaPath, job.Resume); err != nil {
		slog.Warn("processor: schema validation failed (non-fatal)", "job", job.ID, "error", err)
		job.Metadata["schema_warning"] = err.Error()
	}

	data := model.FromMap(job.Resume)
	lang := job.Language
	if lang == "" {
		lang = data.Language
	}
	if lang == "" {
		lang = p.defaultLanguage
	}
	if lang == "" {
		lang = "en"
	}

	title := strings.TrimSpace(data.FirstName + " " + data.LastName)
	if title == "" {
		title = "Resume"
	}
	html := render.Document(render.Render(data, lang, style), title)

	// save the HTML artifact before PDF rendering so it survives a
	// renderer failure
	ts := time.Now().Format("20060102T150405")
	genDir := filepath.Join(p.outDir, "generated")
	if err := os.MkdirAll(genDir, 0o755); err != nil {
		return p.fail(ctx, job, err)
	}
	htmlPath := filepath.Join(genDir, fmt.Sprintf("resume_%s.html", ts))
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return p.fail(ctx, job, err)
	}
	job.Metadata["generated_html"] = htmlPath

	pdfBytes, renderErr := p.renderPDF(ctx, html)
	if renderErr != nil {
		slog.Warn("processor: PDF rendering failed, keeping HTML artifact", "job", job.ID, "error", renderErr)
		job.Metadata["generated_pdf"] = ""
		job.Metadata["pdf_render_error"] = renderErr.Error()
	} else {
		pdfPath := filepath.Join(genDir, fmt.Sprintf("resume_%s.pdf", ts))
		if err := os.WriteFile(pdfPath, pdfBytes, 0o644); err != nil {
			return p.fail(ctx, job, err)
		}
		job.Metadata["generated_pdf"] = pdfPath

		userDir := filepath.Join(p.outDir, "resumes", job.UserID.String())
		if err := os.MkdirAll(userDir, 0o755); err != nil {
			return p.fail(ctx, job, err)
		}
		userCopy := filepath.Join(userDir, uuid.New().String()+".pdf")
		if err := os.WriteFile(userCopy, pdfBytes, 0o644); err != nil {
			return p.fail(ctx, job, err)
		}
		job.Metadata["user_copy"] = userCopy
	}

	job.Status = domain.StatusCompleted
	job.UpdatedAt = time.Now()
	p.save(ctx, job)
	return nil
}

// renderPDF retries the headless renderer with exponential backoff and
// validates the PDF signature before accepting the output.
func (p *Processor) renderPDF(ctx context.Context, html string) ([]byte, error) {
	const attempts = 3
	var lastErr error
	for i := 0; i < attempts; i++ {
		pdf, err := p.renderer.RenderHTMLToPDF(ctx, html)
		if err == nil {
			if strings.HasPrefix(string(pdf), "%PDF") {
				return pdf, nil
			}
			err = fmt.Errorf("invalid PDF output (len=%d)", len(pdf))
		}
		lastErr = err
		slog.Warn("processor: render attempt failed", "attempt", i+1, "error", err)
		if i < attempts-1 {
			backoff := time.Duration(1<<i) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, fmt.Errorf("rendering failed after %d attempts: %w", attempts, lastErr)
}

func (p *Processor) fail(ctx context.Context, job *domain.ExportJob, err error) error {
	job.Status = domain.StatusFailed
	job.Metadata["error"] = err.Error()
	job.UpdatedAt = time.Now()
	p.save(ctx, job)
	return err
}

// save persists best-effort; a missing repo or a storage failure never
// aborts the render itself.
func (p *Processor) save(ctx context.Context, job *domain.ExportJob) {
	if p.repo == nil {
		return
	}
	if err := p.repo.Save(ctx, job); err != nil {
		slog.Warn("processor: failed to save job", "job", job.ID, "error", err)
	}
}
