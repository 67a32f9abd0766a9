package http

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"resume-templates/internal/domain"
	"resume-templates/internal/model"
	"resume-templates/internal/render"
	"resume-templates/internal/usecase"
	"resume-templates/pkg/ai"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// JobsStore is the read side of the jobs repository used by the API.
type JobsStore interface {
	usecase.JobsRepo
	GetByID(ctx context.Context, id string) (map[string]interface{}, error)
	ListForUser(ctx context.Context, userID string) ([]map[string]interface{}, error)
}

type Handler struct {
	processor *usecase.Processor
	repo      JobsStore
	registry  *render.Registry
	ai        *ai.Client
}

func NewHandler(p *usecase.Processor, r JobsStore, reg *render.Registry, aiClient *ai.Client) *Handler {
	return &Handler{processor: p, repo: r, registry: reg, ai: aiClient}
}

// Register wires the handler's routes onto the fiber app.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/templates", h.ListTemplates)
	app.Post("/templates/:key/render", h.RenderPreview)
	app.Post("/jobs/start", h.StartJob)
	app.Get("/jobs/:id", h.GetJob)
	app.Get("/users/:userId/jobs", h.ListJobs)
	app.Post("/suggestions", h.Suggestions)
	app.Post("/score", h.Score)
}

type templateInfo struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ListTemplates returns the gallery of registered templates in
// registration order.
func (h *Handler) ListTemplates(c *fiber.Ctx) error {
	styles := h.registry.Styles()
	out := make([]templateInfo, 0, len(styles))
	for _, st := range styles {
		out = append(out, templateInfo{Key: st.Key, Name: st.Name, Description: st.Description})
	}
	return c.JSON(fiber.Map{"templates": out})
}

type previewReq struct {
	Language string                 `json:"language,omitempty"`
	Resume   map[string]interface{} `json:"resume"`
}

// RenderPreview renders the posted resume through one template and returns
// the HTML fragment, for live previews in the editor.
func (h *Handler) RenderPreview(c *fiber.Ctx) error {
	st, ok := h.registry.Get(c.Params("key"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown template"})
	}

	var req previewReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	data := model.FromMap(req.Resume)
	lang := req.Language
	if lang == "" {
		lang = data.Language
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(render.Render(data, lang, st))
}

type startReq struct {
	UserID      string                 `json:"userId"`
	TemplateKey string                 `json:"templateKey"`
	Language    string                 `json:"language,omitempty"`
	Resume      map[string]interface{} `json:"resume"`
}

func (h *Handler) StartJob(c *fiber.Ctx) error {
	var req startReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	uid, err := uuid.Parse(req.UserID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid userId"})
	}

	job := &domain.ExportJob{
		ID:          uuid.New(),
		UserID:      uid,
		TemplateKey: req.TemplateKey,
		Language:    req.Language,
		Resume:      req.Resume,
		Status:      domain.StatusPending,
		Metadata:    map[string]interface{}{},
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	// persist initial job (best-effort)
	if h.repo != nil {
		if err := h.repo.Save(context.Background(), job); err != nil {
			slog.Warn("failed to save job", "error", err)
		}
	}

	// spawn background processing
	go func(j *domain.ExportJob) {
		ctx := context.Background()
		if err := h.processor.Process(ctx, j); err != nil {
			slog.Error("job failed", "jobId", j.ID.String(), "error", err)
		}
	}(job)

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"jobId": job.ID.String(), "status": "started"})
}

func (h *Handler) GetJob(c *fiber.Ctx) error {
	if h.repo == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "job store unavailable"})
	}
	job, err := h.repo.GetByID(c.Context(), c.Params("id"))
	if err != nil || job == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "job not found"})
	}
	return c.JSON(job)
}

func (h *Handler) ListJobs(c *fiber.Ctx) error {
	if h.repo == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "job store unavailable"})
	}
	jobs, err := h.repo.ListForUser(c.Context(), c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list jobs"})
	}
	return c.JSON(fiber.Map{"jobs": jobs})
}

type suggestReq struct {
	Profession string   `json:"profession"`
	Projects   []string `json:"projects,omitempty"`
	Language   string   `json:"language,omitempty"`
}

func (h *Handler) Suggestions(c *fiber.Ctx) error {
	if h.ai == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "ai service unavailable"})
	}
	var req suggestReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	suggestions, err := h.ai.SuggestAchievements(c.Context(), req.Profession, req.Projects, req.Language)
	if err != nil {
		return aiError(c, err)
	}
	return c.JSON(fiber.Map{"suggestions": suggestions})
}

type scoreReq struct {
	Resume map[string]interface{} `json:"resume"`
}

func (h *Handler) Score(c *fiber.Ctx) error {
	if h.ai == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "ai service unavailable"})
	}
	var req scoreReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	score, err := h.ai.ScoreResume(c.Context(), req.Resume)
	if err != nil {
		return aiError(c, err)
	}
	return c.JSON(score)
}

// aiError maps client errors from the ai service onto API responses so the
// frontend can distinguish rate limiting from plan gating.
func aiError(c *fiber.Ctx, err error) error {
	var rl *ai.RateLimitError
	switch {
	case errors.As(err, &rl):
		c.Set(fiber.HeaderRetryAfter, strconv.Itoa(int(rl.RetryAfter.Seconds())))
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "rate limited"})
	case errors.Is(err, ai.ErrPremiumRequired):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "premium plan required"})
	default:
		slog.Error("ai request failed", "error", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "ai service error"})
	}
}
