package generation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/yog-patel/home-designer-ai-app/internal/domain"
	"github.com/yog-patel/home-designer-ai-app/internal/entitlement"
	"github.com/yog-patel/home-designer-ai-app/internal/providers/image"
	"github.com/yog-patel/home-designer-ai-app/internal/storage"
	"github.com/yog-patel/home-designer-ai-app/internal/wizard"
)

// EntitlementTracker is the slice of the entitlement tracker the orchestrator
// consumes.
type EntitlementTracker interface {
	Identity(ctx context.Context) (string, error)
	CheckAllowed(ctx context.Context, userID string) entitlement.Decision
	RecordSuccessfulUse(ctx context.Context, userID string) (domain.EntitlementState, error)
}

// Orchestrator runs one generation attempt end to end: entitlement check,
// asset materialization, prompt assembly, the remote generation call, usage
// reconciliation, and result delivery. The steps are strictly sequential; a
// failed step short-circuits everything after it.
type Orchestrator struct {
	tracker   EntitlementTracker
	uploader  storage.Uploader
	generator image.Generator
	designs   domain.DesignRepository
	logger    zerolog.Logger
	now       func() time.Time
}

// Options groups the orchestrator's collaborators. Designs is optional; when
// present every successful result is also persisted to the gallery.
type Options struct {
	Tracker   EntitlementTracker
	Uploader  storage.Uploader
	Generator image.Generator
	Designs   domain.DesignRepository
	Logger    zerolog.Logger
}

// NewOrchestrator validates and wires the pipeline.
func NewOrchestrator(opts Options) (*Orchestrator, error) {
	if opts.Tracker == nil {
		return nil, errors.New("generation: entitlement tracker is required")
	}
	if opts.Uploader == nil {
		return nil, errors.New("generation: uploader is required")
	}
	if opts.Generator == nil {
		return nil, errors.New("generation: generator is required")
	}
	return &Orchestrator{
		tracker:   opts.Tracker,
		uploader:  opts.Uploader,
		generator: opts.Generator,
		designs:   opts.Designs,
		logger:    opts.Logger,
		now:       time.Now,
	}, nil
}

// WithClock overrides the orchestrator's clock, for tests.
func (o *Orchestrator) WithClock(now func() time.Time) *Orchestrator {
	o.now = now
	return o
}

// Generate runs the pipeline for the installed client's own identity,
// minting one if none exists yet.
func (o *Orchestrator) Generate(ctx context.Context, req domain.DesignRequest) (*domain.GenerationResult, error) {
	return o.GenerateAs(ctx, "", req)
}

// GenerateAs runs the pipeline for an explicit user identity. An empty
// userID resolves the locally persisted identity instead.
func (o *Orchestrator) GenerateAs(ctx context.Context, userID string, req domain.DesignRequest) (*domain.GenerationResult, error) {
	if err := wizard.Validate(req); err != nil {
		return nil, err
	}

	userID = strings.TrimSpace(userID)
	if userID == "" {
		resolved, err := o.tracker.Identity(ctx)
		if err != nil {
			return nil, err
		}
		userID = resolved
	}
	log := o.logger.With().Str("user_id", userID).Str("design_type", string(req.DesignType)).Logger()

	decision := o.tracker.CheckAllowed(ctx, userID)
	if !decision.Allowed {
		log.Info().Bool("degraded", decision.Degraded).Msg("generation denied by entitlement check")
		return nil, domain.ErrQuotaExceeded
	}
	if decision.Degraded {
		log.Warn().Msg("entitlement authority unreachable, proceeding on cached state")
	}

	imageURL, err := o.materializeSource(ctx, userID, req.Source)
	if err != nil {
		log.Error().Err(err).Msg("source image upload failed")
		return nil, fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}

	prompt, err := BuildPrompt(req)
	if err != nil {
		return nil, err
	}

	generated, err := o.generator.Generate(ctx, image.GenerateRequest{
		UserID:         userID,
		ImageURL:       imageURL,
		Prompt:         prompt.Text,
		NegativePrompt: prompt.Negative,
		RoomType:       req.AreaID,
		Style:          req.StyleID,
		Palette:        req.PaletteID,
	})
	if err != nil {
		if errors.Is(err, domain.ErrQuotaExceeded) {
			// The authoritative counter can lag the check above; a late
			// over-quota signal still routes to the paywall. The uploaded
			// asset is left orphaned.
			log.Info().Msg("generation rejected over quota after upload")
			return nil, err
		}
		log.Error().Err(err).Msg("generation call failed")
		return nil, fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}

	if _, err := o.tracker.RecordSuccessfulUse(ctx, userID); err != nil {
		// Best-effort: the image already exists and is delivered regardless.
		log.Warn().Err(err).Msg("usage reconciliation failed after successful generation")
	}

	designID := generated.DesignID
	if strings.TrimSpace(designID) == "" {
		designID = uuid.NewString()
	}

	result := &domain.GenerationResult{
		DesignID:     designID,
		UserID:       userID,
		ImageURL:     generated.ImageURL,
		DesignType:   req.DesignType,
		AreaID:       req.AreaID,
		StyleID:      req.StyleID,
		PaletteID:    req.PaletteID,
		PaintColorID: req.PaintColorID,
		Prompt:       prompt.Text,
		CreatedAt:    o.now(),
	}

	if o.designs != nil {
		design := &domain.Design{
			ID:           result.DesignID,
			UserID:       userID,
			DesignType:   result.DesignType,
			AreaID:       result.AreaID,
			StyleID:      result.StyleID,
			PaletteID:    result.PaletteID,
			PaintColorID: result.PaintColorID,
			Prompt:       result.Prompt,
			ImageURL:     result.ImageURL,
			CreatedAt:    result.CreatedAt,
		}
		if err := o.designs.Save(ctx, design); err != nil {
			log.Error().Err(err).Str("design_id", design.ID).Msg("failed to persist design to gallery")
		}
	}

	log.Info().Str("design_id", result.DesignID).Msg("design generated")
	return result, nil
}

// materializeSource returns a durable URL for the source image, uploading it
// first when it exists only as raw local bytes.
func (o *Orchestrator) materializeSource(ctx context.Context, userID string, src domain.SourceImage) (string, error) {
	if !src.NeedsUpload() {
		return src.URL, nil
	}
	mime := src.MIME
	if mime == "" {
		mime = "image/jpeg"
	}
	key := fmt.Sprintf("designs/%s/%d%s", userID, o.now().UnixMilli(), extensionFor(mime))
	return o.uploader.Upload(ctx, key, src.Data, mime)
}

func extensionFor(mime string) string {
	switch strings.ToLower(mime) {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}
