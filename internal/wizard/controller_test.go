package wizard

import (
	"context"
	"errors"
	"testing"

	"github.com/yog-patel/home-designer-ai-app/internal/catalog"
	"github.com/yog-patel/home-designer-ai-app/internal/domain"
)

type stubSubmitter struct {
	calls  int
	gotReq domain.DesignRequest
	result *domain.GenerationResult
	err    error
}

func (s *stubSubmitter) Generate(ctx context.Context, req domain.DesignRequest) (*domain.GenerationResult, error) {
	s.calls++
	s.gotReq = req
	return s.result, s.err
}

func TestControllerFullRun(t *testing.T) {
	sub := &stubSubmitter{result: &domain.GenerationResult{DesignID: "d1", ImageURL: "https://cdn.example.com/out.jpg"}}
	c, err := NewController(domain.DesignRequest{DesignType: catalog.DesignTypeGarden}, sub)
	if err != nil {
		t.Fatal(err)
	}

	if got := c.CurrentStep(); got != StepPhoto {
		t.Fatalf("first step = %s", got)
	}
	if c.IsStepComplete(0) {
		t.Error("photo step complete before photo is set")
	}

	c.SetSource(domain.SourceImage{Data: []byte{1, 2, 3}, MIME: "image/png"})
	if adv, err := c.Advance(context.Background()); err != nil || adv.Submitted {
		t.Fatalf("advance from photo: adv=%+v err=%v", adv, err)
	}

	c.SetArea("backyard")
	if _, err := c.Advance(context.Background()); err != nil {
		t.Fatal(err)
	}

	if got := c.CurrentStep(); got != StepPalette {
		t.Fatalf("garden flow should end on palette, got %s", got)
	}
	c.SetPalette("forest")
	if !c.IsComplete() {
		t.Fatal("request should be complete")
	}

	adv, err := c.Advance(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !adv.Submitted || adv.Result == nil || adv.Result.DesignID != "d1" {
		t.Errorf("advance on final step = %+v", adv)
	}
	if sub.calls != 1 {
		t.Errorf("submitter called %d times", sub.calls)
	}
	if sub.gotReq.PaletteID != "forest" || sub.gotReq.AreaID != "backyard" {
		t.Errorf("submitted request = %+v", sub.gotReq)
	}
}

func TestControllerSubmitError(t *testing.T) {
	sub := &stubSubmitter{err: domain.ErrQuotaExceeded}
	c, err := NewController(domain.DesignRequest{
		DesignType:   catalog.DesignTypePaint,
		Source:       domain.SourceImage{URL: "https://cdn.example.com/room.jpg"},
		AreaID:       "bedroom",
		PaintColorID: "sage",
	}, sub)
	if err != nil {
		t.Fatal(err)
	}

	c.current = len(c.steps) - 1
	adv, err := c.Advance(context.Background())
	if !errors.Is(err, domain.ErrQuotaExceeded) {
		t.Errorf("err = %v, want ErrQuotaExceeded", err)
	}
	if !adv.Submitted || adv.Result != nil {
		t.Errorf("adv = %+v", adv)
	}
}

func TestControllerRetreatAndRestart(t *testing.T) {
	c, err := NewController(domain.DesignRequest{DesignType: catalog.DesignTypeInterior}, &stubSubmitter{})
	if err != nil {
		t.Fatal(err)
	}

	if c.Retreat() {
		t.Error("retreat from the first step should report false")
	}

	c.SetSource(domain.SourceImage{URL: "https://cdn.example.com/room.jpg"})
	if _, err := c.Advance(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !c.Retreat() {
		t.Error("retreat from the second step should report true")
	}
	if c.Current() != 0 {
		t.Errorf("current = %d after retreat", c.Current())
	}

	c.SetArea("kitchen")
	c.SetStyle("modern")
	c.Restart()
	req := c.Request()
	if req.AreaID != "" || req.StyleID != "" || !req.Source.IsZero() {
		t.Errorf("restart did not clear the request: %+v", req)
	}
	if req.DesignType != catalog.DesignTypeInterior {
		t.Errorf("restart dropped the design type: %q", req.DesignType)
	}
	if c.Current() != 0 {
		t.Errorf("current = %d after restart", c.Current())
	}
}

func TestNewControllerRejectsUnknownType(t *testing.T) {
	if _, err := NewController(domain.DesignRequest{DesignType: "patio"}, &stubSubmitter{}); !errors.Is(err, domain.ErrInvalidRequest) {
		t.Errorf("err = %v, want ErrInvalidRequest", err)
	}
}
