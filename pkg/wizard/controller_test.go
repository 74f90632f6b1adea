package wizard_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-quoteform/pkg/model"
	"github.com/goliatone/go-quoteform/pkg/wizard"
)

func TestNew_StartsOnSplashWithDefaults(t *testing.T) {
	c := wizard.New()
	if c.Step() != model.StepSplash {
		t.Fatalf("expected splash, got %s", c.Step())
	}
	if diff := cmp.Diff(model.DefaultFormData(), c.Data()); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestUpdate_MergesWithoutMovingStep(t *testing.T) {
	c := wizard.New()
	if err := c.Advance(model.StepUserInfo); err != nil {
		t.Fatalf("advance: %v", err)
	}

	c.Update(model.Patch{FirstName: model.String("Ada")})
	c.Update(model.Patch{LastName: model.String("Lovelace")})
	c.Update(model.Patch{FirstName: model.String("Grace")})

	got := c.Data()
	if got.FirstName != "Grace" || got.LastName != "Lovelace" {
		t.Fatalf("unexpected record: %+v", got)
	}
	if c.Step() != model.StepUserInfo {
		t.Fatalf("update changed step to %s", c.Step())
	}
}

func TestAdvance_RejectsUnknownStep(t *testing.T) {
	c := wizard.New()
	err := c.Advance(model.Step("payment"))
	if !errors.Is(err, wizard.ErrUnknownStep) {
		t.Fatalf("expected ErrUnknownStep, got %v", err)
	}
	if c.Step() != model.StepSplash {
		t.Fatalf("step changed on error: %s", c.Step())
	}
}

func TestGoBack_FromNotesFollowsMethod(t *testing.T) {
	cases := map[model.Method]model.Step{
		model.MethodLand:      model.StepLand,
		model.MethodShip:      model.StepShip,
		model.MethodPlane:     model.StepPlane,
		model.MethodLogistics: model.StepTransport,
	}
	for method, want := range cases {
		t.Run(string(method), func(t *testing.T) {
			c := wizard.New()
			c.Update(model.Patch{Method: model.MethodPtr(method)})
			if err := c.Advance(model.StepNotes); err != nil {
				t.Fatalf("advance: %v", err)
			}
			if got := c.GoBack(); got != want {
				t.Fatalf("go back = %s, want %s", got, want)
			}
			if c.Step() != want {
				t.Fatalf("current = %s, want %s", c.Step(), want)
			}
		})
	}
}

func TestGoBack_FullChainEndsOnSplash(t *testing.T) {
	c := wizard.New()
	if err := c.Advance(model.StepPlane); err != nil {
		t.Fatalf("advance: %v", err)
	}
	var visited []model.Step
	for i := 0; i < 6; i++ {
		visited = append(visited, c.GoBack())
	}
	want := []model.Step{
		model.StepTransport, model.StepShipping, model.StepUserInfo,
		model.StepLanguage, model.StepSplash, model.StepSplash,
	}
	if diff := cmp.Diff(want, visited); diff != "" {
		t.Fatalf("back chain mismatch (-want +got):\n%s", diff)
	}
}

func TestPreviousStep_IsTotal(t *testing.T) {
	for _, step := range model.Steps {
		for _, method := range model.Methods {
			if got := wizard.PreviousStep(step, method); !got.Valid() {
				t.Fatalf("PreviousStep(%s, %s) = %q is not a step", step, method, got)
			}
		}
	}
	if got := wizard.PreviousStep(model.StepSuccess, model.MethodLand); got != model.StepSuccess {
		t.Fatalf("success should be terminal, got %s", got)
	}
}

func TestSelectMethod_Logistics(t *testing.T) {
	c := wizard.New()
	c.Update(model.Patch{ParticularMethod: model.String("FTL")})

	next, err := c.SelectMethod(model.MethodLogistics)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if next != model.StepNotes || c.Step() != model.StepNotes {
		t.Fatalf("expected notes, got %s / %s", next, c.Step())
	}
	data := c.Data()
	if data.Method != model.MethodLogistics || data.ParticularMethod != "Other" {
		t.Fatalf("unexpected transport data: %+v", data)
	}
}

func TestSelectMethod_DispatchesToDetailStep(t *testing.T) {
	cases := map[model.Method]model.Step{
		model.MethodLand:  model.StepLand,
		model.MethodShip:  model.StepShip,
		model.MethodPlane: model.StepPlane,
	}
	for method, want := range cases {
		c := wizard.New()
		got, err := c.SelectMethod(method)
		if err != nil {
			t.Fatalf("select %s: %v", method, err)
		}
		if got != want {
			t.Fatalf("select %s = %s, want %s", method, got, want)
		}
		if c.Data().ParticularMethod != "" {
			t.Fatalf("particular method should be untouched for %s", method)
		}
	}

	c := wizard.New()
	if _, err := c.SelectMethod(model.Method("TRAIN")); !errors.Is(err, wizard.ErrUnknownMethod) {
		t.Fatalf("expected ErrUnknownMethod, got %v", err)
	}
}

func TestSplashAndLanguageHandlers(t *testing.T) {
	c := wizard.New()
	c.CompleteSplash("203.0.113.7")
	if c.Step() != model.StepLanguage || c.Data().IPv4 != "203.0.113.7" {
		t.Fatalf("splash completion not applied: %s %+v", c.Step(), c.Data())
	}
	if err := c.SelectLanguage(model.LanguageIT); err != nil {
		t.Fatalf("select language: %v", err)
	}
	if c.Step() != model.StepUserInfo || c.Data().Language != model.LanguageIT {
		t.Fatalf("language not applied: %s %+v", c.Step(), c.Data())
	}
	if err := c.SelectLanguage("FR"); !errors.Is(err, wizard.ErrUnknownLanguage) {
		t.Fatalf("expected ErrUnknownLanguage, got %v", err)
	}
}

func TestReset_RestoresDefaults(t *testing.T) {
	var transitions [][2]model.Step
	c := wizard.New(wizard.WithStepListener(func(from, to model.Step) {
		transitions = append(transitions, [2]model.Step{from, to})
	}))
	c.Update(model.Patch{FirstName: model.String("Ada"), IsCompany: model.Bool(true)})
	c.Complete()
	c.Reset()

	if c.Step() != model.StepSplash {
		t.Fatalf("expected splash after reset, got %s", c.Step())
	}
	if diff := cmp.Diff(model.DefaultFormData(), c.Data()); diff != "" {
		t.Fatalf("reset record mismatch (-want +got):\n%s", diff)
	}
	want := [][2]model.Step{
		{model.StepSplash, model.StepSuccess},
		{model.StepSuccess, model.StepSplash},
	}
	if diff := cmp.Diff(want, transitions); diff != "" {
		t.Fatalf("transitions mismatch (-want +got):\n%s", diff)
	}
}
