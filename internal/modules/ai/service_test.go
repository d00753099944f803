package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/awqat-travel/core/internal/pkg/apperrors"
	"go.uber.org/zap"
)

type fakeProvider struct {
	lastSystem  string
	lastProfile promptProfile
	reply       string
	err         error
}

func (f *fakeProvider) Complete(_ context.Context, system, _ string, profile promptProfile) (string, error) {
	f.lastSystem = system
	f.lastProfile = profile
	return f.reply, f.err
}

func TestGenerateEmptyPromptIsPreconditionFailure(t *testing.T) {
	p := &fakeProvider{reply: "x"}
	svc := NewService(p, zap.NewNop())

	if _, err := svc.Generate(context.Background(), "   ", TypeBlog); !apperrors.Is(err, apperrors.KindPrecondition) {
		t.Errorf("err = %v, want precondition", err)
	}
	if p.lastSystem != "" {
		t.Error("blank prompt must fail before the provider is called")
	}

	if _, err := svc.GenerateTitle(context.Background(), ""); !apperrors.Is(err, apperrors.KindPrecondition) {
		t.Errorf("GenerateTitle err = %v, want precondition", err)
	}
	if _, err := svc.GenerateSEO(context.Background(), ""); !apperrors.Is(err, apperrors.KindPrecondition) {
		t.Errorf("GenerateSEO err = %v, want precondition", err)
	}
}

func TestGenerateWithoutProviderIsPreconditionFailure(t *testing.T) {
	svc := NewService(nil, zap.NewNop())

	if _, err := svc.Generate(context.Background(), "prompt", TypeBlog); !apperrors.Is(err, apperrors.KindPrecondition) {
		t.Errorf("err = %v, want precondition", err)
	}
}

func TestGenerateWrapsProviderFailure(t *testing.T) {
	svc := NewService(&fakeProvider{err: errors.New("boom")}, zap.NewNop())

	if _, err := svc.Generate(context.Background(), "prompt", TypeBlog); !apperrors.Is(err, apperrors.KindRemote) {
		t.Errorf("err = %v, want remote", err)
	}
}

func TestGeneratePicksProfilePerType(t *testing.T) {
	p := &fakeProvider{reply: "ok"}
	svc := NewService(p, zap.NewNop())

	if _, err := svc.Generate(context.Background(), "prompt", TypeBlog); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if p.lastProfile.Temperature != 0.7 || p.lastProfile.MaxTokens != 4096 {
		t.Errorf("blog profile = %+v", p.lastProfile)
	}

	if _, err := svc.Generate(context.Background(), "prompt", TypeTitle); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if p.lastProfile.Temperature != 0.5 || p.lastProfile.MaxTokens != 100 {
		t.Errorf("title profile = %+v", p.lastProfile)
	}

	if _, err := svc.Generate(context.Background(), "prompt", "unknown"); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if p.lastSystem != fallbackSystemPrompt {
		t.Errorf("unknown type must use the fallback system prompt")
	}
}

func TestGenerateTitleCleansResponse(t *testing.T) {
	p := &fakeProvider{reply: "\n\"أفضل شاليهات الكويت\"\nسطر إضافي"}
	svc := NewService(p, zap.NewNop())

	title, err := svc.GenerateTitle(context.Background(), "شاليهات")
	if err != nil {
		t.Fatalf("GenerateTitle: %v", err)
	}
	if title != "أفضل شاليهات الكويت" {
		t.Errorf("title = %q", title)
	}
}

func TestGenerateSEOParsesTwoLines(t *testing.T) {
	p := &fakeProvider{reply: "عنوان محسن\nوصف جذاب للمقال"}
	svc := NewService(p, zap.NewNop())

	result, err := svc.GenerateSEO(context.Background(), "مقال")
	if err != nil {
		t.Fatalf("GenerateSEO: %v", err)
	}
	if result.MetaTitle != "عنوان محسن" || result.MetaDescription != "وصف جذاب للمقال" {
		t.Errorf("result = %+v", result)
	}
}

func TestGenerateSEOFallsBackToInputTitle(t *testing.T) {
	p := &fakeProvider{reply: "\n\n"}
	svc := NewService(p, zap.NewNop())

	result, err := svc.GenerateSEO(context.Background(), "العنوان الأصلي")
	if err != nil {
		t.Fatalf("GenerateSEO: %v", err)
	}
	if result.MetaTitle != "العنوان الأصلي" {
		t.Errorf("meta title = %q", result.MetaTitle)
	}
}

func TestParseSEOResponseJoinsExtraLines(t *testing.T) {
	got := ParseSEOResponse("title line\n\ndesc part one\ndesc part two")
	if got.MetaTitle != "title line" {
		t.Errorf("meta title = %q", got.MetaTitle)
	}
	if got.MetaDescription != "desc part one desc part two" {
		t.Errorf("meta description = %q", got.MetaDescription)
	}
}

func TestCleanTitle(t *testing.T) {
	cases := map[string]string{
		"«عنوان»":         "عنوان",
		"  'quoted'  ":    "quoted",
		"\n\nfirst\nnext": "first",
		"":                "",
	}
	for in, want := range cases {
		if got := CleanTitle(in); got != want {
			t.Errorf("CleanTitle(%q) = %q, want %q", in, got, want)
		}
	}
}
