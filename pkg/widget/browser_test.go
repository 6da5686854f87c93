package widget

import (
	"testing"

	"github.com/goliatone/go-widgets/pkg/permission"
)

func TestBrowserData_NilForAnonymous(t *testing.T) {
	typ := MustNew(testConfig())

	if got := typ.BrowserData(nil); got != nil {
		t.Fatalf("nil request must not receive editor metadata: %+v", got)
	}
	if got := typ.BrowserData(&Request{}); got != nil {
		t.Fatalf("anonymous request must not receive editor metadata: %+v", got)
	}
}

func TestBrowserData_DescriptorForAuthenticated(t *testing.T) {
	cfg := testConfig()
	cfg.Action = "/modules/fancy-article"
	cfg.Contextual = true
	cfg.SkipInitialModal = true
	typ := MustNew(cfg, WithPermissionEvaluator(adminOnly{}))

	got := typ.BrowserData(editorRequest())
	if got == nil {
		t.Fatalf("expected descriptor for authenticated request")
	}
	if got.Name != "fancy-article" || got.Label != "Fancy Article" {
		t.Fatalf("unexpected identity: %+v", got)
	}
	if got.Action != "/modules/fancy-article" {
		t.Fatalf("action must pass through unmodified, got %q", got.Action)
	}
	if !got.Contextual || !got.SkipInitialModal {
		t.Fatalf("editor flags lost: %+v", got)
	}
	if len(got.Schema) != 2 {
		t.Fatalf("expected permission-scoped schema, got %v", got.Schema)
	}
}

func TestBrowserData_SchemaIsPermissionScoped(t *testing.T) {
	typ := MustNew(testConfig(), WithPermissionEvaluator(noCapabilities{}))

	got := typ.BrowserData(editorRequest())
	if len(got.Schema) != 1 || got.Schema[0].Name != "title" {
		t.Fatalf("tagged fields must be filtered for this actor, got %v", got.Schema)
	}
}

func TestBrowserData_Overrides(t *testing.T) {
	cfg := testConfig()
	cfg.Action = "/modules/fancy-article"
	cfg.Browser = BrowserOptions{Label: "Article Block", Action: "/custom"}
	typ := MustNew(cfg)

	got := typ.BrowserData(editorRequest())
	if got.Label != "Article Block" || got.Action != "/custom" {
		t.Fatalf("browser overrides not applied: %+v", got)
	}
	if got.Name != "fancy-article" {
		t.Fatalf("unset override must keep the default, got %q", got.Name)
	}
}

type noCapabilities struct{}

func (noCapabilities) Can(*permission.Actor, string) bool { return false }
