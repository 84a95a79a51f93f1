package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func parseWith(t *testing.T, target string, opt Options) Params {
	t.Helper()
	app := fiber.New()
	var got Params
	app.Get("/t", func(c *fiber.Ctx) error {
		got = ParseFiber(c, "created_at", "desc", opt)
		return c.SendStatus(fiber.StatusOK)
	})
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	resp.Body.Close()
	return got
}

func TestParseFiberDefaultsToAll(t *testing.T) {
	p := parseWith(t, "/t", DefaultOpts)
	if !p.All {
		t.Fatalf("missing per_page must mean all, got %+v", p)
	}
	if p.PerPage != DefaultOpts.AllHardCap || p.Page != 1 {
		t.Errorf("all mode params = %+v", p)
	}
	if p.SortBy != "created_at" || p.SortOrder != "desc" {
		t.Errorf("default sort = %s %s", p.SortBy, p.SortOrder)
	}
}

func TestParseFiberExplicitPaging(t *testing.T) {
	p := parseWith(t, "/t?page=3&per_page=50&sort_by=email&order=asc", DefaultOpts)
	if p.All {
		t.Fatal("explicit per_page must not be all")
	}
	if p.Page != 3 || p.PerPage != 50 {
		t.Errorf("params = %+v", p)
	}
	if p.Offset() != 100 || p.Limit() != 50 {
		t.Errorf("offset/limit = %d/%d", p.Offset(), p.Limit())
	}
	if p.SortBy != "email" || p.SortOrder != "asc" {
		t.Errorf("sort = %s %s", p.SortBy, p.SortOrder)
	}
}

func TestParseFiberClampsPerPage(t *testing.T) {
	p := parseWith(t, "/t?per_page=9999", DefaultOpts)
	if p.PerPage != DefaultOpts.MaxPerPage {
		t.Errorf("PerPage = %d, want clamped to %d", p.PerPage, DefaultOpts.MaxPerPage)
	}

	p = parseWith(t, "/t?page=-2&per_page=10", DefaultOpts)
	if p.Page != 1 {
		t.Errorf("negative page must normalize to 1, got %d", p.Page)
	}
}

func TestSafeOrderClauseUsesWhitelist(t *testing.T) {
	allowed := map[string]string{
		"created_at": "created_at",
		"name":       "LOWER(name)",
	}

	p := Params{SortBy: "name", SortOrder: "asc"}
	clause, err := p.SafeOrderClause(allowed, "created_at")
	if err != nil {
		t.Fatalf("SafeOrderClause: %v", err)
	}
	if clause != "LOWER(name) ASC" {
		t.Errorf("clause = %q", clause)
	}

	// unknown columns fall back to the default instead of reaching SQL
	p = Params{SortBy: "id; DROP TABLE students", SortOrder: "desc"}
	clause, err = p.SafeOrderClause(allowed, "created_at")
	if err != nil {
		t.Fatalf("SafeOrderClause: %v", err)
	}
	if clause != "created_at DESC" {
		t.Errorf("clause = %q, want default", clause)
	}
}

func TestBuildMeta(t *testing.T) {
	m := BuildMeta(101, Params{Page: 2, PerPage: 25})
	if m.TotalPages != 5 {
		t.Errorf("TotalPages = %d, want 5", m.TotalPages)
	}
	if !m.HasNext || !m.HasPrev {
		t.Errorf("HasNext/HasPrev = %v/%v", m.HasNext, m.HasPrev)
	}

	m = BuildMeta(0, Params{Page: 1, PerPage: 25})
	if m.TotalPages != 0 || m.HasNext || m.HasPrev {
		t.Errorf("empty meta = %+v", m)
	}
}
