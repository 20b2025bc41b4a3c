package i18n

import "testing"

func TestGetCatalogFallback(t *testing.T) {
	base := GetCatalog("en-US")
	if base == nil {
		t.Fatal("expected base catalog")
	}
	if GetCatalog("") != base {
		t.Fatal("expected empty locale to use en-US")
	}
	if fallback := GetCatalog("missing-locale"); fallback != base {
		t.Fatal("expected fallback to en-US catalog")
	}
}

func TestGetCatalogMatchesRegion(t *testing.T) {
	custom := NewCatalog("pt-BR", map[Code]string{"code": "ok"})
	RegisterCatalog("pt-BR", custom)
	if got := GetCatalog("pt-BR"); got != custom {
		t.Fatal("expected exact registered catalog")
	}
	if got := GetCatalog("pt-BR,pt;q=0.9,en;q=0.5"); got != custom {
		t.Fatalf("expected Accept-Language match, got %q", got.Locale())
	}
	if got := GetCatalog("en-GB"); got.Locale() != BaseLocale {
		t.Fatalf("expected en-GB to match en-US, got %q", got.Locale())
	}
}

func TestFormat(t *testing.T) {
	base := GetCatalog(BaseLocale)
	got := base.Format(CodeSkinRangeOutOfBounds, map[string]string{"Min": "7", "Max": "9"})
	if got != "Skin tone range 7 to 9 is outside the palette." {
		t.Fatalf("format = %q", got)
	}
}

func TestFormatFallbacks(t *testing.T) {
	cat := NewCatalog("test", map[Code]string{
		"code": "hello {{.Name}}",
	})

	if cat.Format("unknown", nil) != "unknown" {
		t.Fatal("expected code fallback when template missing")
	}
	if cat.Format("code", nil) != "hello <no value>" {
		t.Fatal("expected template to render missing metadata")
	}
}

func TestFormatTemplateErrorFallback(t *testing.T) {
	cat := NewCatalog("test", map[Code]string{
		"code": "{{ if .Name }}",
	})
	if cat.Format("code", map[string]string{"Name": "X"}) != "{{ if .Name }}" {
		t.Fatal("expected template fallback on parse error")
	}
}
