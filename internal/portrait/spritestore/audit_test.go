package spritestore

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/louisbranch/crewportrait/internal/portrait/catalog"
)

func catalogKeys(c *catalog.Catalog) []string {
	seen := map[string]bool{}
	var keys []string
	for _, gender := range []catalog.Gender{catalog.GenderMale, catalog.GenderFemale} {
		for _, sel := range c.Selections(gender) {
			asset, ok := c.Resolve(sel.Layer, sel.Index, sel.Variant, gender)
			if !ok || seen[asset.Key()] {
				continue
			}
			seen[asset.Key()] = true
			keys = append(keys, asset.Key())
		}
	}
	return keys
}

func TestAuditFindsMissingSprite(t *testing.T) {
	c := catalog.Embedded()
	keys := catalogKeys(c)
	if len(keys) < 2 {
		t.Fatalf("catalog resolved only %d keys", len(keys))
	}

	fsys := fstest.MapFS{}
	for _, key := range keys[1:] {
		fsys[key] = &fstest.MapFile{Data: []byte("png")}
	}

	report, err := Audit(context.Background(), c, NewFSStore(fsys))
	if err != nil {
		t.Fatalf("audit: %v", err)
	}
	if report.Checked != len(keys) {
		t.Fatalf("checked = %d, want %d", report.Checked, len(keys))
	}
	if report.OK() || len(report.Missing) != 1 {
		t.Fatalf("missing = %+v, want exactly one", report.Missing)
	}
	if report.Missing[0].Key != keys[0] {
		t.Fatalf("missing key = %q, want %q", report.Missing[0].Key, keys[0])
	}
}

func TestAuditCompleteStore(t *testing.T) {
	c := catalog.Embedded()
	fsys := fstest.MapFS{}
	for _, key := range catalogKeys(c) {
		fsys[key] = &fstest.MapFile{Data: []byte("png")}
	}
	report, err := Audit(context.Background(), c, NewFSStore(fsys))
	if err != nil {
		t.Fatalf("audit: %v", err)
	}
	if !report.OK() {
		t.Fatalf("missing = %+v", report.Missing)
	}
}

func TestAuditFemaleOnlySprites(t *testing.T) {
	_, ok := catalog.Embedded().Resolve(catalog.LayerHair, 9, 3, catalog.GenderFemale)
	if !ok {
		t.Fatal("hair 9/3 should resolve for female")
	}
	keys := catalogKeys(catalog.Embedded())
	found := false
	for _, key := range keys {
		if key == "PortraitSprites/10_Hair_Hair/hair_09_03_female.png" {
			found = true
		}
	}
	if !found {
		t.Fatal("female-only hair sprite was not audited")
	}
}

type failingStore struct{ err error }

func (f failingStore) Exists(context.Context, string) (bool, error) { return false, f.err }

func TestAuditStopsOnStoreError(t *testing.T) {
	boom := errors.New("bucket unreachable")
	if _, err := Audit(context.Background(), catalog.Embedded(), failingStore{err: boom}); !errors.Is(err, boom) {
		t.Fatalf("audit error = %v, want %v", err, boom)
	}
}

func TestFSStoreExists(t *testing.T) {
	store := NewFSStore(fstest.MapFS{
		"PortraitSprites/0_Body_Skin/body_00_00.png": &fstest.MapFile{Data: []byte("png")},
	})
	tests := []struct {
		key  string
		want bool
	}{
		{key: "PortraitSprites/0_Body_Skin/body_00_00.png", want: true},
		{key: "/PortraitSprites/0_Body_Skin/body_00_00.png", want: true},
		{key: "PortraitSprites/0_Body_Skin", want: false},
		{key: "PortraitSprites/0_Body_Skin/body_09_00.png", want: false},
	}
	for _, tt := range tests {
		got, err := store.Exists(context.Background(), tt.key)
		if err != nil {
			t.Fatalf("exists %q: %v", tt.key, err)
		}
		if got != tt.want {
			t.Fatalf("exists %q = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestNewS3StoreValidates(t *testing.T) {
	if _, err := NewS3Store(S3Config{Bucket: "sprites"}); err == nil {
		t.Fatal("expected error without endpoint")
	}
	if _, err := NewS3Store(S3Config{Endpoint: "localhost:9000"}); err == nil {
		t.Fatal("expected error without bucket")
	}
	store, err := NewS3Store(S3Config{Endpoint: "localhost:9000", Bucket: "sprites", Prefix: "/assets/", AccessKey: "a", SecretKey: "b"})
	if err != nil {
		t.Fatalf("new s3 store: %v", err)
	}
	if got := store.objectKey("PortraitSprites/x.png"); got != "assets/PortraitSprites/x.png" {
		t.Fatalf("object key = %q", got)
	}
}
