package sqlite

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/louisbranch/crewportrait/internal/crew"
	apperrors "github.com/louisbranch/crewportrait/internal/platform/errors"
	"github.com/louisbranch/crewportrait/internal/portrait/appearance"
	"github.com/louisbranch/crewportrait/internal/portrait/catalog"
	"github.com/louisbranch/crewportrait/internal/services/portrait/storage"
)

func openTempStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "crews.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close store: %v", err)
		}
	})
	return store
}

func testCrew(id string, members ...crew.Member) crew.Crew {
	c := crew.Crew{
		ID:          id,
		Description: "crew " + id,
		CreatedAt:   time.Date(1943, time.May, 16, 21, 0, 0, 0, time.UTC),
	}
	for _, m := range members {
		m = crew.Normalize(m)
		c.Members = append(c.Members, crew.Portrait{Character: appearance.Default(m.Gender), Metadata: m})
	}
	return c
}

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open(""); err == nil {
		t.Fatal("expected empty path error")
	}
}

func TestPutGetCrewRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	input := testCrew("crew-1",
		crew.Member{ID: "m-1", FirstName: "Guy", LastName: "Gibson", Role: crew.RolePilot, SkillRanks: crew.SkillRanks{Flying: 6}},
		crew.Member{ID: "m-2", FirstName: "Joan", Gender: catalog.GenderFemale, Class: crew.ClassBaseCrew, Job: crew.JobRAFMedic},
	)
	if err := store.PutCrew(context.Background(), input); err != nil {
		t.Fatalf("put crew: %v", err)
	}

	got, err := store.GetCrew(context.Background(), "crew-1")
	if err != nil {
		t.Fatalf("get crew: %v", err)
	}
	if !reflect.DeepEqual(got, input) {
		t.Fatalf("crew round trip mismatch:\n got %+v\nwant %+v", got, input)
	}
}

func TestPutCrewReplacesMembers(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()
	if err := store.PutCrew(ctx, testCrew("crew-1", crew.Member{ID: "a"}, crew.Member{ID: "b"})); err != nil {
		t.Fatalf("put crew: %v", err)
	}
	if err := store.PutCrew(ctx, testCrew("crew-1", crew.Member{ID: "c", FirstName: "Cyril"})); err != nil {
		t.Fatalf("replace crew: %v", err)
	}
	got, err := store.GetCrew(ctx, "crew-1")
	if err != nil {
		t.Fatalf("get crew: %v", err)
	}
	if len(got.Members) != 1 || got.Members[0].Metadata.FirstName != "Cyril" {
		t.Fatalf("members = %+v", got.Members)
	}
}

func TestGetCrewNotFound(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	_, err := store.GetCrew(context.Background(), "missing")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("get missing crew error = %v, want %v", err, storage.ErrNotFound)
	}
}

func TestListCrewMembersPagination(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()
	for c := 0; c < 3; c++ {
		var members []crew.Member
		for i := 0; i < 3; i++ {
			members = append(members, crew.Member{ID: fmt.Sprintf("m-%d-%d", c, i), FirstName: fmt.Sprintf("N%d%d", c, i)})
		}
		if err := store.PutCrew(ctx, testCrew(fmt.Sprintf("crew-%d", c), members...)); err != nil {
			t.Fatalf("put crew %d: %v", c, err)
		}
	}

	var names []string
	token := ""
	pages := 0
	for {
		page, err := store.ListCrewMembers(ctx, storage.MemberQuery{PageSize: 4, PageToken: token})
		if err != nil {
			t.Fatalf("list page %d: %v", pages, err)
		}
		pages++
		for _, m := range page.Members {
			names = append(names, m.Portrait.Metadata.FirstName)
		}
		if page.NextPageToken == "" {
			break
		}
		token = page.NextPageToken
	}
	want := []string{"N00", "N01", "N02", "N10", "N11", "N12", "N20", "N21", "N22"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("names = %v, want %v", names, want)
	}
	if pages != 3 {
		t.Fatalf("pages = %d, want 3", pages)
	}
}

func TestListCrewMembersFilter(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()
	input := testCrew("crew-1",
		crew.Member{ID: "m-1", FirstName: "Arthur", Role: crew.RolePilot, BirthDate: "1915-02-01"},
		crew.Member{ID: "m-2", FirstName: "Betty", Gender: catalog.GenderFemale, Class: crew.ClassBaseCrew, Job: crew.JobAAFCook, BirthDate: "1920-06-01"},
		crew.Member{ID: "m-3", FirstName: "Cy", Ethnicity: crew.EthnicityAfrican, Role: crew.RoleGunner, BirthDate: "1919-03-03"},
	)
	if err := store.PutCrew(ctx, input); err != nil {
		t.Fatalf("put crew: %v", err)
	}

	tests := []struct {
		filter string
		want   []string
	}{
		{filter: `gender = "female"`, want: []string{"Betty"}},
		{filter: `class = "AirCrew" AND birth_date < "1916-01-01"`, want: []string{"Arthur"}},
		{filter: `ethnicity = "African" OR job = "AAFCook"`, want: []string{"Betty", "Cy"}},
	}
	for _, tt := range tests {
		t.Run(tt.filter, func(t *testing.T) {
			page, err := store.ListCrewMembers(ctx, storage.MemberQuery{Filter: tt.filter})
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			var got []string
			for _, m := range page.Members {
				got = append(got, m.Portrait.Metadata.FirstName)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("names = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestListCrewMembersRejectsBadInput(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()
	_, err := store.ListCrewMembers(ctx, storage.MemberQuery{Filter: `rank = "Sergeant"`})
	if code := apperrors.GetCode(err); code != apperrors.CodeFilterInvalid {
		t.Fatalf("bad filter code = %q, want %q", code, apperrors.CodeFilterInvalid)
	}
	_, err = store.ListCrewMembers(ctx, storage.MemberQuery{PageToken: "!!not-base64"})
	if !errors.Is(err, storage.ErrPageTokenInvalid) {
		t.Fatalf("bad token error = %v, want %v", err, storage.ErrPageTokenInvalid)
	}
}

func TestPageTokenRoundTrip(t *testing.T) {
	t.Parallel()

	crewID, position, err := decodePageToken(encodePageToken("abc/def", 7))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if crewID != "abc/def" || position != 7 {
		t.Fatalf("decoded = %q/%d", crewID, position)
	}
}
