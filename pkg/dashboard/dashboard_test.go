package dashboard

import (
	"testing"

	"github.com/YuvrajZende/patientcare-flows/pkg/models"
)

func TestSelectCoversAllRoles(t *testing.T) {
	cases := []struct {
		role models.Role
		want Variant
	}{
		{models.RoleHospital, VariantHospital},
		{models.RoleDoctor, VariantDoctor},
		{models.RolePatient, VariantPatient},
		{models.RoleIntern, VariantIntern},
		{models.RoleSuper, VariantSuper},
		{"wizard", VariantUnknown},
		{"", VariantUnknown},
	}
	for _, c := range cases {
		if got := Select(models.User{Role: c.role}); got != c.want {
			t.Fatalf("role %q: got %q want %q", c.role, got, c.want)
		}
	}
}

func TestViewForUnknownRole(t *testing.T) {
	v := ViewFor(models.User{Role: "ghost"})
	if v.Variant != VariantUnknown {
		t.Fatalf("expected unknown variant, got %q", v.Variant)
	}
	if v.Title == "" || v.Subtitle == "" {
		t.Fatalf("unknown view must still carry a display payload: %+v", v)
	}
}

func TestViewForKnownRoles(t *testing.T) {
	v := ViewFor(models.User{Role: models.RoleHospital})
	if v.Title != "Hospital Dashboard" {
		t.Fatalf("unexpected hospital title: %q", v.Title)
	}
	if len(v.Stats) != 4 {
		t.Fatalf("expected 4 hospital stats, got %d", len(v.Stats))
	}

	p := ViewFor(models.User{Role: models.RolePatient})
	if p.Variant != VariantPatient || p.Title != "Patient Dashboard" {
		t.Fatalf("unexpected patient view: %+v", p)
	}
}
