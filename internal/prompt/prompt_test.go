package prompt

import "testing"

func TestRegistryEntries(t *testing.T) {
	prompts := List()
	if len(prompts) != 2 {
		t.Fatalf("List() returned %d prompts, want 2", len(prompts))
	}

	for _, p := range prompts {
		if p.ID == "" || p.Name == "" || p.Description == "" || p.Text == "" {
			t.Errorf("prompt %q has empty fields: %+v", p.ID, p)
		}
	}
}

func TestByID(t *testing.T) {
	p := ByID("expandir")
	if p.ID != "expandir" {
		t.Errorf("ByID(expandir) = %q", p.ID)
	}
}

func TestByIDFallsBackToDefault(t *testing.T) {
	for _, id := range []string{"", "unknown"} {
		p := ByID(id)
		if p.ID != DefaultID {
			t.Errorf("ByID(%q) = %q, want default %q", id, p.ID, DefaultID)
		}
	}
}

func TestListReturnsCopy(t *testing.T) {
	prompts := List()
	prompts[0].ID = "mutated"

	if ByID(DefaultID).ID != DefaultID {
		t.Error("mutating List() result changed the registry")
	}
}
