package gem

import (
	"strings"
	"testing"
)

func testSequence(t *testing.T) *Sequence {
	t.Helper()
	seq, err := NewSequence(
		Definition{ID: "a", Name: "A", Marker: "AAA-", Instructions: "be a"},
		Definition{ID: "b", Name: "B", Marker: "BBB-", Instructions: "be b"},
		Definition{ID: "c", Name: "C", Marker: "RESULTADO", Instructions: "be c"},
	)
	if err != nil {
		t.Fatalf("NewSequence: %v", err)
	}
	return seq
}

func TestSequenceNext(t *testing.T) {
	seq := testSequence(t)

	tests := []struct {
		name   string
		id     string
		wantID string
		wantOK bool
	}{
		{"first to second", "a", "b", true},
		{"middle to last", "b", "c", true},
		{"last has no successor", "c", "", false},
		{"unknown id restarts at entry point", "zzz", "a", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, ok := seq.Next(tt.id)
			if ok != tt.wantOK {
				t.Fatalf("Next(%q) ok = %v, want %v", tt.id, ok, tt.wantOK)
			}
			if ok && next.ID != tt.wantID {
				t.Fatalf("Next(%q) = %q, want %q", tt.id, next.ID, tt.wantID)
			}
		})
	}
}

func TestSequencePosition(t *testing.T) {
	seq := testSequence(t)

	if pos, ok := seq.Position("b"); !ok || pos != 1 {
		t.Fatalf("Position(b) = %d, %v; want 1, true", pos, ok)
	}
	if _, ok := seq.Position("missing"); ok {
		t.Fatal("Position(missing) should not be found")
	}
}

func TestNewSequenceRejectsDuplicates(t *testing.T) {
	_, err := NewSequence(
		Definition{ID: "a", Name: "A", Marker: "X-", Instructions: "x"},
		Definition{ID: "a", Name: "A2", Marker: "Y-", Instructions: "y"},
	)
	if err == nil {
		t.Fatal("expected duplicate id error")
	}
}

func TestNewSequenceRejectsEmpty(t *testing.T) {
	if _, err := NewSequence(); err == nil {
		t.Fatal("expected error for empty sequence")
	}
}

func TestDefinitionValidate(t *testing.T) {
	tests := []struct {
		name string
		def  Definition
	}{
		{"missing id", Definition{Name: "A", Marker: "X-", Instructions: "x"}},
		{"missing name", Definition{ID: "a", Marker: "X-", Instructions: "x"}},
		{"missing instructions", Definition{ID: "a", Name: "A", Marker: "X-"}},
		{"missing marker", Definition{ID: "a", Name: "A", Instructions: "x"}},
		{"blank instructions", Definition{ID: "a", Name: "A", Marker: "X-", Instructions: "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.def.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestMarkerPrefixes(t *testing.T) {
	seq := testSequence(t)
	prefixes := seq.MarkerPrefixes()
	if len(prefixes) != 2 {
		t.Fatalf("got %d prefixes, want 2: %v", len(prefixes), prefixes)
	}
	for _, p := range prefixes {
		if !strings.HasSuffix(p, "-") {
			t.Fatalf("prefix %q does not end in dash", p)
		}
	}
}

func TestCatalog(t *testing.T) {
	cat := Catalog()

	if cat.Len() != 7 {
		t.Fatalf("catalog has %d gems, want 7", cat.Len())
	}
	if cat.First().ID != "gem1_mestre_mapeamento" {
		t.Fatalf("first gem = %s", cat.First().ID)
	}

	wantOrder := []string{
		"gem1_mestre_mapeamento",
		"gem2_diagnosticador_foco",
		"gem3_validador_estrategico",
		"gem4_laboratorio_cientifico",
		"gem5_tutor_socratico",
		"gem6_arquiteto_implementacao",
		"gem7_construtor_sistemas",
	}
	for i, def := range cat.All() {
		if def.ID != wantOrder[i] {
			t.Fatalf("position %d = %s, want %s", i, def.ID, wantOrder[i])
		}
	}

	wantMarkers := map[string]string{
		"gem1_mestre_mapeamento":       "MAPA-",
		"gem2_diagnosticador_foco":     "FOCO-",
		"gem3_validador_estrategico":   "RESULTADO DA VALIDAÇÃO",
		"gem4_laboratorio_cientifico":  "METODO-",
		"gem5_tutor_socratico":         "CERTIFICAÇÃO",
		"gem6_arquiteto_implementacao": "PLANO-",
		"gem7_construtor_sistemas":     "KBF-",
	}
	for id, marker := range wantMarkers {
		def, ok := cat.ByID(id)
		if !ok {
			t.Fatalf("catalog missing %s", id)
		}
		if def.Marker != marker {
			t.Fatalf("%s marker = %q, want %q", id, def.Marker, marker)
		}
		if strings.TrimSpace(def.Instructions) == "" {
			t.Fatalf("%s has empty instructions", id)
		}
	}

	// The last gem ends the journey.
	if _, ok := cat.Next("gem7_construtor_sistemas"); ok {
		t.Fatal("gem7 should have no successor")
	}
}
