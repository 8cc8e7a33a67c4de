package factory

import (
	"testing"

	cfg "github.com/automoto/tidewalker/config"
	"github.com/automoto/tidewalker/shared/leveldata"
)

func TestHostileTypeCoversParsedVariants(t *testing.T) {
	layout, err := leveldata.Parse([]string{"P01X"}, nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []string{cfg.HostileCrab, cfg.HostileShark}
	if len(layout.Hostiles) != len(want) {
		t.Fatalf("hostiles = %d, want %d", len(layout.Hostiles), len(want))
	}
	for i, h := range layout.Hostiles {
		name, tc := HostileType(h.Variant)
		if name != want[i] || tc.Name != name {
			t.Errorf("variant %d = %q (%q), want %q", h.Variant, name, tc.Name, want[i])
		}
	}
}
