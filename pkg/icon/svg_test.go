package icon

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteMaster(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteMaster(&buf, 1024); err != nil {
		t.Fatalf("WriteMaster: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		`<svg`,
		`width="1024"`,
		`height="1024"`,
		backgroundColor,
		`<circle`,
		`<line`,
		`<polygon`,
		starFillColor,
		`</svg>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("master SVG missing %q:\n%s", want, out)
		}
	}
}

func TestWriteMasterOmitsStarBelowThreshold(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteMaster(&buf, 32); err != nil {
		t.Fatalf("WriteMaster: %v", err)
	}
	if strings.Contains(buf.String(), "<polygon") {
		t.Error("master SVG at size 32 contains a star polygon")
	}
}

func TestWriteMasterRejectsNonPositiveSize(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteMaster(&buf, 0); err == nil {
		t.Error("WriteMaster(0) succeeded; want error")
	}
}
