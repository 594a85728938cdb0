package icon

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
)

// pngEncoder is the fixed compression hint applied to every icon write.
var pngEncoder = png.Encoder{CompressionLevel: png.BestCompression}

// Generator writes the app icon set into one appiconset directory.
type Generator struct {
	OutDir string
	// Progress receives the human-facing per-icon and summary lines.
	Progress io.Writer
}

func NewGenerator(outDir string) *Generator {
	return &Generator{OutDir: outDir, Progress: os.Stdout}
}

// Generate renders one icon and writes it under OutDir. The destination
// directory is created on demand; repeat runs overwrite the file.
func (g *Generator) Generate(s Spec) error {
	img, err := Render(s.Pixels())
	if err != nil {
		return fmt.Errorf("render %s: %w", s.Filename(), err)
	}
	if err := os.MkdirAll(g.OutDir, 0o755); err != nil {
		return fmt.Errorf("create icon directory for %s: %w", s.Filename(), err)
	}
	file, err := os.Create(filepath.Join(g.OutDir, s.Filename()))
	if err != nil {
		return fmt.Errorf("save %s: %w", s.Filename(), err)
	}
	if err := pngEncoder.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("encode %s: %w", s.Filename(), err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("save %s: %w", s.Filename(), err)
	}
	return nil
}

// GenerateAll renders the full icon set in catalog order. A failed icon is
// reported and counted; it never aborts the remaining icons.
func (g *Generator) GenerateAll() Report {
	fmt.Fprintln(g.Progress, "🎨 Creating Screen Time Rewards app icons...")

	rep := Report{Total: len(AppIconSet)}
	for _, s := range AppIconSet {
		if err := g.Generate(s); err != nil {
			fmt.Fprintf(g.Progress, "❌ Error creating %s: %v\n", s.Filename(), err)
			rep.Failed = append(rep.Failed, s.Filename())
			continue
		}
		fmt.Fprintf(g.Progress, "   ✅ Created %s\n", s.Filename())
		rep.Succeeded++
	}

	fmt.Fprintf(g.Progress, "\n✅ Successfully created %d/%d icons\n", rep.Succeeded, rep.Total)
	if rep.AllOK() {
		fmt.Fprintln(g.Progress, "🎉 All app icons created successfully!")
		fmt.Fprintln(g.Progress, "\n🎨 Icon Design Features:")
		fmt.Fprintln(g.Progress, "   • Blue background (trustworthy, family-friendly)")
		fmt.Fprintln(g.Progress, "   • White clock face (time management theme)")
		fmt.Fprintln(g.Progress, "   • Clock hands showing 3:00 (structured time)")
		fmt.Fprintln(g.Progress, "   • Gold star (rewards/achievements)")
		fmt.Fprintln(g.Progress, "   • Clean, recognizable design")
	} else {
		fmt.Fprintln(g.Progress, "⚠️  Some icons may need manual creation")
	}
	fmt.Fprintf(g.Progress, "\n📁 Icons saved to:\n   %s\n", g.OutDir)

	return rep
}
