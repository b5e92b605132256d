// Command pbrgen converts a base color photograph into a set of PBR
// texture maps, written either as individual files or as a zip archive.
//
// Container format decode happens here, not in the library: the core
// consumes an already-decoded raster.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	_ "github.com/chai2010/webp"

	"github.com/texforge/pbrgen"
)

func main() {
	var (
		input        = flag.String("input", "", "source image (png, jpeg or webp)")
		outDir       = flag.String("out", ".", "output directory for map files")
		zipPath      = flag.String("zip", "", "write a zip archive instead of individual files")
		name         = flag.String("name", "material", "base name for output files")
		wide         = flag.Bool("wide", false, "use the 2048x1080 target instead of 2048x2048")
		normal       = flag.Float64("normal", 2.5, "normal strength [0.5, 6]")
		gl           = flag.Bool("gl", false, "use the OpenGL normal convention instead of DirectX")
		displacement = flag.Float64("displacement", 1, "displacement strength [0, 5]")
		heightMin    = flag.Float64("height-min", 0, "height minimum percentile [0, 100]")
		heightMax    = flag.Float64("height-max", 100, "height maximum percentile [0, 100]")
		roughness    = flag.Float64("roughness", 0, "roughness offset [-100, 100]")
		metallic     = flag.Float64("metallic", 0, "metallic value [0, 1]")
		ao           = flag.Float64("ao", 1, "ambient occlusion strength [0, 2]")
		border       = flag.Int("border", 0, "border thickness in pixels, all four sides")
		borderColor  = flag.String("border-color", "000000", "border color as RRGGBB hex")
		lossless     = flag.Bool("lossless", false, "encode the albedo as PNG instead of WebP")
		verbose      = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *verbose {
		pbrgen.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	src, err := decodeImage(*input)
	if err != nil {
		log.Fatalf("Failed to decode %s: %v", *input, err)
	}

	params := pbrgen.DefaultParams()
	params.NormalStrength = *normal
	params.DisplacementStrength = *displacement
	params.HeightMin = *heightMin
	params.HeightMax = *heightMax
	params.RoughnessOffset = *roughness
	params.Metallic = *metallic
	params.AOStrength = *ao
	if *wide {
		params.Resolution = pbrgen.Res2048Wide
	}
	if *gl {
		params.NormalConvention = pbrgen.ConventionGL
	}
	if *border > 0 {
		c, err := parseHexColor(*borderColor)
		if err != nil {
			log.Fatalf("Invalid border color: %v", err)
		}
		params.Border = pbrgen.Border{
			Top: *border, Bottom: *border, Left: *border, Right: *border,
			Color: c,
		}
	}

	var opts []pbrgen.Option
	if *lossless {
		opts = append(opts, pbrgen.WithAlbedoFormat(pbrgen.FormatPNG))
	}

	set, err := pbrgen.Synthesize(src, params, opts...)
	if err != nil {
		log.Fatalf("Synthesis failed: %v", err)
	}

	if *zipPath != "" {
		if err := writeArchive(set, *zipPath, *name); err != nil {
			log.Fatalf("Failed to write archive: %v", err)
		}
		log.Printf("Texture pack saved to %s", *zipPath)
		return
	}

	for _, e := range set.Entries() {
		path := filepath.Join(*outDir, *name+"_"+e.Name+e.Format.Ext())
		if err := os.WriteFile(path, e.Data, 0o644); err != nil {
			log.Fatalf("Failed to write %s: %v", path, err)
		}
		log.Printf("Wrote %s (%d bytes)", path, len(e.Data))
	}
}

// decodeImage loads and decodes a source image by sniffing its contents.
func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	img, _, err := image.Decode(f)
	return img, err
}

// writeArchive packages the texture set as a zip file.
func writeArchive(set *pbrgen.TextureSet, path, base string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := set.WriteArchive(f, base); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// parseHexColor parses an RRGGBB hex string, with or without a leading #.
func parseHexColor(s string) (pbrgen.RGB, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return pbrgen.RGB{}, fmt.Errorf("want RRGGBB, got %q", s)
	}
	var bytes [3]uint8
	for i := range bytes {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return pbrgen.RGB{}, fmt.Errorf("want RRGGBB, got %q", s)
		}
		bytes[i] = uint8(v)
	}
	return pbrgen.RGB{R: bytes[0], G: bytes[1], B: bytes[2]}, nil
}
