package cmd

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/stryng/pkg/enum"
	"github.com/dmitrymomot/stryng/pkg/logger"
	"github.com/dmitrymomot/stryng/pkg/sanitizer"
	"github.com/dmitrymomot/stryng/pkg/slug"
	"github.com/dmitrymomot/stryng/pkg/textgen"
)

type transformKind int

const (
	transformSlug transformKind = iota
	transformTitle
	transformReverse
	transformWrap
	transformKebab
	transformSnake
	transformCamel
	transformPascal
	transformSquash
	transformStripHTML
	transformMask
	transformClean
)

var transformKinds = enum.New(
	enum.Variant[transformKind]{Value: transformSlug, Name: "slug", Description: "URL-friendly slug; --max-length limits it"},
	enum.Variant[transformKind]{Value: transformTitle, Name: "title", Description: "title case"},
	enum.Variant[transformKind]{Value: transformReverse, Name: "reverse", Description: "reverse characters"},
	enum.Variant[transformKind]{Value: transformWrap, Name: "wrap", Description: "word-wrap to --width columns"},
	enum.Variant[transformKind]{Value: transformKebab, Name: "kebab", Description: "kebab-case"},
	enum.Variant[transformKind]{Value: transformSnake, Name: "snake", Description: "snake_case"},
	enum.Variant[transformKind]{Value: transformCamel, Name: "camel", Description: "camelCase"},
	enum.Variant[transformKind]{Value: transformPascal, Name: "pascal", Description: "PascalCase"},
	enum.Variant[transformKind]{Value: transformSquash, Name: "squash", Description: "collapse white space runs"},
	enum.Variant[transformKind]{Value: transformStripHTML, Name: "strip-html", Description: "remove tags and unescape entities"},
	enum.Variant[transformKind]{Value: transformMask, Name: "mask", Description: "hide all but --visible characters at each end"},
	enum.Variant[transformKind]{Value: transformClean, Name: "clean", Description: "drop control sequences, trim and limit length"},
)

type transformResult struct {
	Kind   string   `json:"kind" yaml:"kind"`
	Input  string   `json:"input" yaml:"input"`
	Output []string `json:"output" yaml:"output"`
}

var (
	transformWidth     int
	transformMaxLength int
	transformVisible   int
	transformPerLine   bool
)

var transformCmd = &cobra.Command{
	Use:     "transform <kind> <text...>",
	Short:   "Apply a text transform",
	Long:    "Applies a deterministic transform to the text formed by joining the arguments with spaces.\n\nKinds:\n" + kindHelp(transformKinds),
	Example: "  stryng transform slug \"Hello, World!\"\n  stryng transform wrap --width 20 lorem ipsum dolor sit amet",
	Args:    cobra.MinimumNArgs(2),
	RunE:    runTransform,
}

func init() {
	transformCmd.Flags().IntVarP(&transformWidth, "width", "w", 0, "line width for wrap (default STRYNG_WRAP_WIDTH)")
	transformCmd.Flags().IntVar(&transformMaxLength, "max-length", 0, "maximum slug length, 0 for none")
	transformCmd.Flags().IntVar(&transformVisible, "visible", 2, "characters left visible at each end by mask")
	transformCmd.Flags().BoolVar(&transformPerLine, "per-line", false, "apply the transform to each input line separately")
	rootCmd.AddCommand(transformCmd)
}

func runTransform(cmd *cobra.Command, args []string) error {
	kind, err := parseSelector(transformKinds, args[0])
	if err != nil {
		return fmt.Errorf("transform: %w", err)
	}
	input := strings.Join(args[1:], " ")

	var fn func(string) string
	switch kind {
	case transformSlug:
		fn = textgen.Slugify
		if transformMaxLength > 0 {
			fn = func(s string) string { return slug.Make(s, slug.MaxLength(transformMaxLength)) }
		}
	case transformTitle:
		fn = textgen.ToTitleCase
	case transformReverse:
		fn = textgen.Reverse
	case transformWrap:
		width := transformWidth
		if !cmd.Flags().Changed("width") {
			width = cfg.WrapWidth
		}
		fn = func(s string) string {
			return strings.Join(slices.Collect(textgen.WrapText(s, width)), "\n")
		}
	case transformKebab:
		fn = sanitizer.ToKebabCase
	case transformSnake:
		fn = sanitizer.ToSnakeCase
	case transformCamel:
		fn = sanitizer.ToCamelCase
	case transformPascal:
		fn = sanitizer.ToPascalCase
	case transformSquash:
		fn = sanitizer.NormalizeWhitespace
	case transformStripHTML:
		fn = sanitizer.StripHTML
	case transformMask:
		fn = func(s string) string { return sanitizer.MaskString(s, transformVisible) }
	case transformClean:
		fn = sanitizer.SanitizeUserInput
	}
	if transformPerLine {
		fn = sanitizer.PerLine(fn)
	}

	var out []string
	if res := fn(input); kind == transformWrap || transformPerLine {
		if res != "" {
			out = strings.Split(res, "\n")
		}
	} else {
		out = []string{res}
	}

	name := transformKinds.Name(kind)
	ctx := logger.WithScope(cmd.Context(), logger.Kind(name))
	log.DebugContext(ctx, "transformed text", logger.Count(len(out)))

	result := transformResult{Kind: name, Input: input, Output: out}
	return render(cmd.OutOrStdout(), format, result, func(w io.Writer) error {
		for _, line := range out {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		return nil
	})
}
