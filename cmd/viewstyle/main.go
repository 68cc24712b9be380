package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
	"github.com/jsvensson/viewstyle"
	"github.com/jsvensson/viewstyle/internal/format"
	"github.com/jsvensson/viewstyle/internal/render"
	"github.com/jsvensson/viewstyle/internal/sheet"
	"github.com/jsvensson/viewstyle/internal/style"
	"github.com/jsvensson/viewstyle/widget"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	"gopkg.in/yaml.v3"
)

var (
	flagVerbose   int
	flagSheet     string
	flagOutput    string
	flagText      string
	flagBackend   string
	flagWidget    string
	flagStrict    bool
	flagOut       string
	flagTemplates string
	flagTarget    []string
	flagCheck     bool
	version       = "dev" // Injected at build time via ldflags
)

var rootCmd = &cobra.Command{
	Use:     "viewstyle",
	Short:   "Resolve, check and preview widget style sheets",
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		commonlog.Configure(flagVerbose, nil)
	},
	SilenceUsage: true,
}

var resolveCmd = &cobra.Command{
	Use:   "resolve [styles...]",
	Short: "Print styles with their inheritance flattened",
	Long:  "Print the named styles, or every style in the sheet, with inherited attributes applied.",
	RunE:  runResolve,
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check a style sheet for errors and skipped parents",
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

var previewCmd = &cobra.Command{
	Use:   "preview <style>",
	Short: "Render text with a style in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE:  runPreview,
}

var applyCmd = &cobra.Command{
	Use:   "apply <style>",
	Short: "Apply a style to a widget and print the widget's properties",
	Args:  cobra.ExactArgs(1),
	RunE:  runApply,
}

var colorCmd = &cobra.Command{
	Use:   "color <value>",
	Short: "Parse a hex or component color and print its forms",
	Args:  cobra.ExactArgs(1),
	RunE:  runColor,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Generate files from templates",
	Long:  "Execute every .tmpl file in the templates directory against the resolved sheet.",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

var fmtCmd = &cobra.Command{
	Use:   "fmt [files...]",
	Short: "Format .vstyle files",
	Long:  "Format one or more .vstyle files in-place. Prints the name of each file that was modified.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFmt,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&flagVerbose, "verbose", "v", "increase log verbosity (can be repeated)")

	for _, cmd := range []*cobra.Command{resolveCmd, checkCmd, previewCmd, applyCmd, exportCmd} {
		cmd.Flags().StringVar(&flagSheet, "sheet", "styles.vstyle", "path to style sheet (.vstyle, .hcl, .json, .yaml)")
	}
	resolveCmd.Flags().StringVarP(&flagOutput, "output", "o", "yaml", "output format: json or yaml")
	checkCmd.Flags().BoolVar(&flagStrict, "strict", false, "treat skipped parents as errors")
	previewCmd.Flags().StringVar(&flagText, "text", "", "text to render (defaults to the style name)")
	previewCmd.Flags().StringVar(&flagBackend, "backend", "lipgloss", "renderer: lipgloss or tcell")
	applyCmd.Flags().StringVar(&flagText, "text", "", "widget text (defaults to the style name)")
	applyCmd.Flags().StringVarP(&flagWidget, "widget", "w", "label", "widget kind: "+strings.Join(widget.Kinds, ", "))
	exportCmd.Flags().StringVar(&flagOut, "out", "output", "output directory")
	exportCmd.Flags().StringVar(&flagTemplates, "templates", "templates", "templates directory")
	exportCmd.Flags().StringArrayVar(&flagTarget, "target", nil, "render only specific templates (can be repeated)")
	fmtCmd.Flags().BoolVarP(&flagCheck, "check", "c", false, "check if files are formatted (do not write changes)")

	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(colorCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(versionCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	s, err := viewstyle.Load(flagSheet)
	if err != nil {
		return err
	}

	names := args
	if len(names) == 0 {
		names = s.Names
	}

	out := &sheet.Sheet{Styles: make(style.Table, len(names))}
	for _, name := range names {
		st, err := s.Resolve(name)
		if err != nil {
			return err
		}
		out.Styles[name] = st
	}

	var data []byte
	switch flagOutput {
	case "json":
		data, err = json.MarshalIndent(out, "", "  ")
		data = append(data, '\n')
	case "yaml", "yml":
		data, err = yaml.Marshal(out)
	default:
		return fmt.Errorf("unknown output format %q (valid: json, yaml)", flagOutput)
	}
	if err != nil {
		return fmt.Errorf("encoding styles: %w", err)
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runCheck(cmd *cobra.Command, args []string) error {
	s, err := viewstyle.Load(flagSheet)
	if err != nil {
		return err
	}

	issues := s.Validate()
	for _, issue := range issues {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", flagSheet, issue)
	}

	if flagStrict && len(issues) > 0 {
		return fmt.Errorf("%d issue(s) in %s", len(issues), flagSheet)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d style(s), %d issue(s)\n", flagSheet, len(s.Styles), len(issues))
	return nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	s, err := viewstyle.Load(flagSheet)
	if err != nil {
		return err
	}

	name := args[0]
	st, err := s.Resolve(name)
	if err != nil {
		return err
	}

	text := flagText
	if text == "" {
		text = name
	}

	switch flagBackend {
	case "lipgloss":
	case "tcell":
		return previewTcell(st, text)
	default:
		return fmt.Errorf("unknown backend %q (valid: lipgloss, tcell)", flagBackend)
	}

	out := render.Render(st, text)
	if out == "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "style %q is hidden\n", name)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// previewTcell draws the styled text full screen until a key is pressed.
func previewTcell(st style.Style, text string) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	defer screen.Fini()

	screen.Clear()
	render.DrawTcell(screen, 2, 1, st, text)
	screen.Show()

	for {
		switch screen.PollEvent().(type) {
		case *tcell.EventKey, nil:
			return nil
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

func runApply(cmd *cobra.Command, args []string) error {
	s, err := viewstyle.Load(flagSheet)
	if err != nil {
		return err
	}

	name := args[0]
	st, err := s.Resolve(name)
	if err != nil {
		return err
	}

	text := flagText
	if text == "" {
		text = name
	}

	w, err := widget.Build(flagWidget, text, st)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(w)
	if err != nil {
		return fmt.Errorf("encoding widget: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runColor(cmd *cobra.Command, args []string) error {
	c, err := viewstyle.ParseString(args[0])
	if err != nil {
		return err
	}

	swatch := render.Render(viewstyle.Style{BackgroundColor: &c}, "      ")
	label := lipgloss.NewStyle().Bold(true).Width(6)

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, swatch)
	fmt.Fprintln(w, label.Render("hex"), c.Hex())
	fmt.Fprintln(w, label.Render("rgba"), c.RGBA())
	fmt.Fprintln(w, label.Render("text"), c.Text())
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	s, err := viewstyle.Load(flagSheet)
	if err != nil {
		return err
	}

	e := &viewstyle.Engine{
		TemplatesDir: flagTemplates,
		OutputDir:    flagOut,
		Targets:      flagTarget,
	}

	if err := e.Run(s); err != nil {
		return fmt.Errorf("exporting: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Generated files in %s\n", flagOut)
	return nil
}

func runFmt(cmd *cobra.Command, args []string) error {
	hasErrors := false
	needsFormatting := false

	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error reading %s: %v\n", path, err)
			hasErrors = true
			continue
		}

		content := string(data)
		formatted, err := format.Format(content)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error formatting %s: %v\n", path, err)
			hasErrors = true
			continue
		}

		if formatted == content {
			continue
		}

		fmt.Fprintln(cmd.OutOrStdout(), path)
		needsFormatting = true

		if !flagCheck {
			if err := os.WriteFile(path, []byte(formatted), 0o644); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error writing %s: %v\n", path, err)
				hasErrors = true
			}
		}
	}

	if hasErrors || (flagCheck && needsFormatting) {
		os.Exit(1)
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
