package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/hamforge/hamforge/internal/catalog"
	"github.com/hamforge/hamforge/internal/config"
	"github.com/hamforge/hamforge/internal/models"
	"github.com/hamforge/hamforge/internal/spectrum"
	"github.com/hamforge/hamforge/internal/store"
	"github.com/hamforge/hamforge/internal/tui"
)

var (
	dataDir    string
	configFile string
	preset     string
	setParams  []string
	asYAML     bool
	outFile    string
)

// main registers the hamforge commands. Bare invocation opens the
// interactive catalogue browser; exits with status 1 on command error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "hamforge",
		Short: "quantum Hamiltonian construction and validation lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run()
		},
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")

	buildCmd := &cobra.Command{
		Use:   "build [model]",
		Short: "assemble and validate a Hamiltonian, print its metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  buildModel,
	}
	buildCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	buildCmd.Flags().StringVar(&preset, "preset", "", "use preset parameter set")
	buildCmd.Flags().StringArrayVar(&setParams, "set", nil, "override parameter, e.g. --set g=0.2")
	buildCmd.Flags().BoolVar(&asYAML, "yaml", false, "emit YAML instead of JSON")

	spectrumCmd := &cobra.Command{
		Use:   "spectrum [model]",
		Short: "plot the energy levels of a Hamiltonian",
		Args:  cobra.ExactArgs(1),
		RunE:  plotSpectrum,
	}
	spectrumCmd.Flags().StringVar(&preset, "preset", "", "use preset parameter set")
	spectrumCmd.Flags().StringArrayVar(&setParams, "set", nil, "override parameter, e.g. --set g=0.2")

	exportCmd := &cobra.Command{
		Use:   "export [model]",
		Short: "assemble, validate and save metadata to the data directory",
		Args:  cobra.ExactArgs(1),
		RunE:  exportModel,
	}
	exportCmd.Flags().StringVar(&preset, "preset", "", "use preset parameter set")
	exportCmd.Flags().StringArrayVar(&setParams, "set", nil, "override parameter, e.g. --set g=0.2")
	exportCmd.Flags().StringVar(&outFile, "out", "", "write to a file instead of the data directory (.yaml/.yml for YAML)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "assemble the whole catalogue at reference parameters",
		RunE:  listCatalogue,
	}

	exportsCmd := &cobra.Command{
		Use:   "exports",
		Short: "list saved exports",
		RunE:  listExports,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [model]",
		Short: "list available presets for a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for model: %s\n", args[0])
				return nil
			}
			sort.Strings(presets)
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(buildCmd, spectrumCmd, exportCmd, listCmd, exportsCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// resolveModel combines config file, preset, and --set overrides into a
// constructed model for the given tag.
func resolveModel(tag string) (models.Model, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.Model = tag
	if preset != "" {
		cfg.Preset = preset
	}
	for _, kv := range setParams {
		name, raw, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --set %q, want name=value", kv)
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid --set %q: %w", kv, err)
		}
		cfg.Params[name] = v
	}
	return catalog.New(cfg.Model, cfg.Merged())
}

func assemble(tag string) (*models.Instance, error) {
	m, err := resolveModel(tag)
	if err != nil {
		return nil, err
	}
	inst, err := models.Assemble(m)
	if err != nil {
		return nil, err
	}
	inst.Check()
	return inst, nil
}

func buildModel(cmd *cobra.Command, args []string) error {
	inst, err := assemble(args[0])
	if err != nil {
		return err
	}
	doc := inst.Export()
	var data []byte
	if asYAML {
		data, err = doc.EncodeYAML()
	} else {
		data, err = doc.EncodeJSON()
	}
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	if status, reason := inst.Status(); status == models.StatusInvalid {
		return fmt.Errorf("validation failed: %s", reason)
	}
	return nil
}

func plotSpectrum(cmd *cobra.Command, args []string) error {
	inst, err := assemble(args[0])
	if err != nil {
		return err
	}
	levels, err := spectrum.Eigenvalues(inst.Operator())
	if err != nil {
		return err
	}
	fmt.Printf("%s  %s  shape %v\n\n", inst.Model().Name(), inst.Model().Domain(), inst.Shape().Dims())
	fmt.Println(asciigraph.Plot(levels,
		asciigraph.Height(15),
		asciigraph.Width(60),
		asciigraph.Caption("energy by eigenvalue index")))
	return nil
}

func exportModel(cmd *cobra.Command, args []string) error {
	inst, err := assemble(args[0])
	if err != nil {
		return err
	}
	if outFile != "" {
		if err := store.WriteFile(outFile, inst.Export()); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", outFile)
		return nil
	}
	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	id, err := st.Save(inst.Export())
	if err != nil {
		return err
	}
	fmt.Printf("saved export: %s\n", id)
	return nil
}

func listCatalogue(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TAG\tNAME\tDOMAIN\tSHAPE\tSTATUS")
	for _, tag := range catalog.Tags() {
		m, err := catalog.Default(tag)
		if err != nil {
			return err
		}
		inst, err := models.Assemble(m)
		if err != nil {
			return err
		}
		status := inst.Check()
		fmt.Fprintf(w, "%s\t%s\t%s\t%v\t%s\n", tag, m.Name(), m.Domain(), inst.Shape().Dims(), status)
	}
	return w.Flush()
}

func listExports(cmd *cobra.Command, args []string) error {
	ids, err := store.New(dataDir).List()
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		fmt.Println("no saved exports")
		return nil
	}
	for _, id := range ids {
		fmt.Println(id)
	}
	return nil
}
