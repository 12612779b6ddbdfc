// Command tequila-cli inspects operator documents and transformation
// parameter files: it parses serialized fermionic Hamiltonians, reports their
// ladder-term expansion and mode counts, validates transformation names, and
// can scaffold a parameters file interactively.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/ZPBQuantum/tequila/pkg/hamiltonian"
	"github.com/ZPBQuantum/tequila/pkg/operator"
	"github.com/ZPBQuantum/tequila/pkg/transform"
	"github.com/rs/zerolog"
)

func main() {
	operatorPath := flag.String("operator", "", "operator document (YAML) to inspect")
	paramsPath := flag.String("params", "", "parameters file (YAML) to validate")
	transformation := flag.String("transformation", "", "transformation name override")
	listTransforms := flag.Bool("list-transforms", false, "print the built-in alias table")
	interactive := flag.Bool("interactive", false, "pick a transformation interactively and write a parameters file")
	output := flag.String("output", "", "output file for -interactive (stdout if empty)")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	if *listTransforms {
		printAliasTable()
		return
	}

	if *interactive {
		if err := runInteractive(*output); err != nil {
			logger.Fatal().Err(err).Msg("interactive setup failed")
		}
		return
	}

	params, err := resolveParameters(*paramsPath, *transformation)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid parameters")
	}
	reportParameters(logger, params)

	if *operatorPath == "" {
		return
	}

	doc, err := operator.LoadDocument(*operatorPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("load operator document")
	}
	src, err := doc.Operator()
	if err != nil {
		logger.Fatal().Err(err).Msg("materialise operator")
	}
	fop, err := src.FermionOperator()
	if err != nil {
		logger.Fatal().Err(err).Msg("fermion operator expansion")
	}

	logger.Info().
		Int("terms", len(fop)).
		Int("modes", fop.NModes()).
		Msg("operator loaded")

	if _, err := hamiltonian.New(
		hamiltonian.NewStatic(fop, fop.NModes()),
		hamiltonian.WithParameters(params),
		hamiltonian.WithLogger(logger),
	); err != nil {
		logger.Fatal().Err(err).Msg("hamiltonian configuration rejected")
	}

	fmt.Println(fop.String())
}

func resolveParameters(path, override string) (hamiltonian.Parameters, error) {
	params := hamiltonian.DefaultParameters()
	if path != "" {
		loaded, err := hamiltonian.LoadParameters(path)
		if err != nil {
			return hamiltonian.Parameters{}, err
		}
		params = loaded
	}
	if override != "" {
		params.Transformation = override
	}
	return params, nil
}

func reportParameters(logger zerolog.Logger, params hamiltonian.Parameters) {
	event := logger.Info().Str("transformation", params.Transformation)
	switch {
	case params.JordanWigner():
		event.Str("canonical", transform.JordanWigner)
	case params.BravyiKitaev():
		event.Str("canonical", transform.BravyiKitaev)
	default:
		event.Str("canonical", params.Transformation).Bool("custom", true)
	}
	event.Msg("transformation parameters")
}

func printAliasTable() {
	fmt.Printf("%-16s %s\n", transform.JordanWigner, "JW, J-W, Jordan-Wigner (any case)")
	fmt.Printf("%-16s %s\n", transform.BravyiKitaev, "BK, B-K, Bravyi-Kitaev (any case)")
	fmt.Println("custom names must match a registered transform exactly")
}

func runInteractive(output string) error {
	const customChoice = "custom..."

	choice := ""
	prompt := &survey.Select{
		Message: "Fermion-to-qubit transformation:",
		Options: []string{transform.JordanWigner, transform.BravyiKitaev, customChoice},
		Default: transform.JordanWigner,
	}
	if err := survey.AskOne(prompt, &choice); err != nil {
		return err
	}

	name := choice
	switch choice {
	case transform.JordanWigner:
		name = "JW"
	case transform.BravyiKitaev:
		name = "BK"
	case customChoice:
		input := &survey.Input{Message: "Registered transform name:"}
		if err := survey.AskOne(input, &name, survey.WithValidator(survey.Required)); err != nil {
			return err
		}
		name = strings.TrimSpace(name)
	}

	params := hamiltonian.Parameters{Transformation: name}
	if output == "" {
		return params.Encode(os.Stdout)
	}
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := params.Encode(f); err != nil {
		return err
	}
	fmt.Printf("Parameters written to %s\n", output)
	return nil
}
