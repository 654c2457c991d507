package main

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	compiler "github.com/ngcompiler/ngc-go/packages/compiler/src"
)

// newRootCommand builds the ngc-go command tree: "compile" drives a whole tsconfig
// project through compiler.ProjectCompiler, "link" rewrites one partial-declaration
// file in place.
func newRootCommand(logger zerolog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "ngc-go",
		Short: "Ahead-of-time compiler for component templates",
	}

	root.AddCommand(newCompileCommand(logger))
	root.AddCommand(newLinkCommand(logger))

	return root
}

func newCompileCommand(logger zerolog.Logger) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Compile every file discovered by a tsconfig.json project",
		RunE: func(cmd *cobra.Command, args []string) error {
			runID := uuid.New().String()
			log := logger.With().Str("run_id", runID).Str("tsconfig", project).Logger()

			log.Info().Msg("starting project compile")

			proj, err := compiler.NewProjectCompiler(project)
			if err != nil {
				return errors.Errorf("loading tsconfig %s: %w", project, err)
			}

			if err := proj.Run(); err != nil {
				log.Error().Err(err).Msg("one or more files failed to compile")
				return errors.Errorf("project compile failed: %w", err)
			}

			log.Info().Msg("project compile finished")
			return nil
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "tsconfig.json", "path to tsconfig.json")
	return cmd
}

func newLinkCommand(logger zerolog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "link <file>",
		Short: "Rewrite a file's partial declarations into concrete definitions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runID := uuid.New().String()
			path := args[0]
			log := logger.With().Str("run_id", runID).Str("file", path).Logger()

			if err := linkFile(path); err != nil {
				log.Error().Err(err).Msg("link failed")
				return err
			}

			log.Info().Msg("link finished")
			return nil
		},
	}
	return cmd
}
