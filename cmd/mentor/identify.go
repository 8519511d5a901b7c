package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/mentor/internal/config"
	"github.com/JaimeStill/mentor/internal/identify"
	"github.com/JaimeStill/mentor/internal/predictor"
	"github.com/JaimeStill/mentor/internal/upload"
)

// NewIdentifyCmd creates the identify command, which classifies one image
// file and prints the result.
func NewIdentifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "identify <image>",
		Short: "Identify the mushroom in an image file",
		Long: `Identify sends one image to the prediction service and prints the species
with growing parameters (farmer, the default) or nutrition facts (enthusiast).

Examples:
  mentor identify cap.jpg
  mentor identify cap.jpg --role enthusiast --format markdown
  MENTOR_PREDICTOR_BASE_URL=http://ml:5000 mentor identify cap.jpg --format json`,
		Args: cobra.ExactArgs(1),
		RunE: runIdentifyCmd,
	}

	cmd.Flags().StringP("role", "r", "", "Role: farmer or enthusiast")
	cmd.Flags().StringP("format", "f", "text", "Output format: text, markdown, or json")

	return cmd
}

func runIdentifyCmd(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	roleName, err := cmd.Flags().GetString("role")
	if err != nil {
		return err
	}
	role, err := identify.ParseRole(roleName)
	if err != nil {
		return err
	}

	w, err := reportWriter(cmd)
	if err != nil {
		return err
	}

	img, err := readImage(args[0], cfg.API.MaxUploadSizeBytes())
	if err != nil {
		return err
	}

	logger := newLogger(cmd, slog.LevelWarn)
	client, err := predictor.New(&cfg.Predictor, logger)
	if err != nil {
		return err
	}

	wf := identify.New(client, cfg.Workflow.RequireRole, logger)
	id, err := wf.Analyze(cmd.Context(), identify.Request{Image: img, Role: role})
	if err != nil {
		var ve *identify.ValidationError
		if errors.As(err, &ve) {
			return err
		}
		return fmt.Errorf("%s: %w", identify.FailureMessage(err), err)
	}

	return w.WriteIdentification(id, img)
}

func readImage(path string, maxSize int64) (*upload.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, err := upload.Read(f, filepath.Base(path), "", maxSize)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return img, nil
}
