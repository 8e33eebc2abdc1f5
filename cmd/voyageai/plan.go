package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/voyageai/voyageai/cache"
	"github.com/voyageai/voyageai/pipeline"
	"github.com/voyageai/voyageai/service"
)

var planShowProgress bool

var planCmd = &cobra.Command{
	Use:   "plan <trip description>",
	Short: "Generate a plan once and print it as JSON",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlan(cmd.Context(), strings.Join(args, " "))
	},
}

func init() {
	planCmd.Flags().BoolVar(&planShowProgress, "progress", false, "print per-stage progress to stderr")
}

func runPlan(ctx context.Context, prompt string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	executor := pipeline.NewExecutor(pipeline.Deps{})
	svc := service.New(executor, cache.NewInMemoryCache(0), time.Minute, nil)

	var payload json.RawMessage
	if planShowProgress {
		err := svc.PlanStream(ctx, prompt, func(ev service.Event) error {
			switch ev.Type {
			case "progress":
				fmt.Fprintf(os.Stderr, "[%3d%%] %s\n", ev.Progress, ev.Label)
			case "result":
				payload = ev.Data
			case "error":
				return fmt.Errorf("planning failed: %s", ev.Message)
			}
			return nil
		})
		if err != nil {
			return err
		}
	} else {
		var err error
		payload, err = svc.Plan(ctx, prompt)
		if err != nil {
			return err
		}
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, payload, "", "  "); err != nil {
		os.Stdout.Write(payload)
		return nil
	}
	pretty.WriteByte('\n')
	_, err := os.Stdout.Write(pretty.Bytes())
	return err
}
