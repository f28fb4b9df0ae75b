package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"portfolio_web_echo/internal/models"
	"portfolio_web_echo/internal/stores"
)

func newSkillsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "skills",
		Short: "List and reorder skills",
	}

	cmd.AddCommand(
		listCmd(a, "list", "List every skill", func(ctx context.Context) ([]models.Skill, error) {
			return a.set.Skills.GetAllAdmin(ctx)
		}),
		&cobra.Command{
			Use:     "reorder <id>=<order>...",
			Short:   "Set the display order of skills",
			Example: "  portfolioctl skills reorder 3=0 1=1 2=2",
			Args:    cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				order, err := parseSkillOrder(args)
				if err != nil {
					return err
				}
				if err := a.set.Skills.Reorder(cmd.Context(), order); err != nil {
					return err
				}
				return a.done("%d skills reordered", len(order))
			},
		},
	)
	return cmd
}

// parseSkillOrder reads "id=order" pairs
func parseSkillOrder(args []string) (models.SkillOrder, error) {
	order := make(models.SkillOrder, len(args))
	for _, arg := range args {
		idStr, posStr, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("invalid pair %q, want <id>=<order>", arg)
		}
		id, err := parseID(idStr)
		if err != nil {
			return nil, err
		}
		pos, err := strconv.Atoi(posStr)
		if err != nil || pos < 0 {
			return nil, fmt.Errorf("invalid order %q for skill %d", posStr, id)
		}
		order[id] = pos
	}
	return order, nil
}

func newSettingsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Read site settings",
	}

	cmd.AddCommand(
		listCmd(a, "dict", "Print every setting as key/value pairs", func(ctx context.Context) (map[string]string, error) {
			return a.set.SiteSettings.GetDictionary(ctx)
		}),
		&cobra.Command{
			Use:   "get <key>",
			Short: "Show one setting",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				setting, err := a.set.SiteSettings.GetByKey(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return a.print(setting)
			},
		},
	)
	return cmd
}

func newAboutCmd(a *app) *cobra.Command {
	cmd := listCmd(a, "about", "Show the About Me profile", func(ctx context.Context) (*models.AboutMe, error) {
		return a.set.AboutMe.Get(ctx)
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "set <file>",
		Short:   "Create or replace the About Me profile from a JSON file",
		Example: "  portfolioctl about set profile.json\n  cat profile.json | portfolioctl about set -",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readAboutMe(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			store := stores.NewAboutMeStore(a.set.AboutMe, stores.WithLogger(a.logger))
			if err := store.Update(cmd.Context(), input); err != nil {
				return err
			}
			return a.print(store.Data())
		},
	})
	return cmd
}

// readAboutMe decodes the profile from path, or from stdin when path is "-"
func readAboutMe(stdin io.Reader, path string) (models.AboutMeInput, error) {
	var input models.AboutMeInput
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return input, err
		}
		defer f.Close()
		r = f
	}
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		return input, fmt.Errorf("invalid profile: %w", err)
	}
	if input.FullName == "" {
		return input, fmt.Errorf("invalid profile: fullName is required")
	}
	return input, nil
}
