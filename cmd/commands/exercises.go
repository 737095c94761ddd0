package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/baldog/baldog-terminal/internal/cli"
	"github.com/baldog/baldog-terminal/pkg/catalog"
	"github.com/baldog/baldog-terminal/pkg/models"
)

var exercisesFeatured bool

// ExerciseListItem is one row of the exercises command
type ExerciseListItem struct {
	ID       models.ExerciseID `json:"id" yaml:"id"`
	Name     string            `json:"name" yaml:"name"`
	Category string            `json:"category" yaml:"category"`
	Video    string            `json:"video,omitempty" yaml:"video,omitempty"`
}

// ExerciseListResult is the structured output of the exercises command
type ExerciseListResult struct {
	Category string             `json:"category" yaml:"category"`
	Count    int                `json:"count" yaml:"count"`
	Items    []ExerciseListItem `json:"items" yaml:"items"`
}

// NewExercisesCommand creates the exercises command
func NewExercisesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exercises [category]",
		Short: "List the bundled warm-up exercises",
		Long: `List the warm-up exercises, optionally filtered by category.

Categories: whole-body, upper-body, lower-body, dynamic, all

Examples:
  # List every exercise
  baldog exercises

  # Only upper body activation
  baldog exercises upper-body

  # Exercises with a demo video, as JSON
  baldog exercises --featured -o json`,
		Aliases:   []string{"ls", "list"},
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: categoryArgs(catalog.Default()),
		RunE:      runExercises,
	}

	cmd.Flags().BoolVar(&exercisesFeatured, "featured", false, "Only show exercises with a demo video")

	return cmd
}

func categoryArgs(c *catalog.Catalog) []string {
	var slugs []string
	for _, cat := range c.Categories() {
		slugs = append(slugs, cat.Slug)
	}
	return append(slugs, catalog.CategoryAll)
}

func runExercises(cmd *cobra.Command, args []string) error {
	c := catalog.Default()

	category := catalog.CategoryAll
	if len(args) > 0 {
		category = models.NormalizeSlug(args[0])
	}

	var exercises []models.Exercise
	if category == catalog.CategoryAll {
		exercises = c.All()
	} else {
		if _, ok := c.Category(category); !ok {
			return fmt.Errorf("invalid category '%s'. Valid categories: %s", args[0], strings.Join(categoryArgs(c), ", "))
		}
		exercises = c.ByCategory(category)
	}

	result := ExerciseListResult{Category: category}
	for _, ex := range exercises {
		if exercisesFeatured && ex.Video == "" {
			continue
		}
		result.Items = append(result.Items, ExerciseListItem{
			ID:       ex.ID,
			Name:     ex.Name,
			Category: ex.Category,
			Video:    ex.Video,
		})
	}
	result.Count = len(result.Items)

	format := outputFormat(cmd)
	if cli.IsStructured(format) {
		return cli.OutputResults(cmd.OutOrStdout(), format, result)
	}

	if result.Count == 0 {
		cli.PrintInfo("No exercises found")
		return nil
	}

	table := cli.NewTableFormatter(cmd.OutOrStdout())
	table.Header("ID", "NAME", "CATEGORY", "VIDEO")
	for _, item := range result.Items {
		title := item.Category
		if cat, ok := c.Category(item.Category); ok {
			title = cat.Title
		}
		video := "-"
		if item.Video != "" {
			video = "yes"
		}
		table.Row(strconv.Itoa(int(item.ID)), item.Name, title, video)
	}
	table.Flush()

	cli.PrintInfo("%d exercises", result.Count)
	return nil
}
