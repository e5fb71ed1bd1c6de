package cmd

import (
	"fmt"
	"strings"

	"github.com/ceapwatch/ceapwatch/internal/catalog"
	"github.com/ceapwatch/ceapwatch/internal/output"
	"github.com/spf13/cobra"
)

var glossaryCmd = &cobra.Command{
	Use:     "glossary [search]",
	Aliases: []string{"fields", "gl"},
	Short:   "Search the dataset field glossary",
	Long: `Search the field glossary of the dashboard datasets.

The search term matches case-insensitively against field path, description
and entity name. Use --entity to restrict to one entity (case-sensitive
entity names, "all" for everything).`,
	GroupID: "explore",
	RunE: func(cmd *cobra.Command, args []string) error {
		searchTerm := strings.TrimSpace(strings.Join(args, " "))
		entity, _ := cmd.Flags().GetString("entity")
		limit, _ := cmd.Flags().GetInt("limit")
		long, _ := cmd.Flags().GetBool("long")
		jsonOutput, _ := cmd.Flags().GetBool("json")

		// An unknown entity is not an error, it just matches nothing.
		// Still worth a hint on an interactive surface.
		if !jsonOutput && !catalog.IsKnownEntity(entity) {
			output.Warning("unknown entity %q (known: %s)", entity, strings.Join(catalog.Entities(), ", "))
		}

		results := catalog.Filter(catalog.All(), searchTerm, entity, limit)

		if jsonOutput {
			return output.JSON(results)
		}

		if len(results) == 0 {
			fmt.Println("No fields match")
			return nil
		}

		for _, fd := range results {
			if long {
				fmt.Print(output.FormatFieldLong(&fd))
			} else {
				fmt.Println(output.FormatFieldShort(&fd))
			}
		}
		fmt.Println(output.Subtle(fmt.Sprintf("%d of %d fields", len(results), catalog.Len())))
		return nil
	},
}

var entitiesCmd = &cobra.Command{
	Use:     "entities",
	Short:   "List the logical entities of the datasets",
	GroupID: "explore",
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")

		counts := countByEntity(catalog.All())

		if jsonOutput {
			return output.JSON(counts)
		}

		for _, entity := range catalog.Entities() {
			if entity == catalog.EntityAll {
				continue
			}
			fmt.Printf("%s %s\n",
				output.FormatEntityTag(entity),
				output.Subtle(fmt.Sprintf("%d fields", counts[entity])))
		}
		return nil
	},
}

// countByEntity tallies glossary fields per entity.
func countByEntity(defs []catalog.FieldDefinition) map[string]int {
	counts := make(map[string]int)
	for _, fd := range defs {
		counts[fd.Entity]++
	}
	return counts
}

func init() {
	rootCmd.AddCommand(glossaryCmd)
	rootCmd.AddCommand(entitiesCmd)

	glossaryCmd.Flags().String("entity", catalog.EntityAll, "Restrict to one entity")
	glossaryCmd.Flags().Int("limit", 0, "Maximum rows to show (0 = all)")
	glossaryCmd.Flags().Bool("long", false, "Show descriptions and examples")
	addJSONFlag(glossaryCmd.Flags())
	addJSONFlag(entitiesCmd.Flags())
}
