package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// hasseCover is the exported diagnostic shape for one covering edge (spec
// §6 "Exported diagnostics"): lower and upper state ids plus the item that
// distinguishes them.
type hasseCover struct {
	Lower     []string `json:"lower"`
	Upper     []string `json:"upper"`
	ItemAdded string   `json:"item_added"`
}

type prerequisiteEdge struct {
	Src string `json:"src"`
	Tgt string `json:"tgt"`
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export Hasse covers and prerequisite edges as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		core, _, err := loadCore()
		if err != nil {
			return err
		}

		covers := make([]hasseCover, 0, len(core.Space.CoveringEdges()))
		for _, c := range core.Space.CoveringEdges() {
			covers = append(covers, hasseCover{Lower: c.Lower.IDs(), Upper: c.Upper.IDs(), ItemAdded: c.ItemAdded})
		}

		var edges []prerequisiteEdge
		for _, id := range core.Domain.IDs() {
			for _, succ := range core.Graph.DirectSuccessors(id) {
				edges = append(edges, prerequisiteEdge{Src: id, Tgt: succ})
			}
		}

		out := struct {
			HasseCovers       []hasseCover       `json:"hasse_covers"`
			PrerequisiteEdges []prerequisiteEdge `json:"prerequisite_edges"`
		}{HasseCovers: covers, PrerequisiteEdges: edges}

		enc, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(enc))
		return nil
	},
}
