package command

import (
	"fmt"
	"text/tabwriter"

	"talentops/internal/service"

	"github.com/spf13/cobra"
)

type TargetPolicyHandler struct {
	targetPolicy *service.TargetPolicy
}

func NewTargetPolicyHandler(targetPolicy *service.TargetPolicy) *TargetPolicyHandler {
	return &TargetPolicyHandler{targetPolicy: targetPolicy}
}

// Print 以表格輸出政策表
func (handler *TargetPolicyHandler) Print(cmd *cobra.Command) error {
	table := handler.targetPolicy.Table()
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CRITICALITY\tTOUGHNESS\tREQUIRED")
	for _, row := range table.Rows {
		fmt.Fprintf(w, "%s\t%s\t%d\n", row.Criticality, row.Toughness, row.Required)
	}
	fmt.Fprintf(w, "(unknown)\t(unknown)\t%d\n", table.Default)
	if err := w.Flush(); err != nil {
		return err
	}
	mode := "lenient"
	if table.Strict {
		mode = "strict"
	}
	cmd.Printf("unknown combinations: %s\n", mode)
	return nil
}
